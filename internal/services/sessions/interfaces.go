package sessions

import (
	"context"

	"github.com/cardiolab/ecg-annotator-api/internal/models"
)

// Repository defines the interface for session data access
type Repository interface {
	// CreateSession inserts a new session
	CreateSession(ctx context.Context, session *models.Session) error

	// GetSessionByUUID retrieves a session by its UUID
	GetSessionByUUID(ctx context.Context, uuid string) (*models.Session, error)

	// UpdateSession persists changes to an existing session
	UpdateSession(ctx context.Context, session *models.Session) error

	// NextAnnotationID atomically increments and returns the session's
	// annotation id sequence
	NextAnnotationID(ctx context.Context, uuid string) (int64, error)

	// GetWaveform retrieves the session's current waveform
	GetWaveform(ctx context.Context, sessionUUID string) (*models.Waveform, error)

	// ReplaceWaveform swaps the session's waveform in a single transaction
	ReplaceWaveform(ctx context.Context, waveform *models.Waveform) error
}

// Service defines the interface for session business logic
type Service interface {
	// CreateSession creates a session with an empty annotation set
	CreateSession(ctx context.Context, fileName, annotator string, lead models.Lead) (*models.Session, error)

	// GetSession retrieves a session by UUID
	GetSession(ctx context.Context, uuid string) (*models.Session, error)

	// SelectLead changes the session's active lead
	SelectLead(ctx context.Context, uuid string, lead models.Lead) (*models.Session, error)

	// ReplaceWaveform atomically installs a new current waveform
	ReplaceWaveform(ctx context.Context, sessionUUID string, samples []models.Sample, duration float64, sampleRate int, source string) (*models.Waveform, error)

	// GetWaveform returns the session's current waveform
	GetWaveform(ctx context.Context, sessionUUID string) (*models.Waveform, error)

	// CurrentDuration returns the duration of the session's current waveform
	CurrentDuration(ctx context.Context, sessionUUID string) (float64, error)

	// NextAnnotationID mints a fresh, collision-free annotation id
	NextAnnotationID(ctx context.Context, sessionUUID string) (int64, error)
}
