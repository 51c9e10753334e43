package sessions

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cardiolab/ecg-annotator-api/internal/models"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new session repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateSession inserts a new session
func (r *RepositoryImpl) CreateSession(ctx context.Context, session *models.Session) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("creating session: %w", err)
	}
	return nil
}

// GetSessionByUUID retrieves a session by its UUID
func (r *RepositoryImpl) GetSessionByUUID(ctx context.Context, uuid string) (*models.Session, error) {
	var session models.Session
	if err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}
	return &session, nil
}

// UpdateSession persists changes to an existing session
func (r *RepositoryImpl) UpdateSession(ctx context.Context, session *models.Session) error {
	result := r.db.WithContext(ctx).Save(session)
	if result.Error != nil {
		return fmt.Errorf("updating session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// NextAnnotationID atomically increments and returns the session's annotation
// id sequence. Runs in a transaction so concurrent callers never see the same
// value.
func (r *RepositoryImpl) NextAnnotationID(ctx context.Context, uuid string) (int64, error) {
	var next int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session models.Session
		if err := tx.Where("uuid = ?", uuid).First(&session).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("getting session: %w", err)
		}

		next = session.LastAnnotationID + 1
		if err := tx.Model(&session).Update("last_annotation_id", next).Error; err != nil {
			return fmt.Errorf("advancing annotation id sequence: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return next, nil
}

// GetWaveform retrieves the session's current waveform
func (r *RepositoryImpl) GetWaveform(ctx context.Context, sessionUUID string) (*models.Waveform, error) {
	var waveform models.Waveform
	if err := r.db.WithContext(ctx).Where("session_id = ?", sessionUUID).First(&waveform).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWaveformNotFound
		}
		return nil, fmt.Errorf("getting waveform: %w", err)
	}
	return &waveform, nil
}

// ReplaceWaveform swaps the session's waveform inside one transaction so the
// old signal stays visible until the new one fully lands.
func (r *RepositoryImpl) ReplaceWaveform(ctx context.Context, waveform *models.Waveform) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Waveform
		err := tx.Where("session_id = ?", waveform.SessionID).First(&existing).Error
		switch {
		case err == nil:
			waveform.ID = existing.ID
			waveform.CreatedAt = existing.CreatedAt
			if err := tx.Save(waveform).Error; err != nil {
				return fmt.Errorf("replacing waveform: %w", err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(waveform).Error; err != nil {
				return fmt.Errorf("creating waveform: %w", err)
			}
		default:
			return fmt.Errorf("looking up waveform: %w", err)
		}
		return nil
	})
}
