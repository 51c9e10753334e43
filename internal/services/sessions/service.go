package sessions

import (
	"context"
	"log"

	"github.com/cardiolab/ecg-annotator-api/internal/models"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repo Repository
}

// NewService creates a new session service
func NewService(repo Repository) Service {
	return &ServiceImpl{repo: repo}
}

// CreateSession creates a session with an empty annotation set
func (s *ServiceImpl) CreateSession(ctx context.Context, fileName, annotator string, lead models.Lead) (*models.Session, error) {
	if lead != "" && !lead.Valid() {
		return nil, ErrInvalidLead
	}

	session := &models.Session{
		FileName:     fileName,
		Annotator:    annotator,
		SelectedLead: lead,
		Status:       models.QualityPending,
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	log.Printf("[DEBUG] Created session %s (file=%q, lead=%s)", session.UUID, session.FileName, session.SelectedLead)
	return session, nil
}

// GetSession retrieves a session by UUID
func (s *ServiceImpl) GetSession(ctx context.Context, uuid string) (*models.Session, error) {
	return s.repo.GetSessionByUUID(ctx, uuid)
}

// SelectLead changes the session's active lead
func (s *ServiceImpl) SelectLead(ctx context.Context, uuid string, lead models.Lead) (*models.Session, error) {
	if !lead.Valid() {
		return nil, ErrInvalidLead
	}

	session, err := s.repo.GetSessionByUUID(ctx, uuid)
	if err != nil {
		return nil, err
	}

	session.SelectedLead = lead
	if err := s.repo.UpdateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ReplaceWaveform atomically installs a new current waveform. Existing
// annotations are deliberately left untouched, even when the new waveform is
// shorter: stale markers past the new duration stay visible in the store
// until removed by hand.
func (s *ServiceImpl) ReplaceWaveform(ctx context.Context, sessionUUID string, samples []models.Sample, duration float64, sampleRate int, source string) (*models.Waveform, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyWaveform
	}

	// The session must exist before it can own a waveform
	if _, err := s.repo.GetSessionByUUID(ctx, sessionUUID); err != nil {
		return nil, err
	}

	waveform := &models.Waveform{
		SessionID:  sessionUUID,
		Duration:   duration,
		SampleRate: sampleRate,
		Source:     source,
	}
	if err := waveform.SetSamples(samples); err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceWaveform(ctx, waveform); err != nil {
		return nil, err
	}

	log.Printf("[DEBUG] Replaced waveform for session %s: %d samples, %.2fs @ %dHz (%s)",
		sessionUUID, waveform.SampleCount, duration, sampleRate, source)
	return waveform, nil
}

// GetWaveform returns the session's current waveform
func (s *ServiceImpl) GetWaveform(ctx context.Context, sessionUUID string) (*models.Waveform, error) {
	return s.repo.GetWaveform(ctx, sessionUUID)
}

// CurrentDuration returns the duration of the session's current waveform
func (s *ServiceImpl) CurrentDuration(ctx context.Context, sessionUUID string) (float64, error) {
	waveform, err := s.repo.GetWaveform(ctx, sessionUUID)
	if err != nil {
		return 0, err
	}
	return waveform.Duration, nil
}

// NextAnnotationID mints a fresh, collision-free annotation id
func (s *ServiceImpl) NextAnnotationID(ctx context.Context, sessionUUID string) (int64, error) {
	return s.repo.NextAnnotationID(ctx, sessionUUID)
}
