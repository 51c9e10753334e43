package annotations

import (
	"context"
	"log"

	"github.com/cardiolab/ecg-annotator-api/internal/models"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	durations  DurationProvider
}

// NewService creates a new annotation service
func NewService(repository Repository, durations DurationProvider) Service {
	return &ServiceImpl{
		repository: repository,
		durations:  durations,
	}
}

// Add inserts one annotation after range and identity checks
func (s *ServiceImpl) Add(ctx context.Context, annotation *models.Annotation) error {
	if err := s.validate(ctx, annotation); err != nil {
		return err
	}

	taken, err := s.repository.AnnotationIDExists(ctx, annotation.SessionID, annotation.AnnotationID)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateID
	}

	return s.repository.CreateAnnotation(ctx, annotation)
}

// validate applies everything except the duplicate-id check
func (s *ServiceImpl) validate(ctx context.Context, annotation *models.Annotation) error {
	if annotation.AnnotationID <= 0 {
		return ErrInvalidID
	}
	if !annotation.Type.Valid() {
		return ErrInvalidType
	}
	if !annotation.Lead.Valid() {
		return ErrInvalidLead
	}
	if annotation.Source == "" {
		annotation.Source = models.SourceManual
	}
	if annotation.Source == models.SourceManual {
		// Confidence is meaningful only for detector output
		annotation.Confidence = 0
	} else if annotation.Confidence < 0 || annotation.Confidence > 1 {
		return ErrInvalidConfidence
	}

	duration, err := s.durations.CurrentDuration(ctx, annotation.SessionID)
	if err != nil {
		return err
	}
	if annotation.Time < 0 || annotation.Time > duration {
		return ErrOutOfRangeTime
	}
	return nil
}

// Remove deletes by annotation id; removing an absent id is not an error
func (s *ServiceImpl) Remove(ctx context.Context, sessionID string, annotationID int64) error {
	removed, err := s.repository.DeleteByAnnotationID(ctx, sessionID, annotationID)
	if err != nil {
		return err
	}
	if removed == 0 {
		log.Printf("[DEBUG] Remove of absent annotation %d in session %s: no-op", annotationID, sessionID)
	}
	return nil
}

// Query returns annotations in the closed interval [start, end]
func (s *ServiceImpl) Query(ctx context.Context, sessionID string, start, end float64) ([]models.Annotation, error) {
	if start > end {
		return nil, ErrInvalidRange
	}
	return s.repository.QueryByTimeRange(ctx, sessionID, start, end)
}

// AllSorted returns every annotation ascending by time
func (s *ServiceImpl) AllSorted(ctx context.Context, sessionID string) ([]models.Annotation, error) {
	return s.repository.AllSorted(ctx, sessionID)
}

// Count returns the number of annotations in the session
func (s *ServiceImpl) Count(ctx context.Context, sessionID string) (int64, error) {
	return s.repository.CountBySession(ctx, sessionID)
}

// MergeBatch appends a candidate batch with per-item outcomes. Each candidate
// passes the same invariants as Add; failures never block the rest of the
// batch, and nothing is deduplicated against what is already stored.
func (s *ServiceImpl) MergeBatch(ctx context.Context, sessionID string, candidates []models.Annotation) (*BatchResult, error) {
	result := &BatchResult{
		Accepted: make([]models.Annotation, 0, len(candidates)),
		Failed:   make([]BatchFailure, 0),
	}

	for i := range candidates {
		candidate := candidates[i]
		candidate.SessionID = sessionID

		if err := s.Add(ctx, &candidate); err != nil {
			result.Failed = append(result.Failed, BatchFailure{
				AnnotationID: candidate.AnnotationID,
				Time:         candidate.Time,
				Reason:       err.Error(),
			})
			continue
		}
		result.Accepted = append(result.Accepted, candidate)
	}

	log.Printf("[DEBUG] Merged batch into session %s: %d accepted, %d failed",
		sessionID, len(result.Accepted), len(result.Failed))
	return result, nil
}
