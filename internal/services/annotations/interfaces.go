package annotations

import (
	"context"

	"github.com/cardiolab/ecg-annotator-api/internal/models"
)

// Repository defines the interface for annotation data access
type Repository interface {
	// Create operations
	CreateAnnotation(ctx context.Context, annotation *models.Annotation) error

	// Read operations
	AnnotationIDExists(ctx context.Context, sessionID string, annotationID int64) (bool, error)
	QueryByTimeRange(ctx context.Context, sessionID string, start, end float64) ([]models.Annotation, error)
	AllSorted(ctx context.Context, sessionID string) ([]models.Annotation, error)
	CountBySession(ctx context.Context, sessionID string) (int64, error)

	// Delete operations
	DeleteByAnnotationID(ctx context.Context, sessionID string, annotationID int64) (int64, error)
}

// DurationProvider supplies the current waveform duration used to range-check
// annotation times. The session service satisfies it.
type DurationProvider interface {
	CurrentDuration(ctx context.Context, sessionUUID string) (float64, error)
}

// BatchFailure describes one rejected candidate from a merge.
type BatchFailure struct {
	AnnotationID int64   `json:"id"`
	Time         float64 `json:"time"`
	Reason       string  `json:"reason"`
}

// BatchResult reports the per-item outcome of a merge. Partial application
// is expected: accepted candidates stay in the store even when siblings fail.
type BatchResult struct {
	Accepted []models.Annotation `json:"accepted"`
	Failed   []BatchFailure      `json:"failed"`
}

// Service defines the interface for annotation business logic
type Service interface {
	// Add inserts one annotation after range and identity checks. A rejected
	// add leaves the store unchanged.
	Add(ctx context.Context, annotation *models.Annotation) error

	// Remove deletes by annotation id; removing an absent id is not an error.
	Remove(ctx context.Context, sessionID string, annotationID int64) error

	// Query returns annotations whose time lies in the closed interval
	// [start, end], ascending by time, ties by insertion order.
	Query(ctx context.Context, sessionID string, start, end float64) ([]models.Annotation, error)

	// AllSorted is the canonical read: every annotation ascending by time.
	AllSorted(ctx context.Context, sessionID string) ([]models.Annotation, error)

	// Count returns the number of annotations in the session.
	Count(ctx context.Context, sessionID string) (int64, error)

	// MergeBatch appends a candidate batch with per-item outcomes. It does
	// not deduplicate against existing annotations at the same time/type;
	// re-running detection stacks duplicates on purpose.
	MergeBatch(ctx context.Context, sessionID string, candidates []models.Annotation) (*BatchResult, error)
}
