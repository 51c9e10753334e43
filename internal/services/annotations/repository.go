package annotations

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/cardiolab/ecg-annotator-api/internal/models"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new annotation repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateAnnotation inserts a new annotation record
func (r *RepositoryImpl) CreateAnnotation(ctx context.Context, annotation *models.Annotation) error {
	if err := r.db.WithContext(ctx).Create(annotation).Error; err != nil {
		return fmt.Errorf("creating annotation: %w", err)
	}
	return nil
}

// AnnotationIDExists checks whether an annotation id is already taken within
// the session
func (r *RepositoryImpl) AnnotationIDExists(ctx context.Context, sessionID string, annotationID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Annotation{}).
		Where("session_id = ? AND annotation_id = ?", sessionID, annotationID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking annotation id: %w", err)
	}
	return count > 0, nil
}

// QueryByTimeRange returns annotations in the closed interval [start, end],
// ascending by time. The auto-increment primary key breaks time ties in
// insertion order.
func (r *RepositoryImpl) QueryByTimeRange(ctx context.Context, sessionID string, start, end float64) ([]models.Annotation, error) {
	var annotations []models.Annotation
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND time >= ? AND time <= ?", sessionID, start, end).
		Order("time ASC, id ASC").
		Find(&annotations).Error
	if err != nil {
		return nil, fmt.Errorf("querying annotations: %w", err)
	}
	return annotations, nil
}

// AllSorted returns every annotation in the session ascending by time
func (r *RepositoryImpl) AllSorted(ctx context.Context, sessionID string) ([]models.Annotation, error) {
	var annotations []models.Annotation
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("time ASC, id ASC").
		Find(&annotations).Error
	if err != nil {
		return nil, fmt.Errorf("listing annotations: %w", err)
	}
	return annotations, nil
}

// CountBySession returns the number of annotations in the session
func (r *RepositoryImpl) CountBySession(ctx context.Context, sessionID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Annotation{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting annotations: %w", err)
	}
	return count, nil
}

// DeleteByAnnotationID removes the matching record and reports how many rows
// went away. Zero rows is not an error; removal of an absent id is a no-op.
func (r *RepositoryImpl) DeleteByAnnotationID(ctx context.Context, sessionID string, annotationID int64) (int64, error) {
	// Hard delete: a removed id must be reusable, which the unique
	// (session_id, annotation_id) index would forbid under soft delete.
	result := r.db.WithContext(ctx).Unscoped().
		Where("session_id = ? AND annotation_id = ?", sessionID, annotationID).
		Delete(&models.Annotation{})
	if result.Error != nil {
		return 0, fmt.Errorf("deleting annotation: %w", result.Error)
	}
	return result.RowsAffected, nil
}
