package comments

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

// NewRepository creates a new comment repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateComment inserts a new comment
func (r *RepositoryImpl) CreateComment(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("creating comment: %w", err)
	}
	return nil
}

// GetCommentsBySession returns the session's thread in posting order
func (r *RepositoryImpl) GetCommentsBySession(ctx context.Context, sessionID string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("posted_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return comments, nil
}
