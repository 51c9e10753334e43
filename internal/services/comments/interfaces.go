package comments

import (
	"context"

	"github.com/cardiolab/ecg-annotator-api/internal/models"
)

// Repository defines the interface for comment data access
type Repository interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetCommentsBySession(ctx context.Context, sessionID string) ([]models.Comment, error)
}

// Service defines the interface for comment business logic
type Service interface {
	// Post appends a comment to the session thread.
	Post(ctx context.Context, sessionID, author, text string) (*models.Comment, error)

	// List returns the thread in posting order.
	List(ctx context.Context, sessionID string) ([]models.Comment, error)
}
