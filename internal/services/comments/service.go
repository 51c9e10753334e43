// Package comments keeps the per-session discussion thread.
package comments

import (
	"context"
	"strings"

	"github.com/cardiolab/ecg-annotator-api/internal/models"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new comment service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

// Post appends a comment to the session thread
func (s *ServiceImpl) Post(ctx context.Context, sessionID, author, text string) (*models.Comment, error) {
	author = strings.TrimSpace(author)
	text = strings.TrimSpace(text)
	if author == "" {
		return nil, ErrMissingAuthor
	}
	if text == "" {
		return nil, ErrEmptyComment
	}

	comment := &models.Comment{
		SessionID: sessionID,
		Author:    author,
		Text:      text,
	}
	if err := s.repository.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// List returns the thread in posting order
func (s *ServiceImpl) List(ctx context.Context, sessionID string) ([]models.Comment, error) {
	return s.repository.GetCommentsBySession(ctx, sessionID)
}
