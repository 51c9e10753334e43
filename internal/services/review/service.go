// Package review drives the quality workflow for a session: pending until a
// review is requested, under review for a configured window, then approved.
// Approval is evaluated lazily on read against the recorded request time, so
// no timer or goroutine is held per session.
package review

import (
	"context"
	"log"
	"time"

	"github.com/cardiolab/ecg-annotator-api/internal/models"
)

// SessionStore is the slice of session persistence the workflow needs.
type SessionStore interface {
	GetSessionByUUID(ctx context.Context, uuid string) (*models.Session, error)
	UpdateSession(ctx context.Context, session *models.Session) error
}

// Clock abstracts time.Now for deterministic transition tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Service exposes the quality workflow operations.
type Service interface {
	// RequestReview moves a pending session under review. Any other
	// starting status yields ErrInvalidTransition.
	RequestReview(ctx context.Context, sessionUUID string) (models.QualityStatus, error)

	// Status reports the current quality status, promoting under-review
	// sessions to approved once the delay has elapsed.
	Status(ctx context.Context, sessionUUID string) (models.QualityStatus, error)
}

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	sessions SessionStore
	delay    time.Duration
	clock    Clock
}

// NewService creates a review service using the system clock.
func NewService(sessions SessionStore, delay time.Duration) Service {
	return &ServiceImpl{sessions: sessions, delay: delay, clock: systemClock{}}
}

// NewServiceWithClock creates a review service with an injected clock.
func NewServiceWithClock(sessions SessionStore, delay time.Duration, clock Clock) Service {
	return &ServiceImpl{sessions: sessions, delay: delay, clock: clock}
}

// RequestReview moves a pending session under review
func (s *ServiceImpl) RequestReview(ctx context.Context, sessionUUID string) (models.QualityStatus, error) {
	session, err := s.sessions.GetSessionByUUID(ctx, sessionUUID)
	if err != nil {
		return "", err
	}

	if session.Status != models.QualityPending {
		return session.Status, ErrInvalidTransition
	}

	now := s.clock.Now().UTC()
	session.Status = models.QualityUnderReview
	session.ReviewRequestedAt = &now
	if err := s.sessions.UpdateSession(ctx, session); err != nil {
		return "", err
	}

	log.Printf("[DEBUG] Session %s moved under review", sessionUUID)
	return session.Status, nil
}

// Status reports the current quality status, applying the deferred
// auto-approval when the review window has elapsed.
func (s *ServiceImpl) Status(ctx context.Context, sessionUUID string) (models.QualityStatus, error) {
	session, err := s.sessions.GetSessionByUUID(ctx, sessionUUID)
	if err != nil {
		return "", err
	}

	if session.Status != models.QualityUnderReview || session.ReviewRequestedAt == nil {
		return session.Status, nil
	}

	if s.clock.Now().Sub(*session.ReviewRequestedAt) < s.delay {
		return session.Status, nil
	}

	session.Status = models.QualityApproved
	if err := s.sessions.UpdateSession(ctx, session); err != nil {
		return "", err
	}

	log.Printf("[DEBUG] Session %s auto-approved after review window", sessionUUID)
	return session.Status, nil
}
