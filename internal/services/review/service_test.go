package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cardiolab/ecg-annotator-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSessionStore is a mock implementation of the SessionStore interface
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) GetSessionByUUID(ctx context.Context, uuid string) (*models.Session, error) {
	args := m.Called(ctx, uuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionStore) UpdateSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

// fakeClock reports a settable instant.
type fakeClock struct {
	at time.Time
}

func (c *fakeClock) Now() time.Time { return c.at }

func (c *fakeClock) Advance(d time.Duration) { c.at = c.at.Add(d) }

func TestServiceImpl_RequestReview(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	t.Run("moves a pending session under review", func(t *testing.T) {
		store := new(MockSessionStore)
		clock := &fakeClock{at: start}
		service := NewServiceWithClock(store, time.Second, clock)

		session := &models.Session{UUID: "session-1", Status: models.QualityPending}
		store.On("GetSessionByUUID", ctx, "session-1").Return(session, nil)
		store.On("UpdateSession", ctx, mock.AnythingOfType("*models.Session")).
			Run(func(args mock.Arguments) {
				updated := args.Get(1).(*models.Session)
				assert.Equal(t, models.QualityUnderReview, updated.Status)
				require.NotNil(t, updated.ReviewRequestedAt)
				assert.Equal(t, start, *updated.ReviewRequestedAt)
			}).
			Return(nil)

		status, err := service.RequestReview(ctx, "session-1")
		require.NoError(t, err)
		assert.Equal(t, models.QualityUnderReview, status)
		store.AssertExpectations(t)
	})

	t.Run("rejects a second request", func(t *testing.T) {
		store := new(MockSessionStore)
		service := NewServiceWithClock(store, time.Second, &fakeClock{at: start})

		at := start
		session := &models.Session{UUID: "session-1", Status: models.QualityUnderReview, ReviewRequestedAt: &at}
		store.On("GetSessionByUUID", ctx, "session-1").Return(session, nil)

		status, err := service.RequestReview(ctx, "session-1")
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, models.QualityUnderReview, status)
		store.AssertNotCalled(t, "UpdateSession", mock.Anything, mock.Anything)
	})

	t.Run("approved is terminal", func(t *testing.T) {
		store := new(MockSessionStore)
		service := NewServiceWithClock(store, time.Second, &fakeClock{at: start})

		session := &models.Session{UUID: "session-1", Status: models.QualityApproved}
		store.On("GetSessionByUUID", ctx, "session-1").Return(session, nil)

		_, err := service.RequestReview(ctx, "session-1")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		store := new(MockSessionStore)
		service := NewServiceWithClock(store, time.Second, &fakeClock{at: start})

		store.On("GetSessionByUUID", ctx, "missing").Return(nil, errors.New("session not found"))

		_, err := service.RequestReview(ctx, "missing")
		assert.Error(t, err)
	})
}

func TestServiceImpl_Status(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	t.Run("pending stays pending", func(t *testing.T) {
		store := new(MockSessionStore)
		service := NewServiceWithClock(store, time.Second, &fakeClock{at: start})

		session := &models.Session{UUID: "session-1", Status: models.QualityPending}
		store.On("GetSessionByUUID", ctx, "session-1").Return(session, nil)

		status, err := service.Status(ctx, "session-1")
		require.NoError(t, err)
		assert.Equal(t, models.QualityPending, status)
		store.AssertNotCalled(t, "UpdateSession", mock.Anything, mock.Anything)
	})

	t.Run("under review before the window elapses", func(t *testing.T) {
		store := new(MockSessionStore)
		clock := &fakeClock{at: start}
		service := NewServiceWithClock(store, time.Second, clock)

		at := start
		session := &models.Session{UUID: "session-1", Status: models.QualityUnderReview, ReviewRequestedAt: &at}
		store.On("GetSessionByUUID", ctx, "session-1").Return(session, nil)

		clock.Advance(500 * time.Millisecond)
		status, err := service.Status(ctx, "session-1")
		require.NoError(t, err)
		assert.Equal(t, models.QualityUnderReview, status)
		store.AssertNotCalled(t, "UpdateSession", mock.Anything, mock.Anything)
	})

	t.Run("auto-approves once the window elapses", func(t *testing.T) {
		store := new(MockSessionStore)
		clock := &fakeClock{at: start}
		service := NewServiceWithClock(store, time.Second, clock)

		at := start
		session := &models.Session{UUID: "session-1", Status: models.QualityUnderReview, ReviewRequestedAt: &at}
		store.On("GetSessionByUUID", ctx, "session-1").Return(session, nil)
		store.On("UpdateSession", ctx, mock.AnythingOfType("*models.Session")).
			Run(func(args mock.Arguments) {
				updated := args.Get(1).(*models.Session)
				assert.Equal(t, models.QualityApproved, updated.Status)
			}).
			Return(nil)

		clock.Advance(time.Second)
		status, err := service.Status(ctx, "session-1")
		require.NoError(t, err)
		assert.Equal(t, models.QualityApproved, status)
		store.AssertExpectations(t)
	})
}
