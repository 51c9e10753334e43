package review_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/cardiolab/ecg-annotator-api/api/review"
	"github.com/cardiolab/ecg-annotator-api/api/types"
	"github.com/cardiolab/ecg-annotator-api/internal/database"
	"github.com/cardiolab/ecg-annotator-api/internal/models"
	reviewService "github.com/cardiolab/ecg-annotator-api/internal/services/review"
	sessionsService "github.com/cardiolab/ecg-annotator-api/internal/services/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock reports a settable instant.
type fakeClock struct {
	at time.Time
}

func (c *fakeClock) Now() time.Time { return c.at }

func setupReviewRouter(t *testing.T) (*gin.Engine, *types.Dependencies, *fakeClock) {
	gin.SetMode(gin.TestMode)

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, db.AutoMigrate(models.All()...), "Failed to migrate test database")

	sessionRepo := sessionsService.NewRepository(db.DB)
	clock := &fakeClock{at: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)}

	deps := &types.Dependencies{
		DB:             db,
		SessionService: sessionsService.NewService(sessionRepo),
		ReviewService:  reviewService.NewServiceWithClock(sessionRepo, time.Second, clock),
	}

	router := gin.New()
	router.POST("/sessions/:id/review", review.RequestReview(deps))
	router.GET("/sessions/:id/review", review.GetReview(deps))

	return router, deps, clock
}

func TestReviewWorkflow(t *testing.T) {
	router, deps, clock := setupReviewRouter(t)

	session, err := deps.SessionService.CreateSession(context.Background(), "", "", models.LeadII)
	require.NoError(t, err)

	getStatus := func() (int, types.ReviewResponse) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/sessions/"+session.UUID+"/review", nil)
		router.ServeHTTP(w, req)

		var resp types.ReviewResponse
		if w.Code == http.StatusOK {
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		}
		return w.Code, resp
	}

	t.Run("starts pending", func(t *testing.T) {
		code, resp := getStatus()
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, models.QualityPending, resp.QualityStatus)
	})

	t.Run("request moves the session under review", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/sessions/"+session.UUID+"/review", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp types.ReviewResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, models.QualityUnderReview, resp.QualityStatus)
	})

	t.Run("a second request yields 409", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/sessions/"+session.UUID+"/review", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("status stays under review inside the window", func(t *testing.T) {
		clock.at = clock.at.Add(500 * time.Millisecond)

		code, resp := getStatus()
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, models.QualityUnderReview, resp.QualityStatus)
	})

	t.Run("status flips to approved after the window", func(t *testing.T) {
		clock.at = clock.at.Add(time.Second)

		code, resp := getStatus()
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, models.QualityApproved, resp.QualityStatus)
	})

	t.Run("requesting review on an approved session yields 409", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/sessions/"+session.UUID+"/review", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown session yields 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/sessions/no-such-session/review", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
