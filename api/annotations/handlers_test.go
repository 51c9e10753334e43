package annotations_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/cardiolab/ecg-annotator-api/api/annotations"
	"github.com/cardiolab/ecg-annotator-api/api/types"
	"github.com/cardiolab/ecg-annotator-api/internal/database"
	"github.com/cardiolab/ecg-annotator-api/internal/models"
	annotationsService "github.com/cardiolab/ecg-annotator-api/internal/services/annotations"
	"github.com/cardiolab/ecg-annotator-api/internal/services/detection"
	sessionsService "github.com/cardiolab/ecg-annotator-api/internal/services/sessions"
	"github.com/cardiolab/ecg-annotator-api/internal/services/synthesis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type AnnotationTestSuite struct {
	t      *testing.T
	deps   *types.Dependencies
	router *gin.Engine
}

func setupAnnotationTestSuite(t *testing.T) *AnnotationTestSuite {
	gin.SetMode(gin.TestMode)

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, db.AutoMigrate(models.All()...), "Failed to migrate test database")

	sessionRepo := sessionsService.NewRepository(db.DB)
	sessionSvc := sessionsService.NewService(sessionRepo)
	annotationRepo := annotationsService.NewRepository(db.DB)

	deps := &types.Dependencies{
		DB:                db,
		SessionService:    sessionSvc,
		AnnotationService: annotationsService.NewService(annotationRepo, sessionSvc),
		DetectionEngine:   detection.NewEngine(sessionSvc, nil),
	}

	router := gin.New()
	router.POST("/sessions/:id/annotations", annotations.CreateAnnotation(deps))
	router.GET("/sessions/:id/annotations", annotations.GetAnnotations(deps))
	router.DELETE("/sessions/:id/annotations/:annotationId", annotations.DeleteAnnotation(deps))
	router.POST("/sessions/:id/detect", annotations.Detect(deps))

	return &AnnotationTestSuite{t: t, deps: deps, router: router}
}

// createTestSession opens a session with a synthesized 10 s waveform.
func (suite *AnnotationTestSuite) createTestSession() string {
	ctx := context.Background()

	session, err := suite.deps.SessionService.CreateSession(ctx, "", "Dr. Chen", models.LeadII)
	require.NoError(suite.t, err, "Failed to create test session")

	samples, err := synthesis.New(7).Generate(10.0, 500)
	require.NoError(suite.t, err)
	_, err = suite.deps.SessionService.ReplaceWaveform(ctx, session.UUID, samples, 10.0, 500, models.WaveformSynthesized)
	require.NoError(suite.t, err, "Failed to install test waveform")

	return session.UUID
}

func (suite *AnnotationTestSuite) post(path string, payload any) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	require.NoError(suite.t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)
	return w
}

func TestCreateAnnotation(t *testing.T) {
	suite := setupAnnotationTestSuite(t)
	sessionUUID := suite.createTestSession()

	t.Run("creates a manual annotation", func(t *testing.T) {
		w := suite.post("/sessions/"+sessionUUID+"/annotations", map[string]any{
			"time": 2.5,
			"type": "R-Peak",
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		var created models.Annotation
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, models.AnnotationRPeak, created.Type)
		assert.Equal(t, models.LeadII, created.Lead) // Session's selected lead
		assert.Equal(t, models.SourceManual, created.Source)
		assert.Positive(t, created.AnnotationID)
	})

	t.Run("rejects a duplicate id with 409", func(t *testing.T) {
		payload := map[string]any{"id": 500, "time": 1.0, "type": "P-Wave"}

		w := suite.post("/sessions/"+sessionUUID+"/annotations", payload)
		require.Equal(t, http.StatusCreated, w.Code)

		w = suite.post("/sessions/"+sessionUUID+"/annotations", payload)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("rejects out-of-range time with 400", func(t *testing.T) {
		w := suite.post("/sessions/"+sessionUUID+"/annotations", map[string]any{
			"time": 11.0,
			"type": "R-Peak",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects an unknown type with 400", func(t *testing.T) {
		w := suite.post("/sessions/"+sessionUUID+"/annotations", map[string]any{
			"time": 1.0,
			"type": "Spindle",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown session yields 404", func(t *testing.T) {
		w := suite.post("/sessions/no-such-session/annotations", map[string]any{
			"time": 1.0,
			"type": "R-Peak",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetAnnotations(t *testing.T) {
	suite := setupAnnotationTestSuite(t)
	sessionUUID := suite.createTestSession()

	for i, tm := range []float64{5.0, 1.0, 3.0} {
		w := suite.post("/sessions/"+sessionUUID+"/annotations", map[string]any{
			"id":   i + 1,
			"time": tm,
			"type": "R-Peak",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("returns all annotations sorted by time", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/sessions/"+sessionUUID+"/annotations", nil)
		suite.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp types.AnnotationsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, 3, resp.Count)
		assert.Equal(t, 1.0, resp.Annotations[0].Time)
		assert.Equal(t, 3.0, resp.Annotations[1].Time)
		assert.Equal(t, 5.0, resp.Annotations[2].Time)
	})

	t.Run("range query uses a closed interval", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/sessions/"+sessionUUID+"/annotations?start=1&end=3", nil)
		suite.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp types.AnnotationsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Count)
	})

	t.Run("inverted range yields 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/sessions/"+sessionUUID+"/annotations?start=5&end=1", nil)
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteAnnotation(t *testing.T) {
	suite := setupAnnotationTestSuite(t)
	sessionUUID := suite.createTestSession()

	w := suite.post("/sessions/"+sessionUUID+"/annotations", map[string]any{
		"id":   9,
		"time": 2.0,
		"type": "T-Wave",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("removes an existing annotation", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/sessions/"+sessionUUID+"/annotations/9", nil)
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		count, err := suite.deps.AnnotationService.Count(context.Background(), sessionUUID)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("deleting an absent id still returns 200", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/sessions/"+sessionUUID+"/annotations/9", nil)
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("a removed id can be reused", func(t *testing.T) {
		w := suite.post("/sessions/"+sessionUUID+"/annotations", map[string]any{
			"id":   9,
			"time": 4.0,
			"type": "T-Wave",
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestDetect(t *testing.T) {
	suite := setupAnnotationTestSuite(t)
	sessionUUID := suite.createTestSession()

	t.Run("a ten second waveform produces thirteen accepted candidates", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/sessions/"+sessionUUID+"/detect", nil)
		suite.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

		var resp types.DetectionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Accepted, 13)
		assert.Empty(t, resp.Failed)

		for _, a := range resp.Accepted {
			assert.Equal(t, models.SourceAutoDetected, a.Source)
			assert.GreaterOrEqual(t, a.Confidence, 0.9)
			assert.LessOrEqual(t, a.Confidence, 1.0)
		}
	})

	t.Run("re-running detection stacks another thirteen", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/sessions/%s/detect", sessionUUID), nil)
		suite.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		count, err := suite.deps.AnnotationService.Count(context.Background(), sessionUUID)
		require.NoError(t, err)
		assert.Equal(t, int64(26), count)
	})
}
