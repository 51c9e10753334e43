package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/cardiolab/ecg-annotator-api/api/annotations"
	"github.com/cardiolab/ecg-annotator-api/api/catalog"
	"github.com/cardiolab/ecg-annotator-api/api/comments"
	"github.com/cardiolab/ecg-annotator-api/api/export"
	"github.com/cardiolab/ecg-annotator-api/api/health"
	"github.com/cardiolab/ecg-annotator-api/api/review"
	"github.com/cardiolab/ecg-annotator-api/api/sessions"
	"github.com/cardiolab/ecg-annotator-api/api/types"
	"github.com/cardiolab/ecg-annotator-api/api/version"
	"github.com/cardiolab/ecg-annotator-api/api/waveform"
	_ "github.com/cardiolab/ecg-annotator-api/docs/swagger"
	annotationsService "github.com/cardiolab/ecg-annotator-api/internal/services/annotations"
	commentsService "github.com/cardiolab/ecg-annotator-api/internal/services/comments"
	"github.com/cardiolab/ecg-annotator-api/internal/services/detection"
	exportService "github.com/cardiolab/ecg-annotator-api/internal/services/export"
	"github.com/cardiolab/ecg-annotator-api/internal/services/ingest"
	reviewService "github.com/cardiolab/ecg-annotator-api/internal/services/review"
	sessionsService "github.com/cardiolab/ecg-annotator-api/internal/services/sessions"
	"github.com/cardiolab/ecg-annotator-api/internal/services/synthesis"
	"github.com/cardiolab/ecg-annotator-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}
	if err := initializeServices(deps, cfg); err != nil {
		return err
	}

	rps := cfg.RateLimiting.RequestsPerSecond
	burst := cfg.RateLimiting.Burst
	if rps <= 0 {
		rps = 10
	}
	if burst <= 0 {
		burst = 20
	}

	// Catalog routes with general rate limiting
	catalogGroup := v1.Group("")
	if cfg.RateLimiting.Enabled {
		catalogGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst))
	}
	catalog.RegisterRoutes(catalogGroup, deps)

	// Every session-scoped resource shares one group and rate limit
	sessionGroup := v1.Group("/sessions")
	if cfg.RateLimiting.Enabled {
		sessionGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst))
	}
	sessions.RegisterRoutes(sessionGroup, deps)
	waveform.RegisterRoutes(sessionGroup, deps)
	annotations.RegisterRoutes(sessionGroup, deps)
	export.RegisterRoutes(sessionGroup, deps)
	review.RegisterRoutes(sessionGroup, deps)
	comments.RegisterRoutes(sessionGroup, deps)

	return nil
}

// initializeServices wires any dependency the caller has not already set.
// Tests inject mocks; production wiring flows from the database connection.
func initializeServices(deps *types.Dependencies, cfg *config.Config) error {
	if deps.DB == nil || deps.DB.DB == nil {
		return fmt.Errorf("database is not initialized")
	}

	sessionRepo := sessionsService.NewRepository(deps.DB.DB)
	if deps.SessionService == nil {
		deps.SessionService = sessionsService.NewService(sessionRepo)
	}
	if deps.AnnotationService == nil {
		annotationRepo := annotationsService.NewRepository(deps.DB.DB)
		deps.AnnotationService = annotationsService.NewService(annotationRepo, deps.SessionService)
	}
	if deps.DetectionEngine == nil {
		deps.DetectionEngine = detection.NewEngine(deps.SessionService, nil)
	}
	if deps.ExportService == nil {
		deps.ExportService = exportService.NewService()
	}
	if deps.ReviewService == nil {
		deps.ReviewService = reviewService.NewService(sessionRepo, cfg.Review.AutoApproveDelay)
	}
	if deps.CommentService == nil {
		deps.CommentService = commentsService.NewService(commentsService.NewRepository(deps.DB.DB))
	}
	if deps.Synthesizer == nil {
		deps.Synthesizer = synthesis.NewRandom()
	}
	if deps.Decoder == nil {
		deps.Decoder = ingest.NewDecoder()
	}

	if deps.SynthesisDuration <= 0 {
		deps.SynthesisDuration = cfg.Synthesis.Duration
	}
	if deps.SynthesisSampleRate <= 0 {
		deps.SynthesisSampleRate = cfg.Synthesis.SampleRate
	}
	if deps.MinZoom <= 0 {
		deps.MinZoom = cfg.Viewport.MinZoom
	}
	if deps.MaxZoom <= 0 {
		deps.MaxZoom = cfg.Viewport.MaxZoom
	}

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
