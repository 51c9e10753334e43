package types

import (
	"github.com/cardiolab/ecg-annotator-api/internal/database"
	"github.com/cardiolab/ecg-annotator-api/internal/services/annotations"
	"github.com/cardiolab/ecg-annotator-api/internal/services/comments"
	"github.com/cardiolab/ecg-annotator-api/internal/services/detection"
	"github.com/cardiolab/ecg-annotator-api/internal/services/export"
	"github.com/cardiolab/ecg-annotator-api/internal/services/ingest"
	"github.com/cardiolab/ecg-annotator-api/internal/services/review"
	"github.com/cardiolab/ecg-annotator-api/internal/services/sessions"
	"github.com/cardiolab/ecg-annotator-api/internal/services/synthesis"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                *database.DB
	SessionService    sessions.Service
	AnnotationService annotations.Service
	DetectionEngine   *detection.Engine
	ExportService     export.Service
	ReviewService     review.Service
	CommentService    comments.Service
	Synthesizer       *synthesis.Synthesizer
	Decoder           *ingest.Decoder

	// Tunables resolved from config at route registration
	SynthesisDuration   float64
	SynthesisSampleRate int
	MinZoom             float64
	MaxZoom             float64
}
