package types

import (
	"github.com/cardiolab/ecg-annotator-api/internal/services/ingest"
)

// CreateSessionRequest opens a new annotation session
type CreateSessionRequest struct {
	FileName  string `json:"fileName,omitempty" example:"simulated-ecg"`
	Annotator string `json:"annotator,omitempty" example:"Dr. Chen"`
	Lead      string `json:"lead,omitempty" example:"Lead II"`
}

// SynthesisRequest asks for a generated waveform
type SynthesisRequest struct {
	Duration   float64 `json:"duration,omitempty" example:"10"`
	SampleRate int     `json:"sample_rate,omitempty" example:"500"`
	Seed       *int64  `json:"seed,omitempty"` // Fixed seed for reproducible signals
}

// ReplaceWaveformRequest replaces the session's signal. Exactly one of
// Synthesis or Samples should be set; uploaded samples that fail to decode
// fall back to synthesis.
type ReplaceWaveformRequest struct {
	Synthesis *SynthesisRequest      `json:"synthesis,omitempty"`
	Samples   []ingest.SamplePayload `json:"samples,omitempty"`
}

// AnnotationRequest places one manual annotation. Time is a pointer so that
// t=0 survives the required check.
type AnnotationRequest struct {
	ID     int64    `json:"id,omitempty"` // Omit to have the server assign one
	Time   *float64 `json:"time" binding:"required" example:"2.5"`
	Type   string   `json:"type" binding:"required" example:"R-Peak"`
	Lead   string   `json:"lead,omitempty" example:"Lead II"`
	Author string   `json:"author,omitempty" example:"Dr. Chen"`
}

// DetectRequest runs the detection engine over the current waveform
type DetectRequest struct {
	Lead string `json:"lead,omitempty" example:"Lead II"` // Defaults to the session's selected lead
}

// CommentRequest posts to the session thread
type CommentRequest struct {
	Author string `json:"author" binding:"required" example:"Dr. Chen"`
	Text   string `json:"text" binding:"required" example:"T-wave looks flattened in this lead"`
}
