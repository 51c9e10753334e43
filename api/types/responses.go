package types

import (
	"time"

	"github.com/cardiolab/ecg-annotator-api/internal/models"
	"github.com/cardiolab/ecg-annotator-api/internal/services/annotations"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`            // One of the Status constants above
	Message string `json:"message,omitempty"` // Human-readable message
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// SessionResponse summarizes one annotation session
type SessionResponse struct {
	UUID              string               `json:"uuid"`
	FileName          string               `json:"fileName"`
	SelectedLead      models.Lead          `json:"selectedLead"`
	Annotator         string               `json:"annotator,omitempty"`
	Status            models.QualityStatus `json:"qualityStatus"`
	ReviewRequestedAt *time.Time           `json:"reviewRequestedAt,omitempty"`
	AnnotationCount   int64                `json:"annotationCount"`
	Waveform          *WaveformMeta        `json:"waveform,omitempty"`
	CreatedAt         time.Time            `json:"createdAt"`
}

// WaveformMeta describes the current waveform without its samples
type WaveformMeta struct {
	Duration    float64 `json:"duration"`
	SampleRate  int     `json:"sampleRate"`
	SampleCount int     `json:"sampleCount"`
	Source      string  `json:"source"`
}

// WaveformResponse carries samples, optionally restricted to a zoom window
type WaveformResponse struct {
	BaseResponse
	Meta     WaveformMeta    `json:"meta"`
	Window   *WindowInfo     `json:"window,omitempty"`
	Samples  []models.Sample `json:"samples"`
	Fallback bool            `json:"fallback,omitempty"` // True when an upload was replaced by synthesis
}

// WindowInfo is the visible time range after zooming
type WindowInfo struct {
	TMin float64 `json:"tMin"`
	TMax float64 `json:"tMax"`
	Zoom float64 `json:"zoom"`
}

// MarkerAnchor places one annotation on the rendered waveform
type MarkerAnchor struct {
	AnnotationID int64                 `json:"id"`
	Time         float64               `json:"time"`
	Amplitude    float64               `json:"amplitude"` // Nearest-sample amplitude
	Type         models.AnnotationType `json:"type"`
	Color        string                `json:"color"`
	Symbol       string                `json:"symbol"`
	AIGenerated  bool                  `json:"aiGenerated"`
}

// ViewportResponse describes what is visible at a zoom level
type ViewportResponse struct {
	BaseResponse
	Window       WindowInfo     `json:"window"`
	AmplitudeMin float64        `json:"amplitudeMin"`
	AmplitudeMax float64        `json:"amplitudeMax"`
	Markers      []MarkerAnchor `json:"markers"`
}

// AnnotationsResponse for annotation lists
type AnnotationsResponse struct {
	BaseResponse
	Annotations []models.Annotation `json:"annotations"`
	Count       int                 `json:"count"`
}

// DetectionResponse reports a detection run merged into the session
type DetectionResponse struct {
	BaseResponse
	Accepted []models.Annotation        `json:"accepted"`
	Failed   []annotations.BatchFailure `json:"failed"`
}

// ReviewResponse for the quality workflow endpoints
type ReviewResponse struct {
	BaseResponse
	QualityStatus models.QualityStatus `json:"qualityStatus"`
}

// CommentsResponse for the session thread
type CommentsResponse struct {
	BaseResponse
	Comments []models.Comment `json:"comments"`
	Count    int              `json:"count"`
}
