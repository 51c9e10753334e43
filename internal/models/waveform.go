package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

// Sample is one point of the canonical waveform.
type Sample struct {
	Time      float64 `json:"time"`
	Amplitude float64 `json:"amplitude"`
}

// Waveform holds the current signal for a session. Exactly one waveform
// exists per session; replacing it swaps the row in a single update so no
// partial state is ever visible.
type Waveform struct {
	gorm.Model
	SessionID   string  `json:"session_id" gorm:"not null;uniqueIndex"`
	SamplesData []byte  `json:"-" gorm:"type:blob;not null"` // JSON-encoded []Sample
	Duration    float64 `json:"duration" gorm:"not null"`    // Seconds
	SampleRate  int     `json:"sample_rate" gorm:"not null"` // Hz
	SampleCount int     `json:"sample_count" gorm:"not null"`
	Source      string  `json:"source" gorm:"not null"` // "synthesized" or "uploaded"
}

// Waveform source values.
const (
	WaveformSynthesized = "synthesized"
	WaveformUploaded    = "uploaded"
)

// Samples returns the decoded sample sequence.
func (w *Waveform) Samples() ([]Sample, error) {
	var samples []Sample
	if err := json.Unmarshal(w.SamplesData, &samples); err != nil {
		return nil, err
	}
	return samples, nil
}

// SetSamples encodes and stores the sample sequence.
func (w *Waveform) SetSamples(samples []Sample) error {
	data, err := json.Marshal(samples)
	if err != nil {
		return err
	}
	w.SamplesData = data
	w.SampleCount = len(samples)
	return nil
}

// TableName returns the table name for the Waveform model
func (Waveform) TableName() string {
	return "waveforms"
}
