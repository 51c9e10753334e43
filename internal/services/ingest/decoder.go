// Package ingest validates uploaded sample payloads and turns them into the
// canonical waveform form. Anything malformed is rejected as a decode
// failure; the upload handler falls back to synthesis instead of failing the
// request.
package ingest

import (
	"fmt"
	"math"

	"github.com/cardiolab/ecg-annotator-api/internal/models"
)

// SamplePayload is one uploaded point before validation.
type SamplePayload struct {
	Time      float64 `json:"time"`
	Amplitude float64 `json:"amplitude"`
}

// Decoder validates and converts uploaded payloads.
type Decoder struct{}

// NewDecoder creates a payload decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode converts a payload into canonical samples. The sequence must be
// non-empty, start at a non-negative time, and be strictly increasing in
// time; every value must be finite.
func (d *Decoder) Decode(payload []SamplePayload) ([]models.Sample, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: no samples", ErrDecodeFailure)
	}

	samples := make([]models.Sample, 0, len(payload))
	for i, p := range payload {
		if math.IsNaN(p.Time) || math.IsInf(p.Time, 0) ||
			math.IsNaN(p.Amplitude) || math.IsInf(p.Amplitude, 0) {
			return nil, fmt.Errorf("%w: non-finite value at index %d", ErrDecodeFailure, i)
		}
		if i == 0 && p.Time < 0 {
			return nil, fmt.Errorf("%w: negative start time", ErrDecodeFailure)
		}
		if i > 0 && p.Time <= payload[i-1].Time {
			return nil, fmt.Errorf("%w: time not increasing at index %d", ErrDecodeFailure, i)
		}
		samples = append(samples, models.Sample{Time: p.Time, Amplitude: p.Amplitude})
	}

	return samples, nil
}

// Duration reports the time span covered by a decoded sequence.
func Duration(samples []models.Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	return samples[len(samples)-1].Time
}
