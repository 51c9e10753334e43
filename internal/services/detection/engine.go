// Package detection simulates AI-assisted beat detection. The heuristic is
// deliberately naive: one R-Peak candidate per nominal cardiac cycle at a
// fixed offset, independent of waveform content. It stands in for a real
// classifier while exercising the full annotation batch path.
package detection

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/cardiolab/ecg-annotator-api/internal/models"
)

const (
	// CycleInterval is the nominal cardiac cycle length in seconds.
	CycleInterval = 0.8

	// PeakOffset is where in each cycle the candidate lands, in seconds.
	PeakOffset = 0.28

	// Confidence is drawn uniformly from [ConfidenceFloor, ConfidenceFloor+ConfidenceSpan].
	ConfidenceFloor = 0.9
	ConfidenceSpan  = 0.1
)

// IDSource mints fresh annotation ids, monotonic within a batch.
type IDSource interface {
	NextAnnotationID(ctx context.Context, sessionUUID string) (int64, error)
}

// Engine produces candidate annotations for a waveform.
type Engine struct {
	ids IDSource
	rng *rand.Rand
}

// NewEngine creates a detection engine. A nil rng falls back to a
// time-seeded source; tests inject a fixed seed.
func NewEngine(ids IDSource, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{ids: ids, rng: rng}
}

// Detect walks the waveform in CycleInterval steps starting at t=0 and
// proposes an R-Peak at PeakOffset into each cycle, clamped to the last
// sample time. The candidate count depends only on the duration: a 10 s
// recording always yields 13.
func (e *Engine) Detect(ctx context.Context, sessionUUID string, waveform *models.Waveform, lead models.Lead) ([]models.Annotation, error) {
	if waveform == nil || waveform.SampleCount == 0 {
		return nil, ErrEmptyWaveform
	}
	if !lead.Valid() {
		return nil, ErrInvalidLead
	}

	samples, err := waveform.Samples()
	if err != nil {
		return nil, err
	}
	lastSampleTime := samples[len(samples)-1].Time

	var candidates []models.Annotation
	for cycleStart := 0.0; cycleStart < waveform.Duration; cycleStart += CycleInterval {
		id, err := e.ids.NextAnnotationID(ctx, sessionUUID)
		if err != nil {
			return nil, err
		}

		t := cycleStart + PeakOffset
		if t > lastSampleTime {
			t = lastSampleTime
		}
		if t < 0 {
			t = 0
		}

		candidates = append(candidates, models.Annotation{
			SessionID:    sessionUUID,
			AnnotationID: id,
			Time:         t,
			Type:         models.AnnotationRPeak,
			Lead:         lead,
			Source:       models.SourceAutoDetected,
			Confidence:   ConfidenceFloor + ConfidenceSpan*e.rng.Float64(),
		})
	}

	log.Printf("[DEBUG] Detection over %.2fs waveform proposed %d candidates for session %s",
		waveform.Duration, len(candidates), sessionUUID)
	return candidates, nil
}
