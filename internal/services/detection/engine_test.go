package detection

import (
	"context"
	"math/rand"
	"testing"

	"github.com/cardiolab/ecg-annotator-api/internal/models"
	"github.com/cardiolab/ecg-annotator-api/internal/services/synthesis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequentialIDs mints 1, 2, 3, ... without a database.
type sequentialIDs struct {
	next int64
}

func (s *sequentialIDs) NextAnnotationID(ctx context.Context, sessionUUID string) (int64, error) {
	s.next++
	return s.next, nil
}

func buildWaveform(t *testing.T, duration float64, sampleRate int) *models.Waveform {
	t.Helper()

	samples, err := synthesis.New(42).Generate(duration, sampleRate)
	require.NoError(t, err)

	waveform := &models.Waveform{
		SessionID:  "session-1",
		Duration:   duration,
		SampleRate: sampleRate,
		Source:     models.WaveformSynthesized,
	}
	require.NoError(t, waveform.SetSamples(samples))
	return waveform
}

func TestEngine_Detect(t *testing.T) {
	ctx := context.Background()

	t.Run("ten second waveform yields thirteen candidates", func(t *testing.T) {
		engine := NewEngine(&sequentialIDs{}, rand.New(rand.NewSource(1)))
		waveform := buildWaveform(t, 10.0, 500)

		candidates, err := engine.Detect(ctx, "session-1", waveform, models.LeadII)
		require.NoError(t, err)
		assert.Len(t, candidates, 13)
	})

	t.Run("candidates land at the cycle offset", func(t *testing.T) {
		engine := NewEngine(&sequentialIDs{}, rand.New(rand.NewSource(1)))
		waveform := buildWaveform(t, 10.0, 500)

		candidates, err := engine.Detect(ctx, "session-1", waveform, models.LeadII)
		require.NoError(t, err)

		for i, c := range candidates {
			expected := float64(i)*CycleInterval + PeakOffset
			assert.InDelta(t, expected, c.Time, 1e-9)
		}
	})

	t.Run("final candidate is clamped to the last sample", func(t *testing.T) {
		engine := NewEngine(&sequentialIDs{}, rand.New(rand.NewSource(1)))
		// 1.7 s puts the third cycle's offset (1.88 s) past the recording.
		waveform := buildWaveform(t, 1.7, 500)

		samples, err := waveform.Samples()
		require.NoError(t, err)
		lastSampleTime := samples[len(samples)-1].Time

		candidates, err := engine.Detect(ctx, "session-1", waveform, models.LeadII)
		require.NoError(t, err)
		require.Len(t, candidates, 3)
		assert.InDelta(t, lastSampleTime, candidates[2].Time, 1e-9)
	})

	t.Run("candidates carry detector metadata", func(t *testing.T) {
		engine := NewEngine(&sequentialIDs{}, rand.New(rand.NewSource(1)))
		waveform := buildWaveform(t, 10.0, 500)

		candidates, err := engine.Detect(ctx, "session-1", waveform, models.LeadV1)
		require.NoError(t, err)

		for i, c := range candidates {
			assert.Equal(t, "session-1", c.SessionID)
			assert.Equal(t, int64(i+1), c.AnnotationID)
			assert.Equal(t, models.AnnotationRPeak, c.Type)
			assert.Equal(t, models.LeadV1, c.Lead)
			assert.Equal(t, models.SourceAutoDetected, c.Source)
			assert.GreaterOrEqual(t, c.Confidence, ConfidenceFloor)
			assert.LessOrEqual(t, c.Confidence, ConfidenceFloor+ConfidenceSpan)
		}
	})

	t.Run("rejects a missing waveform", func(t *testing.T) {
		engine := NewEngine(&sequentialIDs{}, rand.New(rand.NewSource(1)))

		_, err := engine.Detect(ctx, "session-1", nil, models.LeadII)
		assert.ErrorIs(t, err, ErrEmptyWaveform)
	})

	t.Run("rejects an unknown lead", func(t *testing.T) {
		engine := NewEngine(&sequentialIDs{}, rand.New(rand.NewSource(1)))
		waveform := buildWaveform(t, 10.0, 500)

		_, err := engine.Detect(ctx, "session-1", waveform, "XIII")
		assert.ErrorIs(t, err, ErrInvalidLead)
	})
}
