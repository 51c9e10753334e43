package ingest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoder_Decode(t *testing.T) {
	decoder := NewDecoder()

	t.Run("converts a valid payload", func(t *testing.T) {
		payload := []SamplePayload{
			{Time: 0.0, Amplitude: 0.1},
			{Time: 0.002, Amplitude: 0.2},
			{Time: 0.004, Amplitude: -0.3},
		}

		samples, err := decoder.Decode(payload)
		require.NoError(t, err)
		require.Len(t, samples, 3)
		assert.Equal(t, 0.002, samples[1].Time)
		assert.Equal(t, -0.3, samples[2].Amplitude)
	})

	t.Run("rejects an empty payload", func(t *testing.T) {
		_, err := decoder.Decode(nil)
		assert.ErrorIs(t, err, ErrDecodeFailure)
	})

	t.Run("rejects non-monotonic time", func(t *testing.T) {
		payload := []SamplePayload{
			{Time: 0.0, Amplitude: 0.1},
			{Time: 0.004, Amplitude: 0.2},
			{Time: 0.002, Amplitude: 0.3},
		}

		_, err := decoder.Decode(payload)
		assert.ErrorIs(t, err, ErrDecodeFailure)
	})

	t.Run("rejects duplicate times", func(t *testing.T) {
		payload := []SamplePayload{
			{Time: 0.0, Amplitude: 0.1},
			{Time: 0.0, Amplitude: 0.2},
		}

		_, err := decoder.Decode(payload)
		assert.ErrorIs(t, err, ErrDecodeFailure)
	})

	t.Run("rejects a negative start time", func(t *testing.T) {
		payload := []SamplePayload{{Time: -1.0, Amplitude: 0.1}}

		_, err := decoder.Decode(payload)
		assert.ErrorIs(t, err, ErrDecodeFailure)
	})

	t.Run("rejects non-finite values", func(t *testing.T) {
		payload := []SamplePayload{
			{Time: 0.0, Amplitude: math.NaN()},
		}

		_, err := decoder.Decode(payload)
		assert.ErrorIs(t, err, ErrDecodeFailure)
	})
}

func TestDuration(t *testing.T) {
	decoder := NewDecoder()

	samples, err := decoder.Decode([]SamplePayload{
		{Time: 0.0, Amplitude: 0.0},
		{Time: 2.5, Amplitude: 0.1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2.5, Duration(samples))
	assert.Zero(t, Duration(nil))
}
