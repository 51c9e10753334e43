// Package synthesis generates the reference ECG-like waveform. It is the
// guaranteed fallback signal source: whenever no external waveform is
// supplied, or decoding one fails, a synthesized waveform takes its place.
package synthesis

import (
	"math"
	"math/rand"
	"time"

	"github.com/cardiolab/ecg-annotator-api/internal/models"
)

// Cardiac cycle model constants. One beat spans BeatInterval seconds; the
// three phase windows carve it into an atrial wave, the depolarization
// complex and the repolarization wave.
const (
	BeatInterval = 0.8

	pWaveStart = 0.10
	pWaveEnd   = 0.20
	pWavePeak  = 0.15

	qrsStart = 0.25
	qrsEnd   = 0.35
	qDip     = -0.3
	rSpike   = 1.5
	sDip     = -0.4

	tWaveStart = 0.45
	tWaveEnd   = 0.65
	tWavePeak  = 0.3

	noiseAmplitude = 0.05 // Uniform noise in [-noiseAmplitude/2, +noiseAmplitude/2]
)

// Synthesizer produces deterministic waveforms for a fixed seed.
type Synthesizer struct {
	rng *rand.Rand
}

// New creates a synthesizer with a fixed seed. Two synthesizers built from
// the same seed generate identical waveforms for identical arguments.
func New(seed int64) *Synthesizer {
	return &Synthesizer{rng: rand.New(rand.NewSource(seed))}
}

// NewRandom creates a synthesizer seeded from the wall clock. Output is not
// reproducible run to run but the noise stays bounded.
func NewRandom() *Synthesizer {
	return New(time.Now().UnixNano())
}

// Generate produces floor(duration*sampleRate) samples evenly spaced over
// [0, duration), the endpoint excluded. It fails only on non-positive
// arguments; generation itself cannot fail.
func (s *Synthesizer) Generate(duration float64, sampleRate int) ([]models.Sample, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	count := int(math.Floor(duration * float64(sampleRate)))
	step := duration / float64(count)

	samples := make([]models.Sample, count)
	for i := 0; i < count; i++ {
		t := float64(i) * step
		samples[i] = models.Sample{
			Time:      t,
			Amplitude: s.amplitudeAt(t),
		}
	}
	return samples, nil
}

// amplitudeAt superposes the phase-windowed beat components plus noise.
func (s *Synthesizer) amplitudeAt(t float64) float64 {
	phase := math.Mod(t, BeatInterval) / BeatInterval
	v := 0.0

	// Atrial depolarization: half-sine bump over (0.10, 0.20)
	if phase > pWaveStart && phase < pWaveEnd {
		v += pWavePeak * math.Sin((phase-pWaveStart)*math.Pi*10)
	}

	// The main depolarization complex: piecewise pulse over (0.25, 0.35),
	// split 30/40/30 into a small dip, a large spike and a smaller dip.
	if phase > qrsStart && phase < qrsEnd {
		qrsPhase := (phase - qrsStart) * 20
		switch {
		case qrsPhase < 0.3:
			v += qDip
		case qrsPhase < 0.7:
			v += rSpike
		default:
			v += sDip
		}
	}

	// Repolarization: half-sine bump over (0.45, 0.65)
	if phase > tWaveStart && phase < tWaveEnd {
		v += tWavePeak * math.Sin((phase-tWaveStart)*math.Pi*5)
	}

	// Bounded uniform noise on every sample
	v += (s.rng.Float64() - 0.5) * noiseAmplitude

	return v
}
