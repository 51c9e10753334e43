// Package viewport maps time coordinates to renderable positions. It is
// pure: no state, no clamping — callers clamp zoom to their configured range
// before asking for a window.
package viewport

import (
	"math"

	"github.com/cardiolab/ecg-annotator-api/internal/models"
)

// Window is the visible time sub-range of the full waveform.
type Window struct {
	TMin float64 `json:"t_min"`
	TMax float64 `json:"t_max"`
}

// Contains reports whether t falls inside the closed window.
func (w Window) Contains(t float64) bool {
	return t >= w.TMin && t <= w.TMax
}

// VisibleWindow computes the visible range for a zoom factor. Zoom scales
// inversely: zoom 2 shows the first half of the recording. Non-positive
// zoom is an error, never silently corrected here.
func VisibleWindow(totalDuration, zoom float64) (Window, error) {
	if zoom <= 0 {
		return Window{}, ErrInvalidZoom
	}
	return Window{TMin: 0, TMax: totalDuration / zoom}, nil
}

// ClampZoom bounds a positive zoom factor into [min, max]. Non-positive
// values pass through so VisibleWindow can reject them.
func ClampZoom(zoom, min, max float64) float64 {
	if zoom <= 0 {
		return zoom
	}
	if zoom < min {
		return min
	}
	if zoom > max {
		return max
	}
	return zoom
}

// NearestSampleAmplitude returns the amplitude of the sample whose time is
// closest to t, ties broken toward the earlier sample. Nearest-neighbor on
// purpose: marker anchoring must stay stable under resampling, which linear
// interpolation would not give.
func NearestSampleAmplitude(samples []models.Sample, t float64) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrEmptyWaveform
	}

	best := 0
	bestDist := math.Abs(samples[0].Time - t)
	for i := 1; i < len(samples); i++ {
		d := math.Abs(samples[i].Time - t)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return samples[best].Amplitude, nil
}

// AmplitudeRange returns the min and max amplitude of the waveform, used to
// size annotation marker lines in the viewer.
func AmplitudeRange(samples []models.Sample) (min, max float64, err error) {
	if len(samples) == 0 {
		return 0, 0, ErrEmptyWaveform
	}

	min, max = samples[0].Amplitude, samples[0].Amplitude
	for _, s := range samples[1:] {
		if s.Amplitude < min {
			min = s.Amplitude
		}
		if s.Amplitude > max {
			max = s.Amplitude
		}
	}
	return min, max, nil
}
