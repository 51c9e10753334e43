package viewport

import "errors"

var (
	// ErrInvalidZoom is returned when the zoom factor is not positive
	ErrInvalidZoom = errors.New("invalid zoom factor")

	// ErrEmptyWaveform is returned when an operation needs at least one sample
	ErrEmptyWaveform = errors.New("empty waveform")
)
