package detection

import "errors"

var (
	// ErrEmptyWaveform is returned when detection is run before a waveform exists
	ErrEmptyWaveform = errors.New("waveform has no samples")

	// ErrInvalidLead is returned when the target lead is outside the 12-lead set
	ErrInvalidLead = errors.New("invalid lead")
)
