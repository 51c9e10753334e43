package sessions

import "errors"

var (
	// ErrSessionNotFound is returned when a session UUID is unknown
	ErrSessionNotFound = errors.New("session not found")

	// ErrWaveformNotFound is returned when a session has no waveform yet
	ErrWaveformNotFound = errors.New("waveform not found")

	// ErrInvalidLead is returned when a lead is outside the 12-lead set
	ErrInvalidLead = errors.New("invalid lead")

	// ErrEmptyWaveform is returned when a replacement waveform has no samples
	ErrEmptyWaveform = errors.New("waveform has no samples")
)
