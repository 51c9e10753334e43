package synthesis

import "errors"

var (
	// ErrInvalidDuration is returned when the requested duration is not positive
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrInvalidSampleRate is returned when the requested sample rate is not positive
	ErrInvalidSampleRate = errors.New("invalid sample rate")
)
