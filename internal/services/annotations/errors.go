package annotations

import "errors"

var (
	// ErrOutOfRangeTime is returned when an annotation time falls outside
	// [0, current waveform duration]
	ErrOutOfRangeTime = errors.New("annotation time out of range")

	// ErrDuplicateID is returned when an annotation id collides with an
	// existing record in the same session
	ErrDuplicateID = errors.New("duplicate annotation id")

	// ErrInvalidID is returned when an annotation id is not positive
	ErrInvalidID = errors.New("invalid annotation id")

	// ErrInvalidType is returned when the annotation type is outside the
	// closed type set
	ErrInvalidType = errors.New("invalid annotation type")

	// ErrInvalidLead is returned when the lead is outside the 12-lead set
	ErrInvalidLead = errors.New("invalid lead")

	// ErrInvalidConfidence is returned when an auto-detected annotation's
	// confidence is outside [0, 1]
	ErrInvalidConfidence = errors.New("confidence out of range")

	// ErrInvalidRange is returned when a query interval is inverted
	ErrInvalidRange = errors.New("invalid time range")
)
