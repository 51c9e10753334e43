package export

import "errors"

var (
	// ErrEmptyDocument is returned when Import receives no document
	ErrEmptyDocument = errors.New("empty export document")

	// ErrInvalidLead is returned when the document lead is outside the 12-lead set
	ErrInvalidLead = errors.New("invalid lead")

	// ErrUnknownType is returned when an entry names an unrecognized annotation type
	ErrUnknownType = errors.New("unknown annotation type")
)
