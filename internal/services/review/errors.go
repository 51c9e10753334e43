package review

import "errors"

var (
	// ErrInvalidTransition is returned when a review is requested from any
	// status other than pending
	ErrInvalidTransition = errors.New("review can only be requested from pending")
)
