package comments

import "errors"

var (
	// ErrMissingAuthor is returned when a comment has no author
	ErrMissingAuthor = errors.New("comment author is required")

	// ErrEmptyComment is returned when a comment has no text
	ErrEmptyComment = errors.New("comment text is required")
)
