package ingest

import "errors"

var (
	// ErrDecodeFailure is returned for any malformed upload payload
	ErrDecodeFailure = errors.New("decode failure")
)
