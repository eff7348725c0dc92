package domain

import "errors"

// Content source errors
var (
	ErrContentUnavailable = errors.New("content source unavailable")
	ErrMalformedContent   = errors.New("content source returned malformed data")
)
