package service

import "errors"

var (
	ErrBidNotFound   = errors.New("bid not found")
	ErrJobNotFound   = errors.New("job not found")
	ErrShareNotFound = errors.New("share link not found or expired")

	ErrValidation        = errors.New("missing or malformed required field")
	ErrInvalidTransition = errors.New("bid status transition is not allowed")
	ErrInvalidState      = errors.New("job is not in a state that allows this operation")
	ErrDuplicateKey      = errors.New("a job with this name already exists")

	ErrStoreUnavailable = errors.New("persistence store unavailable")
)
