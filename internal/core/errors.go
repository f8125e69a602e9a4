package core

import "errors"

var (
	// ErrInvalidInput reports malformed or missing process records.
	ErrInvalidInput = errors.New("invalid input")
	// ErrIOFailure reports that process records could not be opened or read.
	ErrIOFailure = errors.New("io failure")
	// ErrUnsupportedAlgorithm reports an algorithm selector outside the supported set.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
	// ErrEmptyBatch reports a batch with no processes handed to the scheduler.
	ErrEmptyBatch = errors.New("empty batch")
)
