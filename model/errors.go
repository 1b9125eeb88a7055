package model

import "github.com/pkg/errors"

// Configuration errors are returned before any grid is allocated.
var (
	ErrNegativeSize     = errors.New("grid size must not be negative")
	ErrGridTooLarge     = errors.New("grid size overflows the addressable index range")
	ErrInvalidThreshold = errors.New("seed threshold must be within [0.0, 1.0]")
	ErrCellCount        = errors.New("cell count does not match size*size")
)

// ErrStepFailed is returned when a generation could not be computed as a whole.
var ErrStepFailed = errors.New("generation step failed")
