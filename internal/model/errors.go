package model

import "errors"

// Error kinds surfaced by the core. The specific condition is carried in the
// wrapped message; callers branch with errors.Is.
var (
	// ErrConfiguration marks invalid parameters: non-positive simulation
	// counts, alpha outside (0,1), zero total portfolio value.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrInsufficientData marks too few observations or simulations for
	// the requested computation.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrDateOutOfRange marks a query date outside the series bounds.
	ErrDateOutOfRange = errors.New("date out of range")
)
