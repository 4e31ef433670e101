package code

import "errors"

// Sentinel errors for code construction. Callers branch with errors.Is.
var (
	// ErrDistanceTooSmall indicates a distance below the minimum of 3.
	ErrDistanceTooSmall = errors.New("code: distance must be at least 3")
	// ErrEvenDistance indicates an even distance; majority vote needs an odd one.
	ErrEvenDistance = errors.New("code: distance must be odd")
	// ErrInvalidBasis indicates a basis outside {BitFlip, PhaseFlip}.
	ErrInvalidBasis = errors.New("code: basis must be BitFlip or PhaseFlip")
)
