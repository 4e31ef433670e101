package stats

import "errors"

// Sentinel errors for statistics aggregation. Callers branch with errors.Is.
var (
	// ErrNoShots indicates a rate or aggregation over zero shots; the
	// degenerate value is surfaced as an error, never as 0 or NaN.
	ErrNoShots = errors.New("stats: no shots to aggregate")
	// ErrRowTooShort indicates an outcome row shorter than the declared
	// syndrome prefix.
	ErrRowTooShort = errors.New("stats: outcome row shorter than syndrome prefix")
	// ErrInvalidBit indicates an expected logical value outside {0,1}.
	ErrInvalidBit = errors.New("stats: expected value must be 0 or 1")
)
