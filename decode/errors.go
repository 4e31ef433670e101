package decode

import "errors"

// Sentinel errors for decoding. Callers branch with errors.Is.
var (
	// ErrEmptyData indicates a data-bit vector with no elements; a vote
	// over nothing is undefined and must be guarded by the caller.
	ErrEmptyData = errors.New("decode: data bits must be non-empty")
	// ErrSyndromeLength indicates a syndrome whose length does not match
	// len(data)-1, required by the syndrome-assisted strategy.
	ErrSyndromeLength = errors.New("decode: syndrome length must be len(data)-1")
	// ErrRowTooShort indicates an outcome row that cannot be split into
	// a syndrome prefix and a non-empty data suffix.
	ErrRowTooShort = errors.New("decode: outcome row shorter than syndrome prefix")
	// ErrUnknownStrategy indicates an Options.Strategy outside the enum.
	ErrUnknownStrategy = errors.New("decode: unknown decoding strategy")
)
