// Package decode defines options and strategies for repetition-code decoding.
package decode

// Decoder converts one shot's syndrome and data bits into the recovered
// logical value (0 or 1). Implementations must be pure: no state, no
// randomness, identical inputs always yield identical output.
type Decoder interface {
	Decode(syndrome, data []byte) (byte, error)
}

// Strategy selects a decoding policy.
//
//   - MajorityOnly — plain majority vote over the data bits, syndrome
//     ignored. Matches the historical behaviour of this pipeline and is
//     the default.
//
//   - SyndromeFirst — use the syndrome to undo the most likely error
//     pattern before voting. Strictly opt-in; never enabled implicitly.
type Strategy int

const (
	// MajorityOnly votes over raw data bits; the syndrome is ignored.
	MajorityOnly Strategy = iota

	// SyndromeFirst corrects the minimum-weight error pattern consistent
	// with the syndrome, then votes.
	SyndromeFirst
)

// Options configures decoder construction.
//
// Fields:
//   - Strategy — decoding policy; MajorityOnly unless set explicitly.
//
// Example:
//
//	d, err := decode.New(decode.Options{Strategy: decode.SyndromeFirst})
type Options struct {
	Strategy Strategy
}

// DefaultOptions returns the historical configuration: MajorityOnly.
func DefaultOptions() Options { return Options{Strategy: MajorityOnly} }
