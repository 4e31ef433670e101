package decode

import "fmt"

// New constructs the Decoder selected by opts.Strategy.
// Returns ErrUnknownStrategy for values outside the enum.
func New(opts Options) (Decoder, error) {
	switch opts.Strategy {
	case MajorityOnly:
		return MajorityVote{}, nil
	case SyndromeFirst:
		return SyndromeAssisted{}, nil
	default:
		return nil, fmt.Errorf("decode.New(strategy=%d): %w", int(opts.Strategy), ErrUnknownStrategy)
	}
}

// MajorityVote is the default decoder: the recovered logical value is
// the bit held by more than half of the data qubits.
//
// The syndrome parameter is accepted for interface symmetry and ignored
// entirely — a known simplification of this pipeline, preserved on
// purpose. Select SyndromeFirst explicitly for syndrome-aware decoding.
type MajorityVote struct{}

// Decode returns 1 iff ones strictly outnumber zeros among data.
// Distance is validated odd at code construction, so a tie cannot occur
// for rows produced by this module; on arbitrary even-length input the
// strict rule resolves a tie to 0.
// Returns ErrEmptyData for an empty data vector. Complexity: O(len(data)).
func (MajorityVote) Decode(_, data []byte) (byte, error) {
	if len(data) == 0 {
		return 0, ErrEmptyData
	}
	ones := 0
	for _, bit := range data {
		if bit != 0 {
			ones++
		}
	}
	if ones > len(data)-ones {
		return 1, nil
	}
	return 0, nil
}

// SyndromeAssisted corrects before voting. Syndrome bit i is the parity
// of data qubits i and i+1, so the syndrome fixes the error pattern up
// to a global flip: the decoder reconstructs both candidates, applies
// the lighter one, and majority-votes the corrected row. With perfect
// readout this recovers from any error of weight ≤ (d-1)/2, like plain
// majority vote, but it remains robust when later extended to repeated
// syndrome rounds.
type SyndromeAssisted struct{}

// Decode corrects data against syndrome, then votes.
// Returns ErrEmptyData for empty data, ErrSyndromeLength when
// len(syndrome) != len(data)-1. Complexity: O(len(data)).
func (SyndromeAssisted) Decode(syndrome, data []byte) (byte, error) {
	if len(data) == 0 {
		return 0, ErrEmptyData
	}
	if len(syndrome) != len(data)-1 {
		return 0, fmt.Errorf("decode: syndrome len %d, data len %d: %w",
			len(syndrome), len(data), ErrSyndromeLength)
	}

	// Integrate the syndrome into a relative flip pattern: pattern[0]=0,
	// pattern[i+1] = pattern[i] XOR syndrome[i]. The true error is either
	// this pattern or its complement; assume the lighter one.
	pattern := make([]byte, len(data))
	weight := 0
	for i, s := range syndrome {
		pattern[i+1] = pattern[i]
		if s != 0 {
			pattern[i+1] ^= 1
		}
		if pattern[i+1] != 0 {
			weight++
		}
	}
	flip := byte(0)
	if 2*weight > len(data) {
		flip = 1 // complement is lighter
	}

	ones := 0
	for i, bit := range data {
		if bit^pattern[i]^flip != 0 {
			ones++
		}
	}
	if ones > len(data)-ones {
		return 1, nil
	}
	return 0, nil
}

// DecodeAll decodes every row of an outcome matrix with d, splitting
// each row at numAncillas into syndrome prefix and data suffix. The
// returned slice preserves shot order.
// Returns ErrRowTooShort when a row cannot be split into a prefix plus
// a non-empty suffix; the row index is attached via %w wrapping.
// Complexity: O(shots × row length).
func DecodeAll(rows [][]byte, numAncillas int, d Decoder) ([]byte, error) {
	if numAncillas < 0 {
		return nil, fmt.Errorf("decode.DecodeAll(numAncillas=%d): %w", numAncillas, ErrRowTooShort)
	}
	out := make([]byte, len(rows))
	for i, row := range rows {
		if len(row) <= numAncillas {
			return nil, fmt.Errorf("decode.DecodeAll(row %d, len %d): %w", i, len(row), ErrRowTooShort)
		}
		bit, err := d.Decode(row[:numAncillas], row[numAncillas:])
		if err != nil {
			return nil, fmt.Errorf("decode.DecodeAll(row %d): %w", i, err)
		}
		out[i] = bit
	}
	return out, nil
}
