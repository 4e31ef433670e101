package stats

import (
	"fmt"
	"strings"
)

// LogicalErrorRate returns the fraction of decoded shots that differ
// from expected (the originally encoded logical value; 0 by the module
// convention that every circuit encodes logical 0).
// Returns ErrNoShots for an empty input and ErrInvalidBit for an
// expected value outside {0,1}. Complexity: O(shots).
func LogicalErrorRate(decoded []byte, expected byte) (float64, error) {
	if len(decoded) == 0 {
		return 0, fmt.Errorf("stats.LogicalErrorRate: %w", ErrNoShots)
	}
	if expected > 1 {
		return 0, fmt.Errorf("stats.LogicalErrorRate(expected=%d): %w", expected, ErrInvalidBit)
	}
	errs := 0
	for _, bit := range decoded {
		if bit != expected {
			errs++
		}
	}
	return float64(errs) / float64(len(decoded)), nil
}

// SyndromeStats holds frequency statistics over raw syndrome patterns.
// Patterns are keyed by their compact bit-string form (e.g. "010");
// insertion order is preserved so tie-breaks are reproducible.
type SyndromeStats struct {
	counts     map[string]int
	order      []string // patterns in first-seen order
	totalShots int
}

// Count returns the occurrence count of a pattern given as a bit slice.
func (s SyndromeStats) Count(pattern []byte) int {
	return s.counts[patternKey(pattern)]
}

// CountKey returns the occurrence count of a bit-string pattern key.
func (s SyndromeStats) CountKey(key string) int { return s.counts[key] }

// Patterns returns all observed pattern keys in first-seen order.
func (s SyndromeStats) Patterns() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// NumUnique returns the number of distinct syndrome patterns observed.
func (s SyndromeStats) NumUnique() int { return len(s.order) }

// TotalShots returns the number of aggregated rows.
func (s SyndromeStats) TotalShots() int { return s.totalShots }

// MostCommon returns the pattern with the highest count and that count.
// Ties resolve to the pattern first encountered during aggregation.
// The ok result is false only for an empty statistics value.
func (s SyndromeStats) MostCommon() (pattern string, count int, ok bool) {
	for _, key := range s.order {
		if s.counts[key] > count {
			pattern, count, ok = key, s.counts[key], true
		}
	}
	return pattern, count, ok
}

// AggregateSyndromes groups the syndrome prefixes of an outcome matrix
// by exact bit-pattern equality. Rows are consumed in shot order, which
// fixes the first-seen tie-break of MostCommon.
// Returns ErrNoShots for an empty matrix and ErrRowTooShort when a row
// is shorter than numAncillas. Complexity: O(shots × numAncillas).
func AggregateSyndromes(rows [][]byte, numAncillas int) (SyndromeStats, error) {
	if len(rows) == 0 {
		return SyndromeStats{}, fmt.Errorf("stats.AggregateSyndromes: %w", ErrNoShots)
	}
	if numAncillas < 0 {
		return SyndromeStats{}, fmt.Errorf("stats.AggregateSyndromes(numAncillas=%d): %w", numAncillas, ErrRowTooShort)
	}
	st := SyndromeStats{counts: make(map[string]int), totalShots: len(rows)}
	for i, row := range rows {
		if len(row) < numAncillas {
			return SyndromeStats{}, fmt.Errorf("stats.AggregateSyndromes(row %d, len %d): %w", i, len(row), ErrRowTooShort)
		}
		key := patternKey(row[:numAncillas])
		if _, seen := st.counts[key]; !seen {
			st.order = append(st.order, key)
		}
		st.counts[key]++
	}
	return st, nil
}

// patternKey renders a bit slice as its compact "0"/"1" string form.
// Any non-zero byte counts as 1.
func patternKey(bits []byte) string {
	var b strings.Builder
	b.Grow(len(bits))
	for _, bit := range bits {
		if bit != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
