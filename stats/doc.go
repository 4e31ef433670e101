// Package stats aggregates decoded shots and raw syndromes into the
// terminal outputs of a repetition-code experiment.
//
// 🚀 What does stats compute?
//
//   - LogicalErrorRate — the fraction of decoded shots that differ from
//     the expected logical value (0 by convention: every circuit in this
//     module encodes logical 0)
//   - AggregateSyndromes — frequency statistics over raw syndrome
//     prefixes, before any decoding: occurrence counts per exact bit
//     pattern, unique-pattern count, and the most frequent pattern
//
// ✨ Guarantees:
//   - a rate over zero shots is an error (ErrNoShots), never 0 or NaN
//   - pattern iteration and the most-common tie-break follow first-seen
//     order during aggregation — a reproducible policy, not map order
//
// ⚙️ Usage:
//
//	rate, err := stats.LogicalErrorRate(decoded, 0)
//	st, err := stats.AggregateSyndromes(rows, c.NumAncillas())
//	pattern, count, _ := st.MostCommon()
//
// See examples in example_test.go.
package stats
