// Package decode recovers the logical bit from one shot of repetition-code
// measurement outcomes.
//
// 🚀 What is decoding here?
//
//	Each outcome row splits into a syndrome prefix (ancilla parities) and
//	a data suffix (final qubit readouts). A Decoder turns that pair into
//	a single logical bit:
//	  • MajorityVote — the default: counts ones vs zeros among the data
//	    bits and returns the winner. It deliberately ignores the
//	    syndrome; the parameter exists for interface symmetry. This is a
//	    documented simplification, not a bug — at higher distances a
//	    syndrome-aware decoder generally performs better.
//	  • SyndromeAssisted — opt-in strategy: reconstructs the minimum-
//	    weight error pattern consistent with the syndrome, corrects the
//	    data bits, then majority-votes the corrected row.
//
// ✨ Guarantees:
//   - Decode is a pure function: identical inputs, identical output
//   - the result is always 0 or 1; empty data is rejected with
//     ErrEmptyData (never an undefined vote)
//   - ties cannot occur for valid codes — distance is validated odd at
//     code.New, so the strict ones > zeros rule is an invariant, not a
//     hidden tie-break
//
// ⚙️ Usage:
//
//	d, _ := decode.New(decode.DefaultOptions())
//	bit, err := d.Decode(row[:c.NumAncillas()], row[c.NumAncillas():])
//
// DecodeAll applies a decoder across a whole outcome matrix, preserving
// shot order. See example_test.go.
package decode
