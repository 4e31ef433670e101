// Package code defines the parameters of a 1-D quantum repetition code:
// its distance (number of physical qubits) and the basis it protects.
//
// 🚀 What is a repetition code?
//
//	The simplest quantum error-correcting code: one logical qubit is
//	copied across an odd number of physical qubits, so that up to
//	(distance-1)/2 independent flips can be out-voted at decode time.
//	  • Z-basis (BitFlip) codes protect against bit-flip (X) errors
//	  • X-basis (PhaseFlip) codes protect against phase-flip (Z) errors
//
// ✨ Key guarantees:
//   - Code is an immutable value: construct once with New, never mutate
//   - Validation happens at construction time only — a Code in hand is
//     always well-formed (odd distance ≥ 3, known basis)
//   - Derived quantities (ancilla count, measurement count) are methods,
//     never stored state that could drift
//
// ⚙️ Usage:
//
//	c, err := code.New(5, code.BitFlip)
//	if err != nil {
//	  // handle ErrEvenDistance / ErrDistanceTooSmall / ErrInvalidBasis
//	}
//	fmt.Println(c.NumQubits(), c.NumAncillas()) // 5 4
//
// See examples in example_test.go.
package code
