// SPDX-License-Identifier: MIT
// Package: repcode/circuit
//
// Package circuit builds deterministic gate-level descriptions of
// repetition-code experiments: encoding, noise injection, syndrome
// extraction and final measurement.
//
// 🚀 What does the builder emit?
//
//	An ordered []Instruction over a tagged operation set:
//	  • OpPrepareOne   — X gate used for logical-1 state preparation
//	  • OpRotate       — Hadamard-equivalent basis rotation
//	  • OpEntangle     — CNOT(control, target) parity spreading
//	  • OpReset        — force an ancilla back to |0⟩
//	  • OpError        — probabilistic X/Z channel on one qubit
//	  • OpMeasure      — read out a qubit, consuming the next outcome slot
//
//	Instruction order is semantics: it fixes the mapping from measurement
//	slot to physical meaning. Every circuit built here measures its
//	ancillas first (in index order), then its data qubits (in index
//	order) — the partition the decode package relies on.
//
// ✨ Determinism & validation:
//   - Build(code, opts) is a pure function: same inputs, same circuit
//   - probabilities are validated up front (ErrInvalidProbability);
//     zero-probability channels emit no instruction at all
//   - Validate() rechecks qubit allocation and measurement counts before
//     a circuit is handed to an execution service
//
// ⚙️ Usage:
//
//	c, _ := code.New(3, code.BitFlip)
//	qc, err := circuit.Build(c, circuit.Options{NoiseProb: 0.1})
//	if err != nil { ... }
//	for _, ins := range qc.Instructions() {
//	  fmt.Println(ins)
//	}
//
// See examples in example_test.go for the full d=3 instruction listing.
package circuit
