// SPDX-License-Identifier: MIT
// Package: repcode/circuit
//
// errors.go — sentinel errors for the circuit package.
//
// Error policy (matching repcode-wide rules):
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Builders attach call context via %w wrapping, never by mutating
//     the sentinel text.
//   • Builders never panic; all invalid inputs surface as errors.

package circuit

import "errors"

// ErrInvalidProbability indicates a noise or readout probability outside
// the closed interval [0,1].
// Usage: if errors.Is(err, ErrInvalidProbability) { /* reject p */ }.
var ErrInvalidProbability = errors.New("circuit: probability out of range [0,1]")

// ErrQubitOutOfRange indicates an instruction referencing a qubit index
// outside the circuit's allocation. Surfaced by Validate, not by Build
// (Build cannot emit such an instruction).
var ErrQubitOutOfRange = errors.New("circuit: qubit index out of range")

// ErrMeasurementCount indicates the instruction stream does not contain
// exactly NumMeasurements OpMeasure instructions.
var ErrMeasurementCount = errors.New("circuit: measurement count mismatch")
