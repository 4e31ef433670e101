// SPDX-License-Identifier: MIT
// Package: repcode/circuit
//
// build.go — deterministic circuit constructors.
//
// Both builders are pure functions over their inputs. The emission
// order below is load-bearing: the decode package assumes outcome slot
// k < NumAncillas is the parity of data qubits (k, k+1), and the
// remaining slots are the data qubits in index order.

package circuit

import (
	"fmt"

	"github.com/katalvlaran/repcode/code"
)

// Build constructs the full repetition-code circuit for c:
//
//  1. Encoding: CNOT(0, i) for i in 1..d-1 spreads qubit 0 onto all
//     data qubits.
//  2. Basis rotation (PhaseFlip only): rotate every data qubit into the
//     X basis.
//  3. Noise: one OpError per data qubit with the channel matched to the
//     protected basis (X_ERROR for the Z code, Z_ERROR for the X code).
//  4. Syndrome extraction: for the PhaseFlip code, rotate the data back
//     first so the entangling protocol measures the relevant parity.
//     Then per adjacent pair (i, i+1), using ancilla d+i: reset,
//     CNOT(i, a), CNOT(i+1, a), optional readout-error, measure.
//  5. Final measurement of every data qubit, in the frame it sits in
//     after step 4 (for the PhaseFlip code that frame already reports
//     the logical-basis outcome, so no closing rotation is emitted).
//
// Returns ErrInvalidProbability if either option lies outside [0,1].
// Complexity: O(d) instructions, single pass.
func Build(c code.Code, opts Options) (Circuit, error) {
	if err := checkProb("NoiseProb", opts.NoiseProb); err != nil {
		return Circuit{}, err
	}
	if err := checkProb("MeasurementNoise", opts.MeasurementNoise); err != nil {
		return Circuit{}, err
	}

	d := c.NumQubits()
	ancillas := c.NumAncillas()
	noise := channelFor(c.Basis())

	ins := make([]Instruction, 0, 6*d)

	// 1. Encoding: fan qubit 0 out across the register.
	for i := 1; i < d; i++ {
		ins = append(ins, entangle(0, i))
	}

	// 2. Rotate into the X basis for the phase-flip code.
	if c.Basis() == code.PhaseFlip {
		for i := 0; i < d; i++ {
			ins = append(ins, rotate(i))
		}
	}

	// 3. Independent per-qubit noise. p == 0 emits nothing: a no-op
	// channel, not a zero-probability instruction.
	if opts.NoiseProb > 0 {
		for i := 0; i < d; i++ {
			ins = append(ins, errorOn(i, noise, opts.NoiseProb))
		}
	}

	// 4. Syndrome extraction. The phase-flip code rotates back so that
	// CNOT parity checks pick up the X-type parity of the original frame.
	if c.Basis() == code.PhaseFlip {
		for i := 0; i < d; i++ {
			ins = append(ins, rotate(i))
		}
	}
	for i := 0; i < ancillas; i++ {
		a := d + i // ancilla register sits above the data register
		ins = append(ins,
			Instruction{Op: OpReset, Target: a, Control: -1},
			entangle(i, a),
			entangle(i+1, a),
		)
		if opts.MeasurementNoise > 0 {
			ins = append(ins, errorOn(a, ChanBitFlip, opts.MeasurementNoise))
		}
		ins = append(ins, measure(a))
	}

	// 5. Data readout, index order. Slots [ancillas, ancillas+d).
	for i := 0; i < d; i++ {
		ins = append(ins, measure(i))
	}

	return Circuit{
		instructions: ins,
		numQubits:    d + ancillas,
		numData:      d,
		numAncillas:  ancillas,
		numMeasures:  ancillas + d,
	}, nil
}

// BuildEncoding constructs only the encoding stage for c: optional
// logical-1 preparation on qubit 0, CNOT fan-out, and the basis
// rotation for the phase-flip code. No noise, no measurements — useful
// for inspecting or extending the encoded state.
func BuildEncoding(c code.Code, logicalOne bool) Circuit {
	d := c.NumQubits()
	ins := make([]Instruction, 0, 2*d)
	if logicalOne {
		ins = append(ins, Instruction{Op: OpPrepareOne, Target: 0, Control: -1})
	}
	for i := 1; i < d; i++ {
		ins = append(ins, entangle(0, i))
	}
	if c.Basis() == code.PhaseFlip {
		for i := 0; i < d; i++ {
			ins = append(ins, rotate(i))
		}
	}
	return Circuit{instructions: ins, numQubits: d, numData: d, numAncillas: 0}
}

// BuildSingleQubit constructs the unprotected one-qubit reference
// circuit: optional rotation into the basis, one error channel, the
// inverse rotation, one measurement. It has no syndrome concept; its
// single outcome slot is the data readout.
// Returns ErrInvalidProbability for noiseProb outside [0,1].
func BuildSingleQubit(b code.Basis, noiseProb float64) (Circuit, error) {
	if err := checkProb("noiseProb", noiseProb); err != nil {
		return Circuit{}, err
	}

	ins := make([]Instruction, 0, 4)
	if b == code.PhaseFlip {
		ins = append(ins, rotate(0))
	}
	if noiseProb > 0 {
		ins = append(ins, errorOn(0, channelFor(b), noiseProb))
	}
	if b == code.PhaseFlip {
		ins = append(ins, rotate(0))
	}
	ins = append(ins, measure(0))

	return Circuit{instructions: ins, numQubits: 1, numData: 1, numAncillas: 0, numMeasures: 1}, nil
}

// Validate rechecks the circuit against its declared allocation: every
// referenced qubit index must be allocated and the stream must contain
// exactly NumMeasurements measure instructions. Intended as the guard an
// execution service runs before sampling.
// Returns ErrQubitOutOfRange or ErrMeasurementCount.
func (c Circuit) Validate() error {
	measures := 0
	for i, in := range c.instructions {
		if in.Target < 0 || in.Target >= c.numQubits {
			return fmt.Errorf("circuit: instruction %d (%s): target: %w", i, in, ErrQubitOutOfRange)
		}
		if in.Op == OpEntangle && (in.Control < 0 || in.Control >= c.numQubits) {
			return fmt.Errorf("circuit: instruction %d (%s): control: %w", i, in, ErrQubitOutOfRange)
		}
		if in.Op == OpMeasure {
			measures++
		}
	}
	if measures != c.NumMeasurements() {
		return fmt.Errorf("circuit: %d measures, want %d: %w", measures, c.NumMeasurements(), ErrMeasurementCount)
	}
	return nil
}

// channelFor maps the protected basis to its matching error channel:
// the Z code is attacked by X errors and vice versa.
func channelFor(b code.Basis) Channel {
	if b == code.PhaseFlip {
		return ChanPhaseFlip
	}
	return ChanBitFlip
}

// checkProb validates a probability parameter, wrapping the sentinel
// with the parameter name for context.
func checkProb(name string, p float64) error {
	if p < 0 || p > 1 || p != p { // p != p rejects NaN
		return fmt.Errorf("circuit: %s=%v: %w", name, p, ErrInvalidProbability)
	}
	return nil
}

func entangle(control, target int) Instruction {
	return Instruction{Op: OpEntangle, Control: control, Target: target}
}

func rotate(target int) Instruction {
	return Instruction{Op: OpRotate, Target: target, Control: -1}
}

func errorOn(target int, ch Channel, p float64) Instruction {
	return Instruction{Op: OpError, Target: target, Control: -1, Channel: ch, Prob: p}
}

func measure(target int) Instruction {
	return Instruction{Op: OpMeasure, Target: target, Control: -1}
}
