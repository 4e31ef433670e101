// SPDX-License-Identifier: MIT
// Package: repcode/circuit
//
// types.go — instruction set, circuit value and builder options.

package circuit

import "fmt"

// Op tags one circuit operation variant.
type Op int

const (
	// OpPrepareOne applies an X gate, flipping a qubit prepared in |0⟩ to |1⟩.
	// Used only for logical-1 state preparation.
	OpPrepareOne Op = iota
	// OpRotate applies a Hadamard-equivalent rotation, exchanging the Z and
	// X bases on one qubit.
	OpRotate
	// OpEntangle applies CNOT(Control, Target), XOR-ing the control's
	// computational-basis value onto the target.
	OpEntangle
	// OpReset forces a qubit (always an ancilla here) back to |0⟩.
	OpReset
	// OpError applies the named noise Channel to one qubit with
	// probability Prob.
	OpError
	// OpMeasure reads out a qubit, consuming the next slot in the
	// circuit's outcome ordering.
	OpMeasure
)

// String returns the stim-flavoured mnemonic for the operation.
func (o Op) String() string {
	switch o {
	case OpPrepareOne:
		return "X"
	case OpRotate:
		return "H"
	case OpEntangle:
		return "CNOT"
	case OpReset:
		return "R"
	case OpError:
		return "ERR"
	case OpMeasure:
		return "M"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Channel names the probabilistic error family of an OpError instruction.
type Channel int

const (
	// ChanNone marks instructions that carry no error channel.
	ChanNone Channel = iota
	// ChanBitFlip is the X (bit-flip) channel.
	ChanBitFlip
	// ChanPhaseFlip is the Z (phase-flip) channel.
	ChanPhaseFlip
)

// String returns the channel mnemonic ("X_ERROR" / "Z_ERROR").
func (ch Channel) String() string {
	switch ch {
	case ChanNone:
		return "NONE"
	case ChanBitFlip:
		return "X_ERROR"
	case ChanPhaseFlip:
		return "Z_ERROR"
	default:
		return fmt.Sprintf("channel(%d)", int(ch))
	}
}

// Instruction is a single circuit operation. The zero value is not
// meaningful; instructions are produced only by the builders.
type Instruction struct {
	// Op selects the variant; the remaining fields are meaningful only
	// for the variants noted below.
	Op Op
	// Target is the qubit the operation acts on (all variants).
	Target int
	// Control is the CNOT control qubit (OpEntangle only; -1 otherwise).
	Control int
	// Channel names the error family (OpError only; ChanNone otherwise).
	Channel Channel
	// Prob is the Bernoulli probability of the error (OpError only).
	Prob float64
}

// String renders the instruction in a compact stim-like form,
// e.g. "CNOT 0 3" or "X_ERROR(0.1) 2".
func (in Instruction) String() string {
	switch in.Op {
	case OpEntangle:
		return fmt.Sprintf("%s %d %d", in.Op, in.Control, in.Target)
	case OpError:
		return fmt.Sprintf("%s(%g) %d", in.Channel, in.Prob, in.Target)
	default:
		return fmt.Sprintf("%s %d", in.Op, in.Target)
	}
}

// Circuit is an ordered instruction sequence over a fixed qubit
// allocation. Treat as read-only once built; Instructions returns a
// defensive copy so a held Circuit can never be mutated through its
// accessor.
type Circuit struct {
	instructions []Instruction
	numQubits    int // total allocation: data + ancillas
	numData      int // data qubits, indices [0, numData)
	numAncillas  int // ancilla qubits, indices [numData, numQubits)
	numMeasures  int // declared outcome slots; 0 for encoding-only circuits
}

// New assembles a Circuit from an externally produced instruction
// sequence — the form an execution service receives. The instructions
// are copied; declared counts are taken on trust and checked against
// the stream by Validate, which samplers run before executing.
func New(ins []Instruction, numData, numAncillas, numMeasurements int) Circuit {
	cp := make([]Instruction, len(ins))
	copy(cp, ins)
	return Circuit{
		instructions: cp,
		numQubits:    numData + numAncillas,
		numData:      numData,
		numAncillas:  numAncillas,
		numMeasures:  numMeasurements,
	}
}

// Instructions returns a copy of the ordered instruction sequence.
func (c Circuit) Instructions() []Instruction {
	out := make([]Instruction, len(c.instructions))
	copy(out, c.instructions)
	return out
}

// NumQubits returns the total qubit allocation (data + ancillas).
func (c Circuit) NumQubits() int { return c.numQubits }

// NumData returns the number of data qubits.
func (c Circuit) NumData() int { return c.numData }

// NumAncillas returns the number of ancilla qubits.
func (c Circuit) NumAncillas() int { return c.numAncillas }

// NumMeasurements returns the declared outcome count. For measurement
// circuits this is one slot per ancilla followed by one slot per data
// qubit; encoding-only circuits declare zero.
func (c Circuit) NumMeasurements() int { return c.numMeasures }

// MeasurementTargets returns the qubit index measured by each outcome
// slot, in slot order. For every circuit built by this package the
// result is [ancilla_0..ancilla_{k-1}, data_0..data_{n-1}].
func (c Circuit) MeasurementTargets() []int {
	targets := make([]int, 0, c.NumMeasurements())
	for _, in := range c.instructions {
		if in.Op == OpMeasure {
			targets = append(targets, in.Target)
		}
	}
	return targets
}

// Options carries the tunable noise parameters of Build.
type Options struct {
	// NoiseProb is the per-qubit Bernoulli probability of the channel
	// matched to the protected basis. Zero emits no noise instructions.
	NoiseProb float64
	// MeasurementNoise is the per-ancilla readout flip probability,
	// applied just before each ancilla measurement. Zero emits nothing.
	MeasurementNoise float64
}

// DefaultOptions returns a noiseless configuration.
func DefaultOptions() Options { return Options{} }
