package code

import "fmt"

// Basis selects which error family the repetition code protects against.
type Basis int

const (
	// BitFlip is the Z-basis code: logical 0 = |00...0⟩, protects against X errors.
	BitFlip Basis = iota
	// PhaseFlip is the X-basis code: logical 0 = |++...+⟩, protects against Z errors.
	PhaseFlip
)

// String returns the conventional one-letter basis name ("z" or "x").
func (b Basis) String() string {
	switch b {
	case BitFlip:
		return "z"
	case PhaseFlip:
		return "x"
	default:
		return fmt.Sprintf("basis(%d)", int(b))
	}
}

// Valid reports whether b is one of the two known bases.
func (b Basis) Valid() bool {
	return b == BitFlip || b == PhaseFlip
}

// ParseBasis converts the conventional one-letter name into a Basis.
// Accepts "z" (bit-flip) and "x" (phase-flip); anything else returns
// ErrInvalidBasis.
func ParseBasis(s string) (Basis, error) {
	switch s {
	case "z", "Z":
		return BitFlip, nil
	case "x", "X":
		return PhaseFlip, nil
	default:
		return 0, fmt.Errorf("parse basis %q: %w", s, ErrInvalidBasis)
	}
}

// Code describes one repetition-code configuration. It is an immutable
// value: construct with New, pass by value, never mutate.
type Code struct {
	distance int
	basis    Basis
}

// New validates and constructs a Code.
// Returns ErrDistanceTooSmall for distance < 3, ErrEvenDistance for even
// distance, ErrInvalidBasis for an unknown basis. Complexity: O(1).
func New(distance int, basis Basis) (Code, error) {
	if distance < 3 {
		return Code{}, fmt.Errorf("code.New(distance=%d): %w", distance, ErrDistanceTooSmall)
	}
	if distance%2 == 0 {
		return Code{}, fmt.Errorf("code.New(distance=%d): %w", distance, ErrEvenDistance)
	}
	if !basis.Valid() {
		return Code{}, fmt.Errorf("code.New(basis=%d): %w", int(basis), ErrInvalidBasis)
	}
	return Code{distance: distance, basis: basis}, nil
}

// Distance returns the code distance (number of physical qubits).
func (c Code) Distance() int { return c.distance }

// Basis returns the protected basis.
func (c Code) Basis() Basis { return c.basis }

// NumQubits returns the number of physical data qubits (= distance).
func (c Code) NumQubits() int { return c.distance }

// NumAncillas returns the number of syndrome ancillas (= distance - 1),
// one per adjacent data-qubit pair.
func (c Code) NumAncillas() int { return c.distance - 1 }

// NumMeasurements returns the total measurement count of a full circuit:
// all ancilla readouts followed by all data readouts.
func (c Code) NumMeasurements() int { return c.NumAncillas() + c.NumQubits() }

// String renders the code as e.g. "repetition(d=5, basis=z)".
func (c Code) String() string {
	return fmt.Sprintf("repetition(d=%d, basis=%s)", c.distance, c.basis)
}
