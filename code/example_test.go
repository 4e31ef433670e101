package code_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/repcode/code"
)

// ExampleNew constructs a distance-5 bit-flip code and prints its
// derived measurement layout.
func ExampleNew() {
	c, err := code.New(5, code.BitFlip)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c)
	fmt.Println("data qubits:", c.NumQubits())
	fmt.Println("ancillas:", c.NumAncillas())
	fmt.Println("measurements:", c.NumMeasurements())
	// Output:
	// repetition(d=5, basis=z)
	// data qubits: 5
	// ancillas: 4
	// measurements: 9
}

// ExampleNew_invalid shows construction-time validation: even distances
// are rejected before any circuit can be built.
func ExampleNew_invalid() {
	_, err := code.New(4, code.BitFlip)
	fmt.Println(errors.Is(err, code.ErrEvenDistance))
	// Output:
	// true
}
