// SPDX-License-Identifier: MIT

package circuit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/repcode/circuit"
	"github.com/katalvlaran/repcode/code"
)

func mustCode(t *testing.T, d int, b code.Basis) code.Code {
	t.Helper()
	c, err := code.New(d, b)
	require.NoError(t, err)
	return c
}

//----------------------------------------------------------------------------//
// Build — validation
//----------------------------------------------------------------------------//

func TestBuild_InvalidProbabilities(t *testing.T) {
	c := mustCode(t, 3, code.BitFlip)
	cases := []struct {
		name string
		opts circuit.Options
	}{
		{"NegativeNoise", circuit.Options{NoiseProb: -0.1}},
		{"NoiseAboveOne", circuit.Options{NoiseProb: 1.5}},
		{"NegativeReadout", circuit.Options{MeasurementNoise: -1}},
		{"ReadoutAboveOne", circuit.Options{MeasurementNoise: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := circuit.Build(c, tc.opts)
			if !errors.Is(err, circuit.ErrInvalidProbability) {
				t.Errorf("Build(%+v) error = %v; want ErrInvalidProbability", tc.opts, err)
			}
		})
	}
}

func TestBuildSingleQubit_InvalidProbability(t *testing.T) {
	_, err := circuit.BuildSingleQubit(code.BitFlip, 1.01)
	if !errors.Is(err, circuit.ErrInvalidProbability) {
		t.Errorf("BuildSingleQubit error = %v; want ErrInvalidProbability", err)
	}
}

//----------------------------------------------------------------------------//
// Build — emission order
//----------------------------------------------------------------------------//

// TestBuild_BitFlipD3 pins the exact instruction stream of the smallest
// bit-flip circuit under noise: encode, noise, then per-pair syndrome
// extraction with readout error, then data measurement.
func TestBuild_BitFlipD3(t *testing.T) {
	c := mustCode(t, 3, code.BitFlip)
	qc, err := circuit.Build(c, circuit.Options{NoiseProb: 0.1, MeasurementNoise: 0.05})
	require.NoError(t, err)

	want := []string{
		"CNOT 0 1",
		"CNOT 0 2",
		"X_ERROR(0.1) 0",
		"X_ERROR(0.1) 1",
		"X_ERROR(0.1) 2",
		"R 3",
		"CNOT 0 3",
		"CNOT 1 3",
		"X_ERROR(0.05) 3",
		"M 3",
		"R 4",
		"CNOT 1 4",
		"CNOT 2 4",
		"X_ERROR(0.05) 4",
		"M 4",
		"M 0",
		"M 1",
		"M 2",
	}
	ins := qc.Instructions()
	require.Len(t, ins, len(want))
	for i, in := range ins {
		require.Equal(t, want[i], in.String(), "instruction %d", i)
	}
	require.Equal(t, 5, qc.NumQubits())
	require.Equal(t, 5, qc.NumMeasurements())
	require.NoError(t, qc.Validate())
}

// TestBuild_PhaseFlipRotations verifies the X-basis code rotates all
// data qubits after encoding and again before syndrome extraction, and
// uses the Z channel for its noise.
func TestBuild_PhaseFlipRotations(t *testing.T) {
	c := mustCode(t, 3, code.PhaseFlip)
	qc, err := circuit.Build(c, circuit.Options{NoiseProb: 0.2})
	require.NoError(t, err)

	want := []string{
		"CNOT 0 1",
		"CNOT 0 2",
		"H 0",
		"H 1",
		"H 2",
		"Z_ERROR(0.2) 0",
		"Z_ERROR(0.2) 1",
		"Z_ERROR(0.2) 2",
		"H 0",
		"H 1",
		"H 2",
		"R 3",
		"CNOT 0 3",
		"CNOT 1 3",
		"M 3",
		"R 4",
		"CNOT 1 4",
		"CNOT 2 4",
		"M 4",
		"M 0",
		"M 1",
		"M 2",
	}
	ins := qc.Instructions()
	require.Len(t, ins, len(want))
	for i, in := range ins {
		require.Equal(t, want[i], in.String(), "instruction %d", i)
	}
}

// TestBuild_ZeroNoiseOmitsChannels: p == 0 must emit no error
// instructions at all, not zero-probability ones.
func TestBuild_ZeroNoiseOmitsChannels(t *testing.T) {
	qc, err := circuit.Build(mustCode(t, 5, code.BitFlip), circuit.DefaultOptions())
	require.NoError(t, err)
	for _, in := range qc.Instructions() {
		require.NotEqual(t, circuit.OpError, in.Op, "unexpected %s", in)
	}
}

//----------------------------------------------------------------------------//
// Measurement-order invariant
//----------------------------------------------------------------------------//

// TestBuild_MeasurementOrder checks for several codes that outcome slots
// are ancillas in index order, then data qubits in index order.
func TestBuild_MeasurementOrder(t *testing.T) {
	for _, d := range []int{3, 5, 7, 9} {
		for _, b := range []code.Basis{code.BitFlip, code.PhaseFlip} {
			c := mustCode(t, d, b)
			qc, err := circuit.Build(c, circuit.Options{NoiseProb: 0.1, MeasurementNoise: 0.1})
			require.NoError(t, err)

			targets := qc.MeasurementTargets()
			require.Len(t, targets, c.NumMeasurements())
			for i := 0; i < c.NumAncillas(); i++ {
				require.Equal(t, d+i, targets[i], "d=%d basis=%s ancilla slot %d", d, b, i)
			}
			for i := 0; i < d; i++ {
				require.Equal(t, i, targets[c.NumAncillas()+i], "d=%d basis=%s data slot %d", d, b, i)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// BuildEncoding and BuildSingleQubit
//----------------------------------------------------------------------------//

func TestBuildEncoding(t *testing.T) {
	qc := circuit.BuildEncoding(mustCode(t, 3, code.BitFlip), true)
	want := []string{"X 0", "CNOT 0 1", "CNOT 0 2"}
	ins := qc.Instructions()
	require.Len(t, ins, len(want))
	for i, in := range ins {
		require.Equal(t, want[i], in.String())
	}
	require.Equal(t, 0, qc.NumMeasurements())

	// Logical zero emits no preparation gate.
	qc = circuit.BuildEncoding(mustCode(t, 3, code.PhaseFlip), false)
	ins = qc.Instructions()
	require.Equal(t, "CNOT 0 1", ins[0].String())
	require.Equal(t, "H 2", ins[len(ins)-1].String())
}

func TestBuildSingleQubit(t *testing.T) {
	qc, err := circuit.BuildSingleQubit(code.PhaseFlip, 0.3)
	require.NoError(t, err)
	want := []string{"H 0", "Z_ERROR(0.3) 0", "H 0", "M 0"}
	ins := qc.Instructions()
	require.Len(t, ins, len(want))
	for i, in := range ins {
		require.Equal(t, want[i], in.String())
	}
	require.Equal(t, 1, qc.NumMeasurements())

	// Noiseless Z-basis qubit reduces to a bare measurement.
	qc, err = circuit.BuildSingleQubit(code.BitFlip, 0)
	require.NoError(t, err)
	require.Len(t, qc.Instructions(), 1)
}

//----------------------------------------------------------------------------//
// Immutability and Validate
//----------------------------------------------------------------------------//

// TestInstructions_DefensiveCopy mutating the returned slice must not
// affect the circuit.
func TestInstructions_DefensiveCopy(t *testing.T) {
	qc, err := circuit.Build(mustCode(t, 3, code.BitFlip), circuit.DefaultOptions())
	require.NoError(t, err)

	ins := qc.Instructions()
	ins[0] = circuit.Instruction{Op: circuit.OpMeasure, Target: 99}
	require.NotEqual(t, ins[0], qc.Instructions()[0])
}

func TestValidate_BuiltCircuitsAlwaysPass(t *testing.T) {
	for _, d := range []int{3, 5, 7} {
		qc, err := circuit.Build(mustCode(t, d, code.PhaseFlip), circuit.Options{NoiseProb: 0.5, MeasurementNoise: 0.5})
		require.NoError(t, err)
		require.NoError(t, qc.Validate())
	}
	qc, err := circuit.BuildSingleQubit(code.BitFlip, 0.5)
	require.NoError(t, err)
	require.NoError(t, qc.Validate())
}
