// SPDX-License-Identifier: MIT
// Package: repcode/sim
//
// sampler.go — the execution-service boundary and the Pauli-frame
// reference sampler.

package sim

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/katalvlaran/repcode/circuit"
)

// Sampler executes a circuit for a number of independent shots and
// returns the outcome matrix: one row per shot, one column per
// measurement slot in the circuit's declared order.
//
// Implementations may fail for shots ≤ 0 or a malformed instruction
// sequence; callers treat any failure as fatal and non-retryable for
// that call.
type Sampler interface {
	Sample(ctx context.Context, qc circuit.Circuit, shots int) ([][]byte, error)
}

// Forker is an optional Sampler capability: derive an independent,
// deterministically seeded child sampler. The Runner uses it to give
// each parallel sweep point its own random stream, keeping parallel
// sweeps reproducible.
type Forker interface {
	Fork(offset int64) Sampler
}

// PauliFrameSampler samples repetition-code circuits by error-frame
// propagation: instead of a state vector it tracks, per qubit, whether
// a stochastic X and/or Z error has accumulated, and XORs the X frame
// into measurement outcomes. The noiseless reference outcome of every
// measurement in this module's circuits is 0, which makes the frame the
// entire answer — the same trick dedicated stabilizer samplers apply.
//
// Frame rules per instruction:
//
//	PrepareOne  — flips the deterministic value of the target
//	Rotate      — exchanges the X and Z frames (H conjugation)
//	Entangle    — control's X frame spreads to target, target's Z frame
//	              spreads back to control
//	Reset       — clears value and both frames
//	Error       — Bernoulli(p) draw sets the X or Z frame
//	Measure     — outcome = deterministic value XOR X frame
//
// Safe for concurrent use: Sample serializes on an internal mutex.
// Fork child samplers for contention-free parallel sampling.
type PauliFrameSampler struct {
	mu   sync.Mutex
	rng  *rand.Rand
	seed int64
}

// NewPauliFrameSampler returns a sampler with a deterministic stream:
// the same seed and the same call sequence reproduce the same outcome
// matrices.
func NewPauliFrameSampler(seed int64) *PauliFrameSampler {
	return &PauliFrameSampler{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// Fork derives an independent child sampler whose seed is a fixed
// mixture of the parent seed and offset. Forking is deterministic and
// does not advance the parent's stream.
func (s *PauliFrameSampler) Fork(offset int64) Sampler {
	// SplitMix-style odd-constant mixing keeps child streams disjoint
	// for small consecutive offsets.
	child := s.seed ^ (offset+1)*-0x61c8864680b583eb
	return NewPauliFrameSampler(child)
}

// Sample runs the circuit for shots independent draws.
// Returns ErrNonPositiveShots for shots ≤ 0 and ErrMalformedCircuit
// (wrapping the validation detail) for a broken instruction stream.
// Honors ctx cancellation between shots.
// Complexity: O(shots × instructions), O(qubits) scratch.
func (s *PauliFrameSampler) Sample(ctx context.Context, qc circuit.Circuit, shots int) ([][]byte, error) {
	if shots <= 0 {
		return nil, fmt.Errorf("sim.Sample(shots=%d): %w", shots, ErrNonPositiveShots)
	}
	if err := qc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCircuit, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := qc.NumQubits()
	ins := qc.Instructions()
	out := make([][]byte, shots)

	// Per-shot scratch, reused across shots.
	val := make([]byte, n)    // deterministic computational-basis value
	xFrame := make([]byte, n) // accumulated bit-flip errors
	zFrame := make([]byte, n) // accumulated phase-flip errors

	for shot := 0; shot < shots; shot++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for i := range val {
			val[i], xFrame[i], zFrame[i] = 0, 0, 0
		}
		row := make([]byte, 0, qc.NumMeasurements())
		for _, in := range ins {
			switch in.Op {
			case circuit.OpPrepareOne:
				val[in.Target] ^= 1
			case circuit.OpRotate:
				xFrame[in.Target], zFrame[in.Target] = zFrame[in.Target], xFrame[in.Target]
			case circuit.OpEntangle:
				val[in.Target] ^= val[in.Control]
				xFrame[in.Target] ^= xFrame[in.Control]
				zFrame[in.Control] ^= zFrame[in.Target]
			case circuit.OpReset:
				val[in.Target], xFrame[in.Target], zFrame[in.Target] = 0, 0, 0
			case circuit.OpError:
				if s.rng.Float64() < in.Prob {
					if in.Channel == circuit.ChanPhaseFlip {
						zFrame[in.Target] ^= 1
					} else {
						xFrame[in.Target] ^= 1
					}
				}
			case circuit.OpMeasure:
				row = append(row, val[in.Target]^xFrame[in.Target])
			}
		}
		out[shot] = row
	}
	return out, nil
}
