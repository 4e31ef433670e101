// SPDX-License-Identifier: MIT
// Package: repcode/sim
//
// errors.go — sentinel errors for the sim package.

package sim

import "errors"

// ErrNilSampler indicates a Runner constructed without a Sampler.
var ErrNilSampler = errors.New("sim: sampler must not be nil")

// ErrNonPositiveShots indicates a shot count ≤ 0. The service contract
// requires a positive number of independent draws.
var ErrNonPositiveShots = errors.New("sim: shots must be positive")

// ErrMalformedCircuit indicates the instruction sequence failed the
// pre-sampling validation (unallocated qubit, measurement mismatch).
// The underlying circuit error is attached via %w.
var ErrMalformedCircuit = errors.New("sim: malformed circuit")
