// SPDX-License-Identifier: MIT
// Package: repcode/sim
//
// Package sim hosts the execution-service boundary and the experiment
// drivers that tie building, sampling, decoding and statistics into
// single calls.
//
// 🚀 The Sampler boundary
//
//	The core treats circuit execution as an opaque, synchronous service:
//	hand it an instruction sequence and a shot count, receive a full
//	outcome matrix (shots × measurement slots). Any failure is fatal for
//	that call and never retried here — a retry would silently substitute
//	a different random draw, so retry policy belongs to the caller.
//
//	PauliFrameSampler is the in-repo reference implementation: it
//	propagates stochastic X/Z error frames through the Clifford
//	instruction stream, exactly the technique dedicated stabilizer
//	samplers use for this circuit family. It is seedable and cheap:
//	O(instructions) per shot, no state vectors.
//
// ✨ Experiment drivers (Runner)
//
//   - RunProtected    — build, sample, decode, rate + syndrome stats
//   - RunUnprotected  — the one-qubit baseline, physical error rate
//   - SweepNoise      — one run per noise probability, order preserved
//   - CompareDistances — one run per code distance at fixed noise
//
// The pipeline is synchronous by design. Options.Parallelism > 1 fans
// independent units (shots to decode, sweep points to sample) across an
// errgroup with results written by index, so input order is preserved —
// an optimization only, never a semantic change.
//
// ⚙️ Usage:
//
//	r, _ := sim.NewRunner(sim.NewPauliFrameSampler(42))
//	c, _ := code.New(5, code.BitFlip)
//	res, err := r.RunProtected(ctx, c, sim.Options{NoiseProb: 0.1, Shots: 10000})
//	fmt.Println(res.LogicalErrorRate)
//
// See example_test.go for deterministic walk-throughs.
package sim
