// SPDX-License-Identifier: MIT
// Package: repcode/sim
//
// runner.go — experiment drivers: build → sample → decode → aggregate.

package sim

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/repcode/circuit"
	"github.com/katalvlaran/repcode/code"
	"github.com/katalvlaran/repcode/decode"
	"github.com/katalvlaran/repcode/stats"
)

// Options carries the tunable parameters of one experiment run.
//
// Fields:
//   - NoiseProb        — per-qubit error probability, [0,1]
//   - MeasurementNoise — ancilla readout flip probability, [0,1]
//   - Shots            — independent draws; must be positive
//   - Strategy         — decoding policy (MajorityOnly unless set)
//   - Parallelism      — worker count for the optional fan-out; values
//     ≤ 1 keep the pipeline fully synchronous
type Options struct {
	NoiseProb        float64
	MeasurementNoise float64
	Shots            int
	Strategy         decode.Strategy
	Parallelism      int
}

// DefaultOptions mirrors the historical defaults: 10 000 shots,
// noiseless, majority-vote decoding, no parallelism.
func DefaultOptions() Options { return Options{Shots: 10000} }

// Result is the terminal output of one run.
type Result struct {
	// Code is the configuration under test; the zero value for
	// unprotected-baseline runs.
	Code code.Code
	// NoiseProb echoes the per-qubit error probability of the run.
	NoiseProb float64
	// Shots echoes the number of draws.
	Shots int
	// Decoded holds one recovered logical bit per shot, in shot order.
	Decoded []byte
	// LogicalErrorRate is the fraction of Decoded differing from 0.
	LogicalErrorRate float64
	// Syndromes aggregates raw syndrome prefixes (protected runs only).
	Syndromes stats.SyndromeStats
}

// Runner ties a Sampler to the build/decode/stats pipeline.
type Runner struct {
	sampler Sampler
}

// NewRunner wraps a sampler. Returns ErrNilSampler for nil.
func NewRunner(s Sampler) (*Runner, error) {
	if s == nil {
		return nil, ErrNilSampler
	}
	return &Runner{sampler: s}, nil
}

// RunProtected executes one full error-correction experiment: builds
// the circuit for c, samples opts.Shots outcomes, decodes every row and
// aggregates the logical error rate plus syndrome statistics.
// Sampler failures propagate verbatim; no retry is attempted here.
func (r *Runner) RunProtected(ctx context.Context, c code.Code, opts Options) (Result, error) {
	if opts.Shots <= 0 {
		return Result{}, fmt.Errorf("sim.RunProtected(shots=%d): %w", opts.Shots, ErrNonPositiveShots)
	}
	qc, err := circuit.Build(c, circuit.Options{NoiseProb: opts.NoiseProb, MeasurementNoise: opts.MeasurementNoise})
	if err != nil {
		return Result{}, fmt.Errorf("sim.RunProtected: %w", err)
	}
	dec, err := decode.New(decode.Options{Strategy: opts.Strategy})
	if err != nil {
		return Result{}, fmt.Errorf("sim.RunProtected: %w", err)
	}

	rows, err := r.sampler.Sample(ctx, qc, opts.Shots)
	if err != nil {
		return Result{}, err
	}

	decoded, err := r.decodeRows(ctx, rows, c.NumAncillas(), dec, opts.Parallelism)
	if err != nil {
		return Result{}, err
	}
	rate, err := stats.LogicalErrorRate(decoded, 0)
	if err != nil {
		return Result{}, err
	}
	syn, err := stats.AggregateSyndromes(rows, c.NumAncillas())
	if err != nil {
		return Result{}, err
	}

	return Result{
		Code:             c,
		NoiseProb:        opts.NoiseProb,
		Shots:            opts.Shots,
		Decoded:          decoded,
		LogicalErrorRate: rate,
		Syndromes:        syn,
	}, nil
}

// RunUnprotected executes the one-qubit baseline under the channel
// matched to b. The physical error rate is the fraction of shots whose
// single readout came back 1.
func (r *Runner) RunUnprotected(ctx context.Context, b code.Basis, noiseProb float64, opts Options) (Result, error) {
	if opts.Shots <= 0 {
		return Result{}, fmt.Errorf("sim.RunUnprotected(shots=%d): %w", opts.Shots, ErrNonPositiveShots)
	}
	qc, err := circuit.BuildSingleQubit(b, noiseProb)
	if err != nil {
		return Result{}, fmt.Errorf("sim.RunUnprotected: %w", err)
	}

	rows, err := r.sampler.Sample(ctx, qc, opts.Shots)
	if err != nil {
		return Result{}, err
	}

	// A single data bit per row: the readout is the decoded value.
	decoded := make([]byte, len(rows))
	for i, row := range rows {
		decoded[i] = row[0]
	}
	rate, err := stats.LogicalErrorRate(decoded, 0)
	if err != nil {
		return Result{}, err
	}

	return Result{
		NoiseProb:        noiseProb,
		Shots:            opts.Shots,
		Decoded:          decoded,
		LogicalErrorRate: rate,
	}, nil
}

// SweepNoise runs one protected experiment per probability in probs,
// returning results in the same order. With Parallelism > 1 and a
// Forker sampler, points run concurrently on independently seeded child
// samplers; order is still preserved by index.
func (r *Runner) SweepNoise(ctx context.Context, c code.Code, probs []float64, opts Options) ([]Result, error) {
	out := make([]Result, len(probs))

	forker, canFork := r.sampler.(Forker)
	if opts.Parallelism > 1 && canFork {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(opts.Parallelism)
		for i, p := range probs {
			i, p := i, p
			g.Go(func() error {
				child, err := NewRunner(forker.Fork(int64(i)))
				if err != nil {
					return err
				}
				pointOpts := opts
				pointOpts.NoiseProb = p
				res, err := child.RunProtected(gctx, c, pointOpts)
				if err != nil {
					return fmt.Errorf("sim.SweepNoise(p=%g): %w", p, err)
				}
				out[i] = res
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return out, nil
	}

	for i, p := range probs {
		pointOpts := opts
		pointOpts.NoiseProb = p
		res, err := r.RunProtected(ctx, c, pointOpts)
		if err != nil {
			return nil, fmt.Errorf("sim.SweepNoise(p=%g): %w", p, err)
		}
		out[i] = res
	}
	return out, nil
}

// CompareDistances runs one protected experiment per distance at the
// fixed noise level in opts, sharing the basis b. Invalid distances
// surface as code construction errors before any sampling happens.
func (r *Runner) CompareDistances(ctx context.Context, distances []int, b code.Basis, opts Options) (map[int]Result, error) {
	out := make(map[int]Result, len(distances))
	for _, d := range distances {
		c, err := code.New(d, b)
		if err != nil {
			return nil, fmt.Errorf("sim.CompareDistances(d=%d): %w", d, err)
		}
		res, err := r.RunProtected(ctx, c, opts)
		if err != nil {
			return nil, fmt.Errorf("sim.CompareDistances(d=%d): %w", d, err)
		}
		out[d] = res
	}
	return out, nil
}

// decodeRows decodes all rows, optionally fanning chunks out across
// parallelism workers. Results land in a pre-sized slice by row index,
// so shot order survives any scheduling.
func (r *Runner) decodeRows(ctx context.Context, rows [][]byte, numAncillas int, dec decode.Decoder, parallelism int) ([]byte, error) {
	if parallelism <= 1 || len(rows) < 2*parallelism {
		return decode.DecodeAll(rows, numAncillas, dec)
	}

	out := make([]byte, len(rows))
	chunk := (len(rows) + parallelism - 1) / parallelism
	g, gctx := errgroup.WithContext(ctx)
	for lo := 0; lo < len(rows); lo += chunk {
		lo := lo
		hi := lo + chunk
		if hi > len(rows) {
			hi = len(rows)
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			part, err := decode.DecodeAll(rows[lo:hi], numAncillas, dec)
			if err != nil {
				return err
			}
			copy(out[lo:hi], part)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
