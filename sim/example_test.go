// SPDX-License-Identifier: MIT

package sim_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/repcode/code"
	"github.com/katalvlaran/repcode/sim"
)

// ExampleRunner_RunProtected runs a noiseless d=3 experiment: with no
// errors injected, recovery is perfect and only the all-zero syndrome
// appears.
func ExampleRunner_RunProtected() {
	r, _ := sim.NewRunner(sim.NewPauliFrameSampler(42))
	c, _ := code.New(3, code.BitFlip)

	res, _ := r.RunProtected(context.Background(), c, sim.Options{Shots: 1000})
	pattern, count, _ := res.Syndromes.MostCommon()
	fmt.Println("logical error rate:", res.LogicalErrorRate)
	fmt.Printf("dominant syndrome: %s ×%d\n", pattern, count)
	// Output:
	// logical error rate: 0
	// dominant syndrome: 00 ×1000
}

// ExampleRunner_SweepNoise sweeps a d=3 code over three noise levels;
// results come back in input order.
func ExampleRunner_SweepNoise() {
	r, _ := sim.NewRunner(sim.NewPauliFrameSampler(42))
	c, _ := code.New(3, code.BitFlip)

	res, _ := r.SweepNoise(context.Background(), c, []float64{0, 0.5, 1}, sim.Options{Shots: 200})
	for _, point := range res {
		fmt.Printf("p=%.1f shots=%d\n", point.NoiseProb, point.Shots)
	}
	// Output:
	// p=0.0 shots=200
	// p=0.5 shots=200
	// p=1.0 shots=200
}
