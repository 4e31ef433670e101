package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/repcode/code"
	"github.com/katalvlaran/repcode/report"
	"github.com/katalvlaran/repcode/sim"
)

var (
	sweepConfigPath string
	sweepJSONPath   string

	sweepCmd = &cobra.Command{
		Use:   "sweep",
		Short: "Sweep noise probabilities across code distances and report error rates",
		Long: `sweep runs the comprehensive analysis: for every configured code
distance it sweeps the noise axis, collects logical error rates, runs
the unprotected baseline, and renders a table (and optionally JSON).`,
		RunE: runSweep,
	}
)

func init() {
	sweepCmd.Flags().StringVar(&sweepConfigPath, "config", "", "YAML experiment config (defaults used when omitted)")
	sweepCmd.Flags().StringVar(&sweepJSONPath, "json", "", "also write the summary as JSON to this file")
}

func runSweep(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSweepConfig(sweepConfigPath)
	if err != nil {
		return err
	}
	basis, err := code.ParseBasis(cfg.Basis)
	if err != nil {
		return err
	}
	r, err := sim.NewRunner(sim.NewPauliFrameSampler(cfg.Seed))
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	summary := report.Summary{
		Title:            "REPETITION CODE NOISE SWEEP",
		GeneratedAt:      time.Now().UTC(),
		Basis:            basis.String(),
		Shots:            cfg.Shots,
		MeasurementNoise: cfg.MeasurementNoise,
		NoiseProbs:       cfg.NoiseProbs,
		Distances:        cfg.Distances,
		Protected:        make(map[int][]float64, len(cfg.Distances)),
	}

	opts := sim.Options{
		MeasurementNoise: cfg.MeasurementNoise,
		Shots:            cfg.Shots,
		Parallelism:      cfg.Parallelism,
	}
	for _, d := range cfg.Distances {
		c, err := code.New(d, basis)
		if err != nil {
			return err
		}
		slog.Debug("sweeping", "code", c.String(), "points", len(cfg.NoiseProbs))
		results, err := r.SweepNoise(ctx, c, cfg.NoiseProbs, opts)
		if err != nil {
			return err
		}
		rates := make([]float64, len(results))
		for i, res := range results {
			rates[i] = res.LogicalErrorRate
		}
		summary.Protected[d] = rates
	}

	// Unprotected baseline over the same axis.
	baseline := make([]float64, len(cfg.NoiseProbs))
	for i, p := range cfg.NoiseProbs {
		res, err := r.RunUnprotected(ctx, basis, p, opts)
		if err != nil {
			return err
		}
		baseline[i] = res.LogicalErrorRate
	}
	summary.Unprotected = baseline

	if err := report.WriteText(cmd.OutOrStdout(), summary); err != nil {
		return err
	}
	if sweepJSONPath != "" {
		f, err := os.Create(sweepJSONPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", sweepJSONPath, err)
		}
		defer f.Close()
		if err := report.WriteJSON(f, summary); err != nil {
			return err
		}
		slog.Debug("wrote JSON summary", "path", sweepJSONPath)
	}
	return nil
}
