package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagBasis   string
	flagShots   int
	flagSeed    int64
	flagVerbose bool

	rootCmd = &cobra.Command{
		Use:   "repcode",
		Short: "Simulate quantum repetition-code error correction",
		Long: `repcode builds repetition-code circuits, injects bit-flip or
phase-flip noise, decodes the sampled outcomes and reports logical
error rates.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if flagVerbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBasis, "basis", "z",
		"protected basis: z (bit-flip code) or x (phase-flip code)")
	rootCmd.PersistentFlags().IntVar(&flagShots, "shots", 10000,
		"independent shots per experiment")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 42,
		"sampler seed; equal seeds reproduce equal outcome matrices")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable debug logging")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(compareCmd)
}
