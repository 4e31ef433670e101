package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// sweepConfig is the YAML experiment description consumed by `repcode
// sweep --config`. Zero fields fall back to the defaults noted below.
type sweepConfig struct {
	Basis            string    `yaml:"basis"`             // default "z"
	Distances        []int     `yaml:"distances"`         // default [3, 5, 7]
	NoiseProbs       []float64 `yaml:"noise_probs"`       // default classic sweep axis
	Shots            int       `yaml:"shots"`             // default 10000
	MeasurementNoise float64   `yaml:"measurement_noise"` // default 0
	Seed             int64     `yaml:"seed"`              // default 42
	Parallelism      int       `yaml:"parallelism"`       // default 0 (synchronous)
}

// defaultSweepConfig mirrors the historical comprehensive-analysis
// parameters.
func defaultSweepConfig() sweepConfig {
	return sweepConfig{
		Basis:      "z",
		Distances:  []int{3, 5, 7},
		NoiseProbs: []float64{0.001, 0.005, 0.01, 0.02, 0.05, 0.1, 0.15, 0.2},
		Shots:      10000,
		Seed:       42,
	}
}

// loadSweepConfig reads and merges a YAML config over the defaults.
// An empty path returns the defaults untouched.
func loadSweepConfig(path string) (sweepConfig, error) {
	cfg := defaultSweepConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read sweep config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse sweep config %s: %w", path, err)
	}
	if cfg.Shots == 0 {
		cfg.Shots = 10000
	}
	return cfg, nil
}
