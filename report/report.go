package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"
)

// ErrShapeMismatch indicates rate series whose lengths disagree with
// the declared noise-probability axis.
var ErrShapeMismatch = errors.New("report: rate series length does not match noise probabilities")

// Summary aggregates one analysis run: the swept axis, the per-distance
// logical error rates and the unprotected baseline.
type Summary struct {
	// Title is an optional heading for the text rendering.
	Title string `json:"title,omitempty"`
	// GeneratedAt stamps the run.
	GeneratedAt time.Time `json:"generated_at"`
	// Basis is the protected basis name ("z" or "x").
	Basis string `json:"basis"`
	// Shots is the per-point sample count.
	Shots int `json:"shots"`
	// MeasurementNoise is the readout flip probability used throughout.
	MeasurementNoise float64 `json:"measurement_noise"`
	// NoiseProbs is the swept physical error axis, in sweep order.
	NoiseProbs []float64 `json:"noise_probs"`
	// Distances lists the code distances covered by Protected.
	Distances []int `json:"distances"`
	// Protected maps distance → logical error rate per NoiseProbs entry.
	Protected map[int][]float64 `json:"protected"`
	// Unprotected is the baseline rate per NoiseProbs entry; optional.
	Unprotected []float64 `json:"unprotected,omitempty"`
}

// validate checks every rate series against the noise axis and every
// declared distance against the protected map.
func (s Summary) validate() error {
	for _, d := range s.Distances {
		if _, ok := s.Protected[d]; !ok {
			return fmt.Errorf("report: distance %d listed but has no rate series: %w",
				d, ErrShapeMismatch)
		}
	}
	for d, rates := range s.Protected {
		if len(rates) != len(s.NoiseProbs) {
			return fmt.Errorf("report: distance %d has %d rates for %d probs: %w",
				d, len(rates), len(s.NoiseProbs), ErrShapeMismatch)
		}
	}
	if s.Unprotected != nil && len(s.Unprotected) != len(s.NoiseProbs) {
		return fmt.Errorf("report: unprotected has %d rates for %d probs: %w",
			len(s.Unprotected), len(s.NoiseProbs), ErrShapeMismatch)
	}
	return nil
}

// WriteJSON writes the summary as indented JSON.
func WriteJSON(w io.Writer, s Summary) error {
	if err := s.validate(); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteText writes a fixed-width table: one row per noise probability,
// one column per code distance plus the optional unprotected baseline.
// Distances render in ascending order regardless of map order.
func WriteText(w io.Writer, s Summary) error {
	if err := s.validate(); err != nil {
		return err
	}

	title := s.Title
	if title == "" {
		title = "REPETITION CODE SIMULATION RESULTS"
	}
	if _, err := fmt.Fprintf(w, "%s\nbasis=%s shots=%d measurement_noise=%g\n\n",
		title, s.Basis, s.Shots, s.MeasurementNoise); err != nil {
		return err
	}

	distances := make([]int, len(s.Distances))
	copy(distances, s.Distances)
	sort.Ints(distances)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprint(tw, "p")
	if s.Unprotected != nil {
		fmt.Fprint(tw, "\tunprotected")
	}
	for _, d := range distances {
		fmt.Fprintf(tw, "\td=%d", d)
	}
	fmt.Fprintln(tw)

	for i, p := range s.NoiseProbs {
		fmt.Fprintf(tw, "%.4f", p)
		if s.Unprotected != nil {
			fmt.Fprintf(tw, "\t%.4f", s.Unprotected[i])
		}
		for _, d := range distances {
			fmt.Fprintf(tw, "\t%.4f", s.Protected[d][i])
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
