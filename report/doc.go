// Package report renders experiment results into structured sinks:
// machine-readable JSON and a human-readable text table.
//
// The core simulation packages never touch files or formats; they hand
// their numbers to a Summary, and the caller decides where it goes.
// Plotting is deliberately absent — this package owns only the
// structured-output surface.
//
// ⚙️ Usage:
//
//	s := report.Summary{
//	  Basis:      "z",
//	  Shots:      10000,
//	  NoiseProbs: []float64{0.01, 0.05, 0.1},
//	  Distances:  []int{3, 5},
//	  Protected:  map[int][]float64{3: {...}, 5: {...}},
//	}
//	_ = report.WriteText(os.Stdout, s)
//	_ = report.WriteJSON(f, s)
package report
