package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/repcode/report"
)

func sample() report.Summary {
	return report.Summary{
		Basis:      "z",
		Shots:      10000,
		NoiseProbs: []float64{0.01, 0.1},
		Distances:  []int{5, 3},
		Protected: map[int][]float64{
			3: {0.0003, 0.028},
			5: {0.0000, 0.0086},
		},
		Unprotected: []float64{0.0102, 0.0997},
	}
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, sample()))

	var got report.Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, sample(), got)
}

func TestWriteText_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, sample()))
	out := buf.String()

	require.Contains(t, out, "basis=z shots=10000")
	require.Contains(t, out, "unprotected")
	// Ascending distance columns, independent of Distances order.
	require.Less(t, strings.Index(out, "d=3"), strings.Index(out, "d=5"))
	require.Contains(t, out, "0.0100")
	require.Contains(t, out, "0.0086")
}

func TestWrite_ShapeMismatch(t *testing.T) {
	s := sample()
	s.Protected[3] = []float64{0.1} // one rate, two probs
	var buf bytes.Buffer
	require.ErrorIs(t, report.WriteJSON(&buf, s), report.ErrShapeMismatch)
	require.ErrorIs(t, report.WriteText(&buf, s), report.ErrShapeMismatch)

	s = sample()
	s.Unprotected = []float64{0.5}
	require.ErrorIs(t, report.WriteText(&buf, s), report.ErrShapeMismatch)
}

func TestWrite_MissingDistanceSeries(t *testing.T) {
	s := sample()
	delete(s.Protected, 5) // still listed in Distances
	var buf bytes.Buffer
	require.ErrorIs(t, report.WriteJSON(&buf, s), report.ErrShapeMismatch)
	require.ErrorIs(t, report.WriteText(&buf, s), report.ErrShapeMismatch)
}

func TestWriteText_NoBaseline(t *testing.T) {
	s := sample()
	s.Unprotected = nil
	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, s))
	require.NotContains(t, buf.String(), "unprotected")
}
