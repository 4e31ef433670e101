package stats_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/repcode/stats"
)

//----------------------------------------------------------------------------//
// LogicalErrorRate
//----------------------------------------------------------------------------//

func TestLogicalErrorRate(t *testing.T) {
	cases := []struct {
		name     string
		decoded  []byte
		expected byte
		want     float64
	}{
		{"AllCorrect", []byte{0, 0, 0, 0}, 0, 0},
		{"AllWrong", []byte{1, 1, 1, 1}, 0, 1},
		{"Quarter", []byte{1, 0, 0, 0}, 0, 0.25},
		{"ExpectedOne", []byte{1, 0, 1, 1}, 1, 0.25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := stats.LogicalErrorRate(tc.decoded, tc.expected)
			if err != nil {
				t.Fatalf("LogicalErrorRate error: %v", err)
			}
			if math.Abs(got-tc.want) > 1e-15 {
				t.Errorf("LogicalErrorRate = %v; want %v", got, tc.want)
			}
		})
	}
}

// TestLogicalErrorRate_NoShots: zero shots must fail, not return 0/NaN.
func TestLogicalErrorRate_NoShots(t *testing.T) {
	if _, err := stats.LogicalErrorRate(nil, 0); !errors.Is(err, stats.ErrNoShots) {
		t.Errorf("error = %v; want ErrNoShots", err)
	}
	if _, err := stats.LogicalErrorRate([]byte{}, 0); !errors.Is(err, stats.ErrNoShots) {
		t.Errorf("error = %v; want ErrNoShots", err)
	}
}

func TestLogicalErrorRate_InvalidExpected(t *testing.T) {
	if _, err := stats.LogicalErrorRate([]byte{0}, 2); !errors.Is(err, stats.ErrInvalidBit) {
		t.Errorf("error = %v; want ErrInvalidBit", err)
	}
}

//----------------------------------------------------------------------------//
// AggregateSyndromes
//----------------------------------------------------------------------------//

// TestAggregateSyndromes_KnownMatrix checks exact counts and the most
// frequent pattern over a fixed synthetic matrix (d=3: two syndrome
// bits, three data bits per row).
func TestAggregateSyndromes_KnownMatrix(t *testing.T) {
	rows := [][]byte{
		{0, 0, 0, 0, 0},
		{1, 0, 1, 0, 0},
		{0, 0, 0, 0, 0},
		{1, 1, 0, 1, 0},
		{0, 0, 1, 1, 1},
		{1, 0, 1, 0, 0},
	}
	st, err := stats.AggregateSyndromes(rows, 2)
	require.NoError(t, err)

	require.Equal(t, 6, st.TotalShots())
	require.Equal(t, 3, st.NumUnique())
	require.Equal(t, 3, st.Count([]byte{0, 0}))
	require.Equal(t, 2, st.Count([]byte{1, 0}))
	require.Equal(t, 1, st.Count([]byte{1, 1}))
	require.Equal(t, 0, st.Count([]byte{0, 1}))
	require.Equal(t, []string{"00", "10", "11"}, st.Patterns())

	pattern, count, ok := st.MostCommon()
	require.True(t, ok)
	require.Equal(t, "00", pattern)
	require.Equal(t, 3, count)
}

// TestAggregateSyndromes_TieBreak: on equal counts the first-seen
// pattern wins, deterministically.
func TestAggregateSyndromes_TieBreak(t *testing.T) {
	rows := [][]byte{
		{1, 0, 0},
		{0, 1, 0},
		{0, 1, 0},
		{1, 0, 0},
	}
	st, err := stats.AggregateSyndromes(rows, 2)
	require.NoError(t, err)

	pattern, count, ok := st.MostCommon()
	require.True(t, ok)
	require.Equal(t, "10", pattern, "tie must resolve to first-seen pattern")
	require.Equal(t, 2, count)
}

// TestAggregateSyndromes_ZeroAncillas: a degenerate prefix yields one
// empty pattern covering every shot.
func TestAggregateSyndromes_ZeroAncillas(t *testing.T) {
	rows := [][]byte{{0}, {1}, {0}}
	st, err := stats.AggregateSyndromes(rows, 0)
	require.NoError(t, err)
	require.Equal(t, 1, st.NumUnique())
	require.Equal(t, 3, st.CountKey(""))
}

func TestAggregateSyndromes_Errors(t *testing.T) {
	if _, err := stats.AggregateSyndromes(nil, 2); !errors.Is(err, stats.ErrNoShots) {
		t.Errorf("empty matrix error = %v; want ErrNoShots", err)
	}
	rows := [][]byte{{0, 0, 0}, {1}}
	if _, err := stats.AggregateSyndromes(rows, 2); !errors.Is(err, stats.ErrRowTooShort) {
		t.Errorf("short row error = %v; want ErrRowTooShort", err)
	}
	if _, err := stats.AggregateSyndromes(rows, -1); !errors.Is(err, stats.ErrRowTooShort) {
		t.Errorf("negative prefix error = %v; want ErrRowTooShort", err)
	}
}

// TestMostCommon_ZeroValue: the zero statistics value reports no pattern.
func TestMostCommon_ZeroValue(t *testing.T) {
	var st stats.SyndromeStats
	_, _, ok := st.MostCommon()
	require.False(t, ok)
	require.Equal(t, 0, st.NumUnique())
}
