package stats_test

import (
	"fmt"

	"github.com/katalvlaran/repcode/stats"
)

// ExampleLogicalErrorRate computes the error fraction over five decoded
// shots against the conventional expected value 0.
func ExampleLogicalErrorRate() {
	decoded := []byte{0, 1, 0, 0, 1}
	rate, _ := stats.LogicalErrorRate(decoded, 0)
	fmt.Println(rate)
	// Output:
	// 0.4
}

// ExampleAggregateSyndromes groups the two-bit syndrome prefixes of a
// d=3 outcome matrix and reports the dominant pattern.
func ExampleAggregateSyndromes() {
	rows := [][]byte{
		{0, 0, 0, 0, 0},
		{1, 1, 0, 1, 0},
		{0, 0, 0, 0, 0},
	}
	st, _ := stats.AggregateSyndromes(rows, 2)
	pattern, count, _ := st.MostCommon()
	fmt.Println("unique:", st.NumUnique())
	fmt.Printf("most common: %s ×%d\n", pattern, count)
	// Output:
	// unique: 2
	// most common: 00 ×2
}
