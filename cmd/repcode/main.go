// Command repcode runs repetition-code error-correction experiments
// from the terminal: one-shot demos, noise sweeps and code-size
// comparisons, with results rendered as text tables or JSON.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
