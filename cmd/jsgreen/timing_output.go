package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// printTimings writes the phase table of --timings to stderr.
func printTimings(cmd *cobra.Command) {
	if current.timer == nil {
		return
	}
	if _, err := fmt.Fprint(cmd.ErrOrStderr(), current.timer.Summary()); err != nil {
		panic(err)
	}
}
