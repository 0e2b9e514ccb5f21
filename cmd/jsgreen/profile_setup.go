package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsgreen/internal/prof"
)

var activeProfile *prof.Session

func setupProfiling(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	var opts prof.Options
	var err error
	if opts.CPUProfile, err = flags.GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if opts.MemProfile, err = flags.GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if opts.RuntimeTrace, err = flags.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !opts.Enabled() {
		return nil
	}
	activeProfile, err = prof.Start(opts)
	return err
}

func stopProfiling(cmd *cobra.Command) {
	if err := activeProfile.Stop(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "jsgreen: profiling: %v\n", err)
	}
	activeProfile = nil
}
