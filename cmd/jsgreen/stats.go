package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jsgreen/internal/diagfmt"
	"jsgreen/internal/driver"
)

var statsCmd = &cobra.Command{
	Use:   "stats [flags] <file.tree|dir>",
	Short: "Show factory statistics for fixtures",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().Int("top", 10, "rows of the node kind histogram (0 hides it)")
	statsCmd.Flags().Bool("no-cache", false, "do not read or write the tree cache")
}

func runStats(cmd *cobra.Command, args []string) error {
	top, err := cmd.Flags().GetInt("top")
	if err != nil {
		return fmt.Errorf("failed to get top flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	opts := current.driverOptions()
	if !noCache {
		opts.Cache = current.openCache(cmd)
	}

	info, err := os.Stat(args[0])
	if err != nil {
		return err
	}
	var results []*driver.BuildResult
	if info.IsDir() {
		if _, results, err = driver.BuildDir(cmd.Context(), args[0], opts); err != nil {
			return err
		}
	} else {
		res, err := driver.Build(cmd.Context(), args[0], opts)
		if err != nil {
			return err
		}
		results = []*driver.BuildResult{res}
	}

	sumOpts := diagfmt.SummaryOpts{TopKinds: top}
	if opts.Cache != nil {
		counters := opts.Cache.Counters()
		sumOpts.Cache = &counters
	}
	return diagfmt.FormatSummary(cmd.OutOrStdout(), driver.Summarize(results), sumOpts)
}
