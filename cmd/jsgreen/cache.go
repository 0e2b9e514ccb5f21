package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsgreen/internal/driver"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the tree cache",
}

var cacheCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove every cached tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		disk, err := driver.OpenDiskCache("jsgreen")
		if err != nil {
			return err
		}
		if err := disk.DropAll(); err != nil {
			return fmt.Errorf("clean %s: %w", disk.Dir(), err)
		}
		current.notef(cmd, "removed cached trees from %s", disk.Dir())
		return nil
	},
}

var cacheDirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Print the cache directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		disk, err := driver.OpenDiskCache("jsgreen")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), disk.Dir())
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheCleanCmd)
	cacheCmd.AddCommand(cacheDirCmd)
}
