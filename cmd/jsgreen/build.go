package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jsgreen/internal/diagfmt"
	"jsgreen/internal/driver"
	"jsgreen/internal/fix"
	"jsgreen/internal/ui"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] <file.tree|dir>",
	Short: "Build green trees from fixtures",
	Long: `Build reads s-expression fixtures, drives the syntax factory and prints
the resulting trees and diagnostics. A directory is built in parallel.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("format", "", "tree output (tree|text|json|none); default tree for a file, none for a directory")
	buildCmd.Flags().String("diagnostics-format", "pretty", "diagnostics output (pretty|short|json)")
	buildCmd.Flags().Int("jobs", 0, "parallel builds for a directory (0 = GOMAXPROCS)")
	buildCmd.Flags().Bool("no-cache", false, "do not read or write the tree cache")
	buildCmd.Flags().String("ui", "auto", "progress UI for a directory (auto|on|off)")
	buildCmd.Flags().Bool("trivia", false, "show trivia in the tree dump")
	buildCmd.Flags().Bool("fix", false, "apply fixture fixes in place (implies --no-cache)")
}

type buildFlags struct {
	format     string
	diagFormat string
	uiMode     uiMode
	showTrivia bool
	applyFixes bool
	opts       driver.Options
}

func readBuildFlags(cmd *cobra.Command) (buildFlags, error) {
	var bf buildFlags
	var err error
	if bf.format, err = cmd.Flags().GetString("format"); err != nil {
		return bf, fmt.Errorf("failed to get format flag: %w", err)
	}
	if bf.format == "" {
		bf.format = current.buildFormat
	}
	if bf.diagFormat, err = cmd.Flags().GetString("diagnostics-format"); err != nil {
		return bf, fmt.Errorf("failed to get diagnostics-format flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return bf, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if bf.uiMode, err = readUIMode(uiValue); err != nil {
		return bf, err
	}
	if bf.showTrivia, err = cmd.Flags().GetBool("trivia"); err != nil {
		return bf, fmt.Errorf("failed to get trivia flag: %w", err)
	}

	bf.opts = current.driverOptions()
	if cmd.Flags().Changed("jobs") {
		if bf.opts.Jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
			return bf, fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	if bf.applyFixes, err = cmd.Flags().GetBool("fix"); err != nil {
		return bf, fmt.Errorf("failed to get fix flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return bf, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	// кэш не хранит fix-правки, поэтому --fix всегда читает фикстуры заново
	if !noCache && !bf.applyFixes {
		bf.opts.Cache = current.openCache(cmd)
	}
	return bf, nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	bf, err := readBuildFlags(cmd)
	if err != nil {
		return err
	}
	info, err := os.Stat(args[0])
	if err != nil {
		return err
	}
	if info.IsDir() {
		return runBuildDir(cmd, args[0], bf)
	}
	if bf.format == "" {
		bf.format = "tree"
	}

	res, err := driver.Build(cmd.Context(), args[0], bf.opts)
	if err != nil {
		return err
	}
	if err := printDiagnostics(cmd.ErrOrStderr(), res.Bag, res.FileSet, bf.diagFormat); err != nil {
		return err
	}
	if err := printTree(cmd, res, bf); err != nil {
		return err
	}
	if err := applyFixes(cmd, res, bf); err != nil {
		return err
	}
	if res.Bag.HasErrors() {
		return errDiagnostics
	}
	return nil
}

func runBuildDir(cmd *cobra.Command, dir string, bf buildFlags) error {
	var (
		results []*driver.BuildResult
		err     error
	)
	if shouldUseTUI(bf.uiMode) && !current.quiet {
		_, results, err = ui.RunBuildDir(cmd.Context(), cmd.ErrOrStderr(), "build "+dir, dir, bf.opts)
	} else {
		_, results, err = driver.BuildDir(cmd.Context(), dir, bf.opts)
	}
	if err != nil {
		return err
	}

	failed := false
	for _, res := range results {
		if res == nil {
			continue
		}
		if err := printDiagnostics(cmd.ErrOrStderr(), res.Bag, res.FileSet, bf.diagFormat); err != nil {
			return err
		}
		if bf.format != "" && bf.format != "none" && res.Root != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "== %s ==\n", res.Path)
			if err := printTree(cmd, res, bf); err != nil {
				return err
			}
		}
		if err := applyFixes(cmd, res, bf); err != nil {
			return err
		}
		failed = failed || res.Bag.HasErrors()
	}

	sum := driver.Summarize(results)
	current.notef(cmd, "built %d files (%d cached): %d nodes, %d unknown, %d errors",
		sum.Files, sum.Cached, sum.Nodes, sum.Unknown, sum.Errors)
	if failed {
		return errDiagnostics
	}
	return nil
}

func printTree(cmd *cobra.Command, res *driver.BuildResult, bf buildFlags) error {
	if bf.format == "none" || res.Root == nil {
		return nil
	}
	format, err := diagfmt.ParseTreeFormat(bf.format)
	if err != nil {
		return err
	}
	return diagfmt.FormatTree(cmd.OutOrStdout(), res.Root, diagfmt.TreeOpts{Format: format, ShowTrivia: bf.showTrivia})
}

func applyFixes(cmd *cobra.Command, res *driver.BuildResult, bf buildFlags) error {
	if !bf.applyFixes || res.Bag.Len() == 0 {
		return nil
	}
	result, err := fix.Apply(res.FileSet, res.Bag.Items(), fix.Options{Mode: fix.ModeAll})
	if errors.Is(err, fix.ErrNoFixes) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, ch := range result.Changes {
		current.notef(cmd, "fixed %s (%d edits)", ch.Path, ch.EditCount)
	}
	for _, sk := range result.Skipped {
		current.notef(cmd, "skipped fix %q for %s: %s", sk.Title, sk.Code.ID(), sk.Reason)
	}
	return nil
}
