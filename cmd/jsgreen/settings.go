package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"jsgreen/internal/diagfmt"
	"jsgreen/internal/driver"
	"jsgreen/internal/observ"
	"jsgreen/internal/project"
)

// settings are the effective options of the running command: jsgreen.toml
// first, explicitly set flags on top.
type settings struct {
	manifest       *project.Manifest
	color          bool
	quiet          bool
	timings        bool
	maxDiagnostics int
	jobs           int
	cache          bool
	checkNFC       bool
	buildFormat    string
	pathMode       diagfmt.PathMode
	baseDir        string
	timer          *observ.Timer
}

var current settings

func loadSettings(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	manifest, _, err := project.Load(".")
	if err != nil {
		return err
	}
	cfg := project.Config{}
	if manifest != nil {
		cfg = manifest.Config
	}

	s := settings{
		manifest:       manifest,
		maxDiagnostics: driver.DefaultMaxDiagnostics,
		cache:          cfg.CacheEnabled(),
		jobs:           cfg.Build.Jobs,
		checkNFC:       cfg.Build.CheckNFC,
		buildFormat:    cfg.Output.Format,
	}
	if cfg.Build.MaxDiagnostics > 0 {
		s.maxDiagnostics = cfg.Build.MaxDiagnostics
	}
	if flags.Changed("max-diagnostics") {
		if s.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	colorMode := cfg.Output.Color
	if flags.Changed("color") || colorMode == "" {
		if colorMode, err = flags.GetString("color"); err != nil {
			return fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	switch strings.ToLower(colorMode) {
	case "on":
		s.color = true
	case "off":
		s.color = false
	case "auto", "":
		s.color = isTerminal(os.Stdout) && isTerminal(os.Stderr)
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorMode)
	}
	color.NoColor = !s.color

	paths, err := flags.GetString("paths")
	if err != nil {
		return fmt.Errorf("failed to get paths flag: %w", err)
	}
	if s.pathMode, err = diagfmt.ParsePathMode(paths); err != nil {
		return err
	}
	// относительные пути считаем от корня проекта, если он есть
	if manifest != nil {
		s.baseDir = manifest.Root
	}

	if s.timings {
		s.timer = observ.NewTimer()
	}
	current = s
	return nil
}

// driverOptions builds driver options for the current settings.
func (s settings) driverOptions() driver.Options {
	opts := driver.Options{
		MaxDiagnostics: s.maxDiagnostics,
		Jobs:           s.jobs,
		Timer:          s.timer,
	}
	opts.Lexer.CheckNFC = s.checkNFC
	return opts
}

// openCache opens the two-tier tree cache; failures only disable caching.
func (s settings) openCache(cmd *cobra.Command) *driver.TreeCache {
	if !s.cache {
		return nil
	}
	disk, err := driver.OpenDiskCache("jsgreen")
	if err != nil {
		s.notef(cmd, "tree cache disabled: %v", err)
		disk = nil
	}
	cache, err := driver.NewTreeCache(driver.DefaultMemEntries, disk)
	if err != nil {
		s.notef(cmd, "tree cache disabled: %v", err)
		return nil
	}
	return cache
}

// notef prints a non-essential message to stderr unless --quiet.
func (s settings) notef(cmd *cobra.Command, format string, args ...any) {
	if s.quiet {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}
