package project

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the decoded jsgreen.toml. Zero values mean "not set"; the CLI
// applies its own defaults and lets flags override.
type Config struct {
	Build  BuildConfig  `toml:"build"`
	Output OutputConfig `toml:"output"`
}

type BuildConfig struct {
	Jobs           int   `toml:"jobs"`
	Cache          *bool `toml:"cache"`
	MaxDiagnostics int   `toml:"max_diagnostics"`
	// CheckNFC enables the lexer's NFC check of identifiers.
	CheckNFC bool `toml:"check_nfc"`
}

type OutputConfig struct {
	Color  string `toml:"color"`  // auto|on|off
	Format string `toml:"format"` // default format of `build`
}

// Manifest is a located and decoded project file.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

var (
	colorModes   = []string{"", "auto", "on", "off"}
	buildFormats = []string{"", "tree", "text", "json"}
)

// Load finds jsgreen.toml from startDir upward and decodes it. ok is false
// when no project file exists.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// LoadConfig decodes and validates one project file. Unknown keys are
// rejected so typos do not go unnoticed.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Build.Jobs < 0 {
		return fmt.Errorf("[build].jobs must be >= 0, got %d", c.Build.Jobs)
	}
	if c.Build.MaxDiagnostics < 0 {
		return fmt.Errorf("[build].max_diagnostics must be >= 0, got %d", c.Build.MaxDiagnostics)
	}
	if !slices.Contains(colorModes, c.Output.Color) {
		return fmt.Errorf("[output].color must be auto, on or off, got %q", c.Output.Color)
	}
	if !slices.Contains(buildFormats, c.Output.Format) {
		return fmt.Errorf("[output].format must be tree, text or json, got %q", c.Output.Format)
	}
	return nil
}

// CacheEnabled reports [build].cache, defaulting to true.
func (c Config) CacheEnabled() bool {
	return c.Build.Cache == nil || *c.Build.Cache
}
