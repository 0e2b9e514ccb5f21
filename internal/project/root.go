package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigName is the project file looked up by FindConfig.
	ConfigName = "jsgreen.toml"
	// EnvConfig names an explicit config file and disables the lookup.
	EnvConfig = "JSGREEN_CONFIG"
)

// FindConfig returns $JSGREEN_CONFIG when set, otherwise walks up from
// startDir looking for jsgreen.toml. The walk stops after the first
// directory that holds a .git entry: configs of an enclosing checkout
// never apply.
func FindConfig(startDir string) (path string, ok bool, err error) {
	if env := os.Getenv(EnvConfig); env != "" {
		if _, err := os.Stat(env); err != nil {
			return "", false, fmt.Errorf("%s: %w", EnvConfig, err)
		}
		abs, err := filepath.Abs(env)
		if err != nil {
			return "", false, fmt.Errorf("%s: %w", EnvConfig, err)
		}
		return abs, true, nil
	}
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ConfigName)
		found, err := exists(candidate)
		if err != nil {
			return "", false, err
		}
		if found {
			return candidate, true, nil
		}
		if repo, err := exists(filepath.Join(dir, ".git")); err != nil || repo {
			return "", false, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %q: %w", path, err)
}
