package project_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jsgreen/internal/project"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, project.ConfigName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
[build]
jobs = 3
cache = false
max_diagnostics = 20

[output]
color = "off"
format = "json"
`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	m, ok, err := project.Load(nested)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	want, _ := filepath.Abs(root)
	if m.Root != want {
		t.Fatalf("root %q, want %q", m.Root, want)
	}
	c := m.Config
	if c.Build.Jobs != 3 || c.Build.MaxDiagnostics != 20 || c.CacheEnabled() {
		t.Fatalf("unexpected build config %+v", c.Build)
	}
	if c.Output.Color != "off" || c.Output.Format != "json" {
		t.Fatalf("unexpected output config %+v", c.Output)
	}
}

func TestLoadWithoutConfig(t *testing.T) {
	m, ok, err := project.Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok && m == nil {
		t.Fatalf("ok without manifest")
	}
}

func TestCacheDefaultsToEnabled(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[build]\njobs = 1\n")
	cfg, err := project.LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.CacheEnabled() {
		t.Fatalf("cache must default to enabled")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name, content, want string
	}{
		{"syntax", "[build\n", "failed to parse TOML"},
		{"unknown key", "[build]\nworkers = 2\n", "unknown keys: build.workers"},
		{"negative jobs", "[build]\njobs = -1\n", "[build].jobs"},
		{"bad color", "[output]\ncolor = \"sometimes\"\n", "[output].color"},
		{"bad format", "[output]\nformat = \"xml\"\n", "[output].format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := project.LoadConfig(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestFindConfigStopsAtRepoRoot(t *testing.T) {
	outer := t.TempDir()
	writeConfig(t, outer, "[build]\njobs = 1\n")
	repo := filepath.Join(outer, "repo")
	nested := filepath.Join(repo, "src")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	path, ok, err := project.FindConfig(nested)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("config outside the repository leaked in: %s", path)
	}
}

func TestFindConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[build]\njobs = 2\n")
	t.Setenv(project.EnvConfig, path)
	got, ok, err := project.FindConfig(t.TempDir())
	if err != nil || !ok || got != path {
		t.Fatalf("got %q ok=%v err=%v, want %q", got, ok, err, path)
	}

	t.Setenv(project.EnvConfig, filepath.Join(dir, "missing.toml"))
	if _, _, err := project.FindConfig("."); err == nil {
		t.Fatalf("expected error for missing override")
	}
}
