package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func withPlainOutput(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func override(t *testing.T, version, commit, date string) {
	t.Helper()
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	Version, GitCommit, BuildDate = version, commit, date
	t.Cleanup(func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate })
}

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestColored(t *testing.T) {
	withPlainOutput(t)
	tests := []struct{ in, want string }{
		{"1.2.3", "1.2.3"},
		{"0.1.0-dev", "0.1.0-dev"},
		{"nightly", "nightly"},
	}
	for _, tt := range tests {
		override(t, tt.in, "", "")
		if got := Colored(); got != tt.want {
			t.Errorf("Colored() with %q = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestColoredUsesColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })
	override(t, "1.2.3", "", "")
	if got := Colored(); !strings.Contains(got, "\x1b[") {
		t.Errorf("expected ANSI sequences, got %q", got)
	}
}

func TestBanner(t *testing.T) {
	withPlainOutput(t)
	override(t, "1.2.3", "abc123def456", "2024-01-15T10:30:00Z")
	got := Banner()
	want := "jsgreen 1.2.3\ncommit: abc123def456\nbuilt:  2024-01-15T10:30:00Z\n"
	if got != want {
		t.Errorf("Banner() = %q, want %q", got, want)
	}

	override(t, "1.2.3", "", "")
	if got := Banner(); got != "jsgreen 1.2.3\n" {
		t.Errorf("optional fields must be omitted, got %q", got)
	}
}
