package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"jsgreen/internal/driver"
)

func TestProgressModelCounts(t *testing.T) {
	files := []string{"a.tree", "b.tree", "c.tree"}
	m := NewProgressModel("build", files, nil).(*progressModel)

	m.applyEvent(driver.Progress{Path: "a.tree", Done: 1, Total: 3})
	m.applyEvent(driver.Progress{Path: "b.tree", Done: 2, Total: 3, Cached: true})
	m.applyEvent(driver.Progress{Path: "c.tree", Done: 3, Total: 3, Err: errors.New("no tree")})

	if m.done != 3 || m.cached != 1 || m.failed != 1 {
		t.Fatalf("unexpected counters done=%d cached=%d failed=%d", m.done, m.cached, m.failed)
	}
	want := []string{"done", "cached", "error"}
	for i, item := range m.items {
		if item.status != want[i] {
			t.Fatalf("item %s status %q, want %q", item.path, item.status, want[i])
		}
	}
	view := m.View()
	if !strings.Contains(view, "build (3/3)") || !strings.Contains(view, "1 cached, 1 failed") {
		t.Fatalf("unexpected view:\n%s", view)
	}
}

func TestProgressModelScrolls(t *testing.T) {
	var files []string
	for i := range maxRows + 5 {
		files = append(files, fmt.Sprintf("f%02d.tree", i))
	}
	m := NewProgressModel("build", files, nil).(*progressModel)
	if rows := m.visibleRows(); len(rows) != 0 {
		t.Fatalf("nothing finished yet, got %d rows", len(rows))
	}
	for i, f := range files {
		m.applyEvent(driver.Progress{Path: f, Done: i + 1, Total: len(files)})
	}
	rows := m.visibleRows()
	if len(rows) != maxRows || rows[len(rows)-1] != len(files)-1 {
		t.Fatalf("expected the newest %d rows, got %v", maxRows, rows)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"averyverylongname", 8, "av..."},
		{"abcdef", 2, "ab"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
