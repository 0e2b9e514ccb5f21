// Package fix applies the text edits attached to diagnostics.
package fix

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"jsgreen/internal/diag"
	"jsgreen/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// Mode determines how many fixes are taken.
type Mode uint8

const (
	// ModeAll takes every fix that does not conflict with an earlier one.
	ModeAll Mode = iota
	// ModeOnce takes only the first applicable fix.
	ModeOnce
)

// Options configures fix selection.
type Options struct {
	Mode Mode
}

// AppliedFix records a fix that made it into the output.
type AppliedFix struct {
	Title     string
	Code      diag.Code
	Message   string
	Path      string
	EditCount int
}

// SkippedFix captures a fix that was not applied, with a reason.
type SkippedFix struct {
	Title  string
	Code   diag.Code
	Reason string
}

// FileChange summarises the edits made to one file.
type FileChange struct {
	File      source.FileID
	Path      string
	EditCount int
	Content   []byte
}

// Result aggregates applied fixes, skipped ones, and rewritten files.
type Result struct {
	Applied []AppliedFix
	Skipped []SkippedFix
	Changes []FileChange
}

type plannedEdit struct {
	edit  diag.FixEdit
	order int
}

// Plan selects fixes in diagnostic order and computes the rewritten
// contents without touching the disk. Edit spans refer to the original
// contents; a fix whose edits overlap an already selected edit is skipped
// as a whole. Insertions at the same offset keep their selection order.
func Plan(fs *source.FileSet, diagnostics []diag.Diagnostic, opts Options) (*Result, error) {
	result := &Result{}
	if fs == nil {
		return result, fmt.Errorf("fix: FileSet is nil")
	}

	selected := make(map[source.FileID][]plannedEdit)
	order := 0
	for _, d := range diagnostics {
		for _, f := range d.Fixes {
			if opts.Mode == ModeOnce && len(result.Applied) > 0 {
				return finish(fs, result, selected)
			}
			if reason := check(fs, f, selected); reason != "" {
				result.Skipped = append(result.Skipped, SkippedFix{Title: f.Title, Code: d.Code, Reason: reason})
				continue
			}
			for _, e := range f.Edits {
				selected[e.Span.File] = append(selected[e.Span.File], plannedEdit{edit: e, order: order})
				order++
			}
			result.Applied = append(result.Applied, AppliedFix{
				Title:     f.Title,
				Code:      d.Code,
				Message:   d.Message,
				Path:      pathOf(fs, d.Primary.File),
				EditCount: len(f.Edits),
			})
		}
	}
	return finish(fs, result, selected)
}

func check(fs *source.FileSet, f diag.Fix, selected map[source.FileID][]plannedEdit) string {
	if len(f.Edits) == 0 {
		return "fix has no edits"
	}
	for i, e := range f.Edits {
		file := fs.Get(e.Span.File)
		if file == nil {
			return "edit targets an unknown file"
		}
		if e.Span.End < e.Span.Start || int(e.Span.End) > len(file.Content) {
			return "edit span out of range"
		}
		for _, prev := range selected[e.Span.File] {
			if spansConflict(prev.edit.Span, e.Span) {
				return "conflicts with a previously selected edit"
			}
		}
		for _, other := range f.Edits[:i] {
			if other.Span.File == e.Span.File && spansConflict(other.Span, e.Span) {
				return "fix has overlapping edits"
			}
		}
	}
	return ""
}

func finish(fs *source.FileSet, result *Result, selected map[source.FileID][]plannedEdit) (*Result, error) {
	ids := make([]source.FileID, 0, len(selected))
	for id := range selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		file := fs.Get(id)
		edits := selected[id]
		result.Changes = append(result.Changes, FileChange{
			File:      id,
			Path:      file.Path,
			EditCount: len(edits),
			Content:   rewrite(file.Content, edits),
		})
	}
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}
	return result, nil
}

// rewrite applies non-overlapping edits back to front so earlier offsets
// stay valid.
func rewrite(content []byte, edits []plannedEdit) []byte {
	sorted := append([]plannedEdit(nil), edits...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].edit.Span, sorted[j].edit.Span
		if a.Start != b.Start {
			return a.Start > b.Start
		}
		return sorted[i].order > sorted[j].order
	})
	out := append([]byte(nil), content...)
	for _, pe := range sorted {
		start, end := int(pe.edit.Span.Start), int(pe.edit.Span.End)
		tail := append([]byte(nil), out[end:]...)
		out = append(append(out[:start], pe.edit.NewText...), tail...)
	}
	return out
}

// spansConflict reports whether two spans overlap as half-open intervals.
// Two insertions never conflict; an insertion conflicts with a span that
// strictly contains its position or starts at it.
func spansConflict(a, b source.Span) bool {
	if a.Start == a.End && b.Start == b.End {
		return false
	}
	if a.Start == a.End {
		return b.Start <= a.Start && a.Start < b.End
	}
	if b.Start == b.End {
		return a.Start <= b.Start && b.Start < a.End
	}
	return a.Start < b.End && b.Start < a.End
}

func pathOf(fs *source.FileSet, id source.FileID) string {
	if file := fs.Get(id); file != nil {
		return file.Path
	}
	return ""
}

// Apply plans the fixes and writes every changed file back to disk,
// keeping its mode. Virtual files are never written.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, opts Options) (*Result, error) {
	result, err := Plan(fs, diagnostics, opts)
	if err != nil {
		return result, err
	}
	for _, ch := range result.Changes {
		file := fs.Get(ch.File)
		if file.Flags&source.FileVirtual != 0 {
			continue
		}
		mode := os.FileMode(0o644)
		if info, statErr := os.Stat(file.Path); statErr == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(file.Path, ch.Content, mode); err != nil {
			return result, fmt.Errorf("write %s: %w", file.Path, err)
		}
	}
	return result, nil
}
