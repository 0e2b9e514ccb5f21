package diag

import (
	"path/filepath"
	"strconv"
	"strings"

	"jsgreen/internal/source"
)

// LinesOptions configures Lines.
type LinesOptions struct {
	BaseDir string // paths under BaseDir are printed relative to it
	Notes   bool   // emit one extra line per note
}

// Lines renders one line per diagnostic, "SEV CODE path:line:col message",
// in bag order. Multi-line messages are folded onto one line.
func Lines(diags []Diagnostic, fs *source.FileSet, opts LinesOptions) []string {
	out := make([]string, 0, len(diags))
	for i := range diags {
		d := &diags[i]
		if line, ok := formatLine(fs, strings.ToLower(d.Severity.String()), d.Code, d.Primary, d.Message, opts.BaseDir); ok {
			out = append(out, line)
		}
		if !opts.Notes {
			continue
		}
		for _, n := range d.Notes {
			if line, ok := formatLine(fs, "note", d.Code, n.Span, n.Msg, opts.BaseDir); ok {
				out = append(out, line)
			}
		}
	}
	return out
}

func formatLine(fs *source.FileSet, sev string, code Code, span source.Span, msg, baseDir string) (string, bool) {
	if fs == nil {
		return "", false
	}
	file := fs.Get(span.File)
	if file == nil {
		return "", false
	}
	start, _ := fs.Resolve(span)
	path := file.Path
	if baseDir != "" {
		if rel, err := filepath.Rel(baseDir, path); err == nil && !strings.HasPrefix(rel, "..") {
			path = rel
		}
	}
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")

	var b strings.Builder
	b.WriteString(sev)
	b.WriteByte(' ')
	b.WriteString(code.ID())
	b.WriteByte(' ')
	b.WriteString(path)
	b.WriteByte(':')
	b.WriteString(strconv.FormatUint(uint64(start.Line), 10))
	b.WriteByte(':')
	b.WriteString(strconv.FormatUint(uint64(start.Col), 10))
	b.WriteByte(' ')
	b.WriteString(strings.Join(strings.Fields(msg), " "))
	return b.String(), true
}
