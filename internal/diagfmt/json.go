package diagfmt

import (
	"encoding/json"
	"io"

	"jsgreen/internal/diag"
	"jsgreen/internal/source"
)

// JSONOpts configures the JSON diagnostics report.
type JSONOpts struct {
	IncludePositions bool // line/col рядом с байтами
	IncludeNotes     bool
	IncludeFixes     bool
	PathMode         PathMode
	BaseDir          string
	Max              int // режет только вывод; Bag не трогаем
}

type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

type EditJSON struct {
	Location LocationJSON `json:"location"`
	NewText  string       `json:"new_text"`
}

type FixJSON struct {
	Title string     `json:"title"`
	Edits []EditJSON `json:"edits"`
}

type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
	Fixes    []FixJSON    `json:"fixes,omitempty"`
}

// DiagnosticsOutput is the document written by JSON. Count is the number
// of entries in Diagnostics; Dropped counts what the Bag limit refused.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
	Dropped     int              `json:"dropped,omitempty"`
	BySeverity  map[string]int   `json:"by_severity"`
}

type locator struct {
	fs   *source.FileSet
	opts JSONOpts
}

func (l locator) at(span source.Span) LocationJSON {
	loc := LocationJSON{StartByte: span.Start, EndByte: span.End}
	if f := l.fs.Get(span.File); f != nil {
		loc.File = formatPath(f.Path, l.opts.PathMode, l.opts.BaseDir)
	}
	if l.opts.IncludePositions {
		start, end := l.fs.Resolve(span)
		loc.StartLine, loc.StartCol = start.Line, start.Col
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}

func (l locator) diagnostic(d diag.Diagnostic) DiagnosticJSON {
	out := DiagnosticJSON{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Message:  d.Message,
		Location: l.at(d.Primary),
	}
	// тайминги живут в заметках, без них диагностика пустая
	if l.opts.IncludeNotes || d.Code == diag.ObsTimings {
		for _, n := range d.Notes {
			out.Notes = append(out.Notes, NoteJSON{Message: n.Msg, Location: l.at(n.Span)})
		}
	}
	if l.opts.IncludeFixes {
		for _, f := range d.Fixes {
			fj := FixJSON{Title: f.Title, Edits: make([]EditJSON, 0, len(f.Edits))}
			for _, e := range f.Edits {
				fj.Edits = append(fj.Edits, EditJSON{Location: l.at(e.Span), NewText: e.NewText})
			}
			out.Fixes = append(out.Fixes, fj)
		}
	}
	return out
}

// BuildDiagnosticsOutput builds the report without encoding it. The
// severity summary covers every item, including the ones cut by Max.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	shown := items
	if opts.Max > 0 && opts.Max < len(items) {
		shown = items[:opts.Max]
	}
	out := DiagnosticsOutput{
		Diagnostics: make([]DiagnosticJSON, 0, len(shown)),
		Dropped:     bag.Dropped(),
		BySeverity:  make(map[string]int),
	}
	for _, d := range items {
		out.BySeverity[d.Severity.String()]++
	}
	l := locator{fs: fs, opts: opts}
	for _, d := range shown {
		out.Diagnostics = append(out.Diagnostics, l.diagnostic(d))
	}
	out.Count = len(out.Diagnostics)
	return out
}

// JSON writes the report indented, one document per call.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}
