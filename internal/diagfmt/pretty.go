package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"jsgreen/internal/diag"
	"jsgreen/internal/source"
)

// PrettyOpts configures Pretty.
type PrettyOpts struct {
	Color     bool
	Context   int // строк вокруг основной
	PathMode  PathMode
	BaseDir   string // для PathModeRelative; "" = текущий каталог
	ShowNotes bool
	ShowFixes bool
}

type palette struct {
	on      bool
	err     *color.Color
	warn    *color.Color
	info    *color.Color
	path    *color.Color
	caret   *color.Color
	note    *color.Color
	gutter  *color.Color
	fixLine *color.Color
}

func newPalette(on bool) palette {
	p := palette{
		on:      on,
		err:     color.New(color.FgRed, color.Bold),
		warn:    color.New(color.FgYellow, color.Bold),
		info:    color.New(color.FgCyan, color.Bold),
		path:    color.New(color.Bold),
		caret:   color.New(color.FgGreen, color.Bold),
		note:    color.New(color.FgBlue),
		gutter:  color.New(color.FgBlue, color.Faint),
		fixLine: color.New(color.FgGreen),
	}
	// цвет решается опцией, а не глобальным color.NoColor
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.path, p.caret, p.note, p.gutter, p.fixLine} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts, pal)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	file := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)
	path := "<unknown>"
	if file != nil {
		path = formatPath(file.Path, opts.PathMode, opts.BaseDir)
	}
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		pal.path.Sprintf("%s:%d:%d", path, start.Line, start.Col),
		pal.severity(d.Severity).Sprint(d.Severity.String()),
		d.Code.ID(),
		d.Message)
	if file != nil {
		writeSnippet(w, file, fs, d.Primary, opts.Context, pal, pal.caret)
	}

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nstart, _ := fs.Resolve(n.Span)
			npath := path
			nfile := fs.Get(n.Span.File)
			if nfile != nil {
				npath = formatPath(nfile.Path, opts.PathMode, opts.BaseDir)
			}
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", pal.note.Sprint("note:"), npath, nstart.Line, nstart.Col, n.Msg)
			if nfile != nil {
				writeSnippet(w, nfile, fs, n.Span, 0, pal, pal.note)
			}
		}
	}
	if opts.ShowFixes {
		for _, f := range d.Fixes {
			fmt.Fprintf(w, "  %s %s\n", pal.fixLine.Sprint("fix:"), f.Title)
			for _, e := range f.Edits {
				fmt.Fprintf(w, "    %s -> %q\n", e.Span, e.NewText)
			}
		}
	}
}

// writeSnippet печатает строку span'а с подчёркиванием и context строк вокруг.
func writeSnippet(w io.Writer, file *source.File, fs *source.FileSet, sp source.Span, context int, pal palette, caret *color.Color) {
	start, end := fs.Resolve(sp)
	first := int(start.Line) - context
	if first < 1 {
		first = 1
	}
	last := int(start.Line) + context
	lines := file.LineCount()
	if last > lines {
		last = lines
	}
	gutterWidth := len(fmt.Sprint(last))

	for ln := first; ln <= last; ln++ {
		text := expandTabs(file.Line(uint32(ln)))
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", gutterWidth, ln), text)
		if ln != int(start.Line) {
			continue
		}
		col := int(start.Col) - 1
		col = min(col, len(text))
		width := 1
		if end.Line == start.Line && end.Col > start.Col {
			width = int(end.Col - start.Col)
		} else if end.Line > start.Line {
			width = max(len(text)-col, 1)
		}
		// позиция в колонках экрана, не в байтах
		pad := runewidth.StringWidth(text[:col])
		underline := "^"
		if width > 1 {
			stop := min(col+width, len(text))
			cells := runewidth.StringWidth(text[col:stop])
			underline += strings.Repeat("~", max(cells-1, 0))
		}
		fmt.Fprintf(w, "%s %s%s\n", pal.gutter.Sprintf("%*s |", gutterWidth, ""), strings.Repeat(" ", pad), caret.Sprint(underline))
	}
}

// expandTabs keeps byte offsets: one tab becomes one space.
func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", " ")
}
