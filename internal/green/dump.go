package green

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"jsgreen/internal/kind"
)

// DumpOptions controls Dump output.
type DumpOptions struct {
	// SlotName names slot i of a parent kind; nil or "" falls back to the index.
	SlotName func(parent kind.Kind, i int) string
	// ShowAbsent prints absent slots as "-".
	ShowAbsent bool
	// ShowTrivia prints leading and trailing trivia of tokens.
	ShowTrivia bool
	// MaxText truncates token text to that many display cells (0 = no limit).
	MaxText int
}

// Dump writes an indented debug view of the tree: one line per element with
// kind, byte range and, for tokens, the quoted text. Token text columns are
// aligned per parent.
func Dump(w io.Writer, e Element, opts DumpOptions) error {
	d := dumper{w: w, opts: opts}
	d.element(e, 0, 0)
	return d.err
}

type dumper struct {
	w    io.Writer
	opts DumpOptions
	err  error
}

type dumpLine struct {
	label string
	elem  Element
	start int
}

func (d *dumper) printf(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}

func (d *dumper) header(e Element, start int) string {
	return e.Kind().String() + "@" + strconv.Itoa(start) + ".." + strconv.Itoa(start+e.TextLen())
}

func (d *dumper) element(e Element, start, depth int) {
	if depth == 0 {
		d.printf("%s%s\n", d.header(e, start), d.tokenSuffix(e))
	}
	n, ok := e.(*Node)
	if !ok {
		return
	}
	indent := strings.Repeat("  ", depth+1)

	lines := make([]dumpLine, 0, len(n.slots))
	width := 0
	off := start
	for i, s := range n.slots {
		name := d.slotName(n, i)
		if s == nil {
			if d.opts.ShowAbsent {
				lines = append(lines, dumpLine{label: name + ": -"})
			}
			continue
		}
		l := dumpLine{label: name + ": " + d.header(s, off), elem: s, start: off}
		if w := runewidth.StringWidth(l.label); w > width {
			width = w
		}
		lines = append(lines, l)
		off += s.TextLen()
	}

	for _, l := range lines {
		if l.elem == nil {
			d.printf("%s%s\n", indent, l.label)
			continue
		}
		suffix := d.tokenSuffix(l.elem)
		if suffix != "" {
			d.printf("%s%s%s\n", indent, runewidth.FillRight(l.label, width), suffix)
		} else {
			d.printf("%s%s\n", indent, l.label)
		}
		d.element(l.elem, l.start, depth+1)
	}
}

func (d *dumper) slotName(n *Node, i int) string {
	if d.opts.SlotName != nil {
		if name := d.opts.SlotName(n.kind, i); name != "" {
			return name
		}
	}
	return strconv.Itoa(i)
}

func (d *dumper) tokenSuffix(e Element) string {
	t, ok := e.(*Token)
	if !ok {
		return ""
	}
	text := t.text
	if d.opts.MaxText > 0 {
		text = runewidth.Truncate(text, d.opts.MaxText, "…")
	}
	out := " " + strconv.Quote(text)
	if d.opts.ShowTrivia {
		if len(t.leading) > 0 {
			out += " leading " + quoteTrivia(t.leading)
		}
		if len(t.trailing) > 0 {
			out += " trailing " + quoteTrivia(t.trailing)
		}
	}
	return out
}

func quoteTrivia(ts []Trivia) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.Kind.String() + ":" + strconv.Quote(t.Text)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
