package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"jsgreen/internal/factory"
	"jsgreen/internal/green"
	"jsgreen/internal/kind"
)

// TreeFormat selects how FormatTree prints a tree.
type TreeFormat uint8

const (
	TreeFormatTree TreeFormat = iota // indented dump with slot names
	TreeFormatText                   // reconstructed source text
	TreeFormatJSON
)

// ParseTreeFormat parses the --format value of `build`.
func ParseTreeFormat(s string) (TreeFormat, error) {
	switch s {
	case "", "tree":
		return TreeFormatTree, nil
	case "text":
		return TreeFormatText, nil
	case "json":
		return TreeFormatJSON, nil
	}
	return 0, fmt.Errorf("unknown tree format %q (expected tree|text|json)", s)
}

// TreeOpts configures FormatTree.
type TreeOpts struct {
	Format     TreeFormat
	ShowTrivia bool
	MaxText    int // truncation of token text in the dump
}

// ElementJSON is one element of the JSON tree. Absent slots encode as null.
type ElementJSON struct {
	Kind     string         `json:"kind"`
	Slot     string         `json:"slot,omitempty"`
	Text     string         `json:"text,omitempty"`
	Leading  []TriviaOutput `json:"leading,omitempty"`
	Trailing []TriviaOutput `json:"trailing,omitempty"`
	Slots    []*ElementJSON `json:"slots,omitempty"`
}

// FormatTree writes root in the chosen format.
func FormatTree(w io.Writer, root *green.Node, opts TreeOpts) error {
	if root == nil {
		return nil
	}
	switch opts.Format {
	case TreeFormatText:
		_, err := io.WriteString(w, root.Text())
		return err
	case TreeFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(TreeJSON(root))
	default:
		return green.Dump(w, root, green.DumpOptions{
			SlotName:   factory.SlotName,
			ShowAbsent: true,
			ShowTrivia: opts.ShowTrivia,
			MaxText:    opts.MaxText,
		})
	}
}

// TreeJSON converts an element for JSON output.
func TreeJSON(e green.Element) *ElementJSON {
	return elementJSON(e, "")
}

func elementJSON(e green.Element, slot string) *ElementJSON {
	if e == nil {
		return nil
	}
	out := &ElementJSON{Kind: e.Kind().String(), Slot: slot}
	switch e := e.(type) {
	case *green.Token:
		out.Text = e.TokenText()
		out.Leading = greenTrivia(e.Leading())
		out.Trailing = greenTrivia(e.Trailing())
	case *green.Node:
		out.Slots = make([]*ElementJSON, e.SlotCount())
		for i, s := range e.Slots() {
			out.Slots[i] = elementJSON(s, slotLabel(e.Kind(), i))
		}
	}
	return out
}

func slotLabel(parent kind.Kind, i int) string {
	if parent.IsUnknown() {
		return ""
	}
	return factory.SlotName(parent, i)
}

func greenTrivia(ts []green.Trivia) []TriviaOutput {
	if len(ts) == 0 {
		return nil
	}
	out := make([]TriviaOutput, len(ts))
	for i, tr := range ts {
		out[i] = TriviaOutput{Kind: tr.Kind.String(), Text: tr.Text}
	}
	return out
}
