package testkit

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"jsgreen/internal/factory"
	"jsgreen/internal/green"
	"jsgreen/internal/token"
)

// CheckLossless compares the text of e with want and returns a unified diff
// on mismatch.
func CheckLossless(want string, e green.Element) error {
	got := ""
	if e != nil {
		got = e.Text()
	}
	if got == want {
		if e != nil && e.TextLen() != len(got) {
			return fmt.Errorf("TextLen %d does not match text length %d", e.TextLen(), len(got))
		}
		return nil
	}
	return textDiff("round-trip text differs", want, got)
}

// CheckTokensLossless checks that a token stream, trivia included,
// reproduces content and that every span matches its text.
func CheckTokensLossless(content []byte, toks []token.Token) error {
	var sb strings.Builder
	for i, tok := range toks {
		if int(tok.Span.End) > len(content) || tok.Span.Start > tok.Span.End {
			return fmt.Errorf("token %d %s: span %v out of bounds", i, tok.Kind, tok.Span)
		}
		if got := string(content[tok.Span.Start:tok.Span.End]); got != tok.Text {
			return fmt.Errorf("token %d %s: span text %q, token text %q", i, tok.Kind, got, tok.Text)
		}
		sb.WriteString(tok.FullText())
	}
	if got := sb.String(); got != string(content) {
		return textDiff("token stream differs from source", string(content), got)
	}
	return nil
}

func textDiff(title, want, got string) error {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(want),
		B:        splitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return fmt.Errorf("%s (diff failed: %w)", title, err)
	}
	return fmt.Errorf("%s:\n%s", title, diff)
}

// splitLines keeps an unterminated last line distinct from the same line
// with '\n', marking it the way diff(1) does.
func splitLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	last := lines[len(lines)-1]
	if last == "" {
		return lines[:len(lines)-1]
	}
	lines[len(lines)-1] = last + "\n\\ No newline at end of file\n"
	return lines
}

// CheckShape verifies n against the layout of its kind without descending:
//   - shaped nodes have one slot per shape slot, each present slot passing its test;
//   - node lists hold only matching items;
//   - separated lists alternate item and separator, absent entries allowed;
//   - unknown nodes hold no absent slots.
func CheckShape(n *green.Node) error {
	k := n.Kind()
	slots := n.Slots()
	switch factory.ArmOf(k) {
	case factory.ArmShape:
		sh := factory.ShapeOf(k)
		if len(slots) != sh.Arity() {
			return fmt.Errorf("%s: %d slots, shape has %d", k, len(slots), sh.Arity())
		}
		for i, s := range slots {
			if s != nil && !sh.Slots[i].Test.Matches(s) {
				return fmt.Errorf("%s: slot %s holds %s", k, sh.Slots[i].Name, s.Kind())
			}
		}
	case factory.ArmNodeList:
		cfg := factory.NodeListOf(k)
		for i, s := range slots {
			if s == nil || !cfg.Item.Matches(s) {
				return fmt.Errorf("%s: item %d is %v", k, i, kindOf(s))
			}
		}
	case factory.ArmSeparatedList:
		cfg := factory.SeparatedListOf(k)
		for i, s := range slots {
			if s == nil {
				continue
			}
			if i%2 == 1 && s.Kind() != cfg.Separator {
				return fmt.Errorf("%s: separator %d is %s", k, i/2, s.Kind())
			}
			if i%2 == 0 && !cfg.Item.Matches(s) {
				return fmt.Errorf("%s: item %d is %s", k, i/2, s.Kind())
			}
		}
	case factory.ArmPassThrough:
		for i, s := range slots {
			if s == nil {
				return fmt.Errorf("%s: absent slot %d in an unknown node", k, i)
			}
		}
	default:
		return fmt.Errorf("%s is not a node kind", k)
	}
	return nil
}

// CheckTree runs CheckShape on every node under root.
func CheckTree(root green.Element) error {
	var err error
	green.Walk(root, func(e green.Element) bool {
		if err != nil {
			return false
		}
		if n, ok := e.(*green.Node); ok {
			err = CheckShape(n)
			return err == nil
		}
		return false
	}, nil)
	return err
}

func kindOf(e green.Element) any {
	if e == nil {
		return "absent"
	}
	return e.Kind()
}
