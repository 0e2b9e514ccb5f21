package green

import (
	"strings"

	"jsgreen/internal/kind"
	"jsgreen/internal/token"
)

// Element is a token or a node of the green tree.
type Element interface {
	Kind() kind.Kind
	// Text returns the exact source text, trivia included.
	Text() string
	// TextLen is len(Text()) without building the string.
	TextLen() int
	writeText(sb *strings.Builder)
}

// Trivia is position-free trivia of a green token.
type Trivia struct {
	Kind token.TriviaKind
	Text string
}

// Token is a leaf of the green tree.
type Token struct {
	kind     kind.Kind
	text     string
	leading  []Trivia
	trailing []Trivia
	textLen  int
}

// NewToken builds a leaf. Trivia slices are owned by the token afterwards.
func NewToken(k kind.Kind, text string, leading, trailing []Trivia) *Token {
	n := len(text)
	for _, t := range leading {
		n += len(t.Text)
	}
	for _, t := range trailing {
		n += len(t.Text)
	}
	return &Token{kind: k, text: text, leading: leading, trailing: trailing, textLen: n}
}

// FromToken drops spans from a lexer token.
func FromToken(t token.Token) *Token {
	return NewToken(t.Kind, t.Text, convertTrivia(t.Leading), convertTrivia(t.Trailing))
}

func convertTrivia(ts []token.Trivia) []Trivia {
	if len(ts) == 0 {
		return nil
	}
	out := make([]Trivia, len(ts))
	for i, t := range ts {
		out[i] = Trivia{Kind: t.Kind, Text: t.Text}
	}
	return out
}

func (t *Token) Kind() kind.Kind    { return t.kind }
func (t *Token) TextLen() int       { return t.textLen }
func (t *Token) Leading() []Trivia  { return t.leading }
func (t *Token) Trailing() []Trivia { return t.trailing }

// TokenText returns the token text without trivia.
func (t *Token) TokenText() string { return t.text }

func (t *Token) Text() string {
	if len(t.leading) == 0 && len(t.trailing) == 0 {
		return t.text
	}
	var sb strings.Builder
	sb.Grow(t.textLen)
	t.writeText(&sb)
	return sb.String()
}

func (t *Token) writeText(sb *strings.Builder) {
	for _, tr := range t.leading {
		sb.WriteString(tr.Text)
	}
	sb.WriteString(t.text)
	for _, tr := range t.trailing {
		sb.WriteString(tr.Text)
	}
}

// LeadingLen is the byte length of the leading trivia.
func (t *Token) LeadingLen() int {
	n := 0
	for _, tr := range t.leading {
		n += len(tr.Text)
	}
	return n
}

// Node is an interior element of the green tree.
type Node struct {
	kind    kind.Kind
	slots   []Element
	textLen int
}

// NewNode builds a node over slots; nil entries are absent children. The
// slice is owned by the node afterwards.
func NewNode(k kind.Kind, slots []Element) *Node {
	n := 0
	for _, s := range slots {
		if s != nil {
			n += s.TextLen()
		}
	}
	return &Node{kind: k, slots: slots, textLen: n}
}

func (n *Node) Kind() kind.Kind { return n.kind }
func (n *Node) TextLen() int    { return n.textLen }

// SlotCount returns the number of slots, absent ones included.
func (n *Node) SlotCount() int { return len(n.slots) }

// Slot returns slot i or nil when it is absent or out of range.
func (n *Node) Slot(i int) Element {
	if i < 0 || i >= len(n.slots) {
		return nil
	}
	return n.slots[i]
}

// Slots exposes the slot slice. Callers must not modify it.
func (n *Node) Slots() []Element { return n.slots }

// Children returns present slots in order.
func (n *Node) Children() []Element {
	out := make([]Element, 0, len(n.slots))
	for _, s := range n.slots {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (n *Node) Text() string {
	var sb strings.Builder
	sb.Grow(n.textLen)
	n.writeText(&sb)
	return sb.String()
}

func (n *Node) writeText(sb *strings.Builder) {
	for _, s := range n.slots {
		if s != nil {
			s.writeText(sb)
		}
	}
}

// ListItems returns the items of a list node. For separated lists these are
// the even slots and may contain nil for a missing item.
func (n *Node) ListItems() []Element {
	switch n.kind.Class() {
	case kind.ClassNodeList:
		return n.slots
	case kind.ClassSeparatedList:
		out := make([]Element, 0, (len(n.slots)+1)/2)
		for i := 0; i < len(n.slots); i += 2 {
			out = append(out, n.slots[i])
		}
		return out
	}
	return nil
}

// Separators returns the odd slots of a separated list; nil marks a missing
// separator.
func (n *Node) Separators() []Element {
	if n.kind.Class() != kind.ClassSeparatedList {
		return nil
	}
	out := make([]Element, 0, len(n.slots)/2)
	for i := 1; i < len(n.slots); i += 2 {
		out = append(out, n.slots[i])
	}
	return out
}

// TrailingSeparator returns the separator that ends a separated list with no
// item after it, or nil.
func (n *Node) TrailingSeparator() *Token {
	if n.kind.Class() != kind.ClassSeparatedList {
		return nil
	}
	l := len(n.slots)
	if l == 0 || l%2 != 0 {
		return nil
	}
	tok, _ := n.slots[l-1].(*Token)
	return tok
}

// Tokens returns every token under e in source order.
func Tokens(e Element) []*Token {
	var out []*Token
	Walk(e, func(el Element) bool {
		if t, ok := el.(*Token); ok {
			out = append(out, t)
		}
		return true
	}, nil)
	return out
}

// ConcatText joins the full text of a children sequence.
func ConcatText(children []Element) string {
	var sb strings.Builder
	for _, c := range children {
		if c != nil {
			c.writeText(&sb)
		}
	}
	return sb.String()
}
