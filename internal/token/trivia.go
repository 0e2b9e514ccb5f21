package token

import "jsgreen/internal/source"

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	}
	return "Invalid"
}

// IsComment reports line and block comments.
func (k TriviaKind) IsComment() bool {
	return k == TriviaLineComment || k == TriviaBlockComment
}

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// TriviaText concatenates the text of a trivia run.
func TriviaText(ts []Trivia) string {
	switch len(ts) {
	case 0:
		return ""
	case 1:
		return ts[0].Text
	}
	n := 0
	for _, t := range ts {
		n += len(t.Text)
	}
	buf := make([]byte, 0, n)
	for _, t := range ts {
		buf = append(buf, t.Text...)
	}
	return string(buf)
}
