package token

import (
	"jsgreen/internal/kind"
	"jsgreen/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind     kind.Kind
	Span     source.Span
	Text     string
	Leading  []Trivia
	Trailing []Trivia
}

// IsLiteral reports whether the token is a number, bigint, string or regex literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case kind.JsNumberLiteral, kind.JsBigintLiteral, kind.JsStringLiteral, kind.JsRegexLiteral:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool { return t.Kind.IsPunct() }

// IsKeyword reports reserved and contextual keywords.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == kind.Ident }

// FullText returns leading trivia, text and trailing trivia joined.
func (t Token) FullText() string {
	return TriviaText(t.Leading) + t.Text + TriviaText(t.Trailing)
}

// HasNewlineBefore reports whether a line break precedes the token. Parsers
// use it for automatic semicolon insertion.
func (t Token) HasNewlineBefore() bool {
	for _, tr := range t.Leading {
		if tr.Kind == TriviaNewline {
			return true
		}
		if tr.Kind == TriviaBlockComment && containsNewline(tr.Text) {
			return true
		}
	}
	return false
}

func containsNewline(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' || s[i] == '\r' {
			return true
		}
	}
	return false
}
