package lexer

import (
	"jsgreen/internal/kind"
	"jsgreen/internal/token"
)

const maxPunctLen = 4 // >>>=

// scanOperatorOrPunct берёт самую длинную пунктуацию (4..1 символа) из
// таблицы kind. "?." перед цифрой — это '?' и число (a?.5:b).
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k kind.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	rest := lx.cursor.Rest()
	for n := min(maxPunctLen, len(rest)); n > 0; n-- {
		k, ok := kind.LookupPunct(string(rest[:n]))
		if !ok {
			continue
		}
		if k == kind.QuestionDot && len(rest) > 2 && isDec(rest[2]) {
			continue
		}
		lx.cursor.Skip(n)
		return emit(k)
	}

	return lx.scanUnknown()
}
