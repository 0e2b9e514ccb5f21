package lexer

import (
	"jsgreen/internal/diag"
	"jsgreen/internal/kind"
	"jsgreen/internal/token"
)

// scanString сканирует '...' или "...". Escape проверяются, но не
// декодируются: Token.Text — исходный срез с кавычками.
// Сырой перевод строки завершает строку с ошибкой (сам перевод не входит в токен).
// Продолжение строки через '\' + перевод строки допустимо.
func (lx *Lexer) scanString(quote byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // открывающая кавычка

	for {
		if lx.cursor.EOF() || isNewlineStart(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
			return token.Token{Kind: kind.JsStringLiteral, Span: sp, Text: lx.text(sp)}
		}
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			break
		}
		if b == '\\' {
			lx.scanStringEscape()
			continue
		}
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind.JsStringLiteral, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) scanStringEscape() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\'
	if lx.cursor.EOF() {
		return
	}
	switch b := lx.cursor.Peek(); b {
	case 'x':
		lx.cursor.Bump()
		for range 2 {
			if !isHex(lx.cursor.Peek()) {
				lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), "invalid hexadecimal escape")
				return
			}
			lx.cursor.Bump()
		}
	case 'u':
		lx.cursor.Bump()
		if !lx.scanUnicodeEscapeBody() {
			lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), "invalid unicode escape")
		}
	case '\r':
		// line continuation, \r\n как один перевод
		lx.cursor.Bump()
		lx.cursor.Eat('\n')
	default:
		lx.bumpRune()
	}
}
