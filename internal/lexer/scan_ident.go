package lexer

import (
	"golang.org/x/text/unicode/norm"

	"jsgreen/internal/diag"
	"jsgreen/internal/kind"
	"jsgreen/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword сканирует IdentifierName и проверяет через LookupKeyword.
// Ключевые слова регистрозависимые; имя с \u escape никогда не ключевое
// слово. Token.Text — ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	escaped := false
	ascii := true

	for first := true; !lx.cursor.EOF(); first = false {
		b := lx.cursor.Peek()
		switch {
		case b == '\\':
			escaped = true
			lx.scanIdentEscape()
		case b < utf8RuneSelf:
			if !isIdentContinueByte(b) || (first && !isIdentStartByte(b)) {
				goto done
			}
			lx.cursor.Bump()
		default:
			r, _ := lx.peekRune()
			if !isIdentContinueRune(r) || (first && !isIdentStartRune(r)) {
				goto done
			}
			ascii = false
			lx.bumpRune()
		}
	}

done:
	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if !ascii && lx.opts.CheckNFC && !norm.NFC.IsNormalString(text) {
		lx.report(diag.LexNonNFCIdent, diag.SevInfo, sp, "identifier is not in NFC form")
	}

	if !escaped {
		if k, ok := kind.LookupKeyword(text); ok {
			return token.Token{Kind: k, Span: sp, Text: text}
		}
	}
	return token.Token{Kind: kind.Ident, Span: sp, Text: text}
}

// scanIdentEscape съедает \uXXXX или \u{X...}; неверная форма — репорт,
// но символы остаются в имени.
func (lx *Lexer) scanIdentEscape() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\'
	if !lx.cursor.Eat('u') {
		lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), "expected \\u escape in identifier")
		return
	}
	if !lx.scanUnicodeEscapeBody() {
		lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), "invalid unicode escape in identifier")
	}
}

// scanUnicodeEscapeBody читает то, что идёт после "\u": 4 hex или {hex+}.
func (lx *Lexer) scanUnicodeEscapeBody() bool {
	if lx.cursor.Eat('{') {
		n := 0
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
			n++
		}
		return lx.cursor.Eat('}') && n > 0 && n <= 6
	}
	for range 4 {
		if !isHex(lx.cursor.Peek()) {
			return false
		}
		lx.cursor.Bump()
	}
	return true
}

// scanUnknown выдаёт ErrorToken на одну руну.
func (lx *Lexer) scanUnknown() token.Token {
	start := lx.cursor.Mark()
	lx.bumpRune()
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, "unknown character")
	return token.Token{Kind: kind.ErrorToken, Span: sp, Text: lx.text(sp)}
}
