package lexer

import (
	"bytes"

	"jsgreen/internal/diag"
	"jsgreen/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
//   - ' ', '\t', '\v', '\f' коалесцируются в один TriviaSpace
//   - '\n', "\r\n", '\r' подряд коалесцируются в один TriviaNewline
//   - //... до конца строки -> TriviaLineComment
//   - /* ... */ -> TriviaBlockComment (без вложенности; если не закрыта — репорт и обрезаем на EOF)
func (lx *Lexer) collectLeadingTrivia() []token.Trivia {
	var out []token.Trivia
	for !lx.cursor.EOF() {
		t, ok := lx.scanTrivia(true)
		if !ok {
			break
		}
		out = append(out, t)
	}
	return out
}

// collectTrailingTrivia берёт trivia до конца строки: пробелы и комментарии,
// но не перевод строки и не блочный комментарий, который его содержит.
// Всё остальное станет leading trivia следующего токена.
func (lx *Lexer) collectTrailingTrivia() []token.Trivia {
	var out []token.Trivia
	for !lx.cursor.EOF() {
		mark := lx.cursor.Mark()
		t, ok := lx.scanTrivia(false)
		if !ok {
			break
		}
		if t.Kind == token.TriviaBlockComment && bytes.ContainsAny([]byte(t.Text), "\r\n") {
			lx.cursor.Reset(mark)
			break
		}
		out = append(out, t)
	}
	return out
}

// scanTrivia сканирует один элемент trivia. Переводы строки принимаются
// только при allowNewline.
func (lx *Lexer) scanTrivia(allowNewline bool) (token.Trivia, bool) {
	start := lx.cursor.Mark()
	b := lx.cursor.Peek()
	var k token.TriviaKind

	switch {
	case isSpace(b):
		for isSpace(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		k = token.TriviaSpace

	case isNewlineStart(b):
		if !allowNewline {
			return token.Trivia{}, false
		}
		for isNewlineStart(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		k = token.TriviaNewline

	case lx.cursor.HasPrefix("//"):
		for !lx.cursor.EOF() && !isNewlineStart(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		k = token.TriviaLineComment

	case lx.cursor.HasPrefix("/*"):
		lx.cursor.Skip(2)
		closed := false
		for !lx.cursor.EOF() {
			if lx.cursor.HasPrefix("*/") {
				lx.cursor.Skip(2)
				closed = true
				break
			}
			lx.cursor.Bump()
		}
		if !closed {
			lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
		}
		k = token.TriviaBlockComment

	default:
		// нет больше trivia
		return token.Trivia{}, false
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Trivia{Kind: k, Span: sp, Text: lx.text(sp)}, true
}
