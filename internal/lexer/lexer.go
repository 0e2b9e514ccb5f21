package lexer

import (
	"jsgreen/internal/diag"
	"jsgreen/internal/kind"
	"jsgreen/internal/source"
	"jsgreen/internal/token"
)

type Lexer struct {
	file    *source.File
	cursor  Cursor
	opts    Options
	look    *token.Token   // 1 элементный буфер для токена
	hold    []token.Trivia // накопленные leading trivia
	started bool
	done    bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий **значимый** токен с уже собранными Leading и
// Trailing. EOF несёт хвостовые trivia файла; после EOF всегда EOF без trivia.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	if lx.done {
		return token.Token{Kind: kind.EOF, Span: lx.emptySpan()}
	}

	if !lx.started {
		lx.started = true
		if lx.cursor.HasPrefix("#!") {
			tok := lx.scanShebang()
			tok.Trailing = lx.collectTrailingTrivia()
			return tok
		}
	}

	lx.hold = lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		lx.done = true
		return token.Token{
			Kind:    kind.EOF,
			Span:    lx.emptySpan(),
			Leading: lx.takeHold(),
		}
	}

	start := lx.cursor.Mark()
	tok := lx.scanToken()

	if len(tok.Text) > lx.maxTokenLength() {
		// Остаток файла — один ErrorToken, текст не теряем.
		lx.cursor.Off = lx.cursor.End()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexTokenTooLong, sp, "token exceeds the maximum length")
		tok = token.Token{Kind: kind.ErrorToken, Span: sp, Text: lx.text(sp)}
	}

	tok.Leading = lx.takeHold()
	tok.Trailing = lx.collectTrailingTrivia()
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) scanToken() token.Token {
	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch), ch == '\\':
		return lx.scanIdentOrKeyword()
	case ch >= utf8RuneSelf:
		// Возможный Unicode идентификатор; иначе неизвестный символ
		if r, _ := lx.peekRune(); isIdentStartRune(r) {
			return lx.scanIdentOrKeyword()
		}
		return lx.scanUnknown()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()
	case ch == '"' || ch == '\'':
		return lx.scanString(ch)
	case ch == '#' && lx.cursor.HasPrefix("#!"):
		// shebang не в начале файла: '#' и '!' идут как пунктуация
		sp := source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off + 2}
		lx.errLex(diag.LexMisplacedShebang, sp, "shebang is only allowed at the start of the file")
		return lx.scanOperatorOrPunct()
	default:
		return lx.scanOperatorOrPunct()
	}
}

func (lx *Lexer) scanShebang() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && !isNewlineStart(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind.JsShebang, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) takeHold() []token.Trivia {
	h := lx.hold
	lx.hold = nil
	if len(h) == 0 {
		return nil
	}
	return h
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

// All lexes the whole file; the last token is EOF.
func All(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == kind.EOF {
			return out
		}
	}
}
