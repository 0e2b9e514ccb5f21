package lexer

import (
	"unicode"
	"unicode/utf8"
)

// ===== Работа с рунами поверх Cursor =====

// peekRune читает текущую позицию как руну
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	return utf8.DecodeRune(lx.cursor.Rest())
}

// bumpRune сдвигает курсор на одну руну (минимум на один байт)
func (lx *Lexer) bumpRune() rune {
	r, sz := lx.peekRune()
	if sz == 0 {
		return utf8.RuneError
	}
	lx.cursor.Skip(sz)
	return r
}

// ===== Классы символов =====

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\v' || b == '\f'
}

func isNewlineStart(b byte) bool {
	return b == '\n' || b == '\r'
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isOct(b byte) bool { return b >= '0' && b <= '7' }

func isBin(b byte) bool { return b == '0' || b == '1' }

func isIdentStartByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' || b == '$'
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isIdentStartRune(r rune) bool {
	if r < utf8.RuneSelf {
		return isIdentStartByte(byte(r))
	}
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)
}

func isIdentContinueRune(r rune) bool {
	if r < utf8.RuneSelf {
		return isIdentContinueByte(byte(r))
	}
	// ZWNJ и ZWJ допустимы внутри имени
	return isIdentStartRune(r) || unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc) ||
		r == '\u200c' || r == '\u200d'
}

// isNumberAfterDot: ".5" — число, "." и "..." — пунктуация
func (lx *Lexer) isNumberAfterDot() bool {
	b1, ok := lx.cursor.PeekAt(1)
	return ok && lx.cursor.Peek() == '.' && isDec(b1)
}
