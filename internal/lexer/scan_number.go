package lexer

import (
	"jsgreen/internal/diag"
	"jsgreen/internal/kind"
	"jsgreen/internal/token"
)

// Поддержка: 0, 123, 0b..., 0o..., 0x..., 1.0, .5, 1e-3, 1_000, 10n.
// Суффикс n делает JsBigintLiteral (только для целых).
// Идентификатор сразу после числа (3in, 0xg) — LexBadNumber, символы входят в токен.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	k := kind.JsNumberLiteral
	isInt := true

	// ведущая точка — значит формат ".digits"
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		lx.eatDigits(isDec)
		isInt = false
		goto exponent
	}

	// ведущий 0 и база?
	if lx.cursor.Peek() == '0' {
		if b1, ok := lx.cursor.PeekAt(1); ok {
			var digit func(byte) bool
			switch b1 {
			case 'b', 'B':
				digit = isBin
			case 'o', 'O':
				digit = isOct
			case 'x', 'X':
				digit = isHex
			}
			if digit != nil {
				lx.cursor.Skip(2)
				if lx.eatDigits(digit) == 0 {
					return lx.badNumber(start, "missing digits after radix prefix")
				}
				goto suffix
			}
		}
	}

	// десятичная целая часть
	lx.eatDigits(isDec)

	// дробная часть; "1." тоже число
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		lx.eatDigits(isDec)
		isInt = false
	}

exponent:
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if lx.eatDigits(isDec) == 0 {
			lx.cursor.Reset(mark)
			lx.cursor.Skip(1)
			return lx.badNumber(start, "missing exponent digits")
		}
		isInt = false
	}

suffix:
	if lx.cursor.Peek() == 'n' {
		lx.cursor.Bump()
		if !isInt {
			return lx.badNumber(start, "bigint literal must be an integer")
		}
		k = kind.JsBigintLiteral
	}

	if r, sz := lx.peekRune(); sz > 0 && (isIdentStartRune(r) || isDec(lx.cursor.Peek())) {
		return lx.badNumber(start, "identifier starts immediately after numeric literal")
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
}

// eatDigits съедает цифры и '_' между ними, возвращает число цифр.
func (lx *Lexer) eatDigits(digit func(byte) bool) int {
	n := 0
	for {
		b := lx.cursor.Peek()
		if digit(b) {
			n++
		} else if b != '_' || n == 0 {
			return n
		}
		lx.cursor.Bump()
	}
}

// badNumber дочитывает хвост имени и чисел в токен и репортит ошибку.
// Kind остаётся JsNumberLiteral: дерево строится и из битого числа.
func (lx *Lexer) badNumber(start Mark, msg string) token.Token {
	for {
		r, sz := lx.peekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexBadNumber, sp, msg)
	return token.Token{Kind: kind.JsNumberLiteral, Span: sp, Text: lx.text(sp)}
}
