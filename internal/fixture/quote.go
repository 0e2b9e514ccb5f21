package fixture

import (
	"strings"

	"jsgreen/internal/diag"
)

// readQuoted reads a "..." string at r.pos and returns its decoded text.
// ok is false when the string is not terminated; the cursor then sits at EOF.
func (r *reader) readQuoted() (text string, ok bool) {
	start := r.pos
	r.pos++ // "
	var sb strings.Builder
	for r.pos < len(r.src) {
		c := r.src[r.pos]
		switch c {
		case '"':
			r.pos++
			return sb.String(), true
		case '\\':
			if r.pos+1 >= len(r.src) {
				r.pos++
				continue
			}
			esc := r.src[r.pos+1]
			switch esc {
			case '"', '\\':
				sb.WriteByte(esc)
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			default:
				r.errorFix(diag.FixUnexpectedChar, r.pos, r.pos+2,
					"escape the backslash", r.edit(r.pos, r.pos+1, `\\`),
					"unknown escape \\%c in quoted text", esc)
				sb.WriteByte('\\')
				sb.WriteByte(esc)
			}
			r.pos += 2
		default:
			sb.WriteByte(c)
			r.pos++
		}
	}
	r.errorFix(diag.FixUnterminated, start, r.pos,
		"close the quoted text", r.edit(r.pos, r.pos, `"`),
		"unterminated quoted text")
	return sb.String(), false
}

// readAtom reads a kind name: letters, digits and '_'.
func (r *reader) readAtom() string {
	start := r.pos
	for r.pos < len(r.src) && isAtomByte(r.src[r.pos]) {
		r.pos++
	}
	return string(r.src[start:r.pos])
}

func isAtomByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
