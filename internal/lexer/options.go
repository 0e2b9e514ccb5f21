package lexer

import (
	"jsgreen/internal/diag"
	"jsgreen/internal/source"
)

// DefaultMaxTokenLength bounds a single token; longer input turns the rest of
// the file into one error token.
const DefaultMaxTokenLength = 1 << 20

type Options struct {
	Reporter diag.Reporter // может быть nil — тогда ошибки игнорируем (но продолжаем лексить)
	// MaxTokenLength overrides DefaultMaxTokenLength when > 0.
	MaxTokenLength int
	// CheckNFC reports identifiers that are not in Unicode NFC form (info).
	CheckNFC bool
}

func (lx *Lexer) maxTokenLength() int {
	if lx.opts.MaxTokenLength > 0 {
		return lx.opts.MaxTokenLength
	}
	return DefaultMaxTokenLength
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	lx.report(code, diag.SevError, sp, msg)
}

func (lx *Lexer) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(diag.New(sev, code, sp, msg))
	}
}
