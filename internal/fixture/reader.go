package fixture

import (
	"fmt"
	"slices"

	"fortio.org/safecast"

	"jsgreen/internal/builder"
	"jsgreen/internal/diag"
	"jsgreen/internal/factory"
	"jsgreen/internal/green"
	"jsgreen/internal/kind"
	"jsgreen/internal/lexer"
	"jsgreen/internal/source"
	"jsgreen/internal/token"
	"jsgreen/internal/trace"
)

type Options struct {
	Reporter diag.Reporter // может быть nil
	Tracer   trace.Tracer  // debug points of the builder
	// Lexer configures lexing of quoted text; its Reporter is ignored.
	Lexer lexer.Options
}

// Result of reading one fixture file.
type Result struct {
	Root   *green.Node // nil when the fixture has no root node
	Stats  factory.Stats
	Tokens int // tokens pushed into the builder
}

type reader struct {
	file   *source.File
	src    []byte
	pos    int
	opts   Options
	b      *builder.Builder
	tokens int
}

// Read parses the fixture in file and builds its tree. The first top-level
// list is the root; anything after it is reported and ignored.
func Read(file *source.File, opts Options) Result {
	r := &reader{
		file: file,
		src:  file.Content,
		opts: opts,
		b:    builder.New(builder.Options{Tracer: opts.Tracer}),
	}
	return r.read()
}

func (r *reader) read() Result {
	r.skipSpace()
	for r.pos < len(r.src) && r.src[r.pos] != '(' {
		r.unexpected()
		r.skipSpace()
	}
	if r.pos >= len(r.src) {
		r.errorf(diag.FixEmptyInput, 0, len(r.src), "fixture has no root node")
		return Result{}
	}

	r.readNode()
	r.skipSpace()
	if r.pos < len(r.src) {
		if r.src[r.pos] == '(' {
			r.errorf(diag.FixMultipleRoots, r.pos, len(r.src), "fixture has more than one root node")
		} else {
			r.errorFix(diag.FixTrailingGarbage, r.pos, len(r.src),
				"remove the trailing input", r.edit(r.pos, len(r.src), ""),
				"unexpected input after the root node")
		}
	}

	root, err := r.b.Finish()
	if err != nil {
		// readNode закрывает всё, что открыл; сюда попадать не должны
		r.errorf(diag.FixUnbalancedParen, 0, len(r.src), "%v", err)
		return Result{Stats: r.b.Stats(), Tokens: r.tokens}
	}
	return Result{Root: root, Stats: r.b.Stats(), Tokens: r.tokens}
}

// readNode reads "(KIND child*)" starting at '('.
func (r *reader) readNode() {
	open := r.pos
	r.pos++
	r.skipSpace()

	nameStart := r.pos
	name := r.readAtom()
	k := r.nodeKind(name, nameStart)
	r.b.StartNode(k)

	for {
		r.skipSpace()
		if r.pos >= len(r.src) {
			r.errorFix(diag.FixUnbalancedParen, open, open+1,
				"close the list", r.edit(len(r.src), len(r.src), ")"),
				"unclosed '(' for %s", k)
			r.b.FinishNode()
			return
		}
		switch r.src[r.pos] {
		case ')':
			r.pos++
			r.b.FinishNode()
			return
		case '(':
			r.readNode()
		case '"':
			r.readTokens()
		default:
			r.unexpected()
		}
	}
}

func (r *reader) nodeKind(name string, at int) kind.Kind {
	if name == "" {
		r.errorf(diag.FixUnknownKind, at, at+1, "expected a kind name after '('")
		return kind.JsUnknown
	}
	k, ok := kind.FromName(name)
	switch {
	case !ok:
		r.errorf(diag.FixUnknownKind, at, at+len(name), "unknown kind %q", name)
		return kind.JsUnknown
	case !k.IsNode():
		r.errorf(diag.FixTokenKindAsNode, at, at+len(name), "%s is a token kind and cannot open a node", k)
		return kind.JsUnknown
	}
	return k
}

// readTokens reads a quoted string with an optional @KIND suffix and pushes
// the tokens it lexes to.
func (r *reader) readTokens() {
	start := r.pos
	text, ok := r.readQuoted()
	if !ok {
		return
	}
	end := r.pos

	relex := kind.Tombstone
	if r.pos < len(r.src) && r.src[r.pos] == '@' {
		r.pos++
		nameStart := r.pos
		name := r.readAtom()
		end = r.pos
		k, known := kind.FromName(name)
		switch {
		case !known:
			r.errorf(diag.FixUnknownKind, nameStart, r.pos, "unknown kind %q", name)
			k = kind.ErrorToken
		case !k.IsToken():
			r.errorf(diag.FixNodeKindAsToken, nameStart, r.pos, "%s is a node kind and cannot tag a token", k)
			k = kind.ErrorToken
		}
		relex = k
	}

	toks, lexDiags := r.lex(text)
	if relex != kind.Tombstone {
		r.push(merge(relex, text, toks))
		return
	}

	if len(lexDiags) > 0 {
		b := diag.ReportWarning(r.opts.Reporter, diag.FixQuotedLexError, r.span(start, end),
			fmt.Sprintf("quoted text %q produced %d lexer diagnostic(s)", text, len(lexDiags)))
		for _, d := range lexDiags {
			b.WithNote(r.span(start, end), d.Code.ID()+": "+d.Message)
		}
		b.Emit()
	}

	body, eof := toks[:len(toks)-1], toks[len(toks)-1]
	if len(body) == 0 {
		r.errorf(diag.FixBadTokenText, start, end, "quoted text %q contains no token; use \"...\"@EOF for trivia-only tokens", text)
		return
	}
	last := &body[len(body)-1]
	last.Trailing = append(last.Trailing, eof.Leading...)
	for _, tok := range body {
		r.push(tok)
	}
}

func (r *reader) push(tok token.Token) {
	r.b.Token(tok)
	r.tokens++
}

// lex runs the JavaScript lexer over decoded quoted text. Spans of the
// returned tokens are relative to text and only used for merging.
func (r *reader) lex(text string) ([]token.Token, []diag.Diagnostic) {
	f := &source.File{ID: r.file.ID, Path: r.file.Path, Content: []byte(text)}
	var bag collector
	opts := r.opts.Lexer
	opts.Reporter = &bag
	return lexer.All(f, opts), bag.diags
}

// merge folds the tokens of text (EOF included) into one token of kind k:
// leading trivia of the first token, the text between the first and the last
// token, trailing trivia of the last one followed by the final trivia.
func merge(k kind.Kind, text string, toks []token.Token) token.Token {
	body, eof := toks[:len(toks)-1], toks[len(toks)-1]
	if len(body) == 0 {
		return token.Token{Kind: k, Leading: eof.Leading}
	}
	first, last := body[0], body[len(body)-1]
	return token.Token{
		Kind:     k,
		Text:     text[first.Span.Start:last.Span.End],
		Leading:  first.Leading,
		Trailing: append(slices.Clone(last.Trailing), eof.Leading...),
	}
}

// skipSpace skips whitespace and ';' comments.
func (r *reader) skipSpace() {
	for r.pos < len(r.src) {
		switch c := r.src[r.pos]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			r.pos++
		case c == ';':
			for r.pos < len(r.src) && r.src[r.pos] != '\n' {
				r.pos++
			}
		default:
			return
		}
	}
}

// unexpected reports the run of bytes up to the next delimiter and skips it.
func (r *reader) unexpected() {
	start := r.pos
	switch r.src[r.pos] {
	case ')':
		r.pos++
		r.errorFix(diag.FixUnbalancedParen, start, r.pos,
			"remove the parenthesis", r.edit(start, r.pos, ""),
			"unmatched ')'")
		return
	case '"':
		if _, ok := r.readQuoted(); ok {
			r.errorf(diag.FixUnexpectedChar, start, r.pos, "quoted text outside a node")
		}
		return
	}
	for r.pos < len(r.src) && !isDelimiter(r.src[r.pos]) {
		r.pos++
	}
	if r.pos == start {
		r.pos++
	}
	r.errorf(diag.FixUnexpectedChar, start, r.pos, "unexpected input %q", r.src[start:r.pos])
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '"', ';', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func (r *reader) span(start, end int) source.Span {
	s, err := safecast.Conv[uint32](start)
	if err != nil {
		panic(fmt.Errorf("fixture offset overflow: %w", err))
	}
	e, err := safecast.Conv[uint32](end)
	if err != nil {
		panic(fmt.Errorf("fixture offset overflow: %w", err))
	}
	return source.Span{File: r.file.ID, Start: s, End: e}
}

func (r *reader) errorf(code diag.Code, start, end int, format string, args ...any) {
	if r.opts.Reporter == nil {
		return
	}
	diag.ReportError(r.opts.Reporter, code, r.span(start, end), fmt.Sprintf(format, args...)).Emit()
}

// errorFix reports like errorf and attaches a single-edit fix.
func (r *reader) errorFix(code diag.Code, start, end int, title string, edit diag.FixEdit, format string, args ...any) {
	if r.opts.Reporter == nil {
		return
	}
	diag.ReportError(r.opts.Reporter, code, r.span(start, end), fmt.Sprintf(format, args...)).
		WithFix(title, edit).
		Emit()
}

func (r *reader) edit(start, end int, text string) diag.FixEdit {
	return diag.FixEdit{Span: r.span(start, end), NewText: text}
}

// collector keeps lexer diagnostics of quoted text.
type collector struct{ diags []diag.Diagnostic }

func (c *collector) Report(d diag.Diagnostic) { c.diags = append(c.diags, d) }
