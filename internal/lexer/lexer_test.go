package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"jsgreen/internal/diag"
	"jsgreen/internal/kind"
	"jsgreen/internal/lexer"
	"jsgreen/internal/source"
	"jsgreen/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(d diag.Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
}

func (r *testReporter) codes() []diag.Code {
	out := make([]diag.Code, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, d.Code)
	}
	return out
}

func (r *testReporter) messages() []string {
	out := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return out
}

func makeTestLexer(input string, opts lexer.Options) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.js", []byte(input)))
	reporter := &testReporter{}
	opts.Reporter = reporter
	return lexer.New(file, opts), reporter
}

// collectAllTokens собирает все токены до EOF включительно
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == kind.EOF {
			return tokens
		}
	}
}

// expectTokens проверяет последовательность kind без EOF
func expectTokens(t *testing.T, input string, expected ...kind.Kind) []token.Token {
	t.Helper()
	lx, reporter := makeTestLexer(input, lexer.Options{})
	tokens := collectAllTokens(lx)
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v\ndiags: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.messages())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text: %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
	return tokens
}

// expectSingleToken проверяет первый токен и отсутствие диагностик
func expectSingleToken(t *testing.T, input string, expectedKind kind.Kind, expectedText string) {
	t.Helper()
	lx, reporter := makeTestLexer(input, lexer.Options{})
	tok := lx.Next()
	if tok.Kind != expectedKind || tok.Text != expectedText {
		t.Errorf("%q: expected %v(%q), got %v(%q)", input, expectedKind, expectedText, tok.Kind, tok.Text)
	}
	if len(reporter.diagnostics) != 0 {
		t.Errorf("%q: unexpected diagnostics %v", input, reporter.messages())
	}
}

// expectDiag проверяет первый токен и код первой диагностики
func expectDiag(t *testing.T, input string, expectedKind kind.Kind, expectedText string, code diag.Code) {
	t.Helper()
	lx, reporter := makeTestLexer(input, lexer.Options{})
	tok := lx.Next()
	if tok.Kind != expectedKind || tok.Text != expectedText {
		t.Errorf("%q: expected %v(%q), got %v(%q)", input, expectedKind, expectedText, tok.Kind, tok.Text)
	}
	if codes := reporter.codes(); len(codes) == 0 || codes[0] != code {
		t.Errorf("%q: expected %s, got %v", input, code.ID(), reporter.messages())
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ====== идентификаторы и ключевые слова ======

func TestIdentifiers(t *testing.T) {
	for _, in := range []string{"x", "_", "$", "$el", "_private", "camelCase", "a1", "привет", "名前", "ab\u200dc"} {
		expectSingleToken(t, in, kind.Ident, in)
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		in   string
		want kind.Kind
	}{
		{"break", kind.BreakKw},
		{"function", kind.FunctionKw},
		{"instanceof", kind.InstanceofKw},
		{"typeof", kind.TypeofKw},
		{"null", kind.NullKw},
		{"true", kind.TrueKw},
		{"let", kind.LetKw},
		{"async", kind.AsyncKw},
		{"of", kind.OfKw},
		{"get", kind.GetKw},
		{"target", kind.TargetKw},
	}
	for _, tt := range tests {
		expectSingleToken(t, tt.in, tt.want, tt.in)
	}
}

func TestKeywords_CaseSensitive(t *testing.T) {
	for _, in := range []string{"Function", "NULL", "Let", "iF"} {
		expectSingleToken(t, in, kind.Ident, in)
	}
}

func TestIdentifiers_EscapedAreNeverKeywords(t *testing.T) {
	expectSingleToken(t, `\u0066or`, kind.Ident, `\u0066or`)
	expectSingleToken(t, `a\u{62}c`, kind.Ident, `a\u{62}c`)
	expectDiag(t, `a\x41`, kind.Ident, `a\x41`, diag.LexBadEscape)
}

func TestIdentifiers_NonNFC(t *testing.T) {
	lx, reporter := makeTestLexer("e\u0301", lexer.Options{CheckNFC: true})
	if tok := lx.Next(); tok.Kind != kind.Ident {
		t.Fatalf("expected ident, got %v", tok.Kind)
	}
	if len(reporter.diagnostics) != 1 || reporter.diagnostics[0].Code != diag.LexNonNFCIdent ||
		reporter.diagnostics[0].Severity != diag.SevInfo {
		t.Fatalf("expected one info LexNonNFCIdent, got %v", reporter.messages())
	}

	lx, reporter = makeTestLexer("\u00e9", lexer.Options{CheckNFC: true})
	lx.Next()
	if len(reporter.diagnostics) != 0 {
		t.Fatalf("NFC identifier must not be reported, got %v", reporter.messages())
	}
}

// ====== числа ======

func TestNumbers(t *testing.T) {
	tests := []struct {
		in   string
		want kind.Kind
	}{
		{"0", kind.JsNumberLiteral},
		{"123", kind.JsNumberLiteral},
		{"1_000_000", kind.JsNumberLiteral},
		{"0b1010", kind.JsNumberLiteral},
		{"0O17", kind.JsNumberLiteral},
		{"0xFF_ff", kind.JsNumberLiteral},
		{"3.14", kind.JsNumberLiteral},
		{"1.", kind.JsNumberLiteral},
		{".5", kind.JsNumberLiteral},
		{"1e10", kind.JsNumberLiteral},
		{"2.5E-3", kind.JsNumberLiteral},
		{"10n", kind.JsBigintLiteral},
		{"0x1fn", kind.JsBigintLiteral},
	}
	for _, tt := range tests {
		expectSingleToken(t, tt.in, tt.want, tt.in)
	}
}

func TestNumbers_Bad(t *testing.T) {
	tests := []struct{ in, text string }{
		{"3in", "3in"},
		{"0b102", "0b102"},
		{"0x", "0x"},
		{"1e", "1e"},
		{"1e+x", "1e"},
		{"1.5n", "1.5n"},
	}
	for _, tt := range tests {
		expectDiag(t, tt.in, kind.JsNumberLiteral, tt.text, diag.LexBadNumber)
	}
}

func TestNumbers_DotsAreNotNumbers(t *testing.T) {
	expectTokens(t, "1..toString", kind.JsNumberLiteral, kind.Dot, kind.Ident)
	expectTokens(t, "...a", kind.Dot3, kind.Ident)
	expectTokens(t, "a.b", kind.Ident, kind.Dot, kind.Ident)
}

// ====== строки ======

func TestStrings(t *testing.T) {
	for _, in := range []string{`""`, `''`, `"abc"`, `'it\'s'`, `"say \"hi\""`, `"\n\t\\"`, `"\x41\u0042\u{1F600}"`, "'a\\\nb'", `"мир"`} {
		expectSingleToken(t, in, kind.JsStringLiteral, in)
	}
}

func TestStrings_Errors(t *testing.T) {
	expectDiag(t, `"abc`, kind.JsStringLiteral, `"abc`, diag.LexUnterminatedString)
	expectDiag(t, "'ab\ncd'", kind.JsStringLiteral, "'ab", diag.LexUnterminatedString)
	expectDiag(t, `"\xZZ"`, kind.JsStringLiteral, `"\xZZ"`, diag.LexBadEscape)
	expectDiag(t, `"\u12"`, kind.JsStringLiteral, `"\u12"`, diag.LexBadEscape)
}

// ====== пунктуация ======

func TestPunct_Greedy(t *testing.T) {
	tests := []struct {
		in   string
		want kind.Kind
	}{
		{">>>=", kind.UShrEq},
		{">>>", kind.UShr},
		{">>=", kind.ShrEq},
		{"===", kind.Eq3},
		{"!==", kind.Neq2},
		{"**=", kind.Star2Eq},
		{"&&=", kind.Amp2Eq},
		{"??=", kind.Question2Eq},
		{"=>", kind.FatArrow},
		{"?.", kind.QuestionDot},
		{"...", kind.Dot3},
		{"/", kind.Slash},
		{"/=", kind.SlashEq},
		{"`", kind.Backtick},
		{"#", kind.Hash},
		{"@", kind.At},
	}
	for _, tt := range tests {
		expectSingleToken(t, tt.in, tt.want, tt.in)
	}
}

func TestPunct_OptionalChainBeforeDigit(t *testing.T) {
	expectTokens(t, "a?.5:b", kind.Ident, kind.Question, kind.JsNumberLiteral, kind.Colon, kind.Ident)
	expectTokens(t, "a?.b", kind.Ident, kind.QuestionDot, kind.Ident)
}

func TestUnknownCharacter(t *testing.T) {
	expectDiag(t, "\x01", kind.ErrorToken, "\x01", diag.LexUnknownChar)
	expectDiag(t, "§", kind.ErrorToken, "§", diag.LexUnknownChar)
}

// ====== trivia ======

func TestTrivia_LeadingTrailingSplit(t *testing.T) {
	tokens := expectTokens(t, "a // c\n  b", kind.Ident, kind.Ident)
	a, b := tokens[0], tokens[1]
	if got := token.TriviaText(a.Trailing); got != " // c" {
		t.Fatalf("a trailing: expected %q, got %q", " // c", got)
	}
	if len(a.Leading) != 0 {
		t.Fatalf("a must have no leading trivia")
	}
	if len(b.Leading) != 2 || b.Leading[0].Kind != token.TriviaNewline || b.Leading[1].Kind != token.TriviaSpace {
		t.Fatalf("b leading: %+v", b.Leading)
	}
	if !b.HasNewlineBefore() || a.HasNewlineBefore() {
		t.Fatalf("HasNewlineBefore mismatch")
	}
}

func TestTrivia_MultilineBlockCommentIsLeading(t *testing.T) {
	tokens := expectTokens(t, "a /* x */ /* y\n */ b", kind.Ident, kind.Ident)
	if got := token.TriviaText(tokens[0].Trailing); got != " /* x */ " {
		t.Fatalf("a trailing: got %q", got)
	}
	if got := token.TriviaText(tokens[1].Leading); got != "/* y\n */ " {
		t.Fatalf("b leading: got %q", got)
	}
	if !tokens[1].HasNewlineBefore() {
		t.Fatalf("multi-line block comment counts as a newline")
	}
}

func TestTrivia_NewlinesCoalesce(t *testing.T) {
	tokens := expectTokens(t, "a\r\n\r\n\nb", kind.Ident, kind.Ident)
	lead := tokens[1].Leading
	if len(lead) != 1 || lead[0].Kind != token.TriviaNewline || lead[0].Text != "\r\n\r\n\n" {
		t.Fatalf("expected one newline trivia, got %+v", lead)
	}
}

func TestTrivia_BlockCommentsDoNotNest(t *testing.T) {
	expectTokens(t, "/* /* */ a */", kind.Ident, kind.Star, kind.Slash)
}

func TestTrivia_UnterminatedBlockComment(t *testing.T) {
	lx, reporter := makeTestLexer("a /* never", lexer.Options{})
	tokens := collectAllTokens(lx)
	if len(tokens) != 2 {
		t.Fatalf("expected a and EOF, got %v", tokensToString(tokens))
	}
	if got := token.TriviaText(tokens[0].Trailing); got != " /* never" {
		t.Fatalf("comment must run to EOF, got %q", got)
	}
	if codes := reporter.codes(); len(codes) != 1 || codes[0] != diag.LexUnterminatedBlockComment {
		t.Fatalf("expected LexUnterminatedBlockComment, got %v", reporter.messages())
	}
}

func TestTrivia_EOFCarriesFinalTrivia(t *testing.T) {
	lx, _ := makeTestLexer("a\n// end\n", lexer.Options{})
	tokens := collectAllTokens(lx)
	eof := tokens[len(tokens)-1]
	if eof.Text != "" || token.TriviaText(eof.Leading) != "\n// end\n" {
		t.Fatalf("EOF leading: %q", token.TriviaText(eof.Leading))
	}
}

// ====== shebang ======

func TestShebang(t *testing.T) {
	tokens := expectTokens(t, "#!/usr/bin/env node\nlet x", kind.JsShebang, kind.LetKw, kind.Ident)
	if tokens[0].Text != "#!/usr/bin/env node" {
		t.Fatalf("shebang text: %q", tokens[0].Text)
	}
}

func TestShebang_Misplaced(t *testing.T) {
	lx, reporter := makeTestLexer("a\n#!x", lexer.Options{})
	tokens := collectAllTokens(lx)
	if len(tokens) != 5 || tokens[1].Kind != kind.Hash || tokens[2].Kind != kind.Bang {
		t.Fatalf("unexpected tokens %v", tokensToString(tokens))
	}
	if codes := reporter.codes(); len(codes) != 1 || codes[0] != diag.LexMisplacedShebang {
		t.Fatalf("expected LexMisplacedShebang, got %v", reporter.messages())
	}
}

// ====== поток токенов ======

func TestLexer_Statement(t *testing.T) {
	expectTokens(t, "const {a, ...b} = await f(x?.[0] ?? 1n);",
		kind.ConstKw, kind.LCurly, kind.Ident, kind.Comma, kind.Dot3, kind.Ident, kind.RCurly,
		kind.Eq, kind.AwaitKw, kind.Ident, kind.LParen, kind.Ident, kind.QuestionDot,
		kind.LBrack, kind.JsNumberLiteral, kind.RBrack, kind.Question2, kind.JsBigintLiteral,
		kind.RParen, kind.Semicolon)
}

func TestLexer_Peek(t *testing.T) {
	lx, _ := makeTestLexer("a b", lexer.Options{})
	if p := lx.Peek(); p.Text != "a" {
		t.Fatalf("peek: %q", p.Text)
	}
	if n := lx.Next(); n.Text != "a" {
		t.Fatalf("next after peek: %q", n.Text)
	}
	if n := lx.Next(); n.Text != "b" {
		t.Fatalf("second: %q", n.Text)
	}
}

func TestLexer_EOFIsSticky(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n"} {
		lx, _ := makeTestLexer(in, lexer.Options{})
		first := lx.Next()
		if first.Kind != kind.EOF || token.TriviaText(first.Leading) != in {
			t.Fatalf("%q: expected EOF with leading %q, got %v %q", in, in, first.Kind, token.TriviaText(first.Leading))
		}
		for range 3 {
			if next := lx.Next(); next.Kind != kind.EOF || len(next.Leading) != 0 {
				t.Fatalf("%q: expected bare EOF, got %v", in, next.Kind)
			}
		}
	}
}

// Конкатенация FullText всех токенов даёт исходный текст байт в байт,
// в том числе для битого ввода.
func TestLexer_Lossless(t *testing.T) {
	inputs := []string{
		"#!/bin/node\r\nfunction f(a, b) { return a + b } // sum\n",
		"let s = 'unterminated\nnext /* open",
		"x = 0x;\t\v y §§ \"\\u{zz}\" 3in",
		"/* lead */\r\n\r\n  a?.b ?? c >>>= d\n/* tail */",
		"\\u0061wait class A { #p = 1; static { } }",
	}
	for _, in := range inputs {
		lx, _ := makeTestLexer(in, lexer.Options{})
		var sb strings.Builder
		for _, tok := range collectAllTokens(lx) {
			sb.WriteString(tok.FullText())
		}
		if sb.String() != in {
			t.Fatalf("round trip mismatch:\n in: %q\nout: %q", in, sb.String())
		}
	}
}

func TestAll(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("all.js", []byte("a;")))
	tokens := lexer.All(file, lexer.Options{})
	if len(tokens) != 3 || tokens[2].Kind != kind.EOF {
		t.Fatalf("unexpected %v", tokensToString(tokens))
	}
}

func BenchmarkLexer_LargeFile(b *testing.B) {
	src := []byte(strings.Repeat("function add(a, b) {\n  // comment\n  return a + b * 2.5e3;\n}\n", 500))
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("bench.js", src))
	b.SetBytes(int64(len(src)))
	for b.Loop() {
		lexer.All(file, lexer.Options{})
	}
}

func TestNonASCIIIdentAndPunctAtEnd(t *testing.T) {
	toks := expectTokens(t, "café=>π", kind.Ident, kind.FatArrow, kind.Ident)
	if toks[0].Text != "café" || toks[2].Text != "π" {
		t.Fatalf("unexpected texts %q %q", toks[0].Text, toks[2].Text)
	}
	expectTokens(t, "a>>>=", kind.Ident, kind.UShrEq)
}
