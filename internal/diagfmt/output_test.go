package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"jsgreen/internal/diag"
	"jsgreen/internal/diagfmt"
	"jsgreen/internal/driver"
	"jsgreen/internal/factory"
	"jsgreen/internal/green"
	"jsgreen/internal/kind"
	"jsgreen/internal/lexer"
	"jsgreen/internal/source"
)

func TestJSONDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.js", []byte("a\nbc\n"))
	bag := diag.NewBag(4)
	bag.Add(diag.New(diag.SevWarning, diag.LexUnknownChar, source.Span{File: id, Start: 2, End: 4}, "first").
		WithNote(source.Span{File: id, Start: 0, End: 1}, "note"))
	bag.Add(diag.New(diag.SevError, diag.LexBadNumber, source.Span{File: id, Start: 0, End: 1}, "second").
		WithFix("drop it", diag.FixEdit{Span: source.Span{File: id, Start: 0, End: 1}}))

	var buf bytes.Buffer
	if err := diagfmt.JSON(&buf, bag, fs, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true, Max: 1}); err != nil {
		t.Fatal(err)
	}
	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("Max must cut the output, got %d", out.Count)
	}
	d := out.Diagnostics[0]
	if d.Code != "LEX1001" || d.Severity != "WARNING" || d.Location.File != "t.js" {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	if d.Location.StartLine != 2 || d.Location.StartCol != 1 || d.Location.EndCol != 3 {
		t.Fatalf("unexpected location %+v", d.Location)
	}
	if len(d.Notes) != 1 || d.Notes[0].Message != "note" {
		t.Fatalf("unexpected notes %+v", d.Notes)
	}
	if out.BySeverity["ERROR"] != 1 || out.BySeverity["WARNING"] != 1 {
		t.Fatalf("summary must count items cut by Max, got %v", out.BySeverity)
	}
}

func TestJSONFixes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("f.js", []byte("(a"))
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.FixUnbalancedParen, source.Span{File: id, Start: 0, End: 1}, "unclosed").
		WithFix("close the list", diag.FixEdit{Span: source.Span{File: id, Start: 2, End: 2}, NewText: ")"}))
	bag.Add(diag.NewError(diag.FixUnbalancedParen, source.Span{File: id, Start: 0, End: 1}, "over the limit"))

	out := diagfmt.BuildDiagnosticsOutput(bag, fs, diagfmt.JSONOpts{IncludeFixes: true})
	if out.Count != 1 || out.Dropped != 1 {
		t.Fatalf("count=%d dropped=%d", out.Count, out.Dropped)
	}
	fixes := out.Diagnostics[0].Fixes
	if len(fixes) != 1 || fixes[0].Title != "close the list" || len(fixes[0].Edits) != 1 {
		t.Fatalf("unexpected fixes %+v", fixes)
	}
	if e := fixes[0].Edits[0]; e.NewText != ")" || e.Location.StartByte != 2 || e.Location.StartLine != 0 {
		t.Fatalf("unexpected edit %+v", e)
	}
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.js", []byte("x // c\n")))
	toks := lexer.All(file, lexer.Options{})

	var pretty bytes.Buffer
	if err := diagfmt.FormatTokensPretty(&pretty, toks, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(pretty.String()), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], `IDENT`) || !strings.Contains(lines[0], "(trailing: Space, LineComment)") {
		t.Fatalf("unexpected pretty tokens:\n%s", pretty.String())
	}
	if !strings.Contains(lines[1], "EOF") || !strings.Contains(lines[1], "(leading: Newline)") {
		t.Fatalf("EOF must carry the newline:\n%s", pretty.String())
	}

	var js bytes.Buffer
	if err := diagfmt.FormatTokensJSON(&js, toks); err != nil {
		t.Fatal(err)
	}
	var out []diagfmt.TokenOutput
	if err := json.Unmarshal(js.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[0].Kind != "IDENT" || len(out[0].Trailing) != 2 || out[0].Trailing[1].Text != "// c" {
		t.Fatalf("unexpected JSON tokens %+v", out)
	}
}

func sampleTree() *green.Node {
	ident := factory.Make(kind.JsReferenceIdentifier, []green.Element{green.NewToken(kind.Ident, "x", nil, nil)})
	expr := factory.Make(kind.JsIdentifierExpression, []green.Element{ident})
	return factory.Make(kind.JsReturnStatement, []green.Element{
		green.NewToken(kind.ReturnKw, "return", nil, []green.Trivia{{Text: " "}}),
		expr,
	})
}

func TestFormatTreeTextAndJSON(t *testing.T) {
	root := sampleTree()

	var text bytes.Buffer
	if err := diagfmt.FormatTree(&text, root, diagfmt.TreeOpts{Format: diagfmt.TreeFormatText}); err != nil {
		t.Fatal(err)
	}
	if text.String() != "return x" {
		t.Fatalf("text %q", text.String())
	}

	var js bytes.Buffer
	if err := diagfmt.FormatTree(&js, root, diagfmt.TreeOpts{Format: diagfmt.TreeFormatJSON}); err != nil {
		t.Fatal(err)
	}
	var out diagfmt.ElementJSON
	if err := json.Unmarshal(js.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Kind != "JS_RETURN_STATEMENT" || len(out.Slots) != 3 {
		t.Fatalf("unexpected root %+v", out)
	}
	if out.Slots[1] == nil || out.Slots[1].Slot != "argument" || out.Slots[2] != nil {
		t.Fatalf("argument present, semicolon absent; got %+v", out.Slots)
	}
	if !strings.Contains(js.String(), "null") {
		t.Fatalf("absent slot must encode as null:\n%s", js.String())
	}
}

func TestParseTreeFormat(t *testing.T) {
	for in, want := range map[string]diagfmt.TreeFormat{"": diagfmt.TreeFormatTree, "text": diagfmt.TreeFormatText, "json": diagfmt.TreeFormatJSON} {
		got, err := diagfmt.ParseTreeFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseTreeFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := diagfmt.ParseTreeFormat("xml"); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestFormatSummary(t *testing.T) {
	s := driver.Summary{
		Files: 1200, Trees: 1199, Bytes: 2048, Nodes: 10, Unknown: 1,
		Kinds: map[kind.Kind]int{kind.JsIfStatement: 3, kind.JsEmptyStatement: 5},
	}
	var buf bytes.Buffer
	err := diagfmt.FormatSummary(&buf, s, diagfmt.SummaryOpts{TopKinds: 1, Cache: &driver.CacheCounters{MemHits: 2}})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"files:         1,200", "2.0 kB", "1 (10%)", "2 memory hits", "JS_EMPTY_STATEMENT"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "JS_IF_STATEMENT") {
		t.Errorf("only the top kind must be listed:\n%s", out)
	}
}
