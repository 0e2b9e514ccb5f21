package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"jsgreen/internal/diag"
	"jsgreen/internal/driver"
	"jsgreen/internal/kind"
)

const arrayFixture = `(JS_ARRAY_EXPRESSION "["
  (JS_ARRAY_ELEMENT_LIST
    (JS_IDENTIFIER_EXPRESSION (JS_REFERENCE_IDENTIFIER "a"))
    (JS_IDENTIFIER_EXPRESSION (JS_REFERENCE_IDENTIFIER "b")))
  "]")`

func codes(bag *diag.Bag) []diag.Code {
	var out []diag.Code
	for _, d := range bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

func build(t *testing.T, src string, opts driver.Options) *driver.BuildResult {
	t.Helper()
	res, err := driver.BuildSource(context.Background(), "t.tree", []byte(src), opts)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return res
}

func TestAnalyzeMissingSeparator(t *testing.T) {
	res := build(t, arrayFixture, driver.Options{})
	if res.Root.Text() != "[ab]" {
		t.Fatalf("text %q", res.Root.Text())
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.SynMissingListSep {
		t.Fatalf("expected one missing separator, got %v", codes(res.Bag))
	}
	sp := items[0].Primary
	if sp.File != res.TextFile.ID || sp.Start != 2 || sp.End != 2 {
		t.Fatalf("separator must be expected between a and b, got %v", sp)
	}
}

func TestAnalyzeMissingRequired(t *testing.T) {
	res := build(t, `(JS_IF_STATEMENT "if" " (" ")" (JS_EMPTY_STATEMENT ";"))`, driver.Options{})
	if res.Root.Kind() != kind.JsIfStatement {
		t.Fatalf("absent test must not break the shape, got %s", res.Root.Kind())
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.SynMissingRequired || items[0].Severity != diag.SevInfo {
		t.Fatalf("expected one missing-required info, got %v", items)
	}
	if got := res.TextFile.Text(items[0].Primary); got != "if ();" {
		t.Fatalf("span text %q", got)
	}
	if items[0].Message != "JS_IF_STATEMENT is missing test" {
		t.Fatalf("message %q", items[0].Message)
	}
}

func TestAnalyzeUnknownIsOutermostOnly(t *testing.T) {
	res := build(t, `(JS_MODULE_ITEM_LIST
  (JS_IF_STATEMENT "if (" (JS_IDENTIFIER_EXPRESSION (JS_REFERENCE_IDENTIFIER "x")) ")" " y"))`, driver.Options{})
	var unknown []diag.Diagnostic
	for _, d := range res.Bag.Items() {
		if d.Code == diag.SynUnknownNode {
			unknown = append(unknown, d)
		}
	}
	if len(unknown) != 1 {
		t.Fatalf("expected one unknown node report, got %v", codes(res.Bag))
	}
	if got := res.TextFile.Text(unknown[0].Primary); got != "if (x) y" {
		t.Fatalf("unknown span text %q", got)
	}
}

func TestBuildCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	disk, err := driver.OpenDiskCacheAt(dir)
	if err != nil {
		t.Fatal(err)
	}
	cache, err := driver.NewTreeCache(4, disk)
	if err != nil {
		t.Fatal(err)
	}
	src := arrayFixture + "\n trailing"
	opts := driver.Options{Cache: cache}

	first := build(t, src, opts)
	if first.Cached {
		t.Fatalf("first build cannot be cached")
	}
	second := build(t, src, opts)
	if !second.Cached {
		t.Fatalf("second build must come from the cache")
	}
	if second.Root.Text() != first.Root.Text() || second.Stats != first.Stats || second.Tokens != first.Tokens {
		t.Fatalf("cached build differs: %q %+v vs %q %+v", second.Root.Text(), second.Stats, first.Root.Text(), first.Stats)
	}
	if !slices.Equal(codes(first.Bag), codes(second.Bag)) {
		t.Fatalf("diagnostics differ: %v vs %v", codes(first.Bag), codes(second.Bag))
	}
	if !slices.Contains(codes(second.Bag), diag.FixTrailingGarbage) {
		t.Fatalf("fixture diagnostics must be replayed, got %v", codes(second.Bag))
	}
	for _, d := range second.Bag.Items() {
		if d.Code != diag.FixTrailingGarbage {
			continue
		}
		if d.Primary.File != second.File.ID {
			t.Fatalf("replayed diagnostic points at file %d, want %d", d.Primary.File, second.File.ID)
		}
		if len(d.Fixes) != 1 || len(d.Fixes[0].Edits) != 1 || d.Fixes[0].Edits[0].Span.File != second.File.ID {
			t.Fatalf("replayed diagnostic must keep its fix, got %+v", d.Fixes)
		}
	}

	// новый кэш над тем же каталогом читает с диска
	fresh, err := driver.NewTreeCache(4, disk)
	if err != nil {
		t.Fatal(err)
	}
	third := build(t, src, driver.Options{Cache: fresh})
	if !third.Cached || fresh.Counters().DiskHits != 1 {
		t.Fatalf("expected a disk hit, got cached=%v counters=%+v", third.Cached, fresh.Counters())
	}
	if c := cache.Counters(); c.MemHits != 1 || c.Misses != 1 {
		t.Fatalf("unexpected counters %+v", c)
	}

	if err := fresh.Purge(); err != nil {
		t.Fatal(err)
	}
	if res := build(t, src, driver.Options{Cache: fresh}); res.Cached {
		t.Fatalf("purged cache must miss")
	}
}

func TestCacheIndependentOfDiagnosticLimit(t *testing.T) {
	src := `(JS_UNKNOWN (NOPE1) (NOPE2) (NOPE3) "\q" "\q")`
	full := build(t, src, driver.Options{})
	if full.Bag.Len() < 3 || full.Bag.Dropped() != 0 {
		t.Fatalf("expected several diagnostics, got %v dropped=%d", codes(full.Bag), full.Bag.Dropped())
	}

	cache, err := driver.NewTreeCache(4, nil)
	if err != nil {
		t.Fatal(err)
	}
	capped := build(t, src, driver.Options{Cache: cache, MaxDiagnostics: 1})
	if capped.Cached || capped.Bag.Len() != 1 || capped.Bag.Dropped() == 0 {
		t.Fatalf("capped build: cached=%v len=%d dropped=%d", capped.Cached, capped.Bag.Len(), capped.Bag.Dropped())
	}

	again := build(t, src, driver.Options{Cache: cache})
	if !again.Cached {
		t.Fatalf("second build must come from the cache")
	}
	if !slices.Equal(codes(again.Bag), codes(full.Bag)) || again.Bag.Dropped() != 0 {
		t.Fatalf("cached build lost diagnostics: %v dropped=%d, want %v", codes(again.Bag), again.Bag.Dropped(), codes(full.Bag))
	}

	cappedHit := build(t, src, driver.Options{Cache: cache, MaxDiagnostics: 1})
	if !cappedHit.Cached || cappedHit.Bag.Len() != 1 || cappedHit.Bag.Dropped() == 0 {
		t.Fatalf("capped cache hit: cached=%v len=%d dropped=%d", cappedHit.Cached, cappedHit.Bag.Len(), cappedHit.Bag.Dropped())
	}
}

func TestCacheKeyDependsOnLexerOptions(t *testing.T) {
	cache, err := driver.NewTreeCache(4, nil)
	if err != nil {
		t.Fatal(err)
	}
	build(t, arrayFixture, driver.Options{Cache: cache})
	opts := driver.Options{Cache: cache}
	opts.Lexer.CheckNFC = true
	if res := build(t, arrayFixture, opts); res.Cached {
		t.Fatalf("different lexer options must not share cache entries")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestBuildDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.tree"), arrayFixture)
	writeFile(t, filepath.Join(dir, "a.tree"), `(JS_EMPTY_STATEMENT ";")`)
	writeFile(t, filepath.Join(dir, "sub", "c.tree"), `(JS_RETURN_STATEMENT "return" ";")`)
	writeFile(t, filepath.Join(dir, ".hidden", "d.tree"), `(JS_EMPTY_STATEMENT ";")`)
	writeFile(t, filepath.Join(dir, "notes.txt"), `not a fixture`)

	var seen []driver.Progress
	_, results, err := driver.BuildDir(context.Background(), dir, driver.Options{
		Jobs:     2,
		Progress: func(p driver.Progress) { seen = append(seen, p) },
	})
	if err != nil {
		t.Fatalf("build dir: %v", err)
	}
	if len(results) != 3 || len(seen) != 3 {
		t.Fatalf("expected 3 results and 3 progress calls, got %d/%d", len(results), len(seen))
	}
	want := []string{"a.tree", "b.tree", "c.tree"}
	for i, r := range results {
		if filepath.Base(r.Path) != want[i] {
			t.Fatalf("result %d is %s, want %s", i, r.Path, want[i])
		}
	}
	if seen[len(seen)-1].Done != 3 || seen[0].Total != 3 {
		t.Fatalf("unexpected progress %+v", seen)
	}

	sum := driver.Summarize(results)
	if sum.Files != 3 || sum.Trees != 3 || sum.Kinds[kind.JsEmptyStatement] != 1 || sum.Infos != 1 {
		t.Fatalf("unexpected summary %+v", sum)
	}
	top := sum.TopKinds(1)
	if len(top) != 1 || top[0].Kind != kind.JsReferenceIdentifier || top[0].Count != 2 {
		t.Fatalf("unexpected top kinds %+v", top)
	}
}

func TestBuildDirCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.tree"), `(JS_EMPTY_STATEMENT ";")`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := driver.BuildDir(ctx, dir, driver.Options{}); err == nil {
		t.Fatalf("cancelled build must fail")
	}
}

func TestTokenizeSource(t *testing.T) {
	res := driver.TokenizeSource(context.Background(), "t.js", []byte("let x = 1;\n"), driver.Options{})
	var kinds []kind.Kind
	for _, tok := range res.Tokens {
		kinds = append(kinds, tok.Kind)
	}
	want := []kind.Kind{kind.LetKw, kind.Ident, kind.Eq, kind.JsNumberLiteral, kind.Semicolon, kind.EOF}
	if !slices.Equal(kinds, want) {
		t.Fatalf("kinds %v", kinds)
	}
	if res.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics %v", res.Bag.Items())
	}
}
