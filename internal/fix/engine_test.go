package fix_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"jsgreen/internal/diag"
	"jsgreen/internal/fix"
	"jsgreen/internal/source"
)

func insert(file source.FileID, at uint32, text string) diag.FixEdit {
	return diag.FixEdit{Span: source.Span{File: file, Start: at, End: at}, NewText: text}
}

func TestPlanOrdersInsertionsAtSameOffset(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.tree", []byte(`(A (B "x`))
	end := uint32(len(`(A (B "x`))
	diags := []diag.Diagnostic{
		diag.NewError(diag.FixUnterminated, source.Span{File: id}, "q").WithFix("close quote", insert(id, end, `"`)),
		diag.NewError(diag.FixUnbalancedParen, source.Span{File: id}, "b").WithFix("close B", insert(id, end, ")")),
		diag.NewError(diag.FixUnbalancedParen, source.Span{File: id}, "a").WithFix("close A", insert(id, end, ")")),
	}
	res, err := fix.Plan(fs, diags, fix.Options{})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(res.Applied) != 3 || len(res.Changes) != 1 {
		t.Fatalf("applied=%d changes=%d", len(res.Applied), len(res.Changes))
	}
	if got := string(res.Changes[0].Content); got != `(A (B "x"))` {
		t.Fatalf("content = %q", got)
	}
}

func TestPlanSkipsConflicts(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.tree", []byte("(A))"))
	del := diag.FixEdit{Span: source.Span{File: id, Start: 3, End: 4}}
	diags := []diag.Diagnostic{
		diag.NewError(diag.FixUnbalancedParen, del.Span, "unmatched").WithFix("delete", del),
		diag.NewError(diag.FixUnbalancedParen, del.Span, "again").WithFix("replace", diag.FixEdit{Span: del.Span, NewText: " "}),
		diag.NewError(diag.FixUnbalancedParen, del.Span, "range").WithFix("far", insert(id, 99, "x")),
	}
	res, err := fix.Plan(fs, diags, fix.Options{})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(res.Applied) != 1 || len(res.Skipped) != 2 {
		t.Fatalf("applied=%d skipped=%d", len(res.Applied), len(res.Skipped))
	}
	if res.Skipped[0].Reason != "conflicts with a previously selected edit" || res.Skipped[1].Reason != "edit span out of range" {
		t.Fatalf("reasons: %+v", res.Skipped)
	}
	if got := string(res.Changes[0].Content); got != "(A)" {
		t.Fatalf("content = %q", got)
	}
}

func TestPlanOnceAndNoFixes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.tree", []byte("(A"))
	d := diag.NewError(diag.FixUnbalancedParen, source.Span{File: id}, "x")
	diags := []diag.Diagnostic{d.WithFix("one", insert(id, 2, ")")), d.WithFix("two", insert(id, 2, ")"))}
	res, err := fix.Plan(fs, diags, fix.Options{Mode: fix.ModeOnce})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(res.Applied) != 1 || string(res.Changes[0].Content) != "(A)" {
		t.Fatalf("once: %+v", res.Applied)
	}
	if _, err := fix.Plan(fs, []diag.Diagnostic{d}, fix.Options{}); !errors.Is(err, fix.ErrNoFixes) {
		t.Fatalf("expected ErrNoFixes, got %v", err)
	}
}

func TestApplyWritesRealFilesOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.tree")
	if err := os.WriteFile(path, []byte("(A"), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	virt := fs.AddVirtual("v.tree", []byte("(B"))
	diags := []diag.Diagnostic{
		diag.NewError(diag.FixUnbalancedParen, source.Span{File: id}, "a").WithFix("close", insert(id, 2, ")")),
		diag.NewError(diag.FixUnbalancedParen, source.Span{File: virt}, "b").WithFix("close", insert(virt, 2, ")")),
	}
	if _, err := fix.Apply(fs, diags, fix.Options{}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "(A)" {
		t.Fatalf("file = %q", got)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %v", info.Mode())
	}
}
