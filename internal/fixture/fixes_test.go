package fixture_test

import (
	"testing"

	"jsgreen/internal/diag"
	"jsgreen/internal/fix"
	"jsgreen/internal/fixture"
	"jsgreen/internal/source"
)

func TestFixesRepairFixture(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unclosed lists", `(JS_EXPRESSION_STATEMENT (JS_IDENTIFIER_EXPRESSION (JS_REFERENCE_IDENTIFIER "x"`,
			`(JS_EXPRESSION_STATEMENT (JS_IDENTIFIER_EXPRESSION (JS_REFERENCE_IDENTIFIER "x")))`},
		{"unterminated", `(JS_REFERENCE_IDENTIFIER "x`, `(JS_REFERENCE_IDENTIFIER "x")`},
		{"stray close", `(JS_EMPTY_STATEMENT ";"))`, `(JS_EMPTY_STATEMENT ";")`},
		{"bad escape", `(JS_STRING_LITERAL_EXPRESSION "'a\q'")`, `(JS_STRING_LITERAL_EXPRESSION "'a\\q'")`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("t.tree", []byte(tt.src)))
			bag := diag.NewBag(64)
			fixture.Read(file, fixture.Options{Reporter: diag.BagReporter{Bag: bag}})
			res, err := fix.Plan(fs, bag.Items(), fix.Options{})
			if err != nil {
				t.Fatalf("Plan: %v", err)
			}
			if len(res.Changes) != 1 {
				t.Fatalf("changes: %+v", res.Changes)
			}
			if got := string(res.Changes[0].Content); got != tt.want {
				t.Fatalf("fixed = %q, want %q", got, tt.want)
			}
			if _, again := read(t, tt.want); again.Len() != 0 {
				t.Fatalf("fixed fixture still reports %v", again.Items())
			}
		})
	}
}
