package kind_test

import (
	"strings"
	"testing"

	"jsgreen/internal/kind"
)

func TestEveryKindHasUniqueName(t *testing.T) {
	seen := make(map[string]kind.Kind, kind.Count)
	for _, k := range kind.All() {
		name := k.String()
		if name == "" || name == "INVALID_KIND" {
			t.Fatalf("kind %d has no name", k)
		}
		if prev, dup := seen[name]; dup {
			t.Fatalf("name %q used by %d and %d", name, prev, k)
		}
		seen[name] = k
		back, ok := kind.FromName(name)
		if !ok || back != k {
			t.Fatalf("FromName(%q) = %v, %v; want %v", name, back, ok, k)
		}
	}
	if _, ok := kind.FromName("NOT_A_KIND"); ok {
		t.Fatal("FromName must reject unknown names")
	}
}

func TestTokenAndNodeDisjoint(t *testing.T) {
	for _, k := range kind.All() {
		if k.IsToken() && k.IsNode() {
			t.Fatalf("%v is both token and node", k)
		}
		if k != kind.Tombstone && !k.IsToken() && !k.IsNode() {
			t.Fatalf("%v is neither token nor node", k)
		}
	}
	if kind.Tombstone.IsToken() || kind.Tombstone.IsNode() || kind.Tombstone.IsValid() {
		t.Fatal("Tombstone must not be a valid token or node")
	}
}

func TestPunctAndKeywordText(t *testing.T) {
	for _, k := range kind.All() {
		switch {
		case k.IsPunct(), k.IsKeyword():
			if k.Text() == "" {
				t.Fatalf("%v has no fixed text", k)
			}
		default:
			if k.Text() != "" {
				t.Fatalf("%v must not have fixed text, got %q", k, k.Text())
			}
		}
		if k.IsKeyword() && k.String() != strings.ToUpper(k.Text())+"_KW" {
			t.Fatalf("keyword %q named %v", k.Text(), k)
		}
	}
}

func TestToUnknown(t *testing.T) {
	tests := []struct {
		in, want kind.Kind
	}{
		{kind.JsIfStatement, kind.JsUnknownStatement},
		{kind.JsImport, kind.JsUnknownStatement},
		{kind.JsBinaryExpression, kind.JsUnknownExpression},
		{kind.JsSpread, kind.JsUnknownExpression},
		{kind.JsPropertyObjectMember, kind.JsUnknownMember},
		{kind.JsMethodClassMember, kind.JsUnknownMember},
		{kind.JsComputedMemberName, kind.JsUnknownMember},
		{kind.JsObjectBindingPattern, kind.JsUnknownBinding},
		{kind.JsIdentifierAssignment, kind.JsUnknownAssignment},
		{kind.JsRestParameter, kind.JsUnknownParameter},
		{kind.JsElseClause, kind.JsUnknown},
		{kind.JsStatementList, kind.JsUnknown},
		{kind.JsParameterList, kind.JsUnknown},
		{kind.JsUnknownStatement, kind.JsUnknownStatement},
		{kind.JsUnknown, kind.JsUnknown},
		{kind.IfKw, kind.IfKw},
	}
	for _, tt := range tests {
		if got := tt.in.ToUnknown(); got != tt.want {
			t.Errorf("%v.ToUnknown() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEveryNodeHasUnknownCounterpart(t *testing.T) {
	for _, k := range kind.All() {
		if !k.IsNode() {
			continue
		}
		u := k.ToUnknown()
		if !u.IsUnknown() {
			t.Fatalf("%v.ToUnknown() = %v, not an unknown kind", k, u)
		}
		if u.ToUnknown() != u {
			t.Fatalf("%v is not a fixed point of ToUnknown", u)
		}
	}
}

func TestUnknownStaysInCategory(t *testing.T) {
	// Fallback node must still fit wherever the shaped node could go.
	cats := []kind.Category{
		kind.AnyJsStatement, kind.AnyJsExpression, kind.AnyJsClassMember,
		kind.AnyJsBinding, kind.AnyJsAssignment, kind.AnyJsFormalParameter,
	}
	for _, c := range cats {
		for _, k := range c.Members() {
			if k.IsUnknown() {
				continue
			}
			if k == kind.JsSpread || k == kind.JsArrayHole {
				continue
			}
			if !c.Contains(k.ToUnknown()) {
				t.Errorf("%v: %v belongs but %v does not", c, k, k.ToUnknown())
			}
		}
	}
}

func TestCategoryContains(t *testing.T) {
	tests := []struct {
		c    kind.Category
		k    kind.Kind
		want bool
	}{
		{kind.AnyJsStatement, kind.JsIfStatement, true},
		{kind.AnyJsStatement, kind.JsBinaryExpression, false},
		{kind.AnyJsModuleItem, kind.JsImport, true},
		{kind.AnyJsModuleItem, kind.JsIfStatement, true},
		{kind.AnyJsStatement, kind.JsImport, false},
		{kind.AnyJsCallArgument, kind.JsSpread, true},
		{kind.AnyJsCallArgument, kind.JsCallExpression, true},
		{kind.AnyJsArrayBindingPatternElement, kind.JsIdentifierBinding, true},
		{kind.AnyJsClassMemberName, kind.JsLiteralMemberName, true},
		{kind.AnyJsObjectMemberName, kind.JsPrivateClassMemberName, false},
		{kind.JsIdentifierToken, kind.Ident, true},
		{kind.JsIdentifierToken, kind.AsyncKw, true},
		{kind.JsIdentifierToken, kind.IfKw, false},
		{kind.JsNameToken, kind.IfKw, true},
		{kind.JsMemberNameToken, kind.JsNumberLiteral, true},
		{kind.JsExportNameToken, kind.JsNumberLiteral, false},
	}
	for _, tt := range tests {
		if got := tt.c.Contains(tt.k); got != tt.want {
			t.Errorf("%v.Contains(%v) = %v, want %v", tt.c, tt.k, got, tt.want)
		}
	}
}

func TestCategoriesNamed(t *testing.T) {
	for _, c := range kind.Categories() {
		if c.String() == "InvalidCategory" || c.String() == "" {
			t.Fatalf("category %d has no name", c)
		}
		if len(c.Members()) == 0 {
			t.Fatalf("category %v is empty", c)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	if k, ok := kind.LookupKeyword("instanceof"); !ok || k != kind.InstanceofKw {
		t.Fatalf("instanceof -> %v, %v", k, ok)
	}
	if k, ok := kind.LookupKeyword("of"); !ok || k != kind.OfKw || !k.IsContextualKeyword() {
		t.Fatalf("of -> %v, %v", k, ok)
	}
	if _, ok := kind.LookupKeyword("If"); ok {
		t.Fatal("keywords are case sensitive")
	}
	if k, ok := kind.LookupPunct(">>>="); !ok || k != kind.UShrEq {
		t.Fatalf(">>>= -> %v, %v", k, ok)
	}
}
