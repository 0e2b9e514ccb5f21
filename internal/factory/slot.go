package factory

import (
	"strings"

	"jsgreen/internal/green"
	"jsgreen/internal/kind"
)

type testMode uint8

const (
	testKind testMode = iota
	testKindSet
	testCategory
	testPredicate
)

// Test decides whether an element may fill a slot. Token and node kinds are
// disjoint, so a test only looks at the element kind.
type Test struct {
	mode testMode
	kind kind.Kind
	set  []kind.Kind
	cat  kind.Category
	pred func(kind.Kind) bool
	name string
}

// ExactKind matches one token or node kind.
func ExactKind(k kind.Kind) Test { return Test{mode: testKind, kind: k} }

// OneOf matches any of the listed kinds (e.g. var|let|const).
func OneOf(ks ...kind.Kind) Test { return Test{mode: testKindSet, set: ks} }

// Cast matches members of a grammar category.
func Cast(c kind.Category) Test { return Test{mode: testCategory, cat: c} }

// Pred wraps an arbitrary can-cast predicate; name is used in listings.
func Pred(name string, fn func(kind.Kind) bool) Test {
	return Test{mode: testPredicate, pred: fn, name: name}
}

// Accepts reports whether an element of kind k passes the test.
func (t Test) Accepts(k kind.Kind) bool {
	switch t.mode {
	case testKind:
		return k == t.kind
	case testKindSet:
		for _, s := range t.set {
			if s == k {
				return true
			}
		}
		return false
	case testCategory:
		return t.cat.Contains(k)
	case testPredicate:
		return t.pred != nil && t.pred(k)
	}
	return false
}

// Matches is Accepts over an element; nil never matches.
func (t Test) Matches(e green.Element) bool {
	return e != nil && t.Accepts(e.Kind())
}

func (t Test) String() string {
	switch t.mode {
	case testKind:
		return t.kind.String()
	case testKindSet:
		parts := make([]string, len(t.set))
		for i, k := range t.set {
			parts[i] = k.String()
		}
		return strings.Join(parts, "|")
	case testCategory:
		return t.cat.String()
	case testPredicate:
		return t.name
	}
	return "?"
}

// Slot is one fixed position of a shaped node.
type Slot struct {
	Name     string
	Optional bool
	Test     Test
}

func (s Slot) String() string {
	opt := ""
	if s.Optional {
		opt = "?"
	}
	return s.Name + ": " + s.Test.String() + opt
}

// Shape is the ordered slot list of a node kind.
type Shape struct {
	Kind  kind.Kind
	Slots []Slot
}

// Arity is the fixed slot count of the kind.
func (s *Shape) Arity() int { return len(s.Slots) }

// MissingRequired lists required slots left absent in n. Make accepts such
// nodes as long as every child was consumed; a parser or linter may report
// them.
func (s *Shape) MissingRequired(n *green.Node) []string {
	if n == nil || n.Kind() != s.Kind || n.SlotCount() != len(s.Slots) {
		return nil
	}
	var out []string
	for i, sl := range s.Slots {
		if !sl.Optional && n.Slot(i) == nil {
			out = append(out, sl.Name)
		}
	}
	return out
}

// slot helpers used by the shape table

func tok(name string, k kind.Kind) Slot    { return Slot{Name: name, Test: ExactKind(k)} }
func optTok(name string, k kind.Kind) Slot { return Slot{Name: name, Optional: true, Test: ExactKind(k)} }
func oneOf(name string, ks ...kind.Kind) Slot {
	return Slot{Name: name, Test: OneOf(ks...)}
}
func optOneOf(name string, ks ...kind.Kind) Slot {
	return Slot{Name: name, Optional: true, Test: OneOf(ks...)}
}
func child(name string, k kind.Kind) Slot    { return Slot{Name: name, Test: ExactKind(k)} }
func optChild(name string, k kind.Kind) Slot { return Slot{Name: name, Optional: true, Test: ExactKind(k)} }
func cast(name string, c kind.Category) Slot { return Slot{Name: name, Test: Cast(c)} }
func optCast(name string, c kind.Category) Slot {
	return Slot{Name: name, Optional: true, Test: Cast(c)}
}
