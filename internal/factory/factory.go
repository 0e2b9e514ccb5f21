package factory

import (
	"fmt"

	"jsgreen/internal/green"
	"jsgreen/internal/kind"
)

// Arm tells how Make builds a node kind.
type Arm uint8

const (
	ArmNone Arm = iota // token kinds, Tombstone
	ArmShape
	ArmNodeList
	ArmSeparatedList
	ArmPassThrough
)

func (a Arm) String() string {
	switch a {
	case ArmShape:
		return "shape"
	case ArmNodeList:
		return "node-list"
	case ArmSeparatedList:
		return "separated-list"
	case ArmPassThrough:
		return "pass-through"
	}
	return "none"
}

var (
	shapes         [kind.Count]*Shape
	nodeLists      [kind.Count]*NodeListConfig
	separatedLists [kind.Count]*SeparatedListConfig
)

func init() {
	for k, slots := range shapeTable {
		if k.Class() != kind.ClassNode {
			panic(fmt.Sprintf("factory: shape for non-node kind %v", k))
		}
		shapes[k] = &Shape{Kind: k, Slots: slots}
	}
	for k, cfg := range nodeListTable {
		if k.Class() != kind.ClassNodeList {
			panic(fmt.Sprintf("factory: node list config for %v", k))
		}
		nodeLists[k] = &cfg
	}
	for k, cfg := range separatedListTable {
		if k.Class() != kind.ClassSeparatedList {
			panic(fmt.Sprintf("factory: separated list config for %v", k))
		}
		separatedLists[k] = &cfg
	}
}

// ArmOf returns the dispatch arm of k. Every node kind has exactly one arm
// other than ArmNone.
func ArmOf(k kind.Kind) Arm {
	if int(k) >= kind.Count {
		return ArmNone
	}
	switch k.Class() {
	case kind.ClassNode:
		if shapes[k] != nil {
			return ArmShape
		}
	case kind.ClassNodeList:
		if nodeLists[k] != nil {
			return ArmNodeList
		}
	case kind.ClassSeparatedList:
		if separatedLists[k] != nil {
			return ArmSeparatedList
		}
	case kind.ClassUnknown:
		return ArmPassThrough
	}
	return ArmNone
}

// ShapeOf returns the slot shape of a shaped kind, or nil.
func ShapeOf(k kind.Kind) *Shape {
	if int(k) >= kind.Count {
		return nil
	}
	return shapes[k]
}

// NodeListOf returns the node list configuration of k, or nil.
func NodeListOf(k kind.Kind) *NodeListConfig {
	if int(k) >= kind.Count {
		return nil
	}
	return nodeLists[k]
}

// SeparatedListOf returns the separated list configuration of k, or nil.
func SeparatedListOf(k kind.Kind) *SeparatedListConfig {
	if int(k) >= kind.Count {
		return nil
	}
	return separatedLists[k]
}

// SlotName names slot i of a parent kind. List slots are "item" and
// "separator"; unknown nodes have no names.
func SlotName(parent kind.Kind, i int) string {
	switch ArmOf(parent) {
	case ArmShape:
		sh := shapes[parent]
		if i >= 0 && i < len(sh.Slots) {
			return sh.Slots[i].Name
		}
	case ArmNodeList:
		return "item"
	case ArmSeparatedList:
		if i%2 == 0 {
			return "item"
		}
		return "separator"
	}
	return ""
}

// Make builds the node for a production kind from its children. It never
// fails: a mismatch yields the unknown counterpart of k holding every child.
// Requesting a token kind is a caller bug and yields JS_UNKNOWN.
func Make(k kind.Kind, children []green.Element) *green.Node {
	switch ArmOf(k) {
	case ArmShape:
		if slots, ok := match(shapes[k], children); ok {
			return green.NewNode(k, slots)
		}
		return unknownNode(k, children)
	case ArmNodeList:
		return makeNodeList(k, *nodeLists[k], children)
	case ArmSeparatedList:
		return makeSeparatedList(k, *separatedLists[k], children)
	case ArmPassThrough:
		return green.NewNode(k, denseClone(children))
	}
	return green.NewNode(kind.JsUnknown, denseClone(children))
}

// Factory is a handle over Make that counts fallbacks. It is not safe for
// concurrent use; use one per goroutine or call Make directly.
type Factory struct {
	stats Stats
}

// Stats counts factory outcomes.
type Stats struct {
	Nodes     int // nodes built, unknown included
	Unknown   int // nodes built as an unknown kind
	Fallbacks int // shaped or list nodes that fell back to unknown
}

// New returns a Factory with zeroed counters.
func New() *Factory { return &Factory{} }

// Make builds a node like the package-level Make and updates counters.
func (f *Factory) Make(k kind.Kind, children []green.Element) *green.Node {
	n := Make(k, children)
	f.stats.Nodes++
	if !n.Kind().IsUnknown() {
		return n
	}
	f.stats.Unknown++
	// токен или unknown вид в запросе — не откат формы
	switch ArmOf(k) {
	case ArmShape, ArmNodeList, ArmSeparatedList:
		f.stats.Fallbacks++
	}
	return n
}

// Stats returns the counters accumulated so far.
func (f *Factory) Stats() Stats { return f.stats }
