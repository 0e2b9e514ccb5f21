package factory

import (
	"jsgreen/internal/green"
	"jsgreen/internal/kind"
)

// NodeListConfig describes a list without separators.
type NodeListConfig struct {
	Item Test
}

// SeparatedListConfig describes an item/separator list.
type SeparatedListConfig struct {
	Item          Test
	Separator     kind.Kind
	AllowTrailing bool
}

func makeNodeList(k kind.Kind, cfg NodeListConfig, children []green.Element) *green.Node {
	for _, el := range children {
		if !cfg.Item.Matches(el) {
			return unknownNode(k, children)
		}
	}
	return green.NewNode(k, denseClone(children))
}

// makeSeparatedList builds slots alternating item, separator. A separator in
// item position records a missing item, an item in separator position records
// a missing separator; anything else turns the whole list unknown.
//
// A separator closing the list is kept in either configuration. Without
// AllowTrailing it is followed by an absent item slot, so the list reads as
// "item expected here".
func makeSeparatedList(k kind.Kind, cfg SeparatedListConfig, children []green.Element) *green.Node {
	slots := make([]green.Element, 0, len(children)+1)
	wantItem := true
	for _, el := range children {
		isSep := el != nil && el.Kind() == cfg.Separator
		isItem := !isSep && cfg.Item.Matches(el)
		switch {
		case wantItem && isItem:
			slots = append(slots, el)
			wantItem = false
		case wantItem && isSep:
			slots = append(slots, nil, el)
		case !wantItem && isSep:
			slots = append(slots, el)
			wantItem = true
		case !wantItem && isItem:
			slots = append(slots, nil, el)
		default:
			return unknownNode(k, children)
		}
	}
	if wantItem && len(slots) > 0 && !cfg.AllowTrailing {
		slots = append(slots, nil)
	}
	return green.NewNode(k, slots)
}
