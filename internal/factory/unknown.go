package factory

import (
	"slices"

	"jsgreen/internal/green"
	"jsgreen/internal/kind"
)

// unknownNode keeps every child, in order, under the unknown counterpart of k.
func unknownNode(k kind.Kind, children []green.Element) *green.Node {
	u := k.ToUnknown()
	if !u.IsUnknown() {
		u = kind.JsUnknown
	}
	return green.NewNode(u, denseClone(children))
}

// denseClone copies children dropping nil entries; unknown nodes have no
// absent slots.
func denseClone(children []green.Element) []green.Element {
	out := slices.Clone(children)
	return slices.DeleteFunc(out, func(e green.Element) bool { return e == nil })
}
