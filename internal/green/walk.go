package green

// Walk visits e and its descendants in pre-order. enter returning false skips
// the children of that element; leave, if non-nil, runs after the children.
// Absent slots are not visited.
func Walk(e Element, enter func(Element) bool, leave func(Element)) {
	if e == nil {
		return
	}
	descend := enter(e)
	if n, ok := e.(*Node); ok && descend {
		for _, s := range n.slots {
			if s != nil {
				Walk(s, enter, leave)
			}
		}
	}
	if leave != nil {
		leave(e)
	}
}

// Offset pairs an element with its byte offset from the walk root.
type Offset struct {
	Elem  Element
	Start int
	Depth int
}

// Unknowns returns unknown-kind nodes under e with their offsets, outermost
// first.
func Unknowns(e Element) []Offset {
	var out []Offset
	WalkOffsets(e, func(o Offset) bool {
		if o.Elem.Kind().IsUnknown() {
			out = append(out, o)
		}
		return true
	})
	return out
}

// WalkOffsets is Walk with byte offsets and depth.
func WalkOffsets(e Element, visit func(Offset) bool) {
	walkOffsets(e, 0, 0, visit)
}

func walkOffsets(e Element, start, depth int, visit func(Offset) bool) {
	if e == nil {
		return
	}
	if !visit(Offset{Elem: e, Start: start, Depth: depth}) {
		return
	}
	n, ok := e.(*Node)
	if !ok {
		return
	}
	off := start
	for _, s := range n.slots {
		if s == nil {
			continue
		}
		walkOffsets(s, off, depth+1, visit)
		off += s.TextLen()
	}
}
