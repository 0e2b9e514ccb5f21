package factory

import "jsgreen/internal/green"

// match runs the slot matcher. Each slot peeks the pending element; on a hit
// the slot is filled and the cursor moves, otherwise the slot stays absent
// and the same element is offered to the next slot. Required slots do not
// reject on their own: the shape fails only when elements are left over.
func match(shape *Shape, children []green.Element) ([]green.Element, bool) {
	cur := newChildren(children)
	slots := make([]green.Element, len(shape.Slots))
	for i := range shape.Slots {
		el := cur.Peek()
		if el != nil && shape.Slots[i].Test.Matches(el) {
			slots[i] = el
			cur.Advance()
		}
	}
	if !cur.Done() {
		return nil, false
	}
	return slots, true
}
