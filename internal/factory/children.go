package factory

import "jsgreen/internal/green"

// Children is a forward-only cursor over the elements of one production.
type Children struct {
	elems []green.Element
	pos   int
}

func newChildren(elems []green.Element) Children { return Children{elems: elems} }

// Peek returns the current element without consuming it, or nil at the end.
func (c *Children) Peek() green.Element {
	if c.pos >= len(c.elems) {
		return nil
	}
	return c.elems[c.pos]
}

// Advance consumes the current element.
func (c *Children) Advance() {
	if c.pos < len(c.elems) {
		c.pos++
	}
}

// Done reports whether every element was consumed.
func (c *Children) Done() bool { return c.pos >= len(c.elems) }

// Len is the total element count.
func (c *Children) Len() int { return len(c.elems) }
