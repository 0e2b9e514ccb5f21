package lexer

import (
	"bytes"
	"fmt"

	"fortio.org/safecast"

	"jsgreen/internal/source"
)

// Cursor is a byte position in one file. Reads past the end return 0.
type Cursor struct {
	File *source.File
	Off  uint32
	end  uint32
}

func NewCursor(f *source.File) Cursor {
	end, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{File: f, end: end}
}

func (c *Cursor) EOF() bool { return c.Off >= c.end }

// End is the offset just past the last byte of the file.
func (c *Cursor) End() uint32 { return c.end }

// Rest returns the unread bytes; empty at EOF.
func (c *Cursor) Rest() []byte {
	if c.EOF() {
		return nil
	}
	return c.File.Content[c.Off:c.end]
}

// Peek returns the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	b, _ := c.PeekAt(0)
	return b
}

// PeekAt returns the byte n positions ahead; ok is false past the end.
func (c *Cursor) PeekAt(n uint32) (b byte, ok bool) {
	if c.Off+n >= c.end {
		return 0, false
	}
	return c.File.Content[c.Off+n], true
}

// Bump consumes and returns the current byte, or 0 at EOF.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// Eat consumes the current byte if it is b.
func (c *Cursor) Eat(b byte) bool {
	if cur, ok := c.PeekAt(0); ok && cur == b {
		c.Off++
		return true
	}
	return false
}

// HasPrefix reports whether the unread input starts with p. An empty p
// matches anywhere but at EOF.
func (c *Cursor) HasPrefix(p string) bool {
	return !c.EOF() && bytes.HasPrefix(c.Rest(), []byte(p))
}

// Skip advances n bytes, stopping at EOF.
func (c *Cursor) Skip(n int) {
	for ; n > 0 && !c.EOF(); n-- {
		c.Off++
	}
}

// Mark запоминает позицию начала токена или trivia.
type Mark uint32

func (c *Cursor) Mark() Mark { return Mark(c.Off) }

// SpanFrom covers the bytes read since m.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: uint32(m), End: c.Off}
}

// Reset rewinds to m.
func (c *Cursor) Reset(m Mark) { c.Off = uint32(m) }
