package lexer

import (
	"testing"

	"jsgreen/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.js", []byte(content))
	return fs.Get(id)
}

// TestCursorSequential: "a\r\nb" читается побайтно, затем EOF отдаёт нули
func TestCursorSequential(t *testing.T) {
	cursor := NewCursor(createFile("a\r\nb"))
	for i, want := range []byte("a\r\nb") {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF at %d", i)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("byte %d: expected %q, got %q", i, want, got)
		}
	}
	if !cursor.EOF() || cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Fatalf("expected EOF with zero bytes")
	}
}

func TestCursorPeekAt(t *testing.T) {
	cursor := NewCursor(createFile("abc"))
	if b, ok := cursor.PeekAt(2); !ok || b != 'c' {
		t.Fatalf("PeekAt(2) at start: %q %v", b, ok)
	}
	if _, ok := cursor.PeekAt(3); ok {
		t.Fatalf("PeekAt past the end must fail")
	}
	cursor.Bump()
	cursor.Bump()
	if b, ok := cursor.PeekAt(0); !ok || b != 'c' || cursor.Peek() != 'c' {
		t.Fatalf("PeekAt(0) on the last byte: %q %v", b, ok)
	}
	if _, ok := cursor.PeekAt(1); ok {
		t.Fatalf("PeekAt(1) on the last byte must fail")
	}
}

func TestCursorPrefixSkip(t *testing.T) {
	cursor := NewCursor(createFile("/* x */"))
	if !cursor.HasPrefix("/*") || cursor.HasPrefix("//") {
		t.Fatalf("HasPrefix mismatch at start")
	}
	cursor.Skip(5)
	if !cursor.HasPrefix("*/") {
		t.Fatalf("expected */ after skipping 5 bytes, offset %d", cursor.Off)
	}
	cursor.Skip(100)
	if !cursor.EOF() || cursor.Off != 7 {
		t.Fatalf("Skip must clamp to the end, offset %d", cursor.Off)
	}
	if cursor.HasPrefix("") {
		t.Fatalf("HasPrefix at EOF must be false")
	}
}

func TestCursorMarkSpanReset(t *testing.T) {
	cursor := NewCursor(createFile("α\nβ"))
	mark := cursor.Mark()
	cursor.Skip(2) // α — два байта
	span := cursor.SpanFrom(mark)
	if span.Start != 0 || span.End != 2 {
		t.Fatalf("expected span 0..2, got %d..%d", span.Start, span.End)
	}
	if !cursor.Eat('\n') || cursor.Eat('x') {
		t.Fatalf("Eat mismatch after α")
	}
	cursor.Reset(mark)
	if cursor.Off != 0 {
		t.Fatalf("Reset must return to mark, got %d", cursor.Off)
	}
}

func TestCursorRestEnd(t *testing.T) {
	cursor := NewCursor(createFile("a=>β"))
	if cursor.End() != 5 {
		t.Fatalf("End() = %d, want 5", cursor.End())
	}
	cursor.Bump()
	if got := string(cursor.Rest()); got != "=>β" {
		t.Fatalf("Rest() = %q", got)
	}
	cursor.Off = cursor.End()
	if !cursor.EOF() || len(cursor.Rest()) != 0 {
		t.Fatalf("Rest at EOF must be empty, got %q", cursor.Rest())
	}
}
