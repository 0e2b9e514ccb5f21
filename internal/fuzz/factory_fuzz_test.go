package fuzztests

import (
	"encoding/binary"
	"testing"

	"jsgreen/internal/factory"
	"jsgreen/internal/green"
	"jsgreen/internal/kind"
	"jsgreen/internal/testkit"
)

// program interprets bytes as a stack machine. Each op starts with a
// little-endian uint16 kind: a token kind pushes a token, a node kind pops
// up to the following byte's worth of elements and pushes the node built
// from them. Whatever the bytes, Make must return a well-formed node that
// keeps every element.
func program(data []byte, t *testing.T) []green.Element {
	var stack []green.Element
	for i := 0; i+1 < len(data); i += 2 {
		k := kind.Kind(binary.LittleEndian.Uint16(data[i:]) % uint16(kind.Count))
		if k.IsToken() {
			stack = append(stack, green.NewToken(k, tokenText(k), nil, nil))
			continue
		}
		n := 0
		if i+2 < len(data) {
			n = int(data[i+2]) % 8
			i++
		}
		n = min(n, len(stack))
		children := append([]green.Element(nil), stack[len(stack)-n:]...)
		stack = stack[:len(stack)-n]

		want := green.ConcatText(children)
		node := factory.Make(k, children)
		if node == nil || !node.Kind().IsNode() {
			t.Fatalf("Make(%s) returned %v", k, node)
		}
		if err := testkit.CheckLossless(want, node); err != nil {
			t.Fatalf("Make(%s): %v", k, err)
		}
		if err := testkit.CheckShape(node); err != nil {
			t.Fatalf("Make(%s): %v", k, err)
		}
		if node.Kind() != k && node.Kind() != k.ToUnknown() && node.Kind() != kind.JsUnknown {
			t.Fatalf("Make(%s) produced unrelated kind %s", k, node.Kind())
		}
		stack = append(stack, node)
	}
	return stack
}

// op encodes one instruction for program; count is only used by node kinds.
func op(k kind.Kind, count ...byte) []byte {
	out := binary.LittleEndian.AppendUint16(nil, uint16(k))
	return append(out, count...)
}

func ops(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

var callArgsProgram = ops(
	op(kind.Ident), op(kind.JsReferenceIdentifier, 1), op(kind.JsIdentifierExpression, 1),
	op(kind.Comma),
	op(kind.Ident), op(kind.JsReferenceIdentifier, 1), op(kind.JsIdentifierExpression, 1),
	op(kind.JsCallArgumentList, 3),
)

func TestProgramBuildsSeparatedList(t *testing.T) {
	stack := program(callArgsProgram, t)
	if len(stack) != 1 {
		t.Fatalf("expected one root, got %d", len(stack))
	}
	root, ok := stack[0].(*green.Node)
	if !ok || root.Kind() != kind.JsCallArgumentList || len(root.Slots()) != 3 {
		t.Fatalf("unexpected root %v", stack[0])
	}
	if root.Text() != "t,t" {
		t.Fatalf("text %q", root.Text())
	}
}

func TestProgramDecodesHighKinds(t *testing.T) {
	last := kind.Kind(kind.Count - 1)
	stack := program(op(last, 0), t)
	if len(stack) != 1 || stack[0].Kind() != last {
		t.Fatalf("kind %s must be reachable, got %v", last, stack)
	}
}

func tokenText(k kind.Kind) string {
	if text := k.Text(); text != "" {
		return text
	}
	return "t"
}

func FuzzFactoryMake(f *testing.F) {
	f.Add([]byte{})
	f.Add(ops(op(kind.Semicolon), op(kind.JsEmptyStatement, 1)))
	f.Add(callArgsProgram)
	f.Add(ops(op(kind.Semicolon), op(kind.JsEmptyStatement, 1), op(kind.JsStatementList, 1)))
	f.Fuzz(func(t *testing.T, data []byte) {
		program(clamp(data, 4096), t)
	})
}
