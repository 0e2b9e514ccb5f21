package green

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"jsgreen/internal/kind"
	"jsgreen/internal/token"
)

// codecVersion is bumped when the wire layout changes.
const codecVersion uint16 = 1

var errCodecVersion = errors.New("green: codec version mismatch")

// wireElem is the msgpack layout of one element. A nil *wireElem in Slots
// is an absent slot.
type wireElem struct {
	Kind     uint16       `msgpack:"k"`
	Node     bool         `msgpack:"n,omitempty"`
	Text     string       `msgpack:"t,omitempty"`
	Leading  []wireTrivia `msgpack:"l,omitempty"`
	Trailing []wireTrivia `msgpack:"r,omitempty"`
	Slots    []*wireElem  `msgpack:"s,omitempty"`
}

type wireTrivia struct {
	Kind uint8  `msgpack:"k"`
	Text string `msgpack:"t"`
}

type wireTree struct {
	Version uint16    `msgpack:"v"`
	Root    *wireElem `msgpack:"root"`
}

// Marshal encodes a tree with msgpack.
func Marshal(e Element) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.Encode(wireTree{Version: codecVersion, Root: toWire(e)}); err != nil {
		return nil, fmt.Errorf("green: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a tree produced by Marshal.
func Unmarshal(data []byte) (Element, error) {
	var wt wireTree
	if err := msgpack.Unmarshal(data, &wt); err != nil {
		return nil, fmt.Errorf("green: decode: %w", err)
	}
	if wt.Version != codecVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", errCodecVersion, wt.Version, codecVersion)
	}
	if wt.Root == nil {
		return nil, errors.New("green: decode: empty tree")
	}
	return fromWire(wt.Root)
}

// IsVersionMismatch reports errors from decoding data of an older layout.
func IsVersionMismatch(err error) bool { return errors.Is(err, errCodecVersion) }

func toWire(e Element) *wireElem {
	switch v := e.(type) {
	case *Token:
		return &wireElem{
			Kind:     uint16(v.kind),
			Text:     v.text,
			Leading:  triviaToWire(v.leading),
			Trailing: triviaToWire(v.trailing),
		}
	case *Node:
		w := &wireElem{Kind: uint16(v.kind), Node: true, Slots: make([]*wireElem, len(v.slots))}
		for i, s := range v.slots {
			if s != nil {
				w.Slots[i] = toWire(s)
			}
		}
		return w
	}
	return nil
}

func fromWire(w *wireElem) (Element, error) {
	k := kind.Kind(w.Kind)
	if int(w.Kind) >= kind.Count {
		return nil, fmt.Errorf("green: decode: kind %d out of range", w.Kind)
	}
	if !w.Node {
		if !k.IsToken() {
			return nil, fmt.Errorf("green: decode: %v is not a token kind", k)
		}
		return NewToken(k, w.Text, triviaFromWire(w.Leading), triviaFromWire(w.Trailing)), nil
	}
	if !k.IsNode() {
		return nil, fmt.Errorf("green: decode: %v is not a node kind", k)
	}
	slots := make([]Element, len(w.Slots))
	for i, s := range w.Slots {
		if s == nil {
			continue
		}
		el, err := fromWire(s)
		if err != nil {
			return nil, err
		}
		slots[i] = el
	}
	return NewNode(k, slots), nil
}

func triviaToWire(ts []Trivia) []wireTrivia {
	if len(ts) == 0 {
		return nil
	}
	out := make([]wireTrivia, len(ts))
	for i, t := range ts {
		out[i] = wireTrivia{Kind: uint8(t.Kind), Text: t.Text}
	}
	return out
}

func triviaFromWire(ts []wireTrivia) []Trivia {
	if len(ts) == 0 {
		return nil
	}
	out := make([]Trivia, len(ts))
	for i, t := range ts {
		out[i] = Trivia{Kind: token.TriviaKind(t.Kind), Text: t.Text}
	}
	return out
}
