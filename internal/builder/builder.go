// Package builder assembles a green tree from parser events.
//
// A parser calls StartNode/Token/FinishNode in source order; every
// FinishNode hands the children collected since the matching start to the
// syntax factory. Checkpoint and StartNodeAt let a parser wrap children it
// has already emitted, as left-recursive productions need.
package builder

import (
	"errors"
	"fmt"

	"jsgreen/internal/factory"
	"jsgreen/internal/green"
	"jsgreen/internal/kind"
	"jsgreen/internal/token"
	"jsgreen/internal/trace"
)

var (
	ErrOpenNodes     = errors.New("builder: nodes left open")
	ErrNoRoot        = errors.New("builder: no root node")
	ErrMultipleRoots = errors.New("builder: more than one root element")
)

// Checkpoint marks a position in the children of the currently open node.
type Checkpoint int

type Options struct {
	// Tracer receives debug points for unknown fallbacks; nil disables.
	Tracer trace.Tracer
}

type frame struct {
	kind  kind.Kind
	first int // index in Builder.children
}

// Builder is not safe for concurrent use.
type Builder struct {
	fac      *factory.Factory
	tracer   trace.Tracer
	parents  []frame
	children []green.Element
}

func New(opts Options) *Builder {
	tr := opts.Tracer
	if tr == nil {
		tr = trace.Nop
	}
	return &Builder{fac: factory.New(), tracer: tr}
}

// StartNode opens a node of kind k.
func (b *Builder) StartNode(k kind.Kind) {
	b.parents = append(b.parents, frame{kind: k, first: len(b.children)})
}

// Token appends a lexer token to the open node.
func (b *Builder) Token(tok token.Token) {
	b.children = append(b.children, green.FromToken(tok))
}

// Element appends an already built element, such as a node reused from an
// earlier tree. Absent slots are never pushed: the factory infers them.
func (b *Builder) Element(e green.Element) {
	if e != nil {
		b.children = append(b.children, e)
	}
}

// FinishNode closes the innermost open node through the factory and
// returns it. Calling it with no open node is a caller bug and panics.
func (b *Builder) FinishNode() *green.Node {
	if len(b.parents) == 0 {
		panic("builder: FinishNode without StartNode")
	}
	top := b.parents[len(b.parents)-1]
	b.parents = b.parents[:len(b.parents)-1]

	children := b.children[top.first:]
	n := b.fac.Make(top.kind, children)
	if n.Kind() != top.kind {
		trace.Point(b.tracer, trace.ScopeNode, "fallback",
			fmt.Sprintf("%s -> %s (%d children)", top.kind, n.Kind(), len(children)))
	}

	clear(b.children[top.first:])
	b.children = append(b.children[:top.first], n)
	return n
}

// Checkpoint returns the current position among the open node's children.
func (b *Builder) Checkpoint() Checkpoint {
	return Checkpoint(len(b.children))
}

// StartNodeAt opens a node of kind k whose children begin at cp, so the
// elements emitted since cp become its first children. cp must not be older
// than the innermost open node.
func (b *Builder) StartNodeAt(cp Checkpoint, k kind.Kind) {
	at := int(cp)
	if at < 0 || at > len(b.children) {
		panic(fmt.Sprintf("builder: checkpoint %d out of range", at))
	}
	if n := len(b.parents); n > 0 && at < b.parents[n-1].first {
		panic(fmt.Sprintf("builder: checkpoint %d precedes the open %s", at, b.parents[n-1].kind))
	}
	b.parents = append(b.parents, frame{kind: k, first: at})
}

// Depth returns the number of open nodes.
func (b *Builder) Depth() int { return len(b.parents) }

// Finish returns the single root node. The builder can be reused after a
// successful Finish.
func (b *Builder) Finish() (*green.Node, error) {
	if len(b.parents) > 0 {
		return nil, fmt.Errorf("%w: %d, innermost %s", ErrOpenNodes, len(b.parents), b.parents[len(b.parents)-1].kind)
	}
	switch len(b.children) {
	case 0:
		return nil, ErrNoRoot
	case 1:
	default:
		return nil, fmt.Errorf("%w: %d", ErrMultipleRoots, len(b.children))
	}
	root, ok := b.children[0].(*green.Node)
	if !ok {
		return nil, fmt.Errorf("%w: top-level element is a token", ErrNoRoot)
	}
	b.children = b.children[:0]
	return root, nil
}

// Stats returns the factory counters of every node finished so far.
func (b *Builder) Stats() factory.Stats { return b.fac.Stats() }
