// Package green holds the immutable, position-independent syntax tree built
// by the syntax factory.
// Invariants:
//   - An Element is either a *Token or a *Node; both report their kind and
//     their full source text, trivia included.
//   - A Node owns its slots; a nil slot is an absent child of a shaped node.
//     Unknown and node-list nodes never contain nil slots.
//   - Nodes are never mutated after construction and may be shared by
//     readers across goroutines.
package green
