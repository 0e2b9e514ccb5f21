// Package factory turns a production kind and its flat children sequence
// into a green node.
//
// Every node kind is served by exactly one arm: a fixed slot shape, a node
// list, a separated list, or pass-through for unknown kinds. Make never
// fails: a children sequence that does not fit the shape is kept verbatim
// under the kind's unknown counterpart, so no token is ever dropped.
//
// Shapes, list configurations and categories are package data built at init
// and never mutated; Make is safe for concurrent use.
package factory
