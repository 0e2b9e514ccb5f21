// Package diag defines the diagnostic model shared by the lexer, the fixture
// reader and the tree consumers.
//
// Diagnostic is the central record: Severity, a numeric Code with a stable
// string form (codes.go), a short Message, the Primary span, optional Notes
// and optional Fixes (structured text edits).
//
// Producers emit through a Reporter so that emission stays decoupled from
// storage. BagReporter aggregates into a Bag, which supports sorting,
// deduplication and a hard limit. Rendering lives in internal/diagfmt.
//
// The syntax factory itself never reports: shape mismatches are absorbed as
// unknown nodes. The driver walks finished trees and reports unknown nodes
// and missing required children as SYN diagnostics.
package diag
