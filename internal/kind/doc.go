// Package kind defines the closed set of syntax kinds shared by the lexer,
// the green tree and the syntax factory.
// Invariants:
//   - Token kinds come first, then node kinds; there is no kind that is both.
//   - Every shaped node kind and every list kind has an unknown counterpart
//     (ToUnknown). Unknown kinds map to themselves.
//   - Kind tables are package data built once and never mutated at runtime.
//   - Contextual keywords (let, async, of, get, ...) are keyword kinds; the
//     identifier-like categories accept them where the grammar does.
package kind
