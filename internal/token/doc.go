// Package token defines lexical tokens and trivia produced by the JavaScript
// lexer.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End); trivia spans lie outside it.
//   - Leading trivia starts at the first newline after the previous token;
//     trailing trivia runs up to, not including, the next newline.
//   - Concatenating Leading, Text and Trailing over the token stream, EOF
//     included, reproduces the file content byte for byte.
//   - Token kinds come from package kind; there is no separate token enum.
package token
