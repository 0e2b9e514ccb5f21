// Package fixture reads tree fixtures: s-expressions that spell out the
// children sequence of productions without a parser.
//
//	; comments run to the end of the line
//	(JS_IF_STATEMENT "if " "(" (JS_IDENTIFIER_EXPRESSION
//	    (JS_REFERENCE_IDENTIFIER "x")) ") " (JS_EMPTY_STATEMENT ";"))
//
// A list opens a node; its head is a SCREAMING_SNAKE kind name. A quoted
// string is lexed with the JavaScript lexer and contributes every token it
// yields, trivia included; trivia after the last token joins its trailing
// trivia. "text"@KIND merges everything the text lexes to into a single
// token of KIND, which is how contextual keywords used as names, regex
// literals or an EOF token ("\n"@EOF) are written. Quoted strings accept
// the escapes \" \\ \n \r \t.
//
// Reading never stops at the first problem: unknown kinds become JS_UNKNOWN
// nodes, unclosed lists are closed at end of input, and every problem is a
// FIX diagnostic with a span in the fixture file.
package fixture
