package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"jsgreen/internal/kind"
	"jsgreen/internal/source"
	"jsgreen/internal/token"
)

type TokenOutput struct {
	Kind     string         `json:"kind"`
	Text     string         `json:"text,omitempty"`
	Span     source.Span    `json:"span"`
	Leading  []TriviaOutput `json:"leading,omitempty"`
	Trailing []TriviaOutput `json:"trailing,omitempty"`
}

type TriviaOutput struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-22s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)

		if s := triviaKinds(tok.Leading); s != "" {
			fmt.Fprintf(w, " (leading: %s)", s)
		}
		if s := triviaKinds(tok.Trailing); s != "" {
			fmt.Fprintf(w, " (trailing: %s)", s)
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}

		if tok.Kind == kind.EOF {
			break
		}
	}
	return nil
}

func triviaKinds(ts []token.Trivia) string {
	if len(ts) == 0 {
		return ""
	}
	parts := make([]string, len(ts))
	for i, tr := range ts {
		parts[i] = tr.Kind.String()
	}
	return strings.Join(parts, ", ")
}

func triviaOutput(ts []token.Trivia) []TriviaOutput {
	if len(ts) == 0 {
		return nil // Убираем пустые массивы из JSON
	}
	out := make([]TriviaOutput, len(ts))
	for i, tr := range ts {
		out[i] = TriviaOutput{Kind: tr.Kind.String(), Text: tr.Text}
	}
	return out
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:     tok.Kind.String(),
			Text:     tok.Text,
			Span:     tok.Span,
			Leading:  triviaOutput(tok.Leading),
			Trailing: triviaOutput(tok.Trailing),
		})
		if tok.Kind == kind.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
