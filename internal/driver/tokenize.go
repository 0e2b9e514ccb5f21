package driver

import (
	"context"
	"fmt"

	"jsgreen/internal/diag"
	"jsgreen/internal/lexer"
	"jsgreen/internal/source"
	"jsgreen/internal/token"
	"jsgreen/internal/trace"
)

// TokenizeResult holds the tokens of a JavaScript source file, EOF included.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes the file at path.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return tokenizeFile(ctx, fs, fs.Get(id), opts), nil
}

// TokenizeSource lexes content held in memory.
func TokenizeSource(ctx context.Context, name string, content []byte, opts Options) *TokenizeResult {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, content)
	return tokenizeFile(ctx, fs, fs.Get(id), opts)
}

func tokenizeFile(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) *TokenizeResult {
	span, _ := trace.BeginCtx(ctx, trace.ScopeFile, "tokenize "+file.Path)
	done := opts.Timer.Track("lex")

	bag := diag.NewBag(maxDiagnostics(opts))
	lexOpts := opts.Lexer
	lexOpts.Reporter = diag.BagReporter{Bag: bag}
	toks := lexer.All(file, lexOpts)
	bag.Sort()

	done(file.Path)
	span.End(fmt.Sprintf("%d tokens", len(toks)))
	return &TokenizeResult{FileSet: fs, File: file, Tokens: toks, Bag: bag}
}
