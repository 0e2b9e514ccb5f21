package driver

import (
	"context"
	"fmt"
	"math"

	"jsgreen/internal/diag"
	"jsgreen/internal/factory"
	"jsgreen/internal/fixture"
	"jsgreen/internal/green"
	"jsgreen/internal/lexer"
	"jsgreen/internal/observ"
	"jsgreen/internal/source"
	"jsgreen/internal/trace"
)

// DefaultMaxDiagnostics caps the diagnostics kept per file.
const DefaultMaxDiagnostics = 100

// Options configures Build and BuildDir.
type Options struct {
	MaxDiagnostics int           // per file; <= 0 means DefaultMaxDiagnostics
	Jobs           int           // BuildDir workers; <= 0 means GOMAXPROCS
	Cache          *TreeCache    // nil disables caching
	Timer          *observ.Timer // may be nil
	Lexer          lexer.Options // Reporter is ignored
	// Progress is called once per finished file from BuildDir, serialized.
	Progress func(Progress)
}

// BuildResult is the outcome of building one fixture.
type BuildResult struct {
	Path     string
	FileSet  *source.FileSet
	File     *source.File // the fixture itself
	TextFile *source.File // root.Text() as a virtual file; nil without a root
	Root     *green.Node
	Bag      *diag.Bag
	Stats    factory.Stats
	Tokens   int
	Cached   bool
}

// TextSuffix is appended to a fixture path to name the virtual file holding
// the text of its tree.
const TextSuffix = "#text"

// Build loads the fixture at path into a fresh FileSet and builds it.
func Build(ctx context.Context, path string, opts Options) (*BuildResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return buildFile(ctx, fs, fs.Get(id), opts)
}

// BuildSource builds a fixture held in memory.
func BuildSource(ctx context.Context, name string, content []byte, opts Options) (*BuildResult, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, content)
	return buildFile(ctx, fs, fs.Get(id), opts)
}

func buildFile(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) (*BuildResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	span, ctx := trace.BeginCtx(ctx, trace.ScopeFile, "build "+file.Path)
	res := &BuildResult{
		Path:    file.Path,
		FileSet: fs,
		File:    file,
		Bag:     diag.NewBag(maxDiagnostics(opts)),
	}
	defer func() {
		if span != nil {
			span.WithExtra("cached", fmt.Sprint(res.Cached))
			span.End(fmt.Sprintf("%d nodes, %d diagnostics", res.Stats.Nodes, res.Bag.Len()))
		}
	}()
	reporter := diag.BagReporter{Bag: res.Bag}
	key := treeKey(file.Content, opts.Lexer)

	if payload, ok := lookup(opts.Cache, key, file, reporter); ok {
		if err := restore(res, payload, reporter); err == nil {
			res.Cached = true
		} else {
			diag.ReportWarning(reporter, diag.IOCacheError, source.Span{File: file.ID},
				fmt.Sprintf("discarding cached tree: %v", err)).Emit()
			res.Bag = diag.NewBag(maxDiagnostics(opts))
			reporter.Bag = res.Bag
		}
	}

	if !res.Cached {
		// кэш не зависит от --max-diagnostics: читаем без лимита, режем потом
		read := diag.NewBag(math.MaxUint16)
		done := opts.Timer.Track("read")
		out := fixture.Read(file, fixture.Options{
			Reporter: diag.BagReporter{Bag: read},
			Tracer:   trace.FromContext(ctx),
			Lexer:    opts.Lexer,
		})
		done(file.Path)
		res.Root, res.Stats, res.Tokens = out.Root, out.Stats, out.Tokens
		store(opts.Cache, key, res, read, reporter)
		res.Bag.AddFrom(read)
	}

	if res.Root != nil {
		done := opts.Timer.Track("analyze")
		id := fs.AddVirtual(file.Path+TextSuffix, []byte(res.Root.Text()))
		res.TextFile = fs.Get(id)
		Analyze(res.Root, id, reporter)
		done(file.Path)
	}
	res.Bag.Sort()
	res.Bag.Dedup()
	return res, nil
}

func maxDiagnostics(opts Options) int {
	if opts.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return opts.MaxDiagnostics
}

func lookup(c *TreeCache, key Digest, file *source.File, r diag.Reporter) (*TreePayload, bool) {
	if c == nil {
		return nil, false
	}
	payload, ok, err := c.Get(key)
	if err != nil {
		diag.ReportWarning(r, diag.IOCacheError, source.Span{File: file.ID},
			fmt.Sprintf("tree cache read failed: %v", err)).Emit()
		return nil, false
	}
	return payload, ok
}

// restore fills res from a cache entry, replaying its fixture diagnostics
// against the current file.
func restore(res *BuildResult, p *TreePayload, r diag.Reporter) error {
	if len(p.Tree) > 0 {
		e, err := green.Unmarshal(p.Tree)
		if err != nil {
			return err
		}
		root, ok := e.(*green.Node)
		if !ok {
			return fmt.Errorf("cached root is a %s token", e.Kind())
		}
		res.Root = root
	}
	res.Stats, res.Tokens = p.Stats, p.Tokens
	replay(p.Diags, res.File.ID, r)
	res.Bag.NoteDropped(p.Dropped)
	return nil
}

// store caches the tree with every reader diagnostic in read, whatever
// the limit of res.Bag.
func store(c *TreeCache, key Digest, res *BuildResult, read *diag.Bag, r diag.Reporter) {
	if c == nil {
		return
	}
	payload := &TreePayload{
		Schema:  diskCacheSchemaVersion,
		Path:    res.Path,
		Diags:   toCachedDiags(read.Items()),
		Dropped: read.Dropped(),
		Stats:   res.Stats,
		Tokens:  res.Tokens,
	}
	if res.Root != nil {
		data, err := green.Marshal(res.Root)
		if err != nil {
			diag.ReportWarning(r, diag.IOCacheError, source.Span{File: res.File.ID},
				fmt.Sprintf("tree not cached: %v", err)).Emit()
			return
		}
		payload.Tree = data
	}
	if err := c.Put(key, payload); err != nil {
		diag.ReportWarning(r, diag.IOCacheError, source.Span{File: res.File.ID},
			fmt.Sprintf("tree cache write failed: %v", err)).Emit()
	}
}
