package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"jsgreen/internal/diag"
	"jsgreen/internal/source"
	"jsgreen/internal/trace"
)

// FixtureExt is the file extension of tree fixtures.
const FixtureExt = ".tree"

// ListFixtures returns the fixture files under dir, recursively, sorted.
func ListFixtures(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// скрытые каталоги (.git и т.п.) пропускаем
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == FixtureExt {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// BuildDir builds every fixture under dir in parallel. All files share one
// FileSet; results follow ListFixtures order. A file that cannot be read
// yields a result with an IOLoadFileError diagnostic and no tree. The
// returned error is non-nil only for a listing failure or cancellation.
func BuildDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []*BuildResult, error) {
	span, ctx := trace.BeginCtx(ctx, trace.ScopePhase, "build-dir")
	defer span.End("")

	paths, err := ListFixtures(dir)
	if err != nil {
		return nil, nil, err
	}
	fs := source.NewFileSet()
	results := make([]*BuildResult, len(paths))
	files := make([]*source.File, len(paths))

	// Загружаем файлы последовательно: FileID стабильны между запусками.
	done := opts.Timer.Track("load")
	for i, p := range paths {
		id, err := fs.Load(p)
		if err != nil {
			results[i] = loadFailure(fs, p, err, opts)
			continue
		}
		files[i] = fs.Get(id)
	}
	done(fmt.Sprintf("%d files", len(paths)))

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	workers := max(1, min(jobs, len(paths)))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	// дорожки 1..workers: у каждой горутины своя, пока она собирает файл
	lanes := make(chan int, workers)
	for lane := 1; lane <= workers; lane++ {
		lanes <- lane
	}

	var (
		mu       sync.Mutex
		finished int
	)
	notify := func(i int) {
		if opts.Progress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		finished++
		r := results[i]
		p := Progress{Path: paths[i], Done: finished, Total: len(paths), Cached: r.Cached}
		if r.Root == nil && r.Bag.HasErrors() {
			p.Err = fmt.Errorf("%s: no tree", paths[i])
		}
		opts.Progress(p)
	}

	for i, file := range files {
		if file == nil {
			notify(i)
			continue
		}
		g.Go(func() error {
			lane := <-lanes
			defer func() { lanes <- lane }()
			res, err := buildFile(trace.WithLane(gctx, lane), fs, file, opts)
			if err != nil {
				return err
			}
			results[i] = res
			notify(i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fs, results, err
	}
	return fs, results, nil
}

// loadFailure records err against an empty virtual stand-in for path so the
// diagnostic still names the file.
func loadFailure(fs *source.FileSet, path string, err error, opts Options) *BuildResult {
	file := fs.Get(fs.AddVirtual(path, nil))
	bag := diag.NewBag(maxDiagnostics(opts))
	diag.ReportError(diag.BagReporter{Bag: bag}, diag.IOLoadFileError, source.Span{File: file.ID},
		err.Error()).Emit()
	return &BuildResult{Path: file.Path, FileSet: fs, File: file, Bag: bag}
}
