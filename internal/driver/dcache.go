package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"jsgreen/internal/diag"
	"jsgreen/internal/factory"
	"jsgreen/internal/source"
)

// Current schema version - increment when TreePayload format changes
const diskCacheSchemaVersion uint16 = 3

// DiskCache хранит построенные деревья фикстур по ключу содержимого.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// TreePayload is what a build leaves in the cache: the encoded tree and the
// diagnostics of reading the fixture. Analysis diagnostics are not stored;
// they are recomputed from the tree.
type TreePayload struct {
	Schema  uint16
	Path    string
	Tree    []byte // green.Marshal; empty when the fixture had no root
	Diags   []CachedDiag
	Dropped int // reader diagnostics beyond the uint16 bag limit
	Stats   factory.Stats
	Tokens  int
}

// CachedDiag is a diagnostic of the fixture file without its FileID.
type CachedDiag struct {
	Code     uint16
	Severity uint8
	Start    uint32
	End      uint32
	Message  string
	Notes    []CachedNote
	Fixes    []CachedFix
}

type CachedNote struct {
	Start, End uint32
	Msg        string
}

type CachedFix struct {
	Title string
	Edits []CachedEdit
}

type CachedEdit struct {
	Start, End uint32
	NewText    string
}

// OpenDiskCache opens <user cache dir>/<app>/trees, creating it if needed.
func OpenDiskCache(app string) (*DiskCache, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("locate cache dir: %w", err)
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt opens a cache rooted at dir.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string { return c.dir }

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := key.String()
	// подкаталог по первому байту, чтобы не держать тысячи файлов в одном
	return filepath.Join(c.dir, "trees", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *TreePayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode cache entry: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	// Атомарная замена
	if err := os.Rename(tmp, p); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// Get reads and deserializes a payload from the disk cache. Entries of
// another schema are reported as absent.
func (c *DiskCache) Get(key Digest) (*TreePayload, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var out TreePayload
	if err := msgpack.NewDecoder(f).Decode(&out); err != nil {
		return nil, false, fmt.Errorf("decode cache entry %s: %w", key, err)
	}
	if out.Schema != diskCacheSchemaVersion {
		return nil, false, nil
	}
	return &out, true, nil
}

// DropAll removes every cached tree.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименуем каталог и удалим целиком
	trees := filepath.Join(c.dir, "trees")
	old := trees + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(trees, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

// toCachedDiags keeps everything but cache errors of the current run.
func toCachedDiags(items []diag.Diagnostic) []CachedDiag {
	out := make([]CachedDiag, 0, len(items))
	for _, d := range items {
		if d.Code == diag.IOCacheError {
			continue
		}
		cd := CachedDiag{
			Code:     uint16(d.Code),
			Severity: uint8(d.Severity),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Message:  d.Message,
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, CachedNote{Start: n.Span.Start, End: n.Span.End, Msg: n.Msg})
		}
		for _, f := range d.Fixes {
			cf := CachedFix{Title: f.Title}
			for _, e := range f.Edits {
				cf.Edits = append(cf.Edits, CachedEdit{Start: e.Span.Start, End: e.Span.End, NewText: e.NewText})
			}
			cd.Fixes = append(cd.Fixes, cf)
		}
		out = append(out, cd)
	}
	return out
}

// replay reports cached diagnostics against file.
func replay(cached []CachedDiag, file source.FileID, r diag.Reporter) {
	for _, cd := range cached {
		span := source.Span{File: file, Start: cd.Start, End: cd.End}
		b := diag.NewReportBuilder(r, diag.Severity(cd.Severity), diag.Code(cd.Code), span, cd.Message)
		for _, n := range cd.Notes {
			b.WithNote(source.Span{File: file, Start: n.Start, End: n.End}, n.Msg)
		}
		for _, f := range cd.Fixes {
			edits := make([]diag.FixEdit, 0, len(f.Edits))
			for _, e := range f.Edits {
				edits = append(edits, diag.FixEdit{Span: source.Span{File: file, Start: e.Start, End: e.End}, NewText: e.NewText})
			}
			b.WithFix(f.Title, edits...)
		}
		b.Emit()
	}
}
