package source

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"os"
	"sync"

	"fortio.org/safecast"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// FileSet owns the files of one build and maps spans to positions.
// Safe for concurrent use; a *File never changes after Add.
type FileSet struct {
	mu     sync.RWMutex
	files  []*File
	latest map[string]FileID
}

func NewFileSet() *FileSet {
	return &FileSet{latest: make(map[string]FileID)}
}

// Add registers content under path. Re-adding a path yields a new ID;
// older versions stay reachable through Get.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		panic(fmt.Errorf("source %s too large: %w", path, err))
	}
	if bytes.Contains(content, []byte("\r\n")) {
		flags |= FileHasCRLF
	}
	f := &File{
		Path:    cleanPath(path),
		Content: content,
		LineIdx: lineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()
	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("file set overflow: %w", err))
	}
	f.ID = FileID(n)
	fs.files = append(fs.files, f)
	fs.latest[f.Path] = f.ID
	return f.ID
}

// Load reads path from disk. A leading BOM is dropped; line breaks are
// kept so the tree reproduces the file byte for byte.
func (fs *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	var flags FileFlags
	if rest, ok := bytes.CutPrefix(content, bom); ok {
		content, flags = rest, FileHadBOM
	}
	return fs.Add(path, content, flags), nil
}

// AddVirtual adds in-memory content flagged FileVirtual.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.Add(name, content, FileVirtual)
}

// Get returns nil for an unknown id.
func (fs *FileSet) Get(id FileID) *File {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	if int(id) >= len(fs.files) {
		return nil
	}
	return fs.files[id]
}

// GetLatest returns the newest version registered under path.
func (fs *FileSet) GetLatest(path string) (FileID, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	id, ok := fs.latest[cleanPath(path)]
	return id, ok
}

func (fs *FileSet) Len() int {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return len(fs.files)
}

// Resolve maps both ends of span to line and column. Unknown files
// resolve to 1:1.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fs.Get(span.File)
	if f == nil {
		return LineCol{Line: 1, Col: 1}, LineCol{Line: 1, Col: 1}
	}
	return position(f.LineIdx, span.Start), position(f.LineIdx, span.End)
}
