package source

import (
	"bytes"
	"fmt"
	"path/filepath"
	"slices"

	"fortio.org/safecast"
)

// FileID индексирует FileSet.
type FileID uint32

// FileFlags описывает, как файл попал в FileSet.
type FileFlags uint8

const (
	// FileVirtual: content came from memory (stdin, tests, --text).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM: a UTF-8 BOM was cut off on load.
	FileHadBOM
	// FileHasCRLF: content has "\r\n" line breaks, kept as is.
	FileHasCRLF
)

// File is immutable once it is in a FileSet.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of each '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a 1-based position; Col counts bytes.
type LineCol struct {
	Line uint32
	Col  uint32
}

// Has reports whether every bit of flag is set.
func (f *File) Has(flag FileFlags) bool { return f.Flags&flag == flag }

// LineCount counts a trailing empty line after the final '\n'.
func (f *File) LineCount() int { return len(f.LineIdx) + 1 }

// Text returns the bytes under span, or "" when span does not fit.
func (f *File) Text(span Span) string {
	if span.End < span.Start || int(span.End) > len(f.Content) {
		return ""
	}
	return string(f.Content[span.Start:span.End])
}

// Line возвращает строку n (с 1) без перевода строки и без '\r'.
func (f *File) Line(n uint32) string {
	if n == 0 || int(n) > f.LineCount() {
		return ""
	}
	start := 0
	if n > 1 {
		start = int(f.LineIdx[n-2]) + 1
	}
	end := len(f.Content)
	if int(n) <= len(f.LineIdx) {
		end = int(f.LineIdx[n-1])
	}
	return string(bytes.TrimSuffix(f.Content[start:end], []byte{'\r'}))
}

// Offset converts a position back to a byte offset. Columns past the end
// of the line are rejected.
func (f *File) Offset(pos LineCol) (uint32, bool) {
	if pos.Line == 0 || pos.Col == 0 || int(pos.Line) > f.LineCount() {
		return 0, false
	}
	var start uint32
	if pos.Line > 1 {
		start = f.LineIdx[pos.Line-2] + 1
	}
	off := start + pos.Col - 1
	limit := uint32(len(f.Content)) // #nosec G115 -- Add rejects content over 4GiB
	if int(pos.Line) <= len(f.LineIdx) {
		limit = f.LineIdx[pos.Line-1]
	}
	if off > limit {
		return 0, false
	}
	return off, true
}

func lineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, bytes.Count(content, []byte{'\n'}))
	for i, b := range content {
		if b != '\n' {
			continue
		}
		off, err := safecast.Conv[uint32](i)
		if err != nil {
			panic(fmt.Errorf("line offset overflow: %w", err))
		}
		out = append(out, off)
	}
	return out
}

// position: номер строки равен числу '\n' строго до off.
func position(lineIdx []uint32, off uint32) LineCol {
	line, _ := slices.BinarySearch(lineIdx, off)
	var lineStart uint32
	if line > 0 {
		lineStart = lineIdx[line-1] + 1
	}
	return LineCol{Line: uint32(line) + 1, Col: off - lineStart + 1} // #nosec G115 -- line <= len(lineIdx)
}

func cleanPath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}
