package source

import (
	"fmt"
	"math"
)

// Span is the half-open byte range [Start, End) of one file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

// MakeSpan converts int offsets, clamping them to [0, MaxUint32] and End
// to at least Start.
func MakeSpan(file FileID, start, end int) Span {
	s := clampOffset(start)
	return Span{File: file, Start: s, End: max(s, clampOffset(end))}
}

// PointAt is the empty span at off, used for things that are missing.
func PointAt(file FileID, off int) Span { return MakeSpan(file, off, off) }

func clampOffset(off int) uint32 {
	switch {
	case off < 0:
		return 0
	case uint64(off) > math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(off)
}

func (s Span) Empty() bool { return s.Start == s.End }

func (s Span) Len() uint32 { return s.End - s.Start }

func (s Span) String() string { return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End) }

// Cover returns the smallest span holding s and other; spans of different
// files are not merged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	s.Start = min(s.Start, other.Start)
	s.End = max(s.End, other.End)
	return s
}

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return s.File == other.File && s.Start <= other.Start && other.End <= s.End
}
