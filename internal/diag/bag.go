package diag

import (
	"math"
	"sort"

	"jsgreen/internal/source"
)

// Bag collects diagnostics of one build up to a hard limit.
type Bag struct {
	items   []Diagnostic
	max     uint16
	dropped int
}

// NewBag создаёт мешок с лимитом limit; значения вне uint16 зажимаются.
func NewBag(limit int) *Bag {
	limit = min(math.MaxUint16, max(0, limit))
	return &Bag{
		items: make([]Diagnostic, 0, min(limit, 64)),
		max:   uint16(limit),
	}
}

// Add stores d unless the limit is reached; a rejected diagnostic is
// counted in Dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

// AddFrom adds the items of other under b's own limit and carries over
// what other had already dropped.
func (b *Bag) AddFrom(other *Bag) {
	for _, d := range other.items {
		b.Add(d)
	}
	b.dropped += other.dropped
}

// NoteDropped counts n diagnostics lost before they reached the bag, e.g.
// in a cache entry written by a capped build.
func (b *Bag) NoteDropped(n int) {
	b.dropped += max(n, 0)
}

func (b *Bag) Cap() uint16 { return b.max }

// Dropped returns how many diagnostics Add rejected.
func (b *Bag) Dropped() int { return b.dropped }

func (b *Bag) Len() int { return len(b.items) }

// Items возвращает внутренний срез; не модифицируйте его.
func (b *Bag) Items() []Diagnostic { return b.items }

func (b *Bag) HasErrors() bool { return b.atLeast(SevError) }

func (b *Bag) HasWarnings() bool { return b.atLeast(SevWarning) }

func (b *Bag) atLeast(sev Severity) bool {
	for i := range b.items {
		if b.items[i].Severity >= sev {
			return true
		}
	}
	return false
}

// CountBySeverity returns the number of diagnostics with exactly sev.
func (b *Bag) CountBySeverity(sev Severity) int {
	n := 0
	for i := range b.items {
		if b.items[i].Severity == sev {
			n++
		}
	}
	return n
}

// Filter returns a new bag with the diagnostics of at least sev.
func (b *Bag) Filter(sev Severity) *Bag {
	out := NewBag(int(b.max))
	for _, d := range b.items {
		if d.Severity >= sev {
			out.items = append(out.items, d)
		}
	}
	out.dropped = b.dropped
	return out
}

// Merge appends other, raising the limit so that everything fits.
func (b *Bag) Merge(other *Bag) {
	total := min(len(b.items)+len(other.items), math.MaxUint16)
	if total > int(b.max) {
		b.max = uint16(total)
	}
	b.items = append(b.items, other.items...)
	b.dropped += other.dropped
}

// Sort orders by file, start, end, then severity (errors first) and code.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		pi, pj := b.items[i].Primary, b.items[j].Primary
		switch {
		case pi.File != pj.File:
			return pi.File < pj.File
		case pi.Start != pj.Start:
			return pi.Start < pj.Start
		case pi.End != pj.End:
			return pi.End < pj.End
		case b.items[i].Severity != b.items[j].Severity:
			return b.items[i].Severity > b.items[j].Severity
		}
		return b.items[i].Code < b.items[j].Code
	})
}

// Dedup drops repeats of the same code, span and message, keeping the first.
func (b *Bag) Dedup() {
	type key struct {
		code Code
		span source.Span
		msg  string
	}
	seen := make(map[key]struct{}, len(b.items))
	kept := b.items[:0]
	for _, d := range b.items {
		k := key{d.Code, d.Primary, d.Message}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		kept = append(kept, d)
	}
	clear(b.items[len(kept):])
	b.items = kept
}
