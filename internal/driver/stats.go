package driver

import (
	"sort"

	"jsgreen/internal/diag"
	"jsgreen/internal/green"
	"jsgreen/internal/kind"
)

// Summary aggregates a set of build results.
type Summary struct {
	Files     int
	Trees     int // files that produced a root
	Cached    int
	Bytes     int // fixture bytes read
	TextBytes int // bytes of reconstructed source text
	Tokens    int
	Nodes     int
	Unknown   int
	Fallbacks int
	Errors    int
	Warnings  int
	Infos     int
	Kinds     map[kind.Kind]int // node kinds present in the trees
}

// KindCount is one row of Summary.TopKinds.
type KindCount struct {
	Kind  kind.Kind
	Count int
}

// Summarize folds results into a Summary. Nil results are skipped.
func Summarize(results []*BuildResult) Summary {
	s := Summary{Kinds: make(map[kind.Kind]int)}
	for _, r := range results {
		if r == nil {
			continue
		}
		s.Files++
		if r.File != nil {
			s.Bytes += len(r.File.Content)
		}
		if r.Cached {
			s.Cached++
		}
		s.Tokens += r.Tokens
		s.Nodes += r.Stats.Nodes
		s.Unknown += r.Stats.Unknown
		s.Fallbacks += r.Stats.Fallbacks
		if r.Bag != nil {
			s.Errors += r.Bag.CountBySeverity(diag.SevError)
			s.Warnings += r.Bag.CountBySeverity(diag.SevWarning)
			s.Infos += r.Bag.CountBySeverity(diag.SevInfo)
		}
		if r.Root == nil {
			continue
		}
		s.Trees++
		s.TextBytes += r.Root.TextLen()
		green.Walk(r.Root, func(e green.Element) bool {
			if n, ok := e.(*green.Node); ok {
				s.Kinds[n.Kind()]++
				return true
			}
			return false
		}, nil)
	}
	return s
}

// TopKinds returns the n most frequent node kinds, ties broken by kind
// order. n <= 0 returns all of them.
func (s Summary) TopKinds(n int) []KindCount {
	out := make([]KindCount, 0, len(s.Kinds))
	for k, c := range s.Kinds {
		out = append(out, KindCount{Kind: k, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Kind < out[j].Kind
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
