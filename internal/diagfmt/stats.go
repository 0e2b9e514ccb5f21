package diagfmt

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"jsgreen/internal/driver"
)

// SummaryOpts configures FormatSummary.
type SummaryOpts struct {
	TopKinds int // rows of the kind histogram; 0 hides it
	Cache    *driver.CacheCounters
}

// FormatSummary prints aggregate build statistics.
func FormatSummary(w io.Writer, s driver.Summary, opts SummaryOpts) error {
	rows := []struct {
		label string
		value string
	}{
		{"files", humanize.Comma(int64(s.Files))},
		{"trees", humanize.Comma(int64(s.Trees))},
		{"fixture size", humanize.Bytes(uint64(max(s.Bytes, 0)))},
		{"source text", humanize.Bytes(uint64(max(s.TextBytes, 0)))},
		{"tokens", humanize.Comma(int64(s.Tokens))},
		{"nodes", humanize.Comma(int64(s.Nodes))},
		{"unknown nodes", fmt.Sprintf("%s (%s)", humanize.Comma(int64(s.Unknown)), percent(s.Unknown, s.Nodes))},
		{"fallbacks", humanize.Comma(int64(s.Fallbacks))},
		{"diagnostics", fmt.Sprintf("%d errors, %d warnings, %d infos", s.Errors, s.Warnings, s.Infos)},
	}
	if opts.Cache != nil {
		c := opts.Cache
		rows = append(rows, struct {
			label string
			value string
		}{"cache", fmt.Sprintf("%d memory hits, %d disk hits, %d misses", c.MemHits, c.DiskHits, c.Misses)})
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-14s %s\n", r.label+":", r.value); err != nil {
			return err
		}
	}

	if opts.TopKinds <= 0 || len(s.Kinds) == 0 {
		return nil
	}
	fmt.Fprintln(w, "kinds:")
	for _, kc := range s.TopKinds(opts.TopKinds) {
		if _, err := fmt.Fprintf(w, "  %-44s %s\n", kc.Kind, humanize.Comma(int64(kc.Count))); err != nil {
			return err
		}
	}
	return nil
}

func percent(part, whole int) string {
	if whole == 0 {
		return "0%"
	}
	return humanize.FtoaWithDigits(float64(part)*100/float64(whole), 1) + "%"
}
