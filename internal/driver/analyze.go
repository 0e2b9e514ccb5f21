package driver

import (
	"fmt"
	"strings"

	"jsgreen/internal/diag"
	"jsgreen/internal/factory"
	"jsgreen/internal/green"
	"jsgreen/internal/source"
)

// Analyze reports structural problems of a built tree against text, the
// file that holds root.Text():
//   - unknown nodes (outermost only, their subtrees are not inspected);
//   - shaped nodes with required slots left absent;
//   - absent items and separators of separated lists.
func Analyze(root *green.Node, text source.FileID, r diag.Reporter) {
	if root == nil || r == nil {
		return
	}
	green.WalkOffsets(root, func(o green.Offset) bool {
		n, ok := o.Elem.(*green.Node)
		if !ok {
			return false
		}
		k := n.Kind()
		if k.IsUnknown() {
			diag.ReportWarning(r, diag.SynUnknownNode, nodeSpan(text, n, o.Start),
				fmt.Sprintf("%s holds %d children that match no shape", k, len(n.Children()))).Emit()
			return false
		}
		if sh := factory.ShapeOf(k); sh != nil {
			if missing := sh.MissingRequired(n); len(missing) > 0 {
				diag.ReportInfo(r, diag.SynMissingRequired, nodeSpan(text, n, o.Start),
					fmt.Sprintf("%s is missing %s", k, strings.Join(missing, ", "))).Emit()
			}
		}
		if cfg := factory.SeparatedListOf(k); cfg != nil {
			analyzeSeparated(n, *cfg, text, o.Start, r)
		}
		return true
	})
}

func analyzeSeparated(n *green.Node, cfg factory.SeparatedListConfig, text source.FileID, start int, r diag.Reporter) {
	off := start
	for i, s := range n.Slots() {
		if s != nil {
			off += s.TextLen()
			continue
		}
		at := source.PointAt(text, off)
		if i%2 == 0 {
			diag.ReportInfo(r, diag.SynMissingListItem, at,
				fmt.Sprintf("%s: item %d is missing", n.Kind(), i/2)).Emit()
		} else {
			diag.ReportInfo(r, diag.SynMissingListSep, at,
				fmt.Sprintf("%s: expected %q before item %d", n.Kind(), cfg.Separator.Text(), i/2+1)).Emit()
		}
	}
}

// nodeSpan covers the node text without the leading trivia of its first
// token and the trailing trivia of its last.
func nodeSpan(file source.FileID, n *green.Node, start int) source.Span {
	end := start + n.TextLen()
	toks := green.Tokens(n)
	if len(toks) > 0 {
		start += toks[0].LeadingLen()
		last := toks[len(toks)-1]
		end -= last.TextLen() - last.LeadingLen() - len(last.TokenText())
	}
	return source.MakeSpan(file, start, end)
}
