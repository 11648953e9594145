// Package markdown extracts the prose of a Markdown document so the
// rules can check it without tripping over markup, and maps results back
// to positions in the original source.
package markdown

import (
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"

	"github.com/daxida/grs/internal/engine"
	"github.com/daxida/grs/internal/lint"
	"github.com/daxida/grs/internal/rule"
)

// Segment is one prose span of the original source.
type Segment struct {
	// Start is the byte offset of the span in the source.
	Start int
	// Text is the raw source bytes of the span.
	Text string
}

// Segments extracts the prose spans of a Markdown document: the text of
// every inline text node, excluding code spans. Code blocks carry no
// text nodes and are excluded by construction. Spans separated only by
// whitespace in the source are merged, whitespace included, so that
// rules needing context across a line break still see it.
func Segments(source []byte) []Segment {
	md := goldmark.New()
	doc := md.Parser().Parse(gtext.NewReader(source))

	var spans [][2]int
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if n.Kind() == ast.KindCodeSpan {
			return ast.WalkSkipChildren, nil
		}
		if t, ok := n.(*ast.Text); ok {
			if t.Segment.Start < t.Segment.Stop {
				spans = append(spans, [2]int{t.Segment.Start, t.Segment.Stop})
			}
		}
		return ast.WalkContinue, nil
	})

	var segments []Segment
	for _, span := range spans {
		if n := len(segments); n > 0 {
			last := &segments[n-1]
			end := last.Start + len(last.Text)
			if span[0] >= end && isWhitespace(source[end:span[0]]) {
				last.Text = string(source[last.Start:span[1]])
				continue
			}
		}
		segments = append(segments, Segment{
			Start: span[0],
			Text:  string(source[span[0]:span[1]]),
		})
	}
	return segments
}

func isWhitespace(b []byte) bool {
	for _, c := range b {
		if !unicode.IsSpace(rune(c)) {
			return false
		}
	}
	return true
}

// Check runs the checker over the prose segments of a Markdown source.
// Ranges are mapped back to positions in the full document.
func Check(c *engine.Checker, source []byte) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, seg := range Segments(source) {
		for _, d := range c.Check(seg.Text) {
			d.Range = d.Range.Shift(seg.Start)
			if d.Fix != nil {
				fix := *d.Fix
				fix.Range = fix.Range.Shift(seg.Start)
				d.Fix = &fix
			}
			diags = append(diags, d)
		}
	}
	return diags
}

// Fix applies the fixer to each prose segment, leaving the markup
// untouched. It returns the rewritten document, the per-rule counts of
// applied fixes, and whether any segment failed to converge.
func Fix(f *engine.Fixer, source []byte) (string, map[rule.Rule]int, bool) {
	var b strings.Builder
	b.Grow(len(source))

	counts := make(map[rule.Rule]int)
	aborted := false
	last := 0
	for _, seg := range Segments(source) {
		b.Write(source[last:seg.Start])
		res := f.Fix(seg.Text)
		b.WriteString(res.Text)
		for k, v := range res.Counts {
			counts[k] += v
		}
		aborted = aborted || res.Aborted
		last = seg.Start + len(seg.Text)
	}
	b.Write(source[last:])
	return b.String(), counts, aborted
}
