package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/daxida/grs/internal/lint"
)

const (
	ctxMaxSpaces = 5
	ctxEllipsis  = "[…] "
)

// TextFormatter outputs one line per diagnostic: the rule code, a
// fixability marker, and the sentence around the error with the error
// itself highlighted. Colors honor the global color.NoColor switch.
type TextFormatter struct{}

func (f *TextFormatter) Format(w io.Writer, rep FileReport) error {
	for _, d := range rep.Diagnostics {
		fixable := "   "
		if d.Kind.HasFix() {
			fixable = "[" + color.CyanString("*") + "]"
		}
		_, err := fmt.Fprintf(w, "%-3s: %s %s\n",
			color.CyanString("%s", d.Kind.Code()), fixable, contextMessage(rep.Text, d.Range))
		if err != nil {
			return err
		}
	}
	return nil
}

// contextMessage renders the sentence around the range, highlighting the
// range itself in red. The context is cut at the nearest period or
// newline, or after a handful of words, whichever comes first.
//
// TODO: continue printing when the period turns out to be an ellipsis.
func contextMessage(text string, r lint.TextRange) string {
	ctxStart, ellipsisStart := contextBackward(text, r.Start())
	ctxEnd, ellipsisEnd := contextForward(text, r.End())

	prefix := text[ctxStart:r.Start()]
	highlighted := color.RedString("%s", text[r.Start():r.End()])
	suffix := text[r.End():ctxEnd]

	return strings.TrimSpace(ellipsisStart + prefix + highlighted + suffix + ellipsisEnd)
}

// The stop characters are all ASCII, so scanning bytes is safe.
func contextBackward(text string, start int) (int, string) {
	spaces := 0
	for i := start - 1; i >= 0; i-- {
		switch text[i] {
		case '.', '\n':
			return i + 1, ""
		case ' ':
			spaces++
			if spaces > ctxMaxSpaces {
				return i + 1, ctxEllipsis
			}
		}
	}
	return 0, ""
}

func contextForward(text string, end int) (int, string) {
	spaces := 0
	for i := end; i < len(text); i++ {
		switch text[i] {
		case '.', '\n':
			return i + 1, ""
		case ' ':
			spaces++
			if spaces > ctxMaxSpaces {
				return i + 1, ctxEllipsis
			}
		}
	}
	return len(text), ""
}
