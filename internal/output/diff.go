package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// CodeDiff renders the differences between the original and the
// corrected text: deletions in red, insertions in green, unchanged
// stretches omitted.
type CodeDiff struct {
	original string
	modified string
}

// NewCodeDiff builds a diff between two versions of a text.
func NewCodeDiff(original, modified string) *CodeDiff {
	return &CodeDiff{original: original, modified: modified}
}

// Format writes the change lines of the diff.
func (d *CodeDiff) Format(w io.Writer) error {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(d.original, d.modified, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	for _, df := range diffs {
		var err error
		switch df.Type {
		case diffmatchpatch.DiffDelete:
			_, err = fmt.Fprintf(w, "%s%s\n", color.RedString("-"), color.RedString("%s", df.Text))
		case diffmatchpatch.DiffInsert:
			_, err = fmt.Fprintf(w, "%s%s\n", color.GreenString("+"), color.GreenString("%s", df.Text))
		case diffmatchpatch.DiffEqual:
		}
		if err != nil {
			return err
		}
	}
	return nil
}
