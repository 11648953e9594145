// Package output renders diagnostics, diffs and statistics for the CLI.
package output

import (
	"io"

	"github.com/daxida/grs/internal/lint"
)

// FileReport is everything a formatter needs to render the diagnostics
// of one checked file.
type FileReport struct {
	File        string
	Text        string
	Diagnostics []lint.Diagnostic
}

// Formatter defines the interface for outputting diagnostics.
type Formatter interface {
	Format(w io.Writer, rep FileReport) error
}
