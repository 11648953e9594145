// Package log holds the verbose logger shared by the engine and the CLI.
package log

import (
	"fmt"
	"io"
)

// Logger gates verbose messages behind an Enabled flag. The zero value
// discards everything.
type Logger struct {
	Enabled bool
	W       io.Writer
}

// Printf formats a message and writes it to W with a trailing newline.
// Disabled loggers do nothing.
func (l *Logger) Printf(format string, args ...any) {
	if !l.Enabled {
		return
	}
	_, _ = fmt.Fprintf(l.W, format+"\n", args...)
}
