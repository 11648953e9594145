package lint

import "github.com/daxida/grs/internal/rule"

// Fix is a proposed replacement for a byte range within the text snapshot
// the diagnostic was derived from.
type Fix struct {
	Replacement string
	Range       TextRange
}

// Diagnostic is one reported condition: the rule that fired, the range to
// display, and an optional fix. Diagnostics live for a single check/apply
// cycle.
type Diagnostic struct {
	Kind  rule.Rule
	Range TextRange
	Fix   *Fix
}
