package config

import (
	"fmt"
	"path/filepath"

	"github.com/gobwas/glob"
)

// CompileIgnores compiles the ignore glob patterns. Patterns use '/' as
// separator: grands-textes/** matches everything under that directory.
func CompileIgnores(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// Ignored reports whether path matches any compiled ignore pattern.
// Matching happens on the slash-separated form of the path.
func Ignored(path string, globs []glob.Glob) bool {
	slashed := filepath.ToSlash(path)
	for _, g := range globs {
		if g.Match(slashed) {
			return true
		}
	}
	return false
}
