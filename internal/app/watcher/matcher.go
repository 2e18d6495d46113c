package watcher

import (
	"path/filepath"

	"github.com/gobwas/glob"
)

// editorArtifacts are temporary files editors write next to the file being saved
var editorArtifacts = []string{"*.swp", "*.swx", "*~", ".#*", "*.tmp"}

// Matcher decides whether a changed file name concerns the watched configuration
type Matcher interface {
	Match(path string) bool
}

type matcher struct {
	patterns []glob.Glob
	ignores  []glob.Glob
}

// NewMatcher creates a Matcher accepting base names matching includes, minus editor artifacts
func NewMatcher(includes ...string) (Matcher, error) {
	m := &matcher{
		patterns: make([]glob.Glob, 0, len(includes)),
		ignores:  make([]glob.Glob, 0, len(editorArtifacts)),
	}

	for _, p := range includes {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, err
		}

		m.patterns = append(m.patterns, g)
	}

	for _, p := range editorArtifacts {
		m.ignores = append(m.ignores, glob.MustCompile(p))
	}

	return m, nil
}

// Match reports whether the base name of path is watched
func (m *matcher) Match(path string) bool {
	name := filepath.Base(path)

	for _, ignore := range m.ignores {
		if ignore.Match(name) {
			return false
		}
	}

	for _, pattern := range m.patterns {
		if pattern.Match(name) {
			return true
		}
	}

	return false
}
