package search

import (
	"regexp"
	"strings"

	"logdeck/internal/app/errors"
	"logdeck/internal/app/logs"
	"logdeck/internal/config"
)

// Query is the part of the filter that decides whether a message matches
type Query struct {
	Term          string
	CaseSensitive bool
	UseRegex      bool
}

// Filter is the per-viewer filter state
type Filter struct {
	levels       [logs.LevelCount]bool
	query        Query
	allowRegex   bool
	regex        *regexp.Regexp
	folded       string
	maxLogLength int
}

// NewFilter creates a filter with the configured default levels, search flags and cap
func NewFilter(cfg *config.Config) *Filter {
	f := &Filter{
		allowRegex:   cfg.View.EnableRegex,
		maxLogLength: cfg.View.MaxLogLength,
	}

	for _, name := range cfg.View.Levels {
		if level, err := logs.ParseLevel(name); err == nil {
			f.SetLevel(level, true)
		}
	}

	f.SetSearch("", cfg.View.CaseSensitive, cfg.View.UseRegex)

	return f
}

// SetSearch updates the search criteria and recompiles the pattern
func (f *Filter) SetSearch(term string, caseSensitive, useRegex bool) {
	f.query = Query{
		Term:          term,
		CaseSensitive: caseSensitive,
		UseRegex:      useRegex && f.allowRegex,
	}

	f.regex = nil
	f.folded = ""

	switch {
	case f.query.UseRegex:
		pattern := term
		if !caseSensitive {
			pattern = "(?i)" + pattern
		}

		// invalid patterns match nothing
		if re, err := regexp.Compile(pattern); err == nil {
			f.regex = re
		}
	case !caseSensitive:
		f.folded = strings.ToLower(term)
	}
}

// Matches is the single search predicate applied to record messages
func (f *Filter) Matches(text string) bool {
	if f.query.UseRegex {
		return f.regex != nil && f.regex.MatchString(text)
	}

	if f.query.CaseSensitive {
		return strings.Contains(text, f.query.Term)
	}

	return strings.Contains(strings.ToLower(text), f.folded)
}

// Query returns the current search criteria
func (f *Filter) Query() Query {
	return f.query
}

// Term returns the current search term
func (f *Filter) Term() string {
	return f.query.Term
}

// CaseSensitive reports whether the search distinguishes case
func (f *Filter) CaseSensitive() bool {
	return f.query.CaseSensitive
}

// UseRegex reports whether the term is interpreted as a regular expression
func (f *Filter) UseRegex() bool {
	return f.query.UseRegex
}

// RegexAllowed reports whether regex search is enabled at all
func (f *Filter) RegexAllowed() bool {
	return f.allowRegex
}

// Valid is false when the term is a regular expression that failed to compile
func (f *Filter) Valid() bool {
	return !f.query.UseRegex || f.regex != nil
}

// SetLevel enables or disables a level
func (f *Filter) SetLevel(level logs.Level, enabled bool) {
	if i := level.Index(); i >= 0 {
		f.levels[i] = enabled
	}
}

// ToggleLevel flips a level
func (f *Filter) ToggleLevel(level logs.Level) {
	f.SetLevel(level, !f.LevelEnabled(level))
}

// LevelEnabled reports whether records at level are shown
func (f *Filter) LevelEnabled(level logs.Level) bool {
	i := level.Index()

	return i >= 0 && f.levels[i]
}

// MaxLogLength returns the retention cap
func (f *Filter) MaxLogLength() int {
	return f.maxLogLength
}

// SetMaxLogLength changes the retention cap; it must be positive
func (f *Filter) SetMaxLogLength(n int) error {
	if n <= 0 {
		return errors.ErrInvalidMaxLogLength
	}

	f.maxLogLength = n

	return nil
}
