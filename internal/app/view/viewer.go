package view

import (
	"strings"
	"time"

	"logdeck/internal/app/layout"
	"logdeck/internal/app/logs"
	"logdeck/internal/app/search"
	"logdeck/internal/config"
)

// Stats are the counters shown in the footer
type Stats struct {
	Retained   int
	Displayed  int
	Dropped    uint64
	Categories int
}

// Viewer builds the visible rows of one log view once per frame
type Viewer interface {
	Refresh() error
	Visible() int
	Row(i int) int
	Formatted(i int) layout.Line
	Record(i int) logs.Record
	Records() []logs.Record
	Clear() error
	Sort() error
	SetCategoryEnabled(category string, enabled bool) error
	SetMaxRetained(n int) error
	SetSearch(term string, caseSensitive, useRegex bool)
	SetLevel(level logs.Level, enabled bool)
	ToggleLevel(level logs.Level)
	Filter() *search.Filter
	Stats() Stats
	Categories() []logs.Category
	CopyText() string
}

type viewer struct {
	store     logs.Store
	filter    *search.Filter
	formatter layout.Formatter
	matches   *search.Cache
	lines     *layout.Cache

	cacheLayouts  bool
	timeout       time.Duration
	categoryLimit int
	timeFormat    string

	rows       []logs.Record
	generation uint64
	evicted    uint64
	synced     bool

	categoryVersion uint64
	categories      []logs.Category
	disabled        map[string]bool
	widths          layout.Widths

	visible []int
}

// NewViewer creates a viewer over store with the configured filter defaults
func NewViewer(cfg *config.Config, store logs.Store, formatter layout.Formatter) Viewer {
	return &viewer{
		store:         store,
		filter:        search.NewFilter(cfg),
		formatter:     formatter,
		matches:       search.NewCache(),
		lines:         layout.NewCache(),
		cacheLayouts:  cfg.View.EnableCacheLayouts,
		timeout:       cfg.View.LockTimeout,
		categoryLimit: cfg.View.CategoryMaxWidth,
		timeFormat:    cfg.View.TimeFormat,
		disabled:      make(map[string]bool),
	}
}

// Refresh runs one frame: trim, sync rows and caches, rebuild the visible list.
// On error the previous frame's rows stay available
func (v *viewer) Refresh() error {
	err := v.store.Do(v.timeout, func(tx *logs.Tx) {
		v.syncLocked(tx)
	})
	if err != nil {
		return err
	}

	v.extend()
	v.buildVisible()

	return nil
}

// syncLocked mirrors the store into rows. It is the only place the store lock is held
func (v *viewer) syncLocked(tx *logs.Tx) {
	if !v.synced || tx.Generation() != v.generation {
		v.reset()
		v.generation = tx.Generation()
		v.evicted = tx.Evicted()
		v.synced = true
	}

	tx.TrimFront(v.filter.MaxLogLength())

	if k := int(tx.Evicted() - v.evicted); k > 0 {
		v.trimFront(k)
		v.evicted = tx.Evicted()
	}

	v.rows = append(v.rows, tx.Since(len(v.rows))...)

	if version := tx.CategoriesVersion(); version != v.categoryVersion || v.categories == nil {
		v.categoryVersion = version
		v.categories = tx.Categories()

		clear(v.disabled)

		for _, c := range v.categories {
			if !c.Enabled {
				v.disabled[c.Name] = true
			}
		}
	}

	latest := tx.StartTime()
	if n := len(v.rows); n > 0 {
		latest = v.rows[n-1].Time
	}

	v.widths = layout.NewWidths(tx.MaxCategoryLen(), v.categoryLimit, tx.StartTime(), latest, v.timeFormat)
}

// trimFront drops the k oldest rows from every aligned structure
func (v *viewer) trimFront(k int) {
	if k >= len(v.rows) {
		clear(v.rows)
		v.rows = v.rows[:0]
	} else {
		n := copy(v.rows, v.rows[k:])
		clear(v.rows[n:])
		v.rows = v.rows[:n]
	}

	v.matches.TrimFront(k)
	v.lines.TrimFront(k)
}

// reset forgets every row after a clear or a foreign sort
func (v *viewer) reset() {
	clear(v.rows)
	v.rows = v.rows[:0]
	v.matches.Invalidate()
	v.lines.Reset()
}

// extend formats and matches the rows appended since the last frame
func (v *viewer) extend() {
	if v.cacheLayouts {
		for i := v.lines.Len(); i < len(v.rows); i++ {
			v.lines.Append(v.formatter.Format(v.rows[i], v.widths))
		}
	}

	v.matches.Sync(v.filter, len(v.rows), func(i int) string {
		return v.rows[i].Message
	})
}

// buildVisible collects the rows passing level, category and search filters
func (v *viewer) buildVisible() {
	v.visible = v.visible[:0]
	searching := v.filter.Term() != ""

	for i, r := range v.rows {
		if !v.filter.LevelEnabled(r.Level) || v.disabled[r.Category] {
			continue
		}

		if searching && !v.matches.At(i) {
			continue
		}

		v.visible = append(v.visible, i)
	}
}

// Visible returns the number of rows to display
func (v *viewer) Visible() int {
	return len(v.visible)
}

// Row returns the row index behind visible position i
func (v *viewer) Row(i int) int {
	return v.visible[i]
}

// Formatted returns the line of visible position i, formatting it now when layouts are not cached
func (v *viewer) Formatted(i int) layout.Line {
	row := v.visible[i]

	if v.cacheLayouts && row < v.lines.Len() {
		return v.lines.At(row)
	}

	return v.formatter.Format(v.rows[row], v.widths)
}

// Record returns the record of visible position i
func (v *viewer) Record(i int) logs.Record {
	return v.rows[v.visible[i]]
}

// Records returns the rows mirrored at the last refresh
func (v *viewer) Records() []logs.Record {
	records := make([]logs.Record, len(v.rows))
	copy(records, v.rows)

	return records
}

// Clear empties the store; every viewer resets on its next refresh
func (v *viewer) Clear() error {
	if err := v.store.Clear(v.timeout); err != nil {
		return err
	}

	return v.Refresh()
}

// Sort reorders the store and applies the same permutation to rows and caches
func (v *viewer) Sort() error {
	var perm []int

	err := v.store.Do(v.timeout, func(tx *logs.Tx) {
		v.syncLocked(tx)
		perm = tx.Sort()
		v.generation = tx.Generation()
	})
	if err != nil {
		return err
	}

	v.extend()

	sorted := make([]logs.Record, len(perm))
	for i, from := range perm {
		sorted[i] = v.rows[from]
	}

	v.rows = sorted
	v.matches.Permute(perm)
	v.lines.Permute(perm)

	v.extend()
	v.buildVisible()

	return nil
}

// SetCategoryEnabled shows or hides a category
func (v *viewer) SetCategoryEnabled(category string, enabled bool) error {
	if err := v.store.SetCategoryEnabled(category, enabled, v.timeout); err != nil {
		return err
	}

	return v.Refresh()
}

// SetMaxRetained changes the cap applied at the next refresh
func (v *viewer) SetMaxRetained(n int) error {
	return v.filter.SetMaxLogLength(n)
}

// SetSearch updates the search criteria; matches are recomputed at the next refresh
func (v *viewer) SetSearch(term string, caseSensitive, useRegex bool) {
	v.filter.SetSearch(term, caseSensitive, useRegex)
}

// SetLevel shows or hides a level
func (v *viewer) SetLevel(level logs.Level, enabled bool) {
	v.filter.SetLevel(level, enabled)
}

// ToggleLevel flips the visibility of a level
func (v *viewer) ToggleLevel(level logs.Level) {
	v.filter.ToggleLevel(level)
}

// Filter exposes the filter state for rendering
func (v *viewer) Filter() *search.Filter {
	return v.filter
}

// Stats returns the retained, displayed and dropped counters
func (v *viewer) Stats() Stats {
	return Stats{
		Retained:   len(v.rows),
		Displayed:  len(v.visible),
		Dropped:    v.store.Dropped(),
		Categories: len(v.categories),
	}
}

// Categories returns the categories seen at the last refresh
func (v *viewer) Categories() []logs.Category {
	categories := make([]logs.Category, len(v.categories))
	copy(categories, v.categories)

	return categories
}

// CopyText returns the plain text of every displayed row
func (v *viewer) CopyText() string {
	var sb strings.Builder

	for i := range v.visible {
		sb.WriteString(v.Formatted(i).Plain)
		sb.WriteByte('\n')
	}

	return sb.String()
}
