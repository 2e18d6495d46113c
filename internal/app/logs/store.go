package logs

import (
	"slices"
	"sync/atomic"
	"time"

	"github.com/muesli/ansi"

	"logdeck/internal/app/errors"
)

// Store is the process-wide, append-only log record collection.
// Nothing in the store may log through the application logger: the logger feeds the store
type Store interface {
	Append(record Record, showByDefault bool, timeout time.Duration) error
	Do(timeout time.Duration, fn func(tx *Tx)) error
	Clear(timeout time.Duration) error
	SetCategoryEnabled(category string, enabled bool, timeout time.Duration) error
	Records(timeout time.Duration) ([]Record, error)
	Dropped() uint64
	AddDropped()
	Poisoned() bool
}

type store struct {
	sem      chan struct{}
	poisoned atomic.Bool
	dropped  atomic.Uint64

	records           []Record
	categories        map[string]bool
	categoryOrder     []string
	categoriesVersion uint64
	maxCategoryLen    int
	startTime         time.Time
	generation        uint64
	evicted           uint64
}

// NewStore creates an empty store
func NewStore() Store {
	return &store{
		sem:        make(chan struct{}, 1),
		categories: make(map[string]bool),
		startTime:  time.Now(),
	}
}

// Append pushes a record, registering its category on first sight
func (s *store) Append(record Record, showByDefault bool, timeout time.Duration) error {
	return s.Do(timeout, func(tx *Tx) {
		tx.append(record, showByDefault)
	})
}

// Do runs fn while holding the store lock. A panic inside fn poisons the store
func (s *store) Do(timeout time.Duration, fn func(tx *Tx)) error {
	if err := s.acquire(timeout); err != nil {
		return err
	}

	completed := false

	defer func() {
		if !completed {
			s.poisoned.Store(true)
		}

		<-s.sem
	}()

	fn(&Tx{s: s})

	completed = true

	return nil
}

// Clear removes every record; viewers notice through the generation counter
func (s *store) Clear(timeout time.Duration) error {
	return s.Do(timeout, func(tx *Tx) {
		tx.Clear()
	})
}

// SetCategoryEnabled changes the visibility of a known or new category
func (s *store) SetCategoryEnabled(category string, enabled bool, timeout time.Duration) error {
	return s.Do(timeout, func(tx *Tx) {
		tx.SetCategoryEnabled(category, enabled)
	})
}

// Records returns a copy of every retained record
func (s *store) Records(timeout time.Duration) ([]Record, error) {
	var records []Record

	err := s.Do(timeout, func(tx *Tx) {
		records = tx.Since(0)
	})

	return records, err
}

// Dropped returns how many events never reached the store
func (s *store) Dropped() uint64 {
	return s.dropped.Load()
}

// AddDropped counts one event that never reached the store
func (s *store) AddDropped() {
	s.dropped.Add(1)
}

// Poisoned reports whether a panic happened while the lock was held
func (s *store) Poisoned() bool {
	return s.poisoned.Load()
}

// acquire takes the lock without blocking when possible, then waits at most timeout
func (s *store) acquire(timeout time.Duration) error {
	if s.poisoned.Load() {
		return errors.ErrStorePoisoned
	}

	select {
	case s.sem <- struct{}{}:
	default:
		if timeout <= 0 {
			return errors.ErrStoreBusy
		}

		timer := time.NewTimer(timeout)
		defer timer.Stop()

		select {
		case s.sem <- struct{}{}:
		case <-timer.C:
			return errors.ErrStoreBusy
		}
	}

	if s.poisoned.Load() {
		<-s.sem
		return errors.ErrStorePoisoned
	}

	return nil
}

// Tx is the locked view of the store handed to Do callbacks. It must not escape the callback
type Tx struct {
	s *store
}

// Len returns the number of retained records
func (tx *Tx) Len() int {
	return len(tx.s.records)
}

// At returns the record at position i
func (tx *Tx) At(i int) Record {
	return tx.s.records[i]
}

// Since returns a copy of the records from position from onwards
func (tx *Tx) Since(from int) []Record {
	if from >= len(tx.s.records) {
		return nil
	}

	return slices.Clone(tx.s.records[from:])
}

// TrimFront evicts the oldest records so at most limit remain and returns how many were evicted
func (tx *Tx) TrimFront(limit int) int {
	excess := len(tx.s.records) - limit
	if limit < 0 || excess <= 0 {
		return 0
	}

	clear(tx.s.records[:excess])
	tx.s.records = tx.s.records[excess:]
	tx.s.evicted += uint64(excess)

	return excess
}

// Generation changes whenever record positions are invalidated as a whole (clear or sort)
func (tx *Tx) Generation() uint64 {
	return tx.s.generation
}

// Evicted returns the total number of records ever trimmed from the front
func (tx *Tx) Evicted() uint64 {
	return tx.s.evicted
}

// Clear drops every record but keeps the known categories
func (tx *Tx) Clear() {
	tx.s.records = nil
	tx.s.generation++
}

// Sort reorders the records by severity, then timestamp, then insertion order.
// It returns the permutation applied: new position i holds the record formerly at perm[i]
func (tx *Tx) Sort() []int {
	records := tx.s.records

	perm := make([]int, len(records))
	for i := range perm {
		perm[i] = i
	}

	slices.SortStableFunc(perm, func(a, b int) int {
		ra, rb := records[a], records[b]

		if ra.Level != rb.Level {
			return int(ra.Level) - int(rb.Level)
		}

		return ra.Time.Compare(rb.Time)
	})

	sorted := make([]Record, len(records))
	for i, from := range perm {
		sorted[i] = records[from]
	}

	tx.s.records = sorted
	tx.s.generation++

	return perm
}

// CategoriesVersion changes whenever a category is added or toggled
func (tx *Tx) CategoriesVersion() uint64 {
	return tx.s.categoriesVersion
}

// Categories returns the known categories in first-seen order
func (tx *Tx) Categories() []Category {
	categories := make([]Category, len(tx.s.categoryOrder))

	for i, name := range tx.s.categoryOrder {
		categories[i] = Category{Name: name, Enabled: tx.s.categories[name]}
	}

	return categories
}

// SetCategoryEnabled changes the visibility of a category
func (tx *Tx) SetCategoryEnabled(category string, enabled bool) {
	if current, ok := tx.s.categories[category]; ok && current == enabled {
		return
	}

	tx.register(category, enabled)
	tx.s.categories[category] = enabled
	tx.s.categoriesVersion++
}

// MaxCategoryLen returns the display width of the longest category seen so far
func (tx *Tx) MaxCategoryLen() int {
	return tx.s.maxCategoryLen
}

// StartTime returns when the store was created
func (tx *Tx) StartTime() time.Time {
	return tx.s.startTime
}

// append pushes a record without enforcing any cap
func (tx *Tx) append(record Record, showByDefault bool) {
	if _, ok := tx.s.categories[record.Category]; !ok {
		tx.register(record.Category, showByDefault)
		tx.s.categoriesVersion++
	}

	tx.s.records = append(tx.s.records, record)
}

// register records first sight of a category and widens the category column
func (tx *Tx) register(category string, enabled bool) {
	if _, ok := tx.s.categories[category]; ok {
		return
	}

	tx.s.categories[category] = enabled
	tx.s.categoryOrder = append(tx.s.categoryOrder, category)

	if width := ansi.PrintableRuneWidth(category); width > tx.s.maxCategoryLen {
		tx.s.maxCategoryLen = width
	}
}
