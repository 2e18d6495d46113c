package search

import (
	"context"

	"github.com/looplab/fsm"
)

// Cache states
const (
	Synced = "synced"
	Stale  = "stale"
)

// Cache events
const (
	Invalidate = "invalidate"
	Rebuild    = "rebuild"
)

// Cache callbacks
const (
	OnStale = "enter_stale"
)

// Cache holds one match flag per record, aligned with the viewer's rows
type Cache struct {
	matches []bool
	query   Query
	state   *fsm.FSM
}

// NewCache creates an empty cache that rebuilds on its first sync
func NewCache() *Cache {
	c := &Cache{}

	c.state = fsm.NewFSM(
		Stale,
		fsm.Events{
			{Name: Invalidate, Src: []string{Synced}, Dst: Stale},
			{Name: Rebuild, Src: []string{Stale}, Dst: Synced},
		},
		fsm.Callbacks{
			OnStale: func(ctx context.Context, e *fsm.Event) {
				c.matches = c.matches[:0]
			},
		},
	)

	return c
}

// Len returns the number of records processed so far
func (c *Cache) Len() int {
	return len(c.matches)
}

// At returns the match flag of row i
func (c *Cache) At(i int) bool {
	return c.matches[i]
}

// Stale reports whether the next sync rebuilds every flag
func (c *Cache) Stale() bool {
	return c.state.Is(Stale)
}

// Invalidate drops every flag; the next sync recomputes them all
func (c *Cache) Invalidate() {
	if c.state.Is(Synced) {
		_ = c.state.Event(context.Background(), Invalidate)
	}
}

// TrimFront drops the flags of the k oldest rows
func (c *Cache) TrimFront(k int) {
	if k <= 0 {
		return
	}

	if k >= len(c.matches) {
		c.matches = c.matches[:0]
		return
	}

	c.matches = append(c.matches[:0], c.matches[k:]...)
}

// Permute reorders the flags so that new row i holds the flag of old row perm[i]
func (c *Cache) Permute(perm []int) {
	if len(perm) != len(c.matches) {
		c.Invalidate()
		return
	}

	reordered := make([]bool, len(perm))
	for i, from := range perm {
		reordered[i] = c.matches[from]
	}

	c.matches = reordered
}

// Sync brings the cache to n rows, appending flags for new rows or rebuilding
// every flag when the query changed. It returns true when it rebuilt
func (c *Cache) Sync(filter *Filter, n int, text func(i int) string) bool {
	if q := filter.Query(); q != c.query {
		c.query = q
		c.Invalidate()
	}

	rebuilt := c.state.Is(Stale)

	if len(c.matches) > n {
		c.matches = c.matches[:n]
	}

	if c.query.Term == "" {
		for i := len(c.matches); i < n; i++ {
			c.matches = append(c.matches, true)
		}
	} else {
		for i := len(c.matches); i < n; i++ {
			c.matches = append(c.matches, filter.Matches(text(i)))
		}
	}

	if rebuilt {
		_ = c.state.Event(context.Background(), Rebuild)
	}

	return rebuilt
}
