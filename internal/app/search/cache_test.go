package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logdeck/internal/config"
)

type counter struct {
	texts []string
	calls int
}

func (c *counter) text(i int) string {
	c.calls++
	return c.texts[i]
}

func flags(c *Cache) []bool {
	out := make([]bool, c.Len())
	for i := range out {
		out[i] = c.At(i)
	}

	return out
}

func Test_Cache_FirstSyncRebuilds(t *testing.T) {
	c := NewCache()
	f := NewFilter(config.DefaultConfig())

	assert.True(t, c.Stale())
	assert.True(t, c.Sync(f, 0, nil))
	assert.False(t, c.Stale())
	assert.Equal(t, 0, c.Len())
}

func Test_Cache_EmptyTermSkipsText(t *testing.T) {
	c := NewCache()
	f := NewFilter(config.DefaultConfig())
	src := &counter{texts: []string{"a", "b", "c"}}

	c.Sync(f, 3, src.text)

	assert.Equal(t, []bool{true, true, true}, flags(c))
	assert.Equal(t, 0, src.calls)
}

func Test_Cache_AppendOnly(t *testing.T) {
	c := NewCache()
	f := NewFilter(config.DefaultConfig())
	f.SetSearch("x", false, false)

	src := &counter{texts: []string{"x1", "y2", "x3", "y4"}}

	assert.True(t, c.Sync(f, 2, src.text))
	assert.Equal(t, 2, src.calls)

	assert.False(t, c.Sync(f, 4, src.text))
	assert.Equal(t, 4, src.calls)
	assert.Equal(t, []bool{true, false, true, false}, flags(c))

	assert.False(t, c.Sync(f, 4, src.text))
	assert.Equal(t, 4, src.calls)
}

func Test_Cache_RebuildOnQueryChange(t *testing.T) {
	tests := []struct {
		name   string
		change func(f *Filter)
	}{
		{name: "Term", change: func(f *Filter) { f.SetSearch("y", false, false) }},
		{name: "Case flag", change: func(f *Filter) { f.SetSearch("x", true, false) }},
		{name: "Regex flag", change: func(f *Filter) { f.SetSearch("x", false, true) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCache()
			f := NewFilter(config.DefaultConfig())
			f.SetSearch("x", false, false)

			src := &counter{texts: []string{"x1", "y2", "X3"}}
			c.Sync(f, 3, src.text)

			tt.change(f)

			assert.True(t, c.Sync(f, 3, src.text))
			assert.Equal(t, 6, src.calls)

			for i, text := range src.texts {
				assert.Equal(t, f.Matches(text), c.At(i))
			}
		})
	}
}

func Test_Cache_SameQueryDoesNotRebuild(t *testing.T) {
	c := NewCache()
	f := NewFilter(config.DefaultConfig())
	f.SetSearch("x", false, false)

	src := &counter{texts: []string{"x1"}}
	c.Sync(f, 1, src.text)

	f.SetSearch("x", false, false)

	assert.False(t, c.Sync(f, 1, src.text))
	assert.Equal(t, 1, src.calls)
}

func Test_Cache_TrimFront(t *testing.T) {
	c := NewCache()
	f := NewFilter(config.DefaultConfig())
	f.SetSearch("x", false, false)

	src := &counter{texts: []string{"x0", "y1", "x2", "y3"}}
	c.Sync(f, 4, src.text)

	c.TrimFront(0)
	assert.Equal(t, 4, c.Len())

	c.TrimFront(1)
	assert.Equal(t, []bool{false, true, false}, flags(c))

	c.TrimFront(10)
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.Stale())
}

func Test_Cache_Permute(t *testing.T) {
	c := NewCache()
	f := NewFilter(config.DefaultConfig())
	f.SetSearch("x", false, false)

	src := &counter{texts: []string{"x0", "y1", "y2"}}
	c.Sync(f, 3, src.text)

	c.Permute([]int{2, 0, 1})
	assert.Equal(t, []bool{false, true, false}, flags(c))

	c.Permute([]int{0})
	assert.True(t, c.Stale())
	assert.Equal(t, 0, c.Len())
}

func Test_Cache_Invalidate(t *testing.T) {
	c := NewCache()
	f := NewFilter(config.DefaultConfig())

	c.Sync(f, 2, nil)
	require.False(t, c.Stale())

	c.Invalidate()
	assert.True(t, c.Stale())
	assert.Equal(t, 0, c.Len())

	c.Invalidate()
	assert.True(t, c.Stale())

	assert.True(t, c.Sync(f, 2, nil))
	assert.Equal(t, 2, c.Len())
}
