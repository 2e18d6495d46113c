package layout

// Cache holds one formatted line per record, aligned with the viewer's rows
type Cache struct {
	lines []Line
}

// NewCache creates an empty layout cache
func NewCache() *Cache {
	return &Cache{}
}

// Len returns the number of formatted rows
func (c *Cache) Len() int {
	return len(c.lines)
}

// At returns the formatted line of row i
func (c *Cache) At(i int) Line {
	return c.lines[i]
}

// Append adds the line of the next row
func (c *Cache) Append(line Line) {
	c.lines = append(c.lines, line)
}

// TrimFront drops the lines of the k oldest rows
func (c *Cache) TrimFront(k int) {
	if k <= 0 {
		return
	}

	if k >= len(c.lines) {
		c.Reset()
		return
	}

	n := copy(c.lines, c.lines[k:])
	clear(c.lines[n:])
	c.lines = c.lines[:n]
}

// Permute reorders the lines so that new row i holds the line of old row perm[i]
func (c *Cache) Permute(perm []int) {
	if len(perm) != len(c.lines) {
		c.Reset()
		return
	}

	reordered := make([]Line, len(perm))
	for i, from := range perm {
		reordered[i] = c.lines[from]
	}

	c.lines = reordered
}

// Reset drops every line
func (c *Cache) Reset() {
	clear(c.lines)
	c.lines = c.lines[:0]
}
