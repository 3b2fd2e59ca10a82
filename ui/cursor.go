package ui

// Cursor tracks the highlighted entry of a vertical list, skipping disabled
// entries and wrapping at both ends.
type Cursor struct {
	index   int
	enabled []bool
}

// NewCursor starts on the first enabled entry. With none enabled Index is -1.
func NewCursor(enabled []bool) *Cursor {
	c := &Cursor{index: -1, enabled: enabled}
	c.Move(1)
	return c
}

// Index returns the highlighted entry, -1 when nothing can be selected.
func (c *Cursor) Index() int {
	return c.index
}

// Move steps delta entries (sign only) to the next enabled one.
func (c *Cursor) Move(delta int) {
	n := len(c.enabled)
	if n == 0 || delta == 0 {
		return
	}
	step := 1
	if delta < 0 {
		step = -1
	}
	i := c.index
	if i < 0 && step < 0 {
		i = 0
	}
	for tries := 0; tries < n; tries++ {
		i = ((i+step)%n + n) % n
		if c.enabled[i] {
			c.index = i
			return
		}
	}
}

// Set highlights entry i if it is enabled.
func (c *Cursor) Set(i int) {
	if i >= 0 && i < len(c.enabled) && c.enabled[i] {
		c.index = i
	}
}
