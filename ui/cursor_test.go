package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCursorSkipsDisabledAndWraps(t *testing.T) {
	c := NewCursor([]bool{false, true, false, true})
	assert.Equal(t, 1, c.Index())
	c.Move(1)
	assert.Equal(t, 3, c.Index())
	c.Move(1)
	assert.Equal(t, 1, c.Index(), "wraps to the first enabled")
	c.Move(-1)
	assert.Equal(t, 3, c.Index(), "wraps backwards")
	c.Set(2)
	assert.Equal(t, 3, c.Index(), "disabled entries cannot be set")
	c.Set(1)
	assert.Equal(t, 1, c.Index())
}

func TestCursorWithNothingEnabled(t *testing.T) {
	c := NewCursor([]bool{false, false})
	assert.Equal(t, -1, c.Index())
	c.Move(1)
	assert.Equal(t, -1, c.Index())
	assert.Equal(t, -1, NewCursor(nil).Index())
}

func TestCursorAlwaysOnAnEnabledEntry(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		enabled := rapid.SliceOfN(rapid.Bool(), 1, 8).Draw(t, "enabled")
		some := false
		for _, e := range enabled {
			some = some || e
		}
		c := NewCursor(enabled)
		moves := rapid.SliceOf(rapid.IntRange(-3, 3)).Draw(t, "moves")
		for _, m := range moves {
			c.Move(m)
			if !some {
				if c.Index() != -1 {
					t.Fatalf("index %d with nothing enabled", c.Index())
				}
				continue
			}
			if c.Index() < 0 || !enabled[c.Index()] {
				t.Fatalf("cursor on disabled entry %d of %v", c.Index(), enabled)
			}
		}
	})
}
