package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// cursor is the selected row of a list of n items.
type cursor struct {
	idx int
}

// move handles up and down. It reports whether msg was a navigation key.
func (c *cursor) move(msg tea.KeyMsg, n int) bool {
	switch {
	case key.Matches(msg, keys.up):
		if c.idx > 0 {
			c.idx--
		}
		return true
	case key.Matches(msg, keys.down):
		if c.idx < n-1 {
			c.idx++
		}
		return true
	}
	return false
}

// clamp keeps the cursor inside a list that changed length.
func (c *cursor) clamp(n int) {
	if c.idx >= n {
		c.idx = n - 1
	}
	if c.idx < 0 {
		c.idx = 0
	}
}

func (c *cursor) valid(n int) bool {
	return c.idx >= 0 && c.idx < n
}
