package component

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"

	"github.com/lumensyntax-org/truthgit-desktop/cmd/tui/types"
)

// StatusComponent is the single-line bar at the bottom: api mode and
// repository summary on the left, console state on the right.
type StatusComponent struct {
	*BaseComponent

	mu    sync.RWMutex
	left  string
	right string
}

func NewStatusComponent(gui types.Gui) *StatusComponent {
	c := &StatusComponent{
		BaseComponent: NewBaseComponent("status", "status", gui),
	}

	c.SetWindowProperties(types.WindowProperties{
		Focusable: false,
		Frame:     false,
	})
	c.right = "idle"

	return c
}

// SetLeft updates the mode/repository summary.
func (c *StatusComponent) SetLeft(text string) {
	c.mu.Lock()
	c.left = text
	c.mu.Unlock()
	c.gui.PostUIUpdate(func() { _ = c.Render() })
}

// SetRight updates the console state indicator.
func (c *StatusComponent) SetRight(text string) {
	c.mu.Lock()
	c.right = text
	c.mu.Unlock()
	c.gui.PostUIUpdate(func() { _ = c.Render() })
}

func (c *StatusComponent) Render() error {
	view := c.GetView()
	if view == nil {
		return nil
	}

	c.mu.RLock()
	left, right := c.left, c.right
	c.mu.RUnlock()

	width, _ := view.Size()
	view.Clear()
	fmt.Fprint(view, statusLine(width, left, right))
	return nil
}

// statusLine lays the two segments out with the right one pushed to the
// edge. Widths are display cells, not bytes, so multibyte paths and
// glyphs keep the alignment.
func statusLine(width int, left, right string) string {
	gap := width - runewidth.StringWidth(left) - runewidth.StringWidth(right) - 2
	if gap < 1 {
		gap = 1
	}
	return " " + left + strings.Repeat(" ", gap) + right
}
