package component

import (
	"fmt"
	"sync"

	"github.com/awesome-gocui/gocui"

	"github.com/lumensyntax-org/truthgit-desktop/cmd/tui/presentation"
	"github.com/lumensyntax-org/truthgit-desktop/cmd/tui/types"
)

// TextViewerComponent shows documents next to the console: claim
// listings, notes, search results, help. Markdown content goes through
// glamour at render time so it re-wraps on resize.
type TextViewerComponent struct {
	*BaseComponent
	renderer *presentation.MarkdownRenderer

	mu       sync.RWMutex
	content  string
	markdown bool
}

func NewTextViewerComponent(gui types.Gui) *TextViewerComponent {
	c := &TextViewerComponent{
		BaseComponent: NewBaseComponent("viewer", "viewer", gui),
		renderer:      presentation.NewMarkdownRenderer(),
	}

	c.SetTitle(" Documents ")
	c.SetWindowProperties(types.WindowProperties{
		Focusable: true,
		Wrap:      true,
		Frame:     true,
	})

	return c
}

// SetContent replaces the document and scrolls back to the top.
func (c *TextViewerComponent) SetContent(title, content string, markdown bool) {
	c.mu.Lock()
	c.content = content
	c.markdown = markdown
	c.mu.Unlock()

	c.SetTitle(fmt.Sprintf(" %s ", title))
	c.gui.PostUIUpdate(func() {
		if view := c.GetView(); view != nil {
			_ = view.SetOrigin(0, 0)
		}
		_ = c.Render()
	})
}

func (c *TextViewerComponent) Render() error {
	if err := c.BaseComponent.Render(); err != nil {
		return err
	}

	view := c.GetView()
	if view == nil {
		return nil
	}

	c.mu.RLock()
	content, markdown := c.content, c.markdown
	c.mu.RUnlock()

	view.Title = c.GetTitle()
	view.Clear()
	if markdown {
		width, _ := view.Size()
		content = c.renderer.Render(content, width-1)
	}
	fmt.Fprint(view, content)
	return nil
}

// ScrollLines moves the viewport by delta lines, clamped at the top.
func (c *TextViewerComponent) ScrollLines(delta int) {
	view := c.GetView()
	if view == nil {
		return
	}

	ox, oy := view.Origin()
	oy += delta
	if oy < 0 {
		oy = 0
	}
	_ = view.SetOrigin(ox, oy)
}

// ScrollPage moves the viewport by one view height in the given
// direction.
func (c *TextViewerComponent) ScrollPage(direction int) {
	view := c.GetView()
	if view == nil {
		return
	}
	_, height := view.Size()
	c.ScrollLines(direction * height)
}

func (c *TextViewerComponent) GetKeybindings() []*types.KeyBinding {
	return []*types.KeyBinding{
		{
			View: c.GetViewName(), Key: gocui.KeyPgup, Mod: gocui.ModNone,
			Handler: func(*gocui.Gui, *gocui.View) error {
				c.ScrollPage(-1)
				return nil
			},
		},
		{
			View: c.GetViewName(), Key: gocui.KeyPgdn, Mod: gocui.ModNone,
			Handler: func(*gocui.Gui, *gocui.View) error {
				c.ScrollPage(1)
				return nil
			},
		},
		{
			View: c.GetViewName(), Key: gocui.KeyArrowUp, Mod: gocui.ModNone,
			Handler: func(*gocui.Gui, *gocui.View) error {
				c.ScrollLines(-1)
				return nil
			},
		},
		{
			View: c.GetViewName(), Key: gocui.KeyArrowDown, Mod: gocui.ModNone,
			Handler: func(*gocui.Gui, *gocui.View) error {
				c.ScrollLines(1)
				return nil
			},
		},
	}
}
