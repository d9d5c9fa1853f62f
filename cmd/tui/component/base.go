package component

import (
	"sync"

	"github.com/awesome-gocui/gocui"

	"github.com/lumensyntax-org/truthgit-desktop/cmd/tui/presentation"
	"github.com/lumensyntax-org/truthgit-desktop/cmd/tui/types"
)

type BaseComponent struct {
	key      string
	viewName string
	view     *gocui.View
	gui      types.Gui

	onFocus     func() error
	onFocusLost func() error

	title            string
	windowProperties types.WindowProperties

	// Protects title and other UI properties
	mu sync.RWMutex
}

func NewBaseComponent(key, viewName string, gui types.Gui) *BaseComponent {
	return &BaseComponent{
		key:      key,
		viewName: viewName,
		gui:      gui,
		windowProperties: types.WindowProperties{
			Focusable: true,
			Wrap:      true,
			Highlight: true,
			Frame:     true,
		},
	}
}

func (c *BaseComponent) GetKey() string {
	return c.key
}

func (c *BaseComponent) GetViewName() string {
	return c.viewName
}

func (c *BaseComponent) GetView() *gocui.View {
	if c.view == nil && c.gui != nil && c.gui.GetGui() != nil {
		c.view, _ = c.gui.GetGui().View(c.viewName)
	}
	return c.view
}

func (c *BaseComponent) SetView(v *gocui.View) {
	c.view = v
}

func (c *BaseComponent) HandleFocus() error {
	c.applyBorderColors(true)

	if c.onFocus != nil {
		return c.onFocus()
	}
	return nil
}

func (c *BaseComponent) HandleFocusLost() error {
	c.applyBorderColors(false)

	if c.onFocusLost != nil {
		return c.onFocusLost()
	}
	return nil
}

func (c *BaseComponent) GetKeybindings() []*types.KeyBinding {
	return []*types.KeyBinding{}
}

func (c *BaseComponent) Render() error {
	c.applyBorderColors(false)
	return nil
}

func (c *BaseComponent) SetOnFocus(fn func() error) {
	c.onFocus = fn
}

func (c *BaseComponent) SetOnFocusLost(fn func() error) {
	c.onFocusLost = fn
}

func (c *BaseComponent) GetWindowProperties() types.WindowProperties {
	return c.windowProperties
}

func (c *BaseComponent) SetWindowProperties(props types.WindowProperties) {
	c.windowProperties = props
}

func (c *BaseComponent) GetTitle() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.title
}

func (c *BaseComponent) SetTitle(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.title = title
}

// applyBorderColors overrides the global frame colors for this view
// based on focus state.
func (c *BaseComponent) applyBorderColors(focused bool) {
	view := c.GetView()
	if view == nil || !c.windowProperties.Frame {
		return
	}

	theme := presentation.DefaultTheme
	if focused {
		view.FrameColor = presentation.GetThemeColor(theme.BorderFocused)
		view.TitleColor = presentation.GetThemeColor(theme.TitleFocused)
	} else {
		view.FrameColor = presentation.GetThemeColor(theme.BorderDefault)
		view.TitleColor = presentation.GetThemeColor(theme.TitleDefault)
	}
}
