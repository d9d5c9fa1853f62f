package layout

import (
	"github.com/awesome-gocui/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"

	"github.com/lumensyntax-org/truthgit-desktop/cmd/tui/types"
)

// Panel ties a component to its layout slot and gocui view.
type Panel struct {
	Name       string
	Component  types.Component
	Dimensions boxlayout.Dimensions
	View       *gocui.View
	Visible    bool
	gui        *gocui.Gui
}

func NewPanel(name string, component types.Component, gui *gocui.Gui) *Panel {
	return &Panel{
		Name:      name,
		Component: component,
		Visible:   true,
		gui:       gui,
	}
}

// CreateOrUpdateView creates the gocui view for this panel or resizes it
// to the latest dimensions.
func (p *Panel) CreateOrUpdateView() error {
	if p.Component == nil {
		return nil
	}

	viewName := p.Component.GetViewName()
	view, err := p.gui.SetView(viewName, p.Dimensions.X0, p.Dimensions.Y0,
		p.Dimensions.X1-1, p.Dimensions.Y1, 0)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}

	isNewView := err == gocui.ErrUnknownView
	p.View = view
	p.configureView()

	if isNewView {
		if comp, ok := p.Component.(interface{ SetView(*gocui.View) }); ok {
			comp.SetView(view)
		}
		if editable, ok := p.Component.(interface{ Editor() gocui.Editor }); ok {
			view.Editor = editable.Editor()
		}
		return p.setKeybindings()
	}

	return nil
}

func (p *Panel) setKeybindings() error {
	for _, kb := range p.Component.GetKeybindings() {
		if err := p.gui.SetKeybinding(kb.View, kb.Key, kb.Mod, kb.Handler); err != nil {
			return err
		}
	}
	return nil
}

func (p *Panel) configureView() {
	if p.View == nil || p.Component == nil {
		return
	}

	props := p.Component.GetWindowProperties()

	// Frameless views grow into the border cells they would have used.
	if !props.Frame {
		x0, y0, x1, y1 := p.View.Dimensions()
		p.gui.SetView(p.View.Name(), x0-1, y0-1, x1+1, y1+1, 0)
	}

	p.View.Title = p.Component.GetTitle()
	p.View.Editable = props.Editable
	p.View.Wrap = props.Wrap
	p.View.Autoscroll = props.Autoscroll
	p.View.Highlight = props.Highlight
	p.View.Frame = props.Frame
}

// Render repaints the panel's component if it is visible.
func (p *Panel) Render() error {
	if !p.Visible || p.Component == nil {
		return nil
	}

	if p.View == nil {
		if err := p.CreateOrUpdateView(); err != nil {
			return err
		}
	}

	return p.Component.Render()
}

// SetVisible shows or hides the panel, deleting the view on hide so the
// layout reclaims the space.
func (p *Panel) SetVisible(visible bool) {
	p.Visible = visible

	if !visible && p.View != nil {
		p.gui.DeleteView(p.View.Name())
		p.View = nil
	}
}

func (p *Panel) IsVisible() bool {
	return p.Visible
}
