package layout

import (
	"github.com/awesome-gocui/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"

	"github.com/lumensyntax-org/truthgit-desktop/cmd/tui/types"
)

// Panel names. The console owns the left column, the document panel the
// right, and the status line sits at the bottom.
const (
	PanelConsole  = "console"
	PanelDocument = "document"
	PanelStatus   = "status"
)

// TAB cycles through these. The status line is display-only.
var navigationOrder = []string{
	PanelConsole,
	PanelDocument,
}

type Manager struct {
	gui    *gocui.Gui
	panels map[string]*Panel

	lastWidth  int
	lastHeight int
}

func NewManager(gui *gocui.Gui) *Manager {
	return &Manager{
		gui:    gui,
		panels: make(map[string]*Panel),
	}
}

func (m *Manager) SetComponent(panelName string, component types.Component) {
	m.panels[panelName] = NewPanel(panelName, component, m.gui)
}

func (m *Manager) GetPanel(panelName string) *Panel {
	return m.panels[panelName]
}

// Layout is the gocui layout callback. It arranges the panels with
// boxlayout and re-renders on terminal resize so wrapping stays correct.
func (m *Manager) Layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if maxX <= 0 || maxY <= 0 {
		return nil
	}

	sizeChanged := m.lastWidth != maxX || m.lastHeight != maxY
	m.lastWidth = maxX
	m.lastHeight = maxY

	dimensions := boxlayout.ArrangeWindows(m.buildLayoutTree(), 0, 0, maxX, maxY)
	for panelName, dims := range dimensions {
		panel := m.panels[panelName]
		if panel == nil {
			continue
		}
		panel.Dimensions = dims
		if err := panel.CreateOrUpdateView(); err != nil {
			return err
		}
	}

	if sizeChanged {
		for _, panelName := range navigationOrder {
			if panel := m.panels[panelName]; panel != nil {
				panel.Render()
			}
		}
	}

	return nil
}

func (m *Manager) buildLayoutTree() *boxlayout.Box {
	columns := []*boxlayout.Box{}
	if m.isVisible(PanelConsole) {
		columns = append(columns, &boxlayout.Box{Window: PanelConsole, Weight: 2})
	}
	if m.isVisible(PanelDocument) {
		columns = append(columns, &boxlayout.Box{Window: PanelDocument, Weight: 1})
	}

	rows := []*boxlayout.Box{
		{
			Direction: boxlayout.COLUMN,
			Weight:    1,
			Children:  columns,
		},
	}
	if m.isVisible(PanelStatus) {
		rows = append(rows, &boxlayout.Box{Window: PanelStatus, Size: 1})
	}

	return &boxlayout.Box{
		Direction: boxlayout.ROW,
		Children:  rows,
	}
}

func (m *Manager) isVisible(panelName string) bool {
	panel := m.panels[panelName]
	return panel != nil && panel.IsVisible()
}

// FocusPanel moves focus to the named panel, running the focus
// transition hooks on both sides.
func (m *Manager) FocusPanel(panelName string) error {
	if current := m.currentPanel(); current != nil && current.Name != panelName {
		if current.Component != nil {
			current.Component.HandleFocusLost()
		}
	}

	panel := m.panels[panelName]
	if panel == nil || panel.Component == nil {
		return nil
	}

	view, err := m.gui.SetCurrentView(panel.Component.GetViewName())
	if err != nil {
		return err
	}

	m.gui.Cursor = panel.Component.GetWindowProperties().Editable
	if view != nil && view.Editable {
		view.SetCursor(0, 0)
	}

	return panel.Component.HandleFocus()
}

// FocusNext cycles focus through the navigable panels and returns the
// name of the newly focused one.
func (m *Manager) FocusNext() string {
	visible := []string{}
	for _, panelName := range navigationOrder {
		if m.isVisible(panelName) {
			visible = append(visible, panelName)
		}
	}
	if len(visible) == 0 {
		return ""
	}

	next := visible[0]
	if current := m.currentPanel(); current != nil {
		for i, panelName := range visible {
			if panelName == current.Name {
				next = visible[(i+1)%len(visible)]
				break
			}
		}
	}

	if err := m.FocusPanel(next); err != nil {
		return ""
	}
	return next
}

// ShowDocument makes the document panel visible and re-renders it.
func (m *Manager) ShowDocument() {
	if panel := m.panels[PanelDocument]; panel != nil && !panel.IsVisible() {
		panel.SetVisible(true)
	}
}

// HideDocument hides the document panel, returning focus to the console.
func (m *Manager) HideDocument() {
	if panel := m.panels[PanelDocument]; panel != nil && panel.IsVisible() {
		panel.SetVisible(false)
		m.FocusPanel(PanelConsole)
	}
}

func (m *Manager) currentPanel() *Panel {
	view := m.gui.CurrentView()
	if view == nil {
		return nil
	}
	for _, panel := range m.panels {
		if panel.Component != nil && panel.Component.GetViewName() == view.Name() {
			return panel
		}
	}
	return nil
}
