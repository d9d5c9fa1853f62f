package types

import (
	"github.com/awesome-gocui/gocui"
)

type Component interface {
	GetKey() string
	GetView() *gocui.View
	GetViewName() string

	HandleFocus() error
	HandleFocusLost() error

	GetKeybindings() []*KeyBinding

	Render() error

	// UI properties that define how this component should be displayed
	GetWindowProperties() WindowProperties
	GetTitle() string
}

type Gui interface {
	GetGui() *gocui.Gui

	PostUIUpdate(func())
}

type KeyBinding struct {
	View    string
	Key     interface{}
	Mod     gocui.Modifier
	Handler func(*gocui.Gui, *gocui.View) error
}

type WindowProperties struct {
	Focusable  bool
	Editable   bool
	Wrap       bool
	Autoscroll bool
	Highlight  bool
	Frame      bool
}

// Theme holds the hex colors used across components.
type Theme struct {
	Prompt        string
	Error         string
	Warning       string
	Success       string
	Muted         string
	BorderDefault string
	BorderFocused string
	TitleDefault  string
	TitleFocused  string
}
