package tui

import (
	"github.com/awesome-gocui/gocui"
)

type TUI struct {
	app *App
}

func New(app *App) *TUI {
	return &TUI{app: app}
}

func (t *TUI) Start() error {
	err := t.app.Run()
	if err == gocui.ErrQuit {
		return nil
	}
	return err
}

func (t *TUI) Stop() {
	t.app.Close()
}
