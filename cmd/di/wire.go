//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/lumensyntax-org/truthgit-desktop/cmd/events"
	"github.com/lumensyntax-org/truthgit-desktop/cmd/tui"
	internalDI "github.com/lumensyntax-org/truthgit-desktop/internal/di"
)

// Command-level providers shared between CLI and TUI

// Shared command event bus instance
var commandEventBus = events.NewCommandEventBus()

// ProvideCommandEventBus provides a shared command event bus instance
func ProvideCommandEventBus() *events.CommandEventBus {
	return commandEventBus
}

// ProvideApp provides an App instance with injected dependencies
func ProvideApp() (*tui.App, error) {
	settings, err := internalDI.ProvideSettingsManager()
	if err != nil {
		return nil, err
	}
	client, err := internalDI.InjectTruthGitClient()
	if err != nil {
		return nil, err
	}
	vaultService, err := internalDI.InjectVault()
	if err != nil {
		return nil, err
	}

	return tui.NewApp(
		settings,
		client,
		vaultService,
		internalDI.ProvideUpdater(),
		ProvideCommandEventBus(),
		internalDI.ProvideEventBus(),
	)
}

// InjectTUI is a wire injector function for creating the TUI
func InjectTUI() (*tui.TUI, error) {
	wire.Build(ProvideApp, tui.New)
	return nil, nil
}
