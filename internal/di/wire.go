//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/lumensyntax-org/truthgit-desktop/pkg/config"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/events"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/truthgit"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/update"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/vault"
)

// Shared event bus instance
var eventBus = events.NewEventBus()

// Shared settings manager (singleton)
var settingsManager *config.SettingsManager
var settingsError error
var settingsInitialized bool

func ProvideEventBus() events.EventBus {
	return eventBus
}

func ProvidePublisher() events.Publisher {
	return eventBus
}

func ProvideSubscriber() events.Subscriber {
	return eventBus
}

// ProvideSettingsManager provides the shared settings manager singleton
func ProvideSettingsManager() (*config.SettingsManager, error) {
	if !settingsInitialized {
		settingsManager, settingsError = config.NewSettingsManager()
		settingsInitialized = true
	}
	return settingsManager, settingsError
}

// ProvideConfigManager provides the environment configuration manager
func ProvideConfigManager() config.Manager {
	return config.NewManager()
}

// ProvideVault provides the vault service bound to the configured path
func ProvideVault(settings *config.SettingsManager) *vault.Vault {
	return vault.New(func() string {
		return settings.GetSettings().VaultPath
	})
}

// ProvideUpdater provides the self-updater. A nil updater disables the
// :update command instead of failing startup.
func ProvideUpdater() *update.Updater {
	updater, err := update.NewUpdater()
	if err != nil {
		return nil
	}
	return updater
}

// InjectTruthGitClient is a wire injector for the governance client
func InjectTruthGitClient() (*truthgit.Client, error) {
	wire.Build(ProvideSettingsManager, ProvideConfigManager, truthgit.NewClient)
	return nil, nil
}

// InjectVault is a wire injector for the vault service
func InjectVault() (*vault.Vault, error) {
	wire.Build(ProvideSettingsManager, ProvideVault)
	return nil, nil
}
