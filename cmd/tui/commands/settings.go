package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/lumensyntax-org/truthgit-desktop/cmd/tui/presentation"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/config"
	"github.com/lumensyntax-org/truthgit-desktop/pkg/events"
)

func (h *Handler) registerSettings() {
	h.registry.Register(&Command{
		Name:        "settings",
		Description: "Show the current settings",
		Usage:       ":settings",
		Category:    "Settings",
		Handler:     h.settingsCommand,
	})
	h.registry.Register(&Command{
		Name:        "set",
		Description: "Change and persist one setting",
		Usage:       ":set <key> <value>",
		Category:    "Settings",
		Handler:     h.setCommand,
	})
}

func (h *Handler) settingsCommand(ctx context.Context, args []string) (string, error) {
	return presentation.FormatSettings(h.deps.Settings.GetSettings()), nil
}

func (h *Handler) setCommand(ctx context.Context, args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("usage: :set <key> <value>")
	}
	key, value := args[0], args[1]
	if !validSettingKey(key) {
		return "", fmt.Errorf("unknown setting %q, see :settings for the available keys", key)
	}

	err := h.deps.Settings.UpdateSettings(func(s *config.AppSettings) {
		switch key {
		case "vault_path":
			s.VaultPath = value
		case "truth_repo_path":
			s.TruthRepoPath = value
		case "api_mode":
			s.APIMode = value
		case "api_url":
			s.APIURL = value
		case "default_risk_profile":
			s.DefaultRiskProfile = value
		case "terminal_font_size":
			if size, convErr := strconv.Atoi(value); convErr == nil {
				s.TerminalFontSize = size
			}
		case "auto_save_audit":
			if b, convErr := strconv.ParseBool(value); convErr == nil {
				s.AutoSaveAudit = b
			}
		}
	}, true)
	if err != nil {
		return "", err
	}

	h.deps.Publisher.Publish("settings.changed", events.SettingsChangedEvent{})
	return fmt.Sprintf("%s = %s\n", key, value), nil
}

func validSettingKey(key string) bool {
	switch key {
	case "vault_path", "truth_repo_path", "api_mode", "api_url",
		"default_risk_profile", "terminal_font_size", "auto_save_audit":
		return true
	}
	return false
}
