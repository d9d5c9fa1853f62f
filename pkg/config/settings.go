package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/mitchellh/go-homedir"
)

// AppSettings is the persisted application configuration. Field names
// match the settings.json layout shared with the desktop frontend.
type AppSettings struct {
	VaultPath          string `json:"vault_path"`
	TruthRepoPath      string `json:"truth_repo_path"`
	APIMode            string `json:"api_mode"` // "local" or "remote"
	APIURL             string `json:"api_url"`
	DefaultRiskProfile string `json:"default_risk_profile"`
	TerminalFontSize   int    `json:"terminal_font_size"`
	AutoSaveAudit      bool   `json:"auto_save_audit"`
}

const defaultAPIURL = "https://truthgit-api-342668283383.us-central1.run.app"

// DefaultSettings returns the local-first defaults. No remote API calls
// happen unless the user flips api_mode to "remote".
func DefaultSettings() *AppSettings {
	home, err := homedir.Dir()
	if err != nil {
		home = "."
	}
	return &AppSettings{
		VaultPath:          filepath.Join(home, "Documents", "Obsidian"),
		TruthRepoPath:      filepath.Join(home, ".truth"),
		APIMode:            "local",
		APIURL:             defaultAPIURL,
		DefaultRiskProfile: "medium",
		TerminalFontSize:   14,
		AutoSaveAudit:      true,
	}
}

// SettingsManager owns settings.json with lazy loading and thread-safe
// access.
type SettingsManager struct {
	settingsPath string
	settings     *AppSettings
	loaded       bool
	mu           sync.RWMutex
}

// NewSettingsManager places settings.json under the user config
// directory, creating the truthgit subdirectory if needed.
func NewSettingsManager() (*SettingsManager, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(configDir, "truthgit")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	return &SettingsManager{
		settingsPath: filepath.Join(dir, "settings.json"),
	}, nil
}

// NewSettingsManagerAt uses an explicit settings file path. Used by
// tests and the --config flag.
func NewSettingsManagerAt(path string) *SettingsManager {
	return &SettingsManager{settingsPath: path}
}

// Load reads settings from disk, falling back to defaults when the file
// does not exist yet.
func (m *SettingsManager) Load() (*AppSettings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(m.settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to disk.
func (m *SettingsManager) Save(settings *AppSettings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(m.settingsPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(m.settingsPath, data, 0644)
}

// GetSettings returns the current settings (thread-safe with lazy loading)
func (m *SettingsManager) GetSettings() *AppSettings {
	m.mu.RLock()
	if m.loaded {
		defer m.mu.RUnlock()
		return m.settings
	}
	m.mu.RUnlock()

	// Need to load - upgrade to write lock
	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check in case another goroutine loaded while we waited
	if m.loaded {
		return m.settings
	}

	settings, err := m.Load()
	if err != nil {
		// A corrupt file must not take the app down; run on defaults.
		settings = DefaultSettings()
	}

	m.settings = settings
	m.loaded = true
	return m.settings
}

// UpdateSettings applies fn to the settings and optionally persists the
// result (thread-safe).
func (m *SettingsManager) UpdateSettings(fn func(*AppSettings), save bool) error {
	_ = m.GetSettings()

	m.mu.Lock()
	defer m.mu.Unlock()

	fn(m.settings)

	if save {
		return m.Save(m.settings)
	}
	return nil
}

// Reload re-reads settings from disk (thread-safe)
func (m *SettingsManager) Reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	settings, err := m.Load()
	if err != nil {
		return err
	}
	m.settings = settings
	m.loaded = true
	return nil
}

// Path returns the settings file location.
func (m *SettingsManager) Path() string {
	return m.settingsPath
}
