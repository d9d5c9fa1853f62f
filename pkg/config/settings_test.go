package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "local", s.APIMode, "local-first by default")
	assert.Equal(t, "medium", s.DefaultRiskProfile)
	assert.Equal(t, 14, s.TerminalFontSize)
	assert.True(t, s.AutoSaveAudit)
	assert.Contains(t, s.TruthRepoPath, ".truth")
}

func TestSettingsManager_LoadMissingFileReturnsDefaults(t *testing.T) {
	m := NewSettingsManagerAt(filepath.Join(t.TempDir(), "settings.json"))

	s, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestSettingsManager_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	m := NewSettingsManagerAt(path)

	err := m.UpdateSettings(func(s *AppSettings) {
		s.APIMode = "remote"
		s.TruthRepoPath = "/srv/truth"
	}, true)
	require.NoError(t, err)

	// A fresh manager sees the persisted values.
	fresh := NewSettingsManagerAt(path)
	s := fresh.GetSettings()
	assert.Equal(t, "remote", s.APIMode)
	assert.Equal(t, "/srv/truth", s.TruthRepoPath)
}

func TestSettingsManager_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_mode":"remote"}`), 0644))

	m := NewSettingsManagerAt(path)
	s := m.GetSettings()

	assert.Equal(t, "remote", s.APIMode)
	assert.Equal(t, "medium", s.DefaultRiskProfile, "unspecified fields keep defaults")
}

func TestSettingsManager_CorruptFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	m := NewSettingsManagerAt(path)
	s := m.GetSettings()
	assert.Equal(t, "local", s.APIMode)
}

func TestSettingsManager_UpdateWithoutSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	m := NewSettingsManagerAt(path)

	require.NoError(t, m.UpdateSettings(func(s *AppSettings) {
		s.DefaultRiskProfile = "high"
	}, false))

	assert.Equal(t, "high", m.GetSettings().DefaultRiskProfile)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "nothing written to disk")
}

func TestManager_EnvOverrides(t *testing.T) {
	m := NewManager()

	t.Setenv("TRUTHGIT_BIN", "/usr/local/bin/truthgit")
	assert.Equal(t, "/usr/local/bin/truthgit", m.GetStringWithDefault("TRUTHGIT_BIN", "truthgit"))
	assert.Equal(t, "truthgit", m.GetStringWithDefault("TRUTHGIT_MISSING", "truthgit"))

	t.Setenv("TRUTHGIT_TIMEOUT_SECONDS", "45")
	assert.Equal(t, 45, m.GetIntWithDefault("TRUTHGIT_TIMEOUT_SECONDS", 30))

	t.Setenv("TRUTHGIT_AUTO_AUDIT", "false")
	assert.False(t, m.GetBoolWithDefault("TRUTHGIT_AUTO_AUDIT", true))

	_, err := m.GetString("TRUTHGIT_MISSING")
	assert.Error(t, err)
}
