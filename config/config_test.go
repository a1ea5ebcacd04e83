package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at a temp dir and clears MAGICCHAT_* so the tests
// never touch the real config.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	for _, v := range []string{"MAGICCHAT_DATA_DIR", "MAGICCHAT_ENDPOINT", "MAGICCHAT_TIMEOUT_SECONDS", "MAGICCHAT_DEBUG"} {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
	return home
}

func TestLoad_FirstRunCreatesTemplates(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, time.Duration(0), cfg.Timeout())
	assert.Equal(t, filepath.Join(home, ".local", "share", "magicchat"), cfg.DataDir())
	require.NotNil(t, cfg.Keybindings)

	assert.FileExists(t, filepath.Join(home, ".config", "magicchat", "settings.toml"))
	assert.FileExists(t, filepath.Join(cfg.DataDir(), "config.toml"))
	assert.FileExists(t, filepath.Join(cfg.DataDir(), "keybindings.toml"))

	info, err := os.Stat(cfg.DataDir())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestLoad_UserConfigValues(t *testing.T) {
	isolate(t)
	dataDir := filepath.Join(t.TempDir(), "data")
	t.Setenv("MAGICCHAT_DATA_DIR", dataDir)

	require.NoError(t, SaveUserConfig(&UserConfig{
		MagicLoops: MagicLoopsConfig{
			Endpoint:       "https://example.test/run",
			TimeoutSeconds: 30,
		},
	}, dataDir))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://example.test/run", cfg.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, dataDir, cfg.DataDir())
}

func TestLoad_EnvOverridesFiles(t *testing.T) {
	isolate(t)
	dataDir := t.TempDir()
	t.Setenv("MAGICCHAT_DATA_DIR", dataDir)
	t.Setenv("MAGICCHAT_ENDPOINT", "http://localhost:9999/run")
	t.Setenv("MAGICCHAT_TIMEOUT_SECONDS", "5")

	require.NoError(t, SaveUserConfig(&UserConfig{
		MagicLoops: MagicLoopsConfig{Endpoint: "https://from-file.test/run"},
	}, dataDir))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/run", cfg.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
}

func TestLoad_EmptyEndpointFallsBackToDefault(t *testing.T) {
	isolate(t)
	dataDir := t.TempDir()
	t.Setenv("MAGICCHAT_DATA_DIR", dataDir)

	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "config.toml"), []byte("[magicloops]\nendpoint = \"\"\n"), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
}

func TestLoad_InvalidTOML(t *testing.T) {
	isolate(t)
	dataDir := t.TempDir()
	t.Setenv("MAGICCHAT_DATA_DIR", dataDir)

	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "config.toml"), []byte("[magicloops\n"), 0600))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load user config")
}

func TestLoad_InvalidTimeoutEnv(t *testing.T) {
	isolate(t)
	t.Setenv("MAGICCHAT_DATA_DIR", t.TempDir())
	t.Setenv("MAGICCHAT_TIMEOUT_SECONDS", "soon")

	_, err := Load()
	require.Error(t, err)
}

func TestCheckDebug(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"yes", false},
		{"0", false},
	}

	for _, tt := range tests {
		t.Run("value="+tt.value, func(t *testing.T) {
			t.Setenv("MAGICCHAT_DEBUG", tt.value)
			assert.Equal(t, tt.want, CheckDebug())
		})
	}
}

func TestInitDebugLog(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("MAGICCHAT_DEBUG", "1")
	t.Cleanup(func() {
		DebugLog = nil
		Debug = false
	})

	InitDebugLog(dataDir)

	require.NotNil(t, DebugLog)
	assert.True(t, Debug)

	info, err := os.Stat(filepath.Join(dataDir, "debug.log"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestExpandPath(t *testing.T) {
	home := isolate(t)

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, filepath.Join(home, "chat"), ExpandPath("~/chat"))
	assert.Equal(t, filepath.Clean("/tmp/x"), ExpandPath("/tmp//x/"))
}
