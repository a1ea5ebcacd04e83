package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetActionKey(t *testing.T) {
	tests := []struct {
		name   string
		kb     *KeyBindingsConfig
		action string
		want   string
	}{
		{"primary default", DefaultKeybindings(), "reset", "alt+r"},
		{"secondary letter uses uppercase", DefaultKeybindings(), "half_page_down", "alt+J"},
		{"ctrl shift secondary", &KeyBindingsConfig{Modifiers: ModifierConfig{Primary: "ctrl", Secondary: "ctrl+shift"}}, "scroll_to_bottom", "ctrl+G"},
		{"custom primary", &KeyBindingsConfig{Modifiers: ModifierConfig{Primary: "ctrl"}}, "quit", "ctrl+q"},
		{"override wins", &KeyBindingsConfig{Actions: map[string]string{"reset": "ctrl+l"}}, "reset", "ctrl+l"},
		{"unknown action", DefaultKeybindings(), "new_session", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kb.GetActionKey(tt.action))
		})
	}
}

func TestDisplayActionKey(t *testing.T) {
	kb := DefaultKeybindings()

	assert.Equal(t, "Alt+R", kb.DisplayActionKey("reset"))
	assert.Equal(t, "Alt+Shift+J", kb.DisplayActionKey("half_page_down"))
	assert.Equal(t, "Alt+Pgdown", kb.DisplayActionKey("page_down"))
	assert.Equal(t, "", kb.DisplayActionKey("missing"))
}

func TestLoadKeybindings(t *testing.T) {
	dir := t.TempDir()

	kb, err := LoadKeybindings(dir)
	require.NoError(t, err)
	assert.Equal(t, "alt", kb.Primary())
	assert.FileExists(t, filepath.Join(dir, "keybindings.toml"))

	custom := "[modifiers]\nprimary = \"ctrl\"\n\n[actions]\nreset = \"ctrl+l\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keybindings.toml"), []byte(custom), 0600))

	kb, err = LoadKeybindings(dir)
	require.NoError(t, err)
	assert.Equal(t, "ctrl", kb.Primary())
	assert.Equal(t, "alt+shift", kb.Secondary())
	assert.Equal(t, "ctrl+l", kb.GetActionKey("reset"))
	assert.Equal(t, "ctrl+q", kb.GetActionKey("quit"))
}

func TestKeybindingsValidate(t *testing.T) {
	ok, msg := DefaultKeybindings().Validate()
	assert.True(t, ok)
	assert.Empty(t, msg)

	ok, _ = (&KeyBindingsConfig{Modifiers: ModifierConfig{Primary: "shift"}}).Validate()
	assert.False(t, ok)

	ok, msg = (&KeyBindingsConfig{Modifiers: ModifierConfig{Primary: "ctrl"}}).Validate()
	assert.True(t, ok)
	assert.Contains(t, msg, "Ctrl")
}
