package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, undecoded, err := Load(filepath.Join(t.TempDir(), "absent.toml"), nil)
	require.NoError(t, err)
	assert.Empty(t, undecoded)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoadFileValues(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = "debug"

[editor]
max_history = 20
system_clipboard = false
native_dialogs = true

[font]
family = "Serif"
size = 18

[bogus]
key = 1
`)
	cfg, undecoded, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.LogLevel)
	assert.Equal(t, 20, cfg.Editor.MaxHistory)
	assert.False(t, cfg.Editor.SystemClipboard)
	assert.True(t, cfg.Editor.NativeDialogs)
	assert.Equal(t, "Serif", cfg.Font.Family)
	assert.Equal(t, 18, cfg.Font.Size)
	assert.Equal(t, DefaultTabWidth, cfg.Editor.TabWidth)
	assert.Contains(t, undecoded, "bogus.key")
}

func TestLoadInvalidValuesAreReset(t *testing.T) {
	path := writeConfig(t, `
[editor]
tab_width = -2
max_history = 0

[font]
size = -4
`)
	cfg, _, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultTabWidth, cfg.Editor.TabWidth)
	assert.Equal(t, DefaultMaxHistory, cfg.Editor.MaxHistory)
	assert.Equal(t, DefaultFontSize, cfg.Font.Size)
}

func TestLoadParseErrorFallsBackToDefaults(t *testing.T) {
	path := writeConfig(t, "this is = = not toml")
	cfg, _, err := Load(path, nil)
	assert.Error(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `
[font]
size = 18
`)
	var flags Flags
	fs := flag.NewFlagSet("tidepad", flag.ContinueOnError)
	require.NoError(t, flags.Parse(fs, []string{
		"-font-size", "22",
		"-loglevel", "warn",
		"-log-tags", "save, history",
		"-system-clipboard=false",
	}))

	cfg, _, err := Load(path, &flags)
	require.NoError(t, err)
	assert.Equal(t, 22, cfg.Font.Size)
	assert.Equal(t, "warn", cfg.Logger.LogLevel)
	assert.Equal(t, []string{"save", "history"}, cfg.Logger.EnabledTags)
	assert.False(t, cfg.Editor.SystemClipboard)
	assert.False(t, cfg.Editor.NativeDialogs, "unset flags keep the file/default value")
}
