// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/tidepad/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`
	Font   FontConfig    `toml:"font"`
	Theme  ThemeConfig   `toml:"theme"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int  `toml:"tab_width"`
	ScrollOff       int  `toml:"scroll_off"`
	MaxHistory      int  `toml:"max_history"`
	SystemClipboard bool `toml:"system_clipboard"`
	NativeDialogs   bool `toml:"native_dialogs"`
}

// FontConfig is the font the text area starts with.
type FontConfig struct {
	Family string `toml:"family"`
	Size   int    `toml:"size"`
}

// ThemeConfig points at an optional theme file.
type ThemeConfig struct {
	File string `toml:"file"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			MaxHistory:      DefaultMaxHistory,
			SystemClipboard: SystemClipboard,
			NativeDialogs:   NativeDialogs,
		},
		Font: FontConfig{
			Family: DefaultFontFamily,
			Size:   DefaultFontSize,
		},
	}
}

// DefaultPath returns the per-user config file location, or "" when the
// platform has no config directory.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// loadFile decodes filePath over cfg. A missing file is not an error.
func loadFile(filePath string, cfg *Config) (undecoded []string, err error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	for _, key := range metadata.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, nil
}

// validate resets out-of-range values to their defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 {
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Editor.MaxHistory <= 0 {
		c.Editor.MaxHistory = defaults.Editor.MaxHistory
	}
	if c.Font.Family == "" {
		c.Font.Family = defaults.Font.Family
	}
	if c.Font.Size <= 0 {
		c.Font.Size = defaults.Font.Size
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Load builds the effective configuration: defaults, then the TOML file at
// configFilePath (or DefaultPath when empty), then flag overrides, then
// validation. Unknown keys in the file are returned so the caller can log
// them once the logger is running.
func Load(configFilePath string, flags *Flags) (*Config, []string, error) {
	cfg := NewDefaultConfig()

	path := configFilePath
	if path == "" {
		path = DefaultPath()
	}

	var undecoded []string
	var loadErr error
	if path != "" {
		undecoded, loadErr = loadFile(path, cfg)
		if loadErr != nil {
			// Keep going on defaults; the caller reports the error.
			cfg = NewDefaultConfig()
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return cfg, undecoded, loadErr
}
