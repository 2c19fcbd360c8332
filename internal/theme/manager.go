// internal/theme/manager.go
package theme

import (
	"github.com/bethropolis/tidepad/internal/logger"
)

// Manager holds the active theme.
type Manager struct {
	activeTheme *Theme
	loadError   error
}

// NewManager starts on the built-in theme and, when themeFile is set, loads
// and activates it. A theme file that fails to load leaves the built-in
// theme active; the error is available from LoadError.
func NewManager(themeFile string) *Manager {
	builtin := PaperDark
	mgr := &Manager{activeTheme: &builtin}

	if themeFile != "" {
		theme, err := LoadThemeFromFile(themeFile)
		if err != nil {
			mgr.loadError = err
			logger.Errorf("Error loading theme from '%s': %v", themeFile, err)
		} else {
			mgr.activeTheme = theme
		}
	}

	logger.Infof("Initial active theme set to: %s", mgr.activeTheme.Name)
	return mgr
}

// LoadError returns the error from loading the configured theme file, if any.
func (m *Manager) LoadError() error {
	return m.loadError
}

// Current returns the currently active theme.
func (m *Manager) Current() *Theme {
	return m.activeTheme
}
