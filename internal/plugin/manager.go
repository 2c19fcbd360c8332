// internal/plugin/manager.go
package plugin

import (
	"fmt"

	"github.com/bethropolis/tidepad/internal/logger"
)

// Manager handles the registration, initialization, and lifecycle of plugins.
// Plugins are initialized and shut down in registration order.
type Manager struct {
	plugins []Plugin
	byName  map[string]Plugin
}

// NewManager creates a new plugin manager.
func NewManager() *Manager {
	return &Manager{byName: make(map[string]Plugin)}
}

// Register adds a plugin instance to the manager.
func (m *Manager) Register(p Plugin) error {
	name := p.Name()
	if name == "" {
		return fmt.Errorf("plugin registration failed: plugin name cannot be empty")
	}
	if _, exists := m.byName[name]; exists {
		return fmt.Errorf("plugin registration failed: plugin named '%s' already registered", name)
	}
	m.plugins = append(m.plugins, p)
	m.byName[name] = p
	logger.DebugTagf("plugin", "Registered plugin '%s'", name)
	return nil
}

// InitializePlugins calls Initialize on every plugin. A failing plugin is
// logged and skipped; the error of the first failure is returned.
func (m *Manager) InitializePlugins(api EditorAPI) error {
	var firstErr error
	for _, p := range m.plugins {
		if err := p.Initialize(api); err != nil {
			logger.Errorf("Plugin Manager: initializing '%s': %v", p.Name(), err)
			if firstErr == nil {
				firstErr = fmt.Errorf("plugin '%s': %w", p.Name(), err)
			}
			continue
		}
		logger.DebugTagf("plugin", "Initialized plugin '%s'", p.Name())
	}
	return firstErr
}

// ShutdownPlugins calls Shutdown on all registered plugins.
func (m *Manager) ShutdownPlugins() {
	for _, p := range m.plugins {
		if err := p.Shutdown(); err != nil {
			logger.Errorf("Plugin Manager: shutting down '%s': %v", p.Name(), err)
		}
	}
}

// GetPlugin returns a registered plugin by name.
func (m *Manager) GetPlugin(name string) (Plugin, bool) {
	p, exists := m.byName[name]
	return p, exists
}
