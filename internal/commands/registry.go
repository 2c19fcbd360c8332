// internal/commands/registry.go
package commands

import (
	"fmt"
	"sort"

	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/plugin"
)

// Registry maps command names to their functions.
type Registry struct {
	commands map[string]plugin.CommandFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]plugin.CommandFunc)}
}

// Register adds a command. Names are unique.
func (r *Registry) Register(name string, cmdFunc plugin.CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if cmdFunc == nil {
		return fmt.Errorf("command '%s' has no function", name)
	}
	if r.Has(name) {
		return fmt.Errorf("command '%s' already registered", name)
	}
	r.commands[name] = cmdFunc
	logger.DebugTagf("commands", "Registered command '%s'", name)
	return nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.commands[name]
	return ok
}

// Execute runs the named command.
func (r *Registry) Execute(name string, args ...string) error {
	cmdFunc, ok := r.commands[name]
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	logger.DebugTagf("commands", "Executing '%s' with args %v", name, args)
	if err := cmdFunc(args); err != nil {
		return fmt.Errorf("command '%s': %w", name, err)
	}
	return nil
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
