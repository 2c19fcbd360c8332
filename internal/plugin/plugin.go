// internal/plugin/plugin.go
package plugin

// CommandFunc is a named editor command. Menu items and key bindings invoke
// commands by name.
type CommandFunc func(args []string) error

// EditorAPI is the part of the editor visible to plugins.
type EditorAPI interface {
	GetBufferBytes() []byte
	GetBufferLineCount() int

	RegisterCommand(name string, cmdFunc CommandFunc) error

	// ShowMessage opens a modal information dialog.
	ShowMessage(title, message string)
	// SetStatusMessage shows a temporary message in the status bar.
	SetStatusMessage(format string, args ...interface{})
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string
	// Initialize is called once with the editor API; plugins register their
	// commands here.
	Initialize(api EditorAPI) error
	// Shutdown is called once when the editor is closing.
	Shutdown() error
}
