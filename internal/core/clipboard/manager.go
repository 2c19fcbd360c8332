package clipboard

import (
	"fmt"

	"github.com/bethropolis/tidepad/internal/buffer"
	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/types"
)

// Manager handles clipboard operations
type Manager struct {
	editor   EditorInterface
	provider Provider
}

// EditorInterface defines methods needed from editor. Buffer changes go
// through the editor so they land in the undo history.
type EditorInterface interface {
	GetBuffer() buffer.Buffer
	GetSelection() (start types.Position, end types.Position, ok bool)
	DeleteSelection() (bool, error)
	InsertText(text []byte) error
}

// NewManager creates a new clipboard manager
func NewManager(editor EditorInterface, provider Provider) *Manager {
	if provider == nil {
		provider = &Register{}
	}
	return &Manager{editor: editor, provider: provider}
}

// Copy puts the selected text on the clipboard. Without a selection it does
// nothing and reports false.
func (m *Manager) Copy() (bool, error) {
	start, end, ok := m.editor.GetSelection()
	if !ok {
		return false, nil
	}
	text, err := m.editor.GetBuffer().Slice(start, end)
	if err != nil {
		return false, fmt.Errorf("failed to extract selected text for copy: %w", err)
	}
	if err := m.provider.WriteAll(string(text)); err != nil {
		return false, err
	}
	logger.DebugTagf("clipboard", "Copied %d bytes", len(text))
	return true, nil
}

// Cut copies the selection and then deletes it.
func (m *Manager) Cut() (bool, error) {
	copied, err := m.Copy()
	if err != nil || !copied {
		return false, err
	}
	return m.editor.DeleteSelection()
}

// Paste inserts the clipboard content at the cursor, replacing the selection
// if there is one. An empty clipboard is a no-op.
func (m *Manager) Paste() (bool, error) {
	text, err := m.provider.ReadAll()
	if err != nil {
		return false, err
	}
	if text == "" {
		return false, nil
	}
	if err := m.editor.InsertText([]byte(text)); err != nil {
		return false, fmt.Errorf("paste failed: %w", err)
	}
	logger.DebugTagf("clipboard", "Pasted %d bytes", len(text))
	return true, nil
}
