package selection

import (
	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/types"
)

// Manager handles text selection state and logic.
type Manager struct {
	editor EditorInterface

	selecting      bool
	selectionStart types.Position // anchor
	selectionEnd   types.Position // follows the cursor
}

// EditorInterface defines what the selection manager needs from editor.
type EditorInterface interface {
	GetCursor() types.Position
}

// NewManager creates a new selection manager.
func NewManager(editor EditorInterface) *Manager {
	return &Manager{editor: editor}
}

// HasSelection reports whether a non-empty range is selected.
func (m *Manager) HasSelection() bool {
	return m.selecting && m.selectionStart != m.selectionEnd
}

// GetSelection returns the normalized selection range (start <= end).
// ok is false while nothing or an empty range is selected.
func (m *Manager) GetSelection() (start types.Position, end types.Position, ok bool) {
	if !m.HasSelection() {
		return types.Position{}, types.Position{}, false
	}
	start, end = types.Ordered(m.selectionStart, m.selectionEnd)
	return start, end, true
}

// ClearSelection resets the selection state.
func (m *Manager) ClearSelection() {
	if m.selecting {
		logger.DebugTagf("selection", "Cleared")
	}
	m.selecting = false
}

// StartOrUpdateSelection anchors a selection at the cursor if none is active
// and moves its free end to the cursor.
func (m *Manager) StartOrUpdateSelection() {
	cursor := m.editor.GetCursor()
	if !m.selecting {
		m.selectionStart = cursor
		m.selecting = true
		logger.DebugTagf("selection", "Started at %v", cursor)
	}
	m.selectionEnd = cursor
}

// UpdateSelectionEnd moves the free end to the cursor while selecting.
func (m *Manager) UpdateSelectionEnd() {
	if m.selecting {
		m.selectionEnd = m.editor.GetCursor()
	}
}

// Select sets an explicit range.
func (m *Manager) Select(anchor, end types.Position) {
	m.selecting = true
	m.selectionStart = anchor
	m.selectionEnd = end
}
