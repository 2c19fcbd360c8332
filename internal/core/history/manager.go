package history

import (
	"fmt"

	"github.com/bethropolis/tidepad/internal/buffer"
	"github.com/bethropolis/tidepad/internal/event"
	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/types"
)

const DefaultMaxHistory = 100

// EditorInterface is what the history manager needs from the editor.
type EditorInterface interface {
	GetBuffer() buffer.Buffer
	SetCursor(types.Position)
	GetEventManager() *event.Manager
}

// Manager keeps an append-only log of changes with a cursor: entries before
// currentIndex are applied, entries from currentIndex on have been undone.
// Recording a change discards every undone entry.
type Manager struct {
	editor       EditorInterface
	changes      []Change
	currentIndex int
	maxHistory   int
}

// NewManager creates a history manager holding at most maxHistory changes.
func NewManager(editor EditorInterface, maxHistory int) *Manager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager{
		editor:     editor,
		changes:    make([]Change, 0, maxHistory),
		maxHistory: maxHistory,
	}
}

// RecordChange appends a change that has already been applied to the buffer.
func (m *Manager) RecordChange(change Change) {
	if m.currentIndex < len(m.changes) {
		m.changes = m.changes[:m.currentIndex]
	}
	m.changes = append(m.changes, change)

	if len(m.changes) > m.maxHistory {
		// Oldest change falls off; copy so the backing array does not grow forever.
		m.changes = append(m.changes[:0:0], m.changes[len(m.changes)-m.maxHistory:]...)
	}
	m.currentIndex = len(m.changes)

	logger.DebugTagf("history", "Recorded %v %q. Index: %d, Count: %d", change.Type, change.Text, m.currentIndex, len(m.changes))
}

// Undo reverts the most recent applied change. It reports false when there
// is nothing to undo.
func (m *Manager) Undo() (bool, error) {
	if m.currentIndex <= 0 {
		return false, nil
	}
	change := m.changes[m.currentIndex-1]
	buf := m.editor.GetBuffer()

	var err error
	switch change.Type {
	case InsertAction:
		err = buf.Delete(change.StartPosition, change.EndPosition)
	case DeleteAction:
		err = buf.Insert(change.StartPosition, change.Text)
	}
	if err != nil {
		return false, fmt.Errorf("undo %v failed: %w", change.Type, err)
	}
	m.currentIndex--

	m.editor.SetCursor(change.CursorBefore)
	m.dispatchModified(change)
	logger.DebugTagf("history", "Undid %v. Index: %d", change.Type, m.currentIndex)
	return true, nil
}

// Redo reapplies the next undone change. It reports false when there is
// nothing to redo.
func (m *Manager) Redo() (bool, error) {
	if m.currentIndex >= len(m.changes) {
		return false, nil
	}
	change := m.changes[m.currentIndex]
	buf := m.editor.GetBuffer()

	var err error
	cursorAfter := change.StartPosition
	switch change.Type {
	case InsertAction:
		err = buf.Insert(change.StartPosition, change.Text)
		cursorAfter = change.EndPosition
	case DeleteAction:
		err = buf.Delete(change.StartPosition, change.EndPosition)
	}
	if err != nil {
		return false, fmt.Errorf("redo %v failed: %w", change.Type, err)
	}
	m.currentIndex++

	m.editor.SetCursor(cursorAfter)
	m.dispatchModified(change)
	logger.DebugTagf("history", "Redid %v. Index: %d", change.Type, m.currentIndex)
	return true, nil
}

func (m *Manager) dispatchModified(change Change) {
	if em := m.editor.GetEventManager(); em != nil {
		em.Dispatch(event.TypeBufferModified, event.BufferModifiedData{
			Start: change.StartPosition,
			End:   change.EndPosition,
		})
	}
}

// CanUndo returns true if there are changes that can be undone.
func (m *Manager) CanUndo() bool {
	return m.currentIndex > 0
}

// CanRedo returns true if there are changes that can be redone.
func (m *Manager) CanRedo() bool {
	return m.currentIndex < len(m.changes)
}

// Len returns the number of changes in the log, applied or undone.
func (m *Manager) Len() int {
	return len(m.changes)
}
