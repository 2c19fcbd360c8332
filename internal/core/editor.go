// internal/core/editor.go
package core

import (
	"github.com/bethropolis/tidepad/internal/buffer"
	"github.com/bethropolis/tidepad/internal/core/clipboard"
	"github.com/bethropolis/tidepad/internal/core/cursor"
	"github.com/bethropolis/tidepad/internal/core/history"
	"github.com/bethropolis/tidepad/internal/core/selection"
	"github.com/bethropolis/tidepad/internal/core/text"
	"github.com/bethropolis/tidepad/internal/event"
	"github.com/bethropolis/tidepad/internal/types"
)

// Options configures a new Editor.
type Options struct {
	MaxHistory int
	ScrollOff  int
	TabWidth   int
	Clipboard  clipboard.Provider
}

// Editor is the document buffer together with the state that edits it:
// cursor, selection, undo history and clipboard.
type Editor struct {
	buffer       buffer.Buffer
	eventManager *event.Manager

	cursorManager    *cursor.Manager
	selectionManager *selection.Manager
	textOps          *text.Operations
	historyManager   *history.Manager
	clipboardManager *clipboard.Manager
}

// NewEditor creates a new Editor instance with a given buffer.
func NewEditor(buf buffer.Buffer, opts Options) *Editor {
	e := &Editor{buffer: buf}
	e.cursorManager = cursor.NewManager(e, opts.ScrollOff, opts.TabWidth)
	e.selectionManager = selection.NewManager(e)
	e.textOps = text.NewOperations(e)
	e.historyManager = history.NewManager(e, opts.MaxHistory)
	e.clipboardManager = clipboard.NewManager(e, opts.Clipboard)
	return e
}

// SetEventManager sets the event manager for dispatching events
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// GetEventManager returns the event manager, possibly nil.
func (e *Editor) GetEventManager() *event.Manager {
	return e.eventManager
}

// GetBuffer returns the editor's buffer.
func (e *Editor) GetBuffer() buffer.Buffer {
	return e.buffer
}

// GetHistoryManager returns the undo history.
func (e *Editor) GetHistoryManager() *history.Manager {
	return e.historyManager
}

// Text returns the full buffer content.
func (e *Editor) Text() []byte {
	return e.buffer.Bytes()
}

// SaveBuffer writes the buffer to filePath.
func (e *Editor) SaveBuffer(filePath string) error {
	if err := e.buffer.Save(filePath); err != nil {
		return err
	}
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: filePath})
	}
	return nil
}

// --- Cursor ---

// GetCursor returns the current cursor position.
func (e *Editor) GetCursor() types.Position {
	return e.cursorManager.GetPosition()
}

// SetCursor moves the cursor to pos, clamped to the buffer.
func (e *Editor) SetCursor(pos types.Position) {
	e.cursorManager.SetPosition(pos)
	e.cursorMoved()
}

// SetViewSize updates the text area dimensions used for scrolling.
func (e *Editor) SetViewSize(width, height int) {
	e.cursorManager.SetViewSize(width, height)
}

// GetViewport returns the top line and leftmost visual column on screen.
func (e *Editor) GetViewport() (int, int) {
	return e.cursorManager.GetViewport()
}

func (e *Editor) cursorMoved() {
	e.selectionManager.UpdateSelectionEnd()
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: e.GetCursor()})
	}
}

// --- Selection ---

// HasSelection reports whether a non-empty range is selected.
func (e *Editor) HasSelection() bool {
	return e.selectionManager.HasSelection()
}

// GetSelection returns the normalized selection.
func (e *Editor) GetSelection() (start types.Position, end types.Position, ok bool) {
	return e.selectionManager.GetSelection()
}

// ClearSelection drops the selection.
func (e *Editor) ClearSelection() {
	e.selectionManager.ClearSelection()
}

// StartOrUpdateSelection anchors or extends the selection at the cursor.
func (e *Editor) StartOrUpdateSelection() {
	e.selectionManager.StartOrUpdateSelection()
}

// SelectAll selects the whole buffer and moves the cursor to its end.
func (e *Editor) SelectAll() {
	end := e.buffer.End()
	e.cursorManager.SetPosition(end)
	e.selectionManager.Select(types.Position{}, end)
	e.cursorMoved()
}
