package core

import "github.com/bethropolis/tidepad/internal/logger"

// Movement. With extend set the selection follows the cursor, otherwise any
// selection is dropped first.

func (e *Editor) MoveCursor(deltaLine, deltaCol int, extend bool) {
	e.beginMove(extend)
	e.cursorManager.Move(deltaLine, deltaCol)
	e.cursorMoved()
}

func (e *Editor) PageMove(deltaPages int, extend bool) {
	e.beginMove(extend)
	e.cursorManager.PageMove(deltaPages)
	e.cursorMoved()
}

func (e *Editor) Home(extend bool) {
	e.beginMove(extend)
	e.cursorManager.MoveToLineStart()
	e.cursorMoved()
}

func (e *Editor) End(extend bool) {
	e.beginMove(extend)
	e.cursorManager.MoveToLineEnd()
	e.cursorMoved()
}

func (e *Editor) beginMove(extend bool) {
	if extend {
		e.selectionManager.StartOrUpdateSelection()
	} else {
		e.selectionManager.ClearSelection()
	}
}

// Text operations delegated to textOps

func (e *Editor) InsertRune(r rune) error {
	return e.textOps.InsertRune(r)
}

func (e *Editor) InsertNewLine() error {
	return e.textOps.InsertNewLine()
}

func (e *Editor) InsertText(text []byte) error {
	return e.textOps.InsertText(text)
}

func (e *Editor) DeleteBackward() error {
	return e.textOps.DeleteBackward()
}

func (e *Editor) DeleteForward() error {
	return e.textOps.DeleteForward()
}

func (e *Editor) DeleteSelection() (bool, error) {
	return e.textOps.DeleteSelection()
}

// Clipboard operations delegated to clipboardManager

func (e *Editor) Cut() (bool, error) {
	return e.clipboardManager.Cut()
}

func (e *Editor) Copy() (bool, error) {
	return e.clipboardManager.Copy()
}

func (e *Editor) Paste() (bool, error) {
	return e.clipboardManager.Paste()
}

// History operations delegated to historyManager. Both drop the selection
// first since the restored text may no longer match it.

func (e *Editor) Undo() (bool, error) {
	e.selectionManager.ClearSelection()
	ok, err := e.historyManager.Undo()
	if err != nil {
		logger.Errorf("Editor: undo failed: %v", err)
	}
	return ok, err
}

func (e *Editor) Redo() (bool, error) {
	e.selectionManager.ClearSelection()
	ok, err := e.historyManager.Redo()
	if err != nil {
		logger.Errorf("Editor: redo failed: %v", err)
	}
	return ok, err
}
