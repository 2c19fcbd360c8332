package app

import (
	"github.com/bethropolis/tidepad/internal/event"
)

func (a *App) handleCursorMovedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		a.statusBar.SetCursorInfo(data.NewPosition)
	}
	return false
}

func (a *App) handleBufferModifiedForStatus(event.Event) bool {
	a.statusBar.SetModified(a.editor.GetBuffer().IsModified())
	return false
}

func (a *App) handleBufferSavedForStatus(event.Event) bool {
	a.statusBar.SetModified(a.editor.GetBuffer().IsModified())
	return false
}

func (a *App) handleFontChangedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.FontChangedData); ok {
		a.statusBar.SetFontInfo(data.Description)
	}
	return false
}
