// internal/event/event.go
package event

import "github.com/bethropolis/tidepad/internal/types"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	TypeBufferModified // buffer content changed (typing, cut, paste, undo, redo)
	TypeBufferSaved    // buffer written to a file
	TypeCursorMoved
	TypeFontChanged // font size or style flags changed
	TypeModeChanged

	TypeAppReady
	TypeAppQuit
)

// String names the event type for logs.
func (t Type) String() string {
	switch t {
	case TypeBufferModified:
		return "BufferModified"
	case TypeBufferSaved:
		return "BufferSaved"
	case TypeCursorMoved:
		return "CursorMoved"
	case TypeFontChanged:
		return "FontChanged"
	case TypeModeChanged:
		return "ModeChanged"
	case TypeAppReady:
		return "AppReady"
	case TypeAppQuit:
		return "AppQuit"
	default:
		return "Unknown"
	}
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferModifiedData describes the span touched by an edit.
type BufferModifiedData struct {
	Start types.Position
	End   types.Position
}

// BufferSavedData carries the path the buffer was written to.
type BufferSavedData struct {
	FilePath string
}

// CursorMovedData contains the new cursor position.
type CursorMovedData struct {
	NewPosition types.Position
}

// FontChangedData carries a human readable description of the new font.
type FontChangedData struct {
	Description string
}

// ModeChangedData carries the name of the new input mode.
type ModeChangedData struct {
	Mode string
}

type AppQuitData struct{}

type AppReadyData struct{}
