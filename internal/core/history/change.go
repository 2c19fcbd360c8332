// Package history provides linear undo/redo over buffer edits.
package history

import "github.com/bethropolis/tidepad/internal/types"

// ActionType indicates whether text was inserted or deleted.
type ActionType int

const (
	InsertAction ActionType = iota
	DeleteAction
)

func (a ActionType) String() string {
	if a == DeleteAction {
		return "delete"
	}
	return "insert"
}

// Change is a single reversible edit.
type Change struct {
	Type          ActionType
	Text          []byte         // inserted or deleted text
	StartPosition types.Position // where the change began
	EndPosition   types.Position // end of the inserted text, or end of the deleted range
	CursorBefore  types.Position
}
