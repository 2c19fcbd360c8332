// internal/input/action.go
package input

// Action represents a command or operation to be performed by the editor.
type Action int

const (
	ActionUnknown Action = iota

	// --- Meta ---
	ActionQuit
	ActionSave
	ActionOpenMenu       // F10
	ActionOpenMenuHotkey // Alt+letter; Rune carries the letter

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome
	ActionMoveEnd

	// --- Text Manipulation ---
	ActionInsertRune // Rune carries the character
	ActionInsertNewLine
	ActionDeleteCharForward
	ActionDeleteCharBackward

	// --- Edit menu ---
	ActionUndo
	ActionRedo
	ActionCut
	ActionCopy
	ActionPaste
	ActionSelectAll

	// --- Font menu ---
	ActionToggleBold
	ActionToggleItalic
	ActionToggleUnderline

	ActionWordCount
)

var actionNames = map[Action]string{
	ActionUnknown:            "Unknown",
	ActionQuit:               "Quit",
	ActionSave:               "Save",
	ActionOpenMenu:           "OpenMenu",
	ActionOpenMenuHotkey:     "OpenMenuHotkey",
	ActionMoveUp:             "MoveUp",
	ActionMoveDown:           "MoveDown",
	ActionMoveLeft:           "MoveLeft",
	ActionMoveRight:          "MoveRight",
	ActionMovePageUp:         "MovePageUp",
	ActionMovePageDown:       "MovePageDown",
	ActionMoveHome:           "MoveHome",
	ActionMoveEnd:            "MoveEnd",
	ActionInsertRune:         "InsertRune",
	ActionInsertNewLine:      "InsertNewLine",
	ActionDeleteCharForward:  "DeleteCharForward",
	ActionDeleteCharBackward: "DeleteCharBackward",
	ActionUndo:               "Undo",
	ActionRedo:               "Redo",
	ActionCut:                "Cut",
	ActionCopy:               "Copy",
	ActionPaste:              "Paste",
	ActionSelectAll:          "SelectAll",
	ActionToggleBold:         "ToggleBold",
	ActionToggleItalic:       "ToggleItalic",
	ActionToggleUnderline:    "ToggleUnderline",
	ActionWordCount:          "WordCount",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// IsMovement reports whether a moves the cursor. Shift extends the
// selection for these.
func (a Action) IsMovement() bool {
	return a >= ActionMoveUp && a <= ActionMoveEnd
}

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionInsertRune and ActionOpenMenuHotkey
	Shift  bool
}
