// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps specific key events to editor actions.
type Keymap map[tcell.Key]Action

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap Keymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{keymap: make(Keymap)}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyF10] = ActionOpenMenu

	// Control keys arrive as their own tcell.Key values.
	p.keymap[tcell.KeyCtrlQ] = ActionQuit
	p.keymap[tcell.KeyCtrlS] = ActionSave
	p.keymap[tcell.KeyCtrlZ] = ActionUndo
	p.keymap[tcell.KeyCtrlY] = ActionRedo
	p.keymap[tcell.KeyCtrlX] = ActionCut
	p.keymap[tcell.KeyCtrlC] = ActionCopy
	p.keymap[tcell.KeyCtrlV] = ActionPaste
	p.keymap[tcell.KeyCtrlA] = ActionSelectAll
	p.keymap[tcell.KeyCtrlB] = ActionToggleBold
	p.keymap[tcell.KeyCtrlT] = ActionToggleItalic
	p.keymap[tcell.KeyCtrlU] = ActionToggleUnderline
	p.keymap[tcell.KeyCtrlW] = ActionWordCount
}

// ProcessEvent takes a tcell key event and returns the corresponding
// ActionEvent. Modes are not handled here.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	shift := mod&tcell.ModShift != 0

	if key == tcell.KeyRune {
		switch {
		case mod&tcell.ModAlt != 0:
			return ActionEvent{Action: ActionOpenMenuHotkey, Rune: ev.Rune()}
		case mod&tcell.ModCtrl != 0:
			return ActionEvent{Action: ActionUnknown}
		}
		return ActionEvent{Action: ActionInsertRune, Rune: ev.Rune()}
	}

	if key == tcell.KeyTab {
		return ActionEvent{Action: ActionInsertRune, Rune: '\t'}
	}

	if action, ok := p.keymap[key]; ok {
		return ActionEvent{Action: action, Shift: shift}
	}
	return ActionEvent{Action: ActionUnknown}
}
