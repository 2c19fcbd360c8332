// internal/modehandler/modehandler.go
package modehandler

import (
	"github.com/bethropolis/tidepad/internal/commands"
	"github.com/bethropolis/tidepad/internal/core"
	"github.com/bethropolis/tidepad/internal/dialog"
	"github.com/bethropolis/tidepad/internal/event"
	"github.com/bethropolis/tidepad/internal/input"
	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/menu"
	"github.com/bethropolis/tidepad/internal/statusbar"
	"github.com/gdamore/tcell/v2"
)

// InputMode says which component receives keys.
type InputMode int

const (
	ModeEdit InputMode = iota
	ModeMenu
	ModeDialog
)

func (m InputMode) String() string {
	switch m {
	case ModeEdit:
		return "EDIT"
	case ModeMenu:
		return "MENU"
	case ModeDialog:
		return "DIALOG"
	default:
		return "UNKNOWN"
	}
}

// commandActions are key bindings that run a named command.
var commandActions = map[input.Action]string{
	input.ActionQuit:            commands.Quit,
	input.ActionSave:            commands.Save,
	input.ActionUndo:            commands.Undo,
	input.ActionRedo:            commands.Redo,
	input.ActionCut:             commands.Cut,
	input.ActionCopy:            commands.Copy,
	input.ActionPaste:           commands.Paste,
	input.ActionSelectAll:       commands.SelectAll,
	input.ActionToggleBold:      commands.Bold,
	input.ActionToggleItalic:    commands.Italic,
	input.ActionToggleUnderline: commands.Underline,
	input.ActionWordCount:       commands.WordCount,
}

// ModeHandler routes key events: to the top dialog when one is open, to
// the menu bar while it is open, otherwise to the editor.
type ModeHandler struct {
	editor         *core.Editor
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	menuBar        *menu.Bar
	dialogs        *dialog.Manager
	commands       *commands.Registry

	lastMode InputMode
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	MenuBar        *menu.Bar
	Dialogs        *dialog.Manager
	Commands       *commands.Registry
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.EventManager == nil || cfg.StatusBar == nil ||
		cfg.MenuBar == nil || cfg.Dialogs == nil || cfg.Commands == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	return &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		menuBar:        cfg.MenuBar,
		dialogs:        cfg.Dialogs,
		commands:       cfg.Commands,
		lastMode:       ModeEdit,
	}
}

// GetCurrentMode derives the mode from the open dialogs and menu.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	switch {
	case mh.dialogs.IsOpen():
		return ModeDialog
	case mh.menuBar.IsOpen():
		return ModeMenu
	default:
		return ModeEdit
	}
}

// HandleKeyEvent processes one key. It returns true when the screen needs
// a redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	var redraw bool
	switch mh.GetCurrentMode() {
	case ModeDialog:
		redraw = mh.dialogs.HandleKey(ev)
	case ModeMenu:
		cmd, handled := mh.menuBar.HandleKey(ev)
		if cmd != "" {
			mh.RunCommand(cmd)
		}
		redraw = handled
	default:
		redraw = mh.handleActionEdit(mh.inputProcessor.ProcessEvent(ev))
	}
	mh.SyncMode()
	return redraw
}

// SyncMode publishes a ModeChanged event when dialogs or menus opened or
// closed since the last call.
func (mh *ModeHandler) SyncMode() {
	mode := mh.GetCurrentMode()
	if mode == mh.lastMode {
		return
	}
	mh.lastMode = mode
	label := ""
	if mode != ModeEdit {
		label = mode.String()
	}
	mh.statusBar.SetEditorMode(label)
	mh.eventManager.Dispatch(event.TypeModeChanged, event.ModeChangedData{Mode: mode.String()})
}

// RunCommand executes a registered command and reports failures in the
// status bar.
func (mh *ModeHandler) RunCommand(name string, args ...string) {
	if err := mh.commands.Execute(name, args...); err != nil {
		logger.Errorf("ModeHandler: %v", err)
		mh.statusBar.SetTemporaryMessage("Error: %v", err)
	}
}

func (mh *ModeHandler) handleActionEdit(actionEvent input.ActionEvent) bool {
	action := actionEvent.Action

	if action.IsMovement() {
		mh.move(action, actionEvent.Shift)
		return true
	}

	if name, ok := commandActions[action]; ok {
		mh.RunCommand(name)
		return true
	}

	var err error
	switch action {
	case input.ActionOpenMenu:
		mh.menuBar.Open(0)
	case input.ActionOpenMenuHotkey:
		if !mh.menuBar.OpenHotkey(actionEvent.Rune) {
			return false
		}
	case input.ActionInsertRune:
		err = mh.editor.InsertRune(actionEvent.Rune)
	case input.ActionInsertNewLine:
		err = mh.editor.InsertNewLine()
	case input.ActionDeleteCharBackward:
		err = mh.editor.DeleteBackward()
	case input.ActionDeleteCharForward:
		err = mh.editor.DeleteForward()
	default:
		return false
	}
	if err != nil {
		logger.Errorf("ModeHandler: %s failed: %v", action, err)
		mh.statusBar.SetTemporaryMessage("%s failed: %v", action, err)
	}
	return true
}

func (mh *ModeHandler) move(action input.Action, extend bool) {
	switch action {
	case input.ActionMoveUp:
		mh.editor.MoveCursor(-1, 0, extend)
	case input.ActionMoveDown:
		mh.editor.MoveCursor(1, 0, extend)
	case input.ActionMoveLeft:
		mh.editor.MoveCursor(0, -1, extend)
	case input.ActionMoveRight:
		mh.editor.MoveCursor(0, 1, extend)
	case input.ActionMovePageUp:
		mh.editor.PageMove(-1, extend)
	case input.ActionMovePageDown:
		mh.editor.PageMove(1, extend)
	case input.ActionMoveHome:
		mh.editor.Home(extend)
	case input.ActionMoveEnd:
		mh.editor.End(extend)
	}
}

// RegisterCommand adds a command to the registry. Called via EditorAPI.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc func(args []string) error) error {
	return mh.commands.Register(name, cmdFunc)
}
