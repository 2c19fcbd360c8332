package app

import (
	"github.com/bethropolis/tidepad/internal/commands"
	"github.com/bethropolis/tidepad/internal/dialog"
	"github.com/bethropolis/tidepad/internal/event"
	"github.com/bethropolis/tidepad/internal/font"
	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/plugin"
)

// Dialog titles and texts shown by the built-in commands.
const (
	TitleSuccess = "Success"
	TitleError   = "Error"
	TitleInput   = "Input"

	MsgSaveSuccess = "File saved successfully."
	MsgSaveError   = "Error saving the file."
	PromptFontSize = "Enter new font size:"
)

// registerAppCommands registers the menu and shortcut handlers.
func registerAppCommands(a *App) {
	builtins := map[string]plugin.CommandFunc{
		commands.Save:      a.cmdSave,
		commands.Quit:      a.cmdQuit,
		commands.Undo:      a.cmdUndo,
		commands.Redo:      a.cmdRedo,
		commands.Cut:       a.cmdCut,
		commands.Copy:      a.cmdCopy,
		commands.Paste:     a.cmdPaste,
		commands.SelectAll: a.cmdSelectAll,
		commands.FontSize:  a.cmdFontSize,
		commands.Bold:      a.cmdBold,
		commands.Italic:    a.cmdItalic,
		commands.Underline: a.cmdUnderline,
	}
	for name, fn := range builtins {
		if err := a.editorAPI.RegisterCommand(name, fn); err != nil {
			logger.Warnf("Failed to register '%s' command: %v", name, err)
		}
	}
}

// cmdSave asks for a destination and writes the buffer there. The chosen
// path is not kept: every save asks again.
func (a *App) cmdSave([]string) error {
	a.savePicker.PickSavePath(func(path string, ok bool) {
		if !ok {
			logger.Debugf("App: save cancelled")
			return
		}
		if err := a.editor.SaveBuffer(path); err != nil {
			logger.Errorf("App: saving to '%s' failed: %v", path, err)
			a.notifier.Error(TitleError, MsgSaveError)
			return
		}
		logger.Infof("App: saved %d bytes to '%s'", len(a.editor.Text()), path)
		a.notifier.Info(TitleSuccess, MsgSaveSuccess)
	})
	return nil
}

func (a *App) cmdQuit([]string) error {
	a.Quit()
	return nil
}

func (a *App) cmdUndo([]string) error {
	ok, err := a.editor.Undo()
	if err != nil {
		return err
	}
	if !ok {
		a.statusBar.SetTemporaryMessage("Nothing to undo")
	}
	return nil
}

func (a *App) cmdRedo([]string) error {
	ok, err := a.editor.Redo()
	if err != nil {
		return err
	}
	if !ok {
		a.statusBar.SetTemporaryMessage("Nothing to redo")
	}
	return nil
}

func (a *App) cmdCut([]string) error {
	_, err := a.editor.Cut()
	return err
}

func (a *App) cmdCopy([]string) error {
	copied, err := a.editor.Copy()
	if err == nil && copied {
		a.statusBar.SetTemporaryMessage("Copied")
	}
	return err
}

func (a *App) cmdPaste([]string) error {
	_, err := a.editor.Paste()
	return err
}

func (a *App) cmdSelectAll([]string) error {
	a.editor.SelectAll()
	return nil
}

// cmdFontSize prompts for a size. Cancelling leaves the font unchanged.
func (a *App) cmdFontSize([]string) error {
	a.dialogs.Push(dialog.NewInput(TitleInput, PromptFontSize, "", a.applyFontSize, nil))
	return nil
}

func (a *App) applyFontSize(value string) {
	size, err := font.ParseSize(value)
	if err != nil {
		logger.Debugf("App: rejected font size %q: %v", value, err)
		a.notifier.Error(TitleError, font.SizeErrorMessage(err))
		return
	}
	a.fontChanged(a.fontState.SetSize(size))
}

func (a *App) cmdBold([]string) error {
	a.fontChanged(a.fontState.SetBold(!a.fontState.Bold()))
	return nil
}

func (a *App) cmdItalic([]string) error {
	a.fontChanged(a.fontState.SetItalic(!a.fontState.Italic()))
	return nil
}

// cmdUnderline flips the Underline checkbox. The flag is tracked but the
// applied font never underlines.
func (a *App) cmdUnderline([]string) error {
	a.fontChanged(a.fontState.SetUnderline(!a.fontState.Underline()))
	return nil
}

func (a *App) fontChanged(f font.Font) {
	a.menuBar.SetChecked(commands.Bold, a.fontState.Bold())
	a.menuBar.SetChecked(commands.Italic, a.fontState.Italic())
	a.menuBar.SetChecked(commands.Underline, a.fontState.Underline())
	logger.DebugTagf("font", "Font now %s", f)
	a.eventManager.Dispatch(event.TypeFontChanged, event.FontChangedData{Description: a.fontState.Describe()})
}
