package dialog

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/bethropolis/tidepad/internal/logger"
	native "github.com/sqweek/dialog"
)

// SavePicker asks the user where to save. done receives ok=false when the
// user cancels; it may run after PickSavePath returns.
type SavePicker interface {
	PickSavePath(done func(path string, ok bool))
}

// Notifier shows one-button messages.
type Notifier interface {
	Info(title, message string)
	Error(title, message string)
}

// PromptPicker asks for a path with an in-terminal input dialog.
type PromptPicker struct {
	dialogs *Manager
}

// NewPromptPicker creates a picker that opens its prompt on dialogs.
func NewPromptPicker(dialogs *Manager) *PromptPicker {
	return &PromptPicker{dialogs: dialogs}
}

// PickSavePath opens the prompt. An empty path counts as cancel.
func (p *PromptPicker) PickSavePath(done func(path string, ok bool)) {
	p.dialogs.Push(NewInput("Save", "Save as:", "",
		func(path string) { done(path, path != "") },
		func() { done("", false) },
	))
}

// NativePicker uses the operating system's save dialog and falls back to
// another picker when no native dialog is available.
type NativePicker struct {
	Title    string
	Fallback SavePicker
	save     func(title string) (string, error)
}

// NewNativePicker creates a native picker with the given fallback.
func NewNativePicker(fallback SavePicker) *NativePicker {
	return &NativePicker{
		Title:    "Save",
		Fallback: fallback,
		save: func(title string) (string, error) {
			return native.File().Title(title).Save()
		},
	}
}

// PickSavePath blocks until the native dialog closes.
func (p *NativePicker) PickSavePath(done func(path string, ok bool)) {
	var path string
	err := guard(func() (err error) {
		path, err = p.save(p.Title)
		return err
	})
	switch {
	case errors.Is(err, native.ErrCancelled):
		done("", false)
	case err != nil:
		logger.Warnf("Native save dialog unavailable: %v", err)
		if p.Fallback == nil {
			done("", false)
			return
		}
		p.Fallback.PickSavePath(done)
	default:
		done(path, path != "")
	}
}

// TerminalNotifier shows messages as dialogs on a Manager.
type TerminalNotifier struct {
	dialogs *Manager
}

// NewTerminalNotifier creates a notifier backed by dialogs.
func NewTerminalNotifier(dialogs *Manager) *TerminalNotifier {
	return &TerminalNotifier{dialogs: dialogs}
}

func (n *TerminalNotifier) Info(title, message string) {
	n.dialogs.Push(NewMessage(title, message, nil))
}

func (n *TerminalNotifier) Error(title, message string) {
	n.dialogs.Push(NewError(title, message, nil))
}

// NativeNotifier shows messages with the operating system's message box,
// or on Fallback when the toolkit fails.
type NativeNotifier struct {
	Fallback Notifier
	show     func(title, message string, isError bool)
}

// NewNativeNotifier creates a native notifier with the given fallback.
func NewNativeNotifier(fallback Notifier) *NativeNotifier {
	return &NativeNotifier{
		Fallback: fallback,
		show: func(title, message string, isError bool) {
			box := native.Message("%s", message).Title(title)
			if isError {
				box.Error()
			} else {
				box.Info()
			}
		},
	}
}

func (n *NativeNotifier) Info(title, message string) {
	n.notify(title, message, false)
}

func (n *NativeNotifier) Error(title, message string) {
	n.notify(title, message, true)
}

func (n *NativeNotifier) notify(title, message string, isError bool) {
	err := guard(func() error {
		n.show(title, message, isError)
		return nil
	})
	if err == nil {
		return
	}
	logger.Warnf("Native message box unavailable: %v", err)
	switch {
	case n.Fallback == nil:
	case isError:
		n.Fallback.Error(title, message)
	default:
		n.Fallback.Info(title, message)
	}
}

// guard runs fn and turns a panic into an error. The GTK backend panics
// instead of returning an error when it could not initialise.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("native dialog failed: %v", r)
		}
	}()
	return fn()
}

// NativeAvailable reports whether a native dialog can be shown at all. On
// Linux and the BSDs that needs a graphical display.
func NativeAvailable() bool {
	switch runtime.GOOS {
	case "windows", "darwin":
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}
