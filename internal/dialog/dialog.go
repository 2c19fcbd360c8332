// Package dialog implements the modal dialogs drawn over the text area:
// messages, errors and single-line input prompts.
package dialog

import (
	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Kind selects a dialog's look and behaviour.
type Kind int

const (
	KindInfo Kind = iota
	KindError
	KindInput
)

func (k Kind) String() string {
	switch k {
	case KindInfo:
		return "info"
	case KindError:
		return "error"
	case KindInput:
		return "input"
	default:
		return "unknown"
	}
}

// Dialog is one modal box. Message dialogs close on Enter, Space or Esc.
// Input dialogs submit on Enter and cancel on Esc.
type Dialog struct {
	Kind    Kind
	Title   string
	Message string

	input  []rune
	cursor int

	onClose  func()
	onSubmit func(value string)
	onCancel func()
}

// NewMessage creates an information dialog. onClose may be nil.
func NewMessage(title, message string, onClose func()) *Dialog {
	return &Dialog{Kind: KindInfo, Title: title, Message: message, onClose: onClose}
}

// NewError creates an error dialog. onClose may be nil.
func NewError(title, message string, onClose func()) *Dialog {
	return &Dialog{Kind: KindError, Title: title, Message: message, onClose: onClose}
}

// NewInput creates a prompt. onSubmit receives the text exactly as typed;
// onCancel may be nil.
func NewInput(title, prompt, initial string, onSubmit func(string), onCancel func()) *Dialog {
	d := &Dialog{Kind: KindInput, Title: title, Message: prompt, onSubmit: onSubmit, onCancel: onCancel}
	d.SetValue(initial)
	return d
}

// Value returns the current input text.
func (d *Dialog) Value() string {
	return string(d.input)
}

// SetValue replaces the input text and puts the cursor at its end.
func (d *Dialog) SetValue(v string) {
	d.input = []rune(v)
	d.cursor = len(d.input)
}

// Cursor returns the input cursor as a rune index.
func (d *Dialog) Cursor() int {
	return d.cursor
}

// result is what closing a dialog should trigger.
type result func()

// handleKey applies ev. A non-nil result means the dialog closed; the
// caller pops it before running the result so callbacks can open new
// dialogs.
func (d *Dialog) handleKey(ev *tcell.EventKey) (closed bool, then result) {
	if d.Kind != KindInput {
		switch ev.Key() {
		case tcell.KeyEnter, tcell.KeyEscape:
			return true, d.closeResult()
		case tcell.KeyRune:
			if ev.Rune() == ' ' {
				return true, d.closeResult()
			}
		}
		return false, nil
	}

	switch ev.Key() {
	case tcell.KeyEnter:
		value := d.Value()
		logger.DebugTagf("dialog", "'%s' submitted %q", d.Title, value)
		return true, func() {
			if d.onSubmit != nil {
				d.onSubmit(value)
			}
		}
	case tcell.KeyEscape:
		logger.DebugTagf("dialog", "'%s' cancelled", d.Title)
		return true, func() {
			if d.onCancel != nil {
				d.onCancel()
			}
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if d.cursor > 0 {
			d.input = append(d.input[:d.cursor-1], d.input[d.cursor:]...)
			d.cursor--
		}
	case tcell.KeyDelete:
		if d.cursor < len(d.input) {
			d.input = append(d.input[:d.cursor], d.input[d.cursor+1:]...)
		}
	case tcell.KeyLeft:
		if d.cursor > 0 {
			d.cursor--
		}
	case tcell.KeyRight:
		if d.cursor < len(d.input) {
			d.cursor++
		}
	case tcell.KeyHome:
		d.cursor = 0
	case tcell.KeyEnd:
		d.cursor = len(d.input)
	case tcell.KeyRune:
		d.input = append(d.input, 0)
		copy(d.input[d.cursor+1:], d.input[d.cursor:])
		d.input[d.cursor] = ev.Rune()
		d.cursor++
	}
	return false, nil
}

func (d *Dialog) closeResult() result {
	return func() {
		if d.onClose != nil {
			d.onClose()
		}
	}
}
