package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestProcessEvent(t *testing.T) {
	p := NewInputProcessor()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want ActionEvent
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), ActionEvent{Action: ActionInsertRune, Rune: 'a'}},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift), ActionEvent{Action: ActionInsertRune, Rune: 'A'}},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ActionEvent{Action: ActionInsertRune, Rune: '\t'}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionEvent{Action: ActionInsertNewLine}},
		{"shift right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift), ActionEvent{Action: ActionMoveRight, Shift: true}},
		{"save", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), ActionEvent{Action: ActionSave}},
		{"undo", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), ActionEvent{Action: ActionUndo}},
		{"redo", tcell.NewEventKey(tcell.KeyCtrlY, 0, tcell.ModCtrl), ActionEvent{Action: ActionRedo}},
		{"bold", tcell.NewEventKey(tcell.KeyCtrlB, 0, tcell.ModCtrl), ActionEvent{Action: ActionToggleBold}},
		{"italic", tcell.NewEventKey(tcell.KeyCtrlT, 0, tcell.ModCtrl), ActionEvent{Action: ActionToggleItalic}},
		{"word count", tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl), ActionEvent{Action: ActionWordCount}},
		{"quit", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), ActionEvent{Action: ActionQuit}},
		{"menu", tcell.NewEventKey(tcell.KeyF10, 0, tcell.ModNone), ActionEvent{Action: ActionOpenMenu}},
		{"alt hotkey", tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModAlt), ActionEvent{Action: ActionOpenMenuHotkey, Rune: 'f'}},
		{"unbound", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), ActionEvent{Action: ActionUnknown}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ProcessEvent(tt.ev))
		})
	}
}

func TestActionHelpers(t *testing.T) {
	assert.True(t, ActionMoveHome.IsMovement())
	assert.False(t, ActionSave.IsMovement())
	assert.Equal(t, "ToggleBold", ActionToggleBold.String())
	assert.Equal(t, "Unknown", Action(999).String())
}
