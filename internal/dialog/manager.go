package dialog

import (
	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// Manager is the stack of open dialogs. Only the top one receives keys and
// is drawn.
type Manager struct {
	stack []*Dialog
}

// NewManager creates an empty dialog stack.
func NewManager() *Manager {
	return &Manager{}
}

// Push opens d above any open dialog.
func (m *Manager) Push(d *Dialog) {
	logger.DebugTagf("dialog", "Opening %s dialog '%s': %s", d.Kind, d.Title, d.Message)
	m.stack = append(m.stack, d)
}

// Active returns the top dialog, or nil.
func (m *Manager) Active() *Dialog {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// IsOpen reports whether any dialog is showing.
func (m *Manager) IsOpen() bool {
	return len(m.stack) > 0
}

// Len returns the number of open dialogs.
func (m *Manager) Len() int {
	return len(m.stack)
}

// HandleKey routes ev to the top dialog. It reports whether a dialog
// consumed the key.
func (m *Manager) HandleKey(ev *tcell.EventKey) bool {
	d := m.Active()
	if d == nil {
		return false
	}
	closed, then := d.handleKey(ev)
	if closed {
		m.stack = m.stack[:len(m.stack)-1]
		if then != nil {
			then()
		}
	}
	return true
}

// Draw renders the top dialog centred on a screen of the given size.
func (m *Manager) Draw(screen tcell.Screen, activeTheme *theme.Theme, width, height int) {
	if d := m.Active(); d != nil {
		d.Draw(screen, activeTheme, width, height)
	}
}
