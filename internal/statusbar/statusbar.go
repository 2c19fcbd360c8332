// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/tidepad/internal/theme"
	"github.com/bethropolis/tidepad/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleModified  tcell.Style
	StyleMessage   tcell.Style
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleModified:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlue).Bold(true),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// ConfigFromTheme takes the status bar styles from t.
func ConfigFromTheme(t *theme.Theme) Config {
	cfg := DefaultConfig()
	if t == nil {
		return cfg
	}
	cfg.StyleDefault = t.GetStyle(theme.StyleStatusBar)
	cfg.StyleModified = t.GetStyle(theme.StyleStatusBarModified)
	cfg.StyleMessage = t.GetStyle(theme.StyleStatusBarMessage)
	return cfg
}

// StatusBar is the last screen line: document state, cursor, font and a
// temporary message slot.
type StatusBar struct {
	config Config
	mu     sync.RWMutex
	now    func() time.Time

	cursorPos  types.Position
	isModified bool
	fontInfo   string
	editorMode string

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
		now:    time.Now,
	}
}

// SetConfig replaces the styles, e.g. after a theme change.
func (sb *StatusBar) SetConfig(config Config) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.config = config
}

// SetModified updates the unsaved-changes indicator.
func (sb *StatusBar) SetModified(modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.isModified = modified
}

// SetCursorInfo updates the cursor position shown.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

// SetFontInfo updates the font description, e.g. "Monospaced 13pt B I".
func (sb *StatusBar) SetFontInfo(desc string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.fontInfo = desc
}

// SetEditorMode updates the displayed editor mode.
func (sb *StatusBar) SetEditorMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.editorMode = mode
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Text returns the line that Draw would render and whether it is a
// temporary message. Expired messages are cleared.
func (sb *StatusBar) Text() (string, bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if !sb.tempMessageTime.IsZero() {
		if sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout {
			return sb.tempMessage, true
		}
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}
	return sb.defaultDisplayText(), false
}

func (sb *StatusBar) defaultDisplayText() string {
	modifiedIndicator := ""
	if sb.isModified {
		modifiedIndicator = " [Modified]"
	}
	fontIndicator := ""
	if sb.fontInfo != "" {
		fontIndicator = " -- " + sb.fontInfo
	}
	modeIndicator := ""
	if sb.editorMode != "" {
		modeIndicator = fmt.Sprintf(" -- %s", sb.editorMode)
	}

	cursor := sb.cursorPos
	return fmt.Sprintf("[Untitled]%s -- Line: %d, Col: %d%s%s",
		modifiedIndicator, cursor.Line+1, cursor.Col+1, fontIndicator, modeIndicator)
}

// Draw renders the status bar on the last screen line.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	text, isMessage := sb.Text()
	sb.mu.RLock()
	style := sb.config.StyleDefault
	if isMessage {
		style = sb.config.StyleMessage
	} else if sb.isModified {
		style = sb.config.StyleModified
	}
	sb.mu.RUnlock()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}
		if runes := gr.Runes(); len(runes) > 0 {
			screen.SetContent(currentX, y, runes[0], runes[1:], style)
		}
		currentX += clusterWidth
	}
}
