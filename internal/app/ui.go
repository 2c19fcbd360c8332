package app

import (
	"github.com/bethropolis/tidepad/internal/config"
	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/tui"
)

// textArea is the region between the menu bar and the status bar.
func textArea(width, height int) tui.Area {
	h := height - config.MenuBarHeight - config.StatusBarHeight
	if h < 0 {
		h = 0
	}
	return tui.Area{X: 0, Y: config.MenuBarHeight, Width: width, Height: h}
}

// drawEditor clears the screen and redraws all components. Dialogs and
// the open menu are drawn last so they cover the text.
func (a *App) drawEditor() {
	activeTheme := a.themeManager.Current()
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	area := textArea(width, height)
	tabWidth := a.cfg.Editor.TabWidth

	logger.DebugTagf("draw", "drawEditor: Screen Size (%d x %d), text area %d rows", width, height, area.Height)

	a.editor.SetViewSize(area.Width, area.Height)
	a.tuiManager.Clear()
	tui.DrawBuffer(a.tuiManager, a.editor, activeTheme, a.fontState.Font(), area, tabWidth)
	tui.DrawCursor(a.tuiManager, a.editor, area, tabWidth)
	a.statusBar.Draw(screen, width, height)
	a.menuBar.Draw(screen, activeTheme, width)
	if a.menuBar.IsOpen() {
		screen.HideCursor()
	}
	a.dialogs.Draw(screen, activeTheme, width, height)
	a.tuiManager.Show()
}
