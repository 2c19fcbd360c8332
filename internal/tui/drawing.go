// internal/tui/drawing.go
package tui

import (
	"github.com/bethropolis/tidepad/internal/core"
	"github.com/bethropolis/tidepad/internal/core/cursor"
	"github.com/bethropolis/tidepad/internal/font"
	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/theme"
	"github.com/bethropolis/tidepad/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Area is a rectangle of screen cells.
type Area struct {
	X, Y, Width, Height int
}

// DrawText draws text at (x, y) clipped to maxWidth cells and returns the
// number of cells used.
func DrawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) int {
	used := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusterWidth := gr.Width()
		if used+clusterWidth > maxWidth {
			break
		}
		runes := gr.Runes()
		screen.SetContent(x+used, y, runes[0], runes[1:], style)
		for cw := 1; cw < clusterWidth; cw++ {
			screen.SetContent(x+used+cw, y, ' ', nil, style)
		}
		used += clusterWidth
	}
	return used
}

// TextWidth returns the display width of text.
func TextWidth(text string) int {
	return uniseg.StringWidth(text)
}

// Fill paints area with spaces in style.
func Fill(screen tcell.Screen, area Area, style tcell.Style) {
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// isPositionWithin reports whether pos lies in [start, end).
func isPositionWithin(pos, start, end types.Position) bool {
	if pos.Line < start.Line || pos.Line > end.Line {
		return false
	}
	if pos.Line == start.Line && pos.Col < start.Col {
		return false
	}
	if pos.Line == end.Line && pos.Col >= end.Col {
		return false
	}
	return true
}

// DrawBuffer draws the visible part of the buffer into area. Every text
// cell carries the font's style, so a bold or italic font applies to the
// whole text area at once.
func DrawBuffer(t *TUI, editor *core.Editor, activeTheme *theme.Theme, fnt font.Font, area Area, tabWidth int) {
	if area.Height <= 0 || area.Width <= 0 {
		return
	}
	if tabWidth <= 0 {
		tabWidth = cursor.DefaultTabWidth
	}
	defaultStyle := fnt.Apply(activeTheme.GetStyle(theme.StyleDefault))
	selectionStyle := fnt.Apply(activeTheme.GetStyle(theme.StyleSelection))

	viewY, viewX := editor.GetViewport()
	selStart, selEnd, selectionActive := editor.GetSelection()
	lines := editor.GetBuffer().Lines()

	Fill(t.screen, area, defaultStyle)

	for row := 0; row < area.Height; row++ {
		lineIdx := row + viewY
		if lineIdx >= len(lines) {
			break
		}
		screenY := area.Y + row

		gr := uniseg.NewGraphemes(string(lines[lineIdx]))
		visualX := 0
		runeIndex := 0
		for gr.Next() {
			clusterRunes := gr.Runes()
			clusterWidth := cursor.ClusterWidth(clusterRunes[0], gr.Width(), visualX, tabWidth)

			style := defaultStyle
			if selectionActive && isPositionWithin(types.Position{Line: lineIdx, Col: runeIndex}, selStart, selEnd) {
				style = selectionStyle
			}

			screenX := area.X + visualX - viewX
			if visualX+clusterWidth > viewX && screenX < area.X+area.Width {
				if clusterRunes[0] == '\t' {
					for i := 0; i < clusterWidth; i++ {
						if x := screenX + i; x >= area.X && x < area.X+area.Width {
							t.screen.SetContent(x, screenY, ' ', nil, style)
						}
					}
				} else if screenX >= area.X {
					t.screen.SetContent(screenX, screenY, clusterRunes[0], clusterRunes[1:], style)
					for cw := 1; cw < clusterWidth && screenX+cw < area.X+area.Width; cw++ {
						t.screen.SetContent(screenX+cw, screenY, ' ', nil, style)
					}
				}
			}

			visualX += clusterWidth
			runeIndex += len(clusterRunes)
			if visualX >= viewX+area.Width {
				break
			}
		}
	}
}

// DrawCursor places the terminal cursor, hiding it when it is outside area.
func DrawCursor(t *TUI, editor *core.Editor, area Area, tabWidth int) {
	if tabWidth <= 0 {
		tabWidth = cursor.DefaultTabWidth
	}
	pos := editor.GetCursor()
	viewY, viewX := editor.GetViewport()

	lineBytes, err := editor.GetBuffer().Line(pos.Line)
	visualCol := 0
	if err == nil {
		visualCol = cursor.VisualColumn(lineBytes, pos.Col, tabWidth)
	} else {
		logger.Debugf("DrawCursor: Error getting line %d: %v", pos.Line, err)
	}

	screenX := area.X + visualCol - viewX
	screenY := area.Y + pos.Line - viewY
	if screenX < area.X || screenX >= area.X+area.Width || screenY < area.Y || screenY >= area.Y+area.Height {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(screenX, screenY)
}
