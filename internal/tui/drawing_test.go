package tui

import (
	"strings"
	"testing"

	"github.com/bethropolis/tidepad/internal/buffer"
	"github.com/bethropolis/tidepad/internal/core"
	"github.com/bethropolis/tidepad/internal/core/clipboard"
	"github.com/bethropolis/tidepad/internal/font"
	"github.com/bethropolis/tidepad/internal/theme"
	"github.com/bethropolis/tidepad/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimTUI(t *testing.T, w, h int) (*TUI, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	tu, err := NewWithScreen(screen, &theme.PaperDark)
	require.NoError(t, err)
	t.Cleanup(tu.Close)
	screen.SetSize(w, h)
	return tu, screen
}

func row(screen tcell.SimulationScreen, y, n int) (string, []tcell.Style) {
	cells, width, _ := screen.GetContents()
	var b strings.Builder
	styles := make([]tcell.Style, 0, n)
	for x := 0; x < n; x++ {
		c := cells[y*width+x]
		if len(c.Runes) > 0 {
			b.WriteString(string(c.Runes))
		}
		styles = append(styles, c.Style)
	}
	return b.String(), styles
}

func TestDrawTextClips(t *testing.T) {
	tu, screen := newSimTUI(t, 10, 1)
	used := DrawText(tu.GetScreen(), 0, 0, 4, "hello", tcell.StyleDefault)
	tu.Show()

	assert.Equal(t, 4, used)
	text, _ := row(screen, 0, 4)
	assert.Equal(t, "hell", text)
	assert.Equal(t, 2, TextWidth("日"))
}

func TestDrawBufferAppliesFontStyle(t *testing.T) {
	tu, screen := newSimTUI(t, 20, 4)
	e := core.NewEditor(buffer.NewSliceBufferFromBytes([]byte("abc\nde")), core.Options{Clipboard: &clipboard.Register{}})
	e.SetViewSize(20, 3)

	fnt := font.Font{Family: "Monospaced", Size: 13, Style: font.Bold | font.Italic}
	area := Area{X: 0, Y: 1, Width: 20, Height: 3}
	DrawBuffer(tu, e, &theme.PaperDark, fnt, area, 4)
	DrawCursor(tu, e, area, 4)
	tu.Show()

	text, styles := row(screen, 1, 3)
	assert.Equal(t, "abc", text)
	_, _, attrs := styles[0].Decompose()
	assert.NotZero(t, attrs&tcell.AttrBold)
	assert.NotZero(t, attrs&tcell.AttrItalic)
	assert.Zero(t, attrs&tcell.AttrUnderline)

	text, _ = row(screen, 2, 2)
	assert.Equal(t, "de", text)

	x, y, visible := screen.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 0, x)
	assert.Equal(t, 1, y)
}

func TestDrawBufferHighlightsSelection(t *testing.T) {
	tu, screen := newSimTUI(t, 10, 2)
	e := core.NewEditor(buffer.NewSliceBufferFromBytes([]byte("abcd")), core.Options{Clipboard: &clipboard.Register{}})
	e.SetViewSize(10, 2)
	e.SetCursor(types.Position{Col: 1})
	e.MoveCursor(0, 2, true)

	DrawBuffer(tu, e, &theme.PaperDark, font.Font{}, Area{Width: 10, Height: 2}, 4)
	tu.Show()

	_, styles := row(screen, 0, 4)
	sel := theme.PaperDark.GetStyle(theme.StyleSelection)
	def := theme.PaperDark.GetStyle(theme.StyleDefault)
	assert.Equal(t, []tcell.Style{def, sel, sel, def}, styles)
}

func TestCursorFollowsTabIndentedLine(t *testing.T) {
	tu, screen := newSimTUI(t, 40, 5)
	line := strings.Repeat("\t", 30) + "x"
	e := core.NewEditor(buffer.NewSliceBufferFromBytes([]byte(line)), core.Options{TabWidth: 4, Clipboard: &clipboard.Register{}})
	area := Area{Width: 40, Height: 5}
	e.SetViewSize(area.Width, area.Height)
	e.SetCursor(types.Position{Col: 31})

	DrawBuffer(tu, e, &theme.PaperDark, font.Font{}, area, 4)
	DrawCursor(tu, e, area, 4)
	tu.Show()

	_, viewX := e.GetViewport()
	assert.Equal(t, 121-40+1, viewX)
	x, y, visible := screen.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 39, x)
	assert.Equal(t, 0, y)

	text, _ := row(screen, 0, 40)
	assert.Equal(t, "x", strings.TrimSpace(text))
	assert.Equal(t, 38, strings.Index(text, "x"))
}
