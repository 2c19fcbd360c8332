package dialog

import (
	"github.com/bethropolis/tidepad/internal/theme"
	"github.com/bethropolis/tidepad/internal/tui"
	"github.com/gdamore/tcell/v2"
)

const (
	minInputWidth = 30
	boxPadding    = 2
)

func (d *Dialog) hint() string {
	if d.Kind == KindInput {
		return "Enter: OK  Esc: Cancel"
	}
	return "[ OK ]"
}

// Draw renders the dialog centred on a width x height screen and places the
// terminal cursor in the input field.
func (d *Dialog) Draw(screen tcell.Screen, activeTheme *theme.Theme, width, height int) {
	boxStyle := activeTheme.GetStyle(theme.StyleDialog)
	titleStyle := activeTheme.GetStyle(theme.StyleDialogTitle)
	textStyle := boxStyle
	if d.Kind == KindError {
		textStyle = activeTheme.GetStyle(theme.StyleDialogError)
	}

	inner := tui.TextWidth(d.Message)
	if w := tui.TextWidth(d.Title) + 2; w > inner {
		inner = w
	}
	if w := tui.TextWidth(d.hint()); w > inner {
		inner = w
	}
	if d.Kind == KindInput && inner < minInputWidth {
		inner = minInputWidth
	}
	boxWidth := inner + 2*boxPadding
	if boxWidth > width {
		boxWidth = width
		inner = boxWidth - 2*boxPadding
	}
	rows := 5
	if d.Kind == KindInput {
		rows = 6
	}
	x0 := (width - boxWidth) / 2
	y0 := (height - rows) / 2
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}

	tui.Fill(screen, tui.Area{X: x0, Y: y0, Width: boxWidth, Height: rows}, boxStyle)
	d.drawBorder(screen, x0, y0, boxWidth, rows, boxStyle)
	tui.DrawText(screen, x0+boxPadding, y0, inner, " "+d.Title+" ", titleStyle)

	y := y0 + 2
	tui.DrawText(screen, x0+boxPadding, y, inner, d.Message, textStyle)
	y++

	if d.Kind == KindInput {
		inputStyle := activeTheme.GetStyle(theme.StyleDialogInput)
		tui.Fill(screen, tui.Area{X: x0 + boxPadding, Y: y, Width: inner, Height: 1}, inputStyle)
		value, cursorCol := visibleInput(d.input, d.cursor, inner)
		tui.DrawText(screen, x0+boxPadding, y, inner, value, inputStyle)
		screen.ShowCursor(x0+boxPadding+cursorCol, y)
		y++
	} else {
		screen.HideCursor()
	}

	hint := d.hint()
	tui.DrawText(screen, x0+(boxWidth-tui.TextWidth(hint))/2, y, inner, hint, boxStyle)
}

func (d *Dialog) drawBorder(screen tcell.Screen, x0, y0, w, h int, style tcell.Style) {
	right, bottom := x0+w-1, y0+h-1
	for x := x0 + 1; x < right; x++ {
		screen.SetContent(x, y0, tcell.RuneHLine, nil, style)
		screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := y0 + 1; y < bottom; y++ {
		screen.SetContent(x0, y, tcell.RuneVLine, nil, style)
		screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	screen.SetContent(x0, y0, tcell.RuneULCorner, nil, style)
	screen.SetContent(right, y0, tcell.RuneURCorner, nil, style)
	screen.SetContent(x0, bottom, tcell.RuneLLCorner, nil, style)
	screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// visibleInput scrolls the input so the cursor fits in width cells. It
// returns the text to draw and the cursor's cell offset within it.
func visibleInput(input []rune, cursor, width int) (string, int) {
	start := 0
	for tui.TextWidth(string(input[start:cursor])) >= width && start < cursor {
		start++
	}
	return string(input[start:]), tui.TextWidth(string(input[start:cursor]))
}
