package menu

import (
	"fmt"
	"strings"

	"github.com/bethropolis/tidepad/internal/theme"
	"github.com/bethropolis/tidepad/internal/tui"
	"github.com/gdamore/tcell/v2"
)

const titlePadding = 1

// titleX returns the screen column where menu index starts.
func (b *Bar) titleX(index int) int {
	x := 0
	for i := 0; i < index; i++ {
		x += tui.TextWidth(b.menus[i].Title) + 2*titlePadding
	}
	return x
}

// ItemText returns the label of item as drawn, with a checkbox for
// checkable items and the shortcut right-aligned to width.
func (b *Bar) ItemText(item Item, width int) string {
	if item.Separator {
		return strings.Repeat("─", width)
	}
	label := "    " + item.Label
	if item.Checkable {
		mark := " "
		if b.checked[item.Command] {
			mark = "x"
		}
		label = fmt.Sprintf("[%s] %s", mark, item.Label)
	}
	gap := width - tui.TextWidth(label) - tui.TextWidth(item.Shortcut)
	if gap < 1 {
		gap = 1
	}
	return label + strings.Repeat(" ", gap) + item.Shortcut
}

func (b *Bar) dropDownWidth(m Menu) int {
	width := 0
	for _, item := range m.Items {
		w := 4 + tui.TextWidth(item.Label) + 2 + tui.TextWidth(item.Shortcut)
		if w > width {
			width = w
		}
	}
	return width
}

// Draw renders the bar on row 0 and, when open, the drop-down below the
// active title.
func (b *Bar) Draw(screen tcell.Screen, activeTheme *theme.Theme, width int) {
	barStyle := activeTheme.GetStyle(theme.StyleMenuBar)
	activeStyle := activeTheme.GetStyle(theme.StyleMenuActive)
	tui.Fill(screen, tui.Area{Width: width, Height: 1}, barStyle)

	for i, m := range b.menus {
		x := b.titleX(i)
		if x >= width {
			break
		}
		style := barStyle
		if b.open && i == b.active {
			style = activeStyle
		}
		title := strings.Repeat(" ", titlePadding) + m.Title + strings.Repeat(" ", titlePadding)
		tui.DrawText(screen, x, 0, width-x, title, style)
	}

	if !b.open {
		return
	}
	m := b.menus[b.active]
	itemStyle := activeTheme.GetStyle(theme.StyleMenuItem)
	selectedStyle := activeTheme.GetStyle(theme.StyleMenuSelected)
	x := b.titleX(b.active)
	inner := b.dropDownWidth(m)
	for i, item := range m.Items {
		style := itemStyle
		if i == b.selected {
			style = selectedStyle
		}
		y := 1 + i
		tui.Fill(screen, tui.Area{X: x, Y: y, Width: inner + 2, Height: 1}, style)
		tui.DrawText(screen, x+1, y, inner, b.ItemText(item, inner), style)
	}
}
