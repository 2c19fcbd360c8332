// Package menu is the menu bar model: which menu is open, which item is
// highlighted and which checkbox items are checked.
package menu

import (
	"strings"
	"unicode"

	"github.com/bethropolis/tidepad/internal/commands"
	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Item is one entry of a drop-down menu.
type Item struct {
	Label     string
	Command   string
	Shortcut  string
	Checkable bool
	Separator bool
}

// Menu is a titled drop-down. Alt+Hotkey opens it.
type Menu struct {
	Title  string
	Hotkey rune
	Items  []Item
}

func separator() Item { return Item{Separator: true} }

// Default returns the editor's menus.
func Default() []Menu {
	return []Menu{
		{Title: "File", Hotkey: 'f', Items: []Item{
			{Label: "Save", Command: commands.Save, Shortcut: "Ctrl+S"},
			separator(),
			{Label: "Exit", Command: commands.Quit, Shortcut: "Ctrl+Q"},
		}},
		{Title: "Edit", Hotkey: 'e', Items: []Item{
			{Label: "Undo", Command: commands.Undo, Shortcut: "Ctrl+Z"},
			{Label: "Redo", Command: commands.Redo, Shortcut: "Ctrl+Y"},
			separator(),
			{Label: "Cut", Command: commands.Cut, Shortcut: "Ctrl+X"},
			{Label: "Copy", Command: commands.Copy, Shortcut: "Ctrl+C"},
			{Label: "Paste", Command: commands.Paste, Shortcut: "Ctrl+V"},
			separator(),
			{Label: "Select All", Command: commands.SelectAll, Shortcut: "Ctrl+A"},
		}},
		{Title: "Font", Hotkey: 'n', Items: []Item{
			{Label: "Font Size", Command: commands.FontSize},
			separator(),
			{Label: "Bold", Command: commands.Bold, Shortcut: "Ctrl+B", Checkable: true},
			{Label: "Italic", Command: commands.Italic, Shortcut: "Ctrl+T", Checkable: true},
			{Label: "Underline", Command: commands.Underline, Shortcut: "Ctrl+U", Checkable: true},
		}},
		{Title: "Word Count", Hotkey: 'w', Items: []Item{
			{Label: "Count Words", Command: commands.WordCount, Shortcut: "Ctrl+W"},
		}},
	}
}

// Bar tracks the open menu and highlighted item.
type Bar struct {
	menus    []Menu
	open     bool
	active   int
	selected int
	checked  map[string]bool
}

// NewBar creates a closed menu bar.
func NewBar(menus []Menu) *Bar {
	return &Bar{menus: menus, checked: make(map[string]bool)}
}

// IsOpen reports whether a drop-down is showing.
func (b *Bar) IsOpen() bool {
	return b.open
}

// Active returns the open menu and highlighted item indexes.
func (b *Bar) Active() (menuIndex, itemIndex int) {
	return b.active, b.selected
}

// Open shows menu index with its first selectable item highlighted.
func (b *Bar) Open(index int) {
	if index < 0 || index >= len(b.menus) {
		return
	}
	b.open = true
	b.active = index
	b.selected = -1
	b.MoveItem(1)
	logger.DebugTagf("menu", "Opened '%s'", b.menus[index].Title)
}

// OpenHotkey opens the menu whose hotkey is r. It reports whether one matched.
func (b *Bar) OpenHotkey(r rune) bool {
	r = unicode.ToLower(r)
	for i, m := range b.menus {
		if m.Hotkey == r {
			b.Open(i)
			return true
		}
	}
	return false
}

// Close hides the drop-down.
func (b *Bar) Close() {
	b.open = false
}

// MoveMenu switches to the neighbouring menu, wrapping at either end.
func (b *Bar) MoveMenu(delta int) {
	if len(b.menus) == 0 {
		return
	}
	n := len(b.menus)
	b.Open(((b.active+delta)%n + n) % n)
}

// MoveItem moves the highlight by delta, skipping separators and wrapping.
func (b *Bar) MoveItem(delta int) {
	items := b.menus[b.active].Items
	n := len(items)
	if n == 0 || delta == 0 {
		return
	}
	step := 1
	if delta < 0 {
		step = -1
	}
	idx := b.selected
	for moved := 0; moved < n; moved++ {
		idx = ((idx+step)%n + n) % n
		if !items[idx].Separator {
			b.selected = idx
			return
		}
	}
}

// Selected returns the highlighted item of the open menu.
func (b *Bar) Selected() (Item, bool) {
	if !b.open || b.selected < 0 || b.selected >= len(b.menus[b.active].Items) {
		return Item{}, false
	}
	return b.menus[b.active].Items[b.selected], true
}

// SetChecked records the checkbox state shown for command.
func (b *Bar) SetChecked(command string, on bool) {
	b.checked[command] = on
}

// Checked reports the checkbox state of command.
func (b *Bar) Checked(command string) bool {
	return b.checked[command]
}

// HandleKey processes a key while the bar is open. It returns the command
// of an activated item, which closes the bar.
func (b *Bar) HandleKey(ev *tcell.EventKey) (command string, handled bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyF10:
		b.Close()
		return "", true
	case tcell.KeyLeft:
		b.MoveMenu(-1)
		return "", true
	case tcell.KeyRight:
		b.MoveMenu(1)
		return "", true
	case tcell.KeyUp:
		b.MoveItem(-1)
		return "", true
	case tcell.KeyDown:
		b.MoveItem(1)
		return "", true
	case tcell.KeyEnter:
		item, ok := b.Selected()
		b.Close()
		if !ok {
			return "", true
		}
		return item.Command, true
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return "", b.OpenHotkey(ev.Rune())
		}
		return b.activateByInitial(ev.Rune())
	}
	return "", false
}

// activateByInitial runs the first item of the open menu whose label starts
// with r.
func (b *Bar) activateByInitial(r rune) (string, bool) {
	want := strings.ToLower(string(r))
	for i, item := range b.menus[b.active].Items {
		if !item.Separator && strings.HasPrefix(strings.ToLower(item.Label), want) {
			b.selected = i
			b.Close()
			return item.Command, true
		}
	}
	return "", false
}
