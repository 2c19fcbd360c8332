// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names looked up by the renderer.
const (
	StyleDefault           = "Default"
	StyleSelection         = "Selection"
	StyleMenuBar           = "MenuBar"
	StyleMenuActive        = "MenuBar.Active"
	StyleMenuItem          = "Menu"
	StyleMenuSelected      = "Menu.Selected"
	StyleDialog            = "Dialog"
	StyleDialogTitle       = "Dialog.Title"
	StyleDialogError       = "Dialog.Error"
	StyleDialogInput       = "Dialog.Input"
	StyleStatusBar         = "StatusBar"
	StyleStatusBarModified = "StatusBar.Modified"
	StyleStatusBarMessage  = "StatusBar.Message"
)

// Theme is a named set of styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the style for name, falling back to the part before the
// first dot, then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// PaperDark is the built-in theme.
var PaperDark = newPaperDark()

func newPaperDark() Theme {
	background := tcell.NewHexColor(0x2a2f38)
	foreground := tcell.NewHexColor(0xc5cdd9)
	muted := tcell.NewHexColor(0x5c6370)
	yellow := tcell.NewHexColor(0xe5c07b)
	blue := tcell.NewHexColor(0x61afef)
	red := tcell.NewHexColor(0xe06c75)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(foreground)
	bar := tcell.StyleDefault.Background(background).Foreground(foreground)

	return Theme{
		Name:   "Paper Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:   base,
			StyleSelection: base.Reverse(true),

			StyleMenuBar:      bar,
			StyleMenuActive:   bar.Background(blue).Foreground(background).Bold(true),
			StyleMenuItem:     bar,
			StyleMenuSelected: bar.Background(blue).Foreground(background),
			"Menu.Disabled":   bar.Foreground(muted),

			StyleDialog:      bar,
			StyleDialogTitle: bar.Foreground(yellow).Bold(true),
			StyleDialogError: bar.Foreground(red).Bold(true),
			StyleDialogInput: base.Underline(true),

			StyleStatusBar:         bar,
			StyleStatusBarModified: bar.Foreground(yellow),
			StyleStatusBarMessage:  bar.Bold(true),
		},
	}
}
