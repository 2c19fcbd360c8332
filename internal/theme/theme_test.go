package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStyleFallbacks(t *testing.T) {
	th := &Theme{
		Name: "t",
		Styles: map[string]tcell.Style{
			"Default": tcell.StyleDefault.Foreground(tcell.ColorRed),
			"Menu":    tcell.StyleDefault.Foreground(tcell.ColorBlue),
		},
	}
	assert.Equal(t, th.Styles["Menu"], th.GetStyle("Menu.Selected"), "falls back to base name")
	assert.Equal(t, th.Styles["Default"], th.GetStyle("Nope"), "falls back to Default")

	empty := &Theme{Name: "empty"}
	assert.Equal(t, tcell.StyleDefault, empty.GetStyle("Anything"))
}

func TestParseThemeInheritsDefault(t *testing.T) {
	th, err := ParseTheme(`
name = "Light"
[styles.Default]
fg = "#000000"
bg = "white"
[styles.StatusBar]
bold = true
`)
	require.NoError(t, err)
	assert.Equal(t, "Light", th.Name)

	fg, bg, attrs := th.GetStyle(StyleStatusBar).Decompose()
	assert.Equal(t, tcell.NewHexColor(0x000000), fg)
	assert.Equal(t, tcell.ColorWhite, bg)
	assert.NotZero(t, attrs&tcell.AttrBold)

	_, ok := th.Styles[StyleDialogTitle]
	assert.True(t, ok, "unnamed styles come from the built-in theme")
}

func TestParseThemeErrors(t *testing.T) {
	_, err := ParseTheme(`name = [`)
	assert.Error(t, err)

	_, err = ParseTheme("[styles.Default]\nfg = \"#12\"\n")
	assert.Error(t, err)
}

func TestManagerLoadsThemeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.toml")
	require.NoError(t, os.WriteFile(path, []byte("[styles.Selection]\nreverse = false\n"), 0644))

	m := NewManager(path)
	require.NoError(t, m.LoadError())
	assert.Equal(t, "mine", m.Current().Name)
	_, _, attrs := m.Current().GetStyle(StyleSelection).Decompose()
	assert.Zero(t, attrs&tcell.AttrReverse)
}

func TestManagerKeepsBuiltinOnBadFile(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, m.LoadError())
	assert.Equal(t, PaperDark.Name, m.Current().Name)
}
