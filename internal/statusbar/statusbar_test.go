package statusbar

import (
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/tidepad/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultText(t *testing.T) {
	sb := New(DefaultConfig())
	sb.SetCursorInfo(types.Position{Line: 2, Col: 4})
	sb.SetFontInfo("Monospaced 13pt B")

	text, isMessage := sb.Text()
	assert.False(t, isMessage)
	assert.Equal(t, "[Untitled] -- Line: 3, Col: 5 -- Monospaced 13pt B", text)

	sb.SetModified(true)
	sb.SetEditorMode("MENU")
	text, _ = sb.Text()
	assert.Equal(t, "[Untitled] [Modified] -- Line: 3, Col: 5 -- Monospaced 13pt B -- MENU", text)
}

func TestTemporaryMessageExpires(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sb := New(DefaultConfig())
	sb.now = func() time.Time { return now }

	sb.SetTemporaryMessage("Lines: %d", 3)
	text, isMessage := sb.Text()
	assert.True(t, isMessage)
	assert.Equal(t, "Lines: 3", text)

	now = now.Add(5 * time.Second)
	text, isMessage = sb.Text()
	assert.False(t, isMessage)
	assert.True(t, strings.HasPrefix(text, "[Untitled]"))
}

func TestDrawWritesLastLine(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(40, 3)

	sb := New(DefaultConfig())
	sb.SetTemporaryMessage("hello")
	sb.Draw(screen, 40, 3)
	screen.Show()

	cells, width, _ := screen.GetContents()
	var got strings.Builder
	for x := 0; x < 5; x++ {
		got.WriteString(string(cells[2*width+x].Runes))
	}
	assert.Equal(t, "hello", got.String())
}
