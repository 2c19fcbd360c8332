package dialog

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/bethropolis/tidepad/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	native "github.com/sqweek/dialog"
)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func typeText(m *Manager, s string) {
	for _, r := range s {
		m.HandleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func TestInputSubmitsUntrimmedValue(t *testing.T) {
	m := NewManager()
	var got *string
	m.Push(NewInput("Input", "Enter new font size:", "", func(v string) { got = &v }, nil))

	typeText(m, " 24x")
	m.HandleKey(key(tcell.KeyBackspace2))
	m.HandleKey(key(tcell.KeyEnter))

	require.NotNil(t, got)
	assert.Equal(t, " 24", *got)
	assert.False(t, m.IsOpen())
}

func TestInputEditing(t *testing.T) {
	d := NewInput("t", "p", "ac", nil, nil)
	m := NewManager()
	m.Push(d)

	m.HandleKey(key(tcell.KeyLeft))
	typeText(m, "b")
	assert.Equal(t, "abc", d.Value())
	assert.Equal(t, 2, d.Cursor())

	m.HandleKey(key(tcell.KeyHome))
	m.HandleKey(key(tcell.KeyDelete))
	assert.Equal(t, "bc", d.Value())
	m.HandleKey(key(tcell.KeyEnd))
	assert.Equal(t, 2, d.Cursor())
}

func TestInputCancel(t *testing.T) {
	m := NewManager()
	cancelled, submitted := false, false
	m.Push(NewInput("t", "p", "", func(string) { submitted = true }, func() { cancelled = true }))
	typeText(m, "12")
	m.HandleKey(key(tcell.KeyEscape))

	assert.True(t, cancelled)
	assert.False(t, submitted)
	assert.False(t, m.IsOpen())
}

func TestCallbackCanOpenNextDialog(t *testing.T) {
	m := NewManager()
	m.Push(NewInput("t", "p", "", func(v string) {
		m.Push(NewError("Error", "bad "+v, nil))
	}, nil))
	typeText(m, "x")
	m.HandleKey(key(tcell.KeyEnter))

	require.Equal(t, 1, m.Len())
	assert.Equal(t, KindError, m.Active().Kind)
	assert.Equal(t, "bad x", m.Active().Message)

	assert.True(t, m.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, m.IsOpen(), "other keys leave a message open")
	m.HandleKey(key(tcell.KeyEnter))
	assert.False(t, m.IsOpen())
	assert.False(t, m.HandleKey(key(tcell.KeyEnter)), "no dialog to consume keys")
}

func TestPromptPicker(t *testing.T) {
	m := NewManager()
	p := NewPromptPicker(m)

	var path string
	var ok bool
	p.PickSavePath(func(pa string, o bool) { path, ok = pa, o })
	typeText(m, "/tmp/a.txt")
	m.HandleKey(key(tcell.KeyEnter))
	assert.True(t, ok)
	assert.Equal(t, "/tmp/a.txt", path)

	p.PickSavePath(func(pa string, o bool) { path, ok = pa, o })
	m.HandleKey(key(tcell.KeyEnter))
	assert.False(t, ok, "empty path is a cancel")
}

func TestNativePickerCancelAndFallback(t *testing.T) {
	m := NewManager()
	p := NewNativePicker(NewPromptPicker(m))

	p.save = func(string) (string, error) { return "", native.ErrCancelled }
	called, ok := false, true
	p.PickSavePath(func(_ string, o bool) { called, ok = true, o })
	assert.True(t, called)
	assert.False(t, ok)
	assert.False(t, m.IsOpen())

	p.save = func(string) (string, error) { return "", errors.New("no display") }
	p.PickSavePath(func(string, bool) {})
	assert.True(t, m.IsOpen(), "falls back to the prompt")

	p.save = func(string) (string, error) { return "/x/y.txt", nil }
	var path string
	p.PickSavePath(func(pa string, o bool) { path = pa })
	assert.Equal(t, "/x/y.txt", path)
}

func TestNativePickerRecoversFromToolkitPanic(t *testing.T) {
	m := NewManager()
	p := NewNativePicker(NewPromptPicker(m))
	p.save = func(string) (string, error) { panic("gtk initialisation failed") }

	var called bool
	require.NotPanics(t, func() {
		p.PickSavePath(func(string, bool) { called = true })
	})
	assert.False(t, called, "the prompt decides, not the failed dialog")
	require.True(t, m.IsOpen(), "falls back to the prompt")

	typeText(m, "/tmp/out.txt")
	m.HandleKey(key(tcell.KeyEnter))
	assert.True(t, called)
}

func TestNativeNotifierFallsBack(t *testing.T) {
	m := NewManager()
	n := NewNativeNotifier(NewTerminalNotifier(m))

	var shown []string
	n.show = func(title, message string, isError bool) { shown = append(shown, message) }
	n.Info("Success", "File saved successfully.")
	assert.Equal(t, []string{"File saved successfully."}, shown)
	assert.False(t, m.IsOpen())

	n.show = func(string, string, bool) { panic("gtk initialisation failed") }
	require.NotPanics(t, func() { n.Error("Error", "Error saving the file.") })
	d := m.Active()
	require.NotNil(t, d)
	assert.Equal(t, KindError, d.Kind)
	assert.Equal(t, "Error saving the file.", d.Message)

	m.HandleKey(key(tcell.KeyEnter))
	require.NotPanics(t, func() { n.Info("Success", "done") })
	require.NotNil(t, m.Active())
	assert.Equal(t, KindInfo, m.Active().Kind)

	n.Fallback = nil
	m.HandleKey(key(tcell.KeyEnter))
	require.NotPanics(t, func() { n.Info("Success", "lost") })
	assert.False(t, m.IsOpen())
}

func TestNativeAvailableNeedsDisplay(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("native dialogs need no display server here")
	}
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	assert.False(t, NativeAvailable())

	t.Setenv("WAYLAND_DISPLAY", "wayland-0")
	assert.True(t, NativeAvailable())
}

func TestDrawMessage(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(60, 12)

	m := NewManager()
	NewTerminalNotifier(m).Info("Success", "File saved successfully.")
	m.Draw(screen, &theme.PaperDark, 60, 12)
	screen.Show()

	cells, width, height := screen.GetContents()
	var all strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			all.WriteString(string(cells[y*width+x].Runes))
		}
		all.WriteByte('\n')
	}
	assert.Contains(t, all.String(), "File saved successfully.")
	assert.Contains(t, all.String(), "[ OK ]")
	assert.Contains(t, all.String(), "Success")
}
