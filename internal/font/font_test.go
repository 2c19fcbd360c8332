package font

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleToggles(t *testing.T) {
	s := NewState("Monospaced", 13)
	assert.Equal(t, Plain, s.Font().Style)

	assert.Equal(t, Bold, s.SetBold(true).Style)
	assert.Equal(t, Bold|Italic, s.SetItalic(true).Style)
	assert.Equal(t, Italic, s.SetBold(false).Style)
	assert.Equal(t, Plain, s.SetItalic(false).Style)
}

func TestUnderlineIsTrackedButNotApplied(t *testing.T) {
	s := NewState("Monospaced", 13)
	f := s.SetUnderline(true)

	assert.True(t, s.Underline())
	assert.Equal(t, Plain, f.Style)

	_, _, attrs := f.Apply(tcell.StyleDefault).Decompose()
	assert.Zero(t, attrs&tcell.AttrUnderline)
}

func TestSetSizeKeepsFamilyAndStyle(t *testing.T) {
	s := NewState("Serif", 13)
	s.SetBold(true)

	f := s.SetSize(24)
	assert.Equal(t, Font{Family: "Serif", Size: 24, Style: Bold}, f)
}

func TestApply(t *testing.T) {
	f := Font{Family: "Monospaced", Size: 13, Style: Bold | Italic}
	_, _, attrs := f.Apply(tcell.StyleDefault).Decompose()
	assert.NotZero(t, attrs&tcell.AttrBold)
	assert.NotZero(t, attrs&tcell.AttrItalic)

	_, _, attrs = Font{Style: Italic}.Apply(tcell.StyleDefault.Bold(true)).Decompose()
	assert.Zero(t, attrs&tcell.AttrBold, "turning bold off clears the attribute")
	assert.NotZero(t, attrs&tcell.AttrItalic)
}

func TestParseSize(t *testing.T) {
	size, err := ParseSize("24")
	require.NoError(t, err)
	assert.Equal(t, 24, size)

	for input, want := range map[string]error{
		"0":   ErrNotPositive,
		"-5":  ErrNotPositive,
		"abc": ErrNotANumber,
		"":    ErrNotANumber,
		"1.5": ErrNotANumber,
		" 12": ErrNotANumber,
	} {
		_, err := ParseSize(input)
		assert.ErrorIs(t, err, want, "input %q", input)
	}
}

func TestSizeErrorMessage(t *testing.T) {
	assert.Equal(t, "Invalid font size. Please enter a positive integer.", SizeErrorMessage(ErrNotPositive))
	assert.Equal(t, "Invalid font size. Please enter a valid number.", SizeErrorMessage(ErrNotANumber))
}

func TestDescribe(t *testing.T) {
	s := NewState("Monospaced", 13)
	s.SetBold(true)
	s.SetUnderline(true)
	assert.Equal(t, "Monospaced 13pt B U", s.Describe())
	assert.Equal(t, "Monospaced 13pt bold", s.Font().String())
}
