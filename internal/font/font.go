// Package font models the single global font of the text area.
package font

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Style is a bitmask of font style variants.
type Style int

const (
	Plain  Style = 0
	Bold   Style = 1
	Italic Style = 2
)

func (s Style) String() string {
	switch s {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Bold | Italic:
		return "bold italic"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Font is the face applied to the whole text area.
type Font struct {
	Family string
	Size   int
	Style  Style
}

func (f Font) String() string {
	return fmt.Sprintf("%s %dpt %s", f.Family, f.Size, f.Style)
}

// Apply renders the font's style onto a terminal style. Size and family have
// no terminal equivalent.
func (f Font) Apply(base tcell.Style) tcell.Style {
	return base.Bold(f.Style&Bold != 0).Italic(f.Style&Italic != 0)
}

// State is the font together with the style toggles shown in the Font menu.
type State struct {
	family    string
	size      int
	bold      bool
	italic    bool
	underline bool
	style     Style
}

// NewState creates a plain font of the given family and size.
func NewState(family string, size int) *State {
	return &State{family: family, size: size}
}

// Font returns the font currently applied to the text area.
func (s *State) Font() Font {
	return Font{Family: s.family, Size: s.size, Style: s.style}
}

// SetBold updates the bold toggle and reapplies the style.
func (s *State) SetBold(on bool) Font {
	s.bold = on
	return s.recompute()
}

// SetItalic updates the italic toggle and reapplies the style.
func (s *State) SetItalic(on bool) Font {
	s.italic = on
	return s.recompute()
}

// SetUnderline updates the underline toggle. Underline is tracked for the
// menu but is not part of the applied style.
func (s *State) SetUnderline(on bool) Font {
	s.underline = on
	return s.recompute()
}

// recompute derives the applied style from the checked toggles.
func (s *State) recompute() Font {
	style := Plain
	if s.bold {
		style |= Bold
	}
	if s.italic {
		style |= Italic
	}
	s.style = style
	return s.Font()
}

func (s *State) Bold() bool      { return s.bold }
func (s *State) Italic() bool    { return s.italic }
func (s *State) Underline() bool { return s.underline }

// SetSize replaces the size, keeping family and style.
func (s *State) SetSize(size int) Font {
	s.size = size
	return s.Font()
}

// Describe returns a short label for the status bar, e.g. "Monospaced 13pt B I".
func (s *State) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %dpt", s.family, s.size)
	if s.bold {
		b.WriteString(" B")
	}
	if s.italic {
		b.WriteString(" I")
	}
	if s.underline {
		b.WriteString(" U")
	}
	return b.String()
}
