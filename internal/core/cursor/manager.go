package cursor

import (
	"unicode/utf8"

	"github.com/bethropolis/tidepad/internal/buffer"
	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/types"
	"github.com/rivo/uniseg"
)

// Editor is the interface cursor manager expects from the editor
type Editor interface {
	GetBuffer() buffer.Buffer
}

// Manager owns the cursor position and the viewport that keeps it visible.
type Manager struct {
	editor     Editor
	position   types.Position
	viewportY  int // top visible line
	viewportX  int // leftmost visible visual column
	viewWidth  int
	viewHeight int
	scrollOff  int
	tabWidth   int
}

// DefaultTabWidth is used when no positive tab width is configured.
const DefaultTabWidth = 4

// NewManager creates a new cursor manager
func NewManager(editor Editor, scrollOff, tabWidth int) *Manager {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	return &Manager{editor: editor, scrollOff: scrollOff, tabWidth: tabWidth}
}

// SetViewSize updates the text area dimensions.
func (m *Manager) SetViewSize(width, height int) {
	m.viewWidth = width
	m.viewHeight = height
	m.ScrollToCursor()
}

// GetViewport returns the top line and leftmost visual column.
func (m *Manager) GetViewport() (int, int) {
	return m.viewportY, m.viewportX
}

// GetPosition returns the current cursor position
func (m *Manager) GetPosition() types.Position {
	return m.position
}

// SetPosition moves the cursor to pos, clamped to the buffer.
func (m *Manager) SetPosition(pos types.Position) {
	m.position = m.clamp(pos)
	m.ScrollToCursor()
}

func (m *Manager) clamp(pos types.Position) types.Position {
	buf := m.editor.GetBuffer()
	lineCount := buf.LineCount()
	if pos.Line >= lineCount {
		pos.Line = lineCount - 1
	}
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	lineBytes, err := buf.Line(pos.Line)
	if err != nil {
		logger.Warnf("CursorManager: failed to get line %d: %v", pos.Line, err)
		return types.Position{}
	}
	if maxCol := utf8.RuneCount(lineBytes); pos.Col > maxCol {
		pos.Col = maxCol
	}
	return pos
}

// Move moves the cursor by the given deltas. A horizontal move past either
// end of a line wraps onto the neighbouring line.
func (m *Manager) Move(deltaLine, deltaCol int) {
	buf := m.editor.GetBuffer()
	cur := m.position

	if deltaLine == 0 && deltaCol > 0 {
		if lineBytes, err := buf.Line(cur.Line); err == nil {
			if cur.Col >= utf8.RuneCount(lineBytes) && cur.Line < buf.LineCount()-1 {
				m.SetPosition(types.Position{Line: cur.Line + 1, Col: 0})
				return
			}
		}
	}
	if deltaLine == 0 && deltaCol < 0 && cur.Col <= 0 && cur.Line > 0 {
		prev, _ := buf.Line(cur.Line - 1)
		m.SetPosition(types.Position{Line: cur.Line - 1, Col: utf8.RuneCount(prev)})
		return
	}

	m.SetPosition(types.Position{Line: cur.Line + deltaLine, Col: cur.Col + deltaCol})
}

// PageMove moves the cursor and viewport by whole pages.
func (m *Manager) PageMove(deltaPages int) {
	if m.viewHeight <= 0 {
		return
	}
	m.viewportY += m.viewHeight * deltaPages
	maxViewportY := m.editor.GetBuffer().LineCount() - m.viewHeight
	if m.viewportY > maxViewportY {
		m.viewportY = maxViewportY
	}
	if m.viewportY < 0 {
		m.viewportY = 0
	}
	m.Move(m.viewHeight*deltaPages, 0)
}

// MoveToLineStart moves the cursor to column 0.
func (m *Manager) MoveToLineStart() {
	m.SetPosition(types.Position{Line: m.position.Line, Col: 0})
}

// MoveToLineEnd moves the cursor past the last rune of the line.
func (m *Manager) MoveToLineEnd() {
	lineBytes, _ := m.editor.GetBuffer().Line(m.position.Line)
	m.SetPosition(types.Position{Line: m.position.Line, Col: utf8.RuneCount(lineBytes)})
}

// ScrollToCursor adjusts the viewport so the cursor stays visible with
// scrollOff lines of context.
func (m *Manager) ScrollToCursor() {
	if m.viewHeight <= 0 || m.viewWidth <= 0 {
		return
	}

	scrollOff := m.scrollOff
	if scrollOff*2 >= m.viewHeight {
		scrollOff = (m.viewHeight - 1) / 2
	}

	if m.position.Line < m.viewportY+scrollOff {
		m.viewportY = m.position.Line - scrollOff
	} else if m.position.Line >= m.viewportY+m.viewHeight-scrollOff {
		m.viewportY = m.position.Line - m.viewHeight + 1 + scrollOff
	}

	lineBytes, _ := m.editor.GetBuffer().Line(m.position.Line)
	visualCol := VisualColumn(lineBytes, m.position.Col, m.tabWidth)
	if visualCol < m.viewportX {
		m.viewportX = visualCol
	} else if visualCol >= m.viewportX+m.viewWidth {
		m.viewportX = visualCol - m.viewWidth + 1
	}

	if m.viewportY < 0 {
		m.viewportY = 0
	}
	if m.viewportX < 0 {
		m.viewportX = 0
	}
}

// VisualColumn returns the screen column of runeIndex in line. Grapheme
// clusters count by display width and a tab advances to the next multiple
// of tabWidth.
func VisualColumn(line []byte, runeIndex, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	width, runes := 0, 0
	gr := uniseg.NewGraphemes(string(line))
	for runes < runeIndex && gr.Next() {
		clusterRunes := gr.Runes()
		width += ClusterWidth(clusterRunes[0], gr.Width(), width, tabWidth)
		runes += len(clusterRunes)
	}
	return width
}

// ClusterWidth is the number of cells a cluster starting with first takes
// when drawn at visual column x.
func ClusterWidth(first rune, width, x, tabWidth int) int {
	if first == '\t' {
		return tabWidth - (x % tabWidth)
	}
	return width
}
