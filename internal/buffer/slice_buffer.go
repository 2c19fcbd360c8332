// internal/buffer/slice_buffer.go
package buffer

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/bethropolis/tidepad/internal/types"
)

// ErrNoPath is returned by Save when no destination was given.
var ErrNoPath = errors.New("no file path specified for saving")

// SliceBuffer stores the document as one byte slice per line, without the
// separating '\n'. It always holds at least one (possibly empty) line.
type SliceBuffer struct {
	lines    [][]byte
	modified bool
}

// Ensure SliceBuffer satisfies the Buffer interface
var _ Buffer = (*SliceBuffer)(nil)

// NewSliceBuffer creates an empty SliceBuffer.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{lines: [][]byte{{}}}
}

// NewSliceBufferFromBytes creates an unmodified buffer holding content.
func NewSliceBufferFromBytes(content []byte) *SliceBuffer {
	sb := NewSliceBuffer()
	sb.lines = splitLines(content)
	return sb
}

func splitLines(content []byte) [][]byte {
	parts := bytes.Split(content, []byte("\n"))
	lines := make([][]byte, len(parts))
	for i, p := range parts {
		lines[i] = append([]byte(nil), p...)
	}
	return lines
}

// Lines returns the underlying lines. Callers must not modify them.
func (sb *SliceBuffer) Lines() [][]byte {
	return sb.lines
}

// LineCount returns the number of lines, never less than one.
func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

// Line returns the content of line index without its terminator.
func (sb *SliceBuffer) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(sb.lines) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.lines)-1)
	}
	return sb.lines[index], nil
}

// Bytes joins the lines with '\n'. This is exactly what Save writes.
func (sb *SliceBuffer) Bytes() []byte {
	var out bytes.Buffer
	for i, line := range sb.lines {
		out.Write(line)
		if i < len(sb.lines)-1 {
			out.WriteByte('\n')
		}
	}
	return out.Bytes()
}

// End returns the position after the last rune of the last line.
func (sb *SliceBuffer) End() types.Position {
	last := len(sb.lines) - 1
	return types.Position{Line: last, Col: utf8.RuneCount(sb.lines[last])}
}

// Save writes the content verbatim to filePath, replacing any existing file.
func (sb *SliceBuffer) Save(filePath string) error {
	if filePath == "" {
		return ErrNoPath
	}
	if err := os.WriteFile(filePath, sb.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", filePath, err)
	}
	sb.modified = false
	return nil
}

// IsModified returns true if the buffer has changed since the last save.
func (sb *SliceBuffer) IsModified() bool {
	return sb.modified
}

// --- Buffer Modification Methods ---

// clamp moves pos onto the nearest valid position and returns its byte offset
// within the line.
func (sb *SliceBuffer) clamp(pos types.Position) (types.Position, int) {
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(sb.lines) {
		pos.Line = len(sb.lines) - 1
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	line := sb.lines[pos.Line]
	offset, runes := 0, 0
	for offset < len(line) && runes < pos.Col {
		_, size := utf8.DecodeRune(line[offset:])
		offset += size
		runes++
	}
	pos.Col = runes
	return pos, offset
}

// Insert inserts text at pos. Text may span several lines.
func (sb *SliceBuffer) Insert(pos types.Position, text []byte) error {
	if len(text) == 0 {
		return nil
	}
	pos, offset := sb.clamp(pos)

	current := sb.lines[pos.Line]
	head := append([]byte(nil), current[:offset]...)
	tail := append([]byte(nil), current[offset:]...)

	inserted := splitLines(text)
	inserted[0] = append(head, inserted[0]...)
	last := len(inserted) - 1
	inserted[last] = append(inserted[last], tail...)

	lines := make([][]byte, 0, len(sb.lines)+last)
	lines = append(lines, sb.lines[:pos.Line]...)
	lines = append(lines, inserted...)
	lines = append(lines, sb.lines[pos.Line+1:]...)
	sb.lines = lines
	sb.modified = true
	return nil
}

// Delete removes the text in [start, end). The bounds may be given in
// either order.
func (sb *SliceBuffer) Delete(start, end types.Position) error {
	start, end = types.Ordered(start, end)
	start, startOffset := sb.clamp(start)
	end, endOffset := sb.clamp(end)
	if start == end {
		return nil
	}

	merged := append([]byte(nil), sb.lines[start.Line][:startOffset]...)
	merged = append(merged, sb.lines[end.Line][endOffset:]...)

	lines := make([][]byte, 0, len(sb.lines)-(end.Line-start.Line))
	lines = append(lines, sb.lines[:start.Line]...)
	lines = append(lines, merged)
	lines = append(lines, sb.lines[end.Line+1:]...)
	sb.lines = lines
	sb.modified = true
	return nil
}

// Slice extracts the text in [start, end).
func (sb *SliceBuffer) Slice(start, end types.Position) ([]byte, error) {
	start, end = types.Ordered(start, end)
	start, startOffset := sb.clamp(start)
	end, endOffset := sb.clamp(end)

	if start.Line == end.Line {
		return append([]byte(nil), sb.lines[start.Line][startOffset:endOffset]...), nil
	}

	var out bytes.Buffer
	out.Write(sb.lines[start.Line][startOffset:])
	for i := start.Line + 1; i < end.Line; i++ {
		out.WriteByte('\n')
		out.Write(sb.lines[i])
	}
	out.WriteByte('\n')
	out.Write(sb.lines[end.Line][:endOffset])
	return out.Bytes(), nil
}

// Advance returns the position reached after inserting text at pos.
func Advance(pos types.Position, text []byte) types.Position {
	newlines := bytes.Count(text, []byte("\n"))
	if newlines == 0 {
		return types.Position{Line: pos.Line, Col: pos.Col + utf8.RuneCount(text)}
	}
	lastLine := text[bytes.LastIndexByte(text, '\n')+1:]
	return types.Position{Line: pos.Line + newlines, Col: utf8.RuneCount(lastLine)}
}
