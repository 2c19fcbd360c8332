// internal/buffer/buffer.go
package buffer

import "github.com/bethropolis/tidepad/internal/types"

// Buffer defines the interface for text buffer operations.
type Buffer interface {
	Lines() [][]byte
	Line(index int) ([]byte, error)
	LineCount() int
	Insert(pos types.Position, text []byte) error
	Delete(start, end types.Position) error
	// Slice returns a copy of the text between start (inclusive) and end (exclusive).
	Slice(start, end types.Position) ([]byte, error)
	// End is the position just past the last rune.
	End() types.Position
	Bytes() []byte
	Save(filePath string) error
	IsModified() bool
}
