package buffer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/tidepad/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func pos(line, col int) types.Position { return types.Position{Line: line, Col: col} }

func TestNewSliceBufferIsEmpty(t *testing.T) {
	sb := NewSliceBuffer()
	assert.Equal(t, 1, sb.LineCount())
	assert.Empty(t, sb.Bytes())
	assert.False(t, sb.IsModified())
	assert.Equal(t, pos(0, 0), sb.End())
}

func TestInsertSingleAndMultiLine(t *testing.T) {
	sb := NewSliceBuffer()
	require.NoError(t, sb.Insert(pos(0, 0), []byte("hello world")))
	require.NoError(t, sb.Insert(pos(0, 5), []byte(",\nbrave new")))

	assert.Equal(t, "hello,\nbrave new world", string(sb.Bytes()))
	assert.Equal(t, 2, sb.LineCount())
	assert.True(t, sb.IsModified())
}

func TestInsertClampsPosition(t *testing.T) {
	sb := NewSliceBufferFromBytes([]byte("ab"))
	require.NoError(t, sb.Insert(pos(7, 99), []byte("c")))
	assert.Equal(t, "abc", string(sb.Bytes()))
}

func TestInsertMultibyteRunes(t *testing.T) {
	sb := NewSliceBufferFromBytes([]byte("héllo"))
	require.NoError(t, sb.Insert(pos(0, 2), []byte("ü")))
	assert.Equal(t, "héüllo", string(sb.Bytes()))
}

func TestDeleteAcrossLines(t *testing.T) {
	sb := NewSliceBufferFromBytes([]byte("one\ntwo\nthree"))
	require.NoError(t, sb.Delete(pos(2, 2), pos(0, 1)))
	assert.Equal(t, "oree", string(sb.Bytes()))
	assert.Equal(t, 1, sb.LineCount())
}

func TestDeleteEverythingLeavesOneLine(t *testing.T) {
	sb := NewSliceBufferFromBytes([]byte("a\nb\nc"))
	require.NoError(t, sb.Delete(pos(0, 0), sb.End()))
	assert.Equal(t, 1, sb.LineCount())
	assert.Empty(t, sb.Bytes())
}

func TestSlice(t *testing.T) {
	sb := NewSliceBufferFromBytes([]byte("one\ntwo\nthree"))

	got, err := sb.Slice(pos(0, 1), pos(2, 3))
	require.NoError(t, err)
	assert.Equal(t, "ne\ntwo\nthr", string(got))

	got, err = sb.Slice(pos(1, 0), pos(1, 3))
	require.NoError(t, err)
	assert.Equal(t, "two", string(got))
}

func TestAdvance(t *testing.T) {
	assert.Equal(t, pos(0, 7), Advance(pos(0, 4), []byte("abc")))
	assert.Equal(t, pos(3, 2), Advance(pos(1, 4), []byte("x\n\nyz")))
	assert.Equal(t, pos(2, 0), Advance(pos(1, 4), []byte("\n")))
}

func TestSaveOverwritesAndClearsModified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("previous content that is longer"), 0o644))

	sb := NewSliceBuffer()
	require.NoError(t, sb.Insert(pos(0, 0), []byte("new\ntext")))
	require.NoError(t, sb.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\ntext", string(data))
	assert.False(t, sb.IsModified())
}

func TestSaveErrors(t *testing.T) {
	sb := NewSliceBuffer()
	assert.ErrorIs(t, sb.Save(""), ErrNoPath)
	assert.Error(t, sb.Save(filepath.Join(t.TempDir(), "missing", "dir", "f.txt")))
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		content := rapid.String().Draw(rt, "content")
		sb := NewSliceBuffer()
		require.NoError(rt, sb.Insert(pos(0, 0), []byte(content)))

		path := filepath.Join(dir, "roundtrip.txt")
		require.NoError(rt, sb.Save(path))
		data, err := os.ReadFile(path)
		require.NoError(rt, err)
		assert.Equal(rt, content, string(data))
	})
}

func TestInsertThenDeleteRestores(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		base := rapid.StringMatching(`[a-z \n]{0,30}`).Draw(rt, "base")
		text := rapid.StringMatching(`[A-Z\n]{1,10}`).Draw(rt, "text")
		sb := NewSliceBufferFromBytes([]byte(base))

		end := sb.End()
		line := rapid.IntRange(0, end.Line).Draw(rt, "line")
		lineBytes, _ := sb.Line(line)
		col := rapid.IntRange(0, len(lineBytes)).Draw(rt, "col")
		at := pos(line, col)

		require.NoError(rt, sb.Insert(at, []byte(text)))
		require.NoError(rt, sb.Delete(at, Advance(at, []byte(text))))
		assert.Equal(rt, base, string(sb.Bytes()))
	})
}
