package text

import (
	"fmt"
	"unicode/utf8"

	"github.com/bethropolis/tidepad/internal/buffer"
	"github.com/bethropolis/tidepad/internal/core/history"
	"github.com/bethropolis/tidepad/internal/event"
	"github.com/bethropolis/tidepad/internal/types"
)

// Operations handles typed insertion and deletion. Every buffer change it
// makes is recorded in the history manager.
type Operations struct {
	editor EditorInterface
}

// EditorInterface defines editor methods needed
type EditorInterface interface {
	GetBuffer() buffer.Buffer
	GetCursor() types.Position
	SetCursor(pos types.Position)
	GetEventManager() *event.Manager
	ClearSelection()
	GetSelection() (start types.Position, end types.Position, ok bool)
	GetHistoryManager() *history.Manager
}

// NewOperations creates a text operations manager
func NewOperations(editor EditorInterface) *Operations {
	return &Operations{editor: editor}
}

// InsertRune inserts a single rune at the cursor, replacing any selection.
func (o *Operations) InsertRune(r rune) error {
	return o.InsertText([]byte(string(r)))
}

// InsertNewLine splits the line at the cursor.
func (o *Operations) InsertNewLine() error {
	return o.InsertText([]byte{'\n'})
}

// InsertText inserts text at the cursor, replacing any selection, and moves
// the cursor past it.
func (o *Operations) InsertText(text []byte) error {
	if len(text) == 0 {
		return nil
	}
	if _, err := o.DeleteSelection(); err != nil {
		return err
	}

	at := o.editor.GetCursor()
	if err := o.editor.GetBuffer().Insert(at, text); err != nil {
		return fmt.Errorf("buffer insert failed: %w", err)
	}
	after := buffer.Advance(at, text)
	o.record(history.InsertAction, text, at, after, at)
	o.editor.SetCursor(after)
	o.dispatch(at, after)
	return nil
}

// DeleteSelection removes the selected range. It reports false when nothing
// is selected.
func (o *Operations) DeleteSelection() (bool, error) {
	start, end, ok := o.editor.GetSelection()
	if !ok {
		return false, nil
	}
	cursorBefore := o.editor.GetCursor()
	o.editor.ClearSelection()
	if err := o.deleteRange(start, end, cursorBefore); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteBackward deletes the selection, or the rune before the cursor
// (joining with the previous line at column 0).
func (o *Operations) DeleteBackward() error {
	if deleted, err := o.DeleteSelection(); deleted || err != nil {
		return err
	}

	cursor := o.editor.GetCursor()
	start := cursor
	switch {
	case cursor.Col > 0:
		start.Col--
	case cursor.Line > 0:
		prev, err := o.editor.GetBuffer().Line(cursor.Line - 1)
		if err != nil {
			return fmt.Errorf("cannot get previous line %d: %w", cursor.Line-1, err)
		}
		start = types.Position{Line: cursor.Line - 1, Col: utf8.RuneCount(prev)}
	default:
		return nil
	}
	return o.deleteRange(start, cursor, cursor)
}

// DeleteForward deletes the selection, or the rune after the cursor
// (joining with the next line at end of line).
func (o *Operations) DeleteForward() error {
	if deleted, err := o.DeleteSelection(); deleted || err != nil {
		return err
	}

	buf := o.editor.GetBuffer()
	cursor := o.editor.GetCursor()
	lineBytes, err := buf.Line(cursor.Line)
	if err != nil {
		return fmt.Errorf("cannot get current line %d: %w", cursor.Line, err)
	}

	end := cursor
	switch {
	case cursor.Col < utf8.RuneCount(lineBytes):
		end.Col++
	case cursor.Line < buf.LineCount()-1:
		end = types.Position{Line: cursor.Line + 1, Col: 0}
	default:
		return nil
	}
	return o.deleteRange(cursor, end, cursor)
}

func (o *Operations) deleteRange(start, end, cursorBefore types.Position) error {
	buf := o.editor.GetBuffer()
	removed, err := buf.Slice(start, end)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}
	if err := buf.Delete(start, end); err != nil {
		return fmt.Errorf("buffer delete failed: %w", err)
	}
	o.record(history.DeleteAction, removed, start, end, cursorBefore)
	o.editor.SetCursor(start)
	o.dispatch(start, end)
	return nil
}

func (o *Operations) record(action history.ActionType, text []byte, start, end, cursorBefore types.Position) {
	if hm := o.editor.GetHistoryManager(); hm != nil && len(text) > 0 {
		hm.RecordChange(history.Change{
			Type:          action,
			Text:          text,
			StartPosition: start,
			EndPosition:   end,
			CursorBefore:  cursorBefore,
		})
	}
}

func (o *Operations) dispatch(start, end types.Position) {
	if em := o.editor.GetEventManager(); em != nil {
		em.Dispatch(event.TypeBufferModified, event.BufferModifiedData{Start: start, End: end})
	}
}
