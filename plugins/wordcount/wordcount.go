// plugins/wordcount/wordcount.go
package wordcount

import (
	"bytes"
	"fmt"

	"github.com/bethropolis/tidepad/internal/plugin"
)

// CommandName is the command the plugin registers.
const CommandName = "wordcount"

// Ensure WordCount implements plugin.Plugin
var _ plugin.Plugin = (*WordCount)(nil)

// WordCount counts the words in the buffer and reports them in a dialog.
type WordCount struct {
	api plugin.EditorAPI
}

// New creates a new instance of the WordCount plugin.
func New() *WordCount {
	return &WordCount{}
}

// Name returns the unique name of the plugin.
func (p *WordCount) Name() string {
	return "WordCount"
}

// Initialize registers the word count command.
func (p *WordCount) Initialize(api plugin.EditorAPI) error {
	p.api = api
	if err := api.RegisterCommand(CommandName, p.executeWordCount); err != nil {
		return fmt.Errorf("failed to register '%s' command: %w", CommandName, err)
	}
	return nil
}

// Shutdown performs cleanup (nothing needed for this simple plugin).
func (p *WordCount) Shutdown() error {
	return nil
}

// Stats summarises buffer content.
type Stats struct {
	Lines int
	Words int
	Bytes int
}

// Count returns the number of non-empty runs of non-separator bytes in
// data. Leading, trailing and repeated separators never produce empty words.
func Count(data []byte) int {
	return len(bytes.FieldsFunc(data, isSeparator))
}

// isSeparator matches ASCII whitespace only. Unicode spaces such as U+00A0
// are part of a word.
func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Measure computes Stats for data split into lineCount lines.
func Measure(data []byte, lineCount int) Stats {
	return Stats{Lines: lineCount, Words: Count(data), Bytes: len(data)}
}

func (p *WordCount) executeWordCount(args []string) error {
	if p.api == nil {
		return fmt.Errorf("wordcount plugin not initialized with API")
	}
	stats := Measure(p.api.GetBufferBytes(), p.api.GetBufferLineCount())

	p.api.SetStatusMessage("Lines: %d, Words: %d, Bytes: %d", stats.Lines, stats.Words, stats.Bytes)
	p.api.ShowMessage("Word Count", fmt.Sprintf("Word count: %d", stats.Words))
	return nil
}
