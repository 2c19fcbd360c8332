// internal/commands/commands.go
package commands

// Names of the built-in commands. Menu items and key bindings refer to
// commands by these names.
const (
	Save      = "save"
	Quit      = "quit"
	Undo      = "undo"
	Redo      = "redo"
	Cut       = "cut"
	Copy      = "copy"
	Paste     = "paste"
	SelectAll = "selectall"
	FontSize  = "fontsize"
	Bold      = "bold"
	Italic    = "italic"
	Underline = "underline"
	WordCount = "wordcount"
)
