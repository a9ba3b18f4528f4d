package editor

// Config configures the editor Model.
type Config struct {
	// Title is shown at the left of the status line, usually the file path.
	Title string

	ShowLineNums bool
	Style        Style
	KeyMap       KeyMap
}
