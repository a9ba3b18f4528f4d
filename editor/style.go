package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text    lipgloss.Style
	Comment lipgloss.Style
	Cursor  lipgloss.Style

	// Info and Error render commit results by severity.
	Info  lipgloss.Style
	Error lipgloss.Style

	Status lipgloss.Style
}

func DefaultStyle() Style {
	return NewStyle(lipgloss.DefaultRenderer())
}

// NewStyle builds the default palette on r. Tests pass a renderer with a
// pinned color profile.
func NewStyle(r *lipgloss.Renderer) Style {
	gutter := r.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: r.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          r.NewStyle(),
		Comment:       r.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		Cursor:        r.NewStyle().Reverse(true),
		Info:          r.NewStyle().Foreground(lipgloss.Color("42")),
		Error:         r.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Status:        r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
