package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette shared by the styled CLI output and the terminal browser. The root
// and hover colors follow the web view.
const (
	ColorRoot      = lipgloss.Color("2")   // green
	ColorHighlight = lipgloss.Color("208") // orange
	ColorMuted     = lipgloss.Color("245")
	ColorError     = lipgloss.Color("1")
	ColorWarning   = lipgloss.Color("3")
	ColorAccent    = lipgloss.Color("12")
)

// Styles holds the lipgloss styles used for text output.
type Styles struct {
	Header    lipgloss.Style
	Bold      lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Root      lipgloss.Style
	Type      lipgloss.Style
	Field     lipgloss.Style
	Highlight lipgloss.Style
	Selected  lipgloss.Style
}

// NewStyles creates styles bound to a lipgloss renderer. The renderer's color
// profile decides whether any escape codes are emitted.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header:    r.NewStyle().Bold(true).Underline(true),
		Bold:      r.NewStyle().Bold(true),
		Muted:     r.NewStyle().Foreground(ColorMuted),
		Success:   r.NewStyle().Foreground(ColorRoot),
		Warning:   r.NewStyle().Foreground(ColorWarning),
		Error:     r.NewStyle().Foreground(ColorError).Bold(true),
		Root:      r.NewStyle().Foreground(ColorRoot).Bold(true),
		Type:      r.NewStyle().Foreground(ColorAccent),
		Field:     r.NewStyle(),
		Highlight: r.NewStyle().Foreground(ColorHighlight).Bold(true),
		Selected:  r.NewStyle().Reverse(true),
	}
}
