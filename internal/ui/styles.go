package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, highlights
	ColorHighlight = "205" // Magenta - selected items, focused borders
	ColorMuted     = "241" // Gray - dimmed text, hints
	ColorText      = "252" // Light gray - normal text
	ColorDim       = "243" // Darker gray - very dim text
	ColorWarning   = "208" // Orange - pinned indicator
)

// Styles contains shared style definitions used across the views.
var Styles = struct {
	Title       lipgloss.Style // Bold accent - view titles
	Selected    lipgloss.Style // Highlighted items
	Muted       lipgloss.Style // Dimmed text
	Dim         lipgloss.Style // Very dim text (paths, footnotes)
	Normal      lipgloss.Style // Normal text
	Hint        lipgloss.Style // Help/hint text
	Section     lipgloss.Style // Sidebar section headers
	DragTarget  lipgloss.Style // Section header under an active drag
	Pinned      lipgloss.Style // Pin indicator in panel title bars
	PanelBorder lipgloss.Style // Floating panel border
	PanelFront  lipgloss.Style // Topmost floating panel border
	PanelTitle  lipgloss.Style // Panel title bar text
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Dim: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Section: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	DragTarget: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Underline(true),
	Pinned: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	PanelBorder: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)),
	PanelFront: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)),
	PanelTitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Bold(true),
}
