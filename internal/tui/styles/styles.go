package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the core UI styles
var Theme = struct {
	App         lipgloss.Style
	Title       lipgloss.Style
	Pane        lipgloss.Style
	PaneFocused lipgloss.Style
	Directory   lipgloss.Style
	File        lipgloss.Style
	Cursor      lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
}{
	App: lipgloss.NewStyle(),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7B61FF")),
	Pane: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color("#666666")).
		Padding(0, 1),
	PaneFocused: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color("#73F59F")).
		Padding(0, 1),
	Directory: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5A9DFF")),
	File: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")),
	Cursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#73F59F")).
		Bold(true),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#73F59F")),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5A9")),
}
