package tui

import (
	"fmt"
	"strings"

	"ferry/internal/app"
	"ferry/internal/browse"
	"ferry/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// View implements tea.Model
func (m *Model) View() string {
	width := m.width
	if width == 0 {
		width = 80
	}
	height := m.height
	if height == 0 {
		height = 24
	}

	// Two columns plus a one-line status strip at the bottom
	paneWidth := width/2 - 2
	paneHeight := height - 4

	left := m.renderPane(m.ctrl.Pane(app.Left), paneWidth, paneHeight, m.ctrl.Focus() == app.Left)
	right := m.renderPane(m.ctrl.Pane(app.Right), paneWidth, paneHeight, m.ctrl.Focus() == app.Right)

	var sb strings.Builder
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	sb.WriteString("\n")

	if status := m.ctrl.Status(); status != "" {
		sb.WriteString(styles.Theme.Status.Render(status))
	} else if m.showHelp {
		sb.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		sb.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}

	return styles.Theme.App.Render(sb.String())
}

func (m *Model) renderPane(listing *browse.Listing, width, height int, focused bool) string {
	var sb strings.Builder

	sb.WriteString(styles.Theme.Title.Render(truncate(listing.Path(), width-2)))
	sb.WriteString("\n")

	entries := listing.Entries()
	selected := listing.Selected()

	// Scroll window keeping the selection visible
	visible := height - 1
	if visible < 1 {
		visible = 1
	}
	offset := 0
	if selected >= visible {
		offset = selected - visible + 1
	}

	for i := offset; i < len(entries) && i < offset+visible; i++ {
		entry := entries[i]

		cursor := "  "
		if i == selected {
			cursor = styles.Theme.Cursor.Render("> ")
		}

		style := styles.Theme.File
		if entry.Dir {
			style = styles.Theme.Directory
		}

		details := ""
		if !entry.Dir && !entry.IsParent() {
			details = fmt.Sprintf(" %8s", humanize.Bytes(uint64(entry.Size)))
		}

		sb.WriteString(fmt.Sprintf("%s%s%s\n",
			cursor,
			style.Render(truncate(entry.Name, width-12)),
			styles.Theme.Help.Render(details)))
	}

	pane := styles.Theme.Pane
	if focused {
		pane = styles.Theme.PaneFocused
	}
	return pane.Width(width).Height(height).Render(sb.String())
}

func truncate(s string, max int) string {
	if max < 1 || len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return "…" + s[len(s)-max+1:]
}
