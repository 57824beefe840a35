package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/fieldops-tui/internal/ui"
)

var statusBarBg = lipgloss.Color("#111827")

// RenderStatusBar draws the bottom line: the latest status message on the
// left, key hints for the current context on the right. Failed saves,
// deletes and index rebuilds surface here, so error statuses get the
// failure color instead of the usual muted one. On narrow terminals the
// hints give way before the status does.
func RenderStatusBar(status, hints string, width int) string {
	fg := ui.ColorMuted
	if isErrorStatus(status) {
		fg = ui.ColorFailure
	}
	left := lipgloss.NewStyle().Foreground(fg).Render("  " + status)

	help := lipgloss.NewStyle().Foreground(ui.ColorMuted).Render(hints + " ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 0 {
		help = ""
		gap = width - lipgloss.Width(left)
		if gap < 0 {
			gap = 0
		}
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(statusBarBg).
		Width(width).
		Render(left + padding + help)
}

// isErrorStatus is a heuristic over the status strings Update produces:
// load failures render as "Error: ...", rebuilds as "Index error: ...".
// Action failures embed the raw error text, which this misses when the
// message carries neither word; those still show, just unhighlighted.
func isErrorStatus(status string) bool {
	s := strings.ToLower(status)
	return strings.Contains(s, "error") || strings.Contains(s, "failed")
}
