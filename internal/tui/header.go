package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/fieldops-tui/internal/ui"
)

func RenderHeader(dataPath string, indexed int, width int) string {
	left := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("#F9FAFB")).
		Render(fmt.Sprintf(" fieldops | %s", dataPath))

	right := ""
	if indexed > 0 {
		right = lipgloss.NewStyle().Foreground(ui.ColorSuccess).
			Render(fmt.Sprintf("indexed: %d ", indexed))
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(lipgloss.Color("#1F2937")).
		Width(width).
		Render(left + padding + right)
}
