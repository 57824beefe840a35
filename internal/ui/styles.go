package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/fieldops-tui/internal/model"
)

var (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorFailure   = lipgloss.Color("#EF4444")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorInfo      = lipgloss.Color("#3B82F6")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorBorder    = lipgloss.Color("#374151")
	ColorHighlight = lipgloss.Color("#1F2937")

	StylePane = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	StylePaneFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary)

	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F9FAFB")).
			Background(ColorPrimary).
			Padding(0, 1)

	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleFailure = lipgloss.NewStyle().Foreground(ColorFailure)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleInfo    = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)

	StyleMatch = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FCD34D")).
			Background(lipgloss.Color("#78350F"))
)

func PriorityStyle(p model.TaskPriority) lipgloss.Style {
	switch p {
	case model.PriorityHigh:
		return StyleFailure
	case model.PriorityMedium:
		return StyleWarning
	case model.PriorityLow:
		return StyleMuted
	default:
		return StyleInfo
	}
}

func TaskStatusIcon(s model.TaskStatus) string {
	switch s {
	case model.TaskDone:
		return StyleSuccess.Render("V")
	case model.TaskInProgress:
		return StyleInfo.Render("*")
	case model.TaskOpen:
		return StyleMuted.Render("o")
	default:
		return StyleMuted.Render("?")
	}
}

func OperationStatusIcon(s model.OperationStatus) string {
	switch s {
	case model.OperationActive:
		return StyleSuccess.Render("*")
	case model.OperationStandby:
		return StyleWarning.Render("o")
	case model.OperationClosed:
		return StyleMuted.Render("-")
	default:
		return StyleMuted.Render("?")
	}
}

func EntityTag(t model.EntityType) string {
	switch t {
	case model.EntityOperation:
		return StyleInfo.Render("[op]")
	case model.EntityTask:
		return StyleWarning.Render("[task]")
	case model.EntityWiki:
		return StyleSuccess.Render("[wiki]")
	case model.EntityEvent:
		return StyleFailure.Render("[event]")
	}
	return StyleMuted.Render("[?]")
}
