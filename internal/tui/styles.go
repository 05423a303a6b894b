package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/kanbo/internal/tui/theme"
)

// Style definitions for the kanban board UI, rebuilt from the theme
// colors by initStyles
var (
	// Tab borders - active tab has no bottom border to "open" into content
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	TabStyle       lipgloss.Style
	ActiveTabStyle lipgloss.Style

	// ColumnStyle defines the appearance of kanban board columns
	ColumnStyle         lipgloss.Style
	SelectedColumnStyle lipgloss.Style

	// TaskStyle defines the appearance of individual tasks as cards
	TaskStyle         lipgloss.Style
	SelectedTaskStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (column names, app header)
	TitleStyle  lipgloss.Style
	SubtleStyle lipgloss.Style
	NormalStyle lipgloss.Style

	// Board list rows on the welcome page
	ItemStyle         lipgloss.Style
	SelectedItemStyle lipgloss.Style

	// Modal dialog borders by intent
	CreateInputBoxStyle   lipgloss.Style
	EditInputBoxStyle     lipgloss.Style
	DeleteConfirmBoxStyle lipgloss.Style
	DetailBoxStyle        lipgloss.Style

	// Notification banners
	InfoBannerStyle    lipgloss.Style
	WarningBannerStyle lipgloss.Style
	ErrorBannerStyle   lipgloss.Style

	// ErrorLineStyle renders a slice error under the page content
	ErrorLineStyle lipgloss.Style
)

func init() {
	initStyles()
}

// initStyles rebuilds every style from the current theme colors
func initStyles() {
	TabStyle = lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(0, 1)
	ActiveTabStyle = TabStyle.Border(activeTabBorder, true).Bold(true)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder)).
		Padding(0, 1)
	SelectedColumnStyle = ColumnStyle.BorderForeground(lipgloss.Color(theme.SelectedBorder))

	TaskStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.TaskBorder)).
		Background(lipgloss.Color(theme.TaskBg)).
		Padding(0, 1)
	SelectedTaskStyle = TaskStyle.
		BorderForeground(lipgloss.Color(theme.SelectedBorder)).
		Background(lipgloss.Color(theme.SelectedBg))

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))
	SubtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	NormalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))

	ItemStyle = NormalStyle.PaddingLeft(2)
	SelectedItemStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Highlight)).
		Bold(true).
		PaddingLeft(1).
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(theme.Highlight))

	modal := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	CreateInputBoxStyle = modal.BorderForeground(lipgloss.Color(theme.Create))
	EditInputBoxStyle = modal.BorderForeground(lipgloss.Color(theme.Edit))
	DeleteConfirmBoxStyle = modal.BorderForeground(lipgloss.Color(theme.Delete))
	DetailBoxStyle = modal.BorderForeground(lipgloss.Color(theme.Highlight))

	banner := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	InfoBannerStyle = banner.
		Foreground(lipgloss.Color(theme.InfoFg)).
		Background(lipgloss.Color(theme.InfoBg))
	WarningBannerStyle = banner.
		Foreground(lipgloss.Color(theme.WarningFg)).
		Background(lipgloss.Color(theme.WarningBg))
	ErrorBannerStyle = banner.
		Foreground(lipgloss.Color(theme.ErrorFg)).
		Background(lipgloss.Color(theme.ErrorBg))

	ErrorLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ErrorFg))
}
