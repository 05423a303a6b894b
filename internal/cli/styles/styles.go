package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/kanbo/internal/config/colors"
	"github.com/thenoetrevino/kanbo/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "ID:", "Column:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description", "Columns"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.InfoFg)).
		Background(lipgloss.Color(scheme.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.ErrorFg)).
		Background(lipgloss.Color(scheme.ErrorBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.WarningFg)).
		Background(lipgloss.Color(scheme.WarningBg)).
		Padding(0, 1)
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// Field renders "Label: value"
func Field(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

// RenderMarkdown renders a task description for the terminal.
// Falls back to the raw text when glamour cannot render it.
func RenderMarkdown(text string, width int) string {
	if strings.TrimSpace(text) == "" {
		return SubtitleStyle.Render("No description")
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

// ═══════════════════════════════════════════════════════════════════
// CARDS
// ═══════════════════════════════════════════════════════════════════

// BoardCard renders a board with its columns and their task counts
func BoardCard(b models.Board, tasks map[string][]models.Task) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(b.Title))
	sb.WriteString("\n")
	sb.WriteString(SubtitleStyle.Render(b.ID))
	if b.Description != "" {
		sb.WriteString("\n\n")
		sb.WriteString(ValueStyle.Render(b.Description))
	}

	sb.WriteString("\n")
	sb.WriteString(SectionStyle.Render("Columns"))
	if len(b.Columns) == 0 {
		sb.WriteString("\n")
		sb.WriteString(SubtitleStyle.Render("  none"))
	}
	for _, col := range b.Columns {
		list := tasks[col.ID]
		sb.WriteString(fmt.Sprintf("\n  %d. %s %s", col.Order, ValueStyle.Render(col.Title),
			SubtitleStyle.Render(fmt.Sprintf("(%d tasks, %s)", len(list), col.ID))))
		for _, t := range list {
			sb.WriteString("\n     • " + t.Title)
		}
	}
	return RenderCard(sb.String())
}

// TaskCard renders a task with its description as markdown
func TaskCard(t models.Task) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(t.Title))
	sb.WriteString("\n")
	sb.WriteString(Field("ID", t.ID))
	sb.WriteString("\n")
	sb.WriteString(Field("Board", t.BoardID))
	sb.WriteString("\n")
	sb.WriteString(Field("Column", t.ColumnID))
	sb.WriteString("\n")
	sb.WriteString(Field("Order", fmt.Sprintf("%d", t.Order)))
	if t.UserID != "" {
		sb.WriteString("\n")
		sb.WriteString(Field("Assignee", t.UserID))
	}
	sb.WriteString("\n")
	sb.WriteString(SectionStyle.Render("Description"))
	sb.WriteString("\n")
	sb.WriteString(RenderMarkdown(t.Description, CardWidth-6))
	return RenderCard(sb.String())
}
