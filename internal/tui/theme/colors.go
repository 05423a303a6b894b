// Package theme holds the colors the TUI renders with
package theme

import "github.com/thenoetrevino/kanbo/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Subtle         string
	Normal         string
	Title          string
	Create         string
	Edit           string
	Delete         string
	ColumnBorder   string
	TaskBorder     string
	SelectedBorder string
	SelectedBg     string
	TaskBg         string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

func init() {
	Init(*colors.Default())
}

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Highlight = scheme.Accent
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Title = scheme.Title
	Create = scheme.Create
	Edit = scheme.Edit
	Delete = scheme.Delete
	ColumnBorder = scheme.ColumnBorder
	TaskBorder = scheme.TaskBorder
	SelectedBorder = scheme.SelectedBorder
	SelectedBg = scheme.SelectedBg
	TaskBg = scheme.TaskBackground
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	WarningFg = scheme.WarningFg
	WarningBg = scheme.WarningBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
}
