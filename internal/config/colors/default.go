package colors

// Default returns the default color scheme (teal theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#2AA198",

		Create: "#5FD75F",
		Edit:   "#5F87D7",
		Delete: "#FF5F5F",

		ColumnBorder:   "#5F87D7",
		TaskBorder:     "#585858",
		TaskBackground: "#262626",
		SelectedBorder: "#2AA198",
		SelectedBg:     "#3A3A3A",

		Title:  "#5FD7D7",
		Subtle: "#6C6C6C",
		Normal: "#D0D0D0",

		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF5F5F",
		ErrorBg:   "#5F0000",
	}
}
