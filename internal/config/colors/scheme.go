package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // creation dialogs
	Edit   string `yaml:"edit"`   // edit dialogs
	Delete string `yaml:"delete"` // delete confirmations

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	TaskBorder     string `yaml:"task_border"`
	TaskBackground string `yaml:"task_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name, falling back to Default
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// fields lists every color field paired with src's value
func (c *ColorScheme) fields(src *ColorScheme) [][2]*string {
	return [][2]*string{
		{&c.Accent, &src.Accent},
		{&c.Create, &src.Create},
		{&c.Edit, &src.Edit},
		{&c.Delete, &src.Delete},
		{&c.ColumnBorder, &src.ColumnBorder},
		{&c.TaskBorder, &src.TaskBorder},
		{&c.TaskBackground, &src.TaskBackground},
		{&c.SelectedBorder, &src.SelectedBorder},
		{&c.SelectedBg, &src.SelectedBg},
		{&c.Title, &src.Title},
		{&c.Subtle, &src.Subtle},
		{&c.Normal, &src.Normal},
		{&c.InfoFg, &src.InfoFg},
		{&c.InfoBg, &src.InfoBg},
		{&c.WarningFg, &src.WarningFg},
		{&c.WarningBg, &src.WarningBg},
		{&c.ErrorFg, &src.ErrorFg},
		{&c.ErrorBg, &src.ErrorBg},
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	for _, pair := range c.fields(preset) {
		if *pair[0] == "" {
			*pair[0] = *pair[1]
		}
	}
}

// MergeFrom overrides colors with every non-empty value in other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	for _, pair := range c.fields(&other) {
		if *pair[1] != "" {
			*pair[0] = *pair[1]
		}
	}
}
