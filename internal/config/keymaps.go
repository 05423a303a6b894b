package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Boards
	CreateBoard string `yaml:"create_board"`
	DeleteBoard string `yaml:"delete_board"`
	OpenBoard   string `yaml:"open_board"`

	// Columns
	CreateColumn string `yaml:"create_column"`
	RenameColumn string `yaml:"rename_column"`
	DeleteColumn string `yaml:"delete_column"`

	// Tasks
	AddTask       string `yaml:"add_task"`
	EditTask      string `yaml:"edit_task"`
	DeleteTask    string `yaml:"delete_task"`
	ViewTask      string `yaml:"view_task"`
	MoveTaskLeft  string `yaml:"move_task_left"`
	MoveTaskRight string `yaml:"move_task_right"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevItem   string `yaml:"prev_item"`
	NextItem   string `yaml:"next_item"`
	Home       string `yaml:"home"`
	Profile    string `yaml:"profile"`
	Back       string `yaml:"back"`
	Refresh    string `yaml:"refresh"`

	// Account
	EditProfile   string `yaml:"edit_profile"`
	DeleteAccount string `yaml:"delete_account"`
	Logout        string `yaml:"logout"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		CreateBoard: "n",
		DeleteBoard: "D",
		OpenBoard:   "enter",

		CreateColumn: "C",
		RenameColumn: "R",
		DeleteColumn: "X",

		AddTask:       "a",
		EditTask:      "e",
		DeleteTask:    "d",
		ViewTask:      "enter",
		MoveTaskLeft:  "<",
		MoveTaskRight: ">",

		PrevColumn: "h",
		NextColumn: "l",
		PrevItem:   "k",
		NextItem:   "j",
		Home:       "w",
		Profile:    "p",
		Back:       "esc",
		Refresh:    "r",

		EditProfile:   "e",
		DeleteAccount: "D",
		Logout:        "L",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}

	fill(&k.CreateBoard, defaults.CreateBoard)
	fill(&k.DeleteBoard, defaults.DeleteBoard)
	fill(&k.OpenBoard, defaults.OpenBoard)
	fill(&k.CreateColumn, defaults.CreateColumn)
	fill(&k.RenameColumn, defaults.RenameColumn)
	fill(&k.DeleteColumn, defaults.DeleteColumn)
	fill(&k.AddTask, defaults.AddTask)
	fill(&k.EditTask, defaults.EditTask)
	fill(&k.DeleteTask, defaults.DeleteTask)
	fill(&k.ViewTask, defaults.ViewTask)
	fill(&k.MoveTaskLeft, defaults.MoveTaskLeft)
	fill(&k.MoveTaskRight, defaults.MoveTaskRight)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevItem, defaults.PrevItem)
	fill(&k.NextItem, defaults.NextItem)
	fill(&k.Home, defaults.Home)
	fill(&k.Profile, defaults.Profile)
	fill(&k.Back, defaults.Back)
	fill(&k.Refresh, defaults.Refresh)
	fill(&k.EditProfile, defaults.EditProfile)
	fill(&k.DeleteAccount, defaults.DeleteAccount)
	fill(&k.Logout, defaults.Logout)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
