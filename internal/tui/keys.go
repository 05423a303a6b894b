package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/thenoetrevino/kanbo/internal/config"
	"github.com/thenoetrevino/kanbo/internal/routes"
)

// keyMap holds every binding, built from the configured key mappings
type keyMap struct {
	CreateBoard key.Binding
	DeleteBoard key.Binding
	OpenBoard   key.Binding

	CreateColumn key.Binding
	RenameColumn key.Binding
	DeleteColumn key.Binding

	AddTask       key.Binding
	EditTask      key.Binding
	DeleteTask    key.Binding
	ViewTask      key.Binding
	MoveTaskLeft  key.Binding
	MoveTaskRight key.Binding

	PrevColumn key.Binding
	NextColumn key.Binding
	PrevItem   key.Binding
	NextItem   key.Binding
	Home       key.Binding
	Profile    key.Binding
	Back       key.Binding
	Refresh    key.Binding

	EditProfile   key.Binding
	DeleteAccount key.Binding
	Logout        key.Binding

	SwitchTab key.Binding
	SignIn    key.Binding

	ShowHelp  key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func bind(k, help string) key.Binding {
	return key.NewBinding(key.WithKeys(k), key.WithHelp(k, help))
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		CreateBoard: bind(km.CreateBoard, "new board"),
		DeleteBoard: bind(km.DeleteBoard, "delete board"),
		OpenBoard:   bind(km.OpenBoard, "open"),

		CreateColumn: bind(km.CreateColumn, "new column"),
		RenameColumn: bind(km.RenameColumn, "rename column"),
		DeleteColumn: bind(km.DeleteColumn, "delete column"),

		AddTask:       bind(km.AddTask, "add task"),
		EditTask:      bind(km.EditTask, "edit task"),
		DeleteTask:    bind(km.DeleteTask, "delete task"),
		ViewTask:      bind(km.ViewTask, "view task"),
		MoveTaskLeft:  bind(km.MoveTaskLeft, "move left"),
		MoveTaskRight: bind(km.MoveTaskRight, "move right"),

		PrevColumn: key.NewBinding(key.WithKeys(km.PrevColumn, "left"), key.WithHelp(km.PrevColumn+"/←", "column")),
		NextColumn: key.NewBinding(key.WithKeys(km.NextColumn, "right"), key.WithHelp(km.NextColumn+"/→", "column")),
		PrevItem:   key.NewBinding(key.WithKeys(km.PrevItem, "up"), key.WithHelp(km.PrevItem+"/↑", "up")),
		NextItem:   key.NewBinding(key.WithKeys(km.NextItem, "down"), key.WithHelp(km.NextItem+"/↓", "down")),
		Home:       bind(km.Home, "home"),
		Profile:    bind(km.Profile, "profile"),
		Back:       bind(km.Back, "back"),
		Refresh:    bind(km.Refresh, "refresh"),

		EditProfile:   bind(km.EditProfile, "edit profile"),
		DeleteAccount: bind(km.DeleteAccount, "delete account"),
		Logout:        bind(km.Logout, "log out"),

		SwitchTab: bind("ctrl+t", "login/sign up"),
		SignIn:    bind("enter", "sign in"),

		ShowHelp:  bind(km.ShowHelp, "help"),
		Quit:      bind(km.Quit, "quit"),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// pageHelp lists the bindings shown in the help line of a page
func (k keyMap) pageHelp(page routes.Page, authenticated bool) []key.Binding {
	switch page {
	case routes.PageWelcome:
		if !authenticated {
			return []key.Binding{k.SignIn, k.Quit}
		}
		return []key.Binding{k.PrevItem, k.NextItem, k.OpenBoard, k.CreateBoard, k.DeleteBoard, k.Refresh, k.Profile, k.Quit}
	case routes.PageAuth:
		if authenticated {
			return []key.Binding{k.Logout, k.Home, k.Quit}
		}
		return []key.Binding{k.SwitchTab, k.Back}
	case routes.PageProfile:
		return []key.Binding{k.EditProfile, k.DeleteAccount, k.Logout, k.Home, k.Quit}
	case routes.PageBoard:
		return []key.Binding{
			k.PrevColumn, k.NextColumn, k.PrevItem, k.NextItem,
			k.AddTask, k.EditTask, k.DeleteTask, k.ViewTask, k.MoveTaskLeft, k.MoveTaskRight,
			k.CreateColumn, k.RenameColumn, k.DeleteColumn, k.Refresh, k.Back, k.Quit,
		}
	default:
		return []key.Binding{k.Home, k.Quit}
	}
}
