package logs

import (
	"github.com/charmbracelet/bubbles/key"

	"logdeck/internal/app/ui/components"
)

// KeyMap defines the key bindings for the log view
type KeyMap struct {
	components.KeyMap
	Search         key.Binding
	ToggleCase     key.Binding
	ToggleRegex    key.Binding
	ToggleLevel    key.Binding
	PrevCategory   key.Binding
	NextCategory   key.Binding
	ToggleCategory key.Binding
	Clear          key.Binding
	Sort           key.Binding
	Grow           key.Binding
	Shrink         key.Binding
	Copy           key.Binding
	Follow         key.Binding
	Help           key.Binding
	Accept         key.Binding
	Cancel         key.Binding
}

// DefaultKeyMap returns the default key bindings for the log view
func DefaultKeyMap() KeyMap {
	return KeyMap{
		KeyMap: components.DefaultKeyMap(),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		ToggleCase: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "case"),
		),
		ToggleRegex: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "regex"),
		),
		ToggleLevel: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "levels"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev category"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next category"),
		),
		ToggleCategory: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle category"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Sort: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "sort"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "keep more"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "keep less"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Follow: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "follow"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
	}
}

// ShortHelp returns keybindings for the mini help
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.ToggleLevel, k.ToggleCategory, k.Follow, k.Copy, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Search, k.ToggleCase, k.ToggleRegex, k.Accept, k.Cancel},
		{k.ToggleLevel, k.PrevCategory, k.NextCategory, k.ToggleCategory},
		{k.Clear, k.Sort, k.Grow, k.Shrink, k.Copy, k.Follow},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
