package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings used outside the handle form.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Rename  key.Binding
	Quit    key.Binding
}

// FormKeyMap defines the key bindings of the handle form, where letters are text.
type FormKeyMap struct {
	Submit key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Restart, k.Rename, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Restart, k.Rename, k.Quit},
	}
}

// ShortHelp returns key bindings for the short help view.
func (k FormKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k FormKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.Quit}}
}

// DefaultKeyMap returns the in-game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "move right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter", "play again"),
			key.WithDisabled(),
		),
		Rename: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new handle"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DefaultFormKeyMap returns the handle form bindings.
func DefaultFormKeyMap() FormKeyMap {
	return FormKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// setPlaying toggles which bindings apply while a session runs versus after it ends.
func (k *KeyMap) setPlaying(playing bool) {
	k.Left.SetEnabled(playing)
	k.Right.SetEnabled(playing)
	k.Restart.SetEnabled(!playing)
	k.Rename.SetEnabled(!playing)
}
