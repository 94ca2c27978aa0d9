package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neurolink/internal/core"
)

// KeyMap holds the key bindings for the game screen.
// It implements help.KeyMap for the bottom help line.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Shoot     key.Binding
	Pause     key.Binding
	Restart   key.Binding
	NextLevel key.Binding
	Mute      key.Binding
	Spawn     key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Shoot: key.NewBinding(
			key.WithKeys(" ", "w", "up"),
			key.WithHelp("space", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("n", "enter"),
			key.WithHelp("n", "next level"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		// Debug helper, kept out of the help line.
		Spawn: key.NewBinding(
			key.WithKeys("o"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Shoot, k.Pause, k.Mute, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Shoot},
		{k.Pause, k.Restart, k.NextLevel},
		{k.Mute, k.Quit},
	}
}

// Action translates a key message to a game action.
// Returns core.ActionNone for unbound keys.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.ForceQuit), key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Shoot):
		return core.ActionShoot
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.NextLevel):
		return core.ActionNextLevel
	case key.Matches(msg, k.Mute):
		return core.ActionMute
	case key.Matches(msg, k.Spawn):
		return core.ActionSpawnPowerUp
	}
	return core.ActionNone
}
