package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-boom/internal/core"
)

// PlayerKeys holds the bindings of one local player.
type PlayerKeys struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Bomb  key.Binding
}

func (k PlayerKeys) actions() []struct {
	binding key.Binding
	action  core.Action
} {
	return []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Bomb, core.ActionBomb},
	}
}

// GameKeyMap defines the key bindings while a game runs.
type GameKeyMap struct {
	P1 PlayerKeys
	P2 PlayerKeys

	Confirm    key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultGameKeyMap returns arrows and space for the first player and
// wasd and f for the second.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		P1: PlayerKeys{
			Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
			Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
			Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
			Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
			Bomb:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "bomb")),
		},
		P2: PlayerKeys{
			Up:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "P2 up")),
			Down:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "P2 down")),
			Left:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "P2 left")),
			Right: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "P2 right")),
			Bomb:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "P2 bomb")),
		},
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "skip"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.P1.Bomb, k.P2.Bomb, k.Confirm, k.Pause, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1.Up, k.P1.Down, k.P1.Left, k.P1.Right, k.P1.Bomb},
		{k.P2.Up, k.P2.Down, k.P2.Left, k.P2.Right, k.P2.Bomb},
		{k.Confirm, k.Pause, k.Restart, k.Back, k.Screenshot, k.Quit},
	}
}

// MapKeyToMultiFrame records the action bound to msg in frame.
// Session keys (confirm, pause, restart) count as the first player's.
// Returns true if the key was a quit request.
func (k GameKeyMap) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	if key.Matches(msg, k.Quit) {
		return true
	}

	for _, b := range k.P1.actions() {
		if key.Matches(msg, b.binding) {
			frame.Set(core.Player1, b.action)
			return false
		}
	}
	for _, b := range k.P2.actions() {
		if key.Matches(msg, b.binding) {
			frame.Set(core.Player2, b.action)
			return false
		}
	}

	switch {
	case key.Matches(msg, k.Confirm):
		frame.Set(core.Player1, core.ActionConfirm)
	case key.Matches(msg, k.Pause):
		frame.Set(core.Player1, core.ActionPause)
	case key.Matches(msg, k.Restart):
		frame.Set(core.Player1, core.ActionRestart)
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MenuKeyMap defines the key bindings of the menus.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Select     key.Binding
	Back       key.Binding
	Scoreboard key.Binding
	Quit       key.Binding
}

// DefaultMenuKeyMap returns default menu bindings, with vim keys.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "change"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "change"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Select, k.Scoreboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Back, k.Scoreboard, k.Quit},
	}
}

// Action translates a key to a menu action.
func (k MenuKeyMap) Action(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, k.Quit):
		return MenuActionQuit
	case key.Matches(msg, k.Up):
		return MenuActionUp
	case key.Matches(msg, k.Down):
		return MenuActionDown
	case key.Matches(msg, k.Left):
		return MenuActionLeft
	case key.Matches(msg, k.Right):
		return MenuActionRight
	case key.Matches(msg, k.Select):
		return MenuActionSelect
	case key.Matches(msg, k.Back):
		return MenuActionBack
	case key.Matches(msg, k.Scoreboard):
		return MenuActionScoreboard
	}
	return MenuActionNone
}
