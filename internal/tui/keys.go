package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/charon/internal/core"
	"github.com/jask/charon/internal/state"
)

// keyMap holds every binding the console knows. The first group is matched
// against key presses; the rest are typed characters that the reducer treats
// as shortcuts and only exist here so the help views can list them.
type keyMap struct {
	Quit      key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Tab       key.Binding
	ShiftTab  key.Binding
	Enter     key.Binding
	Esc       key.Binding
	Backspace key.Binding

	QuitChar key.Binding
	Help     key.Binding
	Refresh  key.Binding
	Menu     key.Binding
	Switch   key.Binding
	Category key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev screen")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next screen")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next screen")),
		ShiftTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev screen")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Esc:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),

		QuitChar: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Help:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Menu:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "actions")),
		Switch:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle category")),
		Category: key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[ ]", "category")),
	}
}

// translate turns one key press into reducer actions. A paste arrives as a
// single message carrying many runes, so it yields one Char per rune.
func (k keyMap) translate(msg tea.KeyMsg) []core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return []core.Action{core.Quit{}}
	case key.Matches(msg, k.Up):
		return []core.Action{core.Up{}}
	case key.Matches(msg, k.Down):
		return []core.Action{core.Down{}}
	case key.Matches(msg, k.Left):
		return []core.Action{core.Left{}}
	case key.Matches(msg, k.Right):
		return []core.Action{core.Right{}}
	case key.Matches(msg, k.Tab):
		return []core.Action{core.NextTab{}}
	case key.Matches(msg, k.ShiftTab):
		return []core.Action{core.PrevTab{}}
	case key.Matches(msg, k.Enter):
		return []core.Action{core.Enter{}}
	case key.Matches(msg, k.Esc):
		return []core.Action{core.Esc{}}
	case key.Matches(msg, k.Backspace):
		return []core.Action{core.Backspace{}}
	}

	switch msg.Type {
	case tea.KeySpace:
		return []core.Action{core.Char{Rune: ' '}}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		out := make([]core.Action, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, core.Char{Rune: r})
		}
		return out
	}
	return nil
}

// screenHelp adapts keyMap to help.KeyMap for one screen, so the footer only
// advertises what works where the operator is.
type screenHelp struct {
	keys   keyMap
	screen state.Screen
}

func (s screenHelp) ShortHelp() []key.Binding {
	k := s.keys
	switch s.screen {
	case state.ScreenDashboard:
		return []key.Binding{k.Up, k.Down, k.Enter, k.Menu, k.Refresh, k.Tab, k.Help, k.QuitChar}
	case state.ScreenTerminal:
		return []key.Binding{k.Enter, k.Up, k.Down, k.Esc, k.Tab, k.Quit}
	case state.ScreenConfig:
		return []key.Binding{k.Up, k.Down, k.Enter, k.Tab, k.Help, k.QuitChar}
	case state.ScreenBuilder:
		return []key.Binding{k.Up, k.Down, k.Enter, k.Switch, k.Category, k.Tab, k.Help, k.QuitChar}
	default:
		return []key.Binding{k.Tab, k.Quit}
	}
}

func (s screenHelp) FullHelp() [][]key.Binding {
	k := s.keys
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Tab, k.ShiftTab},
		{k.Enter, k.Esc, k.Backspace, k.Quit},
		{k.Help, k.Refresh, k.Menu, k.Switch, k.Category, k.QuitChar},
	}
}
