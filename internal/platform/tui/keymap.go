package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-humanbench/internal/core"
	"github.com/vovakirdan/tui-humanbench/internal/games/number"
	"github.com/vovakirdan/tui-humanbench/internal/games/verbal"
	"github.com/vovakirdan/tui-humanbench/internal/session"
)

// KeyMap defines the key bindings translated into core actions.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Delete     key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "delete"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc/q", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// Event translates a key message into a core key event.
// Printable keys keep their rune even when they also map to an action,
// so 'a' is both ActionLeft and the letter a. Unbound keys without a
// character become ActionOther so "press any key" screens still see them.
func (k KeyMap) Event(msg tea.KeyMsg) core.KeyEvent {
	var ev core.KeyEvent

	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			ev.Rune = msg.Runes[0]
		}
	case tea.KeySpace:
		ev.Rune = ' '
	}

	switch {
	case key.Matches(msg, k.Quit):
		ev.Action = core.ActionQuit
	case key.Matches(msg, k.Back):
		ev.Action = core.ActionBack
	case key.Matches(msg, k.Up):
		ev.Action = core.ActionUp
	case key.Matches(msg, k.Down):
		ev.Action = core.ActionDown
	case key.Matches(msg, k.Left):
		ev.Action = core.ActionLeft
	case key.Matches(msg, k.Right):
		ev.Action = core.ActionRight
	case key.Matches(msg, k.Confirm):
		ev.Action = core.ActionConfirm
	case key.Matches(msg, k.Delete):
		ev.Action = core.ActionDelete
	case ev.Rune != 0:
		ev.Action = core.ActionChar
	default:
		ev.Action = core.ActionOther
	}

	return ev
}

// bindingSet adapts a list of bindings to help.KeyMap.
type bindingSet []key.Binding

// ShortHelp returns key bindings for the short help view.
func (b bindingSet) ShortHelp() []key.Binding {
	return b
}

// FullHelp returns key bindings for the full help view.
func (b bindingSet) FullHelp() [][]key.Binding {
	return [][]key.Binding{b}
}

var _ help.KeyMap = bindingSet(nil)

// relabel returns a copy of b with different help text.
func relabel(b key.Binding, keys, desc string) key.Binding {
	b.SetHelp(keys, desc)
	return b
}

// hint is a help-only binding for keys that have no single binding.
func hint(keys, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys), key.WithHelp(keys, desc))
}

// HelpFor returns the bindings shown in the help bar for a phase.
// gameID selects game-specific hints while playing; games is the number of
// menu entries reachable by digit.
func (k KeyMap) HelpFor(phase session.Phase, gameID string, games int) help.KeyMap {
	switch phase {
	case session.PhaseMenu:
		set := bindingSet{k.Up, k.Down, k.Confirm}
		if games > 0 {
			set = append(set, hint(digitRange(games), "play"))
		}
		return append(set, relabel(k.Back, "esc/q", "quit"))

	case session.PhasePlaying:
		back := relabel(k.Back, "esc/q", "menu")
		switch gameID {
		case verbal.ID:
			return bindingSet{
				relabel(k.Left, "←/a", "seen"),
				relabel(k.Right, "→/d", "new"),
				relabel(k.Confirm, "enter", "submit"),
				hint("s/n", "answer"),
				back,
			}
		case number.ID:
			return bindingSet{
				hint("0-9", "type"),
				k.Delete,
				relabel(k.Confirm, "enter", "submit"),
				back,
			}
		default:
			return bindingSet{hint("any key", "react"), back}
		}

	default:
		return bindingSet{hint("any key", "menu"), k.Quit}
	}
}

// digitRange labels the digit shortcuts for n menu entries.
func digitRange(n int) string {
	if n == 1 {
		return "1"
	}
	return fmt.Sprintf("1-%d", min(n, 9))
}
