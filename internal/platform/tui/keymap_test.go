package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-humanbench/internal/core"
	"github.com/vovakirdan/tui-humanbench/internal/games/number"
	"github.com/vovakirdan/tui-humanbench/internal/games/reaction"
	"github.com/vovakirdan/tui-humanbench/internal/games/verbal"
	"github.com/vovakirdan/tui-humanbench/internal/session"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapEvent(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.KeyEvent
	}{
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.Key(core.ActionQuit)},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.Key(core.ActionBack)},
		{"q goes back", runeKey('q'), core.KeyEvent{Action: core.ActionBack, Rune: 'q'}},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.Key(core.ActionUp)},
		{"w is up", runeKey('w'), core.KeyEvent{Action: core.ActionUp, Rune: 'w'}},
		{"s is down", runeKey('s'), core.KeyEvent{Action: core.ActionDown, Rune: 's'}},
		{"a is left", runeKey('a'), core.KeyEvent{Action: core.ActionLeft, Rune: 'a'}},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.Key(core.ActionRight)},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.Key(core.ActionConfirm)},
		{"space confirms", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeyEvent{Action: core.ActionConfirm, Rune: ' '}},
		{"backspace deletes", tea.KeyMsg{Type: tea.KeyBackspace}, core.Key(core.ActionDelete)},
		{"digit is a char", runeKey('7'), core.Char('7')},
		{"letter is a char", runeKey('n'), core.Char('n')},
		{"function key", tea.KeyMsg{Type: tea.KeyF5}, core.Key(core.ActionOther)},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.Key(core.ActionOther)},
		{"ctrl+letter", tea.KeyMsg{Type: tea.KeyCtrlA}, core.Key(core.ActionOther)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := km.Event(tt.msg)
			if got != tt.want {
				t.Errorf("Event(%q) = %+v, want %+v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestHelpForPhase(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		phase  session.Phase
		gameID string
		want   string
	}{
		{session.PhaseMenu, "", "play"},
		{session.PhasePlaying, verbal.ID, "seen"},
		{session.PhasePlaying, number.ID, "type"},
		{session.PhasePlaying, reaction.ID, "react"},
		{session.PhaseResult, "", "menu"},
	}

	for _, tt := range tests {
		found := false
		for _, b := range km.HelpFor(tt.phase, tt.gameID, 3).ShortHelp() {
			if b.Help().Desc == tt.want {
				found = true
			}
		}
		if !found {
			t.Errorf("HelpFor(%s, %q) missing %q", tt.phase, tt.gameID, tt.want)
		}
	}
}

func TestMenuHelpMatchesEntryCount(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		games int
		want  string
	}{
		{1, "1"},
		{3, "1-3"},
		{12, "1-9"},
		{0, ""},
	}

	for _, tt := range tests {
		got := ""
		for _, b := range km.HelpFor(session.PhaseMenu, "", tt.games).ShortHelp() {
			if b.Help().Desc == "play" {
				got = b.Help().Key
			}
		}
		if got != tt.want {
			t.Errorf("games=%d: digit hint = %q, want %q", tt.games, got, tt.want)
		}
	}
}

func TestRelabelDoesNotMutateKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	km.HelpFor(session.PhasePlaying, verbal.ID, 3)

	if km.Left.Help().Desc != "left" {
		t.Errorf("Left help = %q, want default text", km.Left.Help().Desc)
	}
}
