package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-humanbench/internal/config"
	"github.com/vovakirdan/tui-humanbench/internal/core"
	_ "github.com/vovakirdan/tui-humanbench/internal/games/number"
	_ "github.com/vovakirdan/tui-humanbench/internal/games/reaction"
	_ "github.com/vovakirdan/tui-humanbench/internal/games/verbal"
	"github.com/vovakirdan/tui-humanbench/internal/session"
)

type lowRand struct{}

func (lowRand) Intn(int) int { return 0 }

func (lowRand) Int63n(int64) int64 { return 0 }

func (lowRand) Float64() float64 { return 0 }

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time { return c.now }

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(clock core.Clock) (Model, *session.Controller) {
	settings := config.Default()
	settings.Reaction.Attempts = 1

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	ctrl := session.New(session.Options{
		Runtime:  cfg,
		Settings: settings,
		NewRand:  func(int64) core.Rand { return lowRand{} },
	})
	return NewModel(ctrl, cfg, WithClock(clock)), ctrl
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func TestModelMeasuresReactionAtKeyArrival(t *testing.T) {
	clock := &manualClock{now: t0}
	m, ctrl := newTestModel(clock)

	m, _ = update(t, m, runeKey('1'))                   // menu -> reaction intro
	m, _ = update(t, m, runeKey('x'))                   // intro -> waiting, 2000ms delay
	m, _ = update(t, m, TickMsg(t0.Add(2*time.Second))) // signal shown

	clock.now = t0.Add(2250 * time.Millisecond)
	_, _ = update(t, m, runeKey('x'))

	if ctrl.Phase() != session.PhaseResult {
		t.Fatalf("Phase = %s, want Result", ctrl.Phase())
	}
	result, _ := ctrl.Result()
	if result.Score != 250 {
		t.Errorf("Score = %d, want 250", result.Score)
	}
	if result.RoundID == "" {
		t.Error("result should carry a round ID")
	}
}

func TestModelUnboundKeysCountAsAnyKey(t *testing.T) {
	clock := &manualClock{now: t0}
	m, ctrl := newTestModel(clock)
	tab := tea.KeyMsg{Type: tea.KeyTab}

	m, _ = update(t, m, runeKey('1'))
	m, _ = update(t, m, tab) // leaves the intro, 2000ms delay
	m, _ = update(t, m, TickMsg(t0.Add(2*time.Second)))

	clock.now = t0.Add(2300 * time.Millisecond)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF5})
	if ctrl.Phase() != session.PhaseResult {
		t.Fatalf("Phase = %s, want Result after a function key reaction", ctrl.Phase())
	}
	if result, _ := ctrl.Result(); result.Score != 300 {
		t.Errorf("Score = %d, want 300", result.Score)
	}

	_, _ = update(t, m, tab)
	if ctrl.Phase() != session.PhaseMenu {
		t.Errorf("Phase = %s, want Menu after Tab on the result screen", ctrl.Phase())
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(&manualClock{now: t0})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit the program")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, ctrl := newTestModel(&manualClock{now: t0})

	m, _ = update(t, m, runeKey('3'))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if ctrl.Phase() != session.PhasePlaying {
		t.Fatalf("Phase = %s, want Playing after resize", ctrl.Phase())
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30-helpHeight {
		t.Errorf("screen = %dx%d, want 100x%d", m.screen.Width(), m.screen.Height(), 30-helpHeight)
	}
}

func TestModelViewShowsMenuAndHelp(t *testing.T) {
	m, _ := newTestModel(&manualClock{now: t0})

	view := m.View()
	if !strings.Contains(view, "Reaction Time") {
		t.Error("view should show the menu")
	}
	if !strings.Contains(view, "play") || !strings.Contains(view, "1-3") {
		t.Error("view should show the help bar with the digit range of the menu")
	}
}
