package reaction

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-humanbench/internal/config"
	"github.com/vovakirdan/tui-humanbench/internal/core"
)

// fixedRand always returns the lowest value, so delays equal MinDelay.
type fixedRand struct{}

func (fixedRand) Intn(int) int { return 0 }
func (fixedRand) Int63n(int64) int64 { return 0 }
func (fixedRand) Float64() float64 { return 0 }

func newTestGame(attempts int) *Game {
	cfg := config.Default().Reaction
	cfg.Attempts = attempts
	g := New(cfg, fixedRand{})
	g.Reset(core.DefaultConfig())
	return g
}

func press(g *Game, ms int) core.StepResult {
	return g.Step(core.KeyFrame(at(ms), core.Key(core.ActionConfirm)))
}

func tick(g *Game, ms int) core.StepResult {
	return g.Step(core.TickFrame(at(ms)))
}

func TestGameSingleAttempt(t *testing.T) {
	g := newTestGame(1)

	press(g, 0) // leave intro, round starts at t0 with a 2000ms delay
	tick(g, 1000)
	if g.round.Phase() != PhaseWaiting {
		t.Fatalf("Phase = %s, want Waiting", g.round.Phase())
	}
	tick(g, 2000)
	if g.round.Phase() != PhaseArmed {
		t.Fatalf("Phase = %s, want Armed", g.round.Phase())
	}

	res := press(g, 2250)
	if !res.State.GameOver {
		t.Fatal("game should be over after the only attempt")
	}

	result := g.Result()
	if result.Score != 250 {
		t.Errorf("Score = %d, want 250", result.Score)
	}
	if result.Duration != 250*time.Millisecond {
		t.Errorf("Duration = %v, want 250ms", result.Duration)
	}
	if !result.FinishedAt.Equal(at(2250)) {
		t.Errorf("FinishedAt = %v, want press instant", result.FinishedAt)
	}
	if result.GameID != ID {
		t.Errorf("GameID = %q, want %q", result.GameID, ID)
	}
}

func TestGameEarlyPressRetries(t *testing.T) {
	g := newTestGame(1)

	press(g, 0)
	press(g, 500) // too soon
	if g.view != viewTooSoon {
		t.Fatalf("view = %d, want too soon", g.view)
	}
	if g.State().GameOver {
		t.Fatal("early press must not end the game")
	}

	press(g, 1000) // retry, new round waits until 3000
	tick(g, 3000)
	press(g, 3200)

	if !g.State().GameOver {
		t.Fatal("game should be over")
	}
	result := g.Result()
	if result.Score != 200 {
		t.Errorf("Score = %d, want 200", result.Score)
	}
	if !strings.Contains(strings.Join(result.Summary, "\n"), "Too soon: 1") {
		t.Errorf("Summary = %v, want early press count", result.Summary)
	}
}

func TestGameKeyBeforeArmingTickFailsEarly(t *testing.T) {
	g := newTestGame(1)

	press(g, 0)
	// Delay has elapsed but no tick has shown the signal yet
	press(g, 2005)
	if g.round.Phase() != PhaseFailedEarly {
		t.Errorf("Phase = %s, want FailedEarly", g.round.Phase())
	}
}

func TestGameAverageOverAttempts(t *testing.T) {
	g := newTestGame(3)
	reactions := []int{200, 300, 400}

	now := 0
	press(g, now) // intro
	for i, r := range reactions {
		tick(g, now+2000)
		res := press(g, now+2000+r)
		now += 2000 + r

		last := i == len(reactions)-1
		if res.State.GameOver != last {
			t.Fatalf("attempt %d: GameOver = %v, want %v", i+1, res.State.GameOver, last)
		}
		if !last {
			press(g, now) // continue from the attempt screen
		}
	}

	result := g.Result()
	if result.Score != 300 {
		t.Errorf("Score = %d, want 300", result.Score)
	}
	if len(result.Summary) != 4 {
		t.Errorf("Summary has %d lines, want 3 attempts plus early count", len(result.Summary))
	}
	if got := g.Attempts(); len(got) != 3 || got[0] != 200*time.Millisecond {
		t.Errorf("Attempts = %v", got)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(2)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !screen.Contains("Reaction Time") {
		t.Error("intro should show the title")
	}

	press(g, 0)
	g.Render(screen)
	if !screen.Contains("Wait for green") {
		t.Error("waiting screen should ask to wait")
	}
	if screen.GetCell(0, 5).Style.Bg != core.ColorRed {
		t.Error("waiting screen should be red")
	}

	tick(g, 2000)
	g.Render(screen)
	if !screen.Contains("Press now!") {
		t.Error("armed screen should ask for a press")
	}
	if screen.GetCell(0, 5).Style.Bg != core.ColorGreen {
		t.Error("armed screen should be green")
	}

	press(g, 2123)
	g.Render(screen)
	if !screen.Contains("123 ms") {
		t.Error("attempt screen should show the reaction time")
	}
	if !screen.Contains("Attempt 1/2") {
		t.Error("HUD should show attempt counter")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(1)
	press(g, 0)
	tick(g, 2000)
	press(g, 2100)

	g.Reset(core.DefaultConfig())
	if g.State().GameOver {
		t.Error("Reset should clear game over")
	}
	if len(g.Attempts()) != 0 {
		t.Error("Reset should clear attempts")
	}
}
