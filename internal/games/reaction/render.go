package reaction

import (
	"fmt"

	"github.com/vovakirdan/tui-humanbench/internal/core"
)

// Render draws the current screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.view {
	case viewIntro:
		dst.Paint(core.ColorBlue)
		dst.DrawLinesCentered([]string{
			"⚡ Reaction Time",
			"",
			"When the red screen turns green, press any key as quickly as you can.",
			"",
			"Press any key to start",
		}, core.ColorBrightWhite)

	case viewRound:
		if g.round.Phase() == PhaseArmed {
			dst.Paint(core.ColorGreen)
			dst.DrawLinesCentered([]string{"Press now!"}, core.ColorBlack)
		} else {
			dst.Paint(core.ColorRed)
			dst.DrawLinesCentered([]string{"Wait for green..."}, core.ColorBrightWhite)
		}

	case viewAttempt:
		dst.Paint(core.ColorBlue)
		last := g.attempts[len(g.attempts)-1]
		dst.DrawLinesCentered([]string{
			fmt.Sprintf("%d ms", last.Milliseconds()),
			"",
			"Keep going! Press any key to continue",
		}, core.ColorBrightWhite)

	case viewTooSoon:
		dst.Paint(core.ColorBlue)
		dst.DrawLinesCentered([]string{
			"Too soon!",
			"",
			"Press any key to try again",
		}, core.ColorBrightYellow)

	case viewFinished:
		dst.Paint(core.ColorBlue)
		dst.DrawLinesCentered([]string{
			fmt.Sprintf("%d ms", g.Average().Milliseconds()),
		}, core.ColorBrightWhite)
	}

	if g.view != viewIntro && g.view != viewFinished {
		g.renderHUD(dst)
	}
}

// renderHUD draws the attempt counter in the top line.
func (g *Game) renderHUD(dst *core.Screen) {
	current := min(len(g.attempts)+1, g.cfg.Attempts)
	if g.view == viewAttempt {
		current = len(g.attempts)
	}
	hud := fmt.Sprintf("Attempt %d/%d", current, g.cfg.Attempts)
	dst.DrawTextCenteredFg(0, hud, core.ColorBrightWhite)
}
