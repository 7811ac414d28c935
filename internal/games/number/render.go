package number

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-humanbench/internal/core"
)

const gaugeWidth = 40

// Render draws the current screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	dst.Paint(core.ColorCyan)

	switch g.view {
	case viewIntro:
		dst.DrawLinesCentered([]string{
			"Number Memory",
			"",
			"The average person can remember 7 numbers at once. Can you do more?",
			"",
			"Press any key to start",
		}, core.ColorBlack)

	case viewShowing:
		top := dst.DrawLinesCentered([]string{g.target, "", ""}, core.ColorBrightWhite)
		g.renderGauge(dst, top+2)

	case viewInput:
		dst.DrawLinesCentered([]string{
			"What was the number?",
			"Press Enter to submit",
			"",
			g.Input() + "_",
		}, core.ColorBlack)

	case viewSuccess:
		dst.DrawLinesCentered([]string{
			"Number",
			g.target,
			"Your answer",
			g.lastAns,
			"",
			fmt.Sprintf("Level %d", g.level),
			"",
			"Press any key to continue",
		}, core.ColorBlack)

	case viewFinished:
		dst.DrawLinesCentered([]string{
			"Number",
			g.target,
			"Your answer",
			g.lastAns,
		}, core.ColorBlack)
	}

	dst.DrawTextFg(1, 0, fmt.Sprintf("Level %d", g.level), core.ColorBlack)
}

// renderGauge draws the time remaining before the number disappears.
func (g *Game) renderGauge(dst *core.Screen, y int) {
	total := g.cfg.ShowDuration()
	remaining := g.deadline.Remaining(g.now)

	filled := gaugeWidth
	if total > 0 {
		filled = int(int64(gaugeWidth) * int64(remaining) / int64(total))
	}
	filled = core.Clamp(filled, 0, gaugeWidth)

	bar := strings.Repeat("█", filled) + strings.Repeat("░", gaugeWidth-filled)
	dst.DrawTextCenteredFg(y, bar, core.ColorBrightWhite)
}
