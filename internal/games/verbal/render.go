package verbal

import (
	"fmt"

	"github.com/vovakirdan/tui-humanbench/internal/core"
)

const buttonWidth = 10

// Render draws the current screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	dst.Paint(core.ColorCyan)

	switch g.view {
	case viewIntro:
		dst.DrawLinesCentered([]string{
			"Verbal Memory",
			"",
			"You will be shown words, one at a time.",
			"If you have seen a word during the test, answer SEEN.",
			"If it is a new word, answer NEW.",
			"",
			"Press Enter to start",
		}, core.ColorBlack)

	case viewPlaying:
		g.renderPlaying(dst)

	case viewFinished:
		dst.DrawLinesCentered([]string{
			"Verbal Memory",
			fmt.Sprintf("%d words", g.score),
		}, core.ColorBlack)
	}
}

func (g *Game) renderPlaying(dst *core.Screen) {
	h := dst.Height()

	hud := fmt.Sprintf("Score: %d    Lives: %d", g.score, g.lives)
	dst.DrawTextCenteredFg(1, hud, core.ColorBlack)

	wordY := h/2 - 2
	dst.DrawTextCenteredFg(wordY, g.current, core.ColorBrightWhite)

	if g.answered > 0 {
		msg, fg := "Correct", core.ColorGreen
		if !g.lastOK {
			msg, fg = "Wrong", core.ColorRed
		}
		dst.DrawTextCenteredFg(wordY+2, msg, fg)
	}

	// Buttons
	buttonsY := wordY + 4
	total := buttonWidth*2 + 4
	left := (dst.Width() - total) / 2
	g.renderButton(dst, core.NewRect(left, buttonsY, buttonWidth, 3), AnswerSeen)
	g.renderButton(dst, core.NewRect(left+buttonWidth+4, buttonsY, buttonWidth, 3), AnswerNew)

	dst.DrawTextCenteredFg(buttonsY+4, "←/a SEEN   →/d NEW   Enter submit   s/n answer", core.ColorBlack)
}

func (g *Game) renderButton(dst *core.Screen, r core.Rect, a Answer) {
	dst.DrawBox(r)
	label := a.String()
	dst.DrawText(r.X+(r.W-core.TextWidth(label))/2, r.Y+1, label)

	style := core.Style{Fg: core.ColorBlack, Bg: core.ColorCyan}
	if g.selection == a {
		style = core.Style{Fg: core.ColorBlack, Bg: core.ColorBrightYellow}
	}
	dst.Highlight(r, style)
}
