package session

import (
	"fmt"

	"github.com/vovakirdan/tui-humanbench/internal/core"
)

const menuTitle = "H U M A N   B E N C H M A R K"

// Render draws the current phase into dst.
func (c *Controller) Render(dst *core.Screen) {
	switch c.phase {
	case PhaseMenu:
		c.renderMenu(dst)
	case PhasePlaying:
		dst.Clear()
		c.game.Render(dst)
	case PhaseResult:
		c.renderResult(dst)
	}
}

func (c *Controller) renderMenu(dst *core.Screen) {
	dst.Clear()

	lines := 4 + len(c.items)*3
	top := max((dst.Height()-lines)/2, 0)

	dst.DrawTextCenteredFg(top, menuTitle, core.ColorBrightCyan)
	dst.DrawTextCenteredFg(top+1, "Select a game", core.ColorGray)

	width := 0
	for _, item := range c.items {
		width = max(width, core.TextWidth(item.Description)+6, core.TextWidth(item.Title)+6)
	}
	left := max((dst.Width()-width)/2, 0)

	y := top + 3
	for i, item := range c.items {
		cursor := "  "
		fg := core.ColorWhite
		if i == c.cursor {
			cursor = "> "
			fg = core.ColorBrightYellow
			dst.Highlight(core.NewRect(left, y, width, 2), core.Style{Fg: fg, Bg: core.ColorBlue})
		}
		dst.DrawTextFg(left, y, fmt.Sprintf("%s%d. %s", cursor, i+1, item.Title), fg)
		dst.DrawTextFg(left+5, y+1, item.Description, core.ColorGray)
		y += 3
	}
}

func (c *Controller) renderResult(dst *core.Screen) {
	dst.Clear()
	dst.Paint(core.ColorBlue)

	lines := []string{
		c.result.Title,
		"",
		c.result.Headline,
		"",
	}
	lines = append(lines, c.result.Summary...)
	lines = append(lines, "", "Press any key to return to the menu")

	dst.DrawLinesCentered(lines, core.ColorBrightWhite)
}
