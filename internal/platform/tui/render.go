package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-humanbench/internal/core"
)

// ansiCodes maps core.Color to terminal color codes. ColorDefault is absent
// and leaves the terminal's own color in place.
var ansiCodes = map[core.Color]lipgloss.Color{
	core.ColorRed:          lipgloss.Color("1"),
	core.ColorGreen:        lipgloss.Color("2"),
	core.ColorYellow:       lipgloss.Color("3"),
	core.ColorBlue:         lipgloss.Color("4"),
	core.ColorMagenta:      lipgloss.Color("5"),
	core.ColorCyan:         lipgloss.Color("6"),
	core.ColorWhite:        lipgloss.Color("7"),
	core.ColorBlack:        lipgloss.Color("0"),
	core.ColorBrightRed:    lipgloss.Color("9"),
	core.ColorBrightGreen:  lipgloss.Color("10"),
	core.ColorBrightYellow: lipgloss.Color("11"),
	core.ColorBrightBlue:   lipgloss.Color("12"),
	core.ColorBrightCyan:   lipgloss.Color("14"),
	core.ColorBrightWhite:  lipgloss.Color("15"),
	core.ColorGray:         lipgloss.Color("245"),
}

// styleCache holds one lipgloss style per fg/bg pair.
var styleCache = make(map[core.Style]lipgloss.Style)

// lipglossStyle converts a cell style to a lipgloss style.
func lipglossStyle(s core.Style) lipgloss.Style {
	if st, ok := styleCache[s]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if c, ok := ansiCodes[s.Fg]; ok {
		st = st.Foreground(c)
	}
	if c, ok := ansiCodes[s.Bg]; ok {
		st = st.Background(c)
	}
	styleCache[s] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same style for efficiency
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Style

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (core.Style{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(lipglossStyle(start).Render(run.String()))
		}
	}
	return sb.String()
}
