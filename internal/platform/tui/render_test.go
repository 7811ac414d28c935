package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-humanbench/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.Paint(core.ColorGreen)
	s.DrawTextCenteredFg(1, "Press now!", core.ColorBlack)

	out := RenderScreen(s)
	if !strings.Contains(out, "Press now!") {
		t.Errorf("rendered output lost the text: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("rendered %d line breaks, want 2", got)
	}
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(5, 1)
	s.DrawText(0, 0, "hello")

	if out := RenderScreen(s); out != "hello" {
		t.Errorf("RenderScreen = %q, want unstyled text", out)
	}
}

func TestLipglossStyleCached(t *testing.T) {
	st := core.Style{Fg: core.ColorBrightWhite, Bg: core.ColorRed}
	lipglossStyle(st)
	if _, ok := styleCache[st]; !ok {
		t.Error("style should be cached after first use")
	}
}
