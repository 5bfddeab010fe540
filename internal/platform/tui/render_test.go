package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/wildfire/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(8, 2)
	s.DrawText(0, 0, "fire")
	s.SetCell(4, 0, core.Cell{Rune: '*', Fg: core.ColorBrightWhite, Bg: core.ColorFlame})
	s.SetCell(5, 0, core.Cell{Rune: '*', Fg: core.ColorBrightWhite, Bg: core.ColorFlame})
	s.DrawTextColor(0, 1, "water", core.ColorWater)

	out := ansi.Strip(RenderScreen(s))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "fire**  " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "water   " {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestPaletteCoversGameColors(t *testing.T) {
	for _, c := range []core.Color{core.ColorSoil, core.ColorForest, core.ColorFlame, core.ColorWater} {
		if _, ok := palette[c]; !ok {
			t.Errorf("color %d has no palette entry", c)
		}
	}
}
