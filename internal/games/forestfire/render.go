package forestfire

import (
	"fmt"

	"github.com/vovakirdan/wildfire/internal/core"
	"github.com/vovakirdan/wildfire/internal/games/forestfire/sim"
)

const (
	hudHeight = 2 // Title line and status line
	cellWidth = 2 // Terminal columns per forest cell
)

// layout places the board on screen.
type layout struct {
	board    core.Rect
	compact  bool // Two forest rows per terminal row using half blocks
	tooSmall bool
}

func computeLayout(screenW, screenH, n int) layout {
	w := n * cellWidth
	x := (screenW - w) / 2
	switch {
	case screenW >= w && screenH >= hudHeight+n:
		return layout{board: core.NewRect(x, hudHeight, w, n)}
	case screenW >= w && screenH >= hudHeight+(n+1)/2:
		return layout{board: core.NewRect(x, hudHeight, w, (n+1)/2), compact: true}
	default:
		return layout{tooSmall: true}
	}
}

var stateColors = map[sim.CellState]core.Color{
	sim.Soil:  core.ColorSoil,
	sim.Tree:  core.ColorForest,
	sim.Fire:  core.ColorFlame,
	sim.Water: core.ColorWater,
}

var stateGlyphs = map[sim.CellState]string{
	sim.Soil:  "..",
	sim.Tree:  "/\\",
	sim.Fire:  "**",
	sim.Water: "~~",
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.layout.tooSmall {
		n := g.sim.Grid().Size()
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", n*cellWidth, hudHeight+(n+1)/2))
		return
	}

	if g.layout.compact {
		g.renderCompact(dst)
	} else {
		g.renderBoard(dst)
	}
	g.renderHelp(dst)

	switch {
	case g.sim.Ended():
		g.renderOverlay(dst, g.status, "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the title and status lines.
func (g *Game) renderHUD(dst *core.Screen) {
	grid := g.sim.Grid()
	preset := g.cfg.Difficulty.Preset
	if preset == "" {
		preset = "custom"
	}
	hud := fmt.Sprintf(" Forest Fire  Trees: %d  Fires: %d  Difficulty: %s",
		grid.Count(sim.Tree), grid.Count(sim.Fire), preset)
	dst.DrawText(0, 0, hud)

	color := core.ColorBrightYellow
	switch g.sim.Outcome() {
	case sim.OutcomeSaved:
		color = core.ColorBrightGreen
	case sim.OutcomeLost:
		color = core.ColorBrightRed
	}
	dst.DrawTextColor(1, 1, g.status, color)

	if msg := actionMessage(g.lastAction); msg != "" && !g.sim.Ended() {
		dst.DrawTextColor(len([]rune(g.status))+3, 1, msg, core.ColorGray)
	}
}

func actionMessage(a sim.Action) string {
	switch a {
	case sim.ActionExtinguish:
		return "Splash!"
	case sim.ActionFirebreak:
		return "Firebreak cut"
	}
	return ""
}

// renderBoard draws one terminal row per forest row.
func (g *Game) renderBoard(dst *core.Screen) {
	grid := g.sim.Grid()
	n := grid.Size()
	for y := range n {
		for x := range n {
			c := sim.C(x, y)
			state, _ := grid.Get(c)
			bg := stateColors[state]
			glyph := []rune(stateGlyphs[state])
			fg := core.ColorDefault
			if c == g.cursor {
				glyph = []rune("[]")
				fg = core.ColorBrightWhite
			}
			sx := g.layout.board.X + x*cellWidth
			sy := g.layout.board.Y + y
			for i := range cellWidth {
				dst.SetCell(sx+i, sy, core.Cell{Rune: glyph[i], Fg: fg, Bg: bg})
			}
		}
	}
}

// renderCompact draws two forest rows per terminal row with upper half blocks:
// the foreground colors the upper row, the background the lower one.
func (g *Game) renderCompact(dst *core.Screen) {
	grid := g.sim.Grid()
	n := grid.Size()
	colorAt := func(c sim.Coord) core.Color {
		if c == g.cursor {
			return core.ColorBrightWhite
		}
		state, err := grid.Get(c)
		if err != nil {
			return core.ColorDefault
		}
		return stateColors[state]
	}
	for row := 0; row < (n+1)/2; row++ {
		for x := range n {
			cell := core.Cell{
				Rune: '▀',
				Fg:   colorAt(sim.C(x, row*2)),
				Bg:   colorAt(sim.C(x, row*2+1)),
			}
			sx := g.layout.board.X + x*cellWidth
			sy := g.layout.board.Y + row
			for i := range cellWidth {
				dst.SetCell(sx+i, sy, cell)
			}
		}
	}
}

// renderHelp draws the key hints below the board when there is room.
func (g *Game) renderHelp(dst *core.Screen) {
	y := g.layout.board.Bottom()
	if y >= dst.Height() {
		return
	}
	help := "arrows move  space douse/cut  click act  p pause  r restart  q quit"
	if g.layout.compact {
		help = "arrows move  space douse/cut  p pause  r restart  q quit"
	}
	x := max(0, (dst.Width()-len(help))/2)
	dst.DrawTextColor(x, y, help, core.ColorGray)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
