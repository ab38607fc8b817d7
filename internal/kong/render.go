package kong

import (
	"fmt"

	"github.com/vovakirdan/tui-kong/internal/core"
	"github.com/vovakirdan/tui-kong/internal/kong/sim"
)

var bonfireFrames = []rune{'^', 'w', 'W', 'w'}

// glyph returns the rune drawn for an entity and its draw layer. Higher
// layers cover lower ones on a shared cell.
func glyph(e *sim.Entity) (rune, int) {
	switch e.Kind {
	case sim.KindFloor:
		return '#', 0
	case sim.KindLadder:
		return 'H', 1
	case sim.KindExtraLife:
		return '+', 2
	case sim.KindGarlic:
		return 'g', 2
	case sim.KindBonfire:
		return bonfireFrames[core.Abs(e.Frame)%len(bonfireFrames)], 3
	case sim.KindFireball:
		return '*', 3
	case sim.KindKoopa:
		return 'k', 3
	case sim.KindBarrel:
		return 'o', 3
	case sim.KindKong:
		return 'K', 4
	case sim.KindBurp:
		return '~', 5
	case sim.KindPlayer:
		if e.Frozen > 0 {
			return '%', 6
		}
		return '@', 6
	}
	return '?', 0
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	switch {
	case g.tooSmall:
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", g.world.Width(), g.world.Height()+hudHeight))
		return
	case g.world != nil:
		g.renderGrid(dst)
	}

	switch {
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.session.Score()), "Press R to restart")
	case g.loadErr != nil:
		g.renderOverlay(dst, "Level error", fmt.Sprintf("Level %02d cannot be played", g.session.Level()), "Press R to restart")
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Final Score: %d", g.session.Score()), "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	if g.session == nil {
		return
	}
	hud := g.session.HUDLine()
	if flash := g.audio.Flash(); flash != "" {
		hud += "  " + flash + "!"
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderGrid draws the world centered under the HUD, top row first.
func (g *Game) renderGrid(dst *core.Screen) {
	w, h := g.world.Width(), g.world.Height()
	offX := (dst.Width() - w) / 2
	offY := hudHeight

	layers := make([]int, w*h)
	for i := range layers {
		layers[i] = -1
	}

	plot := func(e *sim.Entity) {
		if !e.Alive() || e.X < 0 || e.Y < 0 || e.X >= w || e.Y >= h {
			return
		}
		r, layer := glyph(e)
		idx := e.Y*w + e.X
		if layer < layers[idx] {
			return
		}
		layers[idx] = layer
		dst.SetColored(offX+e.X, offY+(h-1-e.Y), r, g.colors[e.Kind])
	}
	for _, e := range g.world.Entities() {
		plot(e)
	}
	plot(g.world.Player())
}

// renderOverlay draws a centered box with one line of text per row.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.CenteredRect(width+4, len(lines)+4, dst.Width(), dst.Height())
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+2+i, l)
	}
}
