package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// checkerboardTiles returns the dark background squares in draw order.
// Both loops run to TilesHorizontal and the outer index is the x axis;
// on non-square grids some squares fall outside the window and are clipped.
func checkerboardTiles(grid Grid) []Rect {
	n := grid.TilesHorizontal
	t := grid.TileSize
	out := make([]Rect, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		for j := i % 2; j < n; j += 2 {
			out = append(out, Rect{X: i * t, Y: j * t, W: t, H: t})
		}
	}
	return out
}

func (g *Game) drawCheckerboard(screen *ebiten.Image) {
	for _, r := range checkerboardTiles(g.session.Grid()) {
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), checkerColor, false)
	}
}

// drawAgent renders the agent as a filled circle filling its tile.
func (g *Game) drawAgent(screen *ebiten.Image) {
	p := g.session.Agent().Position()
	r := float32(g.session.Grid().TileSize / 2)
	vector.FillCircle(screen, float32(p.X), float32(p.Y), r, agentColor, true)
}

// drawStartButton renders the button with its label centred on it.
func (g *Game) drawStartButton(screen *ebiten.Image) {
	r := g.session.Gate().Rect()
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), startButtonColor, false)

	c := r.Center()
	w, h := text.Measure(startButtonLabel, g.labelFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(c.X)-w/2, float64(c.Y)-h/2)
	op.ColorScale.ScaleWithColor(startLabelColor)
	text.Draw(screen, startButtonLabel, g.labelFace, op)
}

// drawHUD renders state and key hints in the top-left corner.
func (g *Game) drawHUD(screen *ebiten.Image) {
	s := g.session
	pos := s.Agent().Position()
	tile := s.Agent().Tile()
	lines := []string{
		fmt.Sprintf("phase: %s  frame: %d", s.Phase(), s.Frame()),
		fmt.Sprintf("tile: (%d,%d)  pixel: (%d,%d)", tile.Col, tile.Row, pos.X, pos.Y),
		"arrows=step  click=move",
		"[C] copy report  [H] HUD  Esc=quit",
	}

	const lineH = 12 // debug font line height
	const charW = 6  // debug font char width
	const padX = 5
	const padY = 4

	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	bx, by := float32(4), float32(4)
	boxW := float32(maxLen*charW + padX*2)
	boxH := float32(len(lines)*lineH + padY*2)

	vector.FillRect(screen, bx, by, boxW, boxH, color.RGBA{R: 6, G: 10, B: 6, A: 210}, false)
	vector.StrokeRect(screen, bx, by, boxW, boxH, 1.0, color.RGBA{R: 60, G: 100, B: 60, A: 180}, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, int(bx)+padX, int(by)+padY+i*lineH)
	}
}
