package game

import (
	"bytes"
	"fmt"
	"log"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Game adapts a Session to ebiten.Game: Update polls and dispatches input,
// Draw renders the board.
type Game struct {
	session *Session
	width   int
	height  int

	labelFace *text.GoTextFace

	// Reused per-frame input buffers.
	events []Event
	keyBuf []ebiten.Key
}

// New builds a game for grid. It fails only if the label font cannot be
// parsed.
func New(grid Grid) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}
	w, h := grid.WindowSize()
	g := &Game{
		session:   NewSession(grid, NewSimLog(false)),
		width:     w,
		height:    h,
		labelFace: &text.GoTextFace{Source: src, Size: startLabelSize},
	}
	g.session.SetCopyHandler(copyToClipboard)
	return g, nil
}

// copyToClipboard hands the debug report to the OS clipboard. Failure is
// logged and otherwise ignored.
func copyToClipboard(report string) {
	if err := clipboard.WriteAll(report); err != nil {
		log.Printf("clipboard: %v", err)
		return
	}
	log.Printf("debug report copied to clipboard (%d bytes)", len(report))
}

// Session exposes the underlying state for inspection.
func (g *Game) Session() *Session {
	return g.session
}

func (g *Game) Update() error {
	g.session.Dispatch(g.pollEvents())
	if !g.session.Running() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.drawCheckerboard(screen)
	g.drawAgent(screen)
	if g.session.Phase() == PhaseMenu {
		g.drawStartButton(screen)
	}
	if g.session.ShowHUD() {
		g.drawHUD(screen)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
