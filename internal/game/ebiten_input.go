package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyFromEbiten maps an Ebiten key onto the session key set.
func keyFromEbiten(k ebiten.Key) Key {
	switch k {
	case ebiten.KeyEscape:
		return KeyEscape
	case ebiten.KeyArrowLeft:
		return KeyArrowLeft
	case ebiten.KeyArrowRight:
		return KeyArrowRight
	case ebiten.KeyArrowUp:
		return KeyArrowUp
	case ebiten.KeyArrowDown:
		return KeyArrowDown
	case ebiten.KeyH:
		return KeyH
	case ebiten.KeyC:
		return KeyC
	default:
		return KeyUnknown
	}
}

// pollEvents collects this frame's input: window close, key presses (edge
// triggered) and left mouse releases. Releases outside the window are
// dropped so the session only sees in-window points.
func (g *Game) pollEvents() []Event {
	g.events = g.events[:0]
	if ebiten.IsWindowBeingClosed() {
		g.events = append(g.events, QuitEvent())
	}

	g.keyBuf = inpututil.AppendJustPressedKeys(g.keyBuf[:0])
	for _, k := range g.keyBuf {
		g.events = append(g.events, KeyDownEvent(keyFromEbiten(k)))
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		p := Point{X: mx, Y: my}
		if g.session.Grid().Contains(p) {
			g.events = append(g.events, MouseUpEvent(mx, my))
		}
	}
	return g.events
}
