package game

// Rect is an axis-aligned screen rectangle. Containment is half-open:
// the left and top edges are inside, the right and bottom edges are not.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// StartGate is the one-way switch from the menu to play. Once started it
// never reverts.
type StartGate struct {
	rect    Rect
	started bool
}

// NewStartGate centres the start button on a window of the given size.
func NewStartGate(windowW, windowH int) *StartGate {
	return &StartGate{rect: Rect{
		X: windowW/2 - startButtonWidth/2,
		Y: windowH/2 - startButtonHeight/2,
		W: startButtonWidth,
		H: startButtonHeight,
	}}
}

// Rect returns the button rectangle.
func (sg *StartGate) Rect() Rect {
	return sg.rect
}

// Started reports whether the gate has been opened.
func (sg *StartGate) Started() bool {
	return sg.started
}

// HandleClick opens the gate if it is still closed and p hits the button.
// It returns true only for the click that opened it.
func (sg *StartGate) HandleClick(p Point) bool {
	if sg.started || !sg.rect.Contains(p) {
		return false
	}
	sg.started = true
	return true
}
