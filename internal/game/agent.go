package game

// Direction is a cardinal step on the grid.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// String returns the lower-case direction name used in logs.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// delta returns the tile offset for one step in d.
func (d Direction) delta() (int, int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Agent is the single entity on the board. Its position is always the
// centre of a tile.
type Agent struct {
	grid Grid
	pos  Point
}

// NewAgent places an agent at the centre of tile (0,0).
func NewAgent(grid Grid) *Agent {
	return &Agent{grid: grid, pos: grid.TileCenter(Tile{})}
}

// Position returns the agent's current pixel position.
func (a *Agent) Position() Point {
	return a.pos
}

// Tile returns the tile the agent occupies.
func (a *Agent) Tile() Tile {
	return a.grid.TileAt(a.pos)
}

// MoveToClickedPoint snaps the agent to the tile containing p.
// Callers pass points inside the window.
func (a *Agent) MoveToClickedPoint(p Point) {
	a.pos = a.grid.TileCenterContaining(p)
}

// Step moves the agent one tile in d. Moves past an edge saturate at the
// boundary tile.
func (a *Agent) Step(d Direction) {
	dc, dr := d.delta()
	t := a.Tile()
	t = a.grid.ClampTile(Tile{Col: t.Col + dc, Row: t.Row + dr})
	a.pos = a.grid.TileCenter(t)
}
