package game

import "fmt"

// TestSim is a headless harness around Session used by tests and the
// headless report tool. It mirrors Game.Update without any Ebiten dependency.
type TestSim struct {
	Grid    Grid
	Session *Session
	SimLog  *SimLog
	Copied  []string // debug reports delivered by KeyC

	verbose bool
	started bool
}

// SimOption is a builder function applied to a TestSim during construction.
type SimOption func(*TestSim)

// WithGrid sets the grid dimensions.
func WithGrid(tileSize, tilesHorizontal, tilesVertical int) SimOption {
	return func(ts *TestSim) {
		ts.Grid = Grid{TileSize: tileSize, TilesHorizontal: tilesHorizontal, TilesVertical: tilesVertical}
	}
}

// WithStarted opens the start gate before the first frame by clicking the
// centre of the button.
func WithStarted() SimOption {
	return func(ts *TestSim) {
		ts.started = true
	}
}

// WithVerbose records ignored inputs too.
func WithVerbose(v bool) SimOption {
	return func(ts *TestSim) {
		ts.verbose = v
	}
}

// NewTestSim builds a session on the default 22px 30x20 grid unless
// WithGrid overrides it. The grid is validated like the windowed build.
func NewTestSim(opts ...SimOption) (*TestSim, error) {
	ts := &TestSim{
		Grid: Grid{TileSize: DefaultTileSize, TilesHorizontal: DefaultTilesHorizontal, TilesVertical: DefaultTilesVertical},
	}
	for _, o := range opts {
		o(ts)
	}
	grid, err := NewGrid(ts.Grid.TileSize, ts.Grid.TilesHorizontal, ts.Grid.TilesVertical)
	if err != nil {
		return nil, fmt.Errorf("test sim: %w", err)
	}
	ts.Grid = grid
	ts.SimLog = NewSimLog(ts.verbose)
	ts.Session = NewSession(grid, ts.SimLog)
	ts.Session.SetCopyHandler(func(report string) {
		ts.Copied = append(ts.Copied, report)
	})
	if ts.started {
		c := ts.Session.Gate().Rect().Center()
		ts.Frame(MouseUpEvent(c.X, c.Y))
	}
	return ts, nil
}

// Frame dispatches one frame carrying the given events.
func (ts *TestSim) Frame(events ...Event) {
	ts.Session.Dispatch(events)
}

// Click dispatches a single-click frame.
func (ts *TestSim) Click(x, y int) {
	ts.Frame(MouseUpEvent(x, y))
}

// Press dispatches one frame per key.
func (ts *TestSim) Press(keys ...Key) {
	for _, k := range keys {
		ts.Frame(KeyDownEvent(k))
	}
}

// RunScript dispatches each event in its own frame, stopping once the
// session is no longer running. It returns the number of frames run.
func (ts *TestSim) RunScript(events []Event) int {
	n := 0
	for _, ev := range events {
		if !ts.Session.Running() {
			break
		}
		ts.Frame(ev)
		n++
	}
	return n
}

// SimSnapshot is a lightweight copy of the session state.
type SimSnapshot struct {
	Frame    int
	Phase    Phase
	Position Point
	Tile     Tile
}

// Snapshot returns the current session state.
func (ts *TestSim) Snapshot() SimSnapshot {
	a := ts.Session.Agent()
	return SimSnapshot{
		Frame:    ts.Session.Frame(),
		Phase:    ts.Session.Phase(),
		Position: a.Position(),
		Tile:     a.Tile(),
	}
}

// String formats the snapshot as a one-line summary.
func (s SimSnapshot) String() string {
	return fmt.Sprintf("frame=%d phase=%s tile=(%d,%d) pixel=(%d,%d)",
		s.Frame, s.Phase, s.Tile.Col, s.Tile.Row, s.Position.X, s.Position.Y)
}
