package game

import (
	"fmt"
	"strings"
)

// Report renders the session state and recent log entries as plain text,
// suitable for pasting into a bug report.
func (s *Session) Report() string {
	w, h := s.grid.WindowSize()
	pos := s.agent.Position()
	tile := s.agent.Tile()
	gate := s.gate.Rect()

	var b strings.Builder
	fmt.Fprintf(&b, "--- Robotina debug report ---\n")
	fmt.Fprintf(&b, "grid: tile=%d tiles=%dx%d window=%dx%d\n",
		s.grid.TileSize, s.grid.TilesHorizontal, s.grid.TilesVertical, w, h)
	fmt.Fprintf(&b, "frame=%d phase=%s hud=%t\n", s.frame, s.Phase(), s.showHUD)
	fmt.Fprintf(&b, "agent: tile=(%d,%d) pixel=(%d,%d)\n", tile.Col, tile.Row, pos.X, pos.Y)
	fmt.Fprintf(&b, "start button: x=%d y=%d w=%d h=%d started=%t\n",
		gate.X, gate.Y, gate.W, gate.H, s.gate.Started())

	tail := s.log.Tail(reportLogLines)
	fmt.Fprintf(&b, "\n== last %d log entries ==\n", len(tail))
	if len(tail) == 0 {
		b.WriteString("(no entries recorded yet)\n")
	}
	for _, e := range tail {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
