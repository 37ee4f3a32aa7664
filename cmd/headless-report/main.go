package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/Garsondee/Robotina/internal/game"
)

type runStats struct {
	frames int
	final  game.SimSnapshot

	startFrame int
	stopFrame  int

	clicks         int
	steps          int
	saturatedSteps int
	ignored        int
	copies         int
}

func main() {
	var tileSize int
	var cols int
	var rows int
	var script string
	var verbose bool

	flag.IntVar(&tileSize, "tile", game.DefaultTileSize, "tile size in pixels")
	flag.IntVar(&cols, "cols", game.DefaultTilesHorizontal, "horizontal tile count")
	flag.IntVar(&rows, "rows", game.DefaultTilesVertical, "vertical tile count")
	flag.StringVar(&script, "script", "click:330:220,right,right,down,click:100:100,esc", "comma-separated input script")
	flag.BoolVar(&verbose, "verbose", false, "also log ignored inputs")
	flag.Parse()

	ts, err := game.NewTestSim(game.WithGrid(tileSize, cols, rows), game.WithVerbose(verbose))
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	events, err := game.ParseScript(script)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if err := checkClicks(ts.Grid, events); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	w, h := ts.Grid.WindowSize()
	fmt.Printf("=== Headless Session Report ===\n")
	fmt.Printf("tile=%d tiles=%dx%d window=%dx%d events=%d\n\n", tileSize, cols, rows, w, h, len(events))

	rs := runScript(ts, events)
	fmt.Print(ts.SimLog.Format())
	fmt.Println()
	printRun(rs)
}

// checkClicks rejects scripted clicks that fall outside the window.
func checkClicks(grid game.Grid, events []game.Event) error {
	for i, ev := range events {
		if ev.Kind == game.EventMouseUp && !grid.Contains(ev.Pos) {
			w, h := grid.WindowSize()
			return fmt.Errorf("event %d %s lies outside the %dx%d window", i+1, ev, w, h)
		}
	}
	return nil
}

func runScript(ts *game.TestSim, events []game.Event) runStats {
	rs := runStats{frames: ts.RunScript(events)}
	rs.final = ts.Snapshot()

	entries := ts.SimLog.Entries()
	rs.startFrame = firstFrame(entries, "state", "start")
	rs.stopFrame = firstFrame(entries, "state", "stop")
	for _, e := range entries {
		switch {
		case e.Category == "move" && e.Key == "click":
			rs.clicks++
		case e.Category == "move" && e.Key == "step":
			rs.steps++
			if isSaturated(e.Value) {
				rs.saturatedSteps++
			}
		case e.Category == "input" && e.Key == "ignored":
			rs.ignored++
		case e.Category == "input" && e.Key == "copy":
			rs.copies++
		}
	}
	return rs
}

// firstFrame returns the frame of the first matching entry, or -1.
func firstFrame(entries []game.SimLogEntry, category, key string) int {
	for _, e := range entries {
		if e.Category == category && e.Key == key {
			return e.Frame
		}
	}
	return -1
}

// isSaturated reports whether a move value "dir (c,r) -> (c,r)" left the
// tile unchanged.
func isSaturated(value string) bool {
	before, after, ok := strings.Cut(value, " -> ")
	if !ok {
		return false
	}
	if i := strings.LastIndexByte(before, ' '); i >= 0 {
		before = before[i+1:]
	}
	return before == after
}

func frameString(f int) string {
	if f < 0 {
		return "never"
	}
	return fmt.Sprintf("%d", f)
}

func printRun(rs runStats) {
	fmt.Printf("--- Summary ---\n")
	fmt.Printf("frames=%d start=%s stop=%s\n", rs.frames, frameString(rs.startFrame), frameString(rs.stopFrame))
	fmt.Printf("clicks=%d steps=%d saturated=%d ignored=%d copies=%d\n",
		rs.clicks, rs.steps, rs.saturatedSteps, rs.ignored, rs.copies)
	fmt.Printf("final: %s\n", rs.final)
}
