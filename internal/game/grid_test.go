package game

import (
	"errors"
	"testing"
)

func TestNewGrid_WindowSizeIsProduct(t *testing.T) {
	for ts := 1; ts <= 6; ts++ {
		for h := 1; h <= 5; h++ {
			for v := 1; v <= 5; v++ {
				g, err := NewGrid(ts, h, v)
				if err != nil {
					t.Fatalf("NewGrid(%d,%d,%d): unexpected error %v", ts, h, v, err)
				}
				w, hh := g.WindowSize()
				if w != ts*h || hh != ts*v {
					t.Fatalf("grid %d/%dx%d: expected window %dx%d, got %dx%d", ts, h, v, ts*h, ts*v, w, hh)
				}
			}
		}
	}
}

func TestNewGrid_RejectsNonPositive(t *testing.T) {
	cases := []struct {
		name          string
		tile, cols, r int
	}{
		{"zero tile", 0, 30, 20},
		{"negative tile", -22, 30, 20},
		{"zero cols", 22, 0, 20},
		{"negative rows", 22, 30, -1},
		{"zero rows", 22, 30, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGrid(tc.tile, tc.cols, tc.r)
			if !errors.Is(err, ErrInvalidGrid) {
				t.Fatalf("expected ErrInvalidGrid, got %v", err)
			}
		})
	}
}

func TestTileCenterContaining_SnapsToCentre(t *testing.T) {
	g := Grid{TileSize: 22, TilesHorizontal: 30, TilesVertical: 20}
	cases := []struct {
		in, want Point
	}{
		{Point{0, 0}, Point{11, 11}},
		{Point{21, 21}, Point{11, 11}},
		{Point{22, 0}, Point{33, 11}},
		{Point{100, 100}, Point{99, 99}},
		{Point{659, 439}, Point{649, 429}},
	}
	for _, tc := range cases {
		if got := g.TileCenterContaining(tc.in); got != tc.want {
			t.Fatalf("TileCenterContaining(%v): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestTileCenterContaining_Idempotent(t *testing.T) {
	grids := []Grid{
		{TileSize: 22, TilesHorizontal: 30, TilesVertical: 20},
		{TileSize: 7, TilesHorizontal: 5, TilesVertical: 9},
		{TileSize: 1, TilesHorizontal: 4, TilesVertical: 3},
	}
	for _, g := range grids {
		w, h := g.WindowSize()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := g.TileCenterContaining(Point{x, y})
				if !g.Contains(c) {
					t.Fatalf("grid %+v: centre %v of (%d,%d) outside window", g, c, x, y)
				}
				if again := g.TileCenterContaining(c); again != c {
					t.Fatalf("grid %+v: not a fixed point: %v -> %v", g, c, again)
				}
			}
		}
	}
}

func TestGrid_ContainsBounds(t *testing.T) {
	g := Grid{TileSize: 10, TilesHorizontal: 3, TilesVertical: 2}
	if !g.Contains(Point{0, 0}) || !g.Contains(Point{29, 19}) {
		t.Fatal("corners inside the window should be contained")
	}
	for _, p := range []Point{{-1, 0}, {0, -1}, {30, 0}, {0, 20}} {
		if g.Contains(p) {
			t.Fatalf("%v should be outside a 30x20 window", p)
		}
	}
}

func TestGrid_ClampTile(t *testing.T) {
	g := Grid{TileSize: 10, TilesHorizontal: 3, TilesVertical: 2}
	if got := g.ClampTile(Tile{-1, 5}); got != (Tile{0, 1}) {
		t.Fatalf("expected (0,1), got %v", got)
	}
	if got := g.ClampTile(Tile{1, 1}); got != (Tile{1, 1}) {
		t.Fatalf("in-bounds tile should be unchanged, got %v", got)
	}
}

func TestFloorDiv_Negative(t *testing.T) {
	if got := floorDiv(-1, 22); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
	if got := floorDiv(-22, 22); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
	if got := floorDiv(43, 22); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}
