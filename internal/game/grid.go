package game

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid is returned when a grid dimension is not strictly positive.
var ErrInvalidGrid = errors.New("invalid grid")

// Point is a pixel coordinate in window space.
type Point struct {
	X, Y int
}

// Tile addresses one grid cell by column and row.
type Tile struct {
	Col, Row int
}

// Grid is the immutable tile layout of the window.
type Grid struct {
	TileSize        int
	TilesHorizontal int
	TilesVertical   int
}

// NewGrid validates the dimensions and returns the grid.
func NewGrid(tileSize, tilesHorizontal, tilesVertical int) (Grid, error) {
	if tileSize <= 0 {
		return Grid{}, fmt.Errorf("%w: tile size must be > 0, got %d", ErrInvalidGrid, tileSize)
	}
	if tilesHorizontal <= 0 {
		return Grid{}, fmt.Errorf("%w: horizontal tile count must be > 0, got %d", ErrInvalidGrid, tilesHorizontal)
	}
	if tilesVertical <= 0 {
		return Grid{}, fmt.Errorf("%w: vertical tile count must be > 0, got %d", ErrInvalidGrid, tilesVertical)
	}
	return Grid{TileSize: tileSize, TilesHorizontal: tilesHorizontal, TilesVertical: tilesVertical}, nil
}

// WindowSize returns the window dimensions in pixels.
func (g Grid) WindowSize() (int, int) {
	return g.TileSize * g.TilesHorizontal, g.TileSize * g.TilesVertical
}

// Contains reports whether p lies inside the window.
func (g Grid) Contains(p Point) bool {
	w, h := g.WindowSize()
	return p.X >= 0 && p.Y >= 0 && p.X < w && p.Y < h
}

// TileAt returns the tile containing p. Points are expected inside the window.
func (g Grid) TileAt(p Point) Tile {
	return Tile{Col: floorDiv(p.X, g.TileSize), Row: floorDiv(p.Y, g.TileSize)}
}

// TileCenter returns the pixel centre of t.
func (g Grid) TileCenter(t Tile) Point {
	half := g.TileSize / 2
	return Point{X: g.TileSize*t.Col + half, Y: g.TileSize*t.Row + half}
}

// TileCenterContaining snaps p to the centre of the tile it falls in.
func (g Grid) TileCenterContaining(p Point) Point {
	return g.TileCenter(g.TileAt(p))
}

// ClampTile pulls t back inside the grid bounds.
func (g Grid) ClampTile(t Tile) Tile {
	return Tile{
		Col: clampCoord(t.Col, 0, g.TilesHorizontal-1),
		Row: clampCoord(t.Row, 0, g.TilesVertical-1),
	}
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
