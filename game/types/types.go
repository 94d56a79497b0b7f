package types

import "fmt"

// Point is a cell on the grid.
type Point struct {
	X, Y int
}

// Equals reports whether both coordinates match.
func (p Point) Equals(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

// Add returns p translated by v.
func (p Point) Add(v Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Area is the number of cells, which is also the maximum snake length.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Center returns the starting cell for a new snake.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}
