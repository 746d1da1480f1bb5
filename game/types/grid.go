package types

// Grid holds the board dimensions
type Grid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Bounds returns the exclusive upper corner of the board.
func (g Grid) Bounds() Point {
	return Point{X: g.Width, Y: g.Height}
}

// Center returns the cell the starting snake is anchored on.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Area is the number of cells on the board.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Step moves p one cell along d and wraps it onto the board.
func (g Grid) Step(p Point, d Direction) Point {
	return p.MoveTowards(d).Wrap(g.Bounds())
}

// Distance is the Manhattan distance between two cells taking wrapping into account.
func (g Grid) Distance(a, b Point) int {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)

	if dx > g.Width/2 {
		dx = g.Width - dx
	}
	if dy > g.Height/2 {
		dy = g.Height - dy
	}

	return dx + dy
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
