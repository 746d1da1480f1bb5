package types

import (
	"fmt"
	"strings"
)

// Point is a board cell. Coordinates are grid units, never pixels.
type Point struct {
	X, Y int
}

// Direction represents a cardinal direction of travel
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in input polling order.
var Directions = [...]Direction{Up, Down, Left, Right}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// TurnLeft returns the direction after a counter-clockwise quarter turn.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Left:
		return Down
	case Down:
		return Right
	default:
		return Up
	}
}

// TurnRight returns the direction after a clockwise quarter turn.
func (d Direction) TurnRight() Direction {
	return d.TurnLeft().Opposite()
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts the names produced by String, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if strings.EqualFold(strings.TrimSpace(s), d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("invalid direction %q", s)
}

// MoveTowards returns p translated by one cell. No bounds checking happens here.
func (p Point) MoveTowards(d Direction) Point {
	switch d {
	case Up:
		p.Y--
	case Down:
		p.Y++
	case Left:
		p.X--
	case Right:
		p.X++
	}
	return p
}

// Wrap folds p back onto a toroidal board of the given bounds.
// Only a single step of underflow is handled, which is all one tick can produce.
func (p Point) Wrap(bounds Point) Point {
	p.X = (p.X + bounds.X) % bounds.X
	p.Y = (p.Y + bounds.Y) % bounds.Y
	return p
}

// Rand is a source of uniformly distributed integers in [0, n).
type Rand interface {
	Intn(n int) int
}

// RandomPoint returns a cell uniformly distributed over [0, bounds.X) x [0, bounds.Y).
func RandomPoint(bounds Point, rng Rand) Point {
	return Point{
		X: rng.Intn(bounds.X),
		Y: rng.Intn(bounds.Y),
	}
}
