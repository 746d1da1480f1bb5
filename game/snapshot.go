package game

import "snek/game/types"

// Snapshot is a read-only copy of a game for rendering.
type Snapshot struct {
	ID      string
	Body    []types.Point // head first
	Food    types.Point
	HasFood bool
	Heading types.Direction
	State   State
	Score   int
	Steps   int
	Grid    types.Grid
}

func (s Snapshot) Head() types.Point {
	return s.Body[0]
}

// Collision returns the death marker cell, if the game is over.
func (s Snapshot) Collision() (types.Point, bool) {
	if dead, ok := s.State.(Dead); ok {
		return dead.Collision, true
	}
	return types.Point{}, false
}
