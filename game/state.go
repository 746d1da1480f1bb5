package game

import "snek/game/types"

// State is either Playing or Dead. Switch on the concrete type.
type State interface {
	isState()
}

// Playing is the state of a live game.
type Playing struct{}

// Dead is terminal. Collision is the cell where the head hit the body.
type Dead struct {
	Collision types.Point
}

func (Playing) isState() {}
func (Dead) isState()    {}

// IsDead reports whether s is the terminal state.
func IsDead(s State) bool {
	_, dead := s.(Dead)
	return dead
}
