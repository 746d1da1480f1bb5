// Package ai steers the snake without a human at the keyboard.
package ai

import (
	"golang.org/x/exp/slices"

	"snek/game"
	"snek/game/types"
	"snek/gameloop"
)

var pressKeys = map[types.Direction]gameloop.Key{
	types.Up:    gameloop.KeyUp,
	types.Down:  gameloop.KeyDown,
	types.Left:  gameloop.KeyLeft,
	types.Right: gameloop.KeyRight,
}

type stepKey struct {
	session string
	steps   int
}

// Autopilot is a gameloop.Input that presses direction keys on behalf of the
// player. Confirm and quit come from the wrapped human input, if any.
type Autopilot struct {
	game        *game.Game
	human       gameloop.Input
	autoRestart bool

	press     gameloop.Key
	pressing  bool
	lastPress stepKey
}

// New creates an autopilot for g. human may be nil.
func New(g *game.Game, human gameloop.Input, autoRestart bool) *Autopilot {
	return &Autopilot{
		game:        g,
		human:       human,
		autoRestart: autoRestart,
		lastPress:   stepKey{steps: -1},
	}
}

// Poll decides this frame's key. At most one turn is pressed per tick so the
// input queue never holds stale decisions.
func (a *Autopilot) Poll() {
	if p, ok := a.human.(gameloop.Poller); ok {
		p.Poll()
	}

	a.pressing = false
	snap := a.game.Snapshot()
	now := stepKey{session: snap.ID, steps: snap.Steps}
	if now == a.lastPress {
		return
	}
	if d, turn := Choose(snap); turn {
		a.press = pressKeys[d]
		a.pressing = true
		a.lastPress = now
	}
}

func (a *Autopilot) WasPressed(k gameloop.Key) bool {
	switch k {
	case gameloop.KeyConfirm:
		if a.autoRestart && game.IsDead(a.game.State()) {
			return true
		}
	case gameloop.KeyQuit:
	default:
		return a.pressing && a.press == k
	}
	return a.human != nil && a.human.WasPressed(k)
}

// Choose looks one step ahead: straight, left or right, skipping cells the body
// will still cover and preferring the one closest to food. It reports false
// when the current heading is already the best move or the game is over.
func Choose(snap game.Snapshot) (types.Direction, bool) {
	if game.IsDead(snap.State) {
		return snap.Heading, false
	}

	head := snap.Head()
	candidates := [...]types.Direction{snap.Heading, snap.Heading.TurnLeft(), snap.Heading.TurnRight()}

	best, bestDist := snap.Heading, -1
	for _, d := range candidates {
		next := snap.Grid.Step(head, d)
		if blocked(snap, next) {
			continue
		}
		dist := 0
		if snap.HasFood {
			dist = snap.Grid.Distance(next, snap.Food)
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best, best != snap.Heading
}

// blocked reports whether moving onto next ends the game. The tail moves out
// of the way unless the move eats.
func blocked(snap game.Snapshot, next types.Point) bool {
	end := len(snap.Body) - 1
	if snap.HasFood && next == snap.Food {
		end = len(snap.Body)
	}
	if end < 1 {
		return false
	}
	return slices.Contains(snap.Body[1:end], next)
}
