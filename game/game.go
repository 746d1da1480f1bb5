package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"snek/game/entity"
	"snek/game/manager"
	"snek/game/types"
)

// ErrNoFreeCell is returned by Tick when food cannot be placed because the
// snake fills the board.
var ErrNoFreeCell = entity.ErrNoFreeCell

// Game is the simulation. It is not safe for concurrent use; the loop driver
// owns it and calls every method from one goroutine.
type Game struct {
	ID        string
	StartTime time.Time
	Steps     int

	settings  Settings
	snake     *entity.Snake
	food      *manager.FoodManager
	input     *manager.InputManager
	collision *manager.CollisionManager
	state     State
	rng       types.Rand
	log       *zap.SugaredLogger
}

// New builds a playing game with a fresh snake and one food cell.
func New(settings Settings, rng types.Rand, log *zap.SugaredLogger) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid game settings")
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	g := &Game{
		ID:        uuid.New().String(),
		StartTime: time.Now(),
		settings:  settings,
		snake:     entity.NewSnake(settings.InitialHeading, settings.InitialLength, settings.Grid),
		food:      manager.NewFoodManager(settings.Grid, rng),
		input:     manager.NewInputManager(settings.InputQueueSize),
		collision: manager.NewCollisionManager(),
		state:     Playing{},
		rng:       rng,
		log:       log,
	}
	if err := g.food.Place(g.snake); err != nil {
		return nil, err
	}

	g.log.Infow("game created",
		"session", g.ID,
		"width", settings.Grid.Width,
		"height", settings.Grid.Height,
		"length", g.snake.Len())
	return g, nil
}

// QueueInput records a direction for a later tick. Validation against the
// heading happens when the input is consumed. It reports false if the queue
// was full and d was dropped.
func (g *Game) QueueInput(d types.Direction) bool {
	if !g.input.Push(d) {
		g.log.Debugw("input dropped", "session", g.ID, "direction", d, "dropped", g.input.Dropped())
		return false
	}
	return true
}

// Restart replaces the game with a fresh one built from the same settings.
// It only acts on a dead game and reports whether a restart happened.
func (g *Game) Restart() (bool, error) {
	if !IsDead(g.state) {
		return false, nil
	}
	prev := g.ID
	fresh, err := New(g.settings, g.rng, g.log)
	if err != nil {
		return false, err
	}
	*g = *fresh
	g.log.Infow("game restarted", "previous", prev, "session", g.ID)
	return true, nil
}

// Tick advances the simulation one step. It does nothing once dead.
func (g *Game) Tick() error {
	if IsDead(g.state) {
		return nil
	}
	g.Steps++

	g.snake.Heading = g.input.NextHeading(g.snake.Heading)

	head := g.settings.Grid.Step(g.snake.Head(), g.snake.Heading)
	g.snake.PushHead(head)

	var placeErr error
	if g.collision.IsFoodCollision(head, g.food) {
		// the tail stays: the snake grows by one
		if err := g.food.Place(g.snake); err != nil {
			g.log.Warnw("board is full", "session", g.ID, "length", g.snake.Len())
			placeErr = errors.Wrapf(err, "tick %d", g.Steps)
		} else {
			g.log.Debugw("food eaten", "session", g.ID, "length", g.snake.Len())
		}
	} else {
		g.snake.RemoveTail()
	}

	if cell, hit := g.collision.CheckSelfCollision(g.snake); hit {
		g.state = Dead{Collision: cell}
		g.log.Infow("snake died",
			"session", g.ID,
			"collision", cell,
			"score", g.snake.Len(),
			"steps", g.Steps,
			"duration", time.Since(g.StartTime))
	}
	return placeErr
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Heading() types.Direction {
	return g.snake.Heading
}

// Score is the current snake length.
func (g *Game) Score() int {
	return g.snake.Len()
}

func (g *Game) Settings() Settings {
	return g.settings
}

// DroppedInputs counts presses lost to a full input queue.
func (g *Game) DroppedInputs() int {
	return g.input.Dropped()
}

// Snapshot copies the state needed to draw a frame.
func (g *Game) Snapshot() Snapshot {
	food, hasFood := g.food.Food()
	return Snapshot{
		ID:      g.ID,
		Body:    g.snake.Body(),
		Food:    food,
		HasFood: hasFood,
		Heading: g.snake.Heading,
		State:   g.state,
		Score:   g.snake.Len(),
		Steps:   g.Steps,
		Grid:    g.settings.Grid,
	}
}
