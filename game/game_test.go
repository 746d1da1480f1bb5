package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"

	"snek/game/entity"
	"snek/game/types"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// newScenario builds a default game, then replaces its snake and food.
func newScenario(t *testing.T, grid types.Grid, heading types.Direction, food types.Point, body ...types.Point) *Game {
	t.Helper()
	settings := DefaultSettings()
	settings.Grid = grid
	g, err := New(settings, newRand(1), zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)
	g.snake = entity.NewSnakeFromBody(heading, body...)
	g.food.Set(food)
	return g
}

var board = types.Grid{Width: 24, Height: 16}

func TestNewGame(t *testing.T) {
	g, err := New(DefaultSettings(), newRand(7), nil)
	require.NoError(t, err)

	snap := g.Snapshot()
	assert.IsType(t, Playing{}, snap.State)
	assert.Equal(t, 3, snap.Score)
	assert.Equal(t, types.Right, snap.Heading)
	assert.Equal(t, types.Point{X: 14, Y: 8}, snap.Head())
	assert.Equal(t, board.Center(), snap.Body[len(snap.Body)-1])
	require.True(t, snap.HasFood)
	assert.False(t, slices.Contains(snap.Body, snap.Food))
	assert.NotEmpty(t, snap.ID)
}

func TestNewGameRejectsInvalidSettings(t *testing.T) {
	settings := DefaultSettings()
	settings.Grid = types.Grid{Width: 2, Height: 1}
	settings.InitialLength = 2
	_, err := New(settings, newRand(1), nil)
	assert.Error(t, err)
}

func TestStraightGrowth(t *testing.T) {
	g := newScenario(t, board, types.Right, types.Point{X: 13, Y: 8},
		types.Point{X: 12, Y: 8}, types.Point{X: 11, Y: 8}, types.Point{X: 10, Y: 8})

	require.NoError(t, g.Tick())

	snap := g.Snapshot()
	assert.Equal(t, types.Point{X: 13, Y: 8}, snap.Head())
	assert.Equal(t, 4, snap.Score)
	assert.Equal(t, types.Point{X: 10, Y: 8}, snap.Body[3], "tail stays when eating")
	require.True(t, snap.HasFood)
	assert.False(t, slices.Contains(snap.Body, snap.Food), "new food %+v on body", snap.Food)
	assert.IsType(t, Playing{}, snap.State)
}

func TestReversalRejected(t *testing.T) {
	g := newScenario(t, board, types.Right, types.Point{X: 0, Y: 0},
		types.Point{X: 12, Y: 8}, types.Point{X: 11, Y: 8}, types.Point{X: 10, Y: 8})

	g.QueueInput(types.Left)
	require.NoError(t, g.Tick())

	assert.Equal(t, types.Right, g.Heading())
	assert.Equal(t, types.Point{X: 13, Y: 8}, g.Snapshot().Head())
	assert.Equal(t, 3, g.Score())
}

func TestQueuedInputsApplyOnePerTick(t *testing.T) {
	g := newScenario(t, board, types.Right, types.Point{X: 0, Y: 0},
		types.Point{X: 12, Y: 8}, types.Point{X: 11, Y: 8}, types.Point{X: 10, Y: 8})

	g.QueueInput(types.Up)
	g.QueueInput(types.Left)

	require.NoError(t, g.Tick())
	assert.Equal(t, types.Up, g.Heading())
	assert.Equal(t, types.Point{X: 12, Y: 7}, g.Snapshot().Head())

	require.NoError(t, g.Tick())
	assert.Equal(t, types.Left, g.Heading())
	assert.Equal(t, types.Point{X: 11, Y: 7}, g.Snapshot().Head())
}

func TestSelfCollision(t *testing.T) {
	g := newScenario(t, board, types.Left, types.Point{X: 20, Y: 10},
		types.Point{X: 2, Y: 2}, types.Point{X: 3, Y: 2}, types.Point{X: 3, Y: 1},
		types.Point{X: 2, Y: 1}, types.Point{X: 1, Y: 1})

	g.QueueInput(types.Up)
	require.NoError(t, g.Tick())

	dead, ok := g.State().(Dead)
	require.True(t, ok, "expected Dead, got %T", g.State())
	assert.Equal(t, types.Point{X: 2, Y: 1}, dead.Collision)

	collision, ok := g.Snapshot().Collision()
	require.True(t, ok)
	assert.Equal(t, types.Point{X: 2, Y: 1}, collision)

	before := g.Snapshot()
	g.QueueInput(types.Right)
	require.NoError(t, g.Tick())
	after := g.Snapshot()
	assert.Equal(t, before.Body, after.Body, "dead game must not move")
	assert.Equal(t, before.Steps, after.Steps)
}

func TestGrowingOntoBodyStillKills(t *testing.T) {
	// the head steps onto the current tail cell while eating, so the tail is kept
	g := newScenario(t, board, types.Left, types.Point{X: 2, Y: 1},
		types.Point{X: 2, Y: 2}, types.Point{X: 3, Y: 2}, types.Point{X: 3, Y: 1},
		types.Point{X: 2, Y: 1})
	g.QueueInput(types.Up)

	require.NoError(t, g.Tick())
	assert.True(t, IsDead(g.State()))
	assert.Equal(t, 5, g.Score())
}

func TestWrapAround(t *testing.T) {
	g := newScenario(t, board, types.Right, types.Point{X: 5, Y: 5},
		types.Point{X: 23, Y: 4}, types.Point{X: 22, Y: 4}, types.Point{X: 21, Y: 4})

	require.NoError(t, g.Tick())
	assert.Equal(t, types.Point{X: 0, Y: 4}, g.Snapshot().Head())

	g.QueueInput(types.Up)
	for i := 0; i < 5; i++ {
		require.NoError(t, g.Tick())
	}
	assert.Equal(t, types.Point{X: 0, Y: 15}, g.Snapshot().Head())
}

func TestRestart(t *testing.T) {
	g := newScenario(t, board, types.Left, types.Point{X: 20, Y: 10},
		types.Point{X: 2, Y: 2}, types.Point{X: 3, Y: 2}, types.Point{X: 3, Y: 1},
		types.Point{X: 2, Y: 1}, types.Point{X: 1, Y: 1})
	g.QueueInput(types.Up)
	require.NoError(t, g.Tick())
	require.True(t, IsDead(g.State()))
	oldID := g.ID

	restarted, err := g.Restart()
	require.NoError(t, err)
	require.True(t, restarted)

	snap := g.Snapshot()
	assert.IsType(t, Playing{}, snap.State)
	assert.Equal(t, 3, snap.Score)
	assert.Equal(t, types.Point{X: 14, Y: 8}, snap.Head())
	assert.Equal(t, types.Right, snap.Heading)
	assert.Equal(t, 0, snap.Steps)
	assert.NotEqual(t, oldID, snap.ID)
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g, err := New(DefaultSettings(), newRand(3), nil)
	require.NoError(t, err)
	require.NoError(t, g.Tick())
	id := g.ID

	restarted, err := g.Restart()
	require.NoError(t, err)
	assert.False(t, restarted)
	assert.Equal(t, id, g.ID)
	assert.Equal(t, 1, g.Steps)
}

func TestBoardFull(t *testing.T) {
	settings := DefaultSettings()
	settings.Grid = types.Grid{Width: 3, Height: 1}
	settings.InitialLength = 1
	g, err := New(settings, newRand(5), nil)
	require.NoError(t, err)
	g.snake = entity.NewSnakeFromBody(types.Right, types.Point{X: 1, Y: 0}, types.Point{X: 0, Y: 0})
	g.food.Set(types.Point{X: 2, Y: 0})

	err = g.Tick()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoFreeCell))

	snap := g.Snapshot()
	assert.Equal(t, 3, snap.Score)
	assert.False(t, snap.HasFood)
	assert.IsType(t, Playing{}, snap.State)

	require.NoError(t, g.Tick(), "a full board keeps moving without food")
	snap = g.Snapshot()
	assert.Equal(t, types.Point{X: 0, Y: 0}, snap.Head())
	assert.Equal(t, 3, snap.Score)
	assert.IsType(t, Playing{}, snap.State)
}

func TestInputQueueIsBounded(t *testing.T) {
	settings := DefaultSettings()
	settings.InputQueueSize = 2
	g, err := New(settings, newRand(9), nil)
	require.NoError(t, err)

	assert.True(t, g.QueueInput(types.Up))
	assert.True(t, g.QueueInput(types.Left))
	assert.False(t, g.QueueInput(types.Down))
	assert.Equal(t, 1, g.DroppedInputs())
}

// TestRandomPlayInvariants drives games with random input and checks length
// monotonicity, food placement and collision correctness on every tick.
func TestRandomPlayInvariants(t *testing.T) {
	settings := DefaultSettings()
	settings.Grid = types.Grid{Width: 8, Height: 6}

	for seed := uint64(1); seed <= 20; seed++ {
		rng := newRand(seed)
		g, err := New(settings, rng, nil)
		require.NoError(t, err)
		input := newRand(seed + 1000)

		for step := 0; step < 400 && !IsDead(g.State()); step++ {
			if input.Intn(3) == 0 {
				g.QueueInput(types.Directions[input.Intn(len(types.Directions))])
			}
			before := g.Snapshot()
			heading := g.Heading()
			require.NoError(t, g.Tick())
			after := g.Snapshot()

			require.True(t, settings.Grid.Contains(after.Head()))
			if before.HasFood && after.Head() == before.Food {
				require.Equal(t, before.Score+1, after.Score, "seed %d step %d", seed, step)
				if after.HasFood {
					require.False(t, slices.Contains(after.Body, after.Food))
				}
			} else {
				require.Equal(t, before.Score, after.Score, "seed %d step %d", seed, step)
			}
			require.NotEqual(t, heading.Opposite(), after.Heading)

			hit := slices.Contains(after.Body[1:], after.Head())
			require.Equal(t, hit, IsDead(after.State), "seed %d step %d", seed, step)
			if collision, dead := after.Collision(); dead {
				require.Equal(t, after.Head(), collision)
			}
		}
	}
}

func TestSettingsValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*Settings)
	}{
		{"zero width", func(s *Settings) { s.Grid.Width = 0 }},
		{"negative height", func(s *Settings) { s.Grid.Height = -1 }},
		{"zero length", func(s *Settings) { s.InitialLength = 0 }},
		{"snake fills board", func(s *Settings) { s.Grid = types.Grid{Width: 3, Height: 1}; s.InitialLength = 3 }},
		{"longer than board width", func(s *Settings) { s.Grid = types.Grid{Width: 4, Height: 4}; s.InitialLength = 6 }},
		{"longer than board height", func(s *Settings) {
			s.Grid = types.Grid{Width: 10, Height: 3}
			s.InitialLength = 4
			s.InitialHeading = types.Down
		}},
		{"zero queue", func(s *Settings) { s.InputQueueSize = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSettings()
			tc.modify(&s)
			assert.Error(t, s.Validate())
		})
	}
	assert.NoError(t, DefaultSettings().Validate())

	fits := Settings{Grid: types.Grid{Width: 4, Height: 2}, InitialLength: 4, InitialHeading: types.Left, InputQueueSize: 1}
	assert.NoError(t, fits.Validate(), "a full row is still a straight line")
}
