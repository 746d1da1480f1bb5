package entity

import (
	"github.com/gammazero/deque"
	"github.com/pkg/errors"

	"snek/game/types"
)

// ErrNoFreeCell is returned when the snake covers every cell of the board.
var ErrNoFreeCell = errors.New("no free cell available")

// samplesPerCell bounds rejection sampling before falling back to a scan.
const samplesPerCell = 4

// Snake is the player's creature. The head is at index 0.
type Snake struct {
	Heading types.Direction
	body    *deque.Deque[types.Point]
}

// NewSnake lays out length cells in a straight line starting at the board
// center. Each step pushes to the front, so the tail ends up on the center
// and the head length-1 cells further along heading.
func NewSnake(heading types.Direction, length int, grid types.Grid) *Snake {
	body := deque.New[types.Point](length)
	cell := grid.Center()
	for i := 0; i < length; i++ {
		body.PushFront(cell)
		cell = grid.Step(cell, heading)
	}
	return &Snake{
		Heading: heading,
		body:    body,
	}
}

// NewSnakeFromBody builds a snake from explicit cells, head first.
func NewSnakeFromBody(heading types.Direction, cells ...types.Point) *Snake {
	body := deque.New[types.Point](len(cells))
	for _, c := range cells {
		body.PushBack(c)
	}
	return &Snake{
		Heading: heading,
		body:    body,
	}
}

// Len is the body size, which doubles as the score.
func (s *Snake) Len() int {
	return s.body.Len()
}

// Head panics if the body is empty; every constructor yields at least one cell.
func (s *Snake) Head() types.Point {
	return s.body.Front()
}

func (s *Snake) Tail() types.Point {
	return s.body.Back()
}

// At returns the i-th segment counted from the head.
func (s *Snake) At(i int) types.Point {
	return s.body.At(i)
}

// PushHead grows the body by one cell at the front.
func (s *Snake) PushHead(p types.Point) {
	s.body.PushFront(p)
}

// RemoveTail drops the last segment and returns it.
func (s *Snake) RemoveTail() types.Point {
	return s.body.PopBack()
}

// Occupies reports whether any segment covers p.
func (s *Snake) Occupies(p types.Point) bool {
	for i := 0; i < s.body.Len(); i++ {
		if s.body.At(i) == p {
			return true
		}
	}
	return false
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []types.Point {
	cells := make([]types.Point, s.body.Len())
	for i := range cells {
		cells[i] = s.body.At(i)
	}
	return cells
}

// PickUnoccupiedCell draws random cells until one is off the body. After
// samplesPerCell*area misses it picks uniformly among the remaining free cells,
// so the call always terminates.
func (s *Snake) PickUnoccupiedCell(grid types.Grid, rng types.Rand) (types.Point, error) {
	area := grid.Area()
	if s.Len() >= area {
		return types.Point{}, ErrNoFreeCell
	}

	bounds := grid.Bounds()
	for i := 0; i < samplesPerCell*area; i++ {
		cell := types.RandomPoint(bounds, rng)
		if !s.Occupies(cell) {
			return cell, nil
		}
	}

	occupied := make(map[types.Point]struct{}, s.Len())
	for i := 0; i < s.body.Len(); i++ {
		occupied[s.body.At(i)] = struct{}{}
	}
	free := make([]types.Point, 0, area-len(occupied))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, ErrNoFreeCell
	}
	return free[rng.Intn(len(free))], nil
}
