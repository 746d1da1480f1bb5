package manager

import (
	"github.com/gammazero/deque"

	"snek/game/types"
)

// InputManager buffers direction presses so a burst of keys within one frame
// is applied across consecutive ticks, one per tick.
type InputManager struct {
	queue   *deque.Deque[types.Direction]
	limit   int
	dropped int
}

// NewInputManager creates a queue holding at most limit pending directions.
func NewInputManager(limit int) *InputManager {
	if limit < 1 {
		limit = 1
	}
	return &InputManager{
		queue: deque.New[types.Direction](limit),
		limit: limit,
	}
}

// Push appends d. It reports false when the queue is full and d was discarded.
func (im *InputManager) Push(d types.Direction) bool {
	if im.queue.Len() >= im.limit {
		im.dropped++
		return false
	}
	im.queue.PushBack(d)
	return true
}

// Pop removes the oldest pending direction.
func (im *InputManager) Pop() (types.Direction, bool) {
	if im.queue.Len() == 0 {
		return 0, false
	}
	return im.queue.PopFront(), true
}

// NextHeading consumes at most one queued direction and returns the heading
// to use for the coming step. An exact reversal is discarded.
func (im *InputManager) NextHeading(current types.Direction) types.Direction {
	d, ok := im.Pop()
	if !ok || d == current.Opposite() {
		return current
	}
	return d
}

func (im *InputManager) Len() int {
	return im.queue.Len()
}

// Dropped counts inputs discarded because the queue was full.
func (im *InputManager) Dropped() int {
	return im.dropped
}
