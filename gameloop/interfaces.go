package gameloop

import (
	"time"

	"snek/game/types"
)

// Key is a logical key, independent of the frontend's key codes.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyConfirm
	KeyQuit
)

// Input reports key presses that happened since the previous frame.
type Input interface {
	WasPressed(k Key) bool
}

// Poller is implemented by inputs that need to latch events once per frame.
type Poller interface {
	Poll()
}

// Clock reports the real time elapsed since the previous frame, in seconds.
type Clock interface {
	FrameTime() float64
}

// ColorRole tells the renderer what a cell represents. Colors are its business.
type ColorRole int

const (
	RoleBody ColorRole = iota
	RoleHead
	RoleFood
	RoleCollision
)

// Renderer draws one frame. Cells are board coordinates; pixel placement and
// tile sizing belong to the implementation.
type Renderer interface {
	BeginFrame(grid types.Grid)
	DrawCell(cell types.Point, role ColorRole)
	DrawCenteredText(text string, xOffset, yOffset float64, fontSize int)
	EndFrame()
}

// NopRenderer discards everything. Used for headless runs.
type NopRenderer struct{}

func (NopRenderer) BeginFrame(types.Grid)                          {}
func (NopRenderer) DrawCell(types.Point, ColorRole)                {}
func (NopRenderer) DrawCenteredText(string, float64, float64, int) {}
func (NopRenderer) EndFrame()                                      {}

// FixedClock reports the same frame time every frame.
type FixedClock float64

func (c FixedClock) FrameTime() float64 {
	return float64(c)
}

// WallClock measures real time between calls.
type WallClock struct {
	last time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{last: time.Now()}
}

func (c *WallClock) FrameTime() float64 {
	now := time.Now()
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return dt
}

// NoInput never reports a press.
type NoInput struct{}

func (NoInput) WasPressed(Key) bool { return false }
