package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snek/gameloop"
)

var keyCodes = map[gameloop.Key]int32{
	gameloop.KeyUp:      rl.KeyUp,
	gameloop.KeyDown:    rl.KeyDown,
	gameloop.KeyLeft:    rl.KeyLeft,
	gameloop.KeyRight:   rl.KeyRight,
	gameloop.KeyConfirm: rl.KeyEnter,
	gameloop.KeyQuit:    rl.KeyEscape,
}

// Input reads key-press edges from raylib; EndDrawing refreshes them each frame.
type Input struct{}

func (Input) WasPressed(k gameloop.Key) bool {
	code, ok := keyCodes[k]
	return ok && rl.IsKeyPressed(code)
}

// Clock is raylib's frame timer.
type Clock struct{}

func (Clock) FrameTime() float64 {
	return float64(rl.GetFrameTime())
}

// Options for opening the window.
type Options struct {
	Width  int
	Height int
	FPS    int
	Title  string
}

// Open creates a resizable window. Close it with rl.CloseWindow via the returned func.
func Open(opts Options) func() {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	rl.SetExitKey(0)
	rl.SetTargetFPS(int32(opts.FPS))
	return rl.CloseWindow
}

// ShouldClose reports the window close button or the quit key.
func ShouldClose(in gameloop.Input) bool {
	return rl.WindowShouldClose() || in.WasPressed(gameloop.KeyQuit)
}
