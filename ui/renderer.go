package ui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snek/game/types"
	"snek/gameloop"
)

const tileGap = 2 // pixels left between neighbouring tiles

var roleColors = map[gameloop.ColorRole]rl.Color{
	gameloop.RoleBody:      rl.NewColor(128, 255, 64, 255),
	gameloop.RoleHead:      rl.NewColor(64, 255, 128, 255),
	gameloop.RoleFood:      rl.NewColor(128, 64, 255, 255),
	gameloop.RoleCollision: rl.NewColor(255, 64, 128, 255),
}

// Renderer draws the board centred in the window, scaling tiles to fit.
type Renderer struct {
	screenWidth  int32
	screenHeight int32
	tileSize     float32
	marginX      float32
	marginY      float32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// layout picks the largest whole tile that fits both axes and centres the board.
func (r *Renderer) layout(grid types.Grid) {
	maxW := math.Floor(float64(r.screenWidth) / float64(grid.Width))
	maxH := math.Floor(float64(r.screenHeight) / float64(grid.Height))
	r.tileSize = float32(math.Min(maxW, maxH))
	r.marginX = (float32(r.screenWidth) - r.tileSize*float32(grid.Width)) / 2
	r.marginY = (float32(r.screenHeight) - r.tileSize*float32(grid.Height)) / 2
}

func (r *Renderer) BeginFrame(grid types.Grid) {
	r.UpdateDimensions()
	r.layout(grid)
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
}

func (r *Renderer) DrawCell(cell types.Point, role gameloop.ColorRole) {
	rl.DrawRectangleV(
		rl.NewVector2(float32(cell.X)*r.tileSize+r.marginX, float32(cell.Y)*r.tileSize+r.marginY),
		rl.NewVector2(r.tileSize-tileGap, r.tileSize-tileGap),
		roleColors[role])
}

func (r *Renderer) DrawCenteredText(text string, xOffset, yOffset float64, fontSize int) {
	size := int32(fontSize)
	width := rl.MeasureText(text, size)
	x := float64(r.screenWidth-width)/2 + xOffset
	y := float64(r.screenHeight-size)/2 + yOffset
	rl.DrawText(text, int32(x), int32(y), size, rl.White)
}

func (r *Renderer) EndFrame() {
	rl.EndDrawing()
}
