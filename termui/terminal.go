// Package termui plays the game in a terminal through termbox.
package termui

import (
	"sync"
	"time"

	"github.com/nsf/termbox-go"

	"snek/game/types"
	"snek/gameloop"
)

const (
	cellWidth = 2 // terminal columns per board cell, keeps cells roughly square
	// textRowPixels converts renderer text offsets into terminal rows.
	textRowPixels = 50
)

var roleColors = map[gameloop.ColorRole]termbox.Attribute{
	gameloop.RoleBody:      termbox.ColorGreen,
	gameloop.RoleHead:      termbox.ColorLightGreen,
	gameloop.RoleFood:      termbox.ColorMagenta,
	gameloop.RoleCollision: termbox.ColorRed,
}

// Terminal is the input, clock and renderer of the terminal frontend.
type Terminal struct {
	mu      sync.Mutex
	pending map[gameloop.Key]bool
	pressed map[gameloop.Key]bool
	done    chan struct{}

	*gameloop.WallClock
	frameDur  time.Duration
	lastFrame time.Time

	width, height    int
	originX, originY int
}

// Open takes over the terminal and starts reading key events.
func Open(fps int) (*Terminal, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	if fps <= 0 {
		fps = 30
	}

	t := &Terminal{
		pending:   make(map[gameloop.Key]bool),
		pressed:   make(map[gameloop.Key]bool),
		done:      make(chan struct{}),
		WallClock: gameloop.NewWallClock(),
		frameDur:  time.Second / time.Duration(fps),
		lastFrame: time.Now(),
	}
	go t.readEvents()
	return t, nil
}

// Close stops the event reader and restores the terminal.
func (t *Terminal) Close() {
	stopEvents(t.done, termbox.Interrupt)
	termbox.Close()
}

// stopEvents wakes the reader and waits for it to exit. interrupt blocks until
// someone polls, so it is skipped once the reader is gone and never waited on.
func stopEvents(done <-chan struct{}, interrupt func()) {
	select {
	case <-done:
		return
	default:
	}
	go interrupt()
	<-done
}

func (t *Terminal) readEvents() {
	defer close(t.done)
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventInterrupt, termbox.EventError:
			return
		case termbox.EventKey:
			if k, ok := keyFor(ev); ok {
				t.mu.Lock()
				t.pending[k] = true
				t.mu.Unlock()
			}
		}
	}
}

// keyFor maps a termbox key event onto a logical key.
func keyFor(ev termbox.Event) (gameloop.Key, bool) {
	switch ev.Key {
	case termbox.KeyArrowUp:
		return gameloop.KeyUp, true
	case termbox.KeyArrowDown:
		return gameloop.KeyDown, true
	case termbox.KeyArrowLeft:
		return gameloop.KeyLeft, true
	case termbox.KeyArrowRight:
		return gameloop.KeyRight, true
	case termbox.KeyEnter:
		return gameloop.KeyConfirm, true
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return gameloop.KeyQuit, true
	}
	switch ev.Ch {
	case 'w':
		return gameloop.KeyUp, true
	case 's':
		return gameloop.KeyDown, true
	case 'a':
		return gameloop.KeyLeft, true
	case 'd':
		return gameloop.KeyRight, true
	case 'q':
		return gameloop.KeyQuit, true
	}
	return 0, false
}

// Poll latches the keys pressed since the previous frame.
func (t *Terminal) Poll() {
	t.mu.Lock()
	t.pressed, t.pending = t.pending, make(map[gameloop.Key]bool)
	t.mu.Unlock()
}

func (t *Terminal) WasPressed(k gameloop.Key) bool {
	return t.pressed[k]
}

// origin centres a board of the given size in a w x h terminal.
func origin(w, h int, grid types.Grid) (int, int) {
	x := (w - grid.Width*cellWidth) / 2
	y := (h - grid.Height) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

func (t *Terminal) BeginFrame(grid types.Grid) {
	t.width, t.height = termbox.Size()
	t.originX, t.originY = origin(t.width, t.height, grid)
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)

	// board background so the wrap edges are visible
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width*cellWidth; x++ {
			termbox.SetCell(t.originX+x, t.originY+y, ' ', termbox.ColorDefault, termbox.ColorBlack)
		}
	}
}

func (t *Terminal) DrawCell(cell types.Point, role gameloop.ColorRole) {
	bg := roleColors[role]
	x := t.originX + cell.X*cellWidth
	for i := 0; i < cellWidth; i++ {
		termbox.SetCell(x+i, t.originY+cell.Y, ' ', termbox.ColorDefault, bg)
	}
}

// DrawCenteredText ignores fontSize; offsets are scaled to whole cells.
func (t *Terminal) DrawCenteredText(text string, xOffset, yOffset float64, _ int) {
	runes := []rune(text)
	x := (t.width-len(runes))/2 + int(xOffset/textRowPixels)
	y := t.height/2 + int(yOffset/textRowPixels)
	for i, r := range runes {
		termbox.SetCell(x+i, y, r, termbox.ColorWhite|termbox.AttrBold, termbox.ColorDefault)
	}
}

// EndFrame flushes and sleeps out the rest of the frame budget.
func (t *Terminal) EndFrame() {
	termbox.Flush()
	if rest := t.frameDur - time.Since(t.lastFrame); rest > 0 {
		time.Sleep(rest)
	}
	t.lastFrame = time.Now()
}
