package gameloop

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"snek/game"
	"snek/game/types"
)

const (
	// DefaultTicksPerSecond is the simulation rate, independent of the frame rate.
	DefaultTicksPerSecond = 10.0
	// DefaultMaxFrameTime caps the time fed into the accumulator after a stall.
	DefaultMaxFrameTime = 0.25
)

var directionKeys = [...]struct {
	key Key
	dir types.Direction
}{
	{KeyUp, types.Up},
	{KeyDown, types.Down},
	{KeyLeft, types.Left},
	{KeyRight, types.Right},
}

// Options configures the fixed timestep.
type Options struct {
	TicksPerSecond float64
	MaxFrameTime   float64
}

// Driver runs the fixed-timestep loop: input, zero or more ticks, one render.
type Driver struct {
	game     *game.Game
	input    Input
	clock    Clock
	renderer Renderer

	tickDur     float64
	maxFrame    float64
	accumulator float64

	metrics *Metrics
	log     *zap.SugaredLogger
}

// NewDriver wires a game to its collaborators. Zero options take the defaults.
func NewDriver(g *game.Game, input Input, clock Clock, renderer Renderer, opts Options, log *zap.SugaredLogger) *Driver {
	if opts.TicksPerSecond <= 0 {
		opts.TicksPerSecond = DefaultTicksPerSecond
	}
	if opts.MaxFrameTime <= 0 {
		opts.MaxFrameTime = DefaultMaxFrameTime
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Driver{
		game:     g,
		input:    input,
		clock:    clock,
		renderer: renderer,
		tickDur:  1 / opts.TicksPerSecond,
		maxFrame: opts.MaxFrameTime,
		metrics:  &Metrics{},
		log:      log,
	}
}

func (d *Driver) Game() *game.Game { return d.game }

func (d *Driver) Metrics() *Metrics { return d.metrics }

// Frame polls input, advances the simulation and renders. It returns the
// number of ticks run.
func (d *Driver) Frame() int {
	d.poll()
	return d.frame()
}

// Run calls Frame until quit reports true or ctx is cancelled. quit is
// checked once per frame after input is latched.
func (d *Driver) Run(ctx context.Context, quit func() bool) {
	defer func() {
		d.log.Infow("loop stopped", "metrics", d.metrics.Snapshot())
	}()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		d.poll()
		if quit != nil && quit() {
			return
		}
		d.frame()
	}
}

func (d *Driver) poll() {
	if p, ok := d.input.(Poller); ok {
		p.Poll()
	}
}

func (d *Driver) frame() int {
	d.metrics.IncFrames()
	d.takeInput()

	dt := d.clock.FrameTime()
	if dt > d.maxFrame {
		dt = d.maxFrame
	}
	if dt > 0 {
		d.accumulator += dt
	}

	ticks := 0
	for d.accumulator > d.tickDur {
		d.accumulator -= d.tickDur
		start := time.Now()
		if err := d.game.Tick(); err != nil {
			d.metrics.IncTickErrors()
			d.log.Warnf("tick failed: %v", err)
		}
		d.metrics.AddTick(time.Since(start).Nanoseconds())
		ticks++
	}

	d.draw()
	return ticks
}

// takeInput restarts a dead game on confirm, then queues every pressed
// direction so fast sequences play out over the following ticks.
func (d *Driver) takeInput() {
	if game.IsDead(d.game.State()) && d.input.WasPressed(KeyConfirm) {
		restarted, err := d.game.Restart()
		if err != nil {
			d.log.Errorf("restart failed: %v", err)
		} else if restarted {
			d.metrics.IncRestarts()
		}
	}

	for _, dk := range directionKeys {
		if d.input.WasPressed(dk.key) && !d.game.QueueInput(dk.dir) {
			d.metrics.IncDroppedInputs()
		}
	}
}

func (d *Driver) draw() {
	snap := d.game.Snapshot()
	r := d.renderer

	r.BeginFrame(snap.Grid)
	r.DrawCell(snap.Head(), RoleHead)
	for _, cell := range snap.Body[1:] {
		r.DrawCell(cell, RoleBody)
	}
	if snap.HasFood {
		r.DrawCell(snap.Food, RoleFood)
	}
	if collision, dead := snap.Collision(); dead {
		r.DrawCell(collision, RoleCollision)
		r.DrawCenteredText("Game Over!", 0, 0, 100)
		r.DrawCenteredText(fmt.Sprintf("Score: %d", snap.Score), 0, 50, 50)
	}
	r.EndFrame()
}
