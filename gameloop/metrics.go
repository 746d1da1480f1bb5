package gameloop

import "sync/atomic"

// Metrics counts what the loop did. Counters are atomic so a snapshot may be
// taken from another goroutine.
type Metrics struct {
	Frames        int64
	Ticks         int64
	Restarts      int64
	DroppedInputs int64
	TickErrors    int64
	TotalTickNs   int64
}

func (m *Metrics) IncFrames()        { atomic.AddInt64(&m.Frames, 1) }
func (m *Metrics) IncRestarts()      { atomic.AddInt64(&m.Restarts, 1) }
func (m *Metrics) IncDroppedInputs() { atomic.AddInt64(&m.DroppedInputs, 1) }
func (m *Metrics) IncTickErrors()    { atomic.AddInt64(&m.TickErrors, 1) }
func (m *Metrics) AddTick(ns int64) {
	atomic.AddInt64(&m.Ticks, 1)
	atomic.AddInt64(&m.TotalTickNs, ns)
}

// Snapshot returns a read-only copy for logging.
func (m *Metrics) Snapshot() map[string]any {
	ticks := atomic.LoadInt64(&m.Ticks)
	total := atomic.LoadInt64(&m.TotalTickNs)
	var avgUs float64
	if ticks > 0 {
		avgUs = float64(total) / float64(ticks) / 1e3
	}
	return map[string]any{
		"frames":         atomic.LoadInt64(&m.Frames),
		"ticks":          ticks,
		"restarts":       atomic.LoadInt64(&m.Restarts),
		"dropped_inputs": atomic.LoadInt64(&m.DroppedInputs),
		"tick_errors":    atomic.LoadInt64(&m.TickErrors),
		"avg_tick_us":    avgUs,
	}
}
