package life

import (
	"time"

	"diff-life/internal/core"
)

// TickStats is the telemetry emitted by one tick.
type TickStats struct {
	Generation uint64
	TPS        float64 // achieved ticks per second, from the wall-clock delta
	Changed    int     // cells that differ from the previous tick
	Total      int     // side * side
	Ratio      float64 // changed / total, as a percentage
	Population int     // live cells after the tick
}

// Session owns the four per-tick buffers of one simulation instance:
// current, next, the previous-tick snapshot, and the changed mask. All
// reads and writes happen on the caller's goroutine; controls are expected
// to interleave between ticks only.
type Session struct {
	side     int
	cur      *core.BoolGrid
	nxt      *core.BoolGrid
	prev     []bool
	changed  []bool
	rng      *core.RNG
	running  bool
	stepOnce bool
	gen      uint64
	lastTick time.Time
}

// NewSession allocates a session for a side x side grid, all cells dead and
// the run flag off. The seed drives Randomize deterministically.
func NewSession(side int, seed int64) *Session {
	if side <= 0 {
		side = 1
	}
	total := side * side
	return &Session{
		side:    side,
		cur:     core.NewBoolGrid(side),
		nxt:     core.NewBoolGrid(side),
		prev:    make([]bool, total),
		changed: make([]bool, total),
		rng:     core.NewRNG(seed),
	}
}

// Side returns the grid side length.
func (s *Session) Side() int { return s.side }

// Cells exposes the current generation buffer.
func (s *Session) Cells() []bool { return s.cur.Cells() }

// Changed exposes the mask of cells that changed on the last tick.
func (s *Session) Changed() []bool { return s.changed }

// Generation returns the number of generations advanced so far.
func (s *Session) Generation() uint64 { return s.gen }

// Running reports whether ticks advance the simulation.
func (s *Session) Running() bool { return s.running }

// SetRunning flips the run flag. Idle ticks still diff and snapshot.
func (s *Session) SetRunning(v bool) { s.running = v }

// Toggle inverts the run flag and returns the new value.
func (s *Session) Toggle() bool {
	s.running = !s.running
	return s.running
}

// StepOnce schedules a single generation advance on the next tick even when
// the session is idle.
func (s *Session) StepOnce() { s.stepOnce = true }

// Reset kills every cell in both the current and next buffers.
func (s *Session) Reset() {
	s.cur.Reset()
	s.nxt.Reset()
}

// Randomize fills the current buffer with fair coin flips and re-syncs the
// next buffer from it, so an idle resume never reads stale state.
func (s *Session) Randomize() {
	s.cur.Randomize(s.rng)
	copy(s.nxt.Cells(), s.cur.Cells())
}

// Paint forces one cell to the given state outside the tick cycle. The next
// buffer is re-synced at the same index. The index must be in range.
func (s *Session) Paint(idx int, alive bool) {
	s.cur.Set(idx, alive)
	s.nxt.Set(idx, alive)
}

// Population returns the number of live cells in the current buffer.
func (s *Session) Population() int {
	n := 0
	for _, alive := range s.cur.Cells() {
		if alive {
			n++
		}
	}
	return n
}

// Tick runs one simulation step. When running or single-stepping it first
// advances one generation and commits it; it then diffs the committed state
// against the snapshot taken at the end of the prior tick and refreshes that
// snapshot. Cells and Changed therefore describe the same generation after
// every tick, and the snapshot always holds what the renderer last drew, so
// external paints between ticks surface in the mask even while idle.
func (s *Session) Tick() TickStats {
	now := time.Now()
	var tps float64
	if !s.lastTick.IsZero() {
		if dt := now.Sub(s.lastTick); dt > 0 {
			tps = 1 / dt.Seconds()
		}
	}
	s.lastTick = now

	if s.running || s.stepOnce {
		Advance(s.cur.Cells(), s.nxt.Cells(), s.side)
		copy(s.cur.Cells(), s.nxt.Cells())
		s.gen++
		s.stepOnce = false
	}

	changed := Diff(s.cur.Cells(), s.prev, s.changed)
	copy(s.prev, s.cur.Cells())

	total := s.side * s.side
	return TickStats{
		Generation: s.gen,
		TPS:        tps,
		Changed:    changed,
		Total:      total,
		Ratio:      float64(changed) / float64(total) * 100,
		Population: s.Population(),
	}
}
