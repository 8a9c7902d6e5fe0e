// Package effect defines the contract between the frame driver and the
// animation routines that paint the strand.
package effect

import (
	"math/rand"
	"time"

	"github.com/coreman2200/funtimes-strandfx/model"
)

// Buffer is the color buffer a routine paints into. Indices are always in [0, Len()).
type Buffer interface {
	Len() int
	GetPixel(i int) model.ColorVal
	SetPixel(i int, c model.ColorVal)
}

// Effect is one selectable animation routine. AdvanceAndRender samples the
// clock, advances the routine's private state and paints the buffer; it is
// never called concurrently with itself.
type Effect interface {
	Name() string
	AdvanceAndRender()
	// Reset drops all entities so the next tick starts from scratch.
	Reset()
}

// Clock is a monotonic millisecond clock.
type Clock interface {
	Millis() int64
}

// Env carries the collaborators every routine is built with.
type Env struct {
	Buf   Buffer
	Clock Clock
	Rand  *rand.Rand
}

// SystemClock counts milliseconds since it was created.
type SystemClock struct {
	t0 time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{t0: time.Now()}
}

func (c *SystemClock) Millis() int64 {
	return time.Since(c.t0).Milliseconds()
}

// ManualClock only moves when told to. Used by tests and offline rendering.
type ManualClock struct {
	ms int64
}

func (c *ManualClock) Millis() int64 { return c.ms }

func (c *ManualClock) Advance(ms int64) { c.ms += ms }

func (c *ManualClock) Set(ms int64) { c.ms = ms }

// Stepper turns successive clock samples into tick deltas.
type Stepper struct {
	last    int64
	started bool
}

// Step returns the milliseconds elapsed since the previous call. The first
// call after construction or Reset returns 0, as does any backwards step.
func (s *Stepper) Step(now int64) int64 {
	if !s.started {
		s.started = true
		s.last = now
		return 0
	}
	dt := now - s.last
	s.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

func (s *Stepper) Reset() {
	s.started = false
	s.last = 0
}

// Between returns a uniform integer in [lo, hi].
func Between(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Chance returns true half of the time.
func Chance(r *rand.Rand) bool {
	return r.Intn(2) == 1
}
