// Package tests has strand bring-up routines: they check wiring, LED count
// and channel order rather than look pretty.
package tests

import (
	"github.com/coreman2200/funtimes-strandfx/internal/effect"
	"github.com/coreman2200/funtimes-strandfx/model"
)

type Kind string

const (
	IndexSweep Kind = "index_sweep"
	RGBTest    Kind = "rgb_channels"
)

// Kinds lists the available self tests in selection order.
var Kinds = []Kind{IndexSweep, RGBTest}

// New returns the self test routine for kind, or nil for an unknown kind.
// stepMs is how long each step is shown.
func New(kind Kind, env effect.Env, stepMs int64) effect.Effect {
	if stepMs < 1 {
		stepMs = 1
	}
	switch kind {
	case IndexSweep, RGBTest:
		return &Runner{kind: kind, env: env, stepMs: stepMs}
	default:
		return nil
	}
}

// Runner steps through a self test on the routine clock.
type Runner struct {
	kind   Kind
	env    effect.Env
	stepMs int64

	start   int64
	started bool
}

func (r *Runner) Name() string { return string(r.kind) }

func (r *Runner) Reset() { r.started = false }

// Step is the index of the step currently shown.
func (r *Runner) Step() int {
	if !r.started {
		return 0
	}
	return int((r.env.Clock.Millis() - r.start) / r.stepMs)
}

func (r *Runner) AdvanceAndRender() {
	now := r.env.Clock.Millis()
	if !r.started || now < r.start {
		r.started = true
		r.start = now
	}
	buf := r.env.Buf
	n := buf.Len()
	if n == 0 {
		return
	}
	step := r.Step()

	switch r.kind {
	case IndexSweep:
		buf.SetPixel(step%n, model.WhiteMask)
	case RGBTest:
		c := [...]model.ColorVal{model.RedMask, model.GreenMask, model.BlueMask}[step%3]
		for i := 0; i < n; i++ {
			buf.SetPixel(i, c)
		}
	}
}
