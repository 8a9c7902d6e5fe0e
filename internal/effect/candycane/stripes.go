package candycane

import (
	"github.com/coreman2200/funtimes-strandfx/internal/effect"
	"github.com/coreman2200/funtimes-strandfx/model"
)

// Pattern is the repeating red and white stripe base. Even runs are red
// (red channel only), odd runs are white.
type Pattern struct {
	runs  []int
	cycle int
	base  model.ColorVal
}

func NewPattern(runs []int, base uint8) Pattern {
	p := Pattern{runs: runs, base: model.Gray(base)}
	for _, r := range runs {
		p.cycle += r
	}
	return p
}

// Cycle is the number of LEDs before the pattern repeats.
func (p Pattern) Cycle() int { return p.cycle }

// MaskAt returns the channel mask of the stripe under led.
func (p Pattern) MaskAt(led int) model.ColorVal {
	if p.cycle == 0 {
		return model.WhiteMask
	}
	pos := led % p.cycle
	for stripe, run := range p.runs {
		if pos < run {
			if stripe%2 == 1 {
				return model.WhiteMask
			}
			return model.RedMask
		}
		pos -= run
	}
	return model.WhiteMask
}

// Masks precomputes MaskAt for a strand of n LEDs. Only the first cycle is
// looked up; the rest repeats it.
func (p Pattern) Masks(n int) []model.ColorVal {
	out := make([]model.ColorVal, n)
	period := p.Cycle()
	for led := range out {
		if period > 0 && led >= period {
			out[led] = out[led-period]
			continue
		}
		out[led] = p.MaskAt(led)
	}
	return out
}

// Draw paints the pattern using precomputed masks.
func (p Pattern) Draw(buf effect.Buffer, masks []model.ColorVal) {
	for led, m := range masks {
		buf.SetPixel(led, p.base&m)
	}
}
