// Package effecttest has shared fixtures for routine tests.
package effecttest

import (
	"math/rand"

	"github.com/coreman2200/funtimes-strandfx/internal/effect"
	"github.com/coreman2200/funtimes-strandfx/model"
)

// Strand wraps model.Strand and records any out-of-range access instead of panicking.
type Strand struct {
	*model.Strand
	OutOfRange []int
	Writes     int
}

func NewStrand(n int) *Strand {
	return &Strand{Strand: model.NewStrand(n)}
}

func (s *Strand) GetPixel(i int) model.ColorVal {
	if i < 0 || i >= s.Len() {
		s.OutOfRange = append(s.OutOfRange, i)
		return model.Black
	}
	return s.Strand.GetPixel(i)
}

func (s *Strand) SetPixel(i int, c model.ColorVal) {
	if i < 0 || i >= s.Len() {
		s.OutOfRange = append(s.OutOfRange, i)
		return
	}
	s.Writes++
	s.Strand.SetPixel(i, c)
}

// Env builds a routine environment on a checked strand of n LEDs with a
// manual clock and a deterministic random source.
func Env(n int, seed int64) (effect.Env, *Strand, *effect.ManualClock) {
	buf := NewStrand(n)
	clk := &effect.ManualClock{}
	return effect.Env{Buf: buf, Clock: clk, Rand: rand.New(rand.NewSource(seed))}, buf, clk
}
