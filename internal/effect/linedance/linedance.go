// Package linedance crawls red, green and blue lines down the strand. Lines
// of different colors blend where they overlap.
package linedance

import (
	"math"

	"github.com/coreman2200/funtimes-strandfx/internal/effect"
	"github.com/coreman2200/funtimes-strandfx/internal/effect/pool"
	"github.com/coreman2200/funtimes-strandfx/model"
)

const Name = "linedance"

var channels = [...]model.ColorVal{model.RedMask, model.GreenMask, model.BlueMask}

type line struct {
	position float64 // leading edge
	length   int
	color    model.ColorVal // single channel mask
	speed    float64        // LEDs per second
}

type LineDance struct {
	cfg        Config
	env        effect.Env
	lines      *pool.Pool[line]
	step       effect.Stepper
	spawnAlarm int64
}

func New(cfg Config, env effect.Env) *LineDance {
	return &LineDance{
		cfg:   cfg,
		env:   env,
		lines: pool.New[line](cfg.MaxLines),
	}
}

func (l *LineDance) Name() string { return Name }

func (l *LineDance) Reset() {
	l.lines.Clear()
	l.step.Reset()
	l.spawnAlarm = 0
}

// Active is the number of lines on the strand.
func (l *LineDance) Active() int { return l.lines.Len() }

func (l *LineDance) AdvanceAndRender() {
	now := l.env.Clock.Millis()
	dt := l.step.Step(now)

	if now >= l.spawnAlarm && !l.lines.Full() {
		l.spawn(now)
	}

	n := float64(l.env.Buf.Len())
	l.lines.Each(func(i int, ln *line) {
		ln.position += ln.speed * float64(dt) / 1000
		if ln.position-float64(ln.length) >= n {
			l.lines.Release(i)
			return
		}
		l.render(ln)
	})
}

func (l *LineDance) spawn(now int64) {
	r := l.env.Rand
	l.lines.Acquire(line{
		length: effect.Between(r, l.cfg.MinSize, l.cfg.MaxSize),
		color:  channels[r.Intn(len(channels))],
		speed: float64(effect.Between(r,
			int(l.cfg.MinSpeed*1000), int(l.cfg.MaxSpeed*1000))) / 1000,
	})
	l.spawnAlarm = now + int64(effect.Between(r, l.cfg.MinSpawnMs, l.cfg.MaxSpawnMs))
}

// render paints ln with anti-aliased head and tail pixels. Edges only raise
// the line's channel; the body is OR-ed in.
func (l *LineDance) render(ln *line) {
	buf := l.env.Buf
	last := buf.Len() - 1
	off := ln.color.Offsets()[0]

	head := int(math.Floor(ln.position))
	headFade := uint8((ln.position - float64(head)) * 256)
	tail := head - ln.length
	tailFade := 255 - headFade

	blendEdge(buf, head, last, off, headFade)
	blendEdge(buf, tail, last, off, tailFade)

	lo, hi := tail+1, head-1
	if lo < 0 {
		lo = 0
	}
	if hi > last {
		hi = last
	}
	for led := lo; led <= hi; led++ {
		buf.SetPixel(led, buf.GetPixel(led)|ln.color)
	}
}

func blendEdge(buf effect.Buffer, led, last int, off uint8, v uint8) {
	if led < 0 || led > last {
		return
	}
	px := buf.GetPixel(led)
	if v > px.Channel(off) {
		px.SetChannel(off, v)
		buf.SetPixel(led, px)
	}
}
