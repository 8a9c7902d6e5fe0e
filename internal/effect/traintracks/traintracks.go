// Package traintracks runs a train of colored cars back and forth along the
// strand. The train accelerates, cruises, slows to a stop, reverses and
// changes the color of the cars it brings in.
package traintracks

import (
	"math"

	"github.com/coreman2200/funtimes-strandfx/internal/effect"
	"github.com/coreman2200/funtimes-strandfx/model"
)

const Name = "traintracks"

type Phase uint8

const (
	Stopped Phase = iota
	Accelerating
	Cruising
	Decelerating
)

func (p Phase) String() string {
	switch p {
	case Stopped:
		return "stopped"
	case Accelerating:
		return "accelerating"
	case Cruising:
		return "cruising"
	default:
		return "decelerating"
	}
}

type TrainTracks struct {
	cfg  Config
	env  effect.Env
	step effect.Stepper

	train       formation
	initialized bool
	speed       float64 // LEDs per second, signed
	accel       float64
	direction   float64 // +1 toward the end of the strand, -1 toward the start
	alarm       int64
	color       int // palette index for new cars
}

func New(cfg Config, env effect.Env) *TrainTracks {
	return &TrainTracks{
		cfg:       cfg,
		env:       env,
		train:     newFormation(),
		direction: 1,
	}
}

func (t *TrainTracks) Name() string { return Name }

func (t *TrainTracks) Reset() {
	t.train.clear()
	t.step.Reset()
	t.initialized = false
	t.speed, t.accel = 0, 0
	t.direction = 1
	t.alarm = 0
}

// Phase reports what the train is doing.
func (t *TrainTracks) Phase() Phase {
	switch {
	case t.accel == 0 && t.speed == 0:
		return Stopped
	case t.accel == 0:
		return Cruising
	case math.Signbit(t.accel) == math.Signbit(t.direction):
		return Accelerating
	default:
		return Decelerating
	}
}

// Cars is the number of cars in the formation.
func (t *TrainTracks) Cars() int { return t.train.count }

func (t *TrainTracks) AdvanceAndRender() {
	now := t.env.Clock.Millis()
	dt := t.step.Step(now)

	if !t.initialized {
		t.init()
	}

	shift := t.speed * float64(dt) / 1000
	t.train.each(func(c *car) { c.position += shift })
	t.maintainEnds()
	t.train.each(t.render)
	t.drive(now, dt)
}

func (t *TrainTracks) init() {
	t.color = t.env.Rand.Intn(len(t.cfg.Palette))
	color := t.currentColor()
	spacing := float64(t.cfg.Spacing())
	limit := float64(t.env.Buf.Len() + t.cfg.Spacing())

	t.train.clear()
	t.train.start(float64(t.cfg.CarLength), color)
	for t.train.get(t.train.head).position < limit {
		t.train.pushHead(t.train.get(t.train.head).position+spacing, color)
	}
	t.alarm = 0
	t.initialized = true
}

func (t *TrainTracks) currentColor() model.ColorVal { return t.cfg.Palette[t.color] }

// maintainEnds adds and drops cars at both ends until the formation spans
// the strand again. A long gap between ticks can move it many cars at once.
func (t *TrainTracks) maintainEnds() {
	n := float64(t.env.Buf.Len())
	spacing := float64(t.cfg.Spacing())
	length := float64(t.cfg.CarLength)
	color := t.currentColor()

	for head := t.train.get(t.train.head).position; head <= n; head += spacing {
		t.train.pushHead(head+spacing, color)
	}
	for tail := t.train.get(t.train.tail).position; tail > length; tail -= spacing {
		t.train.pushTail(tail-spacing, color)
	}
	for t.train.count > 1 && t.train.get(t.train.head).position > n+spacing {
		t.train.popHead()
	}
	for t.train.count > 1 && t.train.get(t.train.tail).position < -float64(t.cfg.CarPadding) {
		t.train.popTail()
	}
}

// drive integrates speed and steps the stop/go cycle.
func (t *TrainTracks) drive(now, dt int64) {
	top := t.cfg.TopSpeed
	switch t.Phase() {
	case Accelerating:
		t.speed += t.accel * float64(dt) / 1000
		if math.Abs(t.speed) >= top {
			t.speed = math.Copysign(top, t.speed)
			t.accel = 0
			t.alarm = now + int64(t.cfg.CruiseMs)
		}
	case Decelerating:
		t.speed += t.accel * float64(dt) / 1000
		if t.speed*t.direction <= 0 {
			t.speed, t.accel = 0, 0
			t.direction = -t.direction
			t.alarm = now + int64(t.cfg.StopMs)
			t.nextColor()
		}
	case Cruising:
		if now >= t.alarm {
			t.accel = -t.direction * t.cfg.Accel
		}
	case Stopped:
		if now >= t.alarm {
			t.accel = t.direction * t.cfg.Accel
		}
	}
}

func (t *TrainTracks) nextColor() {
	old := t.color
	t.color = t.env.Rand.Intn(len(t.cfg.Palette))
	if t.color == old {
		t.color = (t.color + 1) % len(t.cfg.Palette)
	}
}

// render paints a car over [head-CarLength, head] with its leading and
// trailing pixels faded by the car's sub-LED position. Later cars overwrite
// earlier ones.
func (t *TrainTracks) render(c *car) {
	buf := t.env.Buf
	last := buf.Len() - 1

	headLED := int(math.Floor(c.position))
	headFade := c.position - float64(headLED)
	tailFade := 1 - headFade
	tailLED := headLED - t.cfg.CarLength

	if headLED > last {
		if tailLED > last {
			return
		}
		headLED = last
		headFade = 0
	} else if c.position < 0 {
		return
	}
	if tailLED < 0 {
		tailLED = 0
		tailFade = 0
	}

	for led := headLED; led >= tailLED; led-- {
		buf.SetPixel(led, c.color)
	}
	if headFade > 0 {
		buf.SetPixel(headLED, c.color.Scale(headFade))
	}
	if tailFade > 0 {
		buf.SetPixel(tailLED, c.color.Scale(tailFade))
	}
}
