// Package candycane draws red and white stripes with soft spotlights that
// drift along the strand, brighten the stripes they pass over and fade out
// at the end of their life.
package candycane

import (
	"math"

	"github.com/coreman2200/funtimes-strandfx/internal/effect"
	"github.com/coreman2200/funtimes-strandfx/internal/effect/pool"
	"github.com/coreman2200/funtimes-strandfx/model"
)

const Name = "candycane"

type rampState uint8

const (
	growing rampState = iota
	steady
	shrinking
)

func (r rampState) String() string {
	switch r {
	case growing:
		return "growing"
	case steady:
		return "steady"
	default:
		return "shrinking"
	}
}

type spotlight struct {
	position  float64
	intensity float64
	radius    int
	velocity  float64 // LEDs per second, signed
	lifetime  int64   // ms remaining

	intensityRamp float64 // ms
	speedRamp     float64 // ms
	shrinkRate    float64 // intensity lost per ms while shrinking
	ramp          rampState
}

type CandyCane struct {
	cfg     Config
	env     effect.Env
	pattern Pattern
	masks   []model.ColorVal
	offsets [][]uint8

	spots      *pool.Pool[spotlight]
	step       effect.Stepper
	spawnAlarm int64
}

func New(cfg Config, env effect.Env) *CandyCane {
	c := &CandyCane{
		cfg:     cfg,
		env:     env,
		pattern: NewPattern(cfg.Stripes, cfg.BaseBrightness),
		spots:   pool.New[spotlight](cfg.MaxSpotlights),
	}
	n := env.Buf.Len()
	c.masks = c.pattern.Masks(n)
	red, white := model.RedMask.Offsets(), model.WhiteMask.Offsets()
	c.offsets = make([][]uint8, n)
	for led, m := range c.masks {
		if m == model.RedMask {
			c.offsets[led] = red
		} else {
			c.offsets[led] = white
		}
	}
	return c
}

func (c *CandyCane) Name() string { return Name }

func (c *CandyCane) Reset() {
	c.spots.Clear()
	c.step.Reset()
	c.spawnAlarm = 0
}

// Active is the number of live spotlights.
func (c *CandyCane) Active() int { return c.spots.Len() }

func (c *CandyCane) AdvanceAndRender() {
	now := c.env.Clock.Millis()
	dt := c.step.Step(now)

	c.pattern.Draw(c.env.Buf, c.masks)
	c.spawn(now)
	c.spots.Each(func(i int, s *spotlight) {
		if !c.advance(s, dt) {
			c.spots.Release(i)
		}
	})
	c.spots.Each(func(_ int, s *spotlight) {
		c.render(s)
	})
}

func (c *CandyCane) spawn(now int64) {
	if now < c.spawnAlarm {
		return
	}
	r := c.env.Rand
	c.spawnAlarm = now + int64(effect.Between(r, c.cfg.MinSpawnMs, c.cfg.MaxSpawnMs))
	if c.spots.Full() {
		return
	}

	lifetime := effect.Between(r, c.cfg.MinLifetimeMs, c.cfg.MaxLifetimeMs)
	half := float64(lifetime) / 2
	velocity := c.cfg.MinSpeed
	if effect.Chance(r) {
		velocity = -velocity
	}
	c.spots.Acquire(spotlight{
		position:      r.Float64() * float64(c.env.Buf.Len()),
		radius:        effect.Between(r, c.cfg.MinRadius, c.cfg.MaxRadius),
		velocity:      velocity,
		lifetime:      int64(lifetime),
		intensityRamp: math.Max(1, math.Min(float64(c.cfg.IntensityRampMs), half)),
		speedRamp:     math.Max(1, math.Min(float64(c.cfg.SpeedRampMs), half)),
		ramp:          growing,
	})
}

// advance ages, moves and ramps s. It returns false once s should be retired.
func (c *CandyCane) advance(s *spotlight, dt int64) bool {
	s.lifetime -= dt
	if s.lifetime <= 0 {
		return false
	}

	s.position += s.velocity * float64(dt) / 1000
	last := float64(c.env.Buf.Len() - 1)
	radius := float64(s.radius)
	if s.velocity > 0 && s.position-radius > last {
		return false
	}
	if s.velocity < 0 && s.position+radius < 0 {
		return false
	}

	step := float64(dt)
	switch s.ramp {
	case growing:
		speed := math.Abs(s.velocity) + (c.cfg.MaxSpeed-c.cfg.MinSpeed)*step/s.speedRamp
		speed = math.Max(c.cfg.MinSpeed, math.Min(c.cfg.MaxSpeed, speed))
		s.velocity = math.Copysign(speed, s.velocity)

		s.intensity += c.cfg.MaxOffset * step / s.intensityRamp
		if s.intensity >= c.cfg.MaxOffset {
			s.intensity = c.cfg.MaxOffset
			s.ramp = steady
		}
	case steady:
		if float64(s.lifetime) < s.intensityRamp {
			d := math.Max(1, float64(s.lifetime-int64(c.cfg.ShrinkLeadMs)))
			s.shrinkRate = s.intensity / d
			s.ramp = shrinking
		}
	case shrinking:
		s.intensity -= s.shrinkRate * step
		if s.intensity <= 0 {
			return false
		}
	}
	return true
}

// render brightens the stripe channels under s with a linear falloff from its center.
func (c *CandyCane) render(s *spotlight) {
	buf := c.env.Buf
	radius := float64(s.radius)
	lo := int(math.Ceil(s.position - radius))
	hi := int(math.Floor(s.position + radius))
	if lo < 0 {
		lo = 0
	}
	if hi > buf.Len()-1 {
		hi = buf.Len() - 1
	}
	base := float64(c.cfg.BaseBrightness)
	top := float64(c.cfg.MaxBrightness)

	for led := lo; led <= hi; led++ {
		add := s.intensity - s.intensity/radius*math.Abs(float64(led)-s.position)
		if add <= 0 {
			continue
		}
		px := buf.GetPixel(led)
		for _, off := range c.offsets[led] {
			v := float64(px.Channel(off)) + add
			if v < base {
				continue
			}
			if v > top {
				v = top
			}
			px.SetChannel(off, uint8(v))
		}
		buf.SetPixel(led, px)
	}
}
