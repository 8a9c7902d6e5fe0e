// Package frame runs the selected routine once per frame and commits the
// result to the strand.
package frame

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-strandfx/internal/effect"
	"github.com/coreman2200/funtimes-strandfx/internal/led"
	"github.com/coreman2200/funtimes-strandfx/internal/playlist"
	"github.com/coreman2200/funtimes-strandfx/internal/power"
	"github.com/coreman2200/funtimes-strandfx/internal/selector"
	"github.com/coreman2200/funtimes-strandfx/model"
)

var ErrNoRoutine = errors.New("frame: no routine at selected index")

type Driver struct {
	Strand   *model.Strand
	Routines *effect.Registry
	Selector *selector.Selector
	Out      led.Driver
	Clock    effect.Clock

	// Limiter is optional.
	Limiter *power.Limiter
	// Playlist is optional; it is advanced by the frame clock.
	Playlist *playlist.Player
	// ResetOnSelect restarts a routine from scratch whenever it is selected.
	ResetOnSelect bool

	current  int
	lastTick int64
	started  bool
	rgb      []byte
}

// New wires a frame driver. A playlist, when given, selects routines by name
// through sel.
func New(strand *model.Strand, reg *effect.Registry, sel *selector.Selector, out led.Driver, clk effect.Clock) *Driver {
	return &Driver{
		Strand:   strand,
		Routines: reg,
		Selector: sel,
		Out:      out,
		Clock:    clk,
		current:  -1,
	}
}

// PlaylistHooks returns hooks that point the selector at named routines.
func (d *Driver) PlaylistHooks() playlist.Hooks {
	return playlist.Hooks{
		Select: func(name string) {
			i, ok := d.Routines.Index(name)
			if !ok {
				log.Warn().Str("routine", name).Msg("playlist names unknown routine")
				return
			}
			d.Selector.Select(i)
		},
	}
}

// Tick renders and commits one frame.
func (d *Driver) Tick() error {
	now := d.Clock.Millis()
	if d.Playlist != nil && d.started && now > d.lastTick {
		d.Playlist.Tick(float64(now-d.lastTick) / 1000)
	}
	d.lastTick, d.started = now, true

	idx := d.Selector.Current()
	e := d.Routines.At(idx)
	if e == nil {
		return ErrNoRoutine
	}
	if idx != d.current {
		if d.ResetOnSelect {
			e.Reset()
		}
		log.Info().Str("routine", e.Name()).Int("index", idx).Msg("routine selected")
		d.current = idx
	}

	d.Strand.Clear()
	e.AdvanceAndRender()
	d.rgb = d.Strand.Serialize(d.rgb)
	if d.Limiter != nil {
		d.Limiter.Apply(d.rgb, now)
	}
	return d.Out.Write(d.rgb)
}

// Run ticks at fps until ctx is done, then blanks the strand. Write errors
// are logged at most once a second and do not stop the loop. Each run ramps
// brightness up from the limiter's soft start.
func (d *Driver) Run(ctx context.Context, fps int) error {
	if fps <= 0 {
		fps = 60
	}
	if d.Limiter != nil {
		d.Limiter.Restart()
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	var lastWarn time.Time
	dropped := 0
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("frame loop stopping")
			return d.blank()
		case <-ticker.C:
			if err := d.Tick(); err != nil {
				dropped++
				if time.Since(lastWarn) >= time.Second {
					log.Warn().Err(err).Int("dropped", dropped).Msg("frame write failed")
					lastWarn = time.Now()
					dropped = 0
				}
			}
		}
	}
}

func (d *Driver) blank() error {
	d.Strand.Clear()
	d.rgb = d.Strand.Serialize(d.rgb)
	return d.Out.Write(d.rgb)
}
