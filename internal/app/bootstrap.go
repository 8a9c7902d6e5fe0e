package app

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-strandfx/internal/config"
	"github.com/coreman2200/funtimes-strandfx/internal/effect"
	"github.com/coreman2200/funtimes-strandfx/internal/effect/candycane"
	"github.com/coreman2200/funtimes-strandfx/internal/effect/linedance"
	"github.com/coreman2200/funtimes-strandfx/internal/effect/traintracks"
	"github.com/coreman2200/funtimes-strandfx/internal/frame"
	"github.com/coreman2200/funtimes-strandfx/internal/led"
	"github.com/coreman2200/funtimes-strandfx/internal/playlist"
	"github.com/coreman2200/funtimes-strandfx/internal/power"
	"github.com/coreman2200/funtimes-strandfx/internal/selector"
	"github.com/coreman2200/funtimes-strandfx/internal/tests"
	"github.com/coreman2200/funtimes-strandfx/model"
)

// Core is a fully wired strand: routines, selection and the frame driver.
type Core struct {
	Strand   *model.Strand
	Routines *effect.Registry
	Selector *selector.Selector
	Frame    *frame.Driver
	Playlist *playlist.Player
}

// Options picks what InitCore builds beyond the config.
type Options struct {
	Clock effect.Clock
	// SelfTest, when set, runs only that bring-up routine.
	SelfTest tests.Kind
	// SelfTestStepMs is how long each self test step is shown.
	SelfTestStepMs int64
}

// Routines builds the animation routines in button order.
func Routines(cfg *config.Config, env effect.Env) *effect.Registry {
	reg := effect.NewRegistry()
	reg.Register(linedance.New(cfg.LineDance, env))
	reg.Register(candycane.New(cfg.CandyCane, env))
	reg.Register(traintracks.New(cfg.TrainTracks, env))
	return reg
}

func InitCore(cfg *config.Config, drv led.Driver, opts Options) (*Core, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	clk := opts.Clock
	if clk == nil {
		clk = effect.NewSystemClock()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	strand := model.NewStrand(cfg.StrandLength)
	env := effect.Env{Buf: strand, Clock: clk, Rand: rand.New(rand.NewSource(seed))}

	var reg *effect.Registry
	if opts.SelfTest != "" {
		e := tests.New(opts.SelfTest, env, opts.SelfTestStepMs)
		if e == nil {
			return nil, fmt.Errorf("unknown self test %q, want one of %v", opts.SelfTest, tests.Kinds)
		}
		reg = effect.NewRegistry()
		reg.Register(e)
	} else {
		reg = Routines(cfg, env)
	}

	start := 0
	if cfg.StartRoutine != "" {
		i, ok := reg.Index(cfg.StartRoutine)
		if !ok && opts.SelfTest == "" {
			return nil, fmt.Errorf("%w: start_routine %q is not one of %v", config.ErrInvalid, cfg.StartRoutine, reg.List())
		}
		start = i
	}
	sel := selector.New(reg.Len(), start)

	fd := frame.New(strand, reg, sel, drv, clk)
	fd.ResetOnSelect = cfg.ResetOnSelect
	fd.Limiter = &power.Limiter{
		WhiteCap:    cfg.Power.WhiteCap,
		LimitAmps:   cfg.Power.LimitAmps,
		ChanmA:      cfg.Power.ChanmA,
		SoftStartMs: cfg.Power.SoftStartMs,
		Knee:        cfg.Power.Knee,
	}

	core := &Core{Strand: strand, Routines: reg, Selector: sel, Frame: fd}

	if len(cfg.Playlist.Clips) > 0 && opts.SelfTest == "" {
		p := playlist.NewPlayer(fd.PlaylistHooks())
		known := func(name string) bool {
			_, ok := reg.Index(name)
			return ok
		}
		if err := p.Load(cfg.Playlist, known); err != nil {
			return nil, fmt.Errorf("%w: %v", config.ErrInvalid, err)
		}
		fd.Playlist = p
		core.Playlist = p
		p.Start()
	}

	log.Info().
		Strs("routines", reg.List()).
		Int("leds", cfg.StrandLength).
		Int64("seed", seed).
		Bool("playlist", core.Playlist != nil).
		Msg("core ready")
	return core, nil
}
