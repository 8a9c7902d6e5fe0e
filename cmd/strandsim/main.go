// Command strandsim renders routines offline on a manual clock and logs a
// summary once per simulated second. Handy for tuning a config without a
// strand attached.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-strandfx/internal/app"
	"github.com/coreman2200/funtimes-strandfx/internal/config"
	"github.com/coreman2200/funtimes-strandfx/internal/effect"
	"github.com/coreman2200/funtimes-strandfx/internal/led"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to strand.yaml (defaults when empty)")
		seconds    = flag.Int("seconds", 30, "simulated seconds per routine")
		routine    = flag.String("routine", "", "only simulate this routine")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg := config.Default()
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("load config")
		}
		cfg = c
	}
	cfg.Playlist.Clips = nil

	sim := led.NewSim(cfg.StrandLength)
	sim.LogEvery = 0
	clk := &effect.ManualClock{}
	core, err := app.InitCore(cfg, sim, app.Options{Clock: clk})
	if err != nil {
		log.Fatal().Err(err).Msg("init")
	}

	order := make([]int, 0, core.Routines.Len())
	if *routine != "" {
		i, ok := core.Routines.Index(*routine)
		if !ok {
			log.Fatal().Str("routine", *routine).Strs("known", core.Routines.List()).Msg("unknown routine")
		}
		order = append(order, i)
	} else {
		for i := 0; i < core.Routines.Len(); i++ {
			order = append(order, i)
		}
	}

	step := int64(1000 / cfg.FPS)
	for _, i := range order {
		name := core.Routines.At(i).Name()
		core.Selector.Select(i)
		for sec := 0; sec < *seconds; sec++ {
			for f := 0; f < cfg.FPS; f++ {
				if err := core.Frame.Tick(); err != nil {
					log.Fatal().Err(err).Msg("tick")
				}
				clk.Advance(step)
			}
			lit, peak := 0, byte(0)
			for p := 0; p+2 < len(sim.Last); p += 3 {
				m := max(sim.Last[p], sim.Last[p+1], sim.Last[p+2])
				if m > 0 {
					lit++
				}
				peak = max(peak, m)
			}
			log.Info().Str("routine", name).Int("t", sec+1).Int("lit", lit).Uint8("peak", peak).Msg("frame")
		}
	}
}
