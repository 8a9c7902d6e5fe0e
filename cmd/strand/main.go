package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/host/v3"

	"github.com/coreman2200/funtimes-strandfx/internal/app"
	"github.com/coreman2200/funtimes-strandfx/internal/config"
	"github.com/coreman2200/funtimes-strandfx/internal/selector"
	"github.com/coreman2200/funtimes-strandfx/internal/tests"
)

func main() {
	// ---- Flags (override config.yaml when set) ----
	var (
		configPath = flag.String("config", "strand.yaml", "path to strand.yaml")
		driver     = flag.String("driver", "", "driver: spi | console | sim")
		leds       = flag.Int("leds", 0, "number of LEDs on the strand")
		fps        = flag.Int("fps", 0, "target frames per second")
		start      = flag.String("routine", "", "routine to start with")
		button     = flag.String("button", "", "GPIO pin name of the routine button")
		selfTest   = flag.String("test", "", "run a self test instead, one of "+fmt.Sprint(tests.Kinds))
		testStep   = flag.Duration("test-step", 250*time.Millisecond, "time each self test step is shown")
		level      = flag.String("log-level", "info", "log level")
		writeCfg   = flag.Bool("write-config", false, "write the effective config to -config and exit")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	if lvl, err := zerolog.ParseLevel(*level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Err(err).Str("level", *level).Msg("bad log level; using info")
	}

	// ---- Config ----
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with defaults")
		cfg = config.Default()
	}
	if *driver != "" {
		cfg.Driver = *driver
	}
	if *leds > 0 {
		cfg.StrandLength = *leds
	}
	if *fps > 0 {
		cfg.FPS = *fps
	}
	if *start != "" {
		cfg.StartRoutine = *start
	}
	if *button != "" {
		cfg.Button.Pin = *button
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if *writeCfg {
		if err := config.Save(*configPath, cfg); err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("write config")
		}
		log.Info().Str("path", *configPath).Msg("config written")
		return
	}

	// ---- Hardware ----
	if _, err := host.Init(); err != nil {
		log.Warn().Err(err).Msg("host init failed; hardware drivers unavailable")
	}
	drv, selected := app.OpenDriver(cfg)
	defer drv.Close()

	core, err := app.InitCore(cfg, drv, app.Options{
		SelfTest:       tests.Kind(*selfTest),
		SelfTestStepMs: testStep.Milliseconds(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("init")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Button.Pin != "" {
		pin, err := selector.OpenButton(cfg.Button.Pin)
		if err != nil {
			log.Warn().Err(err).Msg("button unavailable")
		} else {
			go func() {
				debounce := time.Duration(cfg.Button.DebounceMs) * time.Millisecond
				if err := core.Selector.WatchButton(ctx, pin, debounce); err != nil {
					log.Warn().Err(err).Msg("button watcher stopped")
				}
			}()
		}
	}

	log.Info().Str("driver", selected).Int("fps", cfg.FPS).Msg("strand running")
	if err := core.Frame.Run(ctx, cfg.FPS); err != nil {
		log.Warn().Err(err).Msg("blank on shutdown")
	}
	log.Info().Msg("shut down")
}
