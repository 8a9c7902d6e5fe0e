package app

import (
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/physic"

	"github.com/coreman2200/funtimes-strandfx/internal/config"
	"github.com/coreman2200/funtimes-strandfx/internal/led"
)

// OpenDriver builds the output named by cfg.Driver. Hardware that cannot be
// opened falls back to the simulator; the returned name is the driver in use.
func OpenDriver(cfg *config.Config) (led.Driver, string) {
	switch cfg.Driver {
	case config.DriverSPI:
		freq := physic.Frequency(cfg.SPI.SpeedHz) * physic.Hertz
		drv, err := led.OpenNRZ(cfg.SPI.Dev, cfg.StrandLength, freq)
		if err != nil {
			log.Warn().Err(err).
				Str("driver", "spi").
				Str("dev", cfg.SPI.Dev).
				Int("speed_hz", cfg.SPI.SpeedHz).
				Msg("SPI init failed; falling back to SIM")
			return led.NewSim(cfg.StrandLength), config.DriverSim
		}
		return drv, config.DriverSPI
	case config.DriverConsole:
		return led.NewConsole(cfg.StrandLength), config.DriverConsole
	case config.DriverSim:
		return led.NewSim(cfg.StrandLength), config.DriverSim
	default:
		log.Warn().Str("driver", cfg.Driver).Msg("unknown driver; using SIM")
		return led.NewSim(cfg.StrandLength), config.DriverSim
	}
}
