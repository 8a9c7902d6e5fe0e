package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coreman2200/funtimes-strandfx/internal/effect/candycane"
	"github.com/coreman2200/funtimes-strandfx/internal/effect/linedance"
	"github.com/coreman2200/funtimes-strandfx/internal/effect/traintracks"
	"github.com/coreman2200/funtimes-strandfx/internal/playlist"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type PowerCfg struct {
	LimitAmps   float64 `yaml:"limit_amps"`
	WhiteCap    float64 `yaml:"white_cap"`
	SoftStartMs int     `yaml:"soft_start_ms"`
	ChanmA      float64 `yaml:"chan_ma"`
	// Knee is the fraction of limit_amps where soft limiting starts. Zero
	// picks the limiter default.
	Knee float64 `yaml:"knee"`
}

type SPI struct {
	Dev     string `yaml:"dev"`      // e.g. /dev/spidev0.0, empty picks the first port
	SpeedHz int    `yaml:"speed_hz"` // NRZ bit rate, 800000 for WS2812
}

type Button struct {
	Pin        string `yaml:"pin"` // e.g. GPIO17, empty disables the button
	DebounceMs int    `yaml:"debounce_ms"`
}

type Config struct {
	Driver        string `yaml:"driver"` // "sim" | "spi" | "console"
	StrandLength  int    `yaml:"strand_length"`
	FPS           int    `yaml:"fps"`
	Seed          int64  `yaml:"seed"` // 0 seeds from the clock
	StartRoutine  string `yaml:"start_routine"`
	ResetOnSelect bool   `yaml:"reset_on_select"`

	SPI    SPI      `yaml:"spi"`
	Button Button   `yaml:"button"`
	Power  PowerCfg `yaml:"power"`

	CandyCane   candycane.Config   `yaml:"candycane"`
	LineDance   linedance.Config   `yaml:"linedance"`
	TrainTracks traintracks.Config `yaml:"traintracks"`

	Playlist playlist.Program `yaml:"playlist"`
}

const (
	DriverSim     = "sim"
	DriverSPI     = "spi"
	DriverConsole = "console"
)

func Default() *Config {
	return &Config{
		Driver:       DriverSim,
		StrandLength: 300,
		FPS:          60,
		SPI:          SPI{SpeedHz: 800000},
		Button:       Button{DebounceMs: 50},
		Power:        PowerCfg{WhiteCap: 0.85, SoftStartMs: 1000, ChanmA: 20, Knee: 0.9},
		CandyCane:    candycane.DefaultConfig(),
		LineDance:    linedance.DefaultConfig(),
		TrainTracks:  traintracks.DefaultConfig(),
	}
}

// Load reads path over the defaults, so a file only needs the keys it
// changes.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

func (c *Config) Validate() error {
	switch c.Driver {
	case DriverSim, DriverSPI, DriverConsole:
	default:
		return fmt.Errorf("%w: driver %q", ErrInvalid, c.Driver)
	}
	if c.StrandLength < 1 {
		return fmt.Errorf("%w: strand_length must be positive, got %d", ErrInvalid, c.StrandLength)
	}
	if c.FPS < 1 || c.FPS > 1000 {
		return fmt.Errorf("%w: fps %d out of range", ErrInvalid, c.FPS)
	}
	if c.Button.DebounceMs < 0 {
		return fmt.Errorf("%w: button.debounce_ms must not be negative", ErrInvalid)
	}
	if c.Power.LimitAmps < 0 || c.Power.WhiteCap < 0 || c.Power.SoftStartMs < 0 || c.Power.ChanmA < 0 {
		return fmt.Errorf("%w: power settings must not be negative", ErrInvalid)
	}
	if c.Power.Knee < 0 || c.Power.Knee >= 1 {
		return fmt.Errorf("%w: power.knee %v outside [0, 1)", ErrInvalid, c.Power.Knee)
	}
	if err := c.CandyCane.Validate(); err != nil {
		return fmt.Errorf("%w: candycane: %v", ErrInvalid, err)
	}
	if err := c.LineDance.Validate(); err != nil {
		return fmt.Errorf("%w: linedance: %v", ErrInvalid, err)
	}
	if err := c.TrainTracks.Validate(); err != nil {
		return fmt.Errorf("%w: traintracks: %v", ErrInvalid, err)
	}
	for i, clip := range c.Playlist.Clips {
		if clip.DurationS <= 0 {
			return fmt.Errorf("%w: playlist clip %d has non-positive duration", ErrInvalid, i)
		}
	}
	return nil
}
