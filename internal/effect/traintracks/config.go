package traintracks

import (
	"fmt"

	"github.com/coreman2200/funtimes-strandfx/model"
)

// DefaultPalette is the set of car colors, in strand (GRB) byte order.
var DefaultPalette = []model.ColorVal{
	0x00FF00, // red
	0x30CC00, // orange
	0xAAFF00, // yellow
	0xFF0000, // green
	0xBB00BB, // cyan
	0x0000FF, // blue
	0x00AAAA, // purple
	0x44FF44, // pink
	0xCCCCCC, // white
}

type Config struct {
	CarLength  int     `yaml:"car_length"`
	CarPadding int     `yaml:"car_padding"`
	TopSpeed   float64 `yaml:"top_speed"` // LEDs per second
	Accel      float64 `yaml:"accel"`     // LEDs per second squared
	StopMs     int     `yaml:"stop_ms"`
	CruiseMs   int     `yaml:"cruise_ms"`

	Palette []model.ColorVal `yaml:"palette"`
}

func DefaultConfig() Config {
	return Config{
		CarLength:  6,
		CarPadding: 4,
		TopSpeed:   10,
		Accel:      1.5,
		StopMs:     2000,
		CruiseMs:   20000,
		Palette:    append([]model.ColorVal(nil), DefaultPalette...),
	}
}

// Spacing is the distance between the heads of neighbouring cars.
func (c Config) Spacing() int { return c.CarLength + c.CarPadding }

func (c Config) Validate() error {
	if c.CarLength < 1 {
		return fmt.Errorf("car_length must be positive, got %d", c.CarLength)
	}
	if c.CarPadding < 0 {
		return fmt.Errorf("car_padding must not be negative, got %d", c.CarPadding)
	}
	if c.TopSpeed <= 0 || c.Accel <= 0 {
		return fmt.Errorf("top_speed and accel must be positive, got %v and %v", c.TopSpeed, c.Accel)
	}
	if c.StopMs < 0 || c.CruiseMs < 0 {
		return fmt.Errorf("stop_ms and cruise_ms must not be negative")
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("palette is empty")
	}
	return nil
}
