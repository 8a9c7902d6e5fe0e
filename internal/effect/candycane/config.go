package candycane

import (
	"errors"
	"fmt"
)

// Config tunes the stripes and the spotlights drifting over them.
// Times are in milliseconds, speeds in LEDs per second.
type Config struct {
	BaseBrightness uint8 `yaml:"base_brightness"`
	MaxBrightness  uint8 `yaml:"max_brightness"`
	Stripes        []int `yaml:"stripes"`

	MaxSpotlights   int     `yaml:"max_spotlights"`
	MaxOffset       float64 `yaml:"max_offset"`
	MinRadius       int     `yaml:"min_radius"`
	MaxRadius       int     `yaml:"max_radius"`
	MinLifetimeMs   int     `yaml:"min_lifetime_ms"`
	MaxLifetimeMs   int     `yaml:"max_lifetime_ms"`
	MinSpeed        float64 `yaml:"min_speed"`
	MaxSpeed        float64 `yaml:"max_speed"`
	IntensityRampMs int     `yaml:"intensity_ramp_ms"`
	SpeedRampMs     int     `yaml:"speed_ramp_ms"`
	ShrinkLeadMs    int     `yaml:"shrink_lead_ms"`
	MinSpawnMs      int     `yaml:"min_spawn_ms"`
	MaxSpawnMs      int     `yaml:"max_spawn_ms"`
}

func DefaultConfig() Config {
	return Config{
		BaseBrightness:  128,
		MaxBrightness:   240,
		Stripes:         []int{26, 23, 21, 19, 17, 15, 12, 10, 7},
		MaxSpotlights:   5,
		MaxOffset:       40,
		MinRadius:       5,
		MaxRadius:       25,
		MinLifetimeMs:   10000,
		MaxLifetimeMs:   24000,
		MinSpeed:        0.5,
		MaxSpeed:        2,
		IntensityRampMs: 2000,
		SpeedRampMs:     4000,
		ShrinkLeadMs:    200,
		MinSpawnMs:      1000,
		MaxSpawnMs:      4000,
	}
}

func (c Config) Validate() error {
	if len(c.Stripes) == 0 {
		return errors.New("stripes: at least one run length required")
	}
	for i, s := range c.Stripes {
		if s <= 0 {
			return fmt.Errorf("stripes[%d]: run length must be positive, got %d", i, s)
		}
	}
	if c.MaxBrightness < c.BaseBrightness {
		return fmt.Errorf("max_brightness %d below base_brightness %d", c.MaxBrightness, c.BaseBrightness)
	}
	if c.MaxSpotlights < 0 {
		return fmt.Errorf("max_spotlights must not be negative, got %d", c.MaxSpotlights)
	}
	if c.MaxOffset < 0 {
		return fmt.Errorf("max_offset must not be negative, got %v", c.MaxOffset)
	}
	if c.MinRadius < 1 || c.MaxRadius < c.MinRadius {
		return fmt.Errorf("radius range [%d,%d] invalid", c.MinRadius, c.MaxRadius)
	}
	if c.MinLifetimeMs < 1 || c.MaxLifetimeMs < c.MinLifetimeMs {
		return fmt.Errorf("lifetime range [%d,%d] invalid", c.MinLifetimeMs, c.MaxLifetimeMs)
	}
	if c.MinSpeed <= 0 || c.MaxSpeed < c.MinSpeed {
		return fmt.Errorf("speed range [%v,%v] invalid", c.MinSpeed, c.MaxSpeed)
	}
	if c.IntensityRampMs < 0 || c.SpeedRampMs < 0 || c.ShrinkLeadMs < 0 {
		return errors.New("ramp times must not be negative")
	}
	if c.MinSpawnMs < 0 || c.MaxSpawnMs < c.MinSpawnMs {
		return fmt.Errorf("spawn interval [%d,%d] invalid", c.MinSpawnMs, c.MaxSpawnMs)
	}
	return nil
}
