package linedance

import "fmt"

// Config tunes line spawning. Times are in milliseconds, speeds in LEDs per second.
type Config struct {
	MaxLines   int     `yaml:"max_lines"`
	MinSize    int     `yaml:"min_size"`
	MaxSize    int     `yaml:"max_size"`
	MinSpawnMs int     `yaml:"min_spawn_ms"`
	MaxSpawnMs int     `yaml:"max_spawn_ms"`
	MinSpeed   float64 `yaml:"min_speed"`
	MaxSpeed   float64 `yaml:"max_speed"`
}

func DefaultConfig() Config {
	return Config{
		MaxLines:   20,
		MinSize:    5,
		MaxSize:    15,
		MinSpawnMs: 1000,
		MaxSpawnMs: 4000,
		MinSpeed:   4,
		MaxSpeed:   25,
	}
}

func (c Config) Validate() error {
	if c.MaxLines < 0 {
		return fmt.Errorf("max_lines must not be negative, got %d", c.MaxLines)
	}
	if c.MinSize < 1 || c.MaxSize < c.MinSize {
		return fmt.Errorf("size range [%d,%d] invalid", c.MinSize, c.MaxSize)
	}
	if c.MinSpawnMs < 0 || c.MaxSpawnMs < c.MinSpawnMs {
		return fmt.Errorf("spawn interval [%d,%d] invalid", c.MinSpawnMs, c.MaxSpawnMs)
	}
	if c.MinSpeed <= 0 || c.MaxSpeed < c.MinSpeed {
		return fmt.Errorf("speed range [%v,%v] invalid", c.MinSpeed, c.MaxSpeed)
	}
	return nil
}
