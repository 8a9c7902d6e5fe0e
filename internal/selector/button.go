package selector

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// pollInterval bounds how long WatchButton waits for an edge before checking
// for cancellation.
var pollInterval = 100 * time.Millisecond

// OpenButton looks up a GPIO pin by name, e.g. "GPIO17".
func OpenButton(name string) (gpio.PinIn, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("button: no gpio pin named %q", name)
	}
	return p, nil
}

// WatchButton advances the selector on every falling edge of pin, which is
// pulled up and expected to short to ground when pressed. Edges closer than
// debounce to the last accepted press are ignored. It returns when ctx is
// done.
func (s *Selector) WatchButton(ctx context.Context, pin gpio.PinIn, debounce time.Duration) error {
	if err := pin.In(gpio.PullUp, gpio.FallingEdge); err != nil {
		return fmt.Errorf("button: configure %s: %w", pin, err)
	}
	log.Info().Str("pin", pin.Name()).Dur("debounce", debounce).Msg("watching button")

	var last time.Time
	for {
		if ctx.Err() != nil {
			return nil
		}
		if !pin.WaitForEdge(pollInterval) {
			continue
		}
		now := time.Now()
		if !last.IsZero() && now.Sub(last) < debounce {
			continue
		}
		last = now
		idx := s.Next()
		log.Debug().Int("index", idx).Msg("button pressed")
	}
}
