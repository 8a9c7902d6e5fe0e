package led

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Sim is a headless driver. It keeps the last frame and logs a compact
// summary every LogEvery frames.
type Sim struct {
	Count    int
	LogEvery int
	Frames   int
	Last     []byte
}

func NewSim(count int) *Sim {
	return &Sim{Count: count, LogEvery: 300, Last: make([]byte, count*3)}
}

func (s *Sim) Write(rgb []byte) error {
	if len(rgb) != s.Count*3 {
		return fmt.Errorf("sim: frame has %d bytes, want %d", len(rgb), s.Count*3)
	}
	copy(s.Last, rgb)
	s.Frames++
	if s.LogEvery > 0 && s.Frames%s.LogEvery == 0 {
		var r, g, b int
		lit := 0
		for i := 0; i+2 < len(rgb); i += 3 {
			r += int(rgb[i])
			g += int(rgb[i+1])
			b += int(rgb[i+2])
			if rgb[i]|rgb[i+1]|rgb[i+2] != 0 {
				lit++
			}
		}
		n := s.Count
		if n == 0 {
			n = 1
		}
		log.Debug().
			Int("frame", s.Frames).
			Int("lit", lit).
			Ints("avg_rgb", []int{r / n, g / n, b / n}).
			Msg("sim frame")
	}
	return nil
}

func (s *Sim) Close() error {
	for i := range s.Last {
		s.Last[i] = 0
	}
	log.Debug().Int("frames", s.Frames).Msg("sim closed")
	return nil
}
