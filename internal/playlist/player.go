// Package playlist advances the strand through a timed list of routines.
package playlist

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var ErrEmpty = errors.New("playlist: program has no clips")

func NewPlayer(h Hooks) *Player {
	return &Player{State: Idle, hooks: h}
}

// Load replaces the current program and rewinds to the first clip. Routine
// names are checked against known when it is non-nil.
func (p *Player) Load(prog Program, known func(string) bool) error {
	if len(prog.Clips) == 0 {
		return ErrEmpty
	}
	for i, c := range prog.Clips {
		if c.DurationS <= 0 {
			return fmt.Errorf("playlist: clip %d (%s) has non-positive duration %v", i, c.Routine, c.DurationS)
		}
		if known != nil && !known(c.Routine) {
			return fmt.Errorf("playlist: clip %d names unknown routine %q", i, c.Routine)
		}
	}
	p.prog = prog
	p.State = Idle
	p.nowS = 0
	p.idx = 0
	return nil
}

// Start begins playback from the current clip.
func (p *Player) Start() {
	if p.State == Running || len(p.prog.Clips) == 0 {
		return
	}
	p.State = Running
	p.enter()
}

func (p *Player) Pause() {
	if p.State == Running {
		p.State = Paused
	}
}

func (p *Player) Resume() {
	if p.State == Paused {
		p.State = Running
	}
}

// Stop halts playback and rewinds.
func (p *Player) Stop() {
	p.State = Idle
	p.nowS = 0
	p.idx = 0
}

// Current returns the active clip index.
func (p *Player) Current() int { return p.idx }

// Tick advances playback by dt seconds, moving through as many clips as dt
// covers.
func (p *Player) Tick(dt float64) {
	if p.State != Running || dt <= 0 {
		return
	}
	p.nowS += dt
	for p.State == Running && p.nowS >= p.prog.Clips[p.idx].DurationS {
		p.nowS -= p.prog.Clips[p.idx].DurationS
		p.advance()
	}
}

func (p *Player) advance() {
	if p.idx+1 < len(p.prog.Clips) {
		p.idx++
	} else if p.prog.Loop {
		p.idx = 0
	} else {
		p.State = Finished
		p.nowS = 0
		log.Debug().Msg("playlist finished")
		return
	}
	p.enter()
}

func (p *Player) enter() {
	clip := p.prog.Clips[p.idx]
	log.Debug().Int("clip", p.idx).Str("routine", clip.Routine).Float64("duration_s", clip.DurationS).Msg("playlist clip")
	if p.hooks.Select != nil {
		p.hooks.Select(clip.Routine)
	}
}
