package playlist

// Clip runs one routine for a fixed time.
type Clip struct {
	Routine   string  `yaml:"routine"`
	DurationS float64 `yaml:"duration_s"`
}

// Program is an ordered list of clips.
type Program struct {
	Loop  bool   `yaml:"loop"`
	Clips []Clip `yaml:"clips"`
}

// PlayerState enumerates playback states.
type PlayerState string

const (
	Idle     PlayerState = "idle"
	Running  PlayerState = "running"
	Paused   PlayerState = "paused"
	Finished PlayerState = "finished"
)

// Hooks are the callbacks a Player drives.
type Hooks struct {
	// Select switches the strand to the named routine.
	Select func(routine string)
}

// Player owns a Program timeline and switches routines as clips end.
type Player struct {
	State PlayerState

	prog  Program
	nowS  float64 // position within the current clip
	idx   int
	hooks Hooks
}
