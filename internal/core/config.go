package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score     int  // Current run score
	HighScore int  // Best score this session
	Level     int  // Current level, starting at 1
	Paused    bool // Whether the game is paused
}

// EventKind identifies what happened during a tick.
type EventKind int

const (
	// EventWin is emitted when the player reaches the far edge.
	EventWin EventKind = iota + 1
	// EventRunOver is emitted when a fatal outcome ends the current run.
	EventRunOver
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventWin:
		return "win"
	case EventRunOver:
		return "run_over"
	default:
		return "unknown"
	}
}

// Event describes something the platform may want to log or persist.
// Score and Level are the values before any reset took place.
type Event struct {
	Kind   EventKind
	Reason string
	Score  int
	Level  int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
