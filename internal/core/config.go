package core

// RuntimeConfig contains configuration passed to a session at initialization.
// The platform fills it from flags and the terminal size.
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
		Seed:     0, // 0 means use a fresh random seed in the platform layer
	}
}

// GameState is a snapshot of the session used by the platform to decide
// what to draw and when to record a finished run.
type GameState struct {
	Score     int    // Current score
	Best      int    // Best score known at snapshot time
	Tier      string // Active difficulty tier name
	GameOver  bool   // Whether the run has ended and a restart is pending
	Paused    bool   // Whether the session is paused
	Resuming  bool   // Whether a resume countdown is in progress
	Countdown int    // Remaining countdown steps while resuming
	Run       int    // Number of the current run, starting at 1
}
