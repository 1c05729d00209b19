package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
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

// GameState is the summary a game reports to the platform after each step.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level (1-indexed)
	Started  bool // Whether the first key has been pressed
	GameOver bool // Whether the run has ended
	Victory  bool // Whether the current level is cleared
	Paused   bool // Whether the game is paused
	Muted    bool // Whether the soundtrack is muted
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
