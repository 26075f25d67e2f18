package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to size the terminal view and for deterministic simulation.
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

// GameState represents the current state of a run.
// Returned by Session.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Obstacles cleared so far
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the run is paused
}

// StepResult is returned by Session.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Collided is true only on the tick that ended the run.
	Collided bool
	// Cleared is the number of obstacles that left the surface this tick.
	Cleared int
}
