package core

// RuntimeConfig contains configuration passed to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one
	Level    int   // Difficulty level requested by the player
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Level:    1,
	}
}

// GameState is what a game reports back to the platform after each tick.
type GameState struct {
	Score    int  // Elapsed seconds for word search; lower is better
	GameOver bool // All words found
	Paused   bool
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState
}
