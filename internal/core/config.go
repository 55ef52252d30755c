package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and tick timing.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int
	GameOver bool
	Won      bool // all levels cleared
	Paused   bool
	Level    int // current level id
	Lives    int
	Coins    int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// LevelCleared is set on the tick a level was finished.
	LevelCleared bool
	// Died is set on the tick a life was lost.
	Died bool
}
