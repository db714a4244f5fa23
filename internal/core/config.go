package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic mine layouts.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // UI refresh ticks per second (the board itself is turn-based)
	Seed     int64 // RNG seed for reproducible boards
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState communicates game status to the platform after each step.
type GameState struct {
	GameOver bool // Whether the game has ended
	Won      bool // Meaningful only when GameOver is true
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
}
