package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed, 0 means seed from the clock in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is reported to the platform after every frame.
type GameState struct {
	Screen   string // Name of the visible screen (welcome, question, ...)
	Score    int    // Current score
	GameOver bool   // Results screen is showing
	Exit     bool   // Player chose to leave
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State  GameState
	Review bool // Player asked for the answer review
}
