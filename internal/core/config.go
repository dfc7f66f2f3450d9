package core

// RuntimeConfig carries the terminal and timing parameters the platform
// hands to the game.
type RuntimeConfig struct {
	ScreenW int   // Screen width in cells
	ScreenH int   // Screen height in cells
	FPS     int   // Rendering frames per second
	Seed    int64 // RNG seed, 0 means time based
}

// DefaultConfig returns a RuntimeConfig for a classic 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     60,
	}
}
