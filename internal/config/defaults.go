package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in configuration. It matches the
// embedded defaults/game.yaml and backs it up if the embed cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Session: SessionConfig{
			Seconds:    30,
			GoodReward: 5,
		},
		Timing: TimingConfig{
			ClockInterval:   time.Second,
			SpawnInterval:   800 * time.Millisecond,
			PhysicsInterval: 20 * time.Millisecond,
			MaxFrameDelta:   250 * time.Millisecond,
		},
		Objects: ObjectsConfig{
			Size:      60,
			FallStep:  5,
			BadChance: 0.5,
		},
		Catcher: CatcherConfig{
			Width:         75,
			Height:        75,
			StartPosition: -1, // centered
			KeyboardStep:  40,
		},
		Playfield: PlayfieldConfig{
			FallbackWidth:  960,
			FallbackHeight: 600,
		},
		Display: DisplayConfig{
			CellWidth:  12,
			CellHeight: 25,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
