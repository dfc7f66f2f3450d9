// Package config provides YAML-based configuration for the game: session
// rules, tick cadences, object and catcher geometry, and terminal mapping.
package config

import (
	"errors"
	"fmt"
	"time"
)

// GameConfig contains every tunable of a Catching Signs session.
type GameConfig struct {
	Session   SessionConfig   `yaml:"session"`
	Timing    TimingConfig    `yaml:"timing"`
	Objects   ObjectsConfig   `yaml:"objects"`
	Catcher   CatcherConfig   `yaml:"catcher"`
	Playfield PlayfieldConfig `yaml:"playfield"`
	Display   DisplayConfig   `yaml:"display"`
}

// SessionConfig defines the rules of one play-through.
type SessionConfig struct {
	Seconds    int `yaml:"seconds"`     // Session length in clock ticks
	GoodReward int `yaml:"good_reward"` // Points per good catch
}

// TimingConfig defines the cadence of each periodic activity.
type TimingConfig struct {
	ClockInterval   time.Duration `yaml:"clock_interval"`
	SpawnInterval   time.Duration `yaml:"spawn_interval"`
	PhysicsInterval time.Duration `yaml:"physics_interval"`
	MaxFrameDelta   time.Duration `yaml:"max_frame_delta"` // Upper bound on time advanced per rendered frame
}

// ObjectsConfig defines falling object parameters.
type ObjectsConfig struct {
	Size      float64 `yaml:"size"`       // Side length in px
	FallStep  float64 `yaml:"fall_step"`  // Descent per physics tick in px
	BadChance float64 `yaml:"bad_chance"` // Probability that a spawn is bad
}

// CatcherConfig defines the player's catcher.
type CatcherConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	StartPosition float64 `yaml:"start_position"` // Negative means centered
	KeyboardStep  float64 `yaml:"keyboard_step"`  // Pointer shift per arrow key press
}

// PlayfieldConfig defines the viewport used when live geometry is unavailable.
type PlayfieldConfig struct {
	FallbackWidth  float64 `yaml:"fallback_width"`
	FallbackHeight float64 `yaml:"fallback_height"`
}

// DisplayConfig maps terminal cells to playfield pixels.
type DisplayConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// Validate checks that the configuration describes a playable session.
func (c GameConfig) Validate() error {
	var errs []error

	if c.Session.Seconds <= 0 {
		errs = append(errs, fmt.Errorf("session.seconds must be positive, got %d", c.Session.Seconds))
	}
	if c.Session.GoodReward < 0 {
		errs = append(errs, fmt.Errorf("session.good_reward must not be negative, got %d", c.Session.GoodReward))
	}

	durations := []struct {
		name string
		d    time.Duration
	}{
		{"timing.clock_interval", c.Timing.ClockInterval},
		{"timing.spawn_interval", c.Timing.SpawnInterval},
		{"timing.physics_interval", c.Timing.PhysicsInterval},
		{"timing.max_frame_delta", c.Timing.MaxFrameDelta},
	}
	for _, d := range durations {
		if d.d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", d.name, d.d))
		}
	}

	positives := []struct {
		name string
		v    float64
	}{
		{"objects.size", c.Objects.Size},
		{"objects.fall_step", c.Objects.FallStep},
		{"catcher.width", c.Catcher.Width},
		{"catcher.height", c.Catcher.Height},
		{"catcher.keyboard_step", c.Catcher.KeyboardStep},
		{"playfield.fallback_width", c.Playfield.FallbackWidth},
		{"playfield.fallback_height", c.Playfield.FallbackHeight},
		{"display.cell_width", c.Display.CellWidth},
		{"display.cell_height", c.Display.CellHeight},
	}
	for _, p := range positives {
		if p.v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", p.name, p.v))
		}
	}

	if c.Objects.BadChance < 0 || c.Objects.BadChance > 1 {
		errs = append(errs, fmt.Errorf("objects.bad_chance must be within [0, 1], got %g", c.Objects.BadChance))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid game config: %w", errors.Join(errs...))
	}
	return nil
}
