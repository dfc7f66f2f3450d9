package game

import (
	"math/rand"
)

// Spawner creates falling objects at random horizontal positions.
// It only produces objects; it never looks at the ones already in flight.
type Spawner struct {
	rng       *rand.Rand
	size      float64
	badChance float64
	nextID    uint64
}

// NewSpawner creates a spawner with its own seeded RNG.
func NewSpawner(seed int64, size, badChance float64) *Spawner {
	return &Spawner{
		rng:       rand.New(rand.NewSource(seed)),
		size:      size,
		badChance: badChance,
	}
}

// Spawn returns a new object at the top of a playfield of the given width.
// Left is uniform in [0, fieldWidth-size], or 0 when the field is narrower than an object.
func (s *Spawner) Spawn(fieldWidth float64) FallingObject {
	s.nextID++

	span := fieldWidth - s.size
	if span < 0 {
		span = 0
	}

	kind := KindGood
	if s.rng.Float64() < s.badChance {
		kind = KindBad
	}

	return FallingObject{
		ID:   s.nextID,
		Left: s.rng.Float64() * span,
		Top:  0,
		Kind: kind,
	}
}
