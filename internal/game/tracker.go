package game

import "github.com/vovakirdan/signcatch/internal/core"

// Tracker turns pointer motion into a catcher position.
//
// It is a latest-value register: every move overwrites the previous one, so a
// burst of pointer events never builds a backlog. Physics reads Position on
// every tick. The visible position only changes on Flush, which the game calls
// once per rendered frame.
type Tracker struct {
	position float64
	visible  float64
	dirty    bool
}

// Reset places the catcher at pos and forgets pending moves.
func (t *Tracker) Reset(pos float64) {
	t.position = pos
	t.visible = pos
	t.dirty = false
}

// Move maps a pointer x coordinate to a catcher position inside the field.
// The result is clamped to [0, fieldWidth-catcherWidth] and returned.
func (t *Tracker) Move(pointerX, fieldLeft, fieldWidth, catcherWidth float64) float64 {
	pos := core.ClampF(pointerX-fieldLeft, 0, fieldWidth-catcherWidth)
	if pos != t.position {
		t.position = pos
		t.dirty = true
	}
	return pos
}

// Position returns the latest catcher position.
func (t *Tracker) Position() float64 {
	return t.position
}

// Visible returns the position as of the last Flush.
func (t *Tracker) Visible() float64 {
	return t.visible
}

// Flush publishes the latest position for drawing. It reports false when
// nothing moved since the previous flush.
func (t *Tracker) Flush() (float64, bool) {
	if !t.dirty {
		return t.visible, false
	}
	t.visible = t.position
	t.dirty = false
	return t.visible, true
}
