package game

import "github.com/vovakirdan/signcatch/internal/core"

// Snapshot is the world as the engine sees it for one tick.
// It is taken once per tick so every object is judged against the same values.
type Snapshot struct {
	CatcherPosition float64
	CatcherWidth    float64
	CatcherHeight   float64
	FieldHeight     float64
}

// StepResult reports what happened during one physics tick.
type StepResult struct {
	Caught  []FallingObject // In processing order
	Dropped int             // Objects that left the bottom edge uncaught
}

// Engine owns the live objects and moves them down one step per tick.
type Engine struct {
	objects    []FallingObject
	objectSize float64
	fallStep   float64
}

// NewEngine creates an engine for objects of the given size and fall step.
func NewEngine(objectSize, fallStep float64) *Engine {
	return &Engine{
		objects:    make([]FallingObject, 0, 16),
		objectSize: objectSize,
		fallStep:   fallStep,
	}
}

// Add puts a freshly spawned object into play.
func (e *Engine) Add(obj FallingObject) {
	e.objects = append(e.objects, obj)
}

// Clear removes every live object.
func (e *Engine) Clear() {
	e.objects = e.objects[:0]
}

// Len returns the number of live objects.
func (e *Engine) Len() int {
	return len(e.objects)
}

// Objects returns a copy of the live objects in spawn order.
func (e *Engine) Objects() []FallingObject {
	out := make([]FallingObject, len(e.objects))
	copy(out, e.objects)
	return out
}

// Catches reports whether obj overlaps the catcher described by snap.
//
// The vertical test treats the catcher as spanning from its top edge down to
// the playfield bottom, inclusive on both ends. The horizontal test needs a
// nonzero overlap; touching edges do not count.
func (e *Engine) Catches(obj FallingObject, snap Snapshot) bool {
	catcherTop := snap.FieldHeight - snap.CatcherHeight
	vertical := obj.Top+e.objectSize >= catcherTop && obj.Top <= snap.FieldHeight

	horizontal := core.SpanOf(obj.Left, e.objectSize).Overlaps(core.SpanOf(snap.CatcherPosition, snap.CatcherWidth))

	return vertical && horizontal
}

// Step advances every object by one fall step, then removes the ones that
// were caught or fell past the bottom edge. Survivors keep their order.
func (e *Engine) Step(snap Snapshot) StepResult {
	var result StepResult

	live := e.objects[:0]
	for _, obj := range e.objects {
		obj.Top += e.fallStep

		if e.Catches(obj, snap) {
			result.Caught = append(result.Caught, obj)
			continue
		}
		if obj.Top >= snap.FieldHeight {
			result.Dropped++
			continue
		}
		live = append(live, obj)
	}
	e.objects = live

	return result
}
