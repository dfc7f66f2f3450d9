// Package game implements Catching Signs: a catcher slides along the bottom
// of the playfield to intercept falling signs. Good signs score points, a bad
// one ends the session, and a countdown ends it otherwise.
//
// The package is pure logic. It never blocks, spawns goroutines or touches the
// terminal; the platform layer feeds it frame time and pointer positions and
// reads back state to draw.
package game

// Phase is the lifecycle stage of a session.
type Phase int

const (
	PhaseIdle     Phase = iota // Before the first Start
	PhasePlaying               // Clock, spawner and physics are running
	PhaseGameOver              // Everything frozen until the next Start
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Kind tells whether a falling object rewards or kills.
type Kind int

const (
	KindGood Kind = iota
	KindBad
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindGood:
		return "good"
	case KindBad:
		return "bad"
	default:
		return "unknown"
	}
}

// Outcome records why a session ended.
type Outcome int

const (
	OutcomeNone     Outcome = iota // Session not over
	OutcomeTimeUp                  // Clock ran out
	OutcomeBadCatch                // Catcher touched a bad object
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeTimeUp:
		return "time up"
	case OutcomeBadCatch:
		return "bad catch"
	default:
		return "unknown"
	}
}

// FallingObject is one sign dropping through the playfield.
// Left and Top are playfield pixels; Top only grows until removal.
type FallingObject struct {
	ID   uint64
	Left float64
	Top  float64
	Kind Kind
}

// Catcher is the player's paddle. It always sits on the playfield's bottom edge.
type Catcher struct {
	Position float64 // Left edge in playfield pixels
	Width    float64
	Height   float64
}

// SessionState is everything the presentation layer reads on a redraw.
type SessionState struct {
	Phase         Phase
	Score         int
	TimeRemaining int
	PlayerName    string
	SessionID     string
	Caught        int // Good objects caught this session
	Outcome       Outcome
}
