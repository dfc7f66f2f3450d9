package game

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/signcatch/internal/config"
	"github.com/vovakirdan/signcatch/internal/core"
	"github.com/vovakirdan/signcatch/internal/sched"
)

// Task names as they appear on scheduler handles.
const (
	TaskClock   = "clock"
	TaskSpawner = "spawner"
	TaskPhysics = "physics"
)

// Game is the session state machine. It owns the clock, the spawner, the
// physics engine and the pointer tracker, and drives the first three from a
// virtual-time scheduler advanced by Frame.
type Game struct {
	cfg      config.GameConfig
	sched    *sched.Scheduler
	tasks    []*sched.Task // Periodic tasks of the current session
	geometry GeometryFunc
	seed     int64

	clock   *Clock
	spawner *Spawner
	engine  *Engine
	tracker Tracker

	phase     Phase
	score     int
	caught    int
	outcome   Outcome
	player    string
	sessionID string
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithSeed fixes the spawner's RNG seed. Zero keeps the time-based default.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		if seed != 0 {
			g.seed = seed
		}
	}
}

// WithGeometry sets the live playfield geometry provider.
func WithGeometry(fn GeometryFunc) Option {
	return func(g *Game) {
		g.geometry = fn
	}
}

// New creates a game in the Idle phase.
func New(cfg config.GameConfig, opts ...Option) *Game {
	g := &Game{
		cfg:   cfg,
		sched: sched.New(),
		seed:  time.Now().UnixNano(),
		clock: NewClock(cfg.Session.Seconds),
		phase: PhaseIdle,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.spawner = NewSpawner(g.seed, cfg.Objects.Size, cfg.Objects.BadChance)
	g.engine = NewEngine(cfg.Objects.Size, cfg.Objects.FallStep)
	g.tracker.Reset(g.startPosition())
	return g
}

// Start begins a new session for the named player. Blank names are refused
// and leave everything untouched. Start works from any phase, so it is also
// how a finished session is restarted.
func (g *Game) Start(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}

	// Old handles must be gone before new ones exist
	g.retire()

	g.engine.Clear()
	g.clock.Reset(g.cfg.Session.Seconds)
	g.tracker.Reset(g.startPosition())
	g.score = 0
	g.caught = 0
	g.outcome = OutcomeNone
	g.player = name
	g.sessionID = uuid.NewString()
	g.phase = PhasePlaying

	g.tasks = []*sched.Task{
		g.sched.Every(TaskClock, g.cfg.Timing.ClockInterval, g.onClock),
		g.sched.Every(TaskSpawner, g.cfg.Timing.SpawnInterval, g.onSpawn),
		g.sched.Every(TaskPhysics, g.cfg.Timing.PhysicsInterval, g.onPhysics),
	}
	return true
}

// EndGame freezes a running session. It only acts while Playing, so repeated
// calls are harmless.
func (g *Game) EndGame(outcome Outcome) {
	if g.phase != PhasePlaying {
		return
	}
	g.phase = PhaseGameOver
	g.outcome = outcome
	g.retire()
}

// retire stops every periodic task of the current session.
func (g *Game) retire() {
	for _, t := range g.tasks {
		t.Stop()
	}
	g.tasks = nil
}

// Frame advances game time by dt and publishes at most one catcher redraw.
// dt is capped by timing.max_frame_delta so a stalled frame cannot release
// a burst of catch-up ticks. Reports whether the visible catcher moved.
func (g *Game) Frame(dt time.Duration) bool {
	if limit := g.cfg.Timing.MaxFrameDelta; limit > 0 && dt > limit {
		dt = limit
	}
	g.sched.Advance(dt)

	_, moved := g.tracker.Flush()
	return moved
}

func (g *Game) onClock() {
	if g.phase != PhasePlaying {
		return
	}
	if g.clock.Tick() {
		g.EndGame(OutcomeTimeUp)
	}
}

func (g *Game) onSpawn() {
	if g.phase != PhasePlaying {
		return
	}
	g.engine.Add(g.spawner.Spawn(g.viewport().Size.W))
}

func (g *Game) onPhysics() {
	if g.phase != PhasePlaying {
		return
	}

	result := g.engine.Step(Snapshot{
		CatcherPosition: g.tracker.Position(),
		CatcherWidth:    g.cfg.Catcher.Width,
		CatcherHeight:   g.cfg.Catcher.Height,
		FieldHeight:     g.viewport().Size.H,
	})

	for _, obj := range result.Caught {
		switch obj.Kind {
		case KindBad:
			g.EndGame(OutcomeBadCatch)
		case KindGood:
			// A fatal catch earlier in this tick already froze the score
			if g.phase == PhasePlaying {
				g.score += g.cfg.Session.GoodReward
				g.caught++
			}
		}
	}
}

// MovePointer feeds one pointer-motion event in viewport coordinates.
// Only the x coordinate matters. Ignored unless Playing.
func (g *Game) MovePointer(x, _ float64) {
	if g.phase != PhasePlaying {
		return
	}
	vp := g.viewport()
	g.tracker.Move(x, vp.Left, vp.Size.W, g.cfg.Catcher.Width)
}

// Nudge moves the pointer by steps keyboard increments (negative is left).
func (g *Game) Nudge(steps int) {
	vp := g.viewport()
	x := vp.Left + g.tracker.Position() + float64(steps)*g.cfg.Catcher.KeyboardStep
	g.MovePointer(x, 0)
}

// startPosition returns the configured catcher start, clamped to the field.
func (g *Game) startPosition() float64 {
	width := g.viewport().Size.W
	limit := width - g.cfg.Catcher.Width

	if g.cfg.Catcher.StartPosition < 0 {
		return core.ClampF(limit/2, 0, limit)
	}
	return core.ClampF(g.cfg.Catcher.StartPosition, 0, limit)
}

// State returns the session values shown to the player.
func (g *Game) State() SessionState {
	return SessionState{
		Phase:         g.phase,
		Score:         g.score,
		TimeRemaining: g.clock.Remaining(),
		PlayerName:    g.player,
		SessionID:     g.sessionID,
		Caught:        g.caught,
		Outcome:       g.outcome,
	}
}

// Catcher returns the catcher at its latest tracked position.
func (g *Game) Catcher() Catcher {
	return Catcher{
		Position: g.tracker.Position(),
		Width:    g.cfg.Catcher.Width,
		Height:   g.cfg.Catcher.Height,
	}
}

// VisibleCatcher returns the catcher at the position last published by Frame.
func (g *Game) VisibleCatcher() Catcher {
	c := g.Catcher()
	c.Position = g.tracker.Visible()
	return c
}

// Objects returns a snapshot of the live objects in spawn order.
func (g *Game) Objects() []FallingObject {
	return g.engine.Objects()
}

// Playfield returns the current playfield size.
func (g *Game) Playfield() core.Size {
	return g.viewport().Size
}

// ActiveTasks returns how many periodic tasks are installed.
func (g *Game) ActiveTasks() int {
	return g.sched.Active()
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}
