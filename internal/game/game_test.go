package game

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/signcatch/internal/config"
	"github.com/vovakirdan/signcatch/internal/core"
)

// field1000 is a 1000x900 playfield at the pointer origin. A centered 75px
// catcher sits at 462.5 with its top edge at 825.
var field1000 = Viewport{Size: core.Size{W: 1000, H: 900}}

func newTestGame(t *testing.T, mutate func(*config.GameConfig)) *Game {
	t.Helper()
	cfg := config.DefaultGameConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return New(cfg, WithSeed(42), WithGeometry(FixedGeometry(field1000)))
}

// run drives the game for d in 10ms frames.
func run(g *Game, d time.Duration) {
	const frame = 10 * time.Millisecond
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		g.Frame(frame)
	}
}

func TestNewGameIsIdle(t *testing.T) {
	g := newTestGame(t, nil)

	state := g.State()
	if state.Phase != PhaseIdle {
		t.Errorf("Phase = %v, expected %v", state.Phase, PhaseIdle)
	}
	if g.ActiveTasks() != 0 {
		t.Errorf("ActiveTasks() = %d, expected 0", g.ActiveTasks())
	}

	run(g, 5*time.Second)
	if len(g.Objects()) != 0 {
		t.Errorf("nothing should spawn while idle, got %d objects", len(g.Objects()))
	}
	if g.State().TimeRemaining != 30 {
		t.Errorf("clock should not run while idle, remaining = %d", g.State().TimeRemaining)
	}
}

func TestStartRejectsBlankNames(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		t.Run("idle/"+name, func(t *testing.T) {
			g := newTestGame(t, nil)
			if g.Start(name) {
				t.Errorf("Start(%q) = true, expected false", name)
			}
			if g.State().Phase != PhaseIdle || g.ActiveTasks() != 0 {
				t.Errorf("blank start changed state: %+v, tasks %d", g.State(), g.ActiveTasks())
			}
		})
	}

	t.Run("mid session", func(t *testing.T) {
		g := newTestGame(t, nil)
		g.Start("ann")
		run(g, 2*time.Second)
		before := g.State()

		if g.Start("  ") {
			t.Fatal("Start with a blank name should be refused")
		}
		if after := g.State(); after != before {
			t.Errorf("state = %+v, expected unchanged %+v", after, before)
		}
		if g.ActiveTasks() != 3 {
			t.Errorf("ActiveTasks() = %d, expected 3", g.ActiveTasks())
		}
	})
}

func TestStartBeginsSession(t *testing.T) {
	g := newTestGame(t, nil)

	if !g.Start("  Ann ") {
		t.Fatal("Start should accept a non-blank name")
	}

	state := g.State()
	if state.Phase != PhasePlaying {
		t.Errorf("Phase = %v, expected %v", state.Phase, PhasePlaying)
	}
	if state.Score != 0 || state.TimeRemaining != 30 {
		t.Errorf("Score = %d, TimeRemaining = %d, expected 0 and 30", state.Score, state.TimeRemaining)
	}
	if state.PlayerName != "  Ann " {
		t.Errorf("PlayerName = %q, expected the name verbatim", state.PlayerName)
	}
	if state.SessionID == "" {
		t.Error("SessionID should be assigned")
	}
	if g.ActiveTasks() != 3 {
		t.Errorf("ActiveTasks() = %d, expected 3", g.ActiveTasks())
	}
	if got := g.Catcher().Position; got != 462.5 {
		t.Errorf("catcher Position = %v, expected centered 462.5", got)
	}
}

func TestClockEndsSession(t *testing.T) {
	g := newTestGame(t, func(c *config.GameConfig) { c.Objects.BadChance = 0 })
	g.Start("ann")

	lastScore := 0
	lastTime := g.State().TimeRemaining
	for i := 0; i < 29; i++ {
		run(g, time.Second)
		state := g.State()

		if state.Phase != PhasePlaying {
			t.Fatalf("after %ds Phase = %v, expected %v", i+1, state.Phase, PhasePlaying)
		}
		if state.TimeRemaining != lastTime-1 {
			t.Errorf("after %ds TimeRemaining = %d, expected %d", i+1, state.TimeRemaining, lastTime-1)
		}
		if state.Score < lastScore || state.Score%5 != 0 {
			t.Errorf("after %ds Score = %d, previous %d", i+1, state.Score, lastScore)
		}
		lastScore, lastTime = state.Score, state.TimeRemaining
	}

	run(g, time.Second)
	state := g.State()
	if state.Phase != PhaseGameOver || state.Outcome != OutcomeTimeUp {
		t.Fatalf("Phase = %v, Outcome = %v, expected %v/%v", state.Phase, state.Outcome, PhaseGameOver, OutcomeTimeUp)
	}
	if state.TimeRemaining != 0 {
		t.Errorf("TimeRemaining = %d, expected 0", state.TimeRemaining)
	}
	if state.Score != state.Caught*5 {
		t.Errorf("Score = %d, expected 5 per catch (%d catches)", state.Score, state.Caught)
	}
}

func TestBadCatchEndsSessionOnSameTick(t *testing.T) {
	g := newTestGame(t, nil)
	g.Start("ann")
	g.engine.Add(FallingObject{ID: 1000, Left: 470, Top: 820, Kind: KindBad})

	run(g, 20*time.Millisecond)

	state := g.State()
	if state.Phase != PhaseGameOver || state.Outcome != OutcomeBadCatch {
		t.Fatalf("Phase = %v, Outcome = %v, expected %v/%v", state.Phase, state.Outcome, PhaseGameOver, OutcomeBadCatch)
	}
	if g.ActiveTasks() != 0 {
		t.Errorf("ActiveTasks() = %d, expected 0", g.ActiveTasks())
	}
}

func TestNothingChangesAfterGameOver(t *testing.T) {
	g := newTestGame(t, nil)
	g.Start("ann")
	run(g, 900*time.Millisecond) // one spawn in flight
	g.engine.Add(FallingObject{ID: 1000, Left: 470, Top: 820, Kind: KindBad})
	run(g, 20*time.Millisecond)

	frozen := g.State()
	objects := g.Objects()
	catcher := g.Catcher()

	run(g, 10*time.Second)
	g.MovePointer(10, 0)
	g.Nudge(3)
	g.EndGame(OutcomeTimeUp)

	if got := g.State(); got != frozen {
		t.Errorf("state = %+v, expected frozen %+v", got, frozen)
	}
	if got := g.Objects(); len(got) != len(objects) {
		t.Errorf("objects changed after game over: %d, expected %d", len(got), len(objects))
	}
	if got := g.Catcher(); got != catcher {
		t.Errorf("catcher = %+v, expected %+v", got, catcher)
	}
}

func TestGoodAfterBadInSameTickScoresNothing(t *testing.T) {
	g := newTestGame(t, nil)
	g.Start("ann")
	g.engine.Add(FallingObject{ID: 1000, Left: 470, Top: 820, Kind: KindBad})
	g.engine.Add(FallingObject{ID: 1001, Left: 480, Top: 820, Kind: KindGood})

	run(g, 20*time.Millisecond)

	state := g.State()
	if state.Phase != PhaseGameOver {
		t.Fatalf("Phase = %v, expected %v", state.Phase, PhaseGameOver)
	}
	if state.Score != 0 || state.Caught != 0 {
		t.Errorf("Score = %d, Caught = %d, expected nothing awarded", state.Score, state.Caught)
	}
}

func TestGoodBeforeBadInSameTickScores(t *testing.T) {
	g := newTestGame(t, nil)
	g.Start("ann")
	g.engine.Add(FallingObject{ID: 1000, Left: 480, Top: 820, Kind: KindGood})
	g.engine.Add(FallingObject{ID: 1001, Left: 470, Top: 820, Kind: KindBad})

	run(g, 20*time.Millisecond)

	state := g.State()
	if state.Phase != PhaseGameOver || state.Score != 5 || state.Caught != 1 {
		t.Errorf("state = %+v, expected game over with score 5", state)
	}
}

func TestGoodCatchScores(t *testing.T) {
	g := newTestGame(t, nil)
	g.Start("ann")
	g.engine.Add(FallingObject{ID: 1000, Left: 470, Top: 820, Kind: KindGood})

	run(g, 20*time.Millisecond)

	state := g.State()
	if state.Phase != PhasePlaying || state.Score != 5 || state.Caught != 1 {
		t.Errorf("state = %+v, expected playing with score 5", state)
	}
}

func TestRestartResetsSession(t *testing.T) {
	g := newTestGame(t, nil)
	g.Start("ann")
	g.engine.Add(FallingObject{ID: 1000, Left: 470, Top: 820, Kind: KindGood})
	run(g, 3*time.Second)
	g.MovePointer(10, 0)
	g.EndGame(OutcomeBadCatch)
	first := g.State()

	if !g.Start("bob") {
		t.Fatal("restart should be accepted")
	}

	state := g.State()
	if state.Phase != PhasePlaying || state.Score != 0 || state.Caught != 0 || state.TimeRemaining != 30 {
		t.Errorf("state = %+v, expected a fresh session", state)
	}
	if state.Outcome != OutcomeNone {
		t.Errorf("Outcome = %v, expected %v", state.Outcome, OutcomeNone)
	}
	if state.SessionID == first.SessionID {
		t.Error("restart should assign a new session ID")
	}
	if len(g.Objects()) != 0 {
		t.Errorf("objects should be cleared, got %d", len(g.Objects()))
	}
	if got := g.Catcher().Position; got != 462.5 {
		t.Errorf("catcher Position = %v, expected 462.5", got)
	}
	if g.ActiveTasks() != 3 {
		t.Errorf("ActiveTasks() = %d, expected 3", g.ActiveTasks())
	}
}

func TestDoubleStartDoesNotDuplicateTasks(t *testing.T) {
	g := newTestGame(t, nil)
	g.Start("ann")
	run(g, 500*time.Millisecond)
	g.Start("ann")

	if g.ActiveTasks() != 3 {
		t.Fatalf("ActiveTasks() = %d, expected 3", g.ActiveTasks())
	}

	run(g, time.Second)
	if got := g.State().TimeRemaining; got != 29 {
		t.Errorf("TimeRemaining = %d, expected 29 with a single clock", got)
	}
	if got := len(g.Objects()); got != 1 {
		t.Errorf("%d objects after 1s, expected 1 from a single spawner", got)
	}
}

func TestSpawnerCadence(t *testing.T) {
	g := newTestGame(t, nil)
	g.Start("ann")
	g.MovePointer(0, 0) // out of the way of spawns

	run(g, 790*time.Millisecond)
	if n := len(g.Objects()); n != 0 {
		t.Errorf("%d objects before the first spawn interval", n)
	}

	run(g, 10*time.Millisecond)
	objs := g.Objects()
	if len(objs) != 1 {
		t.Fatalf("%d objects at 800ms, expected 1", len(objs))
	}
	// Physics ticks right after the spawn at the same instant
	if objs[0].Top != 5 {
		t.Errorf("fresh object Top = %v, expected 5", objs[0].Top)
	}

	run(g, 800*time.Millisecond)
	objs = g.Objects()
	if len(objs) != 2 || objs[0].Top != 205 || objs[1].Top != 5 {
		t.Errorf("objects at 1600ms = %+v, expected two at Top 205 and 5", objs)
	}
}

func TestPointerTracking(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{"inside", 300, 300},
		{"past right edge", 5000, 925},
		{"past left edge", -50, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, nil)
			g.Start("ann")
			g.MovePointer(tc.x, 123)

			if got := g.Catcher().Position; got != tc.expected {
				t.Errorf("Position = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPointerIgnoredUnlessPlaying(t *testing.T) {
	g := newTestGame(t, nil)

	g.MovePointer(100, 0)
	if got := g.Catcher().Position; got != 462.5 {
		t.Errorf("idle Position = %v, expected 462.5", got)
	}

	g.Start("ann")
	g.EndGame(OutcomeTimeUp)
	g.MovePointer(100, 0)
	if got := g.Catcher().Position; got != 462.5 {
		t.Errorf("game over Position = %v, expected 462.5", got)
	}
}

func TestFrameCoalescesPointerMoves(t *testing.T) {
	g := newTestGame(t, nil)
	g.Start("ann")

	g.MovePointer(100, 0)
	g.MovePointer(200, 0)
	g.MovePointer(300, 0)

	if got := g.VisibleCatcher().Position; got != 462.5 {
		t.Errorf("visible Position = %v before a frame, expected 462.5", got)
	}
	if !g.Frame(0) {
		t.Error("Frame should report a move")
	}
	if got := g.VisibleCatcher().Position; got != 300 {
		t.Errorf("visible Position = %v, expected latest 300", got)
	}
	if g.Frame(0) {
		t.Error("second Frame without moves should not report a move")
	}
}

func TestNudge(t *testing.T) {
	g := newTestGame(t, nil)
	g.Start("ann")

	g.Nudge(-1)
	if got := g.Catcher().Position; got != 422.5 {
		t.Errorf("Position = %v, expected 422.5", got)
	}

	g.Nudge(100)
	if got := g.Catcher().Position; got != 925 {
		t.Errorf("Position = %v, expected clamped 925", got)
	}
}

func TestPhysicsSeesLatestPointer(t *testing.T) {
	g := newTestGame(t, nil)
	g.Start("ann")
	g.engine.Add(FallingObject{ID: 1000, Left: 100, Top: 820, Kind: KindGood})

	// No frame in between: the visible catcher is still centered
	g.MovePointer(90, 0)
	g.sched.Advance(20 * time.Millisecond)

	if got := g.State().Score; got != 5 {
		t.Errorf("Score = %d, expected 5", got)
	}
}

func TestLiveGeometry(t *testing.T) {
	vp := field1000
	g := New(config.DefaultGameConfig(), WithSeed(3), WithGeometry(func() (Viewport, bool) {
		return vp, true
	}))
	g.Start("ann")
	g.MovePointer(0, 0)

	vp = Viewport{Left: 100, Size: core.Size{W: 500, H: 400}}

	if got := g.Playfield(); got != vp.Size {
		t.Errorf("Playfield() = %+v, expected %+v", got, vp.Size)
	}

	g.MovePointer(5000, 0)
	if got := g.Catcher().Position; got != 425 {
		t.Errorf("Position = %v, expected 425 in the narrower field", got)
	}
	g.MovePointer(150, 0)
	if got := g.Catcher().Position; got != 50 {
		t.Errorf("Position = %v, expected 50 relative to the field's left edge", got)
	}

	g.MovePointer(100, 0)
	run(g, 8*time.Second)
	for _, obj := range g.Objects() {
		if obj.Left < 0 || obj.Left > 440 {
			t.Errorf("object Left = %v outside the 500px field", obj.Left)
		}
		if obj.Top >= 400 {
			t.Errorf("object Top = %v should have dropped at 400", obj.Top)
		}
	}
}

func TestFallbackGeometry(t *testing.T) {
	fallback := core.Size{W: 960, H: 600}

	tests := []struct {
		name string
		geom GeometryFunc
	}{
		{"no provider", nil},
		{"unavailable", func() (Viewport, bool) { return field1000, false }},
		{"empty", FixedGeometry(Viewport{Left: 5})},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New(config.DefaultGameConfig(), WithGeometry(tc.geom))
			if got := g.Playfield(); got != fallback {
				t.Errorf("Playfield() = %+v, expected %+v", got, fallback)
			}
			if got := g.Catcher().Position; got != 442.5 {
				t.Errorf("Position = %v, expected centered 442.5", got)
			}
		})
	}
}

func TestConfiguredStartPosition(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		expected float64
	}{
		{"explicit", 50, 50},
		{"past right edge", 2000, 925},
		{"centered", -1, 462.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, func(c *config.GameConfig) { c.Catcher.StartPosition = tc.start })
			g.Start("ann")
			if got := g.Catcher().Position; got != tc.expected {
				t.Errorf("Position = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestFrameClampsLongDeltas(t *testing.T) {
	g := newTestGame(t, nil)
	g.Start("ann")

	g.Frame(10 * time.Second)

	if got := g.State().TimeRemaining; got != 30 {
		t.Errorf("TimeRemaining = %d, expected 30 after a clamped 250ms frame", got)
	}
}

func TestViewportForScreen(t *testing.T) {
	vp := ViewportForScreen(80, 24, config.DefaultGameConfig().Display)

	if vp.Left != 12 {
		t.Errorf("Left = %v, expected 12", vp.Left)
	}
	if want := (core.Size{W: 78 * 12, H: 20 * 25}); vp.Size != want {
		t.Errorf("Size = %+v, expected %+v", vp.Size, want)
	}
}

func TestRender(t *testing.T) {
	cfg := config.DefaultGameConfig()
	g := New(cfg, WithSeed(1), WithGeometry(FixedGeometry(ViewportForScreen(80, 24, cfg.Display))))
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Enter your handle") {
		t.Errorf("idle screen should prompt for a handle:\n%s", screen)
	}

	g.Start("ann")
	g.Render(screen)

	if row := screen.Row(0); !strings.Contains(row, Title) {
		t.Errorf("row 0 = %q, expected the title", row)
	}
	if row := screen.Row(1); !strings.Contains(row, "Score: 0") || !strings.Contains(row, "Time: 30s") || !strings.Contains(row, "@ann") {
		t.Errorf("row 1 = %q, expected score, time and player", row)
	}
	// The catcher occupies the last field row
	if row := screen.Row(22); !strings.ContainsRune(row, CatcherChar) {
		t.Errorf("row 22 = %q, expected the catcher", row)
	}

	g.EndGame(OutcomeTimeUp)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Congrats, ann! You caught 0 signs!") || !strings.Contains(out, "Time's up") {
		t.Errorf("game over screen missing summary:\n%s", out)
	}
}
