package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/signcatch/internal/config"
	"github.com/vovakirdan/signcatch/internal/core"
	"github.com/vovakirdan/signcatch/internal/game"
)

// helpRows is the number of terminal rows below the game screen.
const helpRows = 1

// maxHandleLen limits the handle typed into the form.
const maxHandleLen = 24

// terminal holds the latest known terminal size. The game's geometry
// provider reads it on every query, so resizes apply immediately.
type terminal struct {
	width, height int
	display       config.DisplayConfig
}

// screenSize returns the cells available to the game screen.
func (t *terminal) screenSize() (int, int) {
	return t.width, max(t.height-helpRows, 0)
}

// viewport implements game.GeometryFunc.
func (t *terminal) viewport() (game.Viewport, bool) {
	w, h := t.screenSize()
	if w <= 0 || h <= 0 {
		return game.Viewport{}, false
	}
	return game.ViewportForScreen(w, h, t.display), true
}

// Model is the Bubble Tea model for one player's terminal.
type Model struct {
	game     *game.Game
	term     *terminal
	screen   *core.Screen
	fps      int
	logger   *log.Logger
	keys     KeyMap
	formKeys FormKeyMap
	help     help.Model
	handle   textinput.Model

	editing  bool       // Handle form is shown
	notice   string     // Form feedback
	phase    game.Phase // Last phase seen, for transition logging
	session  string
	lastTick time.Time
	quitting bool
}

// NewModel creates a model with a fresh game. handle pre-fills the form.
func NewModel(cfg config.GameConfig, rc core.RuntimeConfig, logger *log.Logger, handle string) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	t := &terminal{width: rc.ScreenW, height: rc.ScreenH, display: cfg.Display}
	g := game.New(cfg, game.WithSeed(rc.Seed), game.WithGeometry(t.viewport))

	ti := textinput.New()
	ti.Placeholder = "your handle"
	ti.CharLimit = maxHandleLen
	ti.Width = maxHandleLen
	ti.SetValue(handle)
	ti.Focus()

	w, h := t.screenSize()
	return Model{
		game:     g,
		term:     t,
		screen:   core.NewScreen(w, h),
		fps:      rc.FPS,
		logger:   logger,
		keys:     DefaultKeyMap(),
		formKeys: DefaultFormKeyMap(),
		help:     help.New(),
		handle:   ti,
		editing:  true,
		phase:    game.PhaseIdle,
	}
}

// Init starts the cursor blink and the frame loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, frameCmd(m.fps))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.editing {
			return m.handleFormKey(msg)
		}
		return m.handleKey(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.handle, cmd = m.handle.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.term.width = msg.Width
	m.term.height = msg.Height
	m.screen.Resize(m.term.screenSize())
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	m.game.Frame(dt)
	m.observePhase()
	return m, frameCmd(m.fps)
}

// handleMouse feeds pointer motion to the game. Columns map to the
// left edge of their cell.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionMotion, tea.MouseActionPress:
		x := float64(msg.X) * m.term.display.CellWidth
		y := float64(msg.Y) * m.term.display.CellHeight
		m.game.MovePointer(x, y)
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.formKeys.Submit):
		if !m.game.Start(m.handle.Value()) {
			m.notice = "Handle must not be blank"
			return m, nil
		}
		m.editing = false
		m.notice = ""
		m.handle.Blur()
		m.observePhase()
		return m, nil
	}

	var cmd tea.Cmd
	m.handle, cmd = m.handle.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.keys.setPlaying(m.game.State().Phase == game.PhasePlaying)

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.game.Nudge(-1)

	case key.Matches(msg, m.keys.Right):
		m.game.Nudge(1)

	case key.Matches(msg, m.keys.Restart):
		m.game.Start(m.game.State().PlayerName)
		m.observePhase()

	case key.Matches(msg, m.keys.Rename):
		m.editing = true
		m.handle.SetValue(m.game.State().PlayerName)
		m.handle.CursorEnd()
		cmd := m.handle.Focus()
		return m, cmd
	}

	return m, nil
}

// observePhase logs session boundaries.
func (m *Model) observePhase() {
	state := m.game.State()

	switch {
	case state.Phase == game.PhasePlaying && state.SessionID != m.session:
		m.logger.Info("session started", "player", state.PlayerName, "session", state.SessionID)
	case state.Phase == game.PhaseGameOver && m.phase == game.PhasePlaying:
		m.logger.Info("session ended",
			"player", state.PlayerName,
			"session", state.SessionID,
			"score", state.Score,
			"caught", state.Caught,
			"outcome", state.Outcome,
		)
	}
	m.phase = state.Phase
	m.session = state.SessionID
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.editing {
		return m.formView()
	}

	m.game.Render(m.screen)
	m.keys.setPlaying(m.game.State().Phase == game.PhasePlaying)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

func (m Model) formView() string {
	lines := []string{
		formTitleStyle.Render(game.Title),
		"",
		"Catch the green signs, dodge the red ones.",
		"",
		m.handle.View(),
	}
	if m.notice != "" {
		lines = append(lines, "", formNoticeStyle.Render(m.notice))
	}
	lines = append(lines, "", formHintStyle.Render(m.help.View(m.formKeys)))

	box := formBoxStyle.Render(strings.Join(lines, "\n"))
	if m.term.width <= 0 || m.term.height <= 0 {
		return box
	}
	return lipgloss.Place(m.term.width, m.term.height, lipgloss.Center, lipgloss.Center, box)
}

// Game returns the game driven by the model.
func (m Model) Game() *game.Game {
	return m.game
}

// Editing reports whether the handle form is shown.
func (m Model) Editing() bool {
	return m.editing
}

// Notice returns the form feedback message, if any.
func (m Model) Notice() string {
	return m.notice
}

// IsQuitting reports whether the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// ProgramOptions returns the Bubble Tea options the model needs.
// All-motion mouse reporting feeds pointer moves without a pressed button.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// Run starts a local Bubble Tea program.
func Run(cfg config.GameConfig, rc core.RuntimeConfig, logger *log.Logger, handle string) error {
	model := NewModel(cfg, rc, logger, handle)
	p := tea.NewProgram(model, ProgramOptions()...)
	_, err := p.Run()
	return err
}
