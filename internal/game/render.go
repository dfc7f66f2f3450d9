package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/signcatch/internal/config"
	"github.com/vovakirdan/signcatch/internal/core"
)

// Title is the display name of the game.
const Title = "Catching Signs"

// HUDRows is the number of screen rows above the playfield frame.
const HUDRows = 2

// Glyphs used on the playfield.
const (
	GoodChar    = '█'
	BadChar     = '▒'
	CatcherChar = '▀'
)

// FieldRect returns the cells inside the playfield frame for a screen of the given size.
func FieldRect(screenW, screenH int) core.Rect {
	return core.NewRect(0, HUDRows, screenW, screenH-HUDRows).Inset(1)
}

// ViewportForScreen converts the playfield cells of a screen into pixel geometry.
// Pointer x is measured in pixels from the screen's left edge.
func ViewportForScreen(screenW, screenH int, d config.DisplayConfig) Viewport {
	r := FieldRect(screenW, screenH)
	return Viewport{
		Left: float64(r.X) * d.CellWidth,
		Size: core.Size{
			W: float64(r.W) * d.CellWidth,
			H: float64(r.H) * d.CellHeight,
		},
	}
}

// Render draws the HUD, the playfield, the objects and the catcher.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	field := FieldRect(dst.Width(), dst.Height())
	state := g.State()

	g.drawHUD(dst, state)
	dst.DrawBox(field.Inset(-1), core.ColorGray)

	size := g.cfg.Objects.Size
	for _, obj := range g.engine.objects {
		ch, color := GoodChar, core.ColorGreen
		if obj.Kind == KindBad {
			ch, color = BadChar, core.ColorRed
		}
		g.drawBlock(dst, field, obj.Left, obj.Top, size, size, ch, color)
	}

	c := g.VisibleCatcher()
	height := float64(field.H) * g.cfg.Display.CellHeight
	g.drawBlock(dst, field, c.Position, height-c.Height, c.Width, c.Height, CatcherChar, core.ColorYellow)

	switch state.Phase {
	case PhaseIdle:
		drawCenteredMessage(dst, Title, "Enter your handle to start")
	case PhaseGameOver:
		drawCenteredMessage(dst,
			fmt.Sprintf("Congrats, %s! You caught %d signs!", state.PlayerName, state.Caught),
			fmt.Sprintf("%s  |  Score: %d  |  Enter to restart", outcomeText(state.Outcome), state.Score),
		)
	}
}

func (g *Game) drawHUD(dst *core.Screen, state SessionState) {
	dst.DrawTextCentered(0, Title, core.ColorYellow)

	status := fmt.Sprintf(" Score: %d | Time: %ds", state.Score, state.TimeRemaining)
	dst.DrawTextColored(0, 1, status, core.ColorCyan)

	if state.PlayerName != "" {
		player := fmt.Sprintf("@%s ", state.PlayerName)
		dst.DrawTextColored(dst.Width()-len([]rune(player)), 1, player, core.ColorCyan)
	}
}

// drawBlock fills the cells covered by a pixel rectangle, clipped to field.
func (g *Game) drawBlock(dst *core.Screen, field core.Rect, left, top, w, h float64, ch rune, color core.Color) {
	cw, chh := g.cfg.Display.CellWidth, g.cfg.Display.CellHeight

	x0 := int(math.Floor(left / cw))
	x1 := int(math.Ceil((left + w) / cw))
	y0 := int(math.Floor(top / chh))
	y1 := int(math.Ceil((top + h) / chh))

	x0, x1 = max(x0, 0), min(x1, field.W)
	y0, y1 = max(y0, 0), min(y1, field.H)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	dst.FillRect(core.NewRect(field.X+x0, field.Y+y0, x1-x0, y1-y0), ch, color)
}

// drawCenteredMessage draws a boxed two-line message in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	titleLen, subLen := len([]rune(title)), len([]rune(subtitle))

	boxW := core.Max(titleLen, subLen) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextColored(box.X+(boxW-titleLen)/2, box.Y+1, title, core.ColorBrightWhite)
	dst.DrawTextColored(box.X+(boxW-subLen)/2, box.Y+3, subtitle, core.ColorDefault)
}

func outcomeText(o Outcome) string {
	switch o {
	case OutcomeTimeUp:
		return "Time's up"
	case OutcomeBadCatch:
		return "Caught a bad sign"
	default:
		return "Game over"
	}
}
