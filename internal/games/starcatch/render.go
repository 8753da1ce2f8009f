package starcatch

import (
	"fmt"
	"math"

	"github.com/vovakirdan/starcatch/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '@'
	EnemyChar  = 'O'
	StarChar   = '*'
)

// Render draws the arena scaled into the screen. Row 0 holds the HUD and
// the rest is a bordered playfield; arena Y grows upward, screen rows grow
// downward.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2, g.err.Error())
		return
	}

	field := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	if field.W < 3 || field.H < 3 {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}
	dst.DrawBox(field, core.ColorGray)

	for _, s := range g.store.Stars() {
		x, y := g.toCell(s.Pos, field)
		dst.SetColored(x, y, StarChar, core.ColorBrightYellow)
	}
	for _, e := range g.store.Enemies() {
		x, y := g.toCell(e.Pos, field)
		dst.SetColored(x, y, EnemyChar, core.ColorBrightRed)
	}
	if p, ok := g.store.Player(); ok {
		x, y := g.toCell(p.Pos, field)
		dst.SetColored(x, y, PlayerChar, core.ColorBrightBlue)
	}

	hud := fmt.Sprintf(" Score: %d  Stars: %d ", g.score.Value(), g.store.Count(KindStar))
	dst.DrawTextColored(1, 0, hud, core.ColorWhite)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.phase == PhaseGameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Final score: %d  |  R restart  Q quit", g.finalScore))
	}
}

// toCell maps an arena position to a cell strictly inside the field border.
func (g *Game) toCell(p core.Vec2, field core.Rect) (int, int) {
	innerW := field.W - 2
	innerH := field.H - 2
	cx := int(math.Floor(p.X / g.arena.Width * float64(innerW)))
	cy := int(math.Floor((g.arena.Height - p.Y) / g.arena.Height * float64(innerH)))
	cx = core.Clamp(cx, 0, innerW-1)
	cy = core.Clamp(cy, 0, innerH-1)
	return field.X + 1 + cx, field.Y + 1 + cy
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
