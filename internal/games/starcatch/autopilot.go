package starcatch

import (
	"math"

	"github.com/vovakirdan/starcatch/internal/core"
)

// chaseDeadZone avoids jitter when the player is already level with a target.
const chaseDeadZone = 4.0

// ChaseInput steers the player toward the nearest star. It ignores enemies,
// so runs driven by it end when one wanders into the player.
func ChaseInput(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	p, ok := g.store.Player()
	if !ok {
		return in
	}

	var target *Entity
	best := math.Inf(1)
	for _, s := range g.store.Stars() {
		if d := core.Distance(p.Pos, s.Pos); d < best {
			best, target = d, s
		}
	}
	if target == nil {
		return in
	}

	delta := target.Pos.Sub(p.Pos)
	switch {
	case delta.X > chaseDeadZone:
		in.Set(core.ActionRight)
	case delta.X < -chaseDeadZone:
		in.Set(core.ActionLeft)
	}
	switch {
	case delta.Y > chaseDeadZone:
		in.Set(core.ActionUp)
	case delta.Y < -chaseDeadZone:
		in.Set(core.ActionDown)
	}
	return in
}
