package starcatch

import "github.com/vovakirdan/starcatch/internal/core"

// InputDirection sums unit contributions of the held directional actions
// and normalizes the result. Up is +Y because the arena origin is bottom-left.
func InputDirection(in core.InputFrame) core.Vec2 {
	var dir core.Vec2
	if in.Has(core.ActionUp) {
		dir = dir.Add(core.V(0, 1))
	}
	if in.Has(core.ActionLeft) {
		dir = dir.Add(core.V(-1, 0))
	}
	if in.Has(core.ActionDown) {
		dir = dir.Add(core.V(0, -1))
	}
	if in.Has(core.ActionRight) {
		dir = dir.Add(core.V(1, 0))
	}
	return dir.Normalize()
}

// MovePlayer advances the player by speed*dt along the input direction.
// Returns the new position and false if there is no player.
func MovePlayer(store *Store, in core.InputFrame, speed, dt float64) (core.Vec2, bool) {
	p, ok := store.Player()
	if !ok {
		return core.Vec2{}, false
	}
	p.Pos = p.Pos.Add(InputDirection(in).Scale(speed * dt))
	return p.Pos, true
}

// MoveEnemies advances every enemy by dir*speed*dt.
func MoveEnemies(store *Store, speed, dt float64) {
	for _, e := range store.Enemies() {
		e.Pos = e.Pos.Add(e.Dir.Scale(speed * dt))
	}
}

// Confine clamps pos so a body of the given half size stays inside the arena.
func Confine(pos core.Vec2, half float64, arena Arena) core.Vec2 {
	xMin, xMax, yMin, yMax := arena.Inner(half)
	return core.V(
		core.ClampF(pos.X, xMin, xMax),
		core.ClampF(pos.Y, yMin, yMax),
	)
}

// ConfinePlayer clamps the player into the arena, if it exists.
func ConfinePlayer(store *Store, arena Arena) {
	if p, ok := store.Player(); ok {
		p.Pos = Confine(p.Pos, p.Radius, arena)
	}
}

// ConfineEnemies clamps every enemy into the arena.
func ConfineEnemies(store *Store, arena Arena) {
	for _, e := range store.Enemies() {
		e.Pos = Confine(e.Pos, e.Radius, arena)
	}
}

// UpdateEnemyDirection bounces enemies whose pre-confinement position left the
// inner range: each offending axis has its direction component negated once.
// Must run before ConfineEnemies. Returns one record per bounced enemy.
func UpdateEnemyDirection(store *Store, arena Arena) []core.DirectionChanged {
	var changed []core.DirectionChanged
	for _, e := range store.Enemies() {
		xMin, xMax, yMin, yMax := arena.Inner(e.Radius)
		flipX := e.Pos.X < xMin || e.Pos.X > xMax
		flipY := e.Pos.Y < yMin || e.Pos.Y > yMax
		if flipX {
			e.Dir.X = -e.Dir.X
		}
		if flipY {
			e.Dir.Y = -e.Dir.Y
		}
		if flipX || flipY {
			changed = append(changed, core.DirectionChanged{
				Entity: uint64(e.ID),
				FlipX:  flipX,
				FlipY:  flipY,
			})
		}
	}
	return changed
}
