package starcatch

import "github.com/vovakirdan/starcatch/internal/core"

// Overlaps reports whether two circular bodies intersect.
// Touching (distance equal to the radius sum) is not a collision.
func Overlaps(a, b *Entity) bool {
	return core.Distance(a.Pos, b.Pos) < a.Radius+b.Radius
}

// PlayerVsEnemies checks the player against enemies in creation order.
// On the first overlap the player is despawned and the lethal enemy is
// returned; no further enemies are checked.
func PlayerVsEnemies(store *Store) (EntityID, bool) {
	p, ok := store.Player()
	if !ok {
		return 0, false
	}
	for _, e := range store.Enemies() {
		if Overlaps(p, e) {
			store.Despawn(p.ID)
			return e.ID, true
		}
	}
	return 0, false
}

// PlayerVsStars despawns every star overlapping the player and increments
// the score once per star. Returns the collected ids in creation order.
func PlayerVsStars(store *Store, score *ScoreTracker) []EntityID {
	p, ok := store.Player()
	if !ok {
		return nil
	}
	var collected []EntityID
	for _, s := range store.Stars() {
		if Overlaps(p, s) {
			score.Increment()
			store.Despawn(s.ID)
			collected = append(collected, s.ID)
		}
	}
	return collected
}
