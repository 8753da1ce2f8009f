package starcatch

import "math"

// Snapshot captures the simulation state for determinism testing and replay.
// Positions are stored as IEEE-754 bits so equal states hash equally.
type Snapshot struct {
	Tick         uint64
	Phase        Phase
	Score        int
	FinalScore   int
	HasPlayer    bool
	PlayerX      float64
	PlayerY      float64
	EnemyCount   int
	StarCount    int
	TimerElapsed float64

	// Entity data in creation order: ID, Kind, X, Y, DirX, DirY (as bits)
	EntityData []uint64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       g.tick,
		Phase:      g.phase,
		Score:      g.score.Value(),
		FinalScore: g.finalScore,
		EnemyCount: g.store.Count(KindEnemy),
		StarCount:  g.store.Count(KindStar),
	}
	if g.timer != nil {
		snap.TimerElapsed = g.timer.Elapsed()
	}
	if p, ok := g.store.Player(); ok {
		snap.HasPlayer = true
		snap.PlayerX = p.Pos.X
		snap.PlayerY = p.Pos.Y
	}

	all := g.store.All()
	snap.EntityData = make([]uint64, 0, len(all)*6)
	for _, e := range all {
		snap.EntityData = append(snap.EntityData,
			uint64(e.ID),
			uint64(e.Kind),
			math.Float64bits(e.Pos.X),
			math.Float64bits(e.Pos.Y),
			math.Float64bits(e.Dir.X),
			math.Float64bits(e.Dir.Y),
		)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for quick comparison.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FinalScore) //#nosec G115 -- hash computation
	if snap.HasPlayer {
		h = h*31 + 1
	}
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + uint64(snap.EnemyCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.StarCount)  //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.TimerElapsed)

	for _, v := range snap.EntityData {
		h = h*31 + v
	}
	return h
}
