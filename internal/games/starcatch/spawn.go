package starcatch

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/starcatch/internal/core"
)

// SpawnTimer is a repeating logical countdown. It fires at most once per
// Tick: when elapsed reaches the interval it fires and elapsed resets to
// zero, so a large dt never produces a backlog of fires.
type SpawnTimer struct {
	interval float64
	elapsed  float64
	finished bool
}

// NewSpawnTimer creates a timer with the given interval in seconds.
func NewSpawnTimer(interval float64) *SpawnTimer {
	return &SpawnTimer{interval: interval}
}

// Tick advances the timer and reports whether it fired this tick.
func (t *SpawnTimer) Tick(dt float64) bool {
	t.elapsed += dt
	t.finished = t.elapsed >= t.interval
	if t.finished {
		t.elapsed = 0
	}
	return t.finished
}

// Finished reports whether the last Tick fired.
func (t *SpawnTimer) Finished() bool {
	return t.finished
}

// Elapsed returns the time accumulated toward the next fire.
func (t *SpawnTimer) Elapsed() float64 {
	return t.elapsed
}

// Spawner places new entities at random positions.
type Spawner struct {
	rng         *rand.Rand
	enemyRadius float64
	starRadius  float64
}

// NewSpawner creates a spawner with its own seeded RNG.
func NewSpawner(seed int64, enemyRadius, starRadius float64) *Spawner {
	return &Spawner{
		rng:         rand.New(rand.NewSource(seed)),
		enemyRadius: enemyRadius,
		starRadius:  starRadius,
	}
}

// RandomPosition samples uniformly in [0,w]×[0,h]. Edges are allowed and
// existing entities are not avoided.
func (sp *Spawner) RandomPosition(arena Arena) core.Vec2 {
	return core.V(sp.rng.Float64()*arena.Width, sp.rng.Float64()*arena.Height)
}

// RandomDirection returns a unit vector with a uniformly distributed angle.
func (sp *Spawner) RandomDirection() core.Vec2 {
	theta := sp.rng.Float64() * 2 * math.Pi
	return core.V(math.Cos(theta), math.Sin(theta))
}

// SpawnStar inserts a star at a random position.
func (sp *Spawner) SpawnStar(store *Store, arena Arena) *Entity {
	return store.SpawnStar(sp.RandomPosition(arena), sp.starRadius)
}

// SpawnEnemy inserts an enemy at a random position with a random heading.
func (sp *Spawner) SpawnEnemy(store *Store, arena Arena) *Entity {
	pos := sp.RandomPosition(arena)
	return store.SpawnEnemy(pos, sp.RandomDirection(), sp.enemyRadius)
}

// InitialPopulate spawns the starting enemies, then the starting stars.
func (sp *Spawner) InitialPopulate(store *Store, arena Arena, enemies, stars int) {
	for range enemies {
		sp.SpawnEnemy(store, arena)
	}
	for range stars {
		sp.SpawnStar(store, arena)
	}
}
