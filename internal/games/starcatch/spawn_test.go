package starcatch

import (
	"math"
	"testing"

	"github.com/vovakirdan/starcatch/internal/core"
)

func TestSpawnTimerResetsToZero(t *testing.T) {
	timer := NewSpawnTimer(1.0)

	fired := []bool{timer.Tick(0.4), timer.Tick(0.4), timer.Tick(0.4)}
	expected := []bool{false, false, true}
	for i := range fired {
		if fired[i] != expected[i] {
			t.Errorf("tick %d fired = %v, expected %v", i+1, fired[i], expected[i])
		}
	}

	// Remainder (0.2) is discarded, not carried
	if timer.Elapsed() != 0 {
		t.Errorf("elapsed after fire = %f, expected 0", timer.Elapsed())
	}
	if timer.Tick(0.4) || timer.Tick(0.4) {
		t.Error("timer fired early after reset")
	}
	if !timer.Tick(0.4) {
		t.Error("timer should fire again after a full interval")
	}
}

func TestSpawnTimerNoCatchUp(t *testing.T) {
	timer := NewSpawnTimer(1.0)

	if !timer.Tick(5.0) {
		t.Fatal("large dt should fire")
	}
	if timer.Tick(0.1) {
		t.Error("a burst must not leave a backlog of fires")
	}
}

func TestSpawnTimerExactInterval(t *testing.T) {
	timer := NewSpawnTimer(1.0)
	if !timer.Tick(1.0) {
		t.Error("elapsed == interval should fire")
	}
	if !timer.Finished() {
		t.Error("Finished should report the last fire")
	}
	timer.Tick(0.5)
	if timer.Finished() {
		t.Error("Finished should clear on a tick without fire")
	}
}

func TestSpawnerPositionsAndDirections(t *testing.T) {
	arena := Arena{Width: 640, Height: 480}
	sp := NewSpawner(7, 32, 15)
	store := NewStore()

	for range 500 {
		s := sp.SpawnStar(store, arena)
		if !arena.contains(s.Pos) {
			t.Fatalf("star spawned outside arena at %v", s.Pos)
		}
		e := sp.SpawnEnemy(store, arena)
		if !arena.contains(e.Pos) {
			t.Fatalf("enemy spawned outside arena at %v", e.Pos)
		}
		if math.Abs(e.Dir.Len()-1) > 1e-9 {
			t.Fatalf("enemy direction %v is not unit length", e.Dir)
		}
		if s.Radius != 15 || e.Radius != 32 {
			t.Fatalf("unexpected radii star=%f enemy=%f", s.Radius, e.Radius)
		}
	}
}

func TestInitialPopulate(t *testing.T) {
	arena := Arena{Width: 640, Height: 480}
	store := NewStore()
	NewSpawner(1, 32, 15).InitialPopulate(store, arena, 4, 10)

	if n := store.Count(KindEnemy); n != 4 {
		t.Errorf("enemies = %d, expected 4", n)
	}
	if n := store.Count(KindStar); n != 10 {
		t.Errorf("stars = %d, expected 10", n)
	}

	// Enemies come first in creation order
	all := store.All()
	for i := 0; i < 4; i++ {
		if all[i].Kind != KindEnemy {
			t.Errorf("entity %d kind = %s, expected enemy", i, all[i].Kind)
		}
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	arena := Arena{Width: 640, Height: 480}
	a, b := NewSpawner(99, 32, 15), NewSpawner(99, 32, 15)

	for range 20 {
		if a.RandomPosition(arena) != b.RandomPosition(arena) {
			t.Fatal("same seed should give the same positions")
		}
	}
}

func TestStoreIDsNotRecycled(t *testing.T) {
	store := NewStore()
	s1 := store.SpawnStar(core.V(50, 50), 15)
	store.Despawn(s1.ID)
	s2 := store.SpawnStar(core.V(50, 50), 15)

	if s2.ID == s1.ID {
		t.Error("despawned id was reused")
	}
	if store.Despawn(s1.ID) {
		t.Error("despawning a dead id should report false")
	}
}

func TestStoreSingletonPlayer(t *testing.T) {
	store := NewStore()
	p, err := store.SpawnPlayer(core.V(50, 50), 32)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.SpawnPlayer(core.V(50, 50), 32); err != ErrPlayerExists {
		t.Errorf("second player error = %v, expected ErrPlayerExists", err)
	}

	store.Despawn(p.ID)
	if _, ok := store.Player(); ok {
		t.Error("player handle should clear on despawn")
	}
}
