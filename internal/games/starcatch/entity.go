package starcatch

import (
	"errors"

	"github.com/vovakirdan/starcatch/internal/core"
)

// ErrPlayerExists is returned when a second player would be spawned.
var ErrPlayerExists = errors.New("starcatch: player already exists")

// EntityID is a stable handle issued by the Store. Zero is never issued.
type EntityID uint64

// Kind tags the variant of an entity.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindStar
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindStar:
		return "star"
	default:
		return "unknown"
	}
}

// Entity is one row of the entity table. Dir is only meaningful for enemies.
type Entity struct {
	ID     EntityID
	Kind   Kind
	Pos    core.Vec2
	Dir    core.Vec2
	Radius float64
}

// Store owns all live entities. Iteration follows creation order and ids
// are never recycled.
type Store struct {
	entities map[EntityID]*Entity
	order    []EntityID
	nextID   EntityID
	player   EntityID // 0 when no player exists
}

// NewStore creates an empty entity table.
func NewStore() *Store {
	return &Store{
		entities: make(map[EntityID]*Entity),
	}
}

func (s *Store) insert(e *Entity) *Entity {
	s.nextID++
	e.ID = s.nextID
	s.entities[e.ID] = e
	s.order = append(s.order, e.ID)
	return e
}

// SpawnPlayer creates the singleton player.
func (s *Store) SpawnPlayer(pos core.Vec2, radius float64) (*Entity, error) {
	if s.player != 0 {
		return nil, ErrPlayerExists
	}
	e := s.insert(&Entity{Kind: KindPlayer, Pos: pos, Radius: radius})
	s.player = e.ID
	return e, nil
}

// SpawnEnemy creates an enemy moving along dir.
func (s *Store) SpawnEnemy(pos, dir core.Vec2, radius float64) *Entity {
	return s.insert(&Entity{Kind: KindEnemy, Pos: pos, Dir: dir, Radius: radius})
}

// SpawnStar creates a star.
func (s *Store) SpawnStar(pos core.Vec2, radius float64) *Entity {
	return s.insert(&Entity{Kind: KindStar, Pos: pos, Radius: radius})
}

// Despawn removes an entity. Its id becomes invalid immediately.
// Returns false if the id was not live.
func (s *Store) Despawn(id EntityID) bool {
	if _, ok := s.entities[id]; !ok {
		return false
	}
	delete(s.entities, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.player == id {
		s.player = 0
	}
	return true
}

// get returns a live entity by id.
func (s *Store) get(id EntityID) (*Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}

// Player returns the player, if it exists.
func (s *Store) Player() (*Entity, bool) {
	if s.player == 0 {
		return nil, false
	}
	return s.entities[s.player], true
}

// Enemies returns all enemies in creation order.
func (s *Store) Enemies() []*Entity {
	return s.ofKind(KindEnemy)
}

// Stars returns all stars in creation order.
func (s *Store) Stars() []*Entity {
	return s.ofKind(KindStar)
}

// All returns every live entity in creation order.
func (s *Store) All() []*Entity {
	out := make([]*Entity, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.entities[id])
	}
	return out
}

// Count returns the number of live entities of a kind.
func (s *Store) Count(k Kind) int {
	n := 0
	for _, id := range s.order {
		if s.entities[id].Kind == k {
			n++
		}
	}
	return n
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	return len(s.order)
}

func (s *Store) ofKind(k Kind) []*Entity {
	var out []*Entity
	for _, id := range s.order {
		if e := s.entities[id]; e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}
