package core

// EventType identifies a simulation event.
type EventType uint8

const (
	EventScoreChanged     EventType = iota // Payload: ScoreChanged
	EventGameOver                          // Payload: GameOver
	EventDirectionChanged                  // Payload: DirectionChanged
	EventStarCollected                     // Payload: StarCollected
	EventEnemyHitPlayer                    // Payload: EnemyHitPlayer
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventScoreChanged:
		return "score_changed"
	case EventGameOver:
		return "game_over"
	case EventDirectionChanged:
		return "direction_changed"
	case EventStarCollected:
		return "star_collected"
	case EventEnemyHitPlayer:
		return "enemy_hit_player"
	default:
		return "unknown"
	}
}

// Event is a notification published during one tick.
type Event struct {
	Type    EventType
	Tick    uint64
	Payload any
}

// GameOver is published exactly once per game, on the lethal collision.
type GameOver struct {
	FinalScore int
}

// ScoreChanged is published at most once per tick when the score moved.
type ScoreChanged struct {
	Score int
}

// DirectionChanged is published when an enemy bounced off the arena edge.
type DirectionChanged struct {
	Entity uint64
	FlipX  bool
	FlipY  bool
}

// StarCollected is published for every star the player picked up.
type StarCollected struct {
	Entity uint64
	Score  int
}

// EnemyHitPlayer is published alongside GameOver with the lethal enemy.
type EnemyHitPlayer struct {
	Entity uint64
}

// EventHandler consumes a dispatched event.
type EventHandler func(e Event)

// EventBus queues events during a tick and dispatches them at its end.
// Events never survive a Dispatch: subscribers see each event exactly once,
// in the tick it was published.
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type.
func (b *EventBus) On(t EventType, h EventHandler) {
	b.listeners[t] = append(b.listeners[t], h)
}

// Emit queues an event for dispatch.
func (b *EventBus) Emit(e Event) {
	b.queue = append(b.queue, e)
}

// pending returns the events queued since the last dispatch.
func (b *EventBus) pending() []Event {
	return b.queue
}

// Dispatch delivers queued events in publish order and clears the queue.
func (b *EventBus) Dispatch() {
	queue := b.queue
	b.queue = nil
	for _, e := range queue {
		for _, h := range b.listeners[e.Type] {
			h(e)
		}
	}
}

// Drop discards queued events without delivering them.
func (b *EventBus) Drop() {
	b.queue = nil
}
