package core

import "testing"

func TestEventBusDispatchOrderAndClear(t *testing.T) {
	bus := NewEventBus()

	var got []EventType
	record := func(e Event) { got = append(got, e.Type) }
	bus.On(EventStarCollected, record)
	bus.On(EventScoreChanged, record)

	bus.Emit(Event{Type: EventStarCollected, Payload: StarCollected{Entity: 3, Score: 1}})
	bus.Emit(Event{Type: EventScoreChanged, Payload: ScoreChanged{Score: 1}})
	bus.Emit(Event{Type: EventGameOver, Payload: GameOver{FinalScore: 1}}) // no listener

	if len(bus.pending()) != 3 {
		t.Fatalf("pending() = %d events, expected 3", len(bus.pending()))
	}

	bus.Dispatch()

	if len(got) != 2 || got[0] != EventStarCollected || got[1] != EventScoreChanged {
		t.Errorf("dispatched %v, expected [star_collected score_changed]", got)
	}
	if len(bus.pending()) != 0 {
		t.Error("Dispatch should clear the queue")
	}

	// A second dispatch must not redeliver
	bus.Dispatch()
	if len(got) != 2 {
		t.Errorf("events redelivered after clear: %v", got)
	}
}

func TestEventBusMultipleSubscribers(t *testing.T) {
	bus := NewEventBus()

	calls := 0
	bus.On(EventGameOver, func(Event) { calls++ })
	bus.On(EventGameOver, func(Event) { calls++ })

	bus.Emit(Event{Type: EventGameOver, Payload: GameOver{FinalScore: 7}})
	bus.Dispatch()

	if calls != 2 {
		t.Errorf("expected both subscribers to run, got %d calls", calls)
	}
}

func TestEventBusDrop(t *testing.T) {
	bus := NewEventBus()
	called := false
	bus.On(EventScoreChanged, func(Event) { called = true })

	bus.Emit(Event{Type: EventScoreChanged})
	bus.Drop()
	bus.Dispatch()

	if called {
		t.Error("dropped events should not be delivered")
	}
}
