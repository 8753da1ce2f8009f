package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/storage"
)

type fakeSaver struct {
	entries []storage.ScoreEntry
	err     error
}

func (f *fakeSaver) SaveRun(e storage.ScoreEntry) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.entries = append(f.entries, e)
	return int64(len(f.entries)), nil
}

// busSource exposes a bare event bus as a Source.
type busSource struct{ *core.EventBus }

func (b busSource) Subscribe(t core.EventType, h core.EventHandler) { b.On(t, h) }

func newTestReporter(saver ScoreSaver) (*Reporter, *core.EventBus, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	r := New(logger, saver, "starcatch")
	bus := core.NewEventBus()
	r.Attach(busSource{bus})
	return r, bus, &buf
}

func TestReporterLogsScoreChanges(t *testing.T) {
	_, bus, buf := newTestReporter(nil)

	bus.Emit(core.Event{Type: core.EventScoreChanged, Tick: 3, Payload: core.ScoreChanged{Score: 2}})
	bus.Dispatch()

	out := buf.String()
	if !strings.Contains(out, "score changed") || !strings.Contains(out, "score=2") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestReporterSavesFinalScoreOnce(t *testing.T) {
	saver := &fakeSaver{}
	r, bus, buf := newTestReporter(saver)
	r.SetSeed(99)

	bus.Emit(core.Event{Type: core.EventGameOver, Tick: 480, Payload: core.GameOver{FinalScore: 5}})
	bus.Dispatch()
	bus.Dispatch() // events are cleared, nothing is delivered twice

	if len(saver.entries) != 1 {
		t.Fatalf("saved %d entries, expected 1", len(saver.entries))
	}
	got := saver.entries[0]
	if got.GameID != "starcatch" || got.Score != 5 || got.Seed != 99 || got.Ticks != 480 {
		t.Errorf("saved entry = %+v", got)
	}
	if r.LastFinalScore() != 5 || r.Saved() != 1 {
		t.Errorf("LastFinalScore=%d Saved=%d", r.LastFinalScore(), r.Saved())
	}
	if !strings.Contains(buf.String(), "final_score=5") {
		t.Errorf("game over not logged: %q", buf.String())
	}
}

func TestReporterSkipsZeroScore(t *testing.T) {
	saver := &fakeSaver{}
	_, bus, buf := newTestReporter(saver)

	bus.Emit(core.Event{Type: core.EventGameOver, Payload: core.GameOver{FinalScore: 0}})
	bus.Dispatch()

	if len(saver.entries) != 0 {
		t.Error("zero score should not be saved")
	}
	if !strings.Contains(buf.String(), "game over") {
		t.Error("game over should still be logged")
	}
}

func TestReporterLogsSaveError(t *testing.T) {
	saver := &fakeSaver{err: errors.New("disk full")}
	r, bus, buf := newTestReporter(saver)

	bus.Emit(core.Event{Type: core.EventGameOver, Payload: core.GameOver{FinalScore: 1}})
	bus.Dispatch()

	if r.Saved() != 0 {
		t.Error("failed save should not count")
	}
	if !strings.Contains(buf.String(), "disk full") {
		t.Errorf("save error not logged: %q", buf.String())
	}
}

func TestReporterIgnoresForeignPayload(t *testing.T) {
	saver := &fakeSaver{}
	_, bus, buf := newTestReporter(saver)

	bus.Emit(core.Event{Type: core.EventGameOver, Payload: "bogus"})
	bus.Dispatch()

	if buf.Len() != 0 || len(saver.entries) != 0 {
		t.Error("malformed payload should be ignored")
	}
}
