// Package report turns simulation events into log lines and score history.
package report

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/storage"
)

// Source is anything that publishes simulation events.
type Source interface {
	Subscribe(t core.EventType, h core.EventHandler)
}

// ScoreSaver persists finished games. *storage.Store satisfies it.
type ScoreSaver interface {
	SaveRun(e storage.ScoreEntry) (int64, error)
}

// Reporter logs score changes and the final score, and records the final
// score once per game when a saver is configured.
type Reporter struct {
	logger *log.Logger
	saver  ScoreSaver
	gameID string
	seed   int64

	lastFinal int
	saved     int
}

// New creates a reporter. saver may be nil.
func New(logger *log.Logger, saver ScoreSaver, gameID string) *Reporter {
	return &Reporter{
		logger: logger,
		saver:  saver,
		gameID: gameID,
	}
}

// SetSeed records the seed of the game being played, stored with its score.
func (r *Reporter) SetSeed(seed int64) {
	r.seed = seed
}

// Attach subscribes the reporter to a game.
func (r *Reporter) Attach(src Source) {
	src.Subscribe(core.EventScoreChanged, r.onScoreChanged)
	src.Subscribe(core.EventGameOver, r.onGameOver)
}

func (r *Reporter) onScoreChanged(e core.Event) {
	sc, ok := e.Payload.(core.ScoreChanged)
	if !ok {
		return
	}
	r.logger.Info("score changed", "score", sc.Score, "tick", e.Tick)
}

func (r *Reporter) onGameOver(e core.Event) {
	over, ok := e.Payload.(core.GameOver)
	if !ok {
		return
	}
	r.lastFinal = over.FinalScore
	r.logger.Info("game over", "final_score", over.FinalScore, "tick", e.Tick, "seed", r.seed)

	// Empty runs are not worth a row
	if r.saver == nil || over.FinalScore == 0 {
		return
	}
	_, err := r.saver.SaveRun(storage.ScoreEntry{
		GameID: r.gameID,
		Score:  over.FinalScore,
		Seed:   r.seed,
		Ticks:  e.Tick,
	})
	if err != nil {
		r.logger.Error("cannot save score", "err", err)
		return
	}
	r.saved++
}

// LastFinalScore returns the final score of the most recent game over.
func (r *Reporter) LastFinalScore() int {
	return r.lastFinal
}

// Saved returns how many scores have been written.
func (r *Reporter) Saved() int {
	return r.saved
}
