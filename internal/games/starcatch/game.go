// Package starcatch implements Star Catcher: the player collects stars while
// avoiding enemies that bounce around a bounded arena.
//
// Every tick runs the systems in a fixed order:
//
//	input -> move player -> confine player -> move enemies -> bounce enemies ->
//	confine enemies -> player vs enemies -> player vs stars -> spawn timer ->
//	conditional star spawn -> score report -> dispatch events
//
// The enemy check runs before the star check. The player is despawned on the
// lethal hit, so stars overlapping in that same tick are not banked. Once the
// game is over no system runs again.
package starcatch

import (
	"fmt"

	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/registry"
)

// GameID is the registry and score storage identifier.
const GameID = "starcatch"

// Phase is the state of the game loop.
type Phase int

const (
	PhasePlaying  Phase = iota
	PhaseGameOver       // terminal
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// gameConfig is the configuration for games created by the registry,
// set from the CLI before creation.
var gameConfig = config.Default()

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.GameConfig) {
	gameConfig = cfg
}

// Game is the simulation orchestrator. It exclusively owns the entity
// table, the score and the spawn timer and hands them to each system.
type Game struct {
	cfg     config.GameConfig
	runtime core.RuntimeConfig

	arena   Arena
	store   *Store
	score   ScoreTracker
	timer   *SpawnTimer
	spawner *Spawner
	bus     *core.EventBus

	phase      Phase
	paused     bool
	quit       bool
	tick       uint64
	finalScore int
	err        error
}

// New creates a game using the configuration set by SetConfig.
func New() *Game {
	return NewWithConfig(gameConfig)
}

// NewWithConfig creates an unstarted game. Call Reset or Start before stepping.
func NewWithConfig(cfg config.GameConfig) *Game {
	return &Game{
		cfg:   cfg,
		store: NewStore(),
		bus:   core.NewEventBus(),
		phase: PhasePlaying,
	}
}

// NewSimulation creates and starts a game, failing on an unusable arena.
func NewSimulation(cfg config.GameConfig, rc core.RuntimeConfig) (*Game, error) {
	g := NewWithConfig(cfg)
	if err := g.Start(rc); err != nil {
		return nil, err
	}
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Star Catcher"
}

// Start (re)initializes the simulation: player at the arena centre, the
// initial enemies and stars, zero score and a fresh spawn timer.
// Subscribers are kept.
func (g *Game) Start(rc core.RuntimeConfig) error {
	g.runtime = rc
	g.store = NewStore()
	g.bus.Drop()

	arena, err := NewArena(g.cfg.Arena.Width, g.cfg.Arena.Height)
	if err != nil {
		g.err = err
		return err
	}
	if err := config.Validate(g.cfg); err != nil {
		g.err = fmt.Errorf("starcatch: %w", err)
		return g.err
	}

	g.err = nil
	g.arena = arena
	g.score = ScoreTracker{}
	g.timer = NewSpawnTimer(g.cfg.Stars.SpawnInterval)
	g.spawner = NewSpawner(rc.Seed, g.cfg.Enemies.Size/2, g.cfg.Stars.Size/2)
	g.phase = PhasePlaying
	g.paused = false
	g.quit = false
	g.tick = 0
	g.finalScore = 0

	if _, err := g.store.SpawnPlayer(arena.Center(), g.cfg.Player.Size/2); err != nil {
		g.err = err
		return err
	}
	g.spawner.InitialPopulate(g.store, arena, g.cfg.Enemies.Count, g.cfg.Stars.Count)
	return nil
}

// Reset implements registry.Game. Startup errors are reported by Err.
func (g *Game) Reset(rc core.RuntimeConfig) {
	_ = g.Start(rc)
}

// Err returns the startup error of the last Start/Reset.
func (g *Game) Err() error {
	return g.err
}

// Step advances the game by one host tick of 1/TickRate seconds.
// Quit is honoured even after game over and skips the whole tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		g.quit = true
	}
	if g.quit || g.err != nil || g.phase == PhaseGameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.Tick(in, g.runtime.TickSeconds())
	return core.StepResult{State: g.State()}
}

// Tick runs every system once with an explicit time step.
// It is a no-op once the game is over.
func (g *Game) Tick(in core.InputFrame, dt float64) {
	if g.err != nil || g.phase != PhasePlaying {
		return
	}
	g.tick++

	MovePlayer(g.store, in, g.cfg.Player.Speed, dt)
	ConfinePlayer(g.store, g.arena)

	MoveEnemies(g.store, g.cfg.Enemies.Speed, dt)
	for _, dc := range UpdateEnemyDirection(g.store, g.arena) {
		g.emit(core.EventDirectionChanged, dc)
	}
	ConfineEnemies(g.store, g.arena)

	if enemy, hit := PlayerVsEnemies(g.store); hit {
		g.endGame(enemy)
		g.bus.Dispatch()
		return
	}

	before := g.score.Value()
	for i, id := range PlayerVsStars(g.store, &g.score) {
		g.emit(core.EventStarCollected, core.StarCollected{
			Entity: uint64(id),
			Score:  before + i + 1,
		})
	}

	g.timer.Tick(dt)
	if g.timer.Finished() {
		g.spawner.SpawnStar(g.store, g.arena)
	}

	if g.score.TakeChanged() {
		g.emit(core.EventScoreChanged, core.ScoreChanged{Score: g.score.Value()})
	}

	g.bus.Dispatch()
}

// endGame performs the single Playing -> GameOver transition.
func (g *Game) endGame(enemy EntityID) {
	g.phase = PhaseGameOver
	g.score.Freeze()
	g.finalScore = g.score.Value()
	g.emit(core.EventEnemyHitPlayer, core.EnemyHitPlayer{Entity: uint64(enemy)})
	g.emit(core.EventGameOver, core.GameOver{FinalScore: g.finalScore})
}

func (g *Game) emit(t core.EventType, payload any) {
	g.bus.Emit(core.Event{Type: t, Tick: g.tick, Payload: payload})
}

// Subscribe registers an observer for simulation events.
func (g *Game) Subscribe(t core.EventType, h core.EventHandler) {
	g.bus.On(t, h)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Value(),
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
		Quit:     g.quit,
	}
}

// Phase returns the current loop phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score.Value()
}

// FinalScore returns the score carried by the GameOver event.
func (g *Game) FinalScore() int {
	return g.finalScore
}

// Store exposes the entity table for read-only presentation.
func (g *Game) Store() *Store {
	return g.store
}

// Arena returns the playfield bounds.
func (g *Game) Arena() Arena {
	return g.arena
}

// Ticks returns the number of simulated ticks.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// Config returns the game configuration.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
