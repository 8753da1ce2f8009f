// Package audio plays synthesized sound effects in response to simulation
// events. Audio is optional: without an output device every call is a no-op.
package audio

import (
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/starcatch/internal/core"
)

// Source is anything that publishes simulation events.
type Source interface {
	Subscribe(t core.EventType, h core.EventHandler)
}

// Player mixes effects onto the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rng         *rand.Rand
	enabled     bool
	initialized bool
	played      map[Sound]int
}

// NewPlayer creates a player. A disabled player ignores every request.
func NewPlayer(enabled bool, seed int64) *Player {
	return &Player{
		mixer:   &beep.Mixer{},
		rng:     rand.New(rand.NewSource(seed)),
		enabled: enabled,
		played:  make(map[Sound]int),
	}
}

// Initialize opens the speaker. Failure leaves the player silent but usable.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Enabled reports whether sound is switched on.
func (p *Player) Enabled() bool {
	return p.enabled
}

// Play queues an effect. Requests are counted even without a device.
func (p *Player) Play(s Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	p.played[s]++
	if !p.initialized {
		return
	}

	st, err := Build(s, p.rng)
	if err != nil || st == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
}

// Played returns how many times an effect was requested.
func (p *Player) Played(s Sound) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[s]
}

// Attach maps simulation events to effects: a bounce plays one of two
// plucks at random, a lethal hit explodes and a collected star chimes.
func (p *Player) Attach(src Source) {
	src.Subscribe(core.EventDirectionChanged, func(core.Event) {
		p.Play(p.pickPluck())
	})
	src.Subscribe(core.EventEnemyHitPlayer, func(core.Event) {
		p.Play(SoundExplosion)
	})
	src.Subscribe(core.EventStarCollected, func(core.Event) {
		p.Play(SoundChime)
	})
}

func (p *Player) pickPluck() Sound {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.rng.Float64() > 0.5 {
		return SoundPluckLow
	}
	return SoundPluckHigh
}
