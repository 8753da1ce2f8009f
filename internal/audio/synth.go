package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// Sound identifies one synthesized effect.
type Sound int

const (
	SoundPluckLow Sound = iota
	SoundPluckHigh
	SoundExplosion
	SoundChime
)

// String returns the effect name.
func (s Sound) String() string {
	switch s {
	case SoundPluckLow:
		return "pluck_low"
	case SoundPluckHigh:
		return "pluck_high"
	case SoundExplosion:
		return "explosion"
	case SoundChime:
		return "chime"
	default:
		return "unknown"
	}
}

// Durations of the synthesized effects
const (
	pluckDuration     = 180 * time.Millisecond
	explosionDuration = 450 * time.Millisecond
	chimeNoteDuration = 90 * time.Millisecond
)

// pluck is a Karplus-Strong plucked string: a noise burst fed through a
// delay line with an averaging low-pass filter.
type pluck struct {
	buf   []float64
	pos   int
	left  int
	decay float64
}

func newPluck(freq float64, d time.Duration, rng *rand.Rand) *pluck {
	n := int(float64(sampleRate) / freq)
	if n < 2 {
		n = 2
	}
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = rng.Float64()*2 - 1
	}
	return &pluck{buf: buf, left: sampleRate.N(d), decay: 0.996}
}

func (p *pluck) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if p.left <= 0 {
			return i, i > 0
		}
		next := (p.pos + 1) % len(p.buf)
		v := p.buf[p.pos]
		p.buf[p.pos] = p.decay * 0.5 * (v + p.buf[next])
		p.pos = next
		p.left--

		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (p *pluck) Err() error { return nil }

// decayNoise is white noise under an exponential decay, low-passed so it
// rumbles rather than hisses.
type decayNoise struct {
	rng   *rand.Rand
	total int
	pos   int
	prev  float64
}

// newDecayNoise seeds a private source from rng. The stream is consumed on
// the speaker goroutine, so it must not share rng with the caller.
func newDecayNoise(d time.Duration, rng *rand.Rand) *decayNoise {
	return &decayNoise{rng: rand.New(rand.NewSource(rng.Int63())), total: sampleRate.N(d)}
}

func (d *decayNoise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if d.pos >= d.total {
			return i, i > 0
		}
		t := float64(d.pos) / float64(d.total)
		raw := d.rng.Float64()*2 - 1
		d.prev = 0.8*d.prev + 0.2*raw
		v := d.prev * math.Exp(-5*t) * 2
		d.pos++

		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (d *decayNoise) Err() error { return nil }

// fade applies a linear release over the whole length of a finite stream.
type fade struct {
	s     beep.Streamer
	total int
	pos   int
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(f.pos)/float64(f.total)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }

// tone returns a sine note of fixed length that fades out.
func tone(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	n := sampleRate.N(d)
	return &fade{s: beep.Take(n, sine), total: n}, nil
}

// withVolume scales a stream. vol is linear; 0 mutes.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Build synthesizes a fresh streamer for an effect.
func Build(s Sound, rng *rand.Rand) (beep.Streamer, error) {
	switch s {
	case SoundPluckLow:
		return withVolume(newPluck(196.00, pluckDuration, rng), 0.6), nil // G3
	case SoundPluckHigh:
		return withVolume(newPluck(293.66, pluckDuration, rng), 0.6), nil // D4
	case SoundExplosion:
		return withVolume(newDecayNoise(explosionDuration, rng), 0.8), nil
	case SoundChime:
		n1, err := tone(1046.50, chimeNoteDuration) // C6
		if err != nil {
			return nil, err
		}
		n2, err := tone(1567.98, chimeNoteDuration*2) // G6
		if err != nil {
			return nil, err
		}
		return withVolume(beep.Seq(n1, n2), 0.4), nil
	default:
		return nil, nil
	}
}
