package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/qnkhuat/tetterm/pkg/game"
)

const sampleRate = beep.SampleRate(44100)

// Tone is one short cue.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Volume   float64
}

var (
	toneLock     = Tone{Freq: 220, Duration: 40 * time.Millisecond, Volume: 0.15}
	toneGameOver = Tone{Freq: 110, Duration: 600 * time.Millisecond, Volume: 0.3}
)

// toneFor returns the cue for a tick result. Ticks that only moved the piece
// are silent.
func toneFor(r game.Result) (Tone, bool) {
	switch {
	case r.GameOver:
		return toneGameOver, true
	case r.Cleared > 0:
		// One step up a major triad per extra row.
		steps := []float64{1, 1.25, 1.5, 2}
		i := r.Cleared - 1
		if i >= len(steps) {
			i = len(steps) - 1
		}
		return Tone{Freq: 440 * steps[i], Duration: 150 * time.Millisecond, Volume: 0.25}, true
	case r.Locked:
		return toneLock, true
	default:
		return Tone{}, false
	}
}

// sine is a fading sine wave.
type sine struct {
	tone     Tone
	rate     beep.SampleRate
	total    int
	position int
}

func newSine(t Tone, rate beep.SampleRate) *sine {
	return &sine{tone: t, rate: rate, total: rate.N(t.Duration)}
}

func (s *sine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}

		t := float64(s.position) / float64(s.rate)
		fade := 1 - float64(s.position)/float64(s.total)
		v := s.tone.Volume * fade * math.Sin(2*math.Pi*s.tone.Freq*t)

		samples[i][0] = v
		samples[i][1] = v
		s.position++
	}

	return len(samples), true
}

func (s *sine) Err() error { return nil }

// Player plays cues through the speaker. A Player created with sound
// disabled, or whose speaker failed to start, stays silent.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
}

func New(enabled bool) (*Player, error) {
	p := &Player{mixer: &beep.Mixer{}}
	if !enabled {
		return p, nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return p, fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.enabled = true

	return p, nil
}

func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.enabled
}

// Play queues the cue for r, if any.
func (p *Player) Play(r game.Result) {
	t, ok := toneFor(r)
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}

	speaker.Lock()
	p.mixer.Add(newSine(t, sampleRate))
	speaker.Unlock()
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}

	speaker.Clear()
	speaker.Close()
	p.enabled = false
}
