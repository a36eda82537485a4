package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"sealdive/game"
)

const SampleRate = beep.SampleRate(44100)

// Player plays game cues through the system speaker. It satisfies game.Cues.
// Play never blocks on audio output: it only appends to the mixer under the speaker lock.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	rate   beep.SampleRate
	volume float64
	muted  atomic.Bool

	lock   func()
	unlock func()
	closer func()
}

// NewPlayer opens the speaker. Callers that can live without sound should fall back to
// Silent on error.
func NewPlayer(volume float64) (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	p := newPlayer(SampleRate, volume, speaker.Lock, speaker.Unlock)
	p.closer = speaker.Close
	speaker.Play(p.mixer)
	return p, nil
}

func newPlayer(rate beep.SampleRate, volume float64, lock, unlock func()) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		rate:   rate,
		volume: volume,
		lock:   lock,
		unlock: unlock,
	}
}

func (p *Player) Play(c game.Cue) {
	if p.muted.Load() {
		return
	}
	s := Synth(c, p.rate)
	if s == nil {
		return
	}
	p.mu.Lock()
	vol := p.volume
	p.mu.Unlock()

	p.lock()
	p.mixer.Add(newVolume(s, vol))
	p.unlock()
}

// ToggleMute flips mute and reports whether sound is now on.
func (p *Player) ToggleMute() bool {
	wasMuted := p.muted.Load()
	p.muted.Store(!wasMuted)
	return wasMuted
}

func (p *Player) SetMuted(m bool) { p.muted.Store(m) }

func (p *Player) Muted() bool { return p.muted.Load() }

// SetVolume sets the master volume, clamped to [0, 1].
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	p.volume = game.Clamp(v, 0, 1)
	p.mu.Unlock()
}

// Active is the number of cues still sounding.
func (p *Player) Active() int {
	p.lock()
	defer p.unlock()
	return p.mixer.Len()
}

// Close silences everything and releases the speaker.
func (p *Player) Close() {
	p.lock()
	p.mixer.Clear()
	p.unlock()
	if p.closer != nil {
		p.closer()
	}
}

// Silent is the cue player used when no audio device is available.
type Silent struct{}

func (Silent) Play(game.Cue) {}
