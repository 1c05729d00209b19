// Package audio plays the in-game soundtrack through the system speaker.
// Every method is safe to call when no audio device is available; the
// player then stays silent.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	themeBPM   = 150
)

// Player owns the soundtrack streamer.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	track       *beep.Ctrl
	volume      *effects.Volume
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player. A nil logger discards diagnostics.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{mixer: &beep.Mixer{}, logger: logger}
}

// Initialize opens the speaker and queues the paused soundtrack.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	p.volume = &effects.Volume{
		Streamer: beep.Loop(-1, NewMelody(sampleRate, theme, themeBPM)),
		Base:     2,
	}
	p.track = &beep.Ctrl{Streamer: p.volume, Paused: true}
	speaker.Lock()
	p.mixer.Add(p.track)
	speaker.Unlock()
	speaker.Play(p.mixer)

	p.initialized = true
	p.logger.Debug("audio initialized", "rate", int(sampleRate))
	return nil
}

// Sync makes playback follow the game: music runs while a started game is
// not paused, and mute silences it without losing its position.
func (p *Player) Sync(started, paused, muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	p.track.Paused = !started || paused
	p.volume.Silent = muted
}

// Playing reports whether the soundtrack is audible.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !p.track.Paused && !p.volume.Silent
}

// Close stops playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}
