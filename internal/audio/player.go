// Package audio synthesizes and plays the game's named sound cues.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/neurolink/internal/config"
)

const defaultSampleRate = 44100

// Player plays cues through the system speaker. Every method is safe to
// call before Init or after a failed Init; playback is then a no-op.
type Player struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	logger      *log.Logger
	initialized bool
	enabled     bool
}

// NewPlayer creates a player. A nil logger discards messages.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = defaultSampleRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		cfg:     cfg,
		rate:    beep.SampleRate(rate),
		logger:  logger,
		enabled: true,
	}
}

// Init opens the speaker and starts the mixer. Calling it twice is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		p.logger.Warn("audio unavailable, continuing silently", "err", err)
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	p.mixer = &beep.Mixer{}
	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("audio initialized", "sample_rate", int(p.rate))
	return nil
}

// Play starts the named cue. Unknown cues are logged and ignored.
func (p *Player) Play(cue string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.enabled {
		return
	}

	s, ok := p.streamer(cue)
	if !ok {
		p.logger.Debug("unknown audio cue", "cue", cue)
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// streamer builds the volume-scaled streamer for a cue without playing it.
func (p *Player) streamer(cue string) (beep.Streamer, bool) {
	gen, ok := generators[cue]
	if !ok {
		return nil, false
	}
	return newVolume(gen(p.rate), p.volume(cue)), true
}

// volume is the cue volume scaled by the master volume. Cues without an
// explicit volume play at full cue level.
func (p *Player) volume(cue string) float64 {
	v, ok := p.cfg.CueVolumes[cue]
	if !ok {
		v = 1
	}
	return v * p.cfg.MasterVolume
}

// Toggle flips mute and reports whether sound is now enabled.
func (p *Player) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.enabled = !p.enabled
	if !p.enabled && p.initialized {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
	return p.enabled
}

// SetEnabled sets mute state directly.
func (p *Player) SetEnabled(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = on
}

// Enabled reports whether cues are audible.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Available reports whether the speaker was opened.
func (p *Player) Available() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Close stops every playing cue.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
}
