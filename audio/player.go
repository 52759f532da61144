package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

// Config holds output settings
type Config struct {
	SampleRate int
	Buffer     time.Duration
	Volume     float64
}

// Player mixes scene cues onto the default audio device
// Without a successful Start every call is a no-op
type Player struct {
	mu      sync.Mutex
	cfg     Config
	rate    beep.SampleRate
	mixer   *beep.Mixer
	ctrl    *beep.Ctrl
	started bool
	log     *zap.Logger

	played  uint64
	dropped uint64
}

// maxVoices bounds simultaneous cues
const maxVoices = 16

// NewPlayer creates an idle player
func NewPlayer(cfg Config, logger *zap.Logger) *Player {
	if logger == nil {
		logger = zap.NewNop()
	}
	mixer := &beep.Mixer{}
	return &Player{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: mixer,
		ctrl:  &beep.Ctrl{Streamer: mixer},
		log:   logger,
	}
}

// Start opens the audio device and begins streaming the mixer
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(p.cfg.Buffer)); err != nil {
		return fmt.Errorf("audio device: %w", err)
	}
	speaker.Play(p.ctrl)
	p.started = true
	p.log.Info("audio started", zap.Int("sample_rate", p.cfg.SampleRate))
	return nil
}

// Play queues a cue, dropping it when too many voices are active
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	s := Build(c, p.rate, p.cfg.Volume)
	if s == nil {
		return
	}

	speaker.Lock()
	full := p.mixer.Len() >= maxVoices
	if !full {
		p.mixer.Add(s)
	}
	speaker.Unlock()

	if full {
		p.dropped++
		return
	}
	p.played++
}

// ErrUnavailable is returned by controls that need a started device
var ErrUnavailable = errors.New("audio unavailable")

// ToggleMute pauses or resumes output, returns the new muted state
func (p *Player) ToggleMute() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return false, ErrUnavailable
	}
	speaker.Lock()
	p.ctrl.Paused = !p.ctrl.Paused
	muted := p.ctrl.Paused
	speaker.Unlock()
	return muted, nil
}

// Muted reports whether output is paused
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.ctrl.Paused
}

// Stats returns played and dropped cue counts
func (p *Player) Stats() (played, dropped uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played, p.dropped
}

// Close silences output and releases the device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.started = false
}
