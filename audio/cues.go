package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue identifies a scene sound
type Cue int

const (
	CueGreeting Cue = iota // character starts waving
	CueStep                // footstep while running
	CueThud                // prop pushed
	CueSelect              // logo picked
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueGreeting:
		return "greeting"
	case CueStep:
		return "step"
	case CueThud:
		return "thud"
	case CueSelect:
		return "select"
	}
	return "unknown"
}

// Build synthesizes a fresh streamer for cue at the given master volume
func Build(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	switch c {
	case CueGreeting:
		// Rising two-note chime (E5, A5)
		n1 := Shape(Tone(659.25, 120*time.Millisecond, WaveSine, rate), 5*time.Millisecond, 12, rate)
		n2 := Shape(Tone(880, 260*time.Millisecond, WaveSine, rate), 5*time.Millisecond, 8, rate)
		return gain(beep.Seq(n1, n2), 0.6*volume)
	case CueStep:
		// Short filtered tick
		tick := Shape(Tone(0, 35*time.Millisecond, WaveNoise, rate), time.Millisecond, 90, rate)
		body := Shape(Tone(140, 35*time.Millisecond, WaveTriangle, rate), time.Millisecond, 60, rate)
		return gain(beep.Mix(gain(tick, 0.3), gain(body, 0.7)), 0.4*volume)
	case CueThud:
		low := Shape(Tone(70, 220*time.Millisecond, WaveSine, rate), 2*time.Millisecond, 14, rate)
		crack := Shape(Tone(0, 60*time.Millisecond, WaveNoise, rate), time.Millisecond, 50, rate)
		return gain(beep.Mix(gain(low, 0.8), gain(crack, 0.2)), volume)
	case CueSelect:
		return gain(Shape(Tone(1318.51, 90*time.Millisecond, WaveSquare, rate), 2*time.Millisecond, 30, rate), 0.25*volume)
	}
	return nil
}
