package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// tone is a fixed-length oscillator
type tone struct {
	freq   float64
	phase  float64
	length int
	pos    int
	wave   Wave
	rate   beep.SampleRate
	rng    *rand.Rand
}

// Tone creates an oscillator streaming for d
func Tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:   freq,
		length: rate.N(d),
		wave:   wave,
		rate:   rate,
		rng:    rand.New(rand.NewPCG(uint64(freq*1000), uint64(d))),
	}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.length {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveTriangle:
			v = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			v = o.rng.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// shaper applies a linear attack and an exponential release to a stream
type shaper struct {
	s       beep.Streamer
	pos     int
	attack  int
	decayK  float64
	sampleT float64
}

// Shape wraps s with attack ramp and exponential decay at rate k per second
func Shape(s beep.Streamer, attack time.Duration, k float64, rate beep.SampleRate) beep.Streamer {
	return &shaper{
		s:       s,
		attack:  rate.N(attack),
		decayK:  k,
		sampleT: 1 / float64(rate),
	}
}

func (e *shaper) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := math.Exp(-e.decayK * float64(e.pos) * e.sampleT)
		if e.pos < e.attack {
			vol *= float64(e.pos) / float64(e.attack)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *shaper) Err() error { return e.s.Err() }

// gain scales a stream linearly, zero or less is silent
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
