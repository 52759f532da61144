package animation

import (
	"fmt"
	"math"
)

// Clip names recognized by the selector
const (
	ClipGreeting = "greeting"
	ClipIdle     = "idle"
	ClipSlowRun  = "slow-run"
	ClipFastRun  = "fast-run"
)

// Channel is a keyframed scalar track sampled with linear interpolation
type Channel struct {
	Name   string    `yaml:"name"`
	Times  []float64 `yaml:"times"`
	Values []float64 `yaml:"values"`
}

// Clip is a named, time-based sequence of scalar channels and glyph frames
type Clip struct {
	Name     string    `yaml:"name"`
	Duration float64   `yaml:"duration"`
	Loop     bool      `yaml:"loop"`
	Channels []Channel `yaml:"channels"`
	// Frames are glyph drawings cycled evenly across the duration
	Frames [][]string `yaml:"frames"`
}

// Validate checks track shapes and duration
func (c *Clip) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("clip has no name")
	}
	if c.Duration <= 0 || math.IsNaN(c.Duration) || math.IsInf(c.Duration, 0) {
		return fmt.Errorf("clip %q: duration %v must be positive", c.Name, c.Duration)
	}
	for _, ch := range c.Channels {
		if len(ch.Times) == 0 || len(ch.Times) != len(ch.Values) {
			return fmt.Errorf("clip %q channel %q: %d times for %d values", c.Name, ch.Name, len(ch.Times), len(ch.Values))
		}
		for i := 1; i < len(ch.Times); i++ {
			if ch.Times[i] < ch.Times[i-1] {
				return fmt.Errorf("clip %q channel %q: keyframe times not ascending", c.Name, ch.Name)
			}
		}
	}
	return nil
}

// Sample returns the channel value at t, holding the end values outside the key range
func (ch *Channel) Sample(t float64) float64 {
	n := len(ch.Times)
	if n == 0 {
		return 0
	}
	if t <= ch.Times[0] {
		return ch.Values[0]
	}
	if t >= ch.Times[n-1] {
		return ch.Values[n-1]
	}
	for i := 1; i < n; i++ {
		if t < ch.Times[i] {
			t0, t1 := ch.Times[i-1], ch.Times[i]
			if t1 == t0 {
				return ch.Values[i]
			}
			k := (t - t0) / (t1 - t0)
			return ch.Values[i-1] + (ch.Values[i]-ch.Values[i-1])*k
		}
	}
	return ch.Values[n-1]
}

// FrameAt returns the glyph frame shown at clip time t
func (c *Clip) FrameAt(t float64) []string {
	n := len(c.Frames)
	if n == 0 {
		return nil
	}
	idx := int(t / c.Duration * float64(n))
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return c.Frames[idx]
}
