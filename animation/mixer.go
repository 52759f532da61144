package animation

import "sort"

// Action is the playback state of one clip inside a Mixer
type Action struct {
	clip *Clip

	time    float64
	weight  float64
	playing bool

	// Active fade, weight goes fadeFrom -> fadeTo over fadeDur
	fading      bool
	fadeFrom    float64
	fadeTo      float64
	fadeDur     float64
	fadeElapsed float64

	fades  int
	serial uint64
	mixer  *Mixer
}

// Clip returns the clip this action plays
func (a *Action) Clip() *Clip { return a.clip }

// Time returns the playhead in seconds
func (a *Action) Time() float64 { return a.time }

// Weight returns the current blend influence in [0,1]
func (a *Action) Weight() float64 { return a.weight }

// Playing reports whether the action advances and contributes
func (a *Action) Playing() bool { return a.playing }

// Fading reports whether a weight fade is in progress
func (a *Action) Fading() bool { return a.fading }

// Reset rewinds the playhead, cancels any fade and restores full weight
func (a *Action) Reset() *Action {
	a.time = 0
	a.weight = 1
	a.fading = false
	return a
}

// Play starts the action at its current weight
func (a *Action) Play() *Action {
	if !a.playing {
		a.playing = true
		a.mixer.serial++
		a.serial = a.mixer.serial
	}
	return a
}

// Stop halts playback and zeroes influence
func (a *Action) Stop() *Action {
	a.playing = false
	a.weight = 0
	a.fading = false
	return a
}

// FadeIn ramps weight from 0 to 1 over d seconds
func (a *Action) FadeIn(d float64) *Action {
	a.startFade(0, 1, d)
	return a
}

// FadeOut ramps weight from its current value to 0 over d seconds, then stops
func (a *Action) FadeOut(d float64) *Action {
	a.startFade(a.weight, 0, d)
	return a
}

// Fades returns the number of fade operations issued on this action
func (a *Action) Fades() int { return a.fades }

func (a *Action) startFade(from, to, d float64) {
	a.fades++
	a.mixer.fades++
	if d <= 0 {
		a.weight = to
		a.fading = false
		if to == 0 {
			a.playing = false
		}
		return
	}
	a.weight = from
	a.fadeFrom, a.fadeTo = from, to
	a.fadeDur, a.fadeElapsed = d, 0
	a.fading = true
}

func (a *Action) advance(dt float64) {
	if !a.playing {
		return
	}

	a.time += dt
	if d := a.clip.Duration; a.time >= d {
		if a.clip.Loop {
			for a.time >= d {
				a.time -= d
			}
		} else {
			a.time = d
		}
	}

	if a.fading {
		a.fadeElapsed += dt
		k := a.fadeElapsed / a.fadeDur
		if k >= 1 {
			a.weight = a.fadeTo
			a.fading = false
			if a.fadeTo == 0 {
				a.playing = false
			}
		} else {
			a.weight = a.fadeFrom + (a.fadeTo-a.fadeFrom)*k
		}
	}
}

// Pose is the blended output of a Mixer
type Pose struct {
	// Channels holds weight-normalized channel values
	Channels map[string]float64
	// Frame is the glyph frame of the dominant action
	Frame []string
	// Clip is the dominant clip name, empty when nothing plays
	Clip string
}

// Mixer advances and blends clip actions for a single character
type Mixer struct {
	actions map[string]*Action
	time    float64
	fades   int
	serial  uint64
}

// NewMixer creates an empty mixer
func NewMixer() *Mixer {
	return &Mixer{actions: make(map[string]*Action)}
}

// ClipAction returns the action for clip, creating it stopped on first use
func (m *Mixer) ClipAction(clip *Clip) *Action {
	if a, ok := m.actions[clip.Name]; ok && a.clip == clip {
		return a
	}
	a := &Action{clip: clip, mixer: m, weight: 1}
	m.actions[clip.Name] = a
	return a
}

// Update advances every playing action by dt seconds
func (m *Mixer) Update(dt float64) {
	if dt <= 0 {
		return
	}
	m.time += dt
	for _, a := range m.actions {
		a.advance(dt)
	}
}

// Time returns total mixer time in seconds
func (m *Mixer) Time() float64 { return m.time }

// FadeOps returns the number of fade operations issued across all actions
func (m *Mixer) FadeOps() int { return m.fades }

// Playing returns the playing actions sorted by clip name
func (m *Mixer) Playing() []*Action {
	out := make([]*Action, 0, len(m.actions))
	for _, a := range m.actions {
		if a.playing {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].clip.Name < out[j].clip.Name })
	return out
}

// Sample blends playing actions into a pose
func (m *Mixer) Sample() Pose {
	pose := Pose{Channels: make(map[string]float64)}
	totals := make(map[string]float64)

	var dominant *Action
	for _, a := range m.actions {
		if !a.playing || a.weight <= 0 {
			continue
		}
		for i := range a.clip.Channels {
			ch := &a.clip.Channels[i]
			pose.Channels[ch.Name] += ch.Sample(a.time) * a.weight
			totals[ch.Name] += a.weight
		}
		// Ties go to the most recently started action
		if dominant == nil || a.weight > dominant.weight ||
			(a.weight == dominant.weight && a.serial > dominant.serial) {
			dominant = a
		}
	}

	for name, w := range totals {
		pose.Channels[name] /= w
	}
	if dominant != nil {
		pose.Frame = dominant.clip.FrameAt(dominant.time)
		pose.Clip = dominant.clip.Name
	}
	return pose
}
