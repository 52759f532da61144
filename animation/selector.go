package animation

import (
	"time"

	"github.com/lixenwraith/vi-stroll/engine/fsm"
)

// State is the selector's active animation state
type State = fsm.StateID

const (
	StateLoading State = iota + fsm.StateRoot + 1
	StateGreeting
	StateIdle
	StateSlowRun
	StateFastRun
)

var stateClips = map[State]string{
	StateGreeting: ClipGreeting,
	StateIdle:     ClipIdle,
	StateSlowRun:  ClipSlowRun,
	StateFastRun:  ClipFastRun,
}

// Motion is the per-frame movement summary the selector decides on
type Motion struct {
	Moving   bool
	Fast     bool
	HasMoved bool
}

// Selector picks the active clip from movement state and cross-fades on change
type Selector struct {
	machine *fsm.Machine[*Selector]
	mixer   *Mixer
	fade    float64

	clips  map[string]*Clip
	active *Action
	motion Motion

	// OnChange, if set, is called after the active clip changes
	OnChange func(from, to State)
	prev     State
}

// NewSelector builds the state graph over mixer with the given cross-fade window in seconds
func NewSelector(mixer *Mixer, fade float64) *Selector {
	s := &Selector{
		mixer: mixer,
		fade:  fade,
		clips: make(map[string]*Clip),
	}

	m := fsm.NewMachine[*Selector]()
	m.AddState(fsm.StateRoot, "Root", fsm.StateNone)
	m.AddState(StateLoading, "Loading", fsm.StateRoot)
	for _, st := range []State{StateGreeting, StateIdle, StateSlowRun, StateFastRun} {
		target := st
		m.AddState(target, stateClips[target], fsm.StateRoot).
			Enter(func(s *Selector) { s.enter(target) })
		// Root-level tick transitions apply from every leaf
		_ = m.AddTransition(fsm.StateRoot, fsm.Transition[*Selector]{
			TargetID: target,
			Guard:    func(s *Selector) bool { return s.desired() == target },
		})
	}
	_ = m.CompilePaths()
	_ = m.Init(s, StateLoading)

	s.machine = m
	s.prev = StateLoading
	return s
}

// AddClip makes a loaded clip available to the selector
func (s *Selector) AddClip(c *Clip) {
	s.clips[c.Name] = c
}

// HasClip reports whether the named clip is loaded
func (s *Selector) HasClip(name string) bool {
	_, ok := s.clips[name]
	return ok
}

// Update decides the state for this frame and cross-fades on change
// dt only feeds time-in-state bookkeeping; the mixer is advanced separately
func (s *Selector) Update(motion Motion, dt time.Duration) {
	s.motion = motion
	s.machine.Update(s, dt)

	if cur := s.machine.State(); cur != s.prev {
		from := s.prev
		s.prev = cur
		if s.OnChange != nil {
			s.OnChange(from, cur)
		}
	}
}

// State returns the active state
func (s *Selector) State() State {
	return s.machine.State()
}

// StateName returns the active state's clip name or "loading"
func (s *Selector) StateName() string {
	if name, ok := stateClips[s.machine.State()]; ok {
		return name
	}
	return "loading"
}

// Active returns the action of the active clip, nil while loading
func (s *Selector) Active() *Action {
	return s.active
}

// TimeInState returns how long the current state has been active
func (s *Selector) TimeInState() time.Duration {
	return s.machine.TimeInState()
}

// desired maps motion onto a state whose clip is loaded, StateNone keeps the current one
func (s *Selector) desired() State {
	switch {
	case s.motion.Moving && s.motion.Fast:
		return s.ifLoaded(StateFastRun)
	case s.motion.Moving:
		return s.ifLoaded(StateSlowRun)
	case !s.motion.HasMoved && s.HasClip(ClipGreeting):
		return StateGreeting
	default:
		return s.ifLoaded(StateIdle)
	}
}

func (s *Selector) ifLoaded(st State) State {
	if s.HasClip(stateClips[st]) {
		return st
	}
	return fsm.StateNone
}

// enter cross-fades from the active clip into st's clip; the first clip starts without a fade
func (s *Selector) enter(st State) {
	next := s.mixer.ClipAction(s.clips[stateClips[st]])
	if s.active == nil {
		next.Reset().Play()
		s.active = next
		return
	}
	if s.active == next {
		return
	}
	s.active.FadeOut(s.fade)
	next.Reset().FadeIn(s.fade).Play()
	s.active = next
}
