package scene

import (
	"time"

	"github.com/lixenwraith/vi-stroll/animation"
	"github.com/lixenwraith/vi-stroll/audio"
	"github.com/lixenwraith/vi-stroll/parameter"
	"github.com/lixenwraith/vi-stroll/physics"
)

// Tick advances the scene by dt and draws the frame into the buffer
func (s *Scene) Tick(dt time.Duration, now time.Time) {
	s.pollAssets()
	s.Input.Expire(now)

	if s.paused {
		s.draw()
		return
	}

	s.frame++
	s.elapsed += dt

	// Direction is rebuilt from held keys every frame
	forward, right := s.ctrl.Basis(s.cam.Forward)
	if s.ctrl.Steer(s.Input, forward, right) {
		s.rig.Attach()
	}

	if s.character != nil {
		s.ctrl.Advance()
		s.rig.Update(s.ctrl.Position, s.frame)
	}
	s.zoom.Tick()

	s.world.Step(dt.Seconds())
	s.syncBodies()
	s.push()

	s.selector.Update(animation.Motion{
		Moving:   s.ctrl.Moving(),
		Fast:     s.ctrl.Fast,
		HasMoved: s.ctrl.HasMoved,
	}, dt)
	mixerDelta := parameter.MixerNominalDelta
	if s.cfg.Animation.MeasuredDelta {
		mixerDelta = dt.Seconds()
	}
	s.mixer.Update(mixerDelta)

	s.decor.float(s.elapsed.Seconds())
	s.footsteps(dt)

	s.updateMetrics(dt)
	s.draw()
}

// syncBodies poses the kinematic character collider from the controller
func (s *Scene) syncBodies() {
	if s.charBody == nil {
		return
	}
	s.charBody.SetPose(s.ctrl.Position, s.ctrl.Orientation())
}

// push shoves the prop when the character is within reach
func (s *Scene) push() {
	if s.charBody == nil {
		return
	}
	_, pushed := physics.PushIfNear(s.charBody, s.prop, s.cfg.Physics.PushThreshold, s.cfg.Physics.PushForce)
	if pushed {
		s.m.impulses.Add(1)
		if !s.touching {
			s.play(audio.CueThud)
		}
	}
	s.touching = pushed
}

func (s *Scene) footsteps(dt time.Duration) {
	if !s.ctrl.Moving() || s.character == nil {
		s.stepWait = 0
		return
	}
	s.stepWait -= dt
	if s.stepWait > 0 {
		return
	}
	s.play(audio.CueStep)
	if s.ctrl.Fast {
		s.stepWait = parameter.FootstepIntervalFast
	} else {
		s.stepWait = parameter.FootstepIntervalSlow
	}
}

func (s *Scene) onAnimationChange(_, to animation.State) {
	s.m.anim.Store(s.selector.StateName())
	if to == animation.StateGreeting {
		s.play(audio.CueGreeting)
	}
}

func (s *Scene) play(c audio.Cue) {
	if s.sounds != nil {
		s.sounds.Play(c)
	}
}

func (s *Scene) updateMetrics(dt time.Duration) {
	s.m.frames.Store(int64(s.frame))
	s.m.fadeOps.Store(int64(s.mixer.FadeOps()))
	s.m.attached.Store(s.rig.Attached())
	s.m.animating.Store(s.rig.Animating())
	s.m.fov.Store(s.cam.FOV)
	s.m.propSleeping.Store(s.prop.Sleeping())

	s.fpsCount++
	s.fpsSince += dt
	if s.fpsSince >= parameter.FPSWindow {
		s.m.fps.Store(float64(s.fpsCount) / s.fpsSince.Seconds())
		s.fpsCount = 0
		s.fpsSince = 0
	}
}
