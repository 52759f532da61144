package camera

import (
	"github.com/lixenwraith/vi-stroll/vmath"
)

// Mode selects how the rig follows its target
type Mode uint8

const (
	// ModeStep moves a bounded step per frame toward the follow position
	ModeStep Mode = iota
	// ModeLerp moves a fixed fraction per frame and always looks at the target
	ModeLerp
)

// RigConfig holds follow tuning
type RigConfig struct {
	Mode       Mode
	Offset     vmath.Vec3F // follow position relative to the target
	Speed      float64     // max distance per frame in step mode
	LookAtStep float64     // look direction blend per frame in step mode
	LerpFactor float64     // position fraction per frame in lerp mode
	Arrive     float64     // snap distance
	DragSpeed  float64     // world units per full-screen drag
}

// Rig drives a camera to follow a target unless detached by a drag
type Rig struct {
	cam *Camera
	cfg RigConfig

	attached  bool
	animating bool
	// The first follow step snaps the look direction onto the target once
	firstAim  bool
	lastFrame uint64
	stepped   bool
}

// NewRig creates an attached rig for cam
func NewRig(cam *Camera, cfg RigConfig) *Rig {
	return &Rig{
		cam:      cam,
		cfg:      cfg,
		attached: true,
		firstAim: true,
	}
}

// Camera returns the driven camera
func (r *Rig) Camera() *Camera { return r.cam }

// Attached reports whether the rig follows its target
func (r *Rig) Attached() bool { return r.attached }

// Animating reports whether a follow chain is in progress
func (r *Rig) Animating() bool { return r.animating }

// Mode returns the follow mode
func (r *Rig) Mode() Mode { return r.cfg.Mode }

// Attach resumes following
func (r *Rig) Attach() {
	r.attached = true
}

// Drag detaches the rig and pans the camera by pointer movement given as
// fractions of the screen size
func (r *Rig) Drag(dx, dy float64) {
	r.attached = false
	r.animating = false
	r.cam.Position.X -= dx * r.cfg.DragSpeed
	r.cam.Position.Z -= dy * r.cfg.DragSpeed
}

// Update advances the follow chain toward target for the given frame
// Returns false when detached or when this frame was already advanced
func (r *Rig) Update(target vmath.Vec3F, frame uint64) bool {
	if !r.attached {
		return false
	}
	if r.stepped && frame == r.lastFrame {
		return false
	}
	r.lastFrame = frame
	r.stepped = true

	goal := vmath.V3FAdd(target, r.cfg.Offset)

	if r.cfg.Mode == ModeLerp {
		r.cam.Position = vmath.V3FLerp(r.cam.Position, goal, r.cfg.LerpFactor)
		r.cam.LookAt(target)
		return true
	}

	r.animating = true
	r.step(target, goal)
	return true
}

func (r *Rig) step(target, goal vmath.Vec3F) {
	cam := r.cam

	dist := vmath.V3FDist(cam.Position, goal)
	move := min(r.cfg.Speed, dist)
	dir := vmath.V3FNormalize(vmath.V3FSub(goal, cam.Position))
	cam.Position = vmath.V3FAddScaled(cam.Position, dir, move)

	want := vmath.V3FNormalize(vmath.V3FSub(target, cam.Position))
	cam.LookDir(vmath.V3FLerp(cam.Forward, want, r.cfg.LookAtStep))

	if vmath.V3FDist(cam.Position, goal) > r.cfg.Arrive {
		if r.firstAim {
			r.firstAim = false
			cam.LookAt(target)
		}
		return
	}

	cam.Position = goal
	cam.LookAt(target)
	r.animating = false
}
