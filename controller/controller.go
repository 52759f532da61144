package controller

import (
	"math"

	"github.com/lixenwraith/vi-stroll/input"
	"github.com/lixenwraith/vi-stroll/vmath"
)

// KeyState answers whether a key is held this frame
type KeyState interface {
	Held(k input.Key) bool
}

// Config holds movement tuning
type Config struct {
	SlowSpeed float64
	FastSpeed float64
	Decay     float64 // per-frame speed multiplier without input
	StepScale float64 // world units per speed unit per frame
	TurnRate  float64 // per-frame yaw interpolation
}

// Controller turns held keys into character movement relative to the camera
type Controller struct {
	cfg Config

	// Direction is re-derived every frame, unit length or zero
	Direction vmath.Vec3F
	Speed     float64
	// Fast is set while moving with the run modifier
	Fast bool
	// HasMoved latches on the first movement and never resets
	HasMoved bool

	Position vmath.Vec3F
	Yaw      float64

	lastForward vmath.Vec3F
}

// New creates a controller at the origin facing +Z
func New(cfg Config) *Controller {
	return &Controller{
		cfg:         cfg,
		lastForward: vmath.V3F(0, 0, -1),
	}
}

// Basis derives the horizontal forward and right unit vectors from a camera look direction
// A vertical look direction reuses the last valid forward
func (c *Controller) Basis(look vmath.Vec3F) (forward, right vmath.Vec3F) {
	flat := vmath.V3FFlatten(look)
	if vmath.V3FIsZero(flat, 1e-9) {
		forward = c.lastForward
	} else {
		forward = vmath.V3FNormalize(flat)
		c.lastForward = forward
	}
	right = vmath.V3FNormalize(vmath.V3FCross(forward, vmath.AxisY))
	return forward, right
}

// Steer rebuilds the movement direction from held keys
// Returns true when any directional key is held, which re-attaches the camera
func (c *Controller) Steer(keys KeyState, forward, right vmath.Vec3F) (directional bool) {
	c.Direction = vmath.Vec3F{}

	if keys.Held(input.KeyArrowUp) {
		directional = true
		c.Direction = vmath.V3FAdd(c.Direction, forward)
	}
	if keys.Held(input.KeyArrowDown) {
		directional = true
		c.Direction = vmath.V3FSub(c.Direction, forward)
	}
	if keys.Held(input.KeyArrowRight) {
		directional = true
		c.Direction = vmath.V3FAdd(c.Direction, right)
	}
	if keys.Held(input.KeyArrowLeft) {
		directional = true
		c.Direction = vmath.V3FSub(c.Direction, right)
	}

	if vmath.V3FIsZero(c.Direction, 1e-9) {
		c.Direction = vmath.Vec3F{}
		c.Fast = false
		c.Speed *= c.cfg.Decay
		if c.Speed < 0 {
			c.Speed = 0
		}
		return directional
	}

	c.HasMoved = true
	c.Direction = vmath.V3FNormalize(c.Direction)
	c.Fast = keys.Held(input.KeyShift)
	if c.Fast {
		c.Speed = c.cfg.FastSpeed
	} else {
		c.Speed = c.cfg.SlowSpeed
	}
	return directional
}

// Moving reports whether this frame has a non-zero direction
func (c *Controller) Moving() bool {
	return c.Direction != vmath.Vec3F{}
}

// Advance applies the frame's direction to position and turns toward it
func (c *Controller) Advance() {
	c.Position = vmath.V3FAddScaled(c.Position, c.Direction, c.Speed*c.cfg.StepScale)
	if c.Moving() {
		target := math.Atan2(c.Direction.X, c.Direction.Z)
		c.Yaw = vmath.LerpAngle(c.Yaw, target, c.cfg.TurnRate)
	}
}

// Orientation returns the facing as a quaternion about world Y
func (c *Controller) Orientation() vmath.QuatF {
	return vmath.QuatFromYaw(c.Yaw)
}
