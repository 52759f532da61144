package camera

import (
	"math"

	"github.com/lixenwraith/vi-stroll/vmath"
)

// DefaultForward is the look direction of a camera that has never been aimed
var DefaultForward = vmath.Vec3F{X: 0, Y: 0, Z: -1}

// Camera is a perspective camera with a vertical field of view in degrees
type Camera struct {
	Position vmath.Vec3F
	// Forward is the unit look direction
	Forward vmath.Vec3F
	FOV     float64
	// Aspect is projected width over height, already corrected for cell shape
	Aspect    float64
	Near, Far float64
}

// New creates a camera looking down -Z
func New(pos vmath.Vec3F, fov, aspect, near, far float64) *Camera {
	return &Camera{
		Position: pos,
		Forward:  DefaultForward,
		FOV:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
}

// LookAt aims the camera at target, a target at the camera position is ignored
func (c *Camera) LookAt(target vmath.Vec3F) {
	dir := vmath.V3FSub(target, c.Position)
	if vmath.V3FIsZero(dir, 1e-12) {
		return
	}
	c.Forward = vmath.V3FNormalize(dir)
}

// LookDir sets the look direction, zero is ignored
func (c *Camera) LookDir(dir vmath.Vec3F) {
	if vmath.V3FIsZero(dir, 1e-12) {
		return
	}
	c.Forward = vmath.V3FNormalize(dir)
}

// Basis returns the camera right and up unit vectors
// Looking straight up or down falls back to world X as right
func (c *Camera) Basis() (right, up vmath.Vec3F) {
	right = vmath.V3FCross(c.Forward, vmath.AxisY)
	if vmath.V3FIsZero(right, 1e-9) {
		right = vmath.AxisX
	} else {
		right = vmath.V3FNormalize(right)
	}
	up = vmath.V3FCross(right, c.Forward)
	return right, up
}

// Project maps a world point to normalized device coordinates (x right, y up, [-1,1])
// and view depth. ok is false for points outside the near/far range.
func (c *Camera) Project(p vmath.Vec3F) (x, y, depth float64, ok bool) {
	right, up := c.Basis()
	rel := vmath.V3FSub(p, c.Position)

	depth = vmath.V3FDot(rel, c.Forward)
	if depth < c.Near || depth > c.Far {
		return 0, 0, depth, false
	}

	f := 1 / math.Tan(c.FOV*math.Pi/360)
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	x = vmath.V3FDot(rel, right) * f / (aspect * depth)
	y = vmath.V3FDot(rel, up) * f / depth
	return x, y, depth, true
}
