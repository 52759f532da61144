package physics

import (
	"github.com/lixenwraith/vi-stroll/vmath"
)

// PushIfNear shoves target away from pusher when their centers are closer than threshold.
// The impulse is the planar pusher-to-target vector scaled by force, applied at the
// target center. Returns the applied impulse and whether the push happened.
func PushIfNear(pusher, target *Body, threshold, force float64) (vmath.Vec3F, bool) {
	if pusher == nil || target == nil {
		return vmath.Vec3F{}, false
	}
	if vmath.V3FDist(pusher.Position, target.Position) >= threshold {
		return vmath.Vec3F{}, false
	}

	dir := vmath.V3FFlatten(vmath.V3FSub(target.Position, pusher.Position))
	impulse := vmath.V3FScale(dir, force)
	target.ApplyImpulse(impulse, target.Position)
	return impulse, true
}
