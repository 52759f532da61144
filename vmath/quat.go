package vmath

import "math"

// QuatF is a unit quaternion orientation (x, y, z vector part, w scalar)
type QuatF struct {
	X, Y, Z, W float64
}

// QuatIdentity is the no-rotation orientation
var QuatIdentity = QuatF{0, 0, 0, 1}

// QuatFromAxisAngle builds a rotation of angle radians about a unit axis
func QuatFromAxisAngle(axis Vec3F, angle float64) QuatF {
	s, c := math.Sincos(angle / 2)
	return QuatF{axis.X * s, axis.Y * s, axis.Z * s, c}
}

// QuatFromYaw builds a rotation about world Y
func QuatFromYaw(yaw float64) QuatF {
	return QuatFromAxisAngle(AxisY, yaw)
}

// QuatMul returns a*b (apply b, then a)
func QuatMul(a, b QuatF) QuatF {
	return QuatF{
		a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// QuatNormalize rescales q to unit length, degenerate input becomes identity
func QuatNormalize(q QuatF) QuatF {
	m := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if m == 0 {
		return QuatIdentity
	}
	inv := 1 / m
	return QuatF{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// QuatRotate rotates v by q
func QuatRotate(q QuatF, v Vec3F) Vec3F {
	u := Vec3F{q.X, q.Y, q.Z}
	// v' = v + 2w(u x v) + 2(u x (u x v))
	uv := V3FCross(u, v)
	uuv := V3FCross(u, uv)
	return V3FAdd(v, V3FAdd(V3FScale(uv, 2*q.W), V3FScale(uuv, 2)))
}

// QuatIntegrate advances orientation q by angular velocity w over dt seconds
func QuatIntegrate(q QuatF, w Vec3F, dt float64) QuatF {
	half := 0.5 * dt
	spin := QuatMul(QuatF{w.X, w.Y, w.Z, 0}, q)
	return QuatNormalize(QuatF{
		q.X + spin.X*half,
		q.Y + spin.Y*half,
		q.Z + spin.Z*half,
		q.W + spin.W*half,
	})
}

// QuatYaw extracts the rotation about world Y
func QuatYaw(q QuatF) float64 {
	return math.Atan2(2*(q.W*q.Y+q.X*q.Z), 1-2*(q.Y*q.Y+q.X*q.X))
}
