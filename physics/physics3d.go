package physics

import (
	"math"

	"github.com/lixenwraith/vi-stroll/vmath"
)

// ElasticCollision3DF exchanges momentum along normal n (unit, from A to B)
// invA/invB of zero mark immovable bodies; returns false when separating
func ElasticCollision3DF(
	velA, velB *vmath.Vec3F,
	n vmath.Vec3F,
	invA, invB, restitution float64,
) bool {
	invSum := invA + invB
	if invSum == 0 {
		return false
	}

	relVx := velA.X - velB.X
	relVy := velA.Y - velB.Y
	relVz := velA.Z - velB.Z

	vn := relVx*n.X + relVy*n.Y + relVz*n.Z
	if vn <= 0 {
		return false
	}

	j := (1.0 + restitution) * vn / invSum

	jInvA := j * invA
	jInvB := j * invB

	velA.X -= jInvA * n.X
	velA.Y -= jInvA * n.Y
	velA.Z -= jInvA * n.Z
	velB.X += jInvB * n.X
	velB.Y += jInvB * n.Y
	velB.Z += jInvB * n.Z

	return true
}

// SeparateOverlap3DF pushes A and B apart along n by depth, split by inverse mass
func SeparateOverlap3DF(posA, posB *vmath.Vec3F, n vmath.Vec3F, depth, invA, invB float64) bool {
	invSum := invA + invB
	if depth <= 0 || invSum == 0 {
		return false
	}

	ratioA := invA / invSum
	ratioB := invB / invSum

	posA.X -= n.X * depth * ratioA
	posA.Y -= n.Y * depth * ratioA
	posA.Z -= n.Z * depth * ratioA
	posB.X += n.X * depth * ratioB
	posB.Y += n.Y * depth * ratioB
	posB.Z += n.Z * depth * ratioB

	return true
}

// contactNormal returns the unit normal from A to B and penetration depth
// ok is false when the colliders do not overlap or the pair is unsupported
func contactNormal(a, b *Body) (n vmath.Vec3F, depth float64, ok bool) {
	switch {
	case a.Shape.Kind == ShapeSphere && b.Shape.Kind == ShapeSphere:
		return sphereSphere(a.Position, a.Shape.Radius, b.Position, b.Shape.Radius)

	case a.Shape.Kind == ShapeSphere && b.Shape.Kind == ShapeBox:
		return sphereBox(a.Position, a.Shape.Radius, b)

	case a.Shape.Kind == ShapeBox && b.Shape.Kind == ShapeSphere:
		n, depth, ok = sphereBox(b.Position, b.Shape.Radius, a)
		return vmath.V3FScale(n, -1), depth, ok

	case a.Shape.Kind == ShapeBox && b.Shape.Kind == ShapeBox:
		return boxBox(a, b)
	}
	return vmath.Vec3F{}, 0, false
}

func sphereSphere(pa vmath.Vec3F, ra float64, pb vmath.Vec3F, rb float64) (vmath.Vec3F, float64, bool) {
	delta := vmath.V3FSub(pb, pa)
	distSq := vmath.V3FMagSq(delta)
	minDist := ra + rb
	if distSq >= minDist*minDist {
		return vmath.Vec3F{}, 0, false
	}
	dist := math.Sqrt(distSq)
	if dist == 0 {
		return vmath.AxisY, minDist, true
	}
	return vmath.V3FScale(delta, 1/dist), minDist - dist, true
}

// sphereBox tests a sphere against an oriented box; normal points from sphere to box
func sphereBox(center vmath.Vec3F, radius float64, box *Body) (vmath.Vec3F, float64, bool) {
	inv := vmath.QuatF{X: -box.Orientation.X, Y: -box.Orientation.Y, Z: -box.Orientation.Z, W: box.Orientation.W}
	local := vmath.QuatRotate(inv, vmath.V3FSub(center, box.Position))
	h := box.Shape.HalfExtents

	closest := vmath.Vec3F{
		X: vmath.Clamp(local.X, -h.X, h.X),
		Y: vmath.Clamp(local.Y, -h.Y, h.Y),
		Z: vmath.Clamp(local.Z, -h.Z, h.Z),
	}
	diff := vmath.V3FSub(closest, local)
	distSq := vmath.V3FMagSq(diff)
	if distSq >= radius*radius {
		return vmath.Vec3F{}, 0, false
	}

	if distSq == 0 {
		// Center inside the box: push out along the shallowest face
		dx := h.X - math.Abs(local.X)
		dy := h.Y - math.Abs(local.Y)
		dz := h.Z - math.Abs(local.Z)
		var n vmath.Vec3F
		depth := dx
		n.X = -math.Copysign(1, local.X)
		if dy < depth {
			depth, n = dy, vmath.Vec3F{Y: -math.Copysign(1, local.Y)}
		}
		if dz < depth {
			depth, n = dz, vmath.Vec3F{Z: -math.Copysign(1, local.Z)}
		}
		return vmath.QuatRotate(box.Orientation, n), depth + radius, true
	}

	dist := math.Sqrt(distSq)
	n := vmath.V3FScale(diff, 1/dist)
	return vmath.QuatRotate(box.Orientation, n), radius - dist, true
}

// boxBox treats both boxes as axis aligned and separates along the shallowest axis
func boxBox(a, b *Body) (vmath.Vec3F, float64, bool) {
	delta := vmath.V3FSub(b.Position, a.Position)
	ha, hb := a.Shape.HalfExtents, b.Shape.HalfExtents

	ox := ha.X + hb.X - math.Abs(delta.X)
	oy := ha.Y + hb.Y - math.Abs(delta.Y)
	oz := ha.Z + hb.Z - math.Abs(delta.Z)
	if ox <= 0 || oy <= 0 || oz <= 0 {
		return vmath.Vec3F{}, 0, false
	}

	depth := ox
	n := vmath.Vec3F{X: math.Copysign(1, delta.X)}
	if oy < depth {
		depth, n = oy, vmath.Vec3F{Y: math.Copysign(1, delta.Y)}
	}
	if oz < depth {
		depth, n = oz, vmath.Vec3F{Z: math.Copysign(1, delta.Z)}
	}
	return n, depth, true
}
