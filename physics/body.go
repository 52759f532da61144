package physics

import (
	"github.com/lixenwraith/vi-stroll/vmath"
)

// ShapeKind selects the collider geometry
type ShapeKind uint8

const (
	ShapeSphere ShapeKind = iota
	ShapeBox
	// ShapePlane is an infinite +Y facing plane through the body position
	ShapePlane
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeSphere:
		return "sphere"
	case ShapeBox:
		return "box"
	case ShapePlane:
		return "plane"
	}
	return "unknown"
}

// Shape is a simplified collider
type Shape struct {
	Kind        ShapeKind
	Radius      float64     // ShapeSphere
	HalfExtents vmath.Vec3F // ShapeBox
}

// BodyType selects how the world moves a body
type BodyType uint8

const (
	// Dynamic bodies are integrated and resolved by the world
	Dynamic BodyType = iota
	// Kinematic bodies are posed from outside and push dynamic bodies
	Kinematic
	// Static bodies never move
	Static
)

// Body is a rigid body in the world
type Body struct {
	Name  string
	Type  BodyType
	Shape Shape

	Position        vmath.Vec3F
	Orientation     vmath.QuatF
	Velocity        vmath.Vec3F
	AngularVelocity vmath.Vec3F

	// Group is this body's collision bit, Mask the groups it collides with
	Group, Mask uint32

	mass       float64
	invMass    float64
	invInertia vmath.Vec3F

	sleeping   bool
	sleepTimer float64
}

// NewSphere creates a dynamic sphere body
func NewSphere(name string, radius, mass float64) *Body {
	b := newBody(name, Shape{Kind: ShapeSphere, Radius: radius}, mass)
	if mass > 0 {
		i := 0.4 * mass * radius * radius
		b.invInertia = vmath.Vec3F{X: 1 / i, Y: 1 / i, Z: 1 / i}
	}
	return b
}

// NewBox creates a dynamic box body from half extents
func NewBox(name string, half vmath.Vec3F, mass float64) *Body {
	b := newBody(name, Shape{Kind: ShapeBox, HalfExtents: half}, mass)
	if mass > 0 {
		ix := mass / 3 * (half.Y*half.Y + half.Z*half.Z)
		iy := mass / 3 * (half.X*half.X + half.Z*half.Z)
		iz := mass / 3 * (half.X*half.X + half.Y*half.Y)
		b.invInertia = vmath.Vec3F{X: 1 / ix, Y: 1 / iy, Z: 1 / iz}
	}
	return b
}

// NewPlane creates a static ground plane at height y
func NewPlane(name string, y float64) *Body {
	b := newBody(name, Shape{Kind: ShapePlane}, 0)
	b.Type = Static
	b.Position = vmath.Vec3F{Y: y}
	return b
}

func newBody(name string, shape Shape, mass float64) *Body {
	b := &Body{
		Name:        name,
		Type:        Dynamic,
		Shape:       shape,
		Orientation: vmath.QuatIdentity,
		Group:       1,
		Mask:        ^uint32(0),
		mass:        mass,
	}
	if mass > 0 {
		b.invMass = 1 / mass
	} else {
		b.Type = Static
	}
	return b
}

// Mass returns the configured mass
func (b *Body) Mass() float64 {
	return b.mass
}

// InvMass returns the inverse mass used by the solver, zero for non-dynamic bodies
func (b *Body) InvMass() float64 {
	if b.Type != Dynamic {
		return 0
	}
	return b.invMass
}

// SetPose places a body directly, used to puppet kinematic bodies from visuals
func (b *Body) SetPose(pos vmath.Vec3F, q vmath.QuatF) {
	b.Position = pos
	b.Orientation = q
}

// ApplyImpulse applies impulse j at worldPoint, changing linear and angular velocity
func (b *Body) ApplyImpulse(j, worldPoint vmath.Vec3F) {
	if b.Type != Dynamic {
		return
	}
	b.Wake()
	b.Velocity = vmath.V3FAddScaled(b.Velocity, j, b.invMass)

	r := vmath.V3FSub(worldPoint, b.Position)
	torque := vmath.V3FCross(r, j)
	b.AngularVelocity = vmath.V3FAdd(b.AngularVelocity, vmath.V3FMul(torque, b.invInertia))
}

// Sleeping reports whether the world skips integrating this body
func (b *Body) Sleeping() bool {
	return b.sleeping
}

// Wake resumes integration of a sleeping body
func (b *Body) Wake() {
	b.sleeping = false
	b.sleepTimer = 0
}

func (b *Body) sleep() {
	b.sleeping = true
	b.Velocity = vmath.Vec3F{}
	b.AngularVelocity = vmath.Vec3F{}
}

// collides reports whether the filters of a and b allow contact
func collides(a, b *Body) bool {
	return a.Mask&b.Group != 0 && b.Mask&a.Group != 0
}

// lowestPoint returns the minimum world Y over the collider
func (b *Body) lowestPoint() float64 {
	switch b.Shape.Kind {
	case ShapeSphere:
		return b.Position.Y - b.Shape.Radius
	case ShapeBox:
		h := b.Shape.HalfExtents
		minY := b.Position.Y
		for _, sx := range [2]float64{-1, 1} {
			for _, sy := range [2]float64{-1, 1} {
				for _, sz := range [2]float64{-1, 1} {
					corner := vmath.QuatRotate(b.Orientation, vmath.Vec3F{X: sx * h.X, Y: sy * h.Y, Z: sz * h.Z})
					if y := b.Position.Y + corner.Y; y < minY {
						minY = y
					}
				}
			}
		}
		return minY
	}
	return b.Position.Y
}
