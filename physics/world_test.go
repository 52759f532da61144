package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-stroll/parameter"
	"github.com/lixenwraith/vi-stroll/vmath"
)

const frame = 1.0 / 60

func newSceneWorld() (*World, *Body, *Body) {
	w := NewWorld(DefaultWorldConfig())

	ground := NewPlane("ground", 0)
	ground.Group = parameter.GroupGround
	w.AddBody(ground)

	prop := NewBox("prop", vmath.Vec3F{X: 0.5, Y: 0.5, Z: 0.5}, parameter.PropMass)
	prop.Position = vmath.Vec3F{X: -7, Y: 5}
	prop.Group = parameter.GroupProp
	prop.Mask = parameter.GroupGround | parameter.GroupProp
	w.AddBody(prop)

	char := NewSphere("character", 0.5, parameter.CharacterMass)
	char.Type = Kinematic
	char.Group = parameter.GroupCharacter
	char.Mask = parameter.GroupGround
	w.AddBody(char)

	return w, prop, char
}

func TestBoxFallsRestsAndSleeps(t *testing.T) {
	w, prop, _ := newSceneWorld()

	for i := 0; i < 600; i++ {
		w.Step(frame)
	}

	assert.InDelta(t, 0.5, prop.Position.Y, 0.05)
	assert.InDelta(t, -7.0, prop.Position.X, 1e-9)
	assert.True(t, prop.Sleeping(), "resting body should fall asleep")
	assert.Equal(t, vmath.Vec3F{}, prop.Velocity)
}

func TestStepIgnoresNonPositiveDelta(t *testing.T) {
	w, prop, _ := newSceneWorld()
	w.Step(0)
	w.Step(-1)
	assert.Equal(t, 5.0, prop.Position.Y)
}

func TestStepCapsDelta(t *testing.T) {
	w, prop, _ := newSceneWorld()
	w.Step(10)
	// One capped step of 0.1s from rest: v = g*0.1, y = 5 + v*0.1
	assert.InDelta(t, 5+parameter.Gravity*0.01, prop.Position.Y, 1e-3)
}

func TestKinematicBodyIsNotIntegrated(t *testing.T) {
	w, _, char := newSceneWorld()
	char.SetPose(vmath.Vec3F{X: 2, Y: 0, Z: 3}, vmath.QuatFromYaw(1))
	for i := 0; i < 60; i++ {
		w.Step(frame)
	}
	assert.Equal(t, vmath.Vec3F{X: 2, Y: 0, Z: 3}, char.Position)
}

func TestFilteredPairDoesNotCollide(t *testing.T) {
	w, prop, char := newSceneWorld()
	for i := 0; i < 600; i++ {
		w.Step(frame)
	}
	// Put the character sphere inside the prop: filters keep the solver out of it
	char.SetPose(prop.Position, vmath.QuatIdentity)
	before := prop.Position
	w.Step(frame)
	assert.InDelta(t, before.X, prop.Position.X, 1e-9)
	assert.InDelta(t, before.Z, prop.Position.Z, 1e-9)
}

func TestApplyImpulseWakesAndMoves(t *testing.T) {
	w, prop, _ := newSceneWorld()
	for i := 0; i < 600; i++ {
		w.Step(frame)
	}
	require.True(t, prop.Sleeping())

	prop.ApplyImpulse(vmath.Vec3F{X: 500}, prop.Position)
	assert.False(t, prop.Sleeping())
	assert.InDelta(t, 0.5, prop.Velocity.X, 1e-12)
	assert.Equal(t, vmath.Vec3F{}, prop.AngularVelocity, "impulse at center adds no spin")

	x0 := prop.Position.X
	w.Step(frame)
	assert.Greater(t, prop.Position.X, x0)
}

func TestApplyImpulseOffCenterSpins(t *testing.T) {
	b := NewBox("b", vmath.Vec3F{X: 0.5, Y: 0.5, Z: 0.5}, 1)
	b.ApplyImpulse(vmath.Vec3F{Z: 1}, vmath.Vec3F{X: 0.5})
	assert.NotZero(t, b.AngularVelocity.Y)
}

func TestApplyImpulseIgnoresStatic(t *testing.T) {
	p := NewPlane("ground", 0)
	p.ApplyImpulse(vmath.Vec3F{Y: 100}, vmath.Vec3F{})
	assert.Equal(t, vmath.Vec3F{}, p.Velocity)
}

func TestDynamicSpheresSeparate(t *testing.T) {
	cfg := DefaultWorldConfig()
	cfg.Gravity = vmath.Vec3F{}
	w := NewWorld(cfg)

	a := NewSphere("a", 0.5, 1)
	b := NewSphere("b", 0.5, 1)
	b.Position = vmath.Vec3F{X: 0.6}
	w.AddBody(a)
	w.AddBody(b)

	w.Step(frame)
	assert.GreaterOrEqual(t, vmath.V3FDist(a.Position, b.Position), 1.0-1e-9)
	assert.InDelta(t, 0.3, (a.Position.X+b.Position.X)/2, 1e-9, "equal masses split the correction")
}

func TestRemoveBody(t *testing.T) {
	w, prop, _ := newSceneWorld()
	assert.True(t, w.RemoveBody(prop))
	assert.False(t, w.RemoveBody(prop))
	assert.Len(t, w.Bodies(), 2)
}
