package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vi-stroll/vmath"
)

func TestPushIfNearPlanarImpulse(t *testing.T) {
	char := NewSphere("character", 0.5, 70)
	char.Type = Kinematic
	prop := NewBox("prop", vmath.Vec3F{X: 0.5, Y: 0.5, Z: 0.5}, 1000)
	prop.Position = vmath.Vec3F{X: 0.3, Y: 0.5, Z: -0.2}

	impulse, pushed := PushIfNear(char, prop, 0.7, 400)
	assert.True(t, pushed)
	assert.Equal(t, 0.0, impulse.Y, "push stays horizontal")
	assert.InDelta(t, 0.3*400, impulse.X, 1e-9)
	assert.InDelta(t, -0.2*400, impulse.Z, 1e-9)
	assert.Equal(t, 0.0, prop.Velocity.Y)
	assert.InDelta(t, 0.3*400/1000, prop.Velocity.X, 1e-9)
}

func TestPushIfNearOncePerCall(t *testing.T) {
	char := NewSphere("character", 0.5, 70)
	char.Type = Kinematic
	prop := NewBox("prop", vmath.Vec3F{X: 0.5, Y: 0.5, Z: 0.5}, 1000)
	prop.Position = vmath.Vec3F{X: 0.2, Y: 0.5}

	pushes := 0
	for i := 0; i < 3; i++ {
		if _, ok := PushIfNear(char, prop, 0.7, 400); ok {
			pushes++
		}
	}
	assert.Equal(t, 3, pushes, "one impulse per frame of continued proximity")
	assert.InDelta(t, 3*0.2*400/1000, prop.Velocity.X, 1e-9)
}

func TestPushIfNearOutOfRange(t *testing.T) {
	char := NewSphere("character", 0.5, 70)
	prop := NewBox("prop", vmath.Vec3F{X: 0.5, Y: 0.5, Z: 0.5}, 1000)
	prop.Position = vmath.Vec3F{X: 0.7}

	_, pushed := PushIfNear(char, prop, 0.7, 400)
	assert.False(t, pushed)
	assert.Equal(t, vmath.Vec3F{}, prop.Velocity)

	_, pushed = PushIfNear(nil, prop, 0.7, 400)
	assert.False(t, pushed)
}
