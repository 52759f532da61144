package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-stroll/vmath"
)

func TestProjectCenterAndSides(t *testing.T) {
	cam := New(vmath.V3F(0, 0, 10), 90, 1, 0.1, 100)

	x, y, depth, ok := cam.Project(vmath.V3F(0, 0, 0))
	require.True(t, ok)
	assert.InDelta(t, 0, x, 1e-12)
	assert.InDelta(t, 0, y, 1e-12)
	assert.InDelta(t, 10, depth, 1e-12)

	// 90 degree FOV: a point at 45 degrees up lands on the top edge
	_, y, _, ok = cam.Project(vmath.V3F(0, 10, 0))
	require.True(t, ok)
	assert.InDelta(t, 1, y, 1e-9)

	x, _, _, ok = cam.Project(vmath.V3F(5, 0, 0))
	require.True(t, ok)
	assert.InDelta(t, 0.5, x, 1e-9, "right of the camera projects to +x")
}

func TestProjectBehindCamera(t *testing.T) {
	cam := New(vmath.V3F(0, 0, 10), 60, 1, 0.1, 100)
	_, _, _, ok := cam.Project(vmath.V3F(0, 0, 20))
	assert.False(t, ok)
}

func TestLookAtIgnoresOwnPosition(t *testing.T) {
	cam := New(vmath.V3F(1, 2, 3), 60, 1, 0.1, 100)
	cam.LookAt(vmath.V3F(1, 2, 3))
	assert.Equal(t, DefaultForward, cam.Forward)
}

func TestBasisLookingStraightDown(t *testing.T) {
	cam := New(vmath.V3F(0, 10, 0), 60, 1, 0.1, 100)
	cam.LookAt(vmath.V3F(0, 0, 0))
	right, up := cam.Basis()
	assert.Equal(t, vmath.AxisX, right)
	assert.InDelta(t, 1, vmath.V3FMag(up), 1e-12)
}

func stepRig(cam *Camera) *Rig {
	return NewRig(cam, RigConfig{
		Mode:       ModeStep,
		Offset:     vmath.V3F(0, 20, 20),
		Speed:      0.36,
		LookAtStep: 0.001,
		LerpFactor: 0.01,
		Arrive:     0.01,
		DragSpeed:  10,
	})
}

func TestRigStepBoundedAndArrives(t *testing.T) {
	cam := New(vmath.V3F(0, 100, 100), 30, 1, 0.1, 500)
	rig := stepRig(cam)
	target := vmath.V3F(0, 0, 0)
	goal := vmath.V3F(0, 20, 20)

	before := vmath.V3FDist(cam.Position, goal)
	require.True(t, rig.Update(target, 1))
	assert.InDelta(t, 0.36, before-vmath.V3FDist(cam.Position, goal), 1e-9)
	assert.True(t, rig.Animating())

	// First step aims straight at the target
	want := vmath.V3FNormalize(vmath.V3FSub(target, cam.Position))
	assert.InDelta(t, 1, vmath.V3FDot(cam.Forward, want), 1e-9)

	frames := uint64(1)
	for rig.Animating() && frames < 1000 {
		frames++
		rig.Update(target, frames)
	}
	assert.False(t, rig.Animating())
	assert.Equal(t, goal, cam.Position)
	assert.InDelta(t, 1, vmath.V3FDot(cam.Forward, vmath.V3FNormalize(vmath.V3FSub(target, goal))), 1e-12)
}

func TestRigAdvancesOncePerFrame(t *testing.T) {
	cam := New(vmath.V3F(0, 100, 100), 30, 1, 0.1, 500)
	rig := stepRig(cam)
	require.True(t, rig.Update(vmath.Vec3F{}, 7))
	pos := cam.Position
	assert.False(t, rig.Update(vmath.Vec3F{}, 7))
	assert.Equal(t, pos, cam.Position)
	assert.True(t, rig.Update(vmath.Vec3F{}, 8))
}

func TestRigDragDetachesAndPans(t *testing.T) {
	cam := New(vmath.V3F(0, 20, 20), 30, 1, 0.1, 500)
	rig := stepRig(cam)
	assert.True(t, rig.Attached())

	rig.Drag(0.1, -0.2)
	assert.False(t, rig.Attached())
	assert.InDelta(t, -1, cam.Position.X, 1e-12)
	assert.InDelta(t, 22, cam.Position.Z, 1e-12)

	assert.False(t, rig.Update(vmath.Vec3F{}, 1), "detached rig does not follow")
	rig.Attach()
	assert.True(t, rig.Attached())
	assert.True(t, rig.Update(vmath.Vec3F{}, 1))
}

func TestRigLerpMode(t *testing.T) {
	cam := New(vmath.V3F(0, 100, 100), 30, 1, 0.1, 500)
	rig := NewRig(cam, RigConfig{Mode: ModeLerp, Offset: vmath.V3F(0, 20, 20), LerpFactor: 0.01})
	rig.Update(vmath.Vec3F{}, 1)
	assert.InDelta(t, 99.2, cam.Position.Y, 1e-9)
	assert.InDelta(t, 99.2, cam.Position.Z, 1e-9)
	want := vmath.V3FNormalize(vmath.V3FScale(cam.Position, -1))
	assert.InDelta(t, 1, vmath.V3FDot(cam.Forward, want), 1e-12)
	assert.False(t, rig.Animating())
}

func TestZoomTargetAlwaysClamped(t *testing.T) {
	cam := New(vmath.Vec3F{}, 30, 1, 0.1, 500)
	z := NewZoom(cam, ZoomConfig{MinFOV: 10, MaxFOV: 50, Step: 2, Lerp: 0.15, Epsilon: 0.01})

	for i := 0; i < 100; i++ {
		z.Scroll(1)
		assert.LessOrEqual(t, z.Target(), 50.0)
	}
	assert.Equal(t, 50.0, z.Target())

	z.Scroll(-1e6)
	assert.Equal(t, 10.0, z.Target())
	z.Scroll(math.Inf(1))
	assert.Equal(t, 50.0, z.Target())
}

func TestZoomConvergesAndSupersedes(t *testing.T) {
	cam := New(vmath.Vec3F{}, 30, 1, 0.1, 500)
	z := NewZoom(cam, ZoomConfig{MinFOV: 10, MaxFOV: 50, Step: 2, Lerp: 0.15, Epsilon: 0.01})

	z.Scroll(5)
	z.Tick()
	assert.InDelta(t, 31.5, cam.FOV, 1e-9)

	// A new scroll retargets from the current FOV without snapping
	z.Scroll(-10)
	assert.Equal(t, 20.0, z.Target())
	assert.Equal(t, uint64(2), z.Generation())
	assert.InDelta(t, 31.5, cam.FOV, 1e-9)

	for i := 0; i < 200 && z.Active(); i++ {
		z.Tick()
	}
	assert.False(t, z.Active())
	assert.Equal(t, 20.0, cam.FOV)
}
