package camera

import (
	"math"

	"github.com/lixenwraith/vi-stroll/vmath"
)

// ZoomConfig bounds and paces field-of-view changes
type ZoomConfig struct {
	MinFOV, MaxFOV float64
	Step           float64 // degrees per scroll notch
	Lerp           float64 // fraction of the remaining distance per frame
	Epsilon        float64 // snap distance
}

// Zoom animates the camera field of view toward a clamped target
type Zoom struct {
	cam *Camera
	cfg ZoomConfig

	target float64
	active bool
	// generation increments on each scroll; an in-flight zoom is superseded
	generation uint64
}

// NewZoom creates a zoom controller starting at the camera's FOV
func NewZoom(cam *Camera, cfg ZoomConfig) *Zoom {
	return &Zoom{
		cam:    cam,
		cfg:    cfg,
		target: vmath.Clamp(cam.FOV, cfg.MinFOV, cfg.MaxFOV),
	}
}

// Scroll adjusts the target FOV by notches, positive zooms out
// Any zoom in progress is cancelled and restarted toward the new target
func (z *Zoom) Scroll(notches float64) {
	if notches == 0 || math.IsNaN(notches) {
		return
	}
	z.target = vmath.Clamp(z.target+notches*z.cfg.Step, z.cfg.MinFOV, z.cfg.MaxFOV)
	z.generation++
	z.active = true
}

// Tick moves the camera FOV one frame toward the target
func (z *Zoom) Tick() {
	if !z.active {
		return
	}
	cur := z.cam.FOV
	if math.Abs(z.target-cur) <= z.cfg.Epsilon {
		z.cam.FOV = z.target
		z.active = false
		return
	}
	z.cam.FOV = cur + (z.target-cur)*z.cfg.Lerp
}

// Target returns the clamped target FOV
func (z *Zoom) Target() float64 { return z.target }

// Active reports whether a zoom is in progress
func (z *Zoom) Active() bool { return z.active }

// Generation returns the number of scroll requests seen
func (z *Zoom) Generation() uint64 { return z.generation }
