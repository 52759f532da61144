package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-stroll/camera"
	"github.com/lixenwraith/vi-stroll/vmath"
)

// Projector maps world points onto the scene viewport of a terminal
type Projector struct {
	cam *camera.Camera
	// CellAspect is cell width over cell height
	cellAspect float64
	width      int
	height     int
}

// NewProjector creates a projector for cam
func NewProjector(cam *camera.Camera, cellAspect float64) *Projector {
	return &Projector{cam: cam, cellAspect: cellAspect}
}

// SetViewport sets the scene area in cells and updates the camera aspect
func (p *Projector) SetViewport(width, height int) {
	p.width, p.height = width, height
	if width > 0 && height > 0 {
		p.cam.Aspect = float64(width) * p.cellAspect / float64(height)
	}
}

// Viewport returns the scene area in cells
func (p *Projector) Viewport() (width, height int) {
	return p.width, p.height
}

// Project returns the cell under world point w and its view depth
func (p *Projector) Project(w vmath.Vec3F) (x, y int, depth float64, ok bool) {
	fx, fy, depth, ok := p.ProjectF(w)
	if !ok {
		return 0, 0, depth, false
	}
	return int(math.Floor(fx)), int(math.Floor(fy)), depth, true
}

// ProjectF returns fractional cell coordinates of w
func (p *Projector) ProjectF(w vmath.Vec3F) (x, y, depth float64, ok bool) {
	nx, ny, depth, ok := p.cam.Project(w)
	if !ok {
		return 0, 0, depth, false
	}
	x = (nx + 1) / 2 * float64(p.width)
	y = (1 - ny) / 2 * float64(p.height)
	// Keep far off-screen points from overflowing int conversion
	const limit = 1 << 20
	if math.Abs(x) > limit || math.Abs(y) > limit {
		return 0, 0, depth, false
	}
	return x, y, depth, true
}

// Line draws a depth-tested segment between two world points
func (p *Projector) Line(buf *Buffer, a, b vmath.Vec3F, r rune, style tcell.Style) {
	ax, ay, ad, okA := p.ProjectF(a)
	bx, by, bd, okB := p.ProjectF(b)
	if !okA || !okB {
		return
	}

	steps := int(math.Ceil(math.Max(math.Abs(bx-ax), math.Abs(by-ay))))
	if steps > 4*(p.width+p.height) {
		return
	}
	if steps == 0 {
		p.Plot(buf, int(math.Floor(ax)), int(math.Floor(ay)), r, style, math.Min(ad, bd))
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Floor(ax + (bx-ax)*t))
		y := int(math.Floor(ay + (by-ay)*t))
		p.Plot(buf, x, y, r, style, ad+(bd-ad)*t)
	}
}

// Plot draws into buf only inside the viewport
func (p *Projector) Plot(buf *Buffer, x, y int, r rune, style tcell.Style, depth float64) bool {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return false
	}
	return buf.Plot(x, y, r, style, depth)
}
