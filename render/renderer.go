package render

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-stroll/vmath"
)

// HelpLine is shown when there is no message
const HelpLine = "arrows/wasd/hjkl move  shift run  drag pan  wheel zoom  click label  p pause  m mute  ? hud  q quit"

var (
	styleGrid    = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	styleProp    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	stylePropZz  = tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)
	styleKeyUp   = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleKeyDown = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleHelp    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePaused  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Label is the on-screen extent of a logo label from the last frame
type Label struct {
	Index int
	X, Y  int
	Width int
}

// Renderer draws a View through a projector
type Renderer struct {
	proj        *Projector
	gridSpacing float64
	gridRadius  float64
	hudRows     int
	ShowHUD     bool

	labels []Label
}

// NewRenderer creates a renderer reserving hudRows at the bottom of the screen
func NewRenderer(proj *Projector, gridSpacing, gridRadius float64, hudRows int) *Renderer {
	return &Renderer{
		proj:        proj,
		gridSpacing: gridSpacing,
		gridRadius:  gridRadius,
		hudRows:     hudRows,
		ShowHUD:     true,
	}
}

// Resize fits the projector viewport to a width x height screen
func (r *Renderer) Resize(width, height int) {
	r.proj.SetViewport(width, max(height-r.hudRows, 1))
}

// Draw renders v into buf
func (r *Renderer) Draw(buf *Buffer, v *View) {
	buf.Clear()
	r.labels = r.labels[:0]

	r.drawGrid(buf, v.GridCenter)
	if v.Prop != nil {
		r.drawProp(buf, v.Prop)
	}
	if v.Character != nil {
		r.drawCharacter(buf, v.Character)
	}
	for i := range v.Logos {
		r.drawLogo(buf, i, &v.Logos[i])
	}
	if r.ShowHUD {
		r.drawHUD(buf, &v.HUD)
	}
}

// LabelAt returns the logo index whose label covers cell x,y in the last frame
// Later labels are drawn on top, so they win
func (r *Renderer) LabelAt(x, y int) (int, bool) {
	for i := len(r.labels) - 1; i >= 0; i-- {
		l := r.labels[i]
		if y == l.Y && x >= l.X && x < l.X+l.Width {
			return l.Index, true
		}
	}
	return 0, false
}

// Labels returns the label extents of the last frame
func (r *Renderer) Labels() []Label {
	return r.labels
}

func (r *Renderer) drawGrid(buf *Buffer, center vmath.Vec3F) {
	s := r.gridSpacing
	if s <= 0 {
		return
	}
	x0 := math.Floor((center.X-r.gridRadius)/s) * s
	z0 := math.Floor((center.Z-r.gridRadius)/s) * s
	for x := x0; x <= center.X+r.gridRadius; x += s {
		for z := z0; z <= center.Z+r.gridRadius; z += s {
			cx, cy, depth, ok := r.proj.Project(vmath.V3F(x, 0, z))
			if !ok {
				continue
			}
			// Ground marks sit just behind anything at the same depth
			r.proj.Plot(buf, cx, cy, '·', styleGrid, depth+0.01)
		}
	}
}

var boxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func (r *Renderer) drawProp(buf *Buffer, p *PropView) {
	var corners [8]vmath.Vec3F
	for i := range corners {
		local := vmath.V3F(
			signBit(i, 0)*p.Half,
			signBit(i, 1)*p.Half,
			signBit(i, 2)*p.Half,
		)
		corners[i] = vmath.V3FAdd(p.Position, vmath.QuatRotate(p.Orientation, local))
	}

	style := styleProp
	if p.Sleeping {
		style = stylePropZz
	}
	for _, e := range boxEdges {
		r.proj.Line(buf, corners[e[0]], corners[e[1]], '#', style)
	}
	for _, c := range corners {
		if x, y, d, ok := r.proj.Project(c); ok {
			r.proj.Plot(buf, x, y, '+', style, d-1e-6)
		}
	}
}

func signBit(i, bit int) float64 {
	if i&(1<<bit) != 0 {
		return 1
	}
	return -1
}

func (r *Renderer) drawCharacter(buf *Buffer, c *CharacterView) {
	foot := vmath.V3FAdd(c.Position, vmath.V3F(0, c.Bob, 0))
	fx, fy, depth, ok := r.proj.Project(foot)
	if !ok {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.GetColor(c.Color)).Bold(true)

	frame := c.Frame
	if len(frame) == 0 {
		frame = []string{"@"}
	}

	// Mirror when the character faces screen-left
	facing := vmath.V3FAdd(foot, vmath.V3F(math.Sin(c.Yaw), 0, math.Cos(c.Yaw)))
	if ax, _, _, ok := r.proj.ProjectF(facing); ok {
		if bx, _, _, _ := r.proj.ProjectF(foot); ax < bx {
			frame = mirror(frame)
		}
	}

	top := fy - len(frame) + 1
	for row, line := range frame {
		runes := []rune(line)
		left := fx - len(runes)/2
		for col, ch := range runes {
			if ch == ' ' {
				continue
			}
			r.proj.Plot(buf, left+col, top+row, ch, style, depth)
		}
	}
}

var mirrorRunes = map[rune]rune{
	'/': '\\', '\\': '/',
	'<': '>', '>': '<',
	'(': ')', ')': '(',
	'[': ']', ']': '[',
}

func mirror(frame []string) []string {
	width := 0
	for _, l := range frame {
		width = max(width, len([]rune(l)))
	}
	out := make([]string, len(frame))
	for i, l := range frame {
		runes := []rune(l + strings.Repeat(" ", width-len([]rune(l))))
		for a, b := 0, len(runes)-1; a < b; a, b = a+1, b-1 {
			runes[a], runes[b] = runes[b], runes[a]
		}
		for j, ch := range runes {
			if m, ok := mirrorRunes[ch]; ok {
				runes[j] = m
			}
		}
		out[i] = string(runes)
	}
	return out
}

func (r *Renderer) drawLogo(buf *Buffer, idx int, l *LogoView) {
	x, y, depth, ok := r.proj.Project(l.Position)
	if !ok {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.GetColor(l.Color))
	if l.Selected {
		style = style.Reverse(true)
	}

	runes := []rune(l.Label)
	left := x - len(runes)/2
	drawn := false
	for i, ch := range runes {
		if r.proj.Plot(buf, left+i, y, ch, style, depth) {
			drawn = true
		}
	}
	if drawn {
		r.labels = append(r.labels, Label{Index: idx, X: left, Y: y, Width: len(runes)})
	}
}

func (r *Renderer) drawHUD(buf *Buffer, h *HUDView) {
	_, height := buf.Size()
	if r.hudRows < 1 || height < r.hudRows {
		return
	}
	row := height - r.hudRows

	x := 1
	for _, k := range h.Keys {
		style := styleKeyUp
		if k.Held {
			style = styleKeyDown
		}
		x = buf.Text(x, row, "["+k.Label+"]", style) + 1
	}
	if h.Paused {
		x = buf.Text(x+1, row, "[PAUSED]", stylePaused) + 1
	}
	buf.Text(x+1, row, h.Status, styleStatus)

	if r.hudRows < 2 {
		return
	}
	msg := h.Message
	if msg == "" {
		msg = HelpLine
	}
	buf.Text(1, row+1, msg, styleHelp)
}
