package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-stroll/camera"
	"github.com/lixenwraith/vi-stroll/vmath"
)

func TestBufferDepthTest(t *testing.T) {
	b := NewBuffer(4, 2)
	assert.True(t, b.Plot(1, 1, 'a', tcell.StyleDefault, 5))
	assert.False(t, b.Plot(1, 1, 'b', tcell.StyleDefault, 6), "farther loses")
	assert.True(t, b.Plot(1, 1, 'c', tcell.StyleDefault, 4), "nearer wins")
	assert.Equal(t, 'c', b.Cell(1, 1).Rune)

	b.Set(1, 1, 'x', tcell.StyleDefault)
	assert.False(t, b.Plot(1, 1, 'd', tcell.StyleDefault, 0), "overlay stays on top")

	assert.False(t, b.Plot(9, 9, 'z', tcell.StyleDefault, 0))
	assert.Equal(t, ' ', b.Cell(9, 9).Rune)

	b.Clear()
	assert.Equal(t, ' ', b.Cell(1, 1).Rune)
}

func TestBufferResizeAndText(t *testing.T) {
	b := NewBuffer(2, 2)
	b.Resize(10, 3)
	w, h := b.Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 3, h)

	end := b.Text(2, 1, "hey", tcell.StyleDefault)
	assert.Equal(t, 5, end)
	assert.Equal(t, 'y', b.Cell(4, 1).Rune)
}

func TestFlushToScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(6, 2)

	b := NewBuffer(6, 2)
	b.Text(0, 0, "ok", tcell.StyleDefault)
	b.Flush(screen)

	r, _, _, _ := screen.GetContent(1, 0)
	assert.Equal(t, 'k', r)
}

func newTestProjector() (*Projector, *camera.Camera) {
	cam := camera.New(vmath.V3F(0, 0, 10), 90, 1, 0.1, 100)
	p := NewProjector(cam, 0.5)
	p.SetViewport(40, 20)
	return p, cam
}

func TestProjectorViewportSetsAspect(t *testing.T) {
	p, cam := newTestProjector()
	assert.InDelta(t, 1.0, cam.Aspect, 1e-12)

	x, y, depth, ok := p.Project(vmath.V3F(0, 0, 0))
	require.True(t, ok)
	assert.Equal(t, 20, x)
	assert.Equal(t, 10, y)
	assert.InDelta(t, 10, depth, 1e-12)

	_, _, _, ok = p.Project(vmath.V3F(0, 0, 20))
	assert.False(t, ok)
}

func TestProjectorPlotStaysInViewport(t *testing.T) {
	p, _ := newTestProjector()
	b := NewBuffer(40, 22)
	assert.False(t, p.Plot(b, 0, 20, 'x', tcell.StyleDefault, 1), "hud rows are outside the viewport")
	assert.True(t, p.Plot(b, 0, 19, 'x', tcell.StyleDefault, 1))
}

func TestLineDrawsContinuousSegment(t *testing.T) {
	p, _ := newTestProjector()
	b := NewBuffer(40, 20)
	p.Line(b, vmath.V3F(-5, 0, 0), vmath.V3F(5, 0, 0), '#', tcell.StyleDefault)
	for x := 10; x <= 30; x++ {
		assert.Equal(t, '#', b.Cell(x, 10).Rune, "x=%d", x)
	}
}

func sceneRenderer() (*Renderer, *Buffer) {
	p, _ := newTestProjector()
	r := NewRenderer(p, 2, 10, 2)
	r.Resize(40, 22)
	return r, NewBuffer(40, 22)
}

func rowText(b *Buffer, y int) string {
	w, _ := b.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		sb.WriteRune(b.Cell(x, y).Rune)
	}
	return sb.String()
}

func TestDrawCharacterFrame(t *testing.T) {
	r, b := sceneRenderer()
	r.Draw(b, &View{Character: &CharacterView{
		Frame:  []string{" o ", "/|\\"},
		Height: 1.8,
		Color:  "#ffffff",
	}})
	assert.Equal(t, 'o', b.Cell(20, 9).Rune)
	assert.Equal(t, '|', b.Cell(20, 10).Rune)
}

func TestMirrorSwapsAsymmetricGlyphs(t *testing.T) {
	assert.Equal(t, []string{"\\o ", " >|"}, mirror([]string{" o/", "|<"}))
}

func TestLabelPick(t *testing.T) {
	r, b := sceneRenderer()
	r.Draw(b, &View{Logos: []LogoView{
		{Label: "[Go]", Position: vmath.V3F(0, 0, 0), Color: "#00add8"},
		{Label: "far", Position: vmath.V3F(0, 0, 50)},
	}})

	require.Len(t, r.Labels(), 1, "label behind the camera is not placed")
	idx, ok := r.LabelAt(19, 10)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
	_, ok = r.LabelAt(30, 10)
	assert.False(t, ok)
}

func TestHUDKeyLamps(t *testing.T) {
	r, b := sceneRenderer()
	r.Draw(b, &View{HUD: HUDView{
		Keys:   []KeyLamp{{Label: "W"}, {Label: "Shift", Held: true}},
		Status: "idle",
		Paused: true,
	}})

	row := rowText(b, 20)
	assert.Contains(t, row, "[W] [Shift]")
	assert.Contains(t, row, "[PAUSED]")
	assert.Contains(t, row, "idle")
	assert.Contains(t, rowText(b, 21), "arrows/wasd")

	fg, _, _ := b.Cell(1, 20).Style.Decompose()
	assert.Equal(t, tcell.ColorBlue, fg)
	fg, _, _ = b.Cell(5, 20).Style.Decompose()
	assert.Equal(t, tcell.ColorRed, fg)

	r.ShowHUD = false
	r.Draw(b, &View{HUD: HUDView{Status: "idle"}})
	assert.NotContains(t, rowText(b, 20), "idle")
}

func TestDrawPropCorners(t *testing.T) {
	r, b := sceneRenderer()
	r.Draw(b, &View{Prop: &PropView{Position: vmath.V3F(0, 0, 0), Orientation: vmath.QuatIdentity, Half: 2}})
	found := 0
	for y := 0; y < 20; y++ {
		found += strings.Count(rowText(b, y), "+")
	}
	assert.Greater(t, found, 0)
}
