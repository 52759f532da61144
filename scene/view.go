package scene

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-stroll/input"
	"github.com/lixenwraith/vi-stroll/parameter"
	"github.com/lixenwraith/vi-stroll/render"
)

var keyLabels = map[input.Key]string{
	input.KeyArrowUp:    "W",
	input.KeyArrowLeft:  "A",
	input.KeyArrowDown:  "S",
	input.KeyArrowRight: "D",
	input.KeyShift:      "Shift",
}

// draw renders the current state into the buffer
func (s *Scene) draw() {
	if w, h := s.buf.Size(); w == 0 || h == 0 {
		return
	}
	v := s.view()
	s.renderer.Draw(s.buf, &v)
}

func (s *Scene) view() render.View {
	v := render.View{GridCenter: s.ctrl.Position}

	if s.character != nil {
		pose := s.mixer.Sample()
		v.Character = &render.CharacterView{
			Position: s.ctrl.Position,
			Yaw:      s.ctrl.Yaw,
			Frame:    pose.Frame,
			Bob:      pose.Channels["bob"],
			Height:   s.character.Height,
			Color:    s.character.Color,
		}
	}

	v.Prop = &render.PropView{
		Position:    s.prop.Position,
		Orientation: s.prop.Orientation,
		Half:        parameter.PropHalfExtent,
		Sleeping:    s.prop.Sleeping(),
	}

	s.decor.each(func(tr Transform, l Logo) {
		v.Logos = append(v.Logos, render.LogoView{
			Label:    l.Label,
			Position: tr.Pos,
			Color:    l.Color,
			Selected: l.Index == s.selected,
		})
	})

	keys := make([]render.KeyLamp, 0, len(input.DirectionKeys)+1)
	for _, k := range input.DirectionKeys {
		keys = append(keys, render.KeyLamp{Label: keyLabels[k], Held: s.Input.Held(k)})
	}
	keys = append(keys, render.KeyLamp{Label: keyLabels[input.KeyShift], Held: s.Input.Held(input.KeyShift)})

	v.HUD = render.HUDView{
		Keys:    keys,
		Status:  s.statusLine(),
		Message: s.message,
		Paused:  s.paused,
	}
	return v
}

func (s *Scene) statusLine() string {
	var b strings.Builder
	b.WriteString(s.selector.StateName())
	fmt.Fprintf(&b, "  fov %.0f", s.cam.FOV)
	if s.rig.Attached() {
		b.WriteString("  follow")
	} else {
		b.WriteString("  free")
	}
	if fps := s.m.fps.Load(); fps > 0 {
		fmt.Fprintf(&b, "  %.0ffps", fps)
	}
	return b.String()
}
