package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/vi-stroll/audio"
	"github.com/lixenwraith/vi-stroll/input"
)

// HandleIntent applies one terminal intent; returns false when the user quits
func (s *Scene) HandleIntent(in input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentPause:
		s.paused = !s.paused
		s.m.paused.Store(s.paused)
		if s.paused {
			// Holds cannot be tracked while frozen
			s.Input.ReleaseAll()
		}
	case input.IntentToggleMute:
		s.toggleMute()
	case input.IntentToggleHUD:
		s.renderer.ShowHUD = !s.renderer.ShowHUD
	case input.IntentResize:
		s.Resize(in.X, in.Y)
	case input.IntentDrag:
		if !s.paused {
			s.rig.Drag(in.DX, in.DY)
		}
	case input.IntentScroll:
		if !s.paused {
			s.zoom.Scroll(float64(in.Scroll))
		}
	case input.IntentClick:
		s.pick(in.X, in.Y)
	}
	return true
}

// pick selects the logo whose label covers the clicked cell
func (s *Scene) pick(x, y int) {
	idx, ok := s.renderer.LabelAt(x, y)
	if !ok {
		return
	}
	logo, ok := s.decor.logoAt(idx)
	if !ok {
		return
	}
	s.selected = idx
	s.message = fmt.Sprintf("%s -> %s", logo.Label, logo.Link)
	s.m.selected.Store(logo.Label)
	s.play(audio.CueSelect)
	s.log.Info("logo selected", zap.String("label", logo.Label), zap.String("link", logo.Link))
}

func (s *Scene) toggleMute() {
	if s.sounds == nil {
		s.message = "audio unavailable"
		return
	}
	muted, err := s.sounds.ToggleMute()
	switch {
	case err != nil:
		s.message = "audio unavailable"
		s.log.Debug("mute toggle ignored", zap.Error(err))
	case muted:
		s.message = "sound off"
	default:
		s.message = "sound on"
	}
}
