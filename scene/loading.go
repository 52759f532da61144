package scene

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-stroll/animation"
	"github.com/lixenwraith/vi-stroll/asset"
	"github.com/lixenwraith/vi-stroll/parameter"
	"github.com/lixenwraith/vi-stroll/physics"
)

// pollAssets moves finished loads into the scene
// A failed load is logged and the feature stays absent
func (s *Scene) pollAssets() {
	if s.charLoad != nil {
		if model, ready, err := s.charLoad.Poll(); ready {
			s.charLoad = nil
			if err != nil {
				s.loadFailed("character", err)
			} else {
				s.addCharacter(model)
			}
		}
	}

	for name, f := range s.clipLoads {
		clip, ready, err := f.Poll()
		if !ready {
			continue
		}
		delete(s.clipLoads, name)
		if err != nil {
			s.loadFailed("clip "+name, err)
			continue
		}
		s.selector.AddClip(clip)
		s.loaded("clip " + name)
	}

	if s.logoLoad != nil {
		if logos, ready, err := s.logoLoad.Poll(); ready {
			s.logoLoad = nil
			if err != nil {
				s.loadFailed("logos", err)
			} else {
				s.decor.spawnLogos(logos, parameter.FloatAmplitude)
				s.loaded("logos")
			}
		}
	}
}

// addCharacter registers the collider and requests the animation clips
func (s *Scene) addCharacter(model *asset.Model) {
	s.character = model

	body := physics.NewSphere("character", s.cfg.Character.ColliderRadius, parameter.CharacterMass)
	body.Type = physics.Kinematic
	body.Group = parameter.GroupCharacter
	body.Mask = parameter.GroupGround
	body.SetPose(s.ctrl.Position, s.ctrl.Orientation())
	s.charBody = body
	s.world.AddBody(body)
	s.loaded("character")

	for _, name := range clipNames {
		s.clipLoads[name] = load(s.opts.SyncLoad, func() (*animation.Clip, error) {
			return s.assets.Clip(name)
		})
	}
}

func (s *Scene) loaded(what string) {
	s.m.loaded.Add(1)
	s.log.Debug("asset loaded", zap.String("asset", what))
}

func (s *Scene) loadFailed(what string, err error) {
	s.m.failures.Add(1)
	s.log.Warn("asset load failed", zap.String("asset", what), zap.Error(err))
}
