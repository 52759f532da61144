// Package config groups scene tuning into sections loadable from a TOML file.
// Defaults come from the parameter package; a file only needs the keys it overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/vi-stroll/parameter"
)

// ErrInvalid marks a configuration that failed validation
var ErrInvalid = errors.New("invalid config")

// CameraMode selects the follow behavior
type CameraMode string

const (
	// CameraStep moves at a capped speed and blends the look direction
	CameraStep CameraMode = "step"
	// CameraLerp lerps position by a fixed fraction and snaps look-at
	CameraLerp CameraMode = "lerp"
)

type Config struct {
	Camera    CameraConfig    `toml:"camera"`
	Zoom      ZoomConfig      `toml:"zoom"`
	Character CharacterConfig `toml:"character"`
	Physics   PhysicsConfig   `toml:"physics"`
	Animation AnimationConfig `toml:"animation"`
	Input     InputConfig     `toml:"input"`
	Render    RenderConfig    `toml:"render"`
	Audio     AudioConfig     `toml:"audio"`
	Log       LogConfig       `toml:"log"`
}

type CameraConfig struct {
	Mode       CameraMode `toml:"mode"`
	Altitude   float64    `toml:"altitude"`
	Distance   float64    `toml:"distance"`
	Speed      float64    `toml:"speed"`
	LookAtStep float64    `toml:"look_at_step"`
	LerpFactor float64    `toml:"lerp_factor"`
	DragSpeed  float64    `toml:"drag_speed"`
	StartFOV   float64    `toml:"start_fov"`
	Start      [3]float64 `toml:"start"`
}

type ZoomConfig struct {
	MinFOV float64 `toml:"min_fov"`
	MaxFOV float64 `toml:"max_fov"`
	Step   float64 `toml:"step"`
	Lerp   float64 `toml:"lerp"`
}

type CharacterConfig struct {
	SlowSpeed      float64 `toml:"slow_speed"`
	FastSpeed      float64 `toml:"fast_speed"`
	Decay          float64 `toml:"decay"`
	StepScale      float64 `toml:"step_scale"`
	TurnRate       float64 `toml:"turn_rate"`
	ColliderRadius float64 `toml:"collider_radius"`
}

type PhysicsConfig struct {
	Gravity          float64    `toml:"gravity"`
	SolverIterations int        `toml:"solver_iterations"`
	AllowSleep       bool       `toml:"allow_sleep"`
	PropMass         float64    `toml:"prop_mass"`
	PropStart        [3]float64 `toml:"prop_start"`
	PushThreshold    float64    `toml:"push_threshold"`
	PushForce        float64    `toml:"push_force"`
}

type AnimationConfig struct {
	FadeDuration float64 `toml:"fade_duration"`
	// MeasuredDelta advances the mixer by the real frame delta instead of the nominal 0.016
	MeasuredDelta bool `toml:"measured_delta"`
}

type InputConfig struct {
	HoldTimeout      Duration `toml:"hold_timeout"`
	FirstRepeatGrace Duration `toml:"first_repeat_grace"`
}

type RenderConfig struct {
	FrameInterval Duration `toml:"frame_interval"`
	CellAspect    float64  `toml:"cell_aspect"`
	GridSpacing   float64  `toml:"grid_spacing"`
	GridRadius    float64  `toml:"grid_radius"`
	ShowHUD       bool     `toml:"show_hud"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Dir    string `toml:"dir"`
}

// Default returns the built-in tuning
func Default() *Config {
	return &Config{
		Camera: CameraConfig{
			Mode:       CameraStep,
			Altitude:   parameter.CameraAltitude,
			Distance:   parameter.CameraDistance,
			Speed:      parameter.CameraSpeed,
			LookAtStep: parameter.CameraLookAtStep,
			LerpFactor: parameter.CameraLerpFactor,
			DragSpeed:  parameter.CameraDragSpeed,
			StartFOV:   parameter.CameraStartFOV,
			Start:      [3]float64{parameter.CameraStartX, parameter.CameraStartY, parameter.CameraStartZ},
		},
		Zoom: ZoomConfig{
			MinFOV: parameter.MinFOV,
			MaxFOV: parameter.MaxFOV,
			Step:   parameter.ZoomStep,
			Lerp:   parameter.ZoomLerp,
		},
		Character: CharacterConfig{
			SlowSpeed:      parameter.CharacterSlowSpeed,
			FastSpeed:      parameter.CharacterFastSpeed,
			Decay:          parameter.CharacterSpeedDecay,
			StepScale:      parameter.CharacterStepScale,
			TurnRate:       parameter.CharacterTurnRate,
			ColliderRadius: parameter.CharacterColliderRadius,
		},
		Physics: PhysicsConfig{
			Gravity:          parameter.Gravity,
			SolverIterations: parameter.SolverIterations,
			AllowSleep:       true,
			PropMass:         parameter.PropMass,
			PropStart:        [3]float64{parameter.PropStartX, parameter.PropStartY, parameter.PropStartZ},
			PushThreshold:    parameter.PushThreshold,
			PushForce:        parameter.PushForce,
		},
		Animation: AnimationConfig{
			FadeDuration: parameter.FadeDuration,
		},
		Input: InputConfig{
			HoldTimeout:      Duration(parameter.KeyHoldTimeout),
			FirstRepeatGrace: Duration(parameter.KeyFirstRepeatGrace),
		},
		Render: RenderConfig{
			FrameInterval: Duration(parameter.FrameUpdateInterval),
			CellAspect:    parameter.CellAspect,
			GridSpacing:   parameter.GroundGridSpacing,
			GridRadius:    parameter.GroundGridRadius,
			ShowHUD:       true,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.AudioVolume,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
			Dir:    "logs",
		},
	}
}

// Load reads path over the defaults; an empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays TOML data onto cfg and validates the result
func Decode(data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("parse error at %d:%d: %w", row, col, err)
		}
		return fmt.Errorf("parse: %w", err)
	}
	return cfg.Validate()
}

// Validate rejects values that would break the frame loop
func (c *Config) Validate() error {
	switch c.Camera.Mode {
	case CameraStep, CameraLerp:
	default:
		return fmt.Errorf("%w: camera.mode %q (want %q or %q)", ErrInvalid, c.Camera.Mode, CameraStep, CameraLerp)
	}
	if c.Zoom.MinFOV <= 0 || c.Zoom.MaxFOV >= 180 || c.Zoom.MinFOV > c.Zoom.MaxFOV {
		return fmt.Errorf("%w: zoom range [%g, %g]", ErrInvalid, c.Zoom.MinFOV, c.Zoom.MaxFOV)
	}
	if c.Camera.StartFOV < c.Zoom.MinFOV || c.Camera.StartFOV > c.Zoom.MaxFOV {
		return fmt.Errorf("%w: camera.start_fov %g outside zoom range", ErrInvalid, c.Camera.StartFOV)
	}
	if c.Zoom.Step <= 0 {
		return fmt.Errorf("%w: zoom.step %g must be positive", ErrInvalid, c.Zoom.Step)
	}
	if !unitFactor(c.Zoom.Lerp) {
		return fmt.Errorf("%w: zoom.lerp %g must be in (0,1]", ErrInvalid, c.Zoom.Lerp)
	}
	if c.Camera.Speed <= 0 {
		return fmt.Errorf("%w: camera.speed %g must be positive", ErrInvalid, c.Camera.Speed)
	}
	if !unitFactor(c.Camera.LookAtStep) {
		return fmt.Errorf("%w: camera.look_at_step %g must be in (0,1]", ErrInvalid, c.Camera.LookAtStep)
	}
	if !unitFactor(c.Camera.LerpFactor) {
		return fmt.Errorf("%w: camera.lerp_factor %g must be in (0,1]", ErrInvalid, c.Camera.LerpFactor)
	}
	if c.Character.Decay < 0 || c.Character.Decay >= 1 {
		return fmt.Errorf("%w: character.decay %g must be in [0,1)", ErrInvalid, c.Character.Decay)
	}
	if c.Physics.SolverIterations < 1 {
		return fmt.Errorf("%w: physics.solver_iterations %d", ErrInvalid, c.Physics.SolverIterations)
	}
	if c.Physics.PropMass <= 0 {
		return fmt.Errorf("%w: physics.prop_mass %g", ErrInvalid, c.Physics.PropMass)
	}
	if c.Animation.FadeDuration < 0 {
		return fmt.Errorf("%w: animation.fade_duration %g", ErrInvalid, c.Animation.FadeDuration)
	}
	if c.Render.FrameInterval <= 0 {
		return fmt.Errorf("%w: render.frame_interval %s", ErrInvalid, c.Render.FrameInterval.D())
	}
	if c.Render.CellAspect <= 0 {
		return fmt.Errorf("%w: render.cell_aspect %g", ErrInvalid, c.Render.CellAspect)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume %g", ErrInvalid, c.Audio.Volume)
	}
	return nil
}

// unitFactor reports whether f is a usable per-frame interpolation factor
func unitFactor(f float64) bool {
	return f > 0 && f <= 1
}
