// Package scene owns the application state and runs one frame at a time.
// All methods must be called from the frame loop goroutine.
package scene

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/vi-stroll/animation"
	"github.com/lixenwraith/vi-stroll/asset"
	"github.com/lixenwraith/vi-stroll/audio"
	"github.com/lixenwraith/vi-stroll/camera"
	"github.com/lixenwraith/vi-stroll/config"
	"github.com/lixenwraith/vi-stroll/controller"
	"github.com/lixenwraith/vi-stroll/input"
	"github.com/lixenwraith/vi-stroll/parameter"
	"github.com/lixenwraith/vi-stroll/physics"
	"github.com/lixenwraith/vi-stroll/render"
	"github.com/lixenwraith/vi-stroll/status"
	"github.com/lixenwraith/vi-stroll/vmath"
)

// Assets is the source of model, clip and logo data
type Assets interface {
	Character() (*asset.Model, error)
	Clip(name string) (*animation.Clip, error)
	Logos() ([]asset.Logo, error)
}

// Sounds plays audio cues
type Sounds interface {
	Play(c audio.Cue)
	ToggleMute() (bool, error)
}

// Options tune construction
type Options struct {
	// SyncLoad resolves asset loads inline instead of on goroutines
	SyncLoad bool
}

// clipNames are requested once the character model is available
var clipNames = [...]string{
	animation.ClipGreeting,
	animation.ClipIdle,
	animation.ClipSlowRun,
	animation.ClipFastRun,
}

// Scene is the whole interactive state
type Scene struct {
	cfg    *config.Config
	log    *zap.Logger
	assets Assets
	sounds Sounds
	opts   Options

	Input *input.Tracker
	ctrl  *controller.Controller
	cam   *camera.Camera
	rig   *camera.Rig
	zoom  *camera.Zoom

	world    *physics.World
	ground   *physics.Body
	prop     *physics.Body
	charBody *physics.Body

	mixer    *animation.Mixer
	selector *animation.Selector
	decor    *decor

	proj     *render.Projector
	renderer *render.Renderer
	buf      *render.Buffer

	character *asset.Model
	charLoad  *asset.Future[*asset.Model]
	logoLoad  *asset.Future[[]asset.Logo]
	clipLoads map[string]*asset.Future[*animation.Clip]

	frame    uint64
	elapsed  time.Duration
	paused   bool
	selected int
	message  string
	touching bool
	stepWait time.Duration
	fpsCount int
	fpsSince time.Duration

	reg *status.Registry
	m   metrics
}

// metrics caches registry pointers written every frame
type metrics struct {
	frames       *atomic.Int64
	fps          *status.Float
	paused       *atomic.Bool
	anim         *status.String
	fadeOps      *atomic.Int64
	attached     *atomic.Bool
	animating    *atomic.Bool
	fov          *status.Float
	impulses     *atomic.Int64
	propSleeping *atomic.Bool
	selected     *status.String
	loaded       *atomic.Int64
	failures     *atomic.Int64
}

// New builds the scene and starts the initial asset loads
func New(cfg *config.Config, assets Assets, sounds Sounds, reg *status.Registry, logger *zap.Logger, opts Options) *Scene {
	if logger == nil {
		logger = zap.NewNop()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	s := &Scene{
		cfg:       cfg,
		log:       logger,
		assets:    assets,
		sounds:    sounds,
		opts:      opts,
		Input:     input.NewTracker(cfg.Input.HoldTimeout.D(), cfg.Input.FirstRepeatGrace.D()),
		clipLoads: make(map[string]*asset.Future[*animation.Clip], len(clipNames)),
		selected:  -1,
		reg:       reg,
	}

	s.ctrl = controller.New(controller.Config{
		SlowSpeed: cfg.Character.SlowSpeed,
		FastSpeed: cfg.Character.FastSpeed,
		Decay:     cfg.Character.Decay,
		StepScale: cfg.Character.StepScale,
		TurnRate:  cfg.Character.TurnRate,
	})

	start := cfg.Camera.Start
	s.cam = camera.New(vmath.V3F(start[0], start[1], start[2]), cfg.Camera.StartFOV, 1, parameter.CameraNear, parameter.CameraFar)
	s.cam.LookAt(vmath.Vec3F{})
	s.rig = camera.NewRig(s.cam, rigConfig(cfg))
	s.zoom = camera.NewZoom(s.cam, camera.ZoomConfig{
		MinFOV:  cfg.Zoom.MinFOV,
		MaxFOV:  cfg.Zoom.MaxFOV,
		Step:    cfg.Zoom.Step,
		Lerp:    cfg.Zoom.Lerp,
		Epsilon: parameter.ZoomEpsilon,
	})

	s.buildWorld()

	s.mixer = animation.NewMixer()
	s.selector = animation.NewSelector(s.mixer, cfg.Animation.FadeDuration)
	s.selector.OnChange = s.onAnimationChange
	s.decor = newDecor()

	s.proj = render.NewProjector(s.cam, cfg.Render.CellAspect)
	s.renderer = render.NewRenderer(s.proj, cfg.Render.GridSpacing, cfg.Render.GridRadius, parameter.StatusBarHeight)
	s.renderer.ShowHUD = cfg.Render.ShowHUD
	s.buf = render.NewBuffer(0, 0)

	s.initMetrics()
	s.m.anim.Store(s.selector.StateName())

	s.charLoad = load(opts.SyncLoad, assets.Character)
	s.logoLoad = load(opts.SyncLoad, assets.Logos)
	return s
}

func rigConfig(cfg *config.Config) camera.RigConfig {
	mode := camera.ModeStep
	if cfg.Camera.Mode == config.CameraLerp {
		mode = camera.ModeLerp
	}
	return camera.RigConfig{
		Mode:       mode,
		Offset:     vmath.V3F(0, cfg.Camera.Altitude, cfg.Camera.Distance),
		Speed:      cfg.Camera.Speed,
		LookAtStep: cfg.Camera.LookAtStep,
		LerpFactor: cfg.Camera.LerpFactor,
		Arrive:     parameter.CameraArriveEpsilon,
		DragSpeed:  cfg.Camera.DragSpeed,
	}
}

// buildWorld creates the ground and the prop; the character body joins when its model loads
func (s *Scene) buildWorld() {
	pc := s.cfg.Physics
	wc := physics.DefaultWorldConfig()
	wc.Gravity = vmath.V3F(0, pc.Gravity, 0)
	wc.SolverIterations = pc.SolverIterations
	wc.AllowSleep = pc.AllowSleep
	s.world = physics.NewWorld(wc)

	s.ground = physics.NewPlane("ground", parameter.GroundHeight)
	s.ground.Group = parameter.GroupGround
	s.world.AddBody(s.ground)

	half := parameter.PropHalfExtent
	s.prop = physics.NewBox("prop", vmath.V3F(half, half, half), pc.PropMass)
	s.prop.Position = vmath.V3F(pc.PropStart[0], pc.PropStart[1], pc.PropStart[2])
	s.prop.Group = parameter.GroupProp
	s.prop.Mask = parameter.GroupGround | parameter.GroupProp
	s.world.AddBody(s.prop)
}

func (s *Scene) initMetrics() {
	r := s.reg
	s.m = metrics{
		frames:       r.Ints.Get(status.KeyFrames),
		fps:          r.Floats.Get(status.KeyFPS),
		paused:       r.Bools.Get(status.KeyPaused),
		anim:         r.Strings.Get(status.KeyAnimation),
		fadeOps:      r.Ints.Get(status.KeyFadeOps),
		attached:     r.Bools.Get(status.KeyAttached),
		animating:    r.Bools.Get(status.KeyAnimating),
		fov:          r.Floats.Get(status.KeyFOV),
		impulses:     r.Ints.Get(status.KeyImpulses),
		propSleeping: r.Bools.Get(status.KeyPropSleeping),
		selected:     r.Strings.Get(status.KeySelected),
		loaded:       r.Ints.Get(status.KeyLoaded),
		failures:     r.Ints.Get(status.KeyLoadFailures),
	}
}

func load[T any](inline bool, fn func() (T, error)) *asset.Future[T] {
	if inline {
		v, err := fn()
		return asset.Resolved(v, err)
	}
	return asset.Go(fn)
}

// Resize fits the camera and buffer to a new terminal size
func (s *Scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.buf.Resize(width, height)
	s.renderer.Resize(width, height)
}

// Buffer returns the frame drawn by the last Tick
func (s *Scene) Buffer() *render.Buffer { return s.buf }

// Camera returns the scene camera
func (s *Scene) Camera() *camera.Camera { return s.cam }

// Rig returns the follow rig
func (s *Scene) Rig() *camera.Rig { return s.rig }

// Zoom returns the zoom controller
func (s *Scene) Zoom() *camera.Zoom { return s.zoom }

// Controller returns the character controller
func (s *Scene) Controller() *controller.Controller { return s.ctrl }

// Selector returns the animation selector
func (s *Scene) Selector() *animation.Selector { return s.selector }

// Mixer returns the animation mixer
func (s *Scene) Mixer() *animation.Mixer { return s.mixer }

// Prop returns the pushable box body
func (s *Scene) Prop() *physics.Body { return s.prop }

// CharacterBody returns the character collider, nil until the model loads
func (s *Scene) CharacterBody() *physics.Body { return s.charBody }

// Frame returns the number of simulated frames
func (s *Scene) Frame() uint64 { return s.frame }

// Paused reports whether the simulation clock is frozen
func (s *Scene) Paused() bool { return s.paused }

// Selected returns the picked logo index, or -1
func (s *Scene) Selected() int { return s.selected }

// Message returns the status line text
func (s *Scene) Message() string { return s.message }
