package physics

import (
	"math"

	"github.com/lixenwraith/vi-stroll/parameter"
	"github.com/lixenwraith/vi-stroll/vmath"
)

// WorldConfig holds solver settings
type WorldConfig struct {
	Gravity          vmath.Vec3F
	SolverIterations int
	AllowSleep       bool
	LinearDamping    float64
	AngularDamping   float64
	Restitution      float64
	Friction         float64
	SleepSpeedLimit  float64
	SleepTimeLimit   float64
	MaxStepDelta     float64
}

// DefaultWorldConfig returns the scene's physics tuning
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Gravity:          vmath.Vec3F{Y: parameter.Gravity},
		SolverIterations: parameter.SolverIterations,
		AllowSleep:       true,
		LinearDamping:    parameter.LinearDamping,
		AngularDamping:   parameter.AngularDamping,
		Restitution:      parameter.Restitution,
		Friction:         parameter.GroundFriction,
		SleepSpeedLimit:  parameter.SleepSpeedLimit,
		SleepTimeLimit:   parameter.SleepTimeLimit,
		MaxStepDelta:     parameter.MaxStepDelta,
	}
}

// World integrates dynamic bodies and resolves contacts
type World struct {
	cfg    WorldConfig
	bodies []*Body

	// contacts touched during the current step, for one-shot velocity response
	responded map[[2]*Body]bool
}

// NewWorld creates an empty world
func NewWorld(cfg WorldConfig) *World {
	if cfg.SolverIterations < 1 {
		cfg.SolverIterations = 1
	}
	return &World{
		cfg:       cfg,
		bodies:    make([]*Body, 0, 8),
		responded: make(map[[2]*Body]bool),
	}
}

// Config returns the solver settings
func (w *World) Config() WorldConfig {
	return w.cfg
}

// AddBody registers b with the world
func (w *World) AddBody(b *Body) {
	w.bodies = append(w.bodies, b)
}

// RemoveBody unregisters b; returns false if absent
func (w *World) RemoveBody(b *Body) bool {
	for i, x := range w.bodies {
		if x == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return true
		}
	}
	return false
}

// Bodies returns the registered bodies in insertion order
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Step advances the simulation by dt seconds (capped at MaxStepDelta)
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	if w.cfg.MaxStepDelta > 0 && dt > w.cfg.MaxStepDelta {
		dt = w.cfg.MaxStepDelta
	}

	linKeep := math.Pow(1-w.cfg.LinearDamping, dt)
	angKeep := math.Pow(1-w.cfg.AngularDamping, dt)

	for _, b := range w.bodies {
		if b.Type != Dynamic || b.sleeping {
			continue
		}
		b.Velocity = vmath.V3FAddScaled(b.Velocity, w.cfg.Gravity, dt)
		b.Velocity = vmath.V3FScale(b.Velocity, linKeep)
		b.AngularVelocity = vmath.V3FScale(b.AngularVelocity, angKeep)

		b.Position = vmath.V3FAddScaled(b.Position, b.Velocity, dt)
		b.Orientation = vmath.QuatIntegrate(b.Orientation, b.AngularVelocity, dt)
	}

	clear(w.responded)
	for i := 0; i < w.cfg.SolverIterations; i++ {
		w.solve()
	}

	if w.cfg.AllowSleep {
		w.updateSleep(dt)
	}
}

func (w *World) solve() {
	for i := 0; i < len(w.bodies); i++ {
		a := w.bodies[i]
		for j := i + 1; j < len(w.bodies); j++ {
			b := w.bodies[j]
			if !collides(a, b) {
				continue
			}
			if a.InvMass()+b.InvMass() == 0 {
				continue
			}
			if a.sleeping && b.sleeping {
				continue
			}
			switch {
			case a.Shape.Kind == ShapePlane:
				w.resolvePlane(a, b)
			case b.Shape.Kind == ShapePlane:
				w.resolvePlane(b, a)
			default:
				w.resolvePair(a, b)
			}
		}
	}
}

// resolvePlane lifts b out of the ground plane and applies bounce and friction once per step
func (w *World) resolvePlane(plane, b *Body) {
	if b.Type != Dynamic || b.sleeping {
		return
	}
	depth := plane.Position.Y - b.lowestPoint()
	if depth <= 0 {
		return
	}
	b.Position.Y += depth

	key := [2]*Body{plane, b}
	if w.responded[key] {
		return
	}
	w.responded[key] = true

	if b.Velocity.Y < 0 {
		b.Velocity.Y = -b.Velocity.Y * w.cfg.Restitution
		// Kill micro-bounces so resting bodies can sleep
		if b.Velocity.Y < w.cfg.SleepSpeedLimit {
			b.Velocity.Y = 0
		}
	}
	b.Velocity.X *= w.cfg.Friction
	b.Velocity.Z *= w.cfg.Friction
	b.AngularVelocity = vmath.V3FScale(b.AngularVelocity, w.cfg.Friction)
}

func (w *World) resolvePair(a, b *Body) {
	n, depth, ok := contactNormal(a, b)
	if !ok {
		return
	}

	// Anything pressing into a sleeper wakes it
	if a.sleeping {
		a.Wake()
	}
	if b.sleeping {
		b.Wake()
	}

	invA, invB := a.InvMass(), b.InvMass()
	SeparateOverlap3DF(&a.Position, &b.Position, n, depth, invA, invB)

	key := [2]*Body{a, b}
	if w.responded[key] {
		return
	}
	w.responded[key] = true
	ElasticCollision3DF(&a.Velocity, &b.Velocity, n, invA, invB, w.cfg.Restitution)
}

func (w *World) updateSleep(dt float64) {
	limitSq := w.cfg.SleepSpeedLimit * w.cfg.SleepSpeedLimit
	for _, b := range w.bodies {
		if b.Type != Dynamic || b.sleeping {
			continue
		}
		speedSq := vmath.V3FMagSq(b.Velocity) + vmath.V3FMagSq(b.AngularVelocity)
		if speedSq < limitSq {
			b.sleepTimer += dt
			if b.sleepTimer > w.cfg.SleepTimeLimit {
				b.sleep()
			}
		} else {
			b.sleepTimer = 0
		}
	}
}
