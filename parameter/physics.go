package parameter

// Rigid body world
const (
	// Gravity is the world Y acceleration
	Gravity = -9.82

	// SolverIterations is the contact resolution pass count per step
	SolverIterations = 10

	// MaxStepDelta caps the measured frame delta fed to the physics step (seconds)
	MaxStepDelta = 0.1

	// LinearDamping and AngularDamping are per-second velocity retention losses
	LinearDamping  = 0.01
	AngularDamping = 0.01

	// Restitution is the bounce factor on contacts
	Restitution = 0.3

	// GroundFriction is the per-contact tangential velocity retention on the ground
	GroundFriction = 0.9

	// SleepSpeedLimit is the speed under which a body counts as resting
	SleepSpeedLimit = 0.1

	// SleepTimeLimit is how long a body must rest before sleeping (seconds)
	SleepTimeLimit = 1.0

	// GroundHeight is the Y of the ground plane collider
	GroundHeight = 0.0
)

// Prop box
const (
	PropHalfExtent = 0.5
	PropMass       = 1000.0
	PropStartX     = -7.0
	PropStartY     = 5.0
	PropStartZ     = 0.0

	// PushThreshold is the center distance under which the character shoves the prop
	PushThreshold = 0.7

	// PushForce scales the planar character-to-prop vector into an impulse
	PushForce = 400.0
)

// Collision filter groups
const (
	GroupGround    = 1 << 0
	GroupCharacter = 1 << 1
	GroupProp      = 1 << 2
)
