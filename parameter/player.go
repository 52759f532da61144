package parameter

// Character movement
const (
	// CharacterSlowSpeed is the speed scalar while walking without the run modifier
	CharacterSlowSpeed = 1.0

	// CharacterFastSpeed is the speed scalar while the run modifier is held
	CharacterFastSpeed = 2.0

	// CharacterSpeedDecay multiplies speed each frame without directional input
	CharacterSpeedDecay = 0.7

	// CharacterStepScale converts speed into world units per frame
	CharacterStepScale = 0.03

	// CharacterTurnRate is the per-frame yaw interpolation factor
	CharacterTurnRate = 0.1

	// CharacterColliderRadius is the sphere radius puppeting the character in the physics world
	CharacterColliderRadius = 0.5

	// CharacterMass is used only for collision response ratios; the body is kinematic
	CharacterMass = 70.0
)
