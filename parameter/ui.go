package parameter

// Terminal rendering
const (
	// CellAspect is cell width over cell height for a typical terminal font
	CellAspect = 0.5

	// GroundGridSpacing is the world distance between ground dots
	GroundGridSpacing = 2.0

	// GroundGridRadius is the half-extent of the drawn ground grid around the character
	GroundGridRadius = 40.0

	// StatusBarHeight rows are reserved at the bottom for the HUD
	StatusBarHeight = 2
)
