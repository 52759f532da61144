package parameter

// Follow camera
const (
	// CameraAltitude is the vertical offset of the follow position above the character
	CameraAltitude = 20.0

	// CameraDistance is the +Z offset of the follow position behind the character
	CameraDistance = 20.0

	// CameraSpeed is the maximum distance the camera travels per frame while following
	CameraSpeed = 0.36

	// CameraLookAtStep is the per-frame blend of the view direction toward the character
	CameraLookAtStep = 0.001

	// CameraLerpFactor is the per-frame position fraction used by the lerp follow mode
	CameraLerpFactor = 0.01

	// CameraArriveEpsilon is the distance under which the follow camera snaps to its target
	CameraArriveEpsilon = 0.01

	// CameraDragSpeed scales pointer drag deltas (fraction of screen) into world units
	CameraDragSpeed = 10.0
)

// Initial camera placement
const (
	CameraStartX = 0.0
	CameraStartY = 100.0
	CameraStartZ = 100.0

	// CameraStartFOV is the vertical field of view in degrees
	CameraStartFOV = 30.0

	CameraNear = 0.1
	CameraFar  = 500.0
)

// Zoom
const (
	// MinFOV and MaxFOV bound the zoom target field of view in degrees
	MinFOV = 10.0
	MaxFOV = 50.0

	// ZoomStep is the FOV change in degrees per scroll notch
	ZoomStep = 2.0

	// ZoomLerp is the per-frame fraction the current FOV closes toward the target
	ZoomLerp = 0.15

	// ZoomEpsilon is the FOV distance under which zoom snaps and stops
	ZoomEpsilon = 0.01
)
