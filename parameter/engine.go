package parameter

import "time"

// Frame loop timing
const (
	// FrameUpdateInterval is the render/update tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventChannelSize buffers terminal events between the poller and the frame loop
	EventChannelSize = 256

	// FPSWindow is the averaging window for the fps metric
	FPSWindow = time.Second
)

// Input hold inference (terminals report no key release)
const (
	// KeyHoldTimeout releases a key not re-seen within this window once auto-repeat started
	KeyHoldTimeout = 150 * time.Millisecond

	// KeyFirstRepeatGrace covers the OS delay before the first auto-repeat
	KeyFirstRepeatGrace = 550 * time.Millisecond
)
