package parameter

import "time"

// Audio cues
const (
	// AudioSampleRate is the output sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration sizes the speaker buffer
	AudioBufferDuration = 100 * time.Millisecond

	// AudioVolume is the master gain in [0,1]
	AudioVolume = 0.3

	// FootstepIntervalSlow and FootstepIntervalFast pace step ticks while running
	FootstepIntervalSlow = 400 * time.Millisecond
	FootstepIntervalFast = 250 * time.Millisecond
)
