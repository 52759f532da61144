package parameter

// Animation blending
const (
	// FadeDuration is the cross-fade window in seconds
	FadeDuration = 0.5

	// MixerNominalDelta is the fixed per-frame mixer advance in seconds
	MixerNominalDelta = 0.016

	// FloatAmplitude is the decorative bobbing swing around each logo's file height
	FloatAmplitude = 0.5
)
