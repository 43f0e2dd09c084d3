// ABOUTME: Fixed stimulus parameters and derived sample counts
// ABOUTME: Values follow the published 40Hz gamma stimulation protocol
package stimulus

// Stimulus parameters. These are deliberately constants: the protocol
// specifies exact values and the product does not make them configurable.
const (
	// SampleRate is the output sample rate in Hz.
	SampleRate = 44100

	// ToneFrequency is the pulse carrier frequency in Hz.
	ToneFrequency = 1000

	// ToneDurationMs is the length of each tone pulse in milliseconds.
	ToneDurationMs = 1

	// PulseIntervalMs is the spacing between pulse onsets in milliseconds.
	// 25ms spacing yields the 40Hz stimulation rate.
	PulseIntervalMs = 25

	// Amplitude is the peak amplitude of the tone, in the [-1, 1] sample range.
	Amplitude = 0.5
)

// Derived sample counts. Integer division truncates, which is the intended
// rounding: a pulse is 44 samples (1ms is 44.1 samples at 44100Hz) and an
// interval is 1102 samples (25ms is 1102.5).
const (
	// SamplesPerTone is the number of samples in one tone pulse.
	SamplesPerTone = SampleRate * ToneDurationMs / 1000

	// SamplesPerInterval is the number of samples from one pulse onset to
	// the next. Positions are taken modulo this value.
	SamplesPerInterval = SampleRate * PulseIntervalMs / 1000

	// FadeSamples is the length of the linear fade-in and fade-out applied
	// at the edges of each pulse.
	FadeSamples = SamplesPerTone / 4
)
