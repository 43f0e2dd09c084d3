// ABOUTME: Stimulus synthesis package generating the 40Hz pulsed tone
// ABOUTME: Provides parameter constants, run State flags and the Synth sample function
// Package stimulus generates the 40Hz auditory stimulus waveform.
//
// The stimulus is a 1kHz pure tone pulsed for 1ms every 25ms (40Hz) at
// 44100Hz, with a short linear fade at each pulse edge to avoid clicks.
// This package defines:
//   - the fixed stimulus parameters and derived sample counts
//   - State: the two run-state flags shared with the control surface
//   - Synth: the pure sample function over an absolute sample position
//
// Synth is deterministic: the value at a position depends only on the
// position and the continuous-tone flag, never on call history, so any
// buffering scheme produces identical audio.
//
// Example:
//
//	state := stimulus.NewState()
//	synth := stimulus.NewSynth(state)
//
//	buf := make([]float32, stimulus.SamplesPerInterval)
//	synth.Fill(buf, 0) // one full pulse interval
package stimulus
