// ABOUTME: Pure sample function for the pulsed and continuous tone waveforms
// ABOUTME: Deterministic over absolute sample position, safe for any chunking
package stimulus

import "math"

// Synth produces the stimulus waveform as a pure function of absolute
// sample position. It holds no playback state of its own; the only
// mutable input is the continuous-tone flag, read per sample.
type Synth struct {
	state *State
}

// NewSynth creates a synthesizer reading mode flags from state.
func NewSynth(state *State) *Synth {
	return &Synth{state: state}
}

// Sample returns the waveform value at the given absolute sample
// position, in [-Amplitude, Amplitude]. It does not consult the playing
// flag; muting is the playback driver's job.
func (s *Synth) Sample(pos uint64) float32 {
	if s.state.ContinuousTone() {
		return continuousAt(pos)
	}
	return pulsedAt(pos)
}

// Fill writes Sample(start+i) into each dst[i] and returns the position
// one past the last sample written.
func (s *Synth) Fill(dst []float32, start uint64) uint64 {
	for i := range dst {
		dst[i] = s.Sample(start + uint64(i))
	}
	return start + uint64(len(dst))
}

// continuousAt evaluates the unbroken calibration sine over absolute time.
func continuousAt(pos uint64) float32 {
	t := float64(pos) / SampleRate
	return float32(Amplitude * math.Sin(2*math.Pi*ToneFrequency*t))
}

// pulsedAt evaluates the pulsed stimulus. Positions are folded into the
// pulse interval; the first SamplesPerTone positions carry the tone with
// a linear fade at each edge, the rest are exactly zero.
func pulsedAt(pos uint64) float32 {
	posInInterval := pos % SamplesPerInterval
	if posInInterval >= SamplesPerTone {
		return 0
	}

	// Local time restarts at each pulse onset so every pulse is
	// phase-identical.
	t := float64(posInInterval) / SampleRate
	sample := Amplitude * math.Sin(2*math.Pi*ToneFrequency*t)

	// Linear fades over the first and last quarter of the pulse. The
	// comparisons are asymmetric: fade-in covers positions 0-10,
	// fade-out positions 34-43, with position 33 still at full scale.
	if posInInterval < FadeSamples {
		sample *= float64(posInInterval) / FadeSamples
	} else if posInInterval > SamplesPerTone-FadeSamples {
		sample *= float64(SamplesPerTone-posInInterval) / FadeSamples
	}

	return float32(sample)
}
