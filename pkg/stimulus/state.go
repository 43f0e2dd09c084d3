// ABOUTME: Run-state flags shared between the control surface and audio thread
// ABOUTME: Two independent atomic booleans, no locks
package stimulus

import "sync/atomic"

// State holds the two run-state flags: whether output is audible and
// whether the synthesizer is in continuous-tone calibration mode.
//
// Flags are written only by the control surface and read by the audio
// thread on every sample. Atomic access is the only synchronization; a
// toggle may take up to one device buffer to become audible, which is
// fine for a human-operated control.
type State struct {
	playing        atomic.Bool
	continuousTone atomic.Bool
}

// NewState returns run state with playback enabled and continuous-tone
// mode off, matching the behavior at process start.
func NewState() *State {
	s := &State{}
	s.playing.Store(true)
	return s
}

// Playing reports whether output is audible.
func (s *State) Playing() bool {
	return s.playing.Load()
}

// SetPlaying sets the playing flag. False mutes output without stopping
// the stream.
func (s *State) SetPlaying(playing bool) {
	s.playing.Store(playing)
}

// TogglePlaying flips the playing flag and returns the new value.
func (s *State) TogglePlaying() bool {
	v := !s.playing.Load()
	s.playing.Store(v)
	return v
}

// ContinuousTone reports whether continuous-tone calibration mode is on.
func (s *State) ContinuousTone() bool {
	return s.continuousTone.Load()
}

// SetContinuousTone sets continuous-tone calibration mode.
func (s *State) SetContinuousTone(on bool) {
	s.continuousTone.Store(on)
}

// ToggleContinuousTone flips calibration mode and returns the new value.
func (s *State) ToggleContinuousTone() bool {
	v := !s.continuousTone.Load()
	s.continuousTone.Store(v)
	return v
}
