// ABOUTME: Pull-based playback driver implementing io.Reader over the synth
// ABOUTME: Owns the sample clock and applies the playing mute per sample
package playback

import (
	"encoding/binary"
	"math"
	"sync/atomic"

	"github.com/gammastim/gammastim-go/pkg/stimulus"
)

// bytesPerSample is the wire size of one mono 32-bit float sample.
const bytesPerSample = 4

// Driver produces the outgoing sample stream. The device pulls from it
// through io.Reader; each Read fills the request starting at the current
// clock position and advances the clock by exactly the number of samples
// written, so pulse timing stays continuous across any buffer sizes the
// device negotiates.
//
// The clock is written only by the device's reader goroutine. Other
// goroutines read it through Position for display.
type Driver struct {
	synth *stimulus.Synth
	state *stimulus.State
	clock atomic.Uint64
}

// NewDriver creates a driver producing synth output gated by state.
func NewDriver(state *stimulus.State, synth *stimulus.Synth) *Driver {
	return &Driver{
		synth: synth,
		state: state,
	}
}

// Read fills p with little-endian float32 samples and never returns an
// error; the stimulus stream has no end. While the playing flag is off
// it writes silence instead, still advancing the clock, so resuming
// continues at the pulse phase the stream clock has reached rather than
// replaying from the pause point. The flag is read per sample, so a
// toggle lands within the current buffer.
//
// A trailing fragment of p smaller than one sample is left unwritten.
func (d *Driver) Read(p []byte) (int, error) {
	n := len(p) / bytesPerSample
	if n == 0 {
		return 0, nil
	}

	pos := d.clock.Load()
	for i := 0; i < n; i++ {
		var v float32
		if d.state.Playing() {
			v = d.synth.Sample(pos + uint64(i))
		}
		binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(v))
	}
	d.clock.Store(pos + uint64(n))

	return n * bytesPerSample, nil
}

// Position returns the absolute index of the next sample to be
// produced. It only ever moves forward; at 44100Hz a 64-bit clock
// cannot wrap within any realistic session.
func (d *Driver) Position() uint64 {
	return d.clock.Load()
}

// Playing reports whether output is audible.
func (d *Driver) Playing() bool {
	return d.state.Playing()
}

// ContinuousTone reports whether calibration mode is on.
func (d *Driver) ContinuousTone() bool {
	return d.state.ContinuousTone()
}

// SetPlaying mutes (false) or unmutes (true) output.
func (d *Driver) SetPlaying(playing bool) {
	d.state.SetPlaying(playing)
}

// TogglePlaying flips the playing flag and returns the new value.
func (d *Driver) TogglePlaying() bool {
	return d.state.TogglePlaying()
}

// SetContinuousTone switches calibration mode on or off.
func (d *Driver) SetContinuousTone(on bool) {
	d.state.SetContinuousTone(on)
}

// ToggleContinuousTone flips calibration mode and returns the new value.
func (d *Driver) ToggleContinuousTone() bool {
	return d.state.ToggleContinuousTone()
}
