// ABOUTME: Tests for the playback driver
// ABOUTME: Covers clock advancement, muting, chunking and odd buffer sizes
package playback

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/gammastim/gammastim-go/pkg/stimulus"
)

func TestDriverImplementsReader(t *testing.T) {
	var _ io.Reader = (*Driver)(nil)
}

func newTestDriver() *Driver {
	state := stimulus.NewState()
	return NewDriver(state, stimulus.NewSynth(state))
}

// sampleAt decodes the i-th float32 sample from a Read destination.
func sampleAt(p []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(p[i*4:]))
}

func TestReadFillsFromSynth(t *testing.T) {
	d := newTestDriver()

	buf := make([]byte, stimulus.SamplesPerInterval*4)
	n, err := d.Read(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("expected %d bytes, got %d", len(buf), n)
	}

	for i := 0; i < stimulus.SamplesPerInterval; i++ {
		want := d.synth.Sample(uint64(i))
		if got := sampleAt(buf, i); got != want {
			t.Fatalf("sample %d: expected %v, got %v", i, want, got)
		}
	}
}

func TestReadAdvancesClock(t *testing.T) {
	d := newTestDriver()

	if d.Position() != 0 {
		t.Fatalf("expected clock 0 at start, got %d", d.Position())
	}

	// Clock advances by exactly the samples written, whatever the
	// buffer sizes, including reads too small for a single sample.
	sizes := []int{4096, 17, 3, 8192, 4}
	var want uint64
	for _, size := range sizes {
		n, err := d.Read(make([]byte, size))
		if err != nil {
			t.Fatalf("read of %d bytes: unexpected error: %v", size, err)
		}
		if n != (size/4)*4 {
			t.Errorf("read of %d bytes: expected %d written, got %d", size, (size/4)*4, n)
		}
		want += uint64(size / 4)
	}

	if got := d.Position(); got != want {
		t.Errorf("expected clock %d, got %d", want, got)
	}
}

func TestChunkedReadsBitIdentical(t *testing.T) {
	whole := newTestDriver()
	chunked := newTestDriver()

	big := make([]byte, 4096*4)
	if _, err := whole.Read(big); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	small := make([]byte, 0, len(big))
	for _, n := range []int{4, 28, 176, 4000, 4408, 7768} {
		chunk := make([]byte, n)
		if _, err := chunked.Read(chunk); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		small = append(small, chunk...)
	}

	if len(small) != len(big) {
		t.Fatalf("chunk sizes cover %d bytes, expected %d", len(small), len(big))
	}

	for i := range big {
		if big[i] != small[i] {
			t.Fatalf("byte %d differs between whole and chunked reads", i)
		}
	}
}

func TestReadTinyBuffers(t *testing.T) {
	d := newTestDriver()

	// Shorter than one sample: nothing written, clock untouched.
	for _, size := range []int{0, 1, 2, 3} {
		n, err := d.Read(make([]byte, size))
		if err != nil {
			t.Fatalf("read of %d bytes: unexpected error: %v", size, err)
		}
		if n != 0 {
			t.Errorf("read of %d bytes: expected 0 written, got %d", size, n)
		}
	}

	if d.Position() != 0 {
		t.Errorf("expected clock to stay at 0, got %d", d.Position())
	}
}

func TestReadMisalignedBuffer(t *testing.T) {
	d := newTestDriver()

	// 10 bytes carries two whole samples; the 2-byte tail is left as-is.
	buf := make([]byte, 10)
	for i := range buf {
		buf[i] = 0xEE
	}

	n, err := d.Read(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 8 {
		t.Errorf("expected 8 bytes written, got %d", n)
	}
	if buf[8] != 0xEE || buf[9] != 0xEE {
		t.Error("expected trailing fragment to be untouched")
	}
	if d.Position() != 2 {
		t.Errorf("expected clock 2, got %d", d.Position())
	}
}

func TestPausedReadWritesSilence(t *testing.T) {
	d := newTestDriver()
	d.SetPlaying(false)

	buf := make([]byte, stimulus.SamplesPerInterval*4)
	if _, err := d.Read(buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range buf {
		if buf[i] != 0 {
			t.Fatalf("expected silence while paused, byte %d is %#x", i, buf[i])
		}
	}

	if got := d.Position(); got != stimulus.SamplesPerInterval {
		t.Errorf("expected clock to advance through pause, got %d", got)
	}
}

func TestResumeContinuesPhase(t *testing.T) {
	d := newTestDriver()

	// Pause through part of an interval, then resume mid-stream. The
	// resumed output must match the synth at the positions the clock
	// reached, not restart the pulse.
	d.SetPlaying(false)
	if _, err := d.Read(make([]byte, 500*4)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d.SetPlaying(true)
	buf := make([]byte, 100*4)
	if _, err := d.Read(buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 100; i++ {
		want := d.synth.Sample(uint64(500 + i))
		if got := sampleAt(buf, i); got != want {
			t.Fatalf("sample %d after resume: expected %v, got %v", i, want, got)
		}
	}
}

func TestControlForwarding(t *testing.T) {
	state := stimulus.NewState()
	d := NewDriver(state, stimulus.NewSynth(state))

	if !d.Playing() {
		t.Error("expected playing true at start")
	}
	if d.ContinuousTone() {
		t.Error("expected continuous tone off at start")
	}

	if v := d.TogglePlaying(); v {
		t.Error("expected toggle to return false")
	}
	if state.Playing() {
		t.Error("expected toggle to reach the shared state")
	}

	if v := d.ToggleContinuousTone(); !v {
		t.Error("expected toggle to return true")
	}
	if !state.ContinuousTone() {
		t.Error("expected toggle to reach the shared state")
	}

	d.SetPlaying(true)
	d.SetContinuousTone(false)
	if !d.Playing() || d.ContinuousTone() {
		t.Error("expected setters to reach the shared state")
	}
}
