// ABOUTME: Tests for session tracking
// ABOUTME: Covers elapsed derivation, progress, auto-stop and formatting
package session

import (
	"context"
	"testing"
	"time"

	"github.com/gammastim/gammastim-go/pkg/stimulus"
)

// fakeDriver stands in for the playback driver with a settable clock.
type fakeDriver struct {
	pos     uint64
	playing bool
}

func (f *fakeDriver) Position() uint64 {
	return f.pos
}

func (f *fakeDriver) SetPlaying(playing bool) {
	f.playing = playing
}

func TestSessionID(t *testing.T) {
	d := &fakeDriver{playing: true}

	a := New(d, 0)
	b := New(d, 0)

	if a.ID() == "" {
		t.Error("expected non-empty session ID")
	}

	if a.ID() == b.ID() {
		t.Error("expected distinct IDs for distinct sessions")
	}
}

func TestElapsed(t *testing.T) {
	d := &fakeDriver{pos: 5000, playing: true}
	s := New(d, 0)

	if got := s.Elapsed(); got != 0 {
		t.Errorf("expected 0 elapsed at start, got %v", got)
	}

	d.pos = 5000 + stimulus.SampleRate
	if got := s.Elapsed(); got != time.Second {
		t.Errorf("expected 1s after one sample rate of samples, got %v", got)
	}

	d.pos = 5000 + stimulus.SampleRate + stimulus.SampleRate/2
	if got := s.Elapsed(); got != 1500*time.Millisecond {
		t.Errorf("expected 1.5s, got %v", got)
	}

	// An hour of samples must not overflow the conversion.
	d.pos = 5000 + 3600*stimulus.SampleRate
	if got := s.Elapsed(); got != time.Hour {
		t.Errorf("expected 1h, got %v", got)
	}
}

func TestProgress(t *testing.T) {
	d := &fakeDriver{playing: true}
	s := New(d, 10*time.Minute)

	if got := s.Progress(); got != 0 {
		t.Errorf("expected progress 0 at start, got %v", got)
	}

	d.pos = 5 * 60 * stimulus.SampleRate
	if got := s.Progress(); got < 0.499 || got > 0.501 {
		t.Errorf("expected progress 0.5 at the halfway point, got %v", got)
	}

	d.pos = 20 * 60 * stimulus.SampleRate
	if got := s.Progress(); got != 1 {
		t.Errorf("expected progress clamped to 1 past the limit, got %v", got)
	}
}

func TestProgressWithoutLimit(t *testing.T) {
	d := &fakeDriver{pos: 90 * stimulus.SampleRate, playing: true}
	s := New(d, 0)

	if got := s.Progress(); got != 0 {
		t.Errorf("expected progress 0 without a limit, got %v", got)
	}
}

func TestAutoStop(t *testing.T) {
	d := &fakeDriver{playing: true}
	s := New(d, time.Second)

	// Before the limit nothing happens.
	if s.CheckLimit() {
		t.Error("expected no completion before the limit")
	}
	if !d.playing {
		t.Error("expected playback untouched before the limit")
	}

	// At the limit the session pauses output and completes once.
	d.pos = stimulus.SampleRate
	if !s.CheckLimit() {
		t.Error("expected completion at the limit")
	}
	if d.playing {
		t.Error("expected playback paused at the limit")
	}
	if !s.Complete() {
		t.Error("expected session marked complete")
	}

	select {
	case <-s.Done():
	default:
		t.Error("expected done channel to be closed")
	}

	// A second check must not complete (or close the channel) again.
	if s.CheckLimit() {
		t.Error("expected completion to fire only once")
	}
}

func TestCheckLimitWithoutLimit(t *testing.T) {
	d := &fakeDriver{pos: 90 * stimulus.SampleRate, playing: true}
	s := New(d, 0)

	if s.CheckLimit() {
		t.Error("expected no completion without a limit")
	}
	if !d.playing {
		t.Error("expected playback untouched without a limit")
	}
}

func TestWatchReturnsOnCancel(t *testing.T) {
	d := &fakeDriver{playing: true}
	s := New(d, 0)

	ctx, cancel := context.WithCancel(context.Background())
	returned := make(chan struct{})
	go func() {
		s.Watch(ctx)
		close(returned)
	}()

	cancel()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after cancellation")
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{time.Minute, "01:00"},
		{61 * time.Second, "01:01"},
		{59*time.Minute + 59*time.Second, "59:59"},
		{time.Hour, "60:00"},
		{90 * time.Minute, "90:00"},
		{-time.Second, "00:00"},
		{1500 * time.Millisecond, "00:01"},
	}

	for _, tt := range tests {
		if got := FormatElapsed(tt.d); got != tt.expected {
			t.Errorf("FormatElapsed(%v) = %q, expected %q", tt.d, got, tt.expected)
		}
	}
}
