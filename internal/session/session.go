// ABOUTME: Session tracking over the stream clock
// ABOUTME: Provides elapsed time, progress and the automatic pause at the limit
package session

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/gammastim/gammastim-go/pkg/stimulus"
)

// Driver is the part of the playback driver a session needs: the stream
// clock for elapsed time and the playing flag for the automatic stop.
type Driver interface {
	Position() uint64
	SetPlaying(bool)
}

// Session tracks one stimulation run. Elapsed time derives from the
// stream clock rather than the wall clock: the clock advances through
// pauses and the device pulls in real time, so stream time tracks wall
// time without a second timebase.
type Session struct {
	id     string
	driver Driver
	limit  time.Duration
	origin uint64

	complete atomic.Bool
	done     chan struct{}
}

// New starts tracking a session from the driver's current position. A
// zero limit disables the automatic stop.
func New(driver Driver, limit time.Duration) *Session {
	return &Session{
		id:     uuid.New().String(),
		driver: driver,
		limit:  limit,
		origin: driver.Position(),
		done:   make(chan struct{}),
	}
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string {
	return s.id
}

// Limit returns the configured session limit, zero when disabled.
func (s *Session) Limit() time.Duration {
	return s.limit
}

// Elapsed returns stream time since the session began.
func (s *Session) Elapsed() time.Duration {
	samples := s.driver.Position() - s.origin
	secs := samples / stimulus.SampleRate
	rem := samples % stimulus.SampleRate
	return time.Duration(secs)*time.Second + time.Duration(rem)*time.Second/stimulus.SampleRate
}

// Progress returns the fraction of the session limit consumed, clamped
// to [0, 1]. Without a limit it is always zero.
func (s *Session) Progress() float64 {
	if s.limit <= 0 {
		return 0
	}
	p := float64(s.Elapsed()) / float64(s.limit)
	if p > 1 {
		p = 1
	}
	return p
}

// Complete reports whether the session limit has been reached.
func (s *Session) Complete() bool {
	return s.complete.Load()
}

// Done returns a channel that is closed when the limit is reached.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Watch pauses stimulation once the session limit is reached, then
// returns. With no limit it waits only for cancellation. Run it on its
// own goroutine.
func (s *Session) Watch(ctx context.Context) {
	if s.limit <= 0 {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.CheckLimit() {
				log.Printf("Session %s complete after %s, output paused", s.id, FormatElapsed(s.Elapsed()))
				return
			}
		}
	}
}

// CheckLimit applies the limit once, pausing the driver and closing the
// done channel the first time elapsed reaches it. Watch calls this every
// second; it returns true only on the call that completes the session.
func (s *Session) CheckLimit() bool {
	if s.limit <= 0 || s.complete.Load() || s.Elapsed() < s.limit {
		return false
	}

	s.driver.SetPlaying(false)
	s.complete.Store(true)
	close(s.done)
	return true
}

// FormatElapsed renders a duration as MM:SS for titles and displays.
// Minutes keep counting past the hour.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
