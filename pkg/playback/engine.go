// ABOUTME: Audio device lifecycle around the oto library
// ABOUTME: Opens the output context, attaches the driver, releases the device
package playback

import (
	"fmt"
	"log"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/gammastim/gammastim-go/pkg/stimulus"
)

// Engine owns the audio device. It attaches the Driver to an oto player
// as a mono 32-bit float stream at the stimulus sample rate.
type Engine struct {
	otoCtx *oto.Context
	player *oto.Player
}

// NewEngine opens the audio device and prepares a player over the
// driver. Device acquisition failure is fatal to the product: callers
// log the error and exit, there is no retry.
func NewEngine(driver *Driver, bufferSize time.Duration) (*Engine, error) {
	op := &oto.NewContextOptions{
		SampleRate:   stimulus.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   bufferSize,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("failed to create oto context: %w", err)
	}

	<-readyChan

	log.Printf("Audio output initialized: %dHz, 1 channel, float32", stimulus.SampleRate)

	return &Engine{
		otoCtx: ctx,
		player: ctx.NewPlayer(driver),
	}, nil
}

// Start begins pulling samples from the driver.
func (e *Engine) Start() {
	e.player.Play()
}

// Playing reports whether the device is currently pulling samples.
func (e *Engine) Playing() bool {
	return e.player.IsPlaying()
}

// Close stops playback and releases the device. The oto context itself
// cannot be torn down within a process, so it is suspended instead.
func (e *Engine) Close() error {
	if err := e.player.Close(); err != nil {
		return fmt.Errorf("failed to close player: %w", err)
	}
	return e.otoCtx.Suspend()
}
