// ABOUTME: Playback package streaming the stimulus to the audio device
// ABOUTME: Provides the pull-based Driver and the oto-backed Engine
// Package playback streams the stimulus waveform to the audio output device.
//
// The device pulls: oto's player goroutine calls Driver.Read whenever it
// needs more audio, and the Driver fills the request from the synthesizer
// at the current sample clock. This package provides:
//   - Driver: io.Reader producing mono float32 samples, owner of the
//     sample clock, responsible for muting while paused
//   - Engine: audio device lifecycle around the oto library
//
// Example:
//
//	state := stimulus.NewState()
//	driver := playback.NewDriver(state, stimulus.NewSynth(state))
//
//	engine, err := playback.NewEngine(driver, 23*time.Millisecond)
//	if err != nil {
//	    log.Fatalf("Failed to open audio device: %v", err)
//	}
//	engine.Start()
//	defer engine.Close()
package playback
