// ABOUTME: Entry point for the GammaStim stimulation player
// ABOUTME: Parses CLI flags, starts the audio engine and the TUI
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gammastim/gammastim-go/internal/config"
	"github.com/gammastim/gammastim-go/internal/session"
	"github.com/gammastim/gammastim-go/internal/ui"
	"github.com/gammastim/gammastim-go/internal/version"
	"github.com/gammastim/gammastim-go/pkg/playback"
	"github.com/gammastim/gammastim-go/pkg/stimulus"
)

var (
	configPath = flag.String("config", "gammastim.yaml", "Config file path")
	logFile    = flag.String("log-file", "gammastim.log", "Log file path")
	noTUI      = flag.Bool("no-tui", false, "Disable TUI, use streaming logs instead")
	streamLogs = flag.Bool("stream-logs", false, "Alias for -no-tui")
)

func main() {
	flag.Parse()

	// Determine if we should use TUI or streaming logs
	useTUI := !(*noTUI || *streamLogs)

	// Set up logging
	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer func() { _ = f.Close() }()

	if useTUI {
		// TUI mode: log only to file, the terminal belongs to the TUI
		log.SetOutput(f)
	} else {
		// Streaming logs mode: log to both stdout and file
		multiWriter := io.MultiWriter(os.Stdout, f)
		log.SetOutput(multiWriter)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	printInfo(cfg)

	// Run state, synthesizer and the pull-based driver
	state := stimulus.NewState()
	driver := playback.NewDriver(state, stimulus.NewSynth(state))

	// The audio device is required; without it there is nothing to do.
	engine, err := playback.NewEngine(driver, cfg.Buffer())
	if err != nil {
		log.Fatalf("Failed to open audio device: %v", err)
	}
	engine.Start()

	sess := session.New(driver, cfg.Limit())
	log.Printf("Session %s started", sess.ID())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sess.Watch(ctx)

	// TUI setup
	var controls *ui.Controls
	if useTUI {
		controls = ui.NewControls()
		prog := ui.Run(driver, sess, controls)
		go func() {
			// A broken terminal must not stop the stimulus; keep
			// streaming and leave shutdown to the signal handler.
			if _, err := prog.Run(); err != nil {
				log.Printf("TUI failed, continuing headless: %v", err)
			}
		}()
	} else {
		log.Printf("TUI disabled - streaming status to logs")
		go statusLogLoop(ctx, driver, sess)
	}

	// Handle shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for quit signal from TUI or OS
	if controls != nil {
		select {
		case <-controls.Quit:
			log.Printf("Received quit signal from TUI")
		case <-sigChan:
			log.Printf("Shutdown signal received")
		}
	} else {
		<-sigChan
		log.Printf("Shutdown signal received")
	}

	if err := engine.Close(); err != nil {
		log.Printf("Error closing audio engine: %v", err)
	}

	log.Printf("Stopped after %s", session.FormatElapsed(sess.Elapsed()))
}

// printInfo logs the stimulus parameters and controls at startup
func printInfo(cfg *config.Config) {
	limit := "none"
	if cfg.Limit() > 0 {
		limit = session.FormatElapsed(cfg.Limit())
	}

	log.Printf("========================================")
	log.Printf("  %s %s - 40Hz Auditory Stimulation", version.Product, version.Version)
	log.Printf("========================================")
	log.Printf("Stimulus:")
	log.Printf("  Tone frequency: %dHz pure tone", stimulus.ToneFrequency)
	log.Printf("  Tone duration:  %dms", stimulus.ToneDurationMs)
	log.Printf("  Stimulus rate:  %dHz (every %dms)", 1000/stimulus.PulseIntervalMs, stimulus.PulseIntervalMs)
	log.Printf("  Sample rate:    %dHz", stimulus.SampleRate)
	log.Printf("  Amplitude:      %.1f", stimulus.Amplitude)
	log.Printf("Session limit: %s", limit)
	log.Printf("Controls: SPACE pause/resume, T continuous tone, Q/ESC quit")
	log.Printf("WARNING: For research and educational purposes only.")
	log.Printf("         Consult a medical professional before use.")
}

// statusLogLoop periodically logs playback status when no TUI is shown
func statusLogLoop(ctx context.Context, driver *playback.Driver, sess *session.Session) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	done := sess.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			log.Printf("Session limit reached, output paused")
			done = nil
		case <-ticker.C:
			log.Printf("Status: elapsed=%s playing=%v continuous=%v position=%d",
				session.FormatElapsed(sess.Elapsed()),
				driver.Playing(), driver.ContinuousTone(), driver.Position())
		}
	}
}
