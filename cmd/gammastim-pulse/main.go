// ABOUTME: Entry point for the graphical pulse window
// ABOUTME: Runs the audio engine with an ebiten window instead of the TUI
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gammastim/gammastim-go/internal/config"
	"github.com/gammastim/gammastim-go/internal/session"
	"github.com/gammastim/gammastim-go/internal/version"
	"github.com/gammastim/gammastim-go/internal/visual"
	"github.com/gammastim/gammastim-go/pkg/playback"
	"github.com/gammastim/gammastim-go/pkg/stimulus"
)

var (
	configPath = flag.String("config", "gammastim.yaml", "Config file path")
	logFile    = flag.String("log-file", "gammastim-pulse.log", "Log file path")
)

func main() {
	flag.Parse()

	// Set up logging
	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer func() { _ = f.Close() }()
	log.SetOutput(io.MultiWriter(os.Stdout, f))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	state := stimulus.NewState()
	driver := playback.NewDriver(state, stimulus.NewSynth(state))

	// Audio comes up before the window: the stream must not depend on
	// rendering in any way.
	engine, err := playback.NewEngine(driver, cfg.Buffer())
	if err != nil {
		log.Fatalf("Failed to open audio device: %v", err)
	}
	engine.Start()

	sess := session.New(driver, cfg.Limit())
	log.Printf("%s %s session %s started", version.Product, version.Version, sess.ID())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sess.Watch(ctx)

	// The window owns the main goroutine until the operator closes it.
	// If it cannot open, stay up headless until a signal arrives; the
	// stimulus keeps streaming either way.
	if err := visual.New(driver, sess).Run(); err != nil {
		log.Printf("Window failed, continuing headless: %v", err)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Printf("Shutdown signal received")
	}

	if err := engine.Close(); err != nil {
		log.Printf("Error closing audio engine: %v", err)
	}

	log.Printf("Stopped after %s", session.FormatElapsed(sess.Elapsed()))
}
