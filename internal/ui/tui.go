// ABOUTME: TUI initialization and control
// ABOUTME: Wraps the bubbletea program for the stimulation display
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gammastim/gammastim-go/internal/session"
)

// Controls holds the channel the TUI uses to signal the rest of the
// process.
type Controls struct {
	Quit chan struct{}
}

// NewControls creates the TUI control channels.
func NewControls() *Controls {
	return &Controls{
		Quit: make(chan struct{}, 1),
	}
}

// Run builds the TUI program over the driver and session. The caller
// runs it and owns the fallback when the terminal cannot be used;
// display problems must never interrupt the audio stream.
func Run(driver Driver, sess *session.Session, controls *Controls) *tea.Program {
	return tea.NewProgram(NewModel(driver, sess, controls), tea.WithAltScreen())
}
