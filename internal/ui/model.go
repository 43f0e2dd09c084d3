// ABOUTME: Bubbletea model for the stimulation TUI
// ABOUTME: Renders live run state and maps keys onto the run-state controls
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gammastim/gammastim-go/internal/session"
	"github.com/gammastim/gammastim-go/internal/version"
	"github.com/gammastim/gammastim-go/pkg/stimulus"
)

// Driver is the slice of the playback driver the TUI needs: read-only
// status for display plus the two run-flag toggles.
type Driver interface {
	Position() uint64
	Playing() bool
	ContinuousTone() bool
	TogglePlaying() bool
	ToggleContinuousTone() bool
}

// Model represents the TUI state. All live values are read from the
// driver and session on render; the model itself only tracks the
// terminal dimensions and shutdown.
type Model struct {
	driver   Driver
	sess     *session.Session
	controls *Controls

	width    int
	height   int
	quitting bool
}

// tickMsg drives the periodic redraw.
type tickMsg time.Time

// tickEvery redraws at 20Hz, enough to keep the pulse indicator and
// elapsed display lively without churning the terminal.
func tickEvery() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// NewModel creates the TUI model over the given driver and session.
func NewModel(driver Driver, sess *session.Session, controls *Controls) Model {
	return Model{
		driver:   driver,
		sess:     sess,
		controls: controls,
	}
}

// Init starts the redraw ticker.
func (m Model) Init() tea.Cmd {
	return tickEvery()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		return m, tickEvery()
	}

	return m, nil
}

// handleKey maps keyboard input onto the run-state controls.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		// Tell main to shut the engine down.
		select {
		case m.controls.Quit <- struct{}{}:
		default:
		}
		return m, tea.Quit
	case " ":
		m.driver.TogglePlaying()
	case "t":
		m.driver.ToggleContinuousTone()
	}

	return m, nil
}

// View renders the TUI.
func (m Model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}
	if m.width == 0 {
		return "Loading..."
	}

	playing := m.driver.Playing()
	continuous := m.driver.ContinuousTone()
	pos := m.driver.Position()

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %s - 40Hz Auditory Stimulation", version.Product, version.Version)))
	b.WriteString("\n\n")

	dot, style := indicator(playing, continuous, pos)
	b.WriteString(headerStyle.Render("Pulse:   "))
	b.WriteString(style.Render(dot))
	b.WriteString(" ")
	b.WriteString(valueStyle.Render(modeName(continuous)))
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("State:   "))
	switch {
	case m.sess.Complete() && !playing:
		b.WriteString(completeStyle.Render("Session complete, output paused"))
	case playing:
		b.WriteString(valueStyle.Render("Playing"))
	default:
		b.WriteString(pausedStyle.Render("Paused"))
	}
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Elapsed: "))
	b.WriteString(valueStyle.Render(session.FormatElapsed(m.sess.Elapsed())))
	b.WriteString("\n")

	if limit := m.sess.Limit(); limit > 0 {
		percent := int(m.sess.Progress() * 100)
		b.WriteString(headerStyle.Render("Session: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("[%s] %d%% of %s",
			renderBar(percent, 100, 20), percent, session.FormatElapsed(limit))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space:Pause/Resume  t:Continuous tone  q:Quit"))
	b.WriteString("\n")

	return b.String()
}

// indicator picks the pulse dot and its style for the current instant:
// bright during the 1ms tone window, dim between pulses, the
// calibration color in continuous mode, gray while paused.
func indicator(playing, continuous bool, pos uint64) (string, lipgloss.Style) {
	switch {
	case !playing:
		return "○", pausedStyle
	case continuous:
		return "●", continuousStyle
	case pos%stimulus.SamplesPerInterval < stimulus.SamplesPerTone:
		return "●", pulseOnStyle
	default:
		return "·", pulseOffStyle
	}
}

// modeName names the synthesis mode for display.
func modeName(continuous bool) string {
	if continuous {
		return "continuous 1kHz tone (calibration)"
	}
	return "1kHz tone, 1ms pulse every 25ms"
}

// renderBar draws a fixed-width progress bar.
func renderBar(value, max, width int) string {
	filled := (value * width) / max
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}
