// ABOUTME: Lipgloss styles for the stimulation display
// ABOUTME: Centralizes colors so the views stay declarative
package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	// Indicator colors: bright green inside the 1ms tone window, dim
	// green between pulses, blue for the continuous calibration tone,
	// gray while paused.
	pulseOnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46"))

	pulseOffStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("22"))

	continuousStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	completeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	helpStyle = lipgloss.NewStyle().
			Faint(true)
)
