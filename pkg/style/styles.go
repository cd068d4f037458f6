// Package style defines the lipgloss styles for usm's terminal output.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Base styles
var (
	// Headers and titles
	TitleStyle = lipgloss.NewStyle().
			Bold(true)

	// Text styles
	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	// Status styles
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	// List styles
	AppStyle = lipgloss.NewStyle().
			Bold(true)

	CurrentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	PathStyle = lipgloss.NewStyle().
			Italic(true)
)

// Render applies a style only when stdout is a terminal; plain text
// otherwise so piped output stays clean.
func Render(s lipgloss.Style, text string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return text
	}
	return s.Render(text)
}
