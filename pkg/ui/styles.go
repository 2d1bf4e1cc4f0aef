package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	// TitleStyle renders report section headers
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// MutedStyle renders secondary detail like elapsed time
	MutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

	// ErrorStyle renders failure lines
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))

	// DryRunStyle highlights the dry-run annotation
	DryRunStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("178")).Bold(true)
)

// init downgrades styling when stdout is not a terminal so piped output
// stays clean.
func init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
