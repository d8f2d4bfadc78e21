// Package style holds the lipgloss styles shared by the gamebox CLI
// output: box summaries, launcher tables and documentation listings.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Headers and titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Status styles
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	// Paths and filenames
	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)

	// The default-launcher marker in launcher listings
	DefaultMarkerStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)
