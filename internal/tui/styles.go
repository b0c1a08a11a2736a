// Package tui is the interactive terminal demo host for the channel
// navigator. It feeds bubbletea input to the controller as navigator events
// and rasterizes the renderer's draw calls onto the terminal.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette shared by the demo views.
var (
	colorWhite = lipgloss.Color("#FAFAFA")
	colorGray  = lipgloss.Color("#888888")
	colorGreen = lipgloss.Color("#6BCB77")
	colorRed   = lipgloss.Color("#FF6B6B")
)

var (
	footerStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	nameStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	dimNameStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	selectedMarkStyle = lipgloss.NewStyle().
				Foreground(colorGreen).
				Bold(true)
)

// accentHeaderStyle builds the header bar style from the configured accent
// color.
func accentHeaderStyle(accent string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(accent)).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true)
}
