package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.CurveNav/internal/config"
	"github.com/LISSConsulting/LISSTech.CurveNav/internal/curve"
	"github.com/LISSConsulting/LISSTech.CurveNav/internal/logging"
)

// Run starts the interactive demo over the given document. It owns the
// terminal until the user quits; log output is redirected away from the
// screen for the duration.
func Run(doc *curve.SliceDocument, cfg *config.Config) error {
	logging.SetOutput(io.Discard)

	p := tea.NewProgram(
		New(doc, cfg),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
