package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// View renders the demo: header bar, navigator frame or channel table,
// footer with key help and status.
func (m Model) View() string {
	header := m.renderHeader()
	footer := m.renderFooter()

	var body string
	if m.ctrl != nil {
		body = m.renderNavigator()
	} else {
		body = m.renderChannelTable()
	}

	return header + "\n" + body + "\n" + footer
}

func (m Model) renderHeader() string {
	selected := "—"
	for _, ch := range m.doc.Channels {
		if ch.Selected {
			selected = ch.DisplayName()
			break
		}
	}

	parts := []string{
		"CurveNav",
		fmt.Sprintf("channels: %d", len(m.doc.Channels)),
		fmt.Sprintf("selected: %s", selected),
	}
	content := strings.Join(parts, "  │  ")
	return accentHeaderStyle(m.cfg.TUI.AccentColor).Width(m.width).Render(content)
}

func (m Model) renderFooter() string {
	help := m.km.helpLine(m.ctrl != nil)
	left := footerStyle.Render(help)
	right := m.status

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderNavigator runs the renderer into the cell backend and emits the
// frame. The backend is cleared first so the draw stays idempotent across
// redraws.
func (m Model) renderNavigator() string {
	if m.backend.w != m.width || m.backend.h != m.bodyHeight() {
		m.backend.resize(m.width, m.bodyHeight())
	}
	m.backend.clear()
	m.renderer.Draw(m.ctrl, m.phase)
	return m.backend.String()
}

// renderChannelTable lists the document's channels with their flags when no
// navigator is open.
func (m Model) renderChannelTable() string {
	var b strings.Builder

	rows := m.bodyHeight()
	for i := 0; i < rows; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i >= len(m.doc.Channels) {
			continue
		}
		ch := m.doc.Channels[i]

		mark := "  "
		if ch.Selected {
			mark = selectedMarkStyle.Render("▶ ")
		}

		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(hexColor(ch.DisplayColor(1)))).
			Render("█")

		flags := fmt.Sprintf("[%s%s%s]",
			flagRune(ch.Hidden, "H"), flagRune(ch.Locked, "L"), flagRune(ch.Muted, "M"))

		name := runewidth.Truncate(ch.DisplayName(), m.width-16, "…")
		style := nameStyle
		if ch.Hidden || ch.Muted {
			style = dimNameStyle
		}

		keys := fmt.Sprintf("%d keys", len(ch.Keys))
		b.WriteString(fmt.Sprintf("%s%s %s %s  %s",
			mark, swatch, style.Render(name), footerStyle.Render(flags), footerStyle.Render(keys)))
	}

	return b.String()
}

// flagRune shows a flag letter when set, a dot otherwise.
func flagRune(on bool, letter string) string {
	if on {
		return letter
	}
	return "·"
}
