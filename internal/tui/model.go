package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.CurveNav/internal/config"
	"github.com/LISSConsulting/LISSTech.CurveNav/internal/curve"
	"github.com/LISSConsulting/LISSTech.CurveNav/internal/navigator"
	"github.com/LISSConsulting/LISSTech.CurveNav/internal/render"
	"github.com/LISSConsulting/LISSTech.CurveNav/internal/selection"
)

// tickInterval drives the current-row border animation while the navigator
// is open.
const tickInterval = 100 * time.Millisecond

// tickMsg advances the border animation phase.
type tickMsg time.Time

// Model is the bubbletea model for the demo host. While a navigator is open
// it acts as the host input dispatch: every relevant message is translated
// to a navigator.Event and fed to the controller synchronously.
type Model struct {
	doc *curve.SliceDocument
	cfg *config.Config
	km  keyMap

	width  int
	height int
	mouseX int
	mouseY int

	ctrl     *navigator.Controller
	renderer *render.Renderer
	backend  *cellBackend
	phase    float64

	status string
}

// New creates the demo model over the given document and configuration.
func New(doc *curve.SliceDocument, cfg *config.Config) Model {
	return Model{
		doc:    doc,
		cfg:    cfg,
		km:     defaultKeyMap,
		width:  80,
		height: 24,
		status: "press n to open the channel navigator",
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.ctrl == nil {
			return m, nil
		}
		m.phase += float64(tickInterval) / float64(2*time.Second)
		if m.phase >= 1 {
			m.phase -= 1
		}
		return m, tick()

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

// updateKey handles keyboard input, synthesizing the navigator's key events.
func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.km.Quit) && m.ctrl == nil {
		return m, tea.Quit
	}

	if m.ctrl == nil {
		switch {
		case key.Matches(msg, m.km.Open):
			return m.openNavigator()
		case key.Matches(msg, m.km.Move):
			m.moveSelection(msg.String())
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.km.Confirm):
		// Key release with the confirm modifier commits.
		m.feed(navigator.Event{
			Type: navigator.KeyRelease,
			Key:  navigator.KeyInvoke,
			Mod:  navigator.Modifiers{Shift: true},
		})
	case key.Matches(msg, m.km.Open):
		// Releasing the invoke key without the modifier cancels.
		m.feed(navigator.Event{Type: navigator.KeyRelease, Key: navigator.KeyInvoke})
	case key.Matches(msg, m.km.Cancel):
		m.feed(navigator.Event{Type: navigator.KeyPress, Key: navigator.KeyCancel})
	case key.Matches(msg, m.km.Hide):
		m.feed(navigator.Event{Type: navigator.KeyPress, Key: navigator.KeyHide})
	case key.Matches(msg, m.km.Lock):
		m.feed(navigator.Event{Type: navigator.KeyPress, Key: navigator.KeyLock})
	case key.Matches(msg, m.km.Mute):
		m.feed(navigator.Event{Type: navigator.KeyPress, Key: navigator.KeyMute})
	}

	return m, nil
}

// updateMouse tracks the pointer and forwards events while a navigator is
// open. Terminal rows grow downward; draw space grows upward, so Y flips.
func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.mouseX, m.mouseY = msg.X, msg.Y
	if m.ctrl == nil {
		return m, nil
	}

	mod := navigator.Modifiers{Ctrl: msg.Ctrl, Shift: msg.Shift, Alt: msg.Alt}
	x, y := m.drawCoords(msg.X, msg.Y)

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.feed(navigator.Event{Type: navigator.Scroll, X: x, Y: y, Delta: 1, Mod: mod})
		return m, nil
	case tea.MouseButtonWheelDown:
		m.feed(navigator.Event{Type: navigator.Scroll, X: x, Y: y, Delta: -1, Mod: mod})
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		m.feed(navigator.Event{Type: navigator.PointerMove, X: x, Y: y, Mod: mod})
	case tea.MouseActionPress:
		m.feed(navigator.Event{
			Type: navigator.ButtonPress, X: x, Y: y,
			Button: mouseButton(msg.Button), Mod: mod,
		})
	case tea.MouseActionRelease:
		m.feed(navigator.Event{
			Type: navigator.ButtonRelease, X: x, Y: y,
			Button: mouseButton(msg.Button), Mod: mod,
		})
	}

	return m, nil
}

// moveSelection shifts the keyframe selection along the arrow direction.
// Shifted arrows extend instead of moving.
func (m Model) moveSelection(keyName string) {
	extend := strings.HasPrefix(keyName, "shift+")
	switch strings.TrimPrefix(keyName, "shift+") {
	case "left":
		selection.MoveHorizontally(m.doc.Channels, selection.Backward, extend)
	case "right":
		selection.MoveHorizontally(m.doc.Channels, selection.Forward, extend)
	case "up":
		selection.MoveVertically(m.doc.Channels, selection.Upward, extend)
	case "down":
		selection.MoveVertically(m.doc.Channels, selection.Downward, extend)
	}
}

// openNavigator starts an interaction at the pointer position.
func (m Model) openNavigator() (tea.Model, tea.Cmd) {
	bodyH := m.bodyHeight()
	m.backend = newCellBackend(m.width, bodyH)
	m.renderer = render.NewRenderer(m.backend)

	x, y := m.drawCoords(m.mouseX, m.mouseY)
	ctrl, err := navigator.Open(m.doc, m.navigatorOptions(), x, y, float64(m.width), float64(bodyH))
	if err != nil {
		m.status = errorStyle.Render(err.Error())
		return m, nil
	}

	m.ctrl = ctrl
	m.phase = 0
	m.status = "navigator open — hover to preview, ctrl+click to solo"
	return m, tick()
}

// feed sends one event to the controller and reacts to a terminal status.
func (m *Model) feed(ev navigator.Event) {
	switch m.ctrl.HandleEvent(ev) {
	case navigator.StatusCommitted:
		m.status = statusStyle.Render("committed" + planSummary(m.ctrl.Plan()))
		m.ctrl = nil
	case navigator.StatusCancelled:
		m.status = "cancelled — selection restored"
		m.ctrl = nil
	}
}

// planSummary formats the focus planner's decision for the status line.
func planSummary(plan *navigator.FramePlan) string {
	if plan == nil {
		return ""
	}
	if plan.UseRange {
		return fmt.Sprintf(" — framing playback range %.0f..%.0f", plan.Start, plan.End)
	}
	return fmt.Sprintf(" — framing keyframes %.0f..%.0f", plan.Start, plan.End)
}

// navigatorOptions scales the configured pixel sizes down to terminal cells.
func (m Model) navigatorOptions() navigator.Options {
	n := m.cfg.Navigator
	return navigator.Options{
		RowHeight:         float64(clamp(n.RowHeight/10, 2, 4)),
		RowWidth:          float64(clamp(n.RowWidth/7, 24, m.width-4)),
		TextSize:          1,
		MaxVisibleRows:    n.MaxVisibleRows,
		IconMargin:        3,
		IconSize:          1,
		ColorBarWidth:     1,
		BackgroundAlpha:   n.BackgroundAlpha,
		AutoFocusOnChange: n.AutoFocusOnChange,
		FrameStart:        m.cfg.Frame.Start,
		FrameEnd:          m.cfg.Frame.End,
	}
}

// drawCoords converts terminal cell coordinates (top-left origin) to draw
// coordinates (bottom-left origin) within the body area.
func (m Model) drawCoords(x, y int) (float64, float64) {
	return float64(x), float64(m.bodyHeight() - 1 - (y - 1))
}

// bodyHeight is the frame area between the header and footer lines.
func (m Model) bodyHeight() int {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

// tick schedules the next animation frame.
func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// mouseButton maps a bubbletea button to a navigator button.
func mouseButton(b tea.MouseButton) navigator.Button {
	switch b {
	case tea.MouseButtonLeft:
		return navigator.ButtonLeft
	case tea.MouseButtonRight:
		return navigator.ButtonRight
	default:
		return navigator.ButtonNone
	}
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
