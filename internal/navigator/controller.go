package navigator

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/LISSConsulting/LISSTech.CurveNav/internal/curve"
	"github.com/LISSConsulting/LISSTech.CurveNav/internal/logging"
	"github.com/LISSConsulting/LISSTech.CurveNav/internal/selection"
)

// ErrNoChannels is returned by Open when the document has no eligible
// channels. Nothing is mutated and no snapshot is taken.
var ErrNoChannels = errors.New("navigator: no channels to navigate")

// Status is the lifecycle state of a navigator interaction.
type Status int

const (
	StatusActive Status = iota
	StatusCommitted
	StatusCancelled
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusCommitted:
		return "committed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// DragToggle is the transient batch-toggle started by pressing an icon zone:
// while the button stays down, Value is stamped onto Flag of every row the
// pointer crosses.
type DragToggle struct {
	Active bool
	Flag   ChannelFlag
	Value  bool
}

// Options configures a navigator interaction. All sizes are in pixels.
type Options struct {
	RowHeight      float64
	RowWidth       float64
	TextSize       float64
	MaxVisibleRows int

	IconMargin    float64
	IconSize      float64
	ColorBarWidth float64

	BackgroundAlpha   float64
	AutoFocusOnChange bool

	// FrameStart/FrameEnd is the playback or preview range the FocusPlanner
	// falls back to when the selection has no horizontal extent.
	FrameStart float64
	FrameEnd   float64
}

// withDefaults fills zero fields with the standard layout values.
func (o Options) withDefaults() Options {
	if o.RowHeight == 0 {
		o.RowHeight = 28
	}
	if o.RowWidth == 0 {
		o.RowWidth = 280
	}
	if o.TextSize == 0 {
		o.TextSize = 12
	}
	if o.MaxVisibleRows == 0 {
		o.MaxVisibleRows = 8
	}
	if o.IconMargin == 0 {
		o.IconMargin = 20
	}
	if o.IconSize == 0 {
		o.IconSize = 14
	}
	if o.ColorBarWidth == 0 {
		o.ColorBarWidth = 6
	}
	if o.BackgroundAlpha == 0 {
		o.BackgroundAlpha = 0.96
	}
	return o
}

// Controller is the modal state machine of the navigator. It runs
// synchronously inside the host's input dispatch: the host feeds it one
// event at a time and reads back the status. The whole interaction is atomic
// through the selection snapshot — intermediate events mutate live channel
// state for preview, and cancel restores the snapshot bit for bit.
//
// A Controller is owned by whoever opened it and is passed by reference;
// there is no process-wide registry of the running instance.
type Controller struct {
	doc  curve.Document
	opts Options
	list *ListModel
	geom Geometry
	snap *selection.Snapshot

	status   Status
	current  int // channel index of the current row, -1 when none
	pointerX float64
	pointerY float64
	pressed  bool
	drag     DragToggle
	plan     *FramePlan

	log *logrus.Entry
}

// Open starts a navigator interaction at the given pointer position within a
// region of the given size. It fails with ErrNoChannels before any mutation
// when the document has nothing to show. The snapshot taken here is the sole
// rollback point for the whole interaction.
func Open(doc curve.Document, opts Options, pointerX, pointerY, regionW, regionH float64) (*Controller, error) {
	opts = opts.withDefaults()

	list := NewListModel(doc, opts.MaxVisibleRows)
	if list.Len() == 0 {
		return nil, ErrNoChannels
	}

	c := &Controller{
		doc:      doc,
		opts:     opts,
		list:     list,
		snap:     selection.Capture(list.Channels()),
		current:  firstSelected(list.Channels()),
		pointerX: pointerX,
		pointerY: pointerY,
		log:      logging.NewLogger("navigator"),
	}

	// Center the window on the current channel and put its row under the
	// invoking pointer.
	c.list.CenterOn(c.current)
	c.geom = PlaceGeometry(Geometry{
		RowWidth:      opts.RowWidth,
		RowHeight:     opts.RowHeight,
		Rows:          c.list.DisplayCount(),
		IconMargin:    opts.IconMargin,
		IconSize:      opts.IconSize,
		ColorBarWidth: opts.ColorBarWidth,
		TextSize:      opts.TextSize,
	}, pointerX, pointerY, c.list.DisplayIndex(c.current), regionW, regionH)

	return c, nil
}

// firstSelected returns the index of the first selected channel, or 0.
func firstSelected(channels []*curve.Channel) int {
	for i, ch := range channels {
		if ch.Selected {
			return i
		}
	}
	return 0
}

// HandleEvent feeds one host input event to the controller and returns the
// resulting status. Events arriving after the interaction ended are ignored.
func (c *Controller) HandleEvent(ev Event) Status {
	if c.status != StatusActive {
		return c.status
	}

	switch ev.Type {
	case PointerMove:
		c.pointerX, c.pointerY = ev.X, ev.Y
		row, zone := c.geom.HitTest(ev.X, ev.Y)
		switch {
		case c.pressed && c.drag.Active && row >= 0:
			c.stampDrag(row)
		case !c.drag.Active && zone == ZoneText:
			if idx := c.list.ChannelIndex(row); idx >= 0 && idx != c.current {
				c.apply(Command{Op: CmdSelect, Index: idx})
			}
		}

	case ButtonPress:
		switch ev.Button {
		case ButtonRight:
			c.apply(Command{Op: CmdCancel})
		case ButtonLeft:
			c.pressed = true
			c.handlePress(ev)
		}

	case ButtonRelease:
		if ev.Button == ButtonLeft {
			c.pressed = false
			c.drag = DragToggle{}
		}

	case KeyPress:
		switch ev.Key {
		case KeyHide:
			c.apply(Command{Op: CmdToggleHide, Index: c.current})
		case KeyLock:
			c.apply(Command{Op: CmdToggleLock, Index: c.current})
		case KeyMute:
			c.apply(Command{Op: CmdToggleMute, Index: c.current})
		case KeyCancel:
			c.apply(Command{Op: CmdCancel})
		}

	case KeyRelease:
		if ev.Key == KeyInvoke {
			if ev.Mod.Shift {
				c.apply(Command{Op: CmdConfirm})
			} else {
				c.apply(Command{Op: CmdCancel})
			}
		}

	case Scroll:
		c.apply(Command{Op: CmdScroll, Delta: -ev.Delta})
	}

	return c.status
}

// handlePress dispatches a left-button press by hit zone: icon zones toggle
// the row's flag and begin a drag toggle, a modifier press in the text zone
// solos the row.
func (c *Controller) handlePress(ev Event) {
	row, zone := c.geom.HitTest(ev.X, ev.Y)
	idx := c.list.ChannelIndex(row)
	if idx < 0 {
		return
	}

	switch zone {
	case ZoneHide:
		c.beginDragToggle(idx, FlagHide)
	case ZoneLock:
		c.beginDragToggle(idx, FlagLock)
	case ZoneMute:
		c.beginDragToggle(idx, FlagMute)
	case ZoneText:
		if ev.Mod.Ctrl {
			c.apply(Command{Op: CmdSolo, Index: idx})
		}
	}
}

// beginDragToggle toggles the flag on the pressed row and starts a drag
// carrying the new value.
func (c *Controller) beginDragToggle(idx int, flag ChannelFlag) {
	switch flag {
	case FlagHide:
		c.apply(Command{Op: CmdToggleHide, Index: idx})
	case FlagLock:
		c.apply(Command{Op: CmdToggleLock, Index: idx})
	case FlagMute:
		c.apply(Command{Op: CmdToggleMute, Index: idx})
	}

	ch := c.list.Channel(idx)
	if ch == nil {
		return
	}
	c.drag = DragToggle{Active: true, Flag: flag, Value: channelFlag(ch, flag)}
}

// stampDrag applies the drag toggle value to the row under the pointer.
func (c *Controller) stampDrag(row int) {
	ch := c.list.ChannelAt(row)
	if ch == nil {
		return
	}
	setChannelFlag(ch, c.drag.Flag, c.drag.Value)
}

// apply executes one command. This switch is the single dispatch point for
// every mutation the controller performs.
func (c *Controller) apply(cmd Command) {
	switch cmd.Op {
	case CmdToggleHide, CmdToggleLock, CmdToggleMute:
		ch := c.list.Channel(cmd.Index)
		if ch == nil {
			return
		}
		flag := FlagHide
		switch cmd.Op {
		case CmdToggleLock:
			flag = FlagLock
		case CmdToggleMute:
			flag = FlagMute
		}
		setChannelFlag(ch, flag, !channelFlag(ch, flag))

	case CmdSelect:
		c.selectChannel(cmd.Index)

	case CmdSolo:
		c.soloChannel(cmd.Index)

	case CmdScroll:
		c.list.Scroll(cmd.Delta)

	case CmdConfirm:
		if c.opts.AutoFocusOnChange {
			plan := PlanFocus(c.aliveChannels(), c.opts.FrameStart, c.opts.FrameEnd)
			c.plan = &plan
		}
		c.status = StatusCommitted

	case CmdCancel:
		c.snap.Restore()
		c.status = StatusCancelled
	}
}

// selectChannel makes idx the current channel, carrying the fine-grained
// keyframe selection over from the previous current channel (live preview).
func (c *Controller) selectChannel(idx int) {
	to := c.list.Channel(idx)
	if to == nil || idx == c.current {
		return
	}

	from := c.list.Channel(c.current)
	if from != nil && from != to {
		selection.Transfer(from, to, false)
	} else {
		for _, ch := range c.aliveChannels() {
			ch.Selected = ch == to
		}
	}

	c.current = idx
	c.log.WithField("channel", to.DisplayName()).Debug("changed channel")
}

// soloChannel hides every channel except the target; soloing the sole
// visible channel again unhides all of them. The target becomes the selected
// current channel either way.
func (c *Controller) soloChannel(idx int) {
	target := c.list.Channel(idx)
	if target == nil {
		return
	}

	channels := c.aliveChannels()
	visible := 0
	for _, ch := range channels {
		if !ch.Hidden {
			visible++
		}
	}

	if visible == 1 && !target.Hidden {
		for _, ch := range channels {
			ch.Hidden = false
		}
		c.log.Debug("unsolo: all channels visible")
	} else {
		for _, ch := range channels {
			ch.Hidden = ch != target
		}
		c.log.WithField("channel", target.DisplayName()).Debug("solo")
	}

	for _, ch := range channels {
		ch.Selected = ch == target
	}
	c.current = idx
}

// aliveChannels returns the list's channels that are still in the document.
func (c *Controller) aliveChannels() []*curve.Channel {
	var out []*curve.Channel
	for i := range c.list.Channels() {
		if ch := c.list.Channel(i); ch != nil {
			out = append(out, ch)
		}
	}
	return out
}

// channelFlag reads one toggle flag from a channel.
func channelFlag(ch *curve.Channel, flag ChannelFlag) bool {
	switch flag {
	case FlagHide:
		return ch.Hidden
	case FlagLock:
		return ch.Locked
	case FlagMute:
		return ch.Muted
	default:
		return false
	}
}

// setChannelFlag writes one toggle flag on a channel.
func setChannelFlag(ch *curve.Channel, flag ChannelFlag, v bool) {
	switch flag {
	case FlagHide:
		ch.Hidden = v
	case FlagLock:
		ch.Locked = v
	case FlagMute:
		ch.Muted = v
	}
}

// Status returns the interaction's lifecycle state.
func (c *Controller) Status() Status { return c.status }

// List returns the channel list model.
func (c *Controller) List() *ListModel { return c.list }

// Geometry returns the popup's pixel layout.
func (c *Controller) Geometry() Geometry { return c.geom }

// Options returns the options the controller was opened with, with defaults
// applied.
func (c *Controller) Options() Options { return c.opts }

// Current returns the channel index of the current row.
func (c *Controller) Current() int { return c.current }

// CurrentChannel returns the current channel, or nil when it has been
// removed from the document.
func (c *Controller) CurrentChannel() *curve.Channel { return c.list.Channel(c.current) }

// Dragging reports whether a drag toggle is in progress.
func (c *Controller) Dragging() bool { return c.drag.Active }

// Pointer returns the last seen pointer position.
func (c *Controller) Pointer() (float64, float64) { return c.pointerX, c.pointerY }

// Plan returns the framing plan produced on commit, or nil when the
// interaction was cancelled or auto-focus is disabled.
func (c *Controller) Plan() *FramePlan { return c.plan }
