package navigator

import "fmt"

// ChannelFlag identifies one of the per-channel toggle flags.
type ChannelFlag int

const (
	FlagHide ChannelFlag = iota
	FlagLock
	FlagMute
)

// String returns the flag name.
func (f ChannelFlag) String() string {
	switch f {
	case FlagHide:
		return "hide"
	case FlagLock:
		return "lock"
	case FlagMute:
		return "mute"
	default:
		return "unknown"
	}
}

// CommandOp enumerates the closed set of operations the controller can apply.
type CommandOp int

const (
	// CmdToggleHide/Lock/Mute flip one flag on the channel at Index.
	CmdToggleHide CommandOp = iota
	CmdToggleLock
	CmdToggleMute
	// CmdSelect makes the channel at Index current, transferring the
	// fine-grained selection from the previous current channel.
	CmdSelect
	// CmdSolo hides everything but the channel at Index, or unhides all when
	// that channel is already the only visible one.
	CmdSolo
	// CmdScroll moves the display window by Delta rows.
	CmdScroll
	// CmdConfirm commits the interaction; CmdCancel rolls it back.
	CmdConfirm
	CmdCancel
)

// Command is one operation dispatched inside the controller. Index is a
// channel index into the list model; Delta is used by CmdScroll.
type Command struct {
	Op    CommandOp
	Index int
	Delta int
}

// String renders the command for debug logging.
func (c Command) String() string {
	switch c.Op {
	case CmdToggleHide:
		return fmt.Sprintf("toggle-hide(%d)", c.Index)
	case CmdToggleLock:
		return fmt.Sprintf("toggle-lock(%d)", c.Index)
	case CmdToggleMute:
		return fmt.Sprintf("toggle-mute(%d)", c.Index)
	case CmdSelect:
		return fmt.Sprintf("select(%d)", c.Index)
	case CmdSolo:
		return fmt.Sprintf("solo(%d)", c.Index)
	case CmdScroll:
		return fmt.Sprintf("scroll(%+d)", c.Delta)
	case CmdConfirm:
		return "confirm"
	case CmdCancel:
		return "cancel"
	default:
		return fmt.Sprintf("command(%d)", int(c.Op))
	}
}
