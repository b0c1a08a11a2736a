// Package navigator implements the interactive channel-selection popup: an
// ordered scrollable channel list, pointer hit-testing, and the modal
// controller that drives selection transfer, solo, and flag toggles until the
// interaction is committed or cancelled.
package navigator

// EventType classifies a host input event.
type EventType int

const (
	PointerMove EventType = iota
	ButtonPress
	ButtonRelease
	KeyPress
	KeyRelease
	Scroll
)

// Button identifies a pointer button.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
)

// Key is a logical key the controller recognizes. The host maps its physical
// keys onto these before feeding events.
type Key int

const (
	KeyNone Key = iota
	// KeyInvoke is the key that opened the navigator; releasing it ends the
	// interaction.
	KeyInvoke
	KeyHide
	KeyLock
	KeyMute
	KeyCancel
)

// Modifiers are the modifier flags carried by an event.
type Modifiers struct {
	Ctrl  bool
	Shift bool
	Alt   bool
}

// Event is one discrete host input event fed to the controller.
type Event struct {
	Type   EventType
	X, Y   float64
	Button Button
	Key    Key
	Delta  int // scroll steps, positive = up
	Mod    Modifiers
}
