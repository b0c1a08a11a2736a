package selection

import "github.com/LISSConsulting/LISSTech.CurveNav/internal/curve"

// HandleSide identifies one of the two tangent handles of a keyframe.
type HandleSide int

const (
	HandleLeft HandleSide = iota
	HandleRight
)

// String returns the handle side name.
func (h HandleSide) String() string {
	if h == HandleLeft {
		return "left"
	}
	return "right"
}

// ToggleHandles toggles selection of the given handle side across the
// selected keys of every channel in the batch, in two phases.
//
// Query phase: the handle counts as "fully selected" only if every channel
// with at least one selected key has that handle selected on all of its
// selected keys. A channel with nothing selected is vacuously true, so it
// never blocks toggling on the other channels in the batch.
//
// Apply phase: if fully selected, the handle is cleared and control-point
// selection is set in its place. Otherwise the handle is set; with extend
// false the opposite handle and the control point are cleared first.
//
// Querying before applying keeps the result independent of channel order.
func ToggleHandles(channels []*curve.Channel, side HandleSide, extend bool) {
	allSelected := true
	for _, ch := range channels {
		if !channelHandleFullySelected(ch, side) {
			allSelected = false
			break
		}
	}

	for _, ch := range channels {
		for _, item := range ch.SelectedKeys() {
			toggleKeyHandle(item.Key, side, extend, allSelected)
		}
	}
}

// channelHandleFullySelected reports whether every selected key of the
// channel has the given handle selected. True when nothing is selected.
func channelHandleFullySelected(ch *curve.Channel, side HandleSide) bool {
	for _, item := range ch.SelectedKeys() {
		if side == HandleLeft && !item.Left {
			return false
		}
		if side == HandleRight && !item.Right {
			return false
		}
	}
	return true
}

// toggleKeyHandle updates one keyframe's selection for a handle toggle.
func toggleKeyHandle(k *curve.Keyframe, side HandleSide, extend, allSelected bool) {
	switch side {
	case HandleLeft:
		if allSelected {
			k.SelectLeftHandle = false
			k.SelectControl = true
			return
		}
		if !extend {
			k.SelectRightHandle = false
			k.SelectControl = false
		}
		k.SelectLeftHandle = true

	case HandleRight:
		if allSelected {
			k.SelectRightHandle = false
			k.SelectControl = true
			return
		}
		if !extend {
			k.SelectLeftHandle = false
			k.SelectControl = false
		}
		k.SelectRightHandle = true
	}
}
