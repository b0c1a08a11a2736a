package selection

import (
	"sort"

	"github.com/LISSConsulting/LISSTech.CurveNav/internal/curve"
)

// MoveDirection is the direction of a selection move.
type MoveDirection int

const (
	// Forward and Backward move selection along the time axis.
	Forward MoveDirection = iota
	Backward
	// Upward and Downward move selection across adjacent channels.
	Upward
	Downward
)

// MoveHorizontally shifts the keyframe selection of every selected channel to
// the neighbouring key in time. Keys are processed far-side first so a key
// never lands on a slot another selected key is about to vacate.
func MoveHorizontally(channels []*curve.Channel, dir MoveDirection, extend bool) {
	for _, ch := range channels {
		if !ch.Selected {
			continue
		}
		moveChannelHorizontally(ch, dir, extend)
	}
}

func moveChannelHorizontally(ch *curve.Channel, dir MoveDirection, extend bool) {
	sel := ch.SelectedKeys()
	if len(sel) == 0 {
		return
	}

	if dir == Forward {
		sort.Slice(sel, func(i, j int) bool { return sel[i].Key.Time > sel[j].Key.Time })
	} else {
		sort.Slice(sel, func(i, j int) bool { return sel[i].Key.Time < sel[j].Key.Time })
	}

	for _, item := range sel {
		next := neighbourKey(ch, item.Key.Time, dir)
		if next != nil {
			transferKey(item, next, extend)
		}
	}
}

// neighbourKey returns the next key strictly after (Forward) or before
// (Backward) time t, or nil at the end of the channel.
func neighbourKey(ch *curve.Channel, t float64, dir MoveDirection) *curve.Keyframe {
	n := len(ch.Keys)
	if dir == Forward {
		i := sort.Search(n, func(i int) bool { return ch.Keys[i].Time > t })
		if i < n {
			return ch.Keys[i]
		}
		return nil
	}
	i := sort.Search(n, func(i int) bool { return ch.Keys[i].Time >= t })
	if i > 0 {
		return ch.Keys[i-1]
	}
	return nil
}

// MoveVertically migrates each selected channel's keyframe selection to the
// adjacent channel in list order, matching keys by nearest time. Channels are
// processed far-side first so selection moving into a channel is not picked
// up again in the same pass.
func MoveVertically(channels []*curve.Channel, dir MoveDirection, extend bool) {
	var selected []int
	for i, ch := range channels {
		if ch.Selected {
			selected = append(selected, i)
		}
	}
	if len(selected) == 0 {
		return
	}

	if dir == Downward {
		sort.Sort(sort.Reverse(sort.IntSlice(selected)))
	} else {
		sort.Ints(selected)
	}

	for _, i := range selected {
		next := i - 1
		if dir == Downward {
			next = i + 1
		}
		if next < 0 || next >= len(channels) {
			continue
		}
		moveChannelSelection(channels[i], channels[next], extend)
	}
}

func moveChannelSelection(from, to *curve.Channel, extend bool) {
	sel := from.SelectedKeys()
	if len(sel) == 0 || !to.HasKeys() {
		return
	}

	if !extend {
		from.Selected = false
	}
	to.Selected = true

	for _, item := range sel {
		transferKey(item, to.Keys[to.NearestKey(item.Key.Time)], extend)
	}
}

// transferKey moves one keyframe's captured selection onto target. Handle
// flags move only between Bezier keys.
func transferKey(item curve.KeySelection, target *curve.Keyframe, extend bool) {
	k := item.Key

	if !extend {
		k.SelectControl = false
	}
	target.SelectControl = item.Control

	if k.Interpolation != curve.Bezier || target.Interpolation != curve.Bezier {
		return
	}
	if item.Left {
		target.SelectLeftHandle = true
		if !extend {
			k.SelectLeftHandle = false
		}
	}
	if item.Right {
		target.SelectRightHandle = true
		if !extend {
			k.SelectRightHandle = false
		}
	}
}
