// Package selection implements the fine-grained selection algorithms of the
// channel navigator: snapshot/rollback, nearest-time selection transfer,
// handle toggling, and directional selection moves.
package selection

import "github.com/LISSConsulting/LISSTech.CurveNav/internal/curve"

// keyState is one keyframe's captured selection triple.
type keyState struct {
	control bool
	left    bool
	right   bool
}

// channelState is one channel's captured state.
type channelState struct {
	ch       *curve.Channel
	selected bool
	hidden   bool
	keys     []keyState
}

// Snapshot is an immutable capture of selection and visibility state across a
// set of channels. It is taken before the first mutation of an interaction
// and is the sole rollback point on cancel.
type Snapshot struct {
	channels []channelState
}

// Capture records the selected/hidden flags and per-key selection triples of
// every given channel.
func Capture(channels []*curve.Channel) *Snapshot {
	s := &Snapshot{channels: make([]channelState, 0, len(channels))}
	for _, ch := range channels {
		cs := channelState{
			ch:       ch,
			selected: ch.Selected,
			hidden:   ch.Hidden,
			keys:     make([]keyState, len(ch.Keys)),
		}
		for i, k := range ch.Keys {
			cs.keys[i] = keyState{
				control: k.SelectControl,
				left:    k.SelectLeftHandle,
				right:   k.SelectRightHandle,
			}
		}
		s.channels = append(s.channels, cs)
	}
	return s
}

// Restore writes the captured state back onto the live channels. Keyframes
// removed from a channel since capture are skipped; restoration is by index
// over the common prefix.
func (s *Snapshot) Restore() {
	for _, cs := range s.channels {
		cs.ch.Selected = cs.selected
		cs.ch.Hidden = cs.hidden
		for i, ks := range cs.keys {
			if i >= len(cs.ch.Keys) {
				break
			}
			k := cs.ch.Keys[i]
			k.SelectControl = ks.control
			k.SelectLeftHandle = ks.left
			k.SelectRightHandle = ks.right
		}
	}
}
