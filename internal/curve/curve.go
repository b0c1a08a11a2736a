// Package curve defines the channel/keyframe data model the navigator
// operates on. Channels and keyframes are owned by the host document; the
// packages in this module hold references only and mutate nothing beyond
// selection and visibility flags.
package curve

import "sort"

// Interpolation is the interpolation kind of a keyframe.
type Interpolation int

const (
	Constant Interpolation = iota
	Linear
	Bezier
)

// String returns the interpolation name.
func (i Interpolation) String() string {
	switch i {
	case Constant:
		return "constant"
	case Linear:
		return "linear"
	case Bezier:
		return "bezier"
	default:
		return "unknown"
	}
}

// Color is an RGBA color with components in [0, 1].
type Color [4]float32

// WithAlpha returns the color with its alpha component replaced.
func (c Color) WithAlpha(a float32) Color {
	return Color{c[0], c[1], c[2], a}
}

// Point is a 2D coordinate in (time, value) space.
type Point struct {
	Time  float64
	Value float64
}

// Keyframe is one control point on a channel. The three selection flags are
// independent sub-elements: the control point itself and the two tangent
// handles. Non-Bezier keyframes never carry meaningful handle selection.
type Keyframe struct {
	Time          float64
	Value         float64
	Interpolation Interpolation

	// Handle positions, meaningful only for Bezier keys.
	HandleLeft  Point
	HandleRight Point

	SelectControl     bool
	SelectLeftHandle  bool
	SelectRightHandle bool
}

// AnySelected reports whether any of the three sub-elements is selected.
func (k *Keyframe) AnySelected() bool {
	return k.SelectControl || k.SelectLeftHandle || k.SelectRightHandle
}

// Channel is a single animated parameter curve: a time-sorted sequence of
// keyframes plus aggregate display flags.
type Channel struct {
	DataPath   string
	ArrayIndex int
	Group      string
	Color      Color

	Selected bool
	Hidden   bool
	Locked   bool
	Muted    bool

	Keys []*Keyframe
}

// NewChannel creates a channel with the given data path and array index.
func NewChannel(dataPath string, arrayIndex int) *Channel {
	return &Channel{
		DataPath:   dataPath,
		ArrayIndex: arrayIndex,
		Color:      Color{1, 1, 1, 1},
	}
}

// InsertKey adds a keyframe, keeping Keys sorted by time.
func (c *Channel) InsertKey(k *Keyframe) {
	i := sort.Search(len(c.Keys), func(i int) bool { return c.Keys[i].Time >= k.Time })
	c.Keys = append(c.Keys, nil)
	copy(c.Keys[i+1:], c.Keys[i:])
	c.Keys[i] = k
}

// HasKeys reports whether the channel has at least one keyframe.
func (c *Channel) HasKeys() bool {
	return len(c.Keys) > 0
}

// NearestKey returns the index of the keyframe closest in time to t.
// Equidistant candidates resolve to the lower index. Returns -1 for a
// channel with no keys.
func (c *Channel) NearestKey(t float64) int {
	n := len(c.Keys)
	if n == 0 {
		return -1
	}
	hi := sort.Search(n, func(i int) bool { return c.Keys[i].Time >= t })
	if hi == 0 {
		return 0
	}
	if hi == n {
		return n - 1
	}
	lo := hi - 1
	if t-c.Keys[lo].Time <= c.Keys[hi].Time-t {
		return lo
	}
	return hi
}

// KeyAt returns the index of the keyframe at exactly time t, or -1.
func (c *Channel) KeyAt(t float64) int {
	n := len(c.Keys)
	i := sort.Search(n, func(i int) bool { return c.Keys[i].Time >= t })
	if i < n && c.Keys[i].Time == t {
		return i
	}
	return -1
}

// KeySelection is a keyframe together with its captured selection triple.
// Capturing the triple up front lets selection algorithms read the original
// state while they mutate the live flags.
type KeySelection struct {
	Key     *Keyframe
	Control bool
	Left    bool
	Right   bool
}

// SelectedKeys returns every keyframe of the channel with at least one
// selected sub-element, each paired with its selection state at call time.
func (c *Channel) SelectedKeys() []KeySelection {
	var out []KeySelection
	for _, k := range c.Keys {
		if k.AnySelected() {
			out = append(out, KeySelection{
				Key:     k,
				Control: k.SelectControl,
				Left:    k.SelectLeftHandle,
				Right:   k.SelectRightHandle,
			})
		}
	}
	return out
}
