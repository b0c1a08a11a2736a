package navigator

import "github.com/LISSConsulting/LISSTech.CurveNav/internal/curve"

// ListModel is the ordered channel list shown by the navigator: the host's
// filtered visible channels plus any individually-hidden channel that still
// has keyframes, viewed through a fixed-capacity scroll window. Rows render
// bottom-to-top, so display index 0 is the lowest row on screen.
type ListModel struct {
	doc      curve.Document
	channels []*curve.Channel
	window   int
	offset   int
}

// NewListModel builds the navigator channel list from the document. window is
// the maximum number of rows displayed at once.
func NewListModel(doc curve.Document, window int) *ListModel {
	if window < 1 {
		window = 1
	}

	channels := doc.VisibleChannels()
	seen := make(map[*curve.Channel]bool, len(channels))
	for _, ch := range channels {
		seen[ch] = true
	}
	// Hidden channels stay toggleable from the navigator as long as they
	// still have keys.
	for _, ch := range doc.AllChannels() {
		if ch.Hidden && ch.HasKeys() && !seen[ch] {
			channels = append(channels, ch)
		}
	}

	return &ListModel{doc: doc, channels: channels, window: window}
}

// Len returns the number of channels in the list.
func (l *ListModel) Len() int {
	return len(l.channels)
}

// DisplayCount returns the number of rows currently displayed.
func (l *ListModel) DisplayCount() int {
	if len(l.channels) < l.window {
		return len(l.channels)
	}
	return l.window
}

// CanScroll reports whether the list is longer than the display window.
func (l *ListModel) CanScroll() bool {
	return len(l.channels) > l.window
}

// MaxScroll returns the largest valid scroll offset.
func (l *ListModel) MaxScroll() int {
	max := len(l.channels) - l.DisplayCount()
	if max < 0 {
		return 0
	}
	return max
}

// Offset returns the current scroll offset.
func (l *ListModel) Offset() int {
	return l.offset
}

// Scroll moves the window by delta rows, clamped to [0, MaxScroll]. A no-op
// when the whole list fits in the window.
func (l *ListModel) Scroll(delta int) {
	if !l.CanScroll() {
		return
	}
	l.offset += delta
	if l.offset < 0 {
		l.offset = 0
	}
	if max := l.MaxScroll(); l.offset > max {
		l.offset = max
	}
}

// CenterOn positions the scroll window so the given channel index sits as
// close to the middle of the window as clamping allows.
func (l *ListModel) CenterOn(idx int) {
	l.offset = idx - l.DisplayCount()/2
	if l.offset < 0 {
		l.offset = 0
	}
	if max := l.MaxScroll(); l.offset > max {
		l.offset = max
	}
}

// ChannelIndex converts a display index (0 = bottom row) to a channel index,
// or -1 when the slot is outside the list.
func (l *ListModel) ChannelIndex(displayIdx int) int {
	if displayIdx < 0 || displayIdx >= l.DisplayCount() {
		return -1
	}
	idx := l.offset + (l.DisplayCount() - 1 - displayIdx)
	if idx < 0 || idx >= len(l.channels) {
		return -1
	}
	return idx
}

// DisplayIndex converts a channel index to its display index, or -1 when the
// channel is scrolled out of the window.
func (l *ListModel) DisplayIndex(channelIdx int) int {
	d := l.DisplayCount() - 1 - (channelIdx - l.offset)
	if d < 0 || d >= l.DisplayCount() {
		return -1
	}
	return d
}

// Channel returns the channel at the given channel index, or nil when the
// index is out of range or the channel has been removed from the document.
func (l *ListModel) Channel(idx int) *curve.Channel {
	if idx < 0 || idx >= len(l.channels) {
		return nil
	}
	ch := l.channels[idx]
	if !l.doc.Contains(ch) {
		return nil
	}
	return ch
}

// ChannelAt returns the channel displayed at the given display index, or nil.
func (l *ListModel) ChannelAt(displayIdx int) *curve.Channel {
	return l.Channel(l.ChannelIndex(displayIdx))
}

// Channels returns the full ordered channel list.
func (l *ListModel) Channels() []*curve.Channel {
	return l.channels
}

// IndexOf returns the channel index of ch, or -1.
func (l *ListModel) IndexOf(ch *curve.Channel) int {
	for i, c := range l.channels {
		if c == ch {
			return i
		}
	}
	return -1
}
