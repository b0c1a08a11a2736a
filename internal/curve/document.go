package curve

// Document is the host's channel storage as seen by the navigator. The host
// owns the channels; the navigator only reads the lists and checks liveness.
type Document interface {
	// VisibleChannels returns the channels visible under the host's current
	// filter rules, in display order.
	VisibleChannels() []*Channel

	// AllChannels returns every channel in the document, including hidden
	// ones, in display order.
	AllChannels() []*Channel

	// Contains reports whether the channel is still part of the document.
	// Row-mapping treats channels removed mid-interaction as "no channel".
	Contains(ch *Channel) bool
}

// SliceDocument is a minimal in-memory Document backed by a channel slice.
// Visibility follows each channel's Hidden flag. Used by tests and the demo
// host; a real editor supplies its own Document.
type SliceDocument struct {
	Channels []*Channel
}

// VisibleChannels returns all channels not individually hidden.
func (d *SliceDocument) VisibleChannels() []*Channel {
	var out []*Channel
	for _, ch := range d.Channels {
		if !ch.Hidden {
			out = append(out, ch)
		}
	}
	return out
}

// AllChannels returns every channel.
func (d *SliceDocument) AllChannels() []*Channel {
	return d.Channels
}

// Contains reports whether ch is in the document.
func (d *SliceDocument) Contains(ch *Channel) bool {
	for _, c := range d.Channels {
		if c == ch {
			return true
		}
	}
	return false
}

// Remove deletes ch from the document. Used to simulate external removal
// while a navigator is open.
func (d *SliceDocument) Remove(ch *Channel) {
	for i, c := range d.Channels {
		if c == ch {
			d.Channels = append(d.Channels[:i], d.Channels[i+1:]...)
			return
		}
	}
}
