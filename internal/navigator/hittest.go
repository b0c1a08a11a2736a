package navigator

// Zone identifies what part of a row the pointer is over.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneHide
	ZoneLock
	ZoneMute
	ZoneText
)

// String returns the zone name.
func (z Zone) String() string {
	switch z {
	case ZoneHide:
		return "hide"
	case ZoneLock:
		return "lock"
	case ZoneMute:
		return "mute"
	case ZoneText:
		return "text"
	default:
		return "none"
	}
}

// Geometry is the cached pixel layout of the navigator popup. The origin is
// bottom-left with Y growing upward, matching the draw backend. Icon zones
// are fixed-width and stacked right-aligned against the popup's right edge:
// [color bar][text ...][mute][lock][hide].
type Geometry struct {
	Left   float64
	Bottom float64

	RowWidth  float64
	RowHeight float64
	Rows      int

	IconMargin    float64
	IconSize      float64
	ColorBarWidth float64
	TextSize      float64
}

// Right returns the X coordinate of the popup's right edge.
func (g Geometry) Right() float64 { return g.Left + g.RowWidth }

// Top returns the Y coordinate of the popup's top edge.
func (g Geometry) Top() float64 { return g.Bottom + g.RowHeight*float64(g.Rows) }

// HideZoneX returns the left edge of the hide icon zone.
func (g Geometry) HideZoneX() float64 { return g.Right() - g.IconMargin }

// LockZoneX returns the left edge of the lock icon zone.
func (g Geometry) LockZoneX() float64 { return g.Right() - g.IconMargin*2 }

// MuteZoneX returns the left edge of the mute icon zone; everything to its
// left down to the color bar is the text zone.
func (g Geometry) MuteZoneX() float64 { return g.Right() - g.IconMargin*3 }

// TextX returns the X coordinate where row text starts.
func (g Geometry) TextX() float64 { return g.Left + g.ColorBarWidth + 8 }

// RowBottom returns the Y coordinate of the bottom edge of a display row.
func (g Geometry) RowBottom(displayIdx int) float64 {
	return g.Bottom + g.RowHeight*float64(displayIdx)
}

// HitTest maps a pointer position to a display row and zone. It returns
// (-1, ZoneNone) outside the popup's bounding rectangle.
func (g Geometry) HitTest(x, y float64) (int, Zone) {
	if x < g.Left || x > g.Right() || y < g.Bottom || y > g.Top() {
		return -1, ZoneNone
	}

	displayIdx := int((y - g.Bottom) / g.RowHeight)
	if displayIdx < 0 || displayIdx >= g.Rows {
		return -1, ZoneNone
	}

	switch {
	case x >= g.HideZoneX():
		return displayIdx, ZoneHide
	case x >= g.LockZoneX():
		return displayIdx, ZoneLock
	case x >= g.MuteZoneX():
		return displayIdx, ZoneMute
	default:
		return displayIdx, ZoneText
	}
}

// PlaceGeometry positions the popup so the given display row is centered
// under the invoke pointer, then clamps the whole popup into the region.
func PlaceGeometry(g Geometry, pointerX, pointerY float64, currentRow int, regionW, regionH float64) Geometry {
	const margin = 10

	total := g.RowHeight * float64(g.Rows)
	if currentRow >= 0 {
		g.Bottom = pointerY - float64(currentRow)*g.RowHeight - g.RowHeight/2
	} else {
		g.Bottom = pointerY - total/2
	}
	g.Left = pointerX - g.RowWidth/2

	if g.Left < margin {
		g.Left = margin
	}
	if g.Left+g.RowWidth > regionW-margin {
		g.Left = regionW - margin - g.RowWidth
	}
	if g.Bottom < margin {
		g.Bottom = margin
	}
	if g.Bottom+total > regionH-margin {
		g.Bottom = regionH - margin - total
	}
	return g
}
