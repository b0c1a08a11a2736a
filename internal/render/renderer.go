package render

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/LISSConsulting/LISSTech.CurveNav/internal/curve"
	"github.com/LISSConsulting/LISSTech.CurveNav/internal/navigator"
)

// Fixed palette; background alphas come from the configured options.
var (
	linesColor        = curve.Color{0.5, 0.5, 0.5, 1.0}
	activeBorderColor = curve.Color{0.28, 0.45, 0.7, 1.0}
	textColor         = curve.Color{0.8, 0.8, 0.8, 1.0}
	currentTextColor  = curve.Color{1.0, 1.0, 1.0, 1.0}
	mutedTextColor    = curve.Color{0.5, 0.5, 0.5, 1.0}
	hiddenTextColor   = curve.Color{0.4, 0.4, 0.4, 1.0}
	scrollHintColor   = curve.Color{0.7, 0.7, 0.7, 0.8}
)

// Renderer draws a navigator interaction through a Backend. Draw reads the
// controller without mutating it, so redraws may happen at any cadence
// relative to input events.
type Renderer struct {
	backend Backend
	icons   *IconCache
}

// NewRenderer creates a renderer with a fresh session-scoped icon cache.
func NewRenderer(backend Backend) *Renderer {
	return &Renderer{backend: backend, icons: NewIconCache(backend)}
}

// Draw renders the popup for the controller's current state. phase in [0, 1)
// drives the pulse of the current-row border; a host without an animation
// clock can pass 0.
func (r *Renderer) Draw(c *navigator.Controller, phase float64) {
	geom := c.Geometry()
	list := c.List()
	opts := c.Options()

	alpha := float32(opts.BackgroundAlpha)
	bgColor := curve.Color{0.1, 0.1, 0.1, alpha}
	hiddenBgColor := curve.Color{0.08, 0.08, 0.08, alpha}
	mutedBgColor := curve.Color{0.05, 0.05, 0.05, minf(1, alpha+0.02)}

	var normal, hidden, muted []Vec2
	var border []Vec2

	for row := 0; row < list.DisplayCount(); row++ {
		ch := list.ChannelAt(row)
		if ch == nil {
			continue
		}

		x0 := float32(geom.Left)
		y0 := float32(geom.RowBottom(row))
		x1 := float32(geom.Right())
		y1 := y0 + float32(geom.RowHeight)

		switch {
		case ch.Muted:
			muted = rectTris(muted, x0, y0, x1, y1)
		case ch.Hidden:
			hidden = rectTris(hidden, x0, y0, x1, y1)
		default:
			normal = rectTris(normal, x0, y0, x1, y1)
		}

		if list.ChannelIndex(row) == c.Current() {
			border = rectOutline(x0, y0, x1, y1)
		}
	}

	r.backend.Triangles(normal, bgColor)
	r.backend.Triangles(hidden, hiddenBgColor)
	r.backend.Triangles(muted, mutedBgColor)

	r.drawColorBars(c)
	r.drawGrid(c)

	if border != nil {
		r.backend.Lines(border, 4, pulse(activeBorderColor, phase))
	}

	r.drawRows(c)
	r.drawScrollHints(c)
}

// drawColorBars draws the left-edge channel color bar of each row, dimmed
// for hidden or muted channels.
func (r *Renderer) drawColorBars(c *navigator.Controller) {
	geom := c.Geometry()
	list := c.List()

	for row := 0; row < list.DisplayCount(); row++ {
		ch := list.ChannelAt(row)
		if ch == nil {
			continue
		}

		alpha := float32(0.9)
		if ch.Hidden || ch.Muted {
			alpha = 0.3
		}

		x0 := float32(geom.Left)
		y0 := float32(geom.RowBottom(row))
		bar := rectTris(nil, x0, y0, x0+float32(geom.ColorBarWidth), y0+float32(geom.RowHeight))
		r.backend.Triangles(bar, ch.DisplayColor(alpha))
	}
}

// drawGrid draws the horizontal row separators and the two vertical edges.
func (r *Renderer) drawGrid(c *navigator.Controller) {
	geom := c.Geometry()
	left := float32(geom.Left)
	right := float32(geom.Right())

	var lines []Vec2
	for i := 0; i <= geom.Rows; i++ {
		y := float32(geom.Bottom + geom.RowHeight*float64(i))
		lines = append(lines, Vec2{left, y}, Vec2{right, y})
	}
	lines = append(lines,
		Vec2{left, float32(geom.Bottom)}, Vec2{left, float32(geom.Top())},
		Vec2{right, float32(geom.Bottom)}, Vec2{right, float32(geom.Top())},
	)

	r.backend.Lines(lines, 2, linesColor)
}

// drawRows draws the channel name and the three state icons of each row.
func (r *Renderer) drawRows(c *navigator.Controller) {
	geom := c.Geometry()
	list := c.List()

	// Text-zone width in pixels bounds the name length; 0.6em is the
	// assumed average glyph advance.
	maxChars := int((geom.MuteZoneX() - geom.TextX()) / (geom.TextSize * 0.6))

	for row := 0; row < list.DisplayCount(); row++ {
		ch := list.ChannelAt(row)
		if ch == nil {
			continue
		}

		midY := geom.RowBottom(row) + geom.RowHeight/2
		textY := float32(midY - geom.TextSize/2.5)
		iconY := float32(midY - geom.IconSize/2)

		name := runewidth.Truncate(ch.DisplayName(), maxChars, "...")

		col := textColor
		switch {
		case ch.Hidden:
			col = hiddenTextColor
		case ch.Muted:
			col = mutedTextColor
		case list.ChannelIndex(row) == c.Current():
			col = currentTextColor
		}
		r.backend.Text(float32(geom.TextSize), col, Vec2{float32(geom.TextX()), textY}, name)

		r.drawIcon(iconName("mute", ch.Muted), float32(geom.MuteZoneX()), iconY, float32(geom.IconSize))
		r.drawIcon(iconName("lock", ch.Locked), float32(geom.LockZoneX()), iconY, float32(geom.IconSize))
		r.drawIcon(iconName("hide", ch.Hidden), float32(geom.HideZoneX()), iconY, float32(geom.IconSize))
	}
}

// drawIcon draws one icon glyph; a missing asset skips the quad.
func (r *Renderer) drawIcon(name string, x, y, size float32) {
	tex, ok := r.icons.Get(name)
	if !ok {
		return
	}
	r.backend.TexturedQuad([4]Vec2{
		{x, y},
		{x + size, y},
		{x + size, y + size},
		{x, y + size},
	}, tex)
}

// drawScrollHints draws the hidden-row counters above and below the popup
// when the list is longer than the window.
func (r *Renderer) drawScrollHints(c *navigator.Controller) {
	list := c.List()
	if !list.CanScroll() {
		return
	}

	geom := c.Geometry()
	x := float32(geom.Left + geom.RowWidth/2 - 10)
	size := float32(geom.TextSize)

	if list.Offset() > 0 {
		pos := Vec2{x, float32(geom.Top() + 5)}
		r.backend.Text(size, scrollHintColor, pos, fmt.Sprintf("▲ %d", list.Offset()))
	}
	if remaining := list.MaxScroll() - list.Offset(); remaining > 0 {
		pos := Vec2{x, float32(geom.Bottom - geom.TextSize - 5)}
		r.backend.Text(size, scrollHintColor, pos, fmt.Sprintf("▼ %d", remaining))
	}
}

// iconName maps a flag kind and state to a logical icon name.
func iconName(kind string, on bool) string {
	if on {
		return kind + "_on"
	}
	return kind + "_off"
}

// rectOutline returns the line segments outlining a rectangle.
func rectOutline(x0, y0, x1, y1 float32) []Vec2 {
	return []Vec2{
		{x0, y0}, {x1, y0},
		{x1, y0}, {x1, y1},
		{x1, y1}, {x0, y1},
		{x0, y1}, {x0, y0},
	}
}

// pulse brightens the border color on a cosine wave over phase in [0, 1).
func pulse(c curve.Color, phase float64) curve.Color {
	t := 0.5 - 0.5*math.Cos(2*math.Pi*phase)
	base := colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}
	lit := base.BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, 0.35*t)
	return curve.Color{float32(lit.R), float32(lit.G), float32(lit.B), c[3]}
}

// minf returns the smaller of two float32 values.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
