package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.CurveNav/internal/curve"
	"github.com/LISSConsulting/LISSTech.CurveNav/internal/render"
)

// glyphTexture is the terminal backend's texture: a single icon rune.
type glyphTexture struct {
	r rune
}

// iconGlyphs maps the renderer's logical icon names to terminal glyphs.
var iconGlyphs = map[string]rune{
	render.IconHideOff: '○',
	render.IconHideOn:  '●',
	render.IconLockOff: '△',
	render.IconLockOn:  '▲',
	render.IconMuteOff: '♫',
	render.IconMuteOn:  '✕',
}

// cell is one terminal cell of the rasterized frame.
type cell struct {
	r  rune
	fg string // hex color, empty = default
	bg string
}

// cellBackend rasterizes the renderer's immediate-mode draw calls onto a
// terminal cell grid. Draw coordinates use one pixel per cell with a
// bottom-left origin; the grid flips Y for row output. Triangles paint cell
// backgrounds, lines fall back to box-drawing runes where no glyph already
// occupies the cell, and text always wins.
type cellBackend struct {
	w, h  int
	cells [][]cell
}

func newCellBackend(w, h int) *cellBackend {
	b := &cellBackend{}
	b.resize(w, h)
	return b
}

func (b *cellBackend) resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	b.w, b.h = w, h
	b.cells = make([][]cell, h)
	for y := range b.cells {
		b.cells[y] = make([]cell, w)
		for x := range b.cells[y] {
			b.cells[y][x] = cell{r: ' '}
		}
	}
}

func (b *cellBackend) clear() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = cell{r: ' '}
		}
	}
}

// at maps a draw-space position to grid indices; ok is false off-grid.
func (b *cellBackend) at(x, y float32) (int, int, bool) {
	cx, cy := int(x), b.h-1-int(y)
	if cx < 0 || cx >= b.w || cy < 0 || cy >= b.h {
		return 0, 0, false
	}
	return cx, cy, true
}

// Triangles fills the bounding box of each triangle with the color as cell
// background. Axis-aligned rectangles, the renderer's only use, rasterize
// exactly.
func (b *cellBackend) Triangles(points []render.Vec2, color curve.Color) {
	hex := hexColor(color)
	for i := 0; i+2 < len(points); i += 3 {
		minX, minY := points[i].X, points[i].Y
		maxX, maxY := minX, minY
		for _, p := range points[i+1 : i+3] {
			minX, maxX = minf32(minX, p.X), maxf32(maxX, p.X)
			minY, maxY = minf32(minY, p.Y), maxf32(maxY, p.Y)
		}
		for y := minY; y < maxY; y++ {
			for x := minX; x < maxX; x++ {
				if cx, cy, ok := b.at(x, y); ok {
					b.cells[cy][cx].bg = hex
				}
			}
		}
	}
}

// Lines draws axis-aligned segments with box-drawing runes, skipping cells
// that already hold a glyph. Diagonal segments are dropped; the navigator
// never draws any.
func (b *cellBackend) Lines(points []render.Vec2, width float32, color curve.Color) {
	hex := hexColor(color)
	for i := 0; i+1 < len(points); i += 2 {
		p, q := points[i], points[i+1]
		switch {
		case p.Y == q.Y:
			x0, x1 := minf32(p.X, q.X), maxf32(p.X, q.X)
			for x := x0; x < x1; x++ {
				b.setLineRune(x, p.Y, '─', hex)
			}
		case p.X == q.X:
			y0, y1 := minf32(p.Y, q.Y), maxf32(p.Y, q.Y)
			for y := y0; y < y1; y++ {
				b.setLineRune(p.X, y, '│', hex)
			}
		}
	}
}

func (b *cellBackend) setLineRune(x, y float32, r rune, hex string) {
	cx, cy, ok := b.at(x, y)
	if !ok || b.cells[cy][cx].r != ' ' {
		return
	}
	b.cells[cy][cx].r = r
	b.cells[cy][cx].fg = hex
}

// TexturedQuad stamps the texture's glyph at the quad's bottom-left corner.
func (b *cellBackend) TexturedQuad(corners [4]render.Vec2, tex render.Texture) {
	g, ok := tex.(glyphTexture)
	if !ok {
		return
	}
	if cx, cy, ok := b.at(corners[0].X, corners[0].Y); ok {
		b.cells[cy][cx].r = g.r
		b.cells[cy][cx].fg = ""
	}
}

// Text writes the string left to right from pos.
func (b *cellBackend) Text(size float32, color curve.Color, pos render.Vec2, s string) {
	hex := hexColor(color)
	x := pos.X
	for _, r := range s {
		if cx, cy, ok := b.at(x, pos.Y); ok {
			b.cells[cy][cx].r = r
			b.cells[cy][cx].fg = hex
		}
		x++
	}
}

// LoadIcon resolves a logical icon name to its terminal glyph.
func (b *cellBackend) LoadIcon(name string) (render.Texture, error) {
	r, ok := iconGlyphs[name]
	if !ok {
		return nil, fmt.Errorf("no glyph for icon %q", name)
	}
	return glyphTexture{r: r}, nil
}

// String renders the grid to a styled terminal frame.
func (b *cellBackend) String() string {
	var out strings.Builder
	for y, row := range b.cells {
		if y > 0 {
			out.WriteByte('\n')
		}
		for _, c := range row {
			style := lipgloss.NewStyle()
			if c.fg != "" {
				style = style.Foreground(lipgloss.Color(c.fg))
			}
			if c.bg != "" {
				style = style.Background(lipgloss.Color(c.bg))
			}
			out.WriteString(style.Render(string(c.r)))
		}
	}
	return out.String()
}

// hexColor converts an RGBA draw color to a lipgloss hex string, folding
// alpha into the channel values (terminals have no alpha blending).
func hexColor(c curve.Color) string {
	a := c[3]
	return fmt.Sprintf("#%02X%02X%02X",
		int(c[0]*a*255), int(c[1]*a*255), int(c[2]*a*255))
}

func minf32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
