// Package render draws the navigator popup through an immediate-mode draw
// backend. The renderer is a pure function of controller state: it may be
// called on any redraw, in any order relative to state changes, and performs
// no mutation beyond backend calls.
package render

import "github.com/LISSConsulting/LISSTech.CurveNav/internal/curve"

// Vec2 is a 2D position in backend pixel space, origin bottom-left with Y
// growing upward.
type Vec2 struct {
	X, Y float32
}

// Texture is an opaque backend texture handle.
type Texture any

// Backend is the immediate-mode draw API the renderer targets. Lines and
// Triangles bind a solid-color shader over a position buffer; TexturedQuad
// binds a textured shader; Text is the backend's separate text path.
type Backend interface {
	// Lines draws the points as a list of line segments (pairs) with the
	// given width and color.
	Lines(points []Vec2, width float32, color curve.Color)

	// Triangles draws the points as a list of filled triangles (triples).
	Triangles(points []Vec2, color curve.Color)

	// TexturedQuad draws the texture across the four corners, given in
	// counter-clockwise fan order starting bottom-left.
	TexturedQuad(corners [4]Vec2, tex Texture)

	// Text draws a string at the given baseline position.
	Text(size float32, color curve.Color, pos Vec2, s string)

	// LoadIcon resolves a logical icon name to a texture. It is called at
	// most once per name per session through the IconCache.
	LoadIcon(name string) (Texture, error)
}

// rectTris appends the two triangles covering the axis-aligned rectangle
// with corners (x0,y0)-(x1,y1) to dst.
func rectTris(dst []Vec2, x0, y0, x1, y1 float32) []Vec2 {
	return append(dst,
		Vec2{x0, y0}, Vec2{x0, y1}, Vec2{x1, y1},
		Vec2{x0, y0}, Vec2{x1, y0}, Vec2{x1, y1},
	)
}
