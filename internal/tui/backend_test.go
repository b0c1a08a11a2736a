package tui

import (
	"testing"

	"github.com/LISSConsulting/LISSTech.CurveNav/internal/curve"
	"github.com/LISSConsulting/LISSTech.CurveNav/internal/render"
)

func TestCellBackend_YFlip(t *testing.T) {
	b := newCellBackend(10, 5)

	// Draw-space (0,0) is the bottom-left corner, grid row h-1.
	b.Text(1, curve.Color{1, 1, 1, 1}, render.Vec2{X: 0, Y: 0}, "x")
	if got := b.cells[4][0].r; got != 'x' {
		t.Errorf("bottom-left cell = %q, want 'x'", got)
	}

	b.Text(1, curve.Color{1, 1, 1, 1}, render.Vec2{X: 0, Y: 4}, "y")
	if got := b.cells[0][0].r; got != 'y' {
		t.Errorf("top-left cell = %q, want 'y'", got)
	}
}

func TestCellBackend_TrianglesFillBackground(t *testing.T) {
	b := newCellBackend(6, 4)
	rect := []render.Vec2{
		{X: 1, Y: 1}, {X: 1, Y: 3}, {X: 4, Y: 3},
		{X: 1, Y: 1}, {X: 4, Y: 1}, {X: 4, Y: 3},
	}
	b.Triangles(rect, curve.Color{1, 0, 0, 1})

	for y := float32(1); y < 3; y++ {
		for x := float32(1); x < 4; x++ {
			cx, cy, _ := b.at(x, y)
			if b.cells[cy][cx].bg == "" {
				t.Errorf("cell (%v,%v) not filled", x, y)
			}
		}
	}
	if cx, cy, _ := b.at(0, 0); b.cells[cy][cx].bg != "" {
		t.Error("cells outside the rectangle must stay empty")
	}
	if cx, cy, _ := b.at(4, 1); b.cells[cy][cx].bg != "" {
		t.Error("the rectangle's max edge is exclusive")
	}
}

func TestCellBackend_LinesUseBoxRunesAndYieldToGlyphs(t *testing.T) {
	b := newCellBackend(8, 4)
	b.Text(1, curve.Color{1, 1, 1, 1}, render.Vec2{X: 2, Y: 1}, "A")

	b.Lines([]render.Vec2{{X: 0, Y: 1}, {X: 6, Y: 1}}, 1, curve.Color{1, 1, 1, 1})

	cx, cy, _ := b.at(1, 1)
	if b.cells[cy][cx].r != '─' {
		t.Errorf("line cell = %q, want '─'", b.cells[cy][cx].r)
	}
	cx, cy, _ = b.at(2, 1)
	if b.cells[cy][cx].r != 'A' {
		t.Error("a line must not overwrite existing text")
	}
}

func TestCellBackend_IgnoresOffGridDraws(t *testing.T) {
	b := newCellBackend(4, 4)
	// None of these may panic or wrap around.
	b.Text(1, curve.Color{1, 1, 1, 1}, render.Vec2{X: -5, Y: 2}, "abcdefghijkl")
	b.Lines([]render.Vec2{{X: 2, Y: -10}, {X: 2, Y: 10}}, 1, curve.Color{1, 1, 1, 1})
	b.Triangles([]render.Vec2{
		{X: -2, Y: -2}, {X: -2, Y: 8}, {X: 8, Y: 8},
		{X: -2, Y: -2}, {X: 8, Y: -2}, {X: 8, Y: 8},
	}, curve.Color{1, 1, 1, 1})
}

func TestCellBackend_LoadIcon(t *testing.T) {
	b := newCellBackend(4, 4)

	tex, err := b.LoadIcon(render.IconHideOn)
	if err != nil {
		t.Fatalf("LoadIcon: %v", err)
	}
	b.TexturedQuad([4]render.Vec2{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}}, tex)

	cx, cy, _ := b.at(1, 1)
	if b.cells[cy][cx].r != '●' {
		t.Errorf("stamped glyph = %q, want '●'", b.cells[cy][cx].r)
	}

	if _, err := b.LoadIcon("no_such_icon"); err == nil {
		t.Error("unknown icon names should fail to load")
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		name string
		in   curve.Color
		want string
	}{
		{"opaque white", curve.Color{1, 1, 1, 1}, "#FFFFFF"},
		{"alpha folds into channels", curve.Color{1, 1, 1, 0.5}, "#7F7F7F"},
		{"black", curve.Color{0, 0, 0, 1}, "#000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hexColor(tt.in); got != tt.want {
				t.Errorf("hexColor(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
