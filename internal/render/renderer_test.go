package render

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/LISSConsulting/LISSTech.CurveNav/internal/curve"
	"github.com/LISSConsulting/LISSTech.CurveNav/internal/navigator"
)

// recordingBackend captures every draw call for inspection.
type recordingBackend struct {
	calls     []string
	texts     []string
	quads     int
	loads     map[string]int
	failIcons bool
}

func newRecordingBackend() *recordingBackend {
	return &recordingBackend{loads: make(map[string]int)}
}

func (b *recordingBackend) Lines(points []Vec2, width float32, color curve.Color) {
	b.calls = append(b.calls, fmt.Sprintf("lines(%d,w=%v)", len(points), width))
}

func (b *recordingBackend) Triangles(points []Vec2, color curve.Color) {
	b.calls = append(b.calls, fmt.Sprintf("tris(%d)", len(points)))
}

func (b *recordingBackend) TexturedQuad(corners [4]Vec2, tex Texture) {
	b.calls = append(b.calls, "quad")
	b.quads++
}

func (b *recordingBackend) Text(size float32, color curve.Color, pos Vec2, s string) {
	b.calls = append(b.calls, "text")
	b.texts = append(b.texts, s)
}

func (b *recordingBackend) LoadIcon(name string) (Texture, error) {
	b.loads[name]++
	if b.failIcons {
		return nil, errors.New("asset not found")
	}
	return name, nil
}

func (b *recordingBackend) reset() {
	b.calls = nil
	b.texts = nil
	b.quads = 0
}

func testController(t *testing.T, n int, window int) (*navigator.Controller, *curve.SliceDocument) {
	t.Helper()
	doc := &curve.SliceDocument{}
	for i := 0; i < n; i++ {
		ch := curve.NewChannel("location", i%3)
		ch.InsertKey(&curve.Keyframe{Time: float64(i + 1)})
		doc.Channels = append(doc.Channels, ch)
	}
	ctrl, err := navigator.Open(doc, navigator.Options{MaxVisibleRows: window}, 500, 300, 1000, 800)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return ctrl, doc
}

func TestDraw_EmitsRowContent(t *testing.T) {
	ctrl, _ := testController(t, 3, 8)
	backend := newRecordingBackend()

	NewRenderer(backend).Draw(ctrl, 0)

	if len(backend.texts) != 3 {
		t.Fatalf("text draws = %d, want one per row", len(backend.texts))
	}
	for _, s := range backend.texts {
		if !strings.Contains(s, "Location") {
			t.Errorf("row text %q should carry the channel name", s)
		}
	}
	if backend.quads != 9 {
		t.Errorf("icon quads = %d, want 3 per row", backend.quads)
	}
}

func TestDraw_IsIdempotent(t *testing.T) {
	ctrl, _ := testController(t, 4, 8)
	backend := newRecordingBackend()
	r := NewRenderer(backend)

	r.Draw(ctrl, 0)
	first := append([]string(nil), backend.calls...)

	backend.reset()
	r.Draw(ctrl, 0)

	if len(backend.calls) != len(first) {
		t.Fatalf("second draw made %d calls, first made %d", len(backend.calls), len(first))
	}
	for i := range first {
		if backend.calls[i] != first[i] {
			t.Errorf("call %d differs: %s vs %s", i, first[i], backend.calls[i])
		}
	}
}

func TestDraw_MissingIconsSkipQuads(t *testing.T) {
	ctrl, _ := testController(t, 2, 8)
	backend := newRecordingBackend()
	backend.failIcons = true

	NewRenderer(backend).Draw(ctrl, 0)

	if backend.quads != 0 {
		t.Errorf("quads = %d, want none when every icon is missing", backend.quads)
	}
	// Rows still render their text and background.
	if len(backend.texts) != 2 {
		t.Errorf("text draws = %d, want 2", len(backend.texts))
	}
}

func TestDraw_ScrollHints(t *testing.T) {
	ctrl, _ := testController(t, 10, 4)
	ctrl.HandleEvent(navigator.Event{Type: navigator.Scroll, Delta: -2})

	backend := newRecordingBackend()
	NewRenderer(backend).Draw(ctrl, 0)

	var up, down bool
	for _, s := range backend.texts {
		if s == "▲ 2" {
			up = true
		}
		if s == "▼ 4" {
			down = true
		}
	}
	if !up || !down {
		t.Errorf("scroll hints missing: texts = %q", backend.texts)
	}
}

func TestDraw_NoScrollHintsWhenListFits(t *testing.T) {
	ctrl, _ := testController(t, 3, 8)
	backend := newRecordingBackend()
	NewRenderer(backend).Draw(ctrl, 0)

	for _, s := range backend.texts {
		if strings.ContainsAny(s, "▲▼") {
			t.Errorf("unexpected scroll hint %q on a fully visible list", s)
		}
	}
}

func TestIconCache_LoadsOncePerName(t *testing.T) {
	backend := newRecordingBackend()
	cache := NewIconCache(backend)

	for i := 0; i < 3; i++ {
		if _, ok := cache.Get(IconHideOn); !ok {
			t.Fatal("icon should load")
		}
	}
	if got := backend.loads[IconHideOn]; got != 1 {
		t.Errorf("LoadIcon called %d times, want 1", got)
	}
}

func TestIconCache_RemembersMissing(t *testing.T) {
	backend := newRecordingBackend()
	backend.failIcons = true
	cache := NewIconCache(backend)

	for i := 0; i < 3; i++ {
		if _, ok := cache.Get(IconMuteOff); ok {
			t.Fatal("missing icon should not resolve")
		}
	}
	if got := backend.loads[IconMuteOff]; got != 1 {
		t.Errorf("LoadIcon called %d times for a missing icon, want 1", got)
	}
}

func TestPulse_PreservesAlphaAndPeaksMidPhase(t *testing.T) {
	base := curve.Color{0.2, 0.4, 0.6, 0.9}

	at0 := pulse(base, 0)
	atHalf := pulse(base, 0.5)

	if at0[3] != 0.9 || atHalf[3] != 0.9 {
		t.Error("pulse must not change alpha")
	}
	if at0 != base {
		t.Errorf("pulse at phase 0 = %v, want the base color", at0)
	}
	if atHalf[0] <= base[0] || atHalf[1] <= base[1] || atHalf[2] <= base[2] {
		t.Errorf("pulse at phase 0.5 = %v, want brighter than %v", atHalf, base)
	}
}
