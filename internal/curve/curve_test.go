package curve

import "testing"

func makeChannel(times ...float64) *Channel {
	ch := NewChannel("location", 0)
	for _, t := range times {
		ch.InsertKey(&Keyframe{Time: t, Interpolation: Bezier})
	}
	return ch
}

func TestInsertKey_KeepsSorted(t *testing.T) {
	ch := NewChannel("location", 0)
	for _, tm := range []float64{10, 2, 7, 2, 30} {
		ch.InsertKey(&Keyframe{Time: tm})
	}

	for i := 1; i < len(ch.Keys); i++ {
		if ch.Keys[i-1].Time > ch.Keys[i].Time {
			t.Fatalf("keys out of order at %d: %v > %v", i, ch.Keys[i-1].Time, ch.Keys[i].Time)
		}
	}
}

func TestNearestKey(t *testing.T) {
	ch := makeChannel(1, 5, 9, 20)

	tests := []struct {
		name string
		time float64
		want int
	}{
		{"exact match", 5, 1},
		{"before first", -3, 0},
		{"after last", 100, 3},
		{"closer to lower", 6, 1},
		{"closer to upper", 8, 2},
		{"tie resolves to lower index", 7, 1},
		{"tie at larger gap", 14.5, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ch.NearestKey(tt.time); got != tt.want {
				t.Errorf("NearestKey(%v) = %d, want %d", tt.time, got, tt.want)
			}
		})
	}
}

func TestNearestKey_Empty(t *testing.T) {
	ch := NewChannel("location", 0)
	if got := ch.NearestKey(5); got != -1 {
		t.Errorf("NearestKey on empty channel = %d, want -1", got)
	}
}

func TestKeyAt(t *testing.T) {
	ch := makeChannel(1, 5, 9)
	if got := ch.KeyAt(5); got != 1 {
		t.Errorf("KeyAt(5) = %d, want 1", got)
	}
	if got := ch.KeyAt(6); got != -1 {
		t.Errorf("KeyAt(6) = %d, want -1", got)
	}
}

func TestSelectedKeys(t *testing.T) {
	ch := makeChannel(1, 2, 3, 4)
	ch.Keys[0].SelectControl = true
	ch.Keys[2].SelectLeftHandle = true

	sel := ch.SelectedKeys()
	if len(sel) != 2 {
		t.Fatalf("SelectedKeys: got %d entries, want 2", len(sel))
	}
	if sel[0].Key != ch.Keys[0] || !sel[0].Control || sel[0].Left || sel[0].Right {
		t.Errorf("first entry wrong: %+v", sel[0])
	}
	if sel[1].Key != ch.Keys[2] || sel[1].Control || !sel[1].Left {
		t.Errorf("second entry wrong: %+v", sel[1])
	}
}

func TestSelectedKeys_CapturesStateAtCall(t *testing.T) {
	ch := makeChannel(1)
	ch.Keys[0].SelectControl = true

	sel := ch.SelectedKeys()
	ch.Keys[0].SelectControl = false

	if !sel[0].Control {
		t.Error("captured selection state should not track later mutation")
	}
}

func TestAnySelected(t *testing.T) {
	k := &Keyframe{}
	if k.AnySelected() {
		t.Error("fresh keyframe should not be selected")
	}
	k.SelectRightHandle = true
	if !k.AnySelected() {
		t.Error("right handle selection should count")
	}
}
