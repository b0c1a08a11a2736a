package selection

import (
	"testing"

	"github.com/LISSConsulting/LISSTech.CurveNav/internal/curve"
)

func TestToggleHandles_SetThenClear(t *testing.T) {
	ch := bezierChannel(1, 2, 3)
	ch.Keys[0].SelectControl = true
	ch.Keys[2].SelectControl = true

	batch := []*curve.Channel{ch}

	ToggleHandles(batch, HandleLeft, false)
	for _, i := range []int{0, 2} {
		k := ch.Keys[i]
		if !k.SelectLeftHandle || k.SelectControl || k.SelectRightHandle {
			t.Fatalf("key %d after first toggle = %v/%v/%v, want left handle only",
				i, k.SelectControl, k.SelectLeftHandle, k.SelectRightHandle)
		}
	}

	// Every selected key now has the left handle, so the second toggle
	// clears it and reinstates control-point selection.
	ToggleHandles(batch, HandleLeft, false)
	for _, i := range []int{0, 2} {
		k := ch.Keys[i]
		if k.SelectLeftHandle || !k.SelectControl {
			t.Fatalf("key %d after second toggle = %v/%v, want control only",
				i, k.SelectControl, k.SelectLeftHandle)
		}
	}
}

func TestToggleHandles_ExtendKeepsExistingFlags(t *testing.T) {
	ch := bezierChannel(1)
	ch.Keys[0].SelectControl = true
	ch.Keys[0].SelectLeftHandle = true

	ToggleHandles([]*curve.Channel{ch}, HandleRight, true)

	k := ch.Keys[0]
	if !k.SelectControl || !k.SelectLeftHandle || !k.SelectRightHandle {
		t.Errorf("extend toggle = %v/%v/%v, want all three set",
			k.SelectControl, k.SelectLeftHandle, k.SelectRightHandle)
	}
}

func TestToggleHandles_EmptyChannelDoesNotBlockBatch(t *testing.T) {
	active := bezierChannel(1)
	active.Keys[0].SelectControl = true

	// Nothing selected here; it must count as vacuously complete.
	idle := bezierChannel(1, 2)

	ToggleHandles([]*curve.Channel{idle, active}, HandleRight, false)

	if !active.Keys[0].SelectRightHandle {
		t.Error("handle should be set despite an idle channel in the batch")
	}
	if idle.Keys[0].AnySelected() || idle.Keys[1].AnySelected() {
		t.Error("idle channel must stay untouched")
	}
}

func TestToggleHandles_QueryIsChannelOrderIndependent(t *testing.T) {
	run := func(order func(a, b *curve.Channel) []*curve.Channel) (*curve.Channel, *curve.Channel) {
		a := bezierChannel(1)
		a.Keys[0].SelectControl = true
		a.Keys[0].SelectRightHandle = true
		b := bezierChannel(1)
		b.Keys[0].SelectControl = true
		ToggleHandles(order(a, b), HandleRight, false)
		return a, b
	}

	a1, b1 := run(func(a, b *curve.Channel) []*curve.Channel { return []*curve.Channel{a, b} })
	a2, b2 := run(func(a, b *curve.Channel) []*curve.Channel { return []*curve.Channel{b, a} })

	if *a1.Keys[0] != *a2.Keys[0] || *b1.Keys[0] != *b2.Keys[0] {
		t.Error("toggle outcome depends on channel order")
	}
}

func TestHandleSideString(t *testing.T) {
	if HandleLeft.String() != "left" || HandleRight.String() != "right" {
		t.Error("unexpected handle side names")
	}
}
