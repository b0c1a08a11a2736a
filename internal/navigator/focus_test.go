package navigator

import (
	"testing"

	"github.com/LISSConsulting/LISSTech.CurveNav/internal/curve"
)

func focusChannel(times ...float64) *curve.Channel {
	ch := curve.NewChannel("location", 0)
	ch.Selected = true
	for _, t := range times {
		ch.InsertKey(&curve.Keyframe{
			Time:          t,
			Interpolation: curve.Bezier,
			HandleLeft:    curve.Point{Time: t - 2},
			HandleRight:   curve.Point{Time: t + 2},
		})
	}
	return ch
}

func TestPlanFocus_NoSelectionUsesRange(t *testing.T) {
	ch := focusChannel(10, 20)

	plan := PlanFocus([]*curve.Channel{ch}, 1, 250)
	if !plan.UseRange || plan.Start != 1 || plan.End != 250 {
		t.Errorf("plan = %+v, want configured range", plan)
	}
}

func TestPlanFocus_SingleTimeUsesRange(t *testing.T) {
	a := focusChannel(10, 20)
	a.Keys[0].SelectControl = true
	// Same time on a second channel still counts as one distinct instant.
	b := focusChannel(10)
	b.Keys[0].SelectControl = true

	plan := PlanFocus([]*curve.Channel{a, b}, 1, 250)
	if !plan.UseRange {
		t.Errorf("plan = %+v, want configured range for a single instant", plan)
	}
}

func TestPlanFocus_SpansSelectedKeysWithHandles(t *testing.T) {
	ch := focusChannel(10, 20, 30)
	ch.Keys[0].SelectControl = true
	ch.Keys[1].SelectControl = true

	plan := PlanFocus([]*curve.Channel{ch}, 1, 250)
	if plan.UseRange {
		t.Fatalf("plan = %+v, want keyframe extents", plan)
	}
	// Handles widen the span by 2 on each side.
	if plan.Start != 8 || plan.End != 22 {
		t.Errorf("span = %v..%v, want 8..22", plan.Start, plan.End)
	}
}

func TestPlanFocus_HandleOnlySelectionWidensSpan(t *testing.T) {
	ch := focusChannel(10, 20, 30)
	ch.Keys[0].SelectControl = true
	ch.Keys[2].SelectControl = true
	ch.Keys[1].SelectRightHandle = true

	plan := PlanFocus([]*curve.Channel{ch}, 1, 250)
	if plan.Start != 8 || plan.End != 32 {
		t.Errorf("span = %v..%v, want 8..32", plan.Start, plan.End)
	}
}

func TestPlanFocus_IgnoresHiddenAndUnselectedChannels(t *testing.T) {
	active := focusChannel(10, 20)
	active.Keys[0].SelectControl = true
	active.Keys[1].SelectControl = true

	hidden := focusChannel(100, 200)
	hidden.Hidden = true
	hidden.Keys[0].SelectControl = true
	hidden.Keys[1].SelectControl = true

	unselected := focusChannel(300, 400)
	unselected.Selected = false
	unselected.Keys[0].SelectControl = true

	plan := PlanFocus([]*curve.Channel{active, hidden, unselected, nil}, 1, 250)
	if plan.UseRange {
		t.Fatalf("plan = %+v, want keyframe extents", plan)
	}
	if plan.Start != 8 || plan.End != 22 {
		t.Errorf("span = %v..%v, want 8..22", plan.Start, plan.End)
	}
}
