package navigator

import "github.com/LISSConsulting/LISSTech.CurveNav/internal/curve"

// FramePlan is the view-framing decision made when the interaction commits:
// either the extents of the selected keyframes, or the configured
// playback/preview range when the selection has no horizontal extent.
type FramePlan struct {
	UseRange bool
	Start    float64
	End      float64
}

// PlanFocus decides what to frame after a channel change. It counts the
// distinct time coordinates of control-selected keys on selected, non-hidden
// channels; fewer than two distinct times means a single instant with no
// meaningful horizontal extent, so the configured range wins. Otherwise the
// plan spans the selected keys, widened by Bezier handle positions.
func PlanFocus(channels []*curve.Channel, rangeStart, rangeEnd float64) FramePlan {
	distinct := make(map[float64]struct{})
	for _, ch := range channels {
		if ch == nil || !ch.Selected || ch.Hidden {
			continue
		}
		for _, k := range ch.Keys {
			if k.SelectControl {
				distinct[k.Time] = struct{}{}
			}
		}
	}

	if len(distinct) < 2 {
		return FramePlan{UseRange: true, Start: rangeStart, End: rangeEnd}
	}

	first := true
	var start, end float64
	extend := func(t float64) {
		if first {
			start, end = t, t
			first = false
			return
		}
		if t < start {
			start = t
		}
		if t > end {
			end = t
		}
	}

	for _, ch := range channels {
		if ch == nil || !ch.Selected || ch.Hidden {
			continue
		}
		for _, k := range ch.Keys {
			if !k.AnySelected() {
				continue
			}
			extend(k.Time)
			if k.Interpolation == curve.Bezier {
				extend(k.HandleLeft.Time)
				extend(k.HandleRight.Time)
			}
		}
	}

	return FramePlan{Start: start, End: end}
}
