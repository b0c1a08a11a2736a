package selection

import "github.com/LISSConsulting/LISSTech.CurveNav/internal/curve"

// Transfer migrates the fine-grained keyframe selection of source onto
// target, matching each selected source key to the nearest-time key of the
// target. Equidistant matches resolve to the lower index.
//
// Control-point selection always propagates. A handle flag propagates only
// when both the source and the matched target key are Bezier-interpolated.
// With extend false the source key's flags are cleared and the target key's
// flags are replaced; with extend true both accumulate.
//
// Channel-level flags follow: source.Selected becomes extend, target.Selected
// becomes true. Transferring a channel onto itself, a source with nothing
// selected, or a nil channel is a no-op. A target with no keys receives only
// the channel-level flags.
func Transfer(source, target *curve.Channel, extend bool) {
	if source == nil || target == nil || source == target {
		return
	}

	sel := source.SelectedKeys()
	if len(sel) == 0 {
		return
	}

	source.Selected = extend
	target.Selected = true

	if !target.HasKeys() {
		return
	}

	for _, item := range sel {
		tk := target.Keys[target.NearestKey(item.Key.Time)]
		bezier := item.Key.Interpolation == curve.Bezier && tk.Interpolation == curve.Bezier

		if !extend {
			item.Key.SelectControl = false
			item.Key.SelectLeftHandle = false
			item.Key.SelectRightHandle = false

			// Clear the target's flags before setting so a previous
			// selection on it does not accumulate into this one.
			tk.SelectControl = false
			if bezier {
				tk.SelectLeftHandle = false
				tk.SelectRightHandle = false
			}
		}

		if item.Control {
			tk.SelectControl = true
		}
		if bezier {
			if item.Left {
				tk.SelectLeftHandle = true
			}
			if item.Right {
				tk.SelectRightHandle = true
			}
		}
	}
}
