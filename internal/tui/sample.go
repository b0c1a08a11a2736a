package tui

import (
	"math"

	"github.com/LISSConsulting/LISSTech.CurveNav/internal/curve"
)

// sampleChannelDef describes one generated demo channel.
type sampleChannelDef struct {
	dataPath string
	index    int
	group    string
	color    curve.Color
}

// SampleDocument builds an in-memory document with a rig-like channel set so
// the demo has something to navigate.
func SampleDocument() *curve.SliceDocument {
	defs := []sampleChannelDef{
		{"location", 0, "Torso", curve.Color{0.9, 0.3, 0.3, 1}},
		{"location", 1, "Torso", curve.Color{0.3, 0.9, 0.3, 1}},
		{"location", 2, "Torso", curve.Color{0.3, 0.4, 0.9, 1}},
		{"rotation_euler", 0, "Torso", curve.Color{0.9, 0.5, 0.2, 1}},
		{"rotation_euler", 1, "Torso", curve.Color{0.7, 0.9, 0.2, 1}},
		{`pose.bones["arm_L"].location`, 0, "Arm.L", curve.Color{0.9, 0.3, 0.6, 1}},
		{`pose.bones["arm_L"].location`, 1, "Arm.L", curve.Color{0.5, 0.9, 0.6, 1}},
		{`pose.bones["arm_R"].location`, 0, "Arm.R", curve.Color{0.6, 0.3, 0.9, 1}},
		{`pose.bones["arm_R"].location`, 1, "Arm.R", curve.Color{0.2, 0.8, 0.9, 1}},
		{"scale", 0, "Root", curve.Color{0.9, 0.8, 0.3, 1}},
		{"scale", 1, "Root", curve.Color{0.8, 0.6, 0.4, 1}},
		{"scale", 2, "Root", curve.Color{0.6, 0.6, 0.6, 1}},
	}

	doc := &curve.SliceDocument{}
	for i, def := range defs {
		ch := curve.NewChannel(def.dataPath, def.index)
		ch.Group = def.group
		ch.Color = def.color

		for f := 0; f < 10; f++ {
			t := float64(1 + f*10)
			k := &curve.Keyframe{
				Time:          t,
				Value:         math.Sin(float64(i) + float64(f)/3),
				Interpolation: curve.Bezier,
				HandleLeft:    curve.Point{Time: t - 3},
				HandleRight:   curve.Point{Time: t + 3},
			}
			ch.InsertKey(k)
		}
		doc.Channels = append(doc.Channels, ch)
	}

	// Start with a selection so hover transfer has something to carry.
	first := doc.Channels[0]
	first.Selected = true
	first.Keys[2].SelectControl = true
	first.Keys[4].SelectControl = true
	first.Keys[4].SelectRightHandle = true

	return doc
}
