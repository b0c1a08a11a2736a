package curve

import (
	"fmt"
	"regexp"
	"strings"
)

// arrayLabels maps well-known array property names to per-index labels.
var arrayLabels = map[string][]string{
	"location":       {"X Location", "Y Location", "Z Location"},
	"scale":          {"X Scale", "Y Scale", "Z Scale"},
	"rotation_euler": {"X Euler Rotation", "Y Euler Rotation", "Z Euler Rotation"},
	"rotation_quaternion": {
		"W Quaternion Rotation",
		"X Quaternion Rotation",
		"Y Quaternion Rotation",
		"Z Quaternion Rotation",
	},
	"delta_location":       {"X Delta Location", "Y Delta Location", "Z Delta Location"},
	"delta_scale":          {"X Delta Scale", "Y Delta Scale", "Z Delta Scale"},
	"delta_rotation_euler": {"X Delta Euler Rotation", "Y Delta Euler Rotation", "Z Delta Euler Rotation"},
	"delta_rotation_quaternion": {
		"W Delta Quaternion Rotation",
		"X Delta Quaternion Rotation",
		"Y Delta Quaternion Rotation",
		"Z Delta Quaternion Rotation",
	},
}

// camelBoundaryRe matches a dot followed by an upper-case letter, so
// "pose.Bones" reads as "pose. Bones" before capitalization.
var camelBoundaryRe = regexp.MustCompile(`(\.)([A-Z])`)

// readableDataPath turns a raw data path like `pose.bones["arm"].rotation_euler`
// into a human-readable label.
func readableDataPath(path string) string {
	r := strings.NewReplacer(`["`, " ", `"].`, " < ", "_", " ")
	path = r.Replace(path)
	path = camelBoundaryRe.ReplaceAllString(path, "$1 $2")

	words := strings.Split(path, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// DisplayName returns the human-readable channel name shown in navigator
// rows: a per-index label for well-known array properties, otherwise the
// prettified data path, prefixed with the group name when set.
func (c *Channel) DisplayName() string {
	var name string

	parts := strings.Split(c.DataPath, ".")
	lastKey := parts[len(parts)-1]
	if labels, ok := arrayLabels[lastKey]; ok && c.ArrayIndex < len(labels) {
		name = labels[c.ArrayIndex]
	} else {
		name = readableDataPath(c.DataPath)
		if c.ArrayIndex != 0 {
			name += fmt.Sprintf("[%d]", c.ArrayIndex)
		}
	}

	if c.Group != "" {
		name = c.Group + ": " + name
	}
	return name
}

// DisplayColor returns the channel color with the given alpha, falling back
// to white for a zero-value color.
func (c *Channel) DisplayColor(alpha float32) Color {
	col := c.Color
	if col == (Color{}) {
		col = Color{1, 1, 1, 1}
	}
	return col.WithAlpha(alpha)
}
