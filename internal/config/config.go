// Package config parses curvenav.toml configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultAccentColor is the default demo TUI accent color (indigo).
const DefaultAccentColor = "#7D56F4"

// hexColorRe matches a 6-digit hex color string like "#7D56F4".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is the top-level curvenav.toml configuration.
type Config struct {
	Navigator NavigatorConfig `toml:"navigator"`
	Frame     FrameConfig     `toml:"frame"`
	TUI       TUIConfig       `toml:"tui"`
}

// NavigatorConfig controls the popup layout and behavior. Sizes are pixels.
type NavigatorConfig struct {
	RowHeight         int     `toml:"row_height"`
	RowWidth          int     `toml:"row_width"`
	TextSize          int     `toml:"text_size"`
	MaxVisibleRows    int     `toml:"max_visible_rows"`
	BackgroundAlpha   float64 `toml:"background_alpha"`
	AutoFocusOnChange bool    `toml:"auto_focus_on_change"`
}

// FrameConfig is the playback/preview range the focus planner falls back to
// when the selection has no horizontal extent.
type FrameConfig struct {
	Start float64 `toml:"start"`
	End   float64 `toml:"end"`
}

// TUIConfig controls the demo terminal UI appearance.
type TUIConfig struct {
	AccentColor string `toml:"accent_color"`
}

// Validate checks the configuration for values that would cause confusing
// runtime behavior. It returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if c.Navigator.RowHeight < 2 {
		errs = append(errs, fmt.Errorf("navigator.row_height must be >= 2"))
	}
	if c.Navigator.RowWidth < 40 {
		errs = append(errs, fmt.Errorf("navigator.row_width must be >= 40"))
	}
	if c.Navigator.TextSize < 1 {
		errs = append(errs, fmt.Errorf("navigator.text_size must be >= 1"))
	}
	if c.Navigator.MaxVisibleRows < 3 || c.Navigator.MaxVisibleRows > 30 {
		errs = append(errs, fmt.Errorf("navigator.max_visible_rows must be in [3, 30]"))
	}
	if c.Navigator.BackgroundAlpha < 0 || c.Navigator.BackgroundAlpha > 1 {
		errs = append(errs, fmt.Errorf("navigator.background_alpha must be in [0, 1]"))
	}
	if c.Frame.End < c.Frame.Start {
		errs = append(errs, fmt.Errorf("frame.end must be >= frame.start"))
	}
	if c.TUI.AccentColor != "" && !hexColorRe.MatchString(c.TUI.AccentColor) {
		errs = append(errs, fmt.Errorf("tui.accent_color must be a hex color (e.g. \"#7D56F4\")"))
	}

	return errors.Join(errs...)
}

// Defaults returns a Config with the standard layout values.
func Defaults() Config {
	return Config{
		Navigator: NavigatorConfig{
			RowHeight:         28,
			RowWidth:          280,
			TextSize:          12,
			MaxVisibleRows:    8,
			BackgroundAlpha:   0.96,
			AutoFocusOnChange: true,
		},
		Frame: FrameConfig{
			Start: 1,
			End:   250,
		},
		TUI: TUIConfig{
			AccentColor: DefaultAccentColor,
		},
	}
}

// Load reads curvenav.toml from the given path. If path is empty, it walks
// up from the current working directory looking for curvenav.toml. Returns
// an error if the file contains unknown keys (likely typos).
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := findConfig()
		if err != nil {
			return nil, err
		}
		path = found
	}

	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, strings.Join(keys, ", "))
	}

	return &cfg, nil
}

// findConfig walks up from the current directory looking for curvenav.toml.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, "curvenav.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("config: curvenav.toml not found (searched up from %s)", dir)
		}
		dir = parent
	}
}

// InitFile writes a default curvenav.toml template to the given directory.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, "curvenav.toml")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: curvenav.toml already exists at %s", path)
	}

	content := `# curvenav.toml — CurveNav configuration

[navigator]
row_height = 28           # pixel height of one channel row
row_width = 280           # pixel width of the popup
text_size = 12            # channel name text size
max_visible_rows = 8      # rows shown before scrolling kicks in
background_alpha = 0.96   # popup background transparency, 0..1
auto_focus_on_change = true

[frame]
start = 1.0               # fallback framing range for the focus planner
end = 250.0

[tui]
accent_color = "#7D56F4"  # hex color for the demo header/accent elements
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}
