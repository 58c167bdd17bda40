// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// DefaultName is used for empty or unknown theme names.
const DefaultName = "dark"

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string            `toml:"name"`
	Bg          string            `toml:"bg"`           // Base background
	BgHighlight string            `toml:"bg_highlight"` // Column background
	BgSelection string            `toml:"bg_selection"` // Cursor, selection
	Fg          string            `toml:"fg"`
	FgMuted     string            `toml:"fg_muted"` // Unscheduled blocks, hints
	Accent      string            `toml:"accent"`   // Title, focused column border
	Warning     string            `toml:"warning"`  // Overlap markers
	Category    map[string]string `toml:"category"` // Category name -> accent
}

// Load loads a theme by name from embedded files.
// Falls back to dark if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = DefaultName
	}
	name = strings.ToLower(name)

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		if name != DefaultName {
			return Load(DefaultName)
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	return &t, nil
}

// CategoryColor returns the accent for a category, or the theme accent.
func (t *Theme) CategoryColor(category string) string {
	if c, ok := t.Category[category]; ok && c != "" {
		return c
	}
	return t.Accent
}

// Toggle returns the name of the other theme.
func Toggle(name string) string {
	if strings.EqualFold(name, "light") {
		return "dark"
	}
	return "light"
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"dark", "light"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
