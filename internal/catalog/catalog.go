// Package catalog provides the read-only activity catalog and the
// starter presets built from it.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/weekendly/internal/plan"
)

//go:embed catalog.toml
var embedded []byte

// All disables a filter facet.
const All = "All"

// Catalog errors.
var (
	ErrUnknownActivity = errors.New("unknown activity")
	ErrUnknownPreset   = errors.New("unknown preset")
)

// Preset is a named starter plan: activity ids per day, in order.
type Preset struct {
	Name string   `toml:"name"`
	Sat  []string `toml:"sat"`
	Sun  []string `toml:"sun"`
}

// IDs returns the preset's activity ids for day.
func (p Preset) IDs(day plan.Day) []string {
	if day == plan.Sunday {
		return p.Sun
	}
	return p.Sat
}

type file struct {
	Activities []plan.Activity `toml:"activity"`
	Presets    []Preset        `toml:"preset"`
}

// Catalog holds the activities and presets.
type Catalog struct {
	activities []plan.Activity
	byID       map[string]int
	presets    []Preset
}

// Load reads a catalog file. An empty path loads the built-in catalog.
func Load(path string) (*Catalog, error) {
	data := embedded
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading catalog: %w", err)
		}
		data = b
	}
	return Parse(data)
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(embedded)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}
	return c
}

// Parse decodes a catalog from TOML. Activity ids must be unique; preset
// references are checked when a preset is applied.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	c := &Catalog{byID: make(map[string]int, len(f.Activities))}
	for _, a := range f.Activities {
		if a.ID == "" {
			return nil, fmt.Errorf("activity %q has no id", a.Title)
		}
		if _, dup := c.byID[a.ID]; dup {
			return nil, fmt.Errorf("duplicate activity id %q", a.ID)
		}
		if a.DurationMinutes <= 0 {
			a.DurationMinutes = plan.DefaultDurationMinutes
		}
		c.byID[a.ID] = len(c.activities)
		c.activities = append(c.activities, a)
	}

	c.presets = f.Presets

	return c, nil
}

// Activities returns every activity in catalog order.
func (c *Catalog) Activities() []plan.Activity {
	return slices.Clone(c.activities)
}

// Activity returns the activity with the given id.
func (c *Catalog) Activity(id string) (plan.Activity, bool) {
	i, ok := c.byID[id]
	if !ok {
		return plan.Activity{}, false
	}
	return c.activities[i], true
}

// Filter narrows the activity list. Empty or "All" facets match everything.
type Filter struct {
	Search   string
	Category string
	Vibe     string
}

func (f Filter) match(a plan.Activity) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !strings.Contains(strings.ToLower(a.Title), q) {
			return false
		}
	}
	if f.Category != "" && f.Category != All && !strings.EqualFold(f.Category, string(a.Category)) {
		return false
	}
	if f.Vibe != "" && f.Vibe != All && !strings.EqualFold(f.Vibe, string(a.Vibe)) {
		return false
	}
	return true
}

// Filter returns the activities matching f, in catalog order.
func (c *Catalog) Filter(f Filter) []plan.Activity {
	var out []plan.Activity
	for _, a := range c.activities {
		if f.match(a) {
			out = append(out, a)
		}
	}
	return out
}

// Presets returns the presets in file order.
func (c *Catalog) Presets() []Preset {
	return slices.Clone(c.presets)
}

// Preset looks up a preset by name, ignoring case.
func (c *Catalog) Preset(name string) (Preset, bool) {
	for _, p := range c.presets {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return Preset{}, false
}
