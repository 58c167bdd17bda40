package catalog

import (
	"fmt"

	"github.com/javiermolinar/weekendly/internal/plan"
)

// ApplyPreset replaces the plan with the named preset: Saturday's
// activities first, then Sunday's, each in preset order. Nothing changes
// when the preset or any of its activities is unknown.
func ApplyPreset(store *plan.Store, c *Catalog, name string) error {
	p, ok := c.Preset(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}

	type entry struct {
		activity plan.Activity
		day      plan.Day
	}
	var entries []entry
	for _, day := range plan.Days {
		for _, id := range p.IDs(day) {
			a, ok := c.Activity(id)
			if !ok {
				return fmt.Errorf("preset %s: %w: %s", p.Name, ErrUnknownActivity, id)
			}
			entries = append(entries, entry{activity: a, day: day})
		}
	}

	store.ClearPlan()
	for _, e := range entries {
		store.AddToDay(e.activity, e.day)
	}
	return nil
}
