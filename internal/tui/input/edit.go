// Package input parses values typed into TUI forms.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/javiermolinar/weekendly/internal/plan"
)

// ErrInvalidDuration is returned for non-numeric durations.
var ErrInvalidDuration = errors.New("duration must be a number of minutes")

// EditForm holds the raw text of the block edit form.
type EditForm struct {
	Start    string // "HH:MM"; empty unschedules
	Duration string // minutes; empty keeps the current value
	Notes    string
}

// NewEditForm fills the form from a block.
func NewEditForm(b plan.TimeBlock) EditForm {
	f := EditForm{Notes: b.Notes, Duration: strconv.Itoa(b.DurationMinutes)}
	if b.StartMinutes != nil {
		f.Start = plan.MinutesToClock(*b.StartMinutes)
	}
	return f
}

// Patches validates the form and returns the block changes it describes.
// The duration is clamped to the allowed range.
func (f EditForm) Patches() ([]plan.BlockPatch, error) {
	patches := []plan.BlockPatch{plan.WithNotes(strings.TrimSpace(f.Notes))}

	start := strings.TrimSpace(f.Start)
	if start == "" {
		patches = append(patches, plan.Unschedule())
	} else {
		mins, err := plan.ParseClock(start)
		if err != nil {
			return nil, err
		}
		patches = append(patches, plan.WithStart(mins))
	}

	if d := strings.TrimSpace(f.Duration); d != "" {
		n, err := strconv.Atoi(d)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDuration, d)
		}
		patches = append(patches, plan.WithDuration(plan.ClampDuration(n)))
	}

	return patches, nil
}
