package input

import (
	"errors"
	"testing"

	"github.com/javiermolinar/weekendly/internal/plan"
)

func apply(t *testing.T, b plan.TimeBlock, f EditForm) plan.TimeBlock {
	t.Helper()
	patches, err := f.Patches()
	if err != nil {
		t.Fatalf("Patches failed: %v", err)
	}
	for _, p := range patches {
		p(&b)
	}
	return b
}

func TestNewEditForm(t *testing.T) {
	start := 570
	f := NewEditForm(plan.TimeBlock{StartMinutes: &start, DurationMinutes: 90, Notes: "n"})
	if f.Start != "09:30" || f.Duration != "90" || f.Notes != "n" {
		t.Errorf("unexpected form: %+v", f)
	}
	if f := NewEditForm(plan.TimeBlock{DurationMinutes: 60}); f.Start != "" {
		t.Errorf("unscheduled block should have empty start, got %q", f.Start)
	}
}

func TestEditForm_Patches(t *testing.T) {
	start := 600
	base := plan.TimeBlock{ID: "b1", StartMinutes: &start, DurationMinutes: 60, Notes: "old"}

	got := apply(t, base, EditForm{Start: "14:00", Duration: "100", Notes: "  new  "})
	if got.StartMinutes == nil || *got.StartMinutes != 840 {
		t.Errorf("start = %v", got.StartMinutes)
	}
	if got.DurationMinutes != 105 {
		t.Errorf("duration = %d, want clamped 105", got.DurationMinutes)
	}
	if got.Notes != "new" {
		t.Errorf("notes = %q", got.Notes)
	}

	got = apply(t, base, EditForm{Start: "", Duration: "", Notes: "old"})
	if got.IsScheduled() {
		t.Error("empty start should unschedule")
	}
	if got.DurationMinutes != 60 {
		t.Errorf("empty duration should keep 60, got %d", got.DurationMinutes)
	}

	got = apply(t, base, EditForm{Start: "10:00", Duration: "999"})
	if got.DurationMinutes != plan.MaxDurationMinutes {
		t.Errorf("duration = %d, want max", got.DurationMinutes)
	}
}

func TestEditForm_Errors(t *testing.T) {
	if _, err := (EditForm{Start: "noon"}).Patches(); !errors.Is(err, plan.ErrInvalidClock) {
		t.Errorf("expected ErrInvalidClock, got %v", err)
	}
	if _, err := (EditForm{Duration: "long"}).Patches(); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("expected ErrInvalidDuration, got %v", err)
	}
}
