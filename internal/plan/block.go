// Package plan defines the weekend plan state engine: time blocks, the
// ordered block store, overlap analysis and per-day views.
package plan

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors.
var (
	ErrInvalidDay   = errors.New("day must be 'sat' or 'sun'")
	ErrInvalidClock = errors.New("time must be in HH:MM format")
	ErrInvalidState = errors.New("invalid plan state")
)

// Day is one of the two weekend day buckets.
type Day string

const (
	Saturday Day = "sat"
	Sunday   Day = "sun"
)

// Days lists the day buckets in board order.
var Days = []Day{Saturday, Sunday}

// Valid returns true if the day is a known bucket.
func (d Day) Valid() bool {
	return d == Saturday || d == Sunday
}

// Label returns the full day name.
func (d Day) Label() string {
	switch d {
	case Saturday:
		return "Saturday"
	case Sunday:
		return "Sunday"
	default:
		return string(d)
	}
}

// ParseDay accepts "sat", "sun", "saturday" or "sunday" in any case.
func ParseDay(s string) (Day, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sat", "saturday":
		return Saturday, nil
	case "sun", "sunday":
		return Sunday, nil
	default:
		return "", ErrInvalidDay
	}
}

// Category groups activities by kind.
type Category string

const (
	CategoryFood    Category = "Food"
	CategoryOutdoor Category = "Outdoor"
	CategoryIndoor  Category = "Indoor"
	CategorySocial  Category = "Social"
	CategoryFitness Category = "Fitness"
)

// Categories lists every known category.
var Categories = []Category{CategoryFood, CategoryOutdoor, CategoryIndoor, CategorySocial, CategoryFitness}

// Vibe describes the mood of an activity.
type Vibe string

const (
	VibeChill     Vibe = "Chill"
	VibeEnergetic Vibe = "Energetic"
	VibeCozy      Vibe = "Cozy"
	VibeSocial    Vibe = "Social"
)

// Vibes lists every known vibe.
var Vibes = []Vibe{VibeChill, VibeEnergetic, VibeCozy, VibeSocial}

// Activity is a read-only catalog entry.
type Activity struct {
	ID              string   `toml:"id" json:"id"`
	Title           string   `toml:"title" json:"title"`
	Icon            string   `toml:"icon" json:"icon"`
	Category        Category `toml:"category" json:"category"`
	Vibe            Vibe     `toml:"vibe" json:"vibe"`
	DurationMinutes int      `toml:"duration_minutes" json:"durationMinutes"`
}

// DefaultDurationMinutes is used when an activity carries no duration.
const DefaultDurationMinutes = 60

// TimeBlock is a placed instance of an activity within a day bucket.
// Title, Icon and Category are copied from the activity when the block is
// created so later catalog edits do not change placed blocks.
type TimeBlock struct {
	ID              string   `json:"id"`
	ActivityID      string   `json:"activityId"`
	Title           string   `json:"title"`
	Icon            string   `json:"icon"`
	Category        Category `json:"category"`
	Day             Day      `json:"day"`
	StartMinutes    *int     `json:"startMinutes"` // nil means unscheduled
	DurationMinutes int      `json:"durationMinutes"`
	Notes           string   `json:"notes"`
}

// IsScheduled returns true if the block has a start time.
func (b TimeBlock) IsScheduled() bool {
	return b.StartMinutes != nil
}

// EndMinutes returns the end offset, or false for unscheduled blocks.
func (b TimeBlock) EndMinutes() (int, bool) {
	if b.StartMinutes == nil {
		return 0, false
	}
	return *b.StartMinutes + b.DurationMinutes, true
}

// Range returns the formatted "HH:MM–HH:MM" range, or false for unscheduled blocks.
func (b TimeBlock) Range() (string, bool) {
	d := b.DurationMinutes
	return FormatRange(b.StartMinutes, &d)
}

// clone returns a copy that shares no pointers with b.
func (b TimeBlock) clone() TimeBlock {
	if b.StartMinutes != nil {
		start := *b.StartMinutes
		b.StartMinutes = &start
	}
	return b
}

// State is the persisted plan shape.
type State struct {
	Version int         `json:"version"`
	Blocks  []TimeBlock `json:"blocks"`
}

// Validate checks that block ids are unique and non-empty, every block sits
// on a known day, and scheduled blocks have a positive duration.
func (s State) Validate() error {
	seen := make(map[string]bool, len(s.Blocks))
	for i, b := range s.Blocks {
		switch {
		case b.ID == "":
			return fmt.Errorf("%w: block %d has no id", ErrInvalidState, i)
		case seen[b.ID]:
			return fmt.Errorf("%w: duplicate block id %q", ErrInvalidState, b.ID)
		case !b.Day.Valid():
			return fmt.Errorf("%w: block %q has day %q", ErrInvalidState, b.ID, b.Day)
		case b.StartMinutes != nil && b.DurationMinutes <= 0:
			return fmt.Errorf("%w: block %q is scheduled with duration %d", ErrInvalidState, b.ID, b.DurationMinutes)
		}
		seen[b.ID] = true
	}
	return nil
}

// Conflicts maps a block id to a human-readable overlap diagnostic.
type Conflicts map[string]string
