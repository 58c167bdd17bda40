// Package share renders the plan as plain text for export.
package share

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/javiermolinar/weekendly/internal/plan"
)

// Footer ends every export.
const Footer = "Planned with Weekendly"

const unscheduled = "anytime"

// Text renders the board as plain text, Saturday first.
func Text(blocks []plan.TimeBlock) string {
	var sb strings.Builder
	sb.WriteString("My weekend plan\n")

	for _, v := range plan.BuildBoard(blocks) {
		sb.WriteString("\n")
		sb.WriteString(DayHeader(v))
		sb.WriteString("\n")
		if len(v.Blocks) == 0 {
			sb.WriteString("  (nothing planned)\n")
			continue
		}
		for _, b := range v.Blocks {
			when, ok := b.Range()
			if !ok {
				when = unscheduled
			}
			fmt.Fprintf(&sb, "  %-11s  %s\n", when, BlockLabel(b))
			if b.Notes != "" {
				fmt.Fprintf(&sb, "  %-11s  %s\n", "", b.Notes)
			}
			if msg, ok := v.Conflict(b.ID); ok {
				fmt.Fprintf(&sb, "  %-11s  ! %s\n", "", msg)
			}
		}
	}

	sb.WriteString("\n")
	sb.WriteString(Footer)
	sb.WriteString("\n")
	return sb.String()
}

// DayHeader returns "Saturday · 2 items · 3h".
func DayHeader(v plan.DayView) string {
	noun := "items"
	if len(v.Blocks) == 1 {
		noun = "item"
	}
	header := fmt.Sprintf("%s · %d %s", v.Day.Label(), len(v.Blocks), noun)
	if total := plan.FormatTotal(v.TotalMinutes); total != "" {
		header += " · " + total
	}
	return header
}

// BlockLabel returns the icon and title of a block.
func BlockLabel(b plan.TimeBlock) string {
	if b.Icon == "" {
		return b.Title
	}
	return b.Icon + " " + b.Title
}

// Copy puts text on the system clipboard.
func Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
