package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/javiermolinar/weekendly/internal/plan"
	"github.com/javiermolinar/weekendly/internal/share"
)

// printDay prints one day column: header, blocks, conflicts.
func printDay(w io.Writer, v plan.DayView) {
	header := fmt.Sprintf("%s (%d)", v.Day.Label(), len(v.Blocks))
	if total := plan.FormatTotal(v.TotalMinutes); total != "" {
		header += "  " + formatStats(total)
	}
	fmt.Fprintf(w, "=== %s ===\n", formatHeader(header))

	if len(v.Blocks) == 0 {
		fmt.Fprintln(w, formatMuted("  nothing planned"))
		return
	}

	for _, b := range v.Blocks {
		printBlockRow(w, b)
		if b.Notes != "" {
			fmt.Fprintf(w, "    %s\n", formatMuted(b.Notes))
		}
		if msg, ok := v.Conflict(b.ID); ok {
			fmt.Fprintf(w, "    %s\n", formatWarning("⚠ "+msg))
		}
	}
}

// printBlockRow prints "  id  HH:MM–HH:MM  icon title [Category] 1h30m".
func printBlockRow(w io.Writer, b plan.TimeBlock) {
	when, ok := b.Range()
	if ok {
		when = formatTime(when)
	} else {
		when = formatMuted(fmt.Sprintf("%-11s", "unscheduled"))
	}
	fmt.Fprintf(w, "  %s  %s  %s %s %s\n",
		formatMuted(fmt.Sprintf("%-*s", shortIDLen, shortID(b.ID))),
		when,
		share.BlockLabel(b),
		formatCategory(b.Category),
		formatMuted(plan.FormatTotal(b.DurationMinutes)),
	)
}

// rule returns a horizontal line fitted to the terminal.
func rule() string {
	return strings.Repeat("─", min(termWidth(), 60))
}
