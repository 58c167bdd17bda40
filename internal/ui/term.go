package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/javiermolinar/weekendly/internal/plan"
)

// Color definitions for consistent styling across the UI.
var (
	// Scheduled time ranges: bold cyan
	colorTime = color.New(color.FgCyan, color.Bold)

	// Overlap messages: yellow to make them pop
	colorWarning = color.New(color.FgYellow)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Totals: green
	colorStats = color.New(color.FgGreen)

	// Muted: unscheduled blocks, ids, notes
	colorMuted = color.New(color.FgWhite, color.Faint)

	categoryColors = map[plan.Category]*color.Color{
		plan.CategoryFood:    color.New(color.FgRed),
		plan.CategoryOutdoor: color.New(color.FgGreen),
		plan.CategoryIndoor:  color.New(color.FgBlue),
		plan.CategorySocial:  color.New(color.FgMagenta),
		plan.CategoryFitness: color.New(color.FgCyan),
	}
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatTime(s string) string {
	return colorTime.Sprint(s)
}

func formatWarning(s string) string {
	return colorWarning.Sprint(s)
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatStats(s string) string {
	return colorStats.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// formatCategory renders a category tag in its color.
func formatCategory(c plan.Category) string {
	tag := "[" + string(c) + "]"
	if col, ok := categoryColors[c]; ok {
		return col.Sprint(tag)
	}
	return tag
}
