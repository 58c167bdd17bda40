package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CardState is the pre-formatted content of one block card.
type CardState struct {
	Label    string // icon and title
	When     string // time range or "anytime"
	Duration string
	Tag      string // category
	Notes    string
	Conflict string
	Selected bool
}

// CardStyles holds the styles of a card for one category.
type CardStyles struct {
	Body     lipgloss.Style
	Selected lipgloss.Style
	Meta     lipgloss.Style
	Conflict lipgloss.Style
}

// RenderCard renders a card of the given outer width. Compact cards drop
// the notes line.
func RenderCard(state CardState, styles CardStyles, width int, compact bool) string {
	style := styles.Body
	if state.Selected {
		style = styles.Selected
	}
	inner := max(width-style.GetHorizontalFrameSize(), 1)

	lines := []string{Truncate(state.Label, inner)}
	meta := state.When
	if state.Duration != "" {
		meta += " · " + state.Duration
	}
	if state.Tag != "" {
		meta += " · " + state.Tag
	}
	lines = append(lines, styles.Meta.Render(Truncate(meta, inner)))
	if !compact && state.Notes != "" {
		lines = append(lines, styles.Meta.Render(Truncate(state.Notes, inner)))
	}
	if state.Conflict != "" {
		lines = append(lines, styles.Conflict.Render(Truncate("⚠ "+state.Conflict, inner)))
	}

	return style.Width(inner).Render(strings.Join(lines, "\n"))
}
