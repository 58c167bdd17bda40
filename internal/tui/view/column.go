package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColumnState is the content of one day column.
type ColumnState struct {
	Title   string
	Summary string // "2 items · 3h"
	Cards   []string
	Empty   string // shown when there are no cards
	Focused bool
	Width   int
	Height  int
	Offset  int // index of the first visible card
}

// ColumnStyles holds the styles of a day column.
type ColumnStyles struct {
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style
	Title        lipgloss.Style
	Summary      lipgloss.Style
	Empty        lipgloss.Style
	Bg           lipgloss.Color
}

// RenderColumn renders a bordered day column of the given size. Cards that
// do not fit below Offset are left out.
func RenderColumn(state ColumnState, styles ColumnStyles) string {
	frame := styles.Frame
	if state.Focused {
		frame = styles.FocusedFrame
	}
	innerW := max(state.Width-frame.GetHorizontalFrameSize(), 1)
	innerH := max(state.Height-frame.GetVerticalFrameSize(), 1)

	header := styles.Title.Render(state.Title) + " " + styles.Summary.Render(state.Summary)
	lines := []string{Truncate(header, innerW), ""}

	if len(state.Cards) == 0 {
		lines = append(lines, styles.Empty.Render(Truncate(state.Empty, innerW)))
	}
	for i := state.Offset; i < len(state.Cards); i++ {
		card := strings.Split(state.Cards[i], "\n")
		if len(lines)+len(card) > innerH {
			break
		}
		lines = append(lines, card...)
	}

	body := PadLinesWithBackground(strings.Join(lines, "\n"), innerW, innerH, styles.Bg)
	return frame.Render(body)
}
