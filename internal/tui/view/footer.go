package view

import "github.com/charmbracelet/lipgloss"

// FooterViewState holds the strings needed to render the footer section.
type FooterViewState struct {
	Width      int
	StatusLine string
	HelpLine   string
	Bg         lipgloss.Color
}

// FooterHeight is the number of lines RenderFooter produces.
const FooterHeight = 2

// RenderFooter renders the status and help lines.
func RenderFooter(state FooterViewState) string {
	s := Truncate(state.StatusLine, state.Width) + "\n" + Truncate(state.HelpLine, state.Width)
	return PadLinesWithBackground(s, state.Width, FooterHeight, state.Bg)
}
