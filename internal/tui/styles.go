package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/weekendly/internal/plan"
	"github.com/javiermolinar/weekendly/internal/tui/theme"
	"github.com/javiermolinar/weekendly/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette
	compact bool

	colorBg      lipgloss.Color
	colorFgMuted lipgloss.Color

	TitleStyle  lipgloss.Style
	HeaderStyle lipgloss.Style
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HelpStyle   lipgloss.Style

	Column view.ColumnStyles
	Modal  view.ModalStyles

	ModalLabelStyle       lipgloss.Style
	ModalInputTextStyle   lipgloss.Style
	ModalInputCursorStyle lipgloss.Style
	ModalErrorStyle       lipgloss.Style

	PickerItemStyle     lipgloss.Style
	PickerSelectedStyle lipgloss.Style
	PickerAddedStyle    lipgloss.Style
	PickerChipStyle     lipgloss.Style

	cards map[plan.Category]view.CardStyles
}

// NewStyles creates styles from a theme. Compact density tightens cards.
func NewStyles(t *theme.Theme, compact bool) *Styles {
	p := theme.NewPalette(t)

	s := &Styles{
		palette:      p,
		compact:      compact,
		colorBg:      p.Bg,
		colorFgMuted: p.FgMuted,
		cards:        make(map[plan.Category]view.CardStyles, len(plan.Categories)),
	}

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.TextOnAccent).
		Background(p.Accent).
		Padding(0, 1)
	s.HeaderStyle = lipgloss.NewStyle().Foreground(p.FgMuted).Background(p.Bg)
	s.StatusStyle = lipgloss.NewStyle().Foreground(p.Fg).Background(p.Bg)
	s.ErrorStyle = lipgloss.NewStyle().Foreground(p.Warning).Background(p.Bg).Bold(true)
	s.HelpStyle = lipgloss.NewStyle().Foreground(p.FgMuted).Background(p.Bg)

	s.Column = view.ColumnStyles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.BgSelection).
			BorderBackground(p.Bg).
			Background(p.BgHighlight),
		FocusedFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			BorderBackground(p.Bg).
			Background(p.BgHighlight),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(p.Fg).Background(p.BgHighlight),
		Summary: lipgloss.NewStyle().Foreground(p.FgMuted).Background(p.BgHighlight),
		Empty:   lipgloss.NewStyle().Italic(true).Foreground(p.FgMuted).Background(p.BgHighlight),
		Bg:      p.BgHighlight,
	}

	s.Modal = view.ModalStyles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Background(p.BgHighlight).
			Foreground(p.Fg).
			Padding(1, 2),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Footer: lipgloss.NewStyle().Foreground(p.FgMuted),
	}
	s.ModalLabelStyle = lipgloss.NewStyle().Foreground(p.FgMuted).Width(10)
	s.ModalInputTextStyle = lipgloss.NewStyle().Foreground(p.Fg)
	s.ModalInputCursorStyle = lipgloss.NewStyle().Foreground(p.Accent)
	s.ModalErrorStyle = lipgloss.NewStyle().Foreground(p.Warning)

	s.PickerItemStyle = lipgloss.NewStyle().Foreground(p.Fg).Padding(0, 1)
	s.PickerSelectedStyle = lipgloss.NewStyle().
		Foreground(p.TextOnAccent).
		Background(p.Accent).
		Padding(0, 1)
	s.PickerAddedStyle = lipgloss.NewStyle().Foreground(p.FgMuted).Padding(0, 1)
	s.PickerChipStyle = lipgloss.NewStyle().Foreground(p.Accent)

	for _, c := range plan.Categories {
		s.cards[c] = s.cardStyles(p.Category(string(c)))
	}
	return s
}

func (s *Styles) cardStyles(c theme.CategoryColors) view.CardStyles {
	body := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(c.Accent).
		BorderBackground(c.Bg).
		Background(c.Bg).
		Foreground(c.Text).
		Padding(0, 1)
	if !s.compact {
		body = body.MarginBottom(1).MarginBackground(s.Column.Bg)
	}
	meta := lipgloss.NewStyle().Foreground(s.colorFgMuted).Background(c.Bg)
	if !s.palette.Light() {
		meta = meta.Foreground(c.Text).Faint(true)
	}

	return view.CardStyles{
		Body: body,
		Selected: body.
			BorderForeground(s.palette.Accent).
			Background(s.palette.BgSelection).
			BorderBackground(s.palette.BgSelection).
			Bold(true),
		Meta:     meta,
		Conflict: lipgloss.NewStyle().Foreground(s.palette.Warning).Background(c.Bg),
	}
}

// Card returns the card styles for a category.
func (s *Styles) Card(c plan.Category) view.CardStyles {
	if cs, ok := s.cards[c]; ok {
		return cs
	}
	return s.cardStyles(s.palette.Category(string(c)))
}
