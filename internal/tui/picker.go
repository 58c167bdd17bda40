package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekendly/internal/catalog"
	"github.com/javiermolinar/weekendly/internal/plan"
	"github.com/javiermolinar/weekendly/internal/share"
	"github.com/javiermolinar/weekendly/internal/tui/commands"
	"github.com/javiermolinar/weekendly/internal/tui/view"
)

var (
	categoryOptions = facetOptions(plan.Categories)
	vibeOptions     = facetOptions(plan.Vibes)
)

func facetOptions[T ~string](values []T) []string {
	out := []string{catalog.All}
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}

// filter returns the catalog entries matching the picker's search and facets.
func (p pickerState) filter(c *catalog.Catalog) []plan.Activity {
	return c.Filter(catalog.Filter{
		Search:   p.search.Value(),
		Category: categoryOptions[p.category],
		Vibe:     vibeOptions[p.vibe],
	})
}

func (m *Model) openPicker() {
	m.picker.cursor = 0
	m.picker.searching = false
	m.picker.search.Blur()
	m.logModeChange(ModePicker, "add")
	m.mode = ModePicker
}

func (m *Model) closePicker() {
	m.picker.search.Blur()
	m.picker.searching = false
	m.logModeChange(ModeNormal, "picker closed")
	m.mode = ModeNormal
}

// handlePickerKeys handles keys while the catalog picker is open.
func (m Model) handlePickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picker.searching {
		switch msg.String() {
		case "esc", "enter":
			m.picker.searching = false
			m.picker.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.picker.search, cmd = m.picker.search.Update(msg)
		m.picker.cursor = 0
		return m, cmd
	}

	items := m.picker.filter(m.catalog)
	switch msg.String() {
	case "esc", "q", "a":
		m.closePicker()
	case "/":
		m.picker.searching = true
		return m, m.picker.search.Focus()
	case "j", "down":
		if m.picker.cursor < len(items)-1 {
			m.picker.cursor++
		}
	case "k", "up":
		if m.picker.cursor > 0 {
			m.picker.cursor--
		}
	case "c":
		m.picker.category = (m.picker.category + 1) % len(categoryOptions)
		m.picker.cursor = 0
	case "v":
		m.picker.vibe = (m.picker.vibe + 1) % len(vibeOptions)
		m.picker.cursor = 0
	case "backspace":
		m.picker.search.SetValue("")
		m.picker.category = 0
		m.picker.vibe = 0
		m.picker.cursor = 0
	case "tab":
		m.focus = 1 - m.focus
	case "enter", " ":
		if m.picker.cursor >= len(items) {
			return m, nil
		}
		a := items[m.picker.cursor]
		day := m.focusedDay()
		b := m.store.AddToDay(a, day)
		m.focusBlock(b.ID)
		return m, commands.Status(fmt.Sprintf("Added %s to %s", a.Title, day.Label()))
	}
	return m, nil
}

// renderPicker renders the catalog picker modal.
func (m Model) renderPicker() string {
	s := m.styles
	items := m.picker.filter(m.catalog)
	width := max(min(m.width-10, 56), 24)

	var b strings.Builder
	b.WriteString(m.picker.search.View())
	b.WriteString("\n")
	b.WriteString(s.PickerChipStyle.Render(fmt.Sprintf("category: %s  vibe: %s",
		categoryOptions[m.picker.category], vibeOptions[m.picker.vibe])))
	b.WriteString("\n\n")

	if len(items) == 0 {
		b.WriteString(s.PickerAddedStyle.Render("No activities match."))
	}

	visible := max(m.height-14, 3)
	start := 0
	if m.picker.cursor >= visible {
		start = m.picker.cursor - visible + 1
	}
	day := m.focusedDay()
	for i := start; i < len(items) && i < start+visible; i++ {
		a := items[i]
		mark := "  "
		if m.store.IsAdded(a.ID, day) {
			mark = "✓ "
		}
		label := share.BlockLabel(plan.TimeBlock{Title: a.Title, Icon: a.Icon})
		line := view.Truncate(fmt.Sprintf("%s%s  %s · %s · %s", mark, label,
			a.Category, a.Vibe, plan.FormatTotal(a.DurationMinutes)), width)
		switch {
		case i == m.picker.cursor:
			line = s.PickerSelectedStyle.Render(line)
		case mark != "  ":
			line = s.PickerAddedStyle.Render(line)
		default:
			line = s.PickerItemStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	title := "Add to " + day.Label()
	footer := "enter add · / search · c category · v vibe · tab day · esc close"
	return view.RenderModalFrame(title, strings.TrimRight(b.String(), "\n"), footer, s.Modal)
}
