package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekendly/internal/catalog"
	"github.com/javiermolinar/weekendly/internal/plan"
	"github.com/javiermolinar/weekendly/internal/share"
	"github.com/javiermolinar/weekendly/internal/tui/commands"
	"github.com/javiermolinar/weekendly/internal/tui/theme"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.logKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModePicker:
		return m.handlePickerKeys(msg)
	case ModeEdit:
		return m.handleEditKeys(msg)
	case ModeConfirmClear:
		return m.handleConfirmClearKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys on the board.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Navigation
	case "h", "left":
		m.focus = 0
		m.logCursor("focus")
	case "l", "right":
		m.focus = 1
		m.logCursor("focus")
	case "j", "down":
		if m.cursor[m.focus] < m.store.DayCount(m.focusedDay())-1 {
			m.cursor[m.focus]++
		}
		m.logCursor("down")
	case "k", "up":
		if m.cursor[m.focus] > 0 {
			m.cursor[m.focus]--
		}
		m.logCursor("up")
	case "g", "home":
		m.cursor[m.focus] = 0
	case "G", "end":
		m.cursor[m.focus] = max(0, m.store.DayCount(m.focusedDay())-1)

	// Reordering
	case "J", "shift+down":
		return m.reorder(1)
	case "K", "shift+up":
		return m.reorder(-1)
	case "H", "shift+left":
		return m.moveToDay(plan.Saturday)
	case "L", "shift+right":
		return m.moveToDay(plan.Sunday)

	// Editing
	case "a":
		m.openPicker()
	case "e", "enter":
		b, ok := m.selected()
		if !ok {
			return m, commands.Status("Nothing to edit")
		}
		m.openEdit(b)
	case "d", "x":
		b, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.store.RemoveBlock(b.ID)
		m.clampCursors()
		return m, commands.Status(fmt.Sprintf("Removed %s", b.Title))
	case "C":
		if len(m.store.Blocks()) == 0 {
			return m, commands.Status("Plan is already empty")
		}
		m.logModeChange(ModeConfirmClear, "clear")
		m.mode = ModeConfirmClear

	// Plan-wide actions
	case "p":
		return m.applyNextPreset()
	case "t":
		return m.toggleTheme()
	case "D":
		m.compact = !m.compact
		m.applyTheme()
		m.applyInputStyles()
	case "y":
		return m, commands.CopyPlan(share.Text(m.store.Blocks()))
	}

	return m, nil
}

// reorder moves the selected block delta places within its day.
func (m Model) reorder(delta int) (tea.Model, tea.Cmd) {
	b, ok := m.selected()
	if !ok {
		return m, nil
	}
	i := m.cursor[m.focus] + delta
	if i < 0 || i >= m.store.DayCount(b.Day) {
		return m, nil
	}
	m.store.MoveBlockToDay(b.ID, b.Day, i)
	m.focusBlock(b.ID)
	m.logCursor("reorder")
	return m, nil
}

// moveToDay moves the selected block to day, at the position under that
// column's cursor.
func (m Model) moveToDay(day plan.Day) (tea.Model, tea.Cmd) {
	b, ok := m.selected()
	if !ok || b.Day == day {
		return m, nil
	}
	target := 0
	if day == plan.Sunday {
		target = 1
	}
	m.store.MoveBlockToDay(b.ID, day, m.cursor[target])
	m.clampCursors()
	m.focusBlock(b.ID)
	m.logCursor("move")
	return m, commands.Status(fmt.Sprintf("Moved %s to %s", b.Title, day.Label()))
}

// applyNextPreset replaces the plan with the next preset in the cycle.
func (m Model) applyNextPreset() (tea.Model, tea.Cmd) {
	presets := m.catalog.Presets()
	if len(presets) == 0 {
		return m, commands.Status("No presets available")
	}
	p := presets[m.presetIdx%len(presets)]
	m.presetIdx = (m.presetIdx + 1) % len(presets)

	if err := catalog.ApplyPreset(m.store, m.catalog, p.Name); err != nil {
		m.logError("applying preset", err)
		return m, commands.Error(err)
	}
	m.cursor = [2]int{}
	return m, commands.Status(fmt.Sprintf("Applied %s preset", p.Name))
}

// toggleTheme switches between the dark and light themes and saves the
// choice when a config path is known.
func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	m.themeName = theme.Toggle(m.themeName)
	m.config.UI.Theme = m.themeName
	m.applyTheme()
	m.applyInputStyles()

	status := commands.Status("Theme: "+m.themeName)
	if m.configPath == "" {
		return m, status
	}
	return m, tea.Batch(status, commands.SaveConfig(m.config, m.configPath))
}

// handleConfirmClearKeys asks before wiping the plan.
func (m Model) handleConfirmClearKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		n := len(m.store.Blocks())
		m.store.ClearPlan()
		m.cursor = [2]int{}
		m.logModeChange(ModeNormal, "cleared")
		m.mode = ModeNormal
		return m, commands.Status(fmt.Sprintf("Cleared %d blocks", n))
	case "n", "N", "esc", "q":
		m.logModeChange(ModeNormal, "clear cancelled")
		m.mode = ModeNormal
	}
	return m, nil
}
