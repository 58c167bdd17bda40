package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekendly/internal/tui/commands"
)

// errorStatusDuration keeps errors on screen longer than plain status lines.
const errorStatusDuration = 5 * time.Second

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		updated, cmd := m.handleKeyMsg(msg)
		if model, ok := updated.(Model); ok {
			model.clampCursors()
			return model, cmd
		}
		return updated, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.ErrMsg:
		m.logError("tui", msg.Err)
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusError = true
		m.statusTime = time.Now().Add(errorStatusDuration)
		return m, commands.ClearStatusAfter(errorStatusDuration)

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusError = false
		m.statusTime = time.Now().Add(commands.StatusDuration)
		return m, commands.ClearStatusAfter(commands.StatusDuration)

	case commands.ClearStatusMsg:
		if !time.Now().Before(m.statusTime) {
			m.statusMsg = ""
			m.statusError = false
		}
		return m, nil

	case commands.ConfigSavedMsg:
		m.logger.Debug("config saved", "path", msg.Path)
		return m, nil
	}

	// Cursor blink and other input messages go to the active text input.
	var cmd tea.Cmd
	switch m.mode {
	case ModePicker:
		if m.picker.searching {
			m.picker.search, cmd = m.picker.search.Update(msg)
		}
	case ModeEdit:
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	}
	return m, cmd
}
