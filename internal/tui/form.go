package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekendly/internal/plan"
	"github.com/javiermolinar/weekendly/internal/tui/commands"
	"github.com/javiermolinar/weekendly/internal/tui/input"
	"github.com/javiermolinar/weekendly/internal/tui/view"
)

var fieldLabels = [fieldCount]string{"Start", "Duration", "Notes"}

// openEdit fills the edit form from b.
func (m *Model) openEdit(b plan.TimeBlock) {
	f := input.NewEditForm(b)
	m.form.blockID = b.ID
	m.form.err = ""
	m.form.inputs[fieldStart].SetValue(f.Start)
	m.form.inputs[fieldDuration].SetValue(f.Duration)
	m.form.inputs[fieldNotes].SetValue(f.Notes)
	m.setFormFocus(fieldStart)
	m.logModeChange(ModeEdit, "edit")
	m.mode = ModeEdit
}

func (m *Model) setFormFocus(field int) {
	m.form.focus = field
	for i := range m.form.inputs {
		if i == field {
			m.form.inputs[i].Focus()
			m.form.inputs[i].CursorEnd()
		} else {
			m.form.inputs[i].Blur()
		}
	}
}

// handleEditKeys handles keys while the edit form is open.
func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.logModeChange(ModeNormal, "edit cancelled")
		m.mode = ModeNormal
		return m, nil
	case "tab", "down":
		m.setFormFocus((m.form.focus + 1) % fieldCount)
		return m, nil
	case "shift+tab", "up":
		m.setFormFocus((m.form.focus + fieldCount - 1) % fieldCount)
		return m, nil
	case "enter":
		return m.submitEdit()
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	m.form.err = ""
	return m, cmd
}

// submitEdit validates the form and applies it to the block.
func (m Model) submitEdit() (tea.Model, tea.Cmd) {
	f := input.EditForm{
		Start:    m.form.inputs[fieldStart].Value(),
		Duration: m.form.inputs[fieldDuration].Value(),
		Notes:    m.form.inputs[fieldNotes].Value(),
	}
	patches, err := f.Patches()
	if err != nil {
		m.form.err = err.Error()
		return m, nil
	}

	m.store.UpdateBlock(m.form.blockID, patches...)
	m.logModeChange(ModeNormal, "edit saved")
	m.mode = ModeNormal

	b, ok := m.store.Block(m.form.blockID)
	if !ok {
		return m, nil
	}
	return m, commands.Status(fmt.Sprintf("Updated %s", b.Title))
}

// renderEdit renders the edit form modal.
func (m Model) renderEdit() string {
	s := m.styles
	var b strings.Builder
	for i, in := range m.form.inputs {
		b.WriteString(s.ModalLabelStyle.Render(fieldLabels[i]))
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	if m.form.err != "" {
		b.WriteString("\n")
		b.WriteString(s.ModalErrorStyle.Render(m.form.err))
	}

	title := "Edit"
	if blk, ok := m.store.Block(m.form.blockID); ok {
		title = "Edit " + blk.Title
	}
	footer := fmt.Sprintf("tab next · enter save · esc cancel · %d–%d min",
		plan.MinDurationMinutes, plan.MaxDurationMinutes)
	return view.RenderModalFrame(title, strings.TrimRight(b.String(), "\n"), footer, s.Modal)
}
