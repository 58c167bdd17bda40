package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Debug events go through the model's logger at debug level, so they only
// show up when weekendly runs with --debug.

func (m Model) logKeyPress(msg tea.KeyMsg) {
	m.logger.Debug("key press", "key", msg.String(), "mode", m.mode)
}

func (m Model) logModeChange(to Mode, reason string) {
	m.logger.Debug("mode change", "from", m.mode, "to", to, "reason", reason)
}

func (m Model) logCursor(reason string) {
	m.logger.Debug("cursor move",
		"day", m.focusedDay(),
		"index", m.cursor[m.focus],
		"reason", reason,
	)
}

func (m Model) logError(context string, err error) {
	m.logger.Error(context, "error", err)
}
