// Package commands provides TUI command constructors and message types.
package commands

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekendly/internal/config"
	"github.com/javiermolinar/weekendly/internal/share"
)

// StatusDuration is how long a status message stays visible.
const StatusDuration = 3 * time.Second

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// Status returns a command that shows msg in the footer.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}

// ClearStatusAfter clears the status line after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// CopyPlan puts the plan text on the clipboard.
func CopyPlan(text string) tea.Cmd {
	return copyWith(text, share.Copy)
}

func copyWith(text string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if err := copyFn(text); err != nil {
			return ErrMsg{Err: err}
		}
		return StatusMsgCmd{Msg: "Plan copied to clipboard"}
	}
}

// Error reports err in the footer.
func Error(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrMsg{Err: err}
	}
}

// ConfigSavedMsg is sent after the config file was written.
type ConfigSavedMsg struct {
	Path string
}

// SaveConfig writes cfg to path.
func SaveConfig(cfg *config.Config, path string) tea.Cmd {
	return func() tea.Msg {
		if err := cfg.SaveTo(path); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving config: %w", err)}
		}
		return ConfigSavedMsg{Path: path}
	}
}
