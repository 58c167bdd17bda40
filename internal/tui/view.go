package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/weekendly/internal/plan"
	"github.com/javiermolinar/weekendly/internal/share"
	"github.com/javiermolinar/weekendly/internal/tui/view"
)

// Minimum terminal size for the board.
const (
	minWidth  = 40
	minHeight = 12
)

const headerHeight = 1

// View renders the board with any open modal on top.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.width < minWidth || m.height < minHeight {
		return "Terminal too small"
	}

	base := m.renderBoard()
	switch m.mode {
	case ModePicker:
		return view.RenderModalOverlay(base, m.renderPicker(), m.width, m.height)
	case ModeEdit:
		return view.RenderModalOverlay(base, m.renderEdit(), m.width, m.height)
	}
	return base
}

func (m Model) renderBoard() string {
	boardH := m.height - headerHeight - view.FooterHeight
	leftW := m.width / 2
	board := m.BoardViews()

	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderColumn(0, board[0], leftW, boardH),
		m.renderColumn(1, board[1], m.width-leftW, boardH),
	)
	footer := view.RenderFooter(view.FooterViewState{
		Width:      m.width,
		StatusLine: m.statusLine(),
		HelpLine:   m.styles.HelpStyle.Render(m.helpLine()),
		Bg:         m.styles.colorBg,
	})

	content := strings.Join([]string{m.renderHeader(board), columns, footer}, "\n")
	return view.PadLinesWithBackground(content, m.width, m.height, m.styles.colorBg)
}

// BoardViews returns the derived views of both days.
func (m Model) BoardViews() []plan.DayView {
	return plan.BuildBoard(m.store.Blocks())
}

func (m Model) renderHeader(board []plan.DayView) string {
	items, total := 0, 0
	for _, v := range board {
		items += len(v.Blocks)
		total += v.TotalMinutes
	}
	summary := fmt.Sprintf(" %d planned", items)
	if t := plan.FormatTotal(total); t != "" {
		summary += " · " + t
	}
	line := m.styles.TitleStyle.Render("Weekendly") + m.styles.HeaderStyle.Render(summary)
	return view.Truncate(line, m.width)
}

func (m Model) renderColumn(col int, v plan.DayView, width, height int) string {
	focused := col == m.focus
	frame := m.styles.Column.Frame
	if focused {
		frame = m.styles.Column.FocusedFrame
	}
	cardW := max(width-frame.GetHorizontalFrameSize(), 1)

	cards := make([]string, 0, len(v.Blocks))
	for i, b := range v.Blocks {
		cards = append(cards, view.RenderCard(cardState(b, v, focused && i == m.cursor[col]),
			m.styles.Card(b.Category), cardW, m.compact))
	}

	// Title and blank line sit above the cards.
	avail := height - frame.GetVerticalFrameSize() - 2
	return view.RenderColumn(view.ColumnState{
		Title:   v.Day.Label(),
		Summary: columnSummary(v),
		Cards:   cards,
		Empty:   "nothing planned · press a to add",
		Focused: focused,
		Width:   width,
		Height:  height,
		Offset:  scrollOffset(cards, m.cursor[col], avail),
	}, m.styles.Column)
}

func cardState(b plan.TimeBlock, v plan.DayView, selected bool) view.CardState {
	when, ok := b.Range()
	if !ok {
		when = "anytime"
	}
	conflict, _ := v.Conflict(b.ID)
	return view.CardState{
		Label:    share.BlockLabel(b),
		When:     when,
		Duration: plan.FormatTotal(b.DurationMinutes),
		Tag:      string(b.Category),
		Notes:    b.Notes,
		Conflict: conflict,
		Selected: selected,
	}
}

// columnSummary returns "2 items · 3h", with a conflict count when any.
func columnSummary(v plan.DayView) string {
	s := strings.TrimPrefix(share.DayHeader(v), v.Day.Label()+" · ")
	if n := len(v.Conflicts); n > 0 {
		s += fmt.Sprintf(" · ⚠ %d", n)
	}
	return s
}

// scrollOffset returns the first card to draw so the cursor card fits in
// avail lines.
func scrollOffset(cards []string, cursor, avail int) int {
	if cursor >= len(cards) {
		return 0
	}
	offset := 0
	for offset < cursor {
		used := 0
		for _, c := range cards[offset : cursor+1] {
			used += lipgloss.Height(c)
		}
		if used <= avail {
			break
		}
		offset++
	}
	return offset
}

func (m Model) statusLine() string {
	if m.mode == ModeConfirmClear {
		return m.styles.ErrorStyle.Render("Clear the whole plan? y/n")
	}
	if m.statusMsg == "" {
		return ""
	}
	if m.statusError {
		return m.styles.ErrorStyle.Render(m.statusMsg)
	}
	return m.styles.StatusStyle.Render(m.statusMsg)
}

func (m Model) helpLine() string {
	switch m.mode {
	case ModePicker:
		return "enter add · / search · c category · v vibe · esc close"
	case ModeEdit:
		return "tab next field · enter save · esc cancel"
	case ModeConfirmClear:
		return "y clear · n cancel"
	}
	return "h/l day · j/k select · J/K reorder · H/L move · a add · e edit · d delete · C clear · p preset · t theme · y copy · q quit"
}
