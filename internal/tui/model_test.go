package tui

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/weekendly/internal/catalog"
	"github.com/javiermolinar/weekendly/internal/config"
	"github.com/javiermolinar/weekendly/internal/plan"
	"github.com/javiermolinar/weekendly/internal/tui/commands"
)

func plainProfile(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	n := 0
	store := plan.NewStore(plan.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("b%d", n)
	}))
	m := New(Options{
		Store:   store,
		Catalog: catalog.Default(),
		Config:  config.Default(),
		Logger:  log.New(io.Discard),
	})
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	return model
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends each key in turn.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, key(k))
	}
	return m
}

// typeText sends s one rune at a time.
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func activity(t *testing.T, m Model, id string) plan.Activity {
	t.Helper()
	a, ok := m.catalog.Activity(id)
	if !ok {
		t.Fatalf("activity %s not in catalog", id)
	}
	return a
}

func dayIDs(m Model, day plan.Day) []string {
	var out []string
	for _, b := range plan.BuildDayView(m.store.Blocks(), day).Blocks {
		out = append(out, b.ID)
	}
	return out
}

func assertDay(t *testing.T, m Model, day plan.Day, want ...string) {
	t.Helper()
	got := dayIDs(m, day)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("%s = %v, want %v", day, got, want)
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeNormal, "normal"},
		{ModePicker, "picker"},
		{ModeEdit, "edit"},
		{ModeConfirmClear, "confirm-clear"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestNew_Defaults(t *testing.T) {
	m := New(Options{})
	if m.store == nil || m.catalog == nil || m.config == nil || m.logger == nil {
		t.Fatal("expected defaults for missing options")
	}
	if m.themeName != "dark" {
		t.Errorf("themeName = %q, want dark", m.themeName)
	}
	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want normal", m.mode)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := m.Update(key(k))
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", k)
		}
	}
}

func TestNavigation(t *testing.T) {
	m := newTestModel(t)
	m.store.AddToDay(activity(t, m, "a1"), plan.Saturday)
	m.store.AddToDay(activity(t, m, "a2"), plan.Saturday)
	m.store.AddToDay(activity(t, m, "a3"), plan.Sunday)

	m = press(t, m, "j")
	if b, _ := m.selected(); b.ID != "b2" {
		t.Errorf("after j selected %q, want b2", b.ID)
	}
	m = press(t, m, "j")
	if m.cursor[0] != 1 {
		t.Errorf("cursor should stop at the last block, got %d", m.cursor[0])
	}
	m = press(t, m, "k", "k")
	if m.cursor[0] != 0 {
		t.Errorf("cursor should stop at the first block, got %d", m.cursor[0])
	}

	m = press(t, m, "l")
	if m.focusedDay() != plan.Sunday {
		t.Fatalf("focused day = %s, want sun", m.focusedDay())
	}
	if b, _ := m.selected(); b.ID != "b3" {
		t.Errorf("selected %q, want b3", b.ID)
	}
	m = press(t, m, "h")
	if m.focusedDay() != plan.Saturday {
		t.Errorf("focused day = %s, want sat", m.focusedDay())
	}
}

func TestReorder(t *testing.T) {
	m := newTestModel(t)
	for _, id := range []string{"a1", "a2", "a3"} {
		m.store.AddToDay(activity(t, m, id), plan.Saturday)
	}

	m = press(t, m, "J")
	assertDay(t, m, plan.Saturday, "b2", "b1", "b3")
	if b, _ := m.selected(); b.ID != "b1" {
		t.Errorf("cursor should follow the moved block, selected %q", b.ID)
	}

	m = press(t, m, "J", "J")
	assertDay(t, m, plan.Saturday, "b2", "b3", "b1")

	m = press(t, m, "K")
	assertDay(t, m, plan.Saturday, "b2", "b1", "b3")

	m = press(t, m, "k", "K")
	assertDay(t, m, plan.Saturday, "b2", "b1", "b3")
}

func TestMoveToOtherDay(t *testing.T) {
	m := newTestModel(t)
	m.store.AddToDay(activity(t, m, "a1"), plan.Saturday)
	m.store.AddToDay(activity(t, m, "a2"), plan.Sunday)
	m.store.AddToDay(activity(t, m, "a3"), plan.Sunday)

	// Sunday's cursor sits on its second block.
	m = press(t, m, "l", "j", "h")

	m = press(t, m, "L")
	assertDay(t, m, plan.Saturday)
	assertDay(t, m, plan.Sunday, "b2", "b1", "b3")
	if m.focusedDay() != plan.Sunday {
		t.Errorf("focus should follow the moved block")
	}
	if b, _ := m.selected(); b.ID != "b1" {
		t.Errorf("selected %q, want b1", b.ID)
	}

	// Moving to the day the block is already on does nothing.
	m = press(t, m, "L")
	assertDay(t, m, plan.Sunday, "b2", "b1", "b3")

	m = press(t, m, "H")
	assertDay(t, m, plan.Saturday, "b1")
	assertDay(t, m, plan.Sunday, "b2", "b3")
}

func TestDelete(t *testing.T) {
	m := newTestModel(t)
	m.store.AddToDay(activity(t, m, "a1"), plan.Saturday)
	m.store.AddToDay(activity(t, m, "a2"), plan.Saturday)

	m = press(t, m, "j", "d")
	assertDay(t, m, plan.Saturday, "b1")
	if m.cursor[0] != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor[0])
	}

	m = press(t, m, "d", "d")
	if len(m.store.Blocks()) != 0 {
		t.Errorf("expected empty plan, got %v", m.store.Blocks())
	}
}

func TestClearPlan(t *testing.T) {
	m := newTestModel(t)
	m.store.AddToDay(activity(t, m, "a1"), plan.Saturday)
	m.store.AddToDay(activity(t, m, "a2"), plan.Sunday)

	m = press(t, m, "C")
	if m.mode != ModeConfirmClear {
		t.Fatalf("mode = %v, want confirm-clear", m.mode)
	}
	m = press(t, m, "n")
	if m.mode != ModeNormal || len(m.store.Blocks()) != 2 {
		t.Fatalf("cancel should keep the plan")
	}

	m = press(t, m, "C", "y")
	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want normal", m.mode)
	}
	if len(m.store.Blocks()) != 0 {
		t.Errorf("expected empty plan, got %v", m.store.Blocks())
	}

	m = press(t, m, "C")
	if m.mode != ModeNormal {
		t.Error("clearing an empty plan should not ask")
	}
}

func TestPresetCycle(t *testing.T) {
	m := newTestModel(t)
	m.store.AddToDay(activity(t, m, "a8"), plan.Saturday)

	m = press(t, m, "p")
	presets := m.catalog.Presets()
	want := len(presets[0].Sat) + len(presets[0].Sun)
	if got := len(m.store.Blocks()); got != want {
		t.Fatalf("after first preset got %d blocks, want %d", got, want)
	}
	first := m.store.Blocks()[0]
	if first.ActivityID != presets[0].Sat[0] || first.Day != plan.Saturday {
		t.Errorf("first block = %+v", first)
	}

	m = press(t, m, "p")
	if got := m.store.Blocks()[0].ActivityID; got != presets[1].Sat[0] {
		t.Errorf("second preset first activity = %q, want %q", got, presets[1].Sat[0])
	}

	for range presets {
		m = press(t, m, "p")
	}
	if m.presetIdx != 2%len(presets) {
		t.Errorf("presetIdx = %d", m.presetIdx)
	}
}

func TestToggleTheme(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "t")
	if m.themeName != "light" || m.config.UI.Theme != "light" {
		t.Errorf("theme = %q/%q, want light", m.themeName, m.config.UI.Theme)
	}
	if !m.styles.palette.Light() {
		t.Error("styles should use the light palette")
	}
	m = press(t, m, "t")
	if m.themeName != "dark" {
		t.Errorf("theme = %q, want dark", m.themeName)
	}
}

func TestToggleTheme_SavesConfig(t *testing.T) {
	m := newTestModel(t)
	m.configPath = t.TempDir() + "/config.toml"

	updated, cmd := m.Update(key("t"))
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("expected commands")
	}
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatalf("expected batch, got %T", cmd())
	}
	saved := false
	for _, c := range batch {
		if _, ok := c().(commands.ConfigSavedMsg); ok {
			saved = true
		}
	}
	if !saved {
		t.Fatal("expected config to be saved")
	}

	cfg, err := config.LoadFrom(m.configPath)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("saved theme = %q, want light", cfg.UI.Theme)
	}
}

func TestToggleDensity(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "D")
	if !m.compact {
		t.Error("expected compact density")
	}
	m = press(t, m, "D")
	if m.compact {
		t.Error("expected comfortable density")
	}
}

func TestStatusMessages(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(commands.StatusMsgCmd{Msg: "Added Brunch"})
	m = updated.(Model)
	if m.statusMsg != "Added Brunch" || m.statusError {
		t.Fatalf("status = %q (error %v)", m.statusMsg, m.statusError)
	}
	if cmd == nil {
		t.Error("expected a clear command")
	}

	m = update(t, m, commands.ClearStatusMsg{})
	if m.statusMsg == "" {
		t.Error("status should survive an early clear")
	}

	m.statusTime = time.Now().Add(-time.Second)
	m = update(t, m, commands.ClearStatusMsg{})
	if m.statusMsg != "" {
		t.Errorf("status = %q, want cleared", m.statusMsg)
	}

	m = update(t, m, commands.ErrMsg{Err: fmt.Errorf("no clipboard")})
	if !m.statusError || m.statusMsg != "Error: no clipboard" {
		t.Errorf("status = %q (error %v)", m.statusMsg, m.statusError)
	}
}

func TestKeyStatusCommand(t *testing.T) {
	m := newTestModel(t)
	m.store.AddToDay(activity(t, m, "a1"), plan.Saturday)

	_, cmd := m.Update(key("d"))
	if cmd == nil {
		t.Fatal("expected status command")
	}
	msg, ok := cmd().(commands.StatusMsgCmd)
	if !ok || msg.Msg != "Removed Brunch" {
		t.Errorf("unexpected msg %#v", msg)
	}
}
