// Package tui provides the terminal user interface for weekendly.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/javiermolinar/weekendly/internal/catalog"
	"github.com/javiermolinar/weekendly/internal/config"
	"github.com/javiermolinar/weekendly/internal/logger"
	"github.com/javiermolinar/weekendly/internal/plan"
	"github.com/javiermolinar/weekendly/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePicker      // Catalog picker is open
	ModeEdit        // Block edit form is open
	ModeConfirmClear
)

func (m Mode) String() string {
	switch m {
	case ModePicker:
		return "picker"
	case ModeEdit:
		return "edit"
	case ModeConfirmClear:
		return "confirm-clear"
	default:
		return "normal"
	}
}

// Edit form fields.
const (
	fieldStart = iota
	fieldDuration
	fieldNotes
	fieldCount
)

// Options holds the dependencies of the board.
type Options struct {
	Store      *plan.Store
	Catalog    *catalog.Catalog
	Config     *config.Config
	ConfigPath string
	Logger     *log.Logger
}

// pickerState is the catalog picker: search box, facet filters and cursor.
type pickerState struct {
	search    textinput.Model
	searching bool
	category  int // index into categoryOptions
	vibe      int // index into vibeOptions
	cursor    int
}

// formState is the block edit form.
type formState struct {
	blockID string
	inputs  [fieldCount]textinput.Model
	focus   int
	err     string
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	store   *plan.Store
	catalog *catalog.Catalog
	config     *config.Config
	configPath string
	logger     *log.Logger

	// Theme and styles
	themeName string
	compact   bool
	styles    *Styles

	// State
	focus     int    // 0 = Saturday, 1 = Sunday
	cursor    [2]int // selected card per column
	mode      Mode
	presetIdx int // next preset applied by "p"

	picker pickerState
	form   formState

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg   string
	statusTime  time.Time
	statusError bool
}

// New creates the board model.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	lg := opts.Logger
	if lg == nil {
		lg = logger.Get()
	}
	store := opts.Store
	if store == nil {
		store = plan.NewStore(plan.WithLogger(lg))
	}

	m := Model{
		store:      store,
		catalog:    cat,
		config:     cfg,
		configPath: opts.ConfigPath,
		logger:     lg,
		themeName:  cfg.UI.Theme,
		compact:    cfg.UI.Density == "compact",
	}
	m.applyTheme()

	m.picker.search = textinput.New()
	m.picker.search.Placeholder = "search activities"
	m.picker.search.Prompt = "/ "
	m.picker.search.CharLimit = 40

	for i := range m.form.inputs {
		in := textinput.New()
		in.CharLimit = 5
		m.form.inputs[i] = in
	}
	m.form.inputs[fieldStart].Placeholder = "HH:MM (empty = anytime)"
	m.form.inputs[fieldDuration].Placeholder = "minutes"
	m.form.inputs[fieldNotes].Placeholder = "notes"
	m.form.inputs[fieldNotes].CharLimit = 120
	m.applyInputStyles()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// applyTheme loads the current theme and rebuilds styles.
func (m *Model) applyTheme() {
	t, err := theme.Load(m.themeName)
	if err != nil {
		m.logger.Warn("loading theme failed", "theme", m.themeName, "error", err)
	}
	m.styles = NewStyles(t, m.compact)
}

func (m *Model) applyInputStyles() {
	inputs := []*textinput.Model{&m.picker.search}
	for i := range m.form.inputs {
		inputs = append(inputs, &m.form.inputs[i])
	}
	for _, in := range inputs {
		in.TextStyle = m.styles.ModalInputTextStyle
		in.PromptStyle = m.styles.ModalInputTextStyle
		in.Cursor.Style = m.styles.ModalInputCursorStyle
		in.Cursor.TextStyle = m.styles.ModalInputTextStyle
	}
}

// focusedDay returns the day of the focused column.
func (m Model) focusedDay() plan.Day {
	return plan.Days[m.focus]
}

// dayBlocks returns the blocks of a column in planning order.
func (m Model) dayBlocks(col int) []plan.TimeBlock {
	return plan.BuildDayView(m.store.Blocks(), plan.Days[col]).Blocks
}

// selected returns the block under the cursor of the focused column.
func (m Model) selected() (plan.TimeBlock, bool) {
	blocks := m.dayBlocks(m.focus)
	i := m.cursor[m.focus]
	if i < 0 || i >= len(blocks) {
		return plan.TimeBlock{}, false
	}
	return blocks[i], true
}

// clampCursors keeps both cursors inside their columns.
func (m *Model) clampCursors() {
	for col := range m.cursor {
		n := m.store.DayCount(plan.Days[col])
		m.cursor[col] = max(0, min(m.cursor[col], n-1))
	}
}

// focusBlock moves focus and cursor onto the block with id.
func (m *Model) focusBlock(id string) {
	b, ok := m.store.Block(id)
	if !ok {
		return
	}
	col := 0
	if b.Day == plan.Sunday {
		col = 1
	}
	for i, other := range m.dayBlocks(col) {
		if other.ID == id {
			m.focus = col
			m.cursor[col] = i
			return
		}
	}
}
