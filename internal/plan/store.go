package plan

import (
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// CurrentVersion is the plan state schema version.
const CurrentVersion = 1

// Persister receives the full state after every change.
type Persister interface {
	Persist(State) error
}

// BlockPatch changes fields of a block during UpdateBlock.
type BlockPatch func(*TimeBlock)

// WithNotes sets the block notes.
func WithNotes(notes string) BlockPatch {
	return func(b *TimeBlock) { b.Notes = notes }
}

// WithStart schedules the block at the given minute offset.
func WithStart(mins int) BlockPatch {
	return func(b *TimeBlock) { b.StartMinutes = &mins }
}

// Unschedule clears the block start time.
func Unschedule() BlockPatch {
	return func(b *TimeBlock) { b.StartMinutes = nil }
}

// WithDuration sets the block duration. Callers clamp with ClampDuration.
func WithDuration(mins int) BlockPatch {
	return func(b *TimeBlock) { b.DurationMinutes = mins }
}

// Store owns the canonical block list. All mutation goes through its
// methods; every change replaces the block slice with a new one, so slices
// handed out earlier never change.
//
// Store is not safe for concurrent use.
type Store struct {
	state     State
	newID     func() string
	persister Persister
	logger    *log.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithState hydrates the store from a previously saved state.
func WithState(s State) StoreOption {
	return func(st *Store) {
		st.state = State{Version: s.Version, Blocks: cloneBlocks(s.Blocks)}
	}
}

// WithIDGenerator overrides block id generation.
func WithIDGenerator(fn func() string) StoreOption {
	return func(st *Store) { st.newID = fn }
}

// WithPersister saves the state after every change.
func WithPersister(p Persister) StoreOption {
	return func(st *Store) { st.persister = p }
}

// WithLogger sets the store logger.
func WithLogger(l *log.Logger) StoreOption {
	return func(st *Store) { st.logger = l }
}

// NewStore creates an empty store at the current version.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		state:  State{Version: CurrentVersion, Blocks: []TimeBlock{}},
		newID:  uuid.NewString,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.state.Version == 0 {
		s.state.Version = CurrentVersion
	}
	if s.state.Blocks == nil {
		s.state.Blocks = []TimeBlock{}
	}
	return s
}

// Blocks returns a copy of the block list in planning order.
func (s *Store) Blocks() []TimeBlock {
	return cloneBlocks(s.state.Blocks)
}

// State returns a copy of the current state.
func (s *Store) State() State {
	return State{Version: s.state.Version, Blocks: s.Blocks()}
}

// Block returns the block with the given id.
func (s *Store) Block(id string) (TimeBlock, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return TimeBlock{}, false
	}
	return s.state.Blocks[i].clone(), true
}

// IsAdded reports whether any block on day was created from the activity.
func (s *Store) IsAdded(activityID string, day Day) bool {
	for _, b := range s.state.Blocks {
		if b.Day == day && b.ActivityID == activityID {
			return true
		}
	}
	return false
}

// AddToDay appends a new unscheduled block for the activity to the end of
// the list. The same activity may be added any number of times.
func (s *Store) AddToDay(a Activity, day Day) TimeBlock {
	duration := a.DurationMinutes
	if duration == 0 {
		duration = DefaultDurationMinutes
	}
	block := TimeBlock{
		ID:              s.newID(),
		ActivityID:      a.ID,
		Title:           a.Title,
		Icon:            a.Icon,
		Category:        a.Category,
		Day:             day,
		DurationMinutes: duration,
	}

	next := make([]TimeBlock, 0, len(s.state.Blocks)+1)
	next = append(next, s.state.Blocks...)
	next = append(next, block)
	s.commit("add", next, "id", block.ID, "activity", a.ID, "day", day)

	return block.clone()
}

// RemoveBlock drops the block with the given id. Unknown ids are ignored.
func (s *Store) RemoveBlock(id string) {
	if s.indexOf(id) < 0 {
		return
	}
	next := make([]TimeBlock, 0, len(s.state.Blocks)-1)
	for _, b := range s.state.Blocks {
		if b.ID != id {
			next = append(next, b)
		}
	}
	s.commit("remove", next, "id", id)
}

// UpdateBlock applies patches to the block with the given id, leaving other
// fields untouched. Unknown ids are ignored. Values are stored as given.
func (s *Store) UpdateBlock(id string, patches ...BlockPatch) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	updated := s.state.Blocks[i].clone()
	for _, p := range patches {
		p(&updated)
	}
	updated.ID = id

	next := slices.Clone(s.state.Blocks)
	next[i] = updated
	s.commit("update", next, "id", id)
}

// MoveBlockToDay moves a block to day at position index among that day's
// other blocks. The relative order of every other block is kept.
//
// The block is taken out of the list, then the list is walked counting
// blocks of the target day; the block goes right before the one where the
// count equals index. If the count never reaches index the block is
// appended to the end of the list. Unknown ids are ignored.
func (s *Store) MoveBlockToDay(id string, day Day, index int) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	target := s.state.Blocks[i]
	target.Day = day

	next := make([]TimeBlock, 0, len(s.state.Blocks))
	seen := 0
	placed := false
	for _, b := range s.state.Blocks {
		if b.ID == id {
			continue
		}
		if b.Day == day {
			if seen == index && !placed {
				next = append(next, target)
				placed = true
			}
			seen++
		}
		next = append(next, b)
	}
	if !placed {
		next = append(next, target)
	}
	s.commit("move", next, "id", id, "day", day, "index", index)
}

// ClearPlan removes every block. The version is kept.
func (s *Store) ClearPlan() {
	s.commit("clear", []TimeBlock{})
}

// DayCount returns the number of blocks on day.
func (s *Store) DayCount(day Day) int {
	n := 0
	for _, b := range s.state.Blocks {
		if b.Day == day {
			n++
		}
	}
	return n
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.state.Blocks, func(b TimeBlock) bool { return b.ID == id })
}

// commit swaps in the new block list and hands the state to the persister.
// Persistence failures are logged and dropped.
func (s *Store) commit(op string, blocks []TimeBlock, keyvals ...any) {
	s.state = State{Version: s.state.Version, Blocks: blocks}
	if s.logger != nil {
		s.logger.Debug("plan "+op, append(keyvals, "blocks", len(blocks))...)
	}
	if s.persister == nil {
		return
	}
	if err := s.persister.Persist(s.State()); err != nil && s.logger != nil {
		s.logger.Warn("saving plan failed", "op", op, "error", err)
	}
}

func cloneBlocks(blocks []TimeBlock) []TimeBlock {
	out := make([]TimeBlock, len(blocks))
	for i, b := range blocks {
		out[i] = b.clone()
	}
	return out
}
