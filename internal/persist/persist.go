// Package persist saves and restores the plan state through a key-value
// backend, with versioned migration of stored payloads.
package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/javiermolinar/weekendly/internal/plan"
)

// DefaultKey is the storage key of the plan payload.
const DefaultKey = "wknd-plan-v1"

// KV is a string key-value backend.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Timestamper is implemented by backends that record when a key was
// last written.
type Timestamper interface {
	UpdatedAt(ctx context.Context, key string) (time.Time, bool, error)
}

// Adapter reads and writes the plan state under a fixed key.
type Adapter struct {
	kv     KV
	key    string
	logger *log.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(a *Adapter) {
		if key != "" {
			a.key = key
		}
	}
}

// WithLogger sets the adapter logger.
func WithLogger(l *log.Logger) Option {
	return func(a *Adapter) { a.logger = l }
}

// New creates an adapter over kv.
func New(kv KV, opts ...Option) *Adapter {
	a := &Adapter{kv: kv, key: DefaultKey, logger: log.Default()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SavedAt returns when the plan was last written. It reports false when
// nothing is stored or the backend keeps no timestamps.
func (a *Adapter) SavedAt(ctx context.Context) (time.Time, bool) {
	ts, ok := a.kv.(Timestamper)
	if !ok {
		return time.Time{}, false
	}
	at, found, err := ts.UpdatedAt(ctx, a.key)
	if err != nil {
		a.debug("reading save time failed", "key", a.key, "error", err)
		return time.Time{}, false
	}
	return at, found
}

// Save writes the state as {"version":N,"blocks":[...]}.
func (a *Adapter) Save(ctx context.Context, s plan.State) error {
	if s.Blocks == nil {
		s.Blocks = []plan.TimeBlock{}
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	if err := a.kv.Set(ctx, a.key, string(data)); err != nil {
		return fmt.Errorf("saving plan: %w", err)
	}
	return nil
}

// Load reads the stored state. It reports false when nothing usable is
// stored: a missing key, a failing backend and a malformed payload all
// look the same to the caller.
func (a *Adapter) Load(ctx context.Context) (plan.State, bool) {
	raw, ok, err := a.kv.Get(ctx, a.key)
	if err != nil {
		a.debug("loading plan failed", "key", a.key, "error", err)
		return plan.State{}, false
	}
	if !ok {
		return plan.State{}, false
	}
	if !gjson.Valid(raw) {
		a.debug("stored plan is not valid JSON", "key", a.key)
		return plan.State{}, false
	}
	root := gjson.Parse(raw)
	if !root.IsObject() {
		a.debug("stored plan is not an object", "key", a.key)
		return plan.State{}, false
	}
	blocks := root.Get("blocks")
	if blocks.Exists() && !blocks.IsArray() && blocks.Type != gjson.Null {
		a.debug("stored blocks are not a list", "key", a.key)
		return plan.State{}, false
	}

	version := int(root.Get("version").Int())
	s, err := decode([]byte(raw), version)
	if err != nil {
		a.debug("decoding stored plan failed", "key", a.key, "error", err)
		return plan.State{}, false
	}
	return s, true
}

// Persist saves s. It satisfies plan.Persister.
func (a *Adapter) Persist(s plan.State) error {
	return a.Save(context.Background(), s)
}

// Migrate upgrades a stored payload written at fromVersion to the current
// shape. A nil payload yields a fresh empty state. Blocks are kept as they
// are; unknown fields are dropped. A payload that cannot be decoded, or
// whose blocks break the state rules, also yields a fresh empty state.
// Payloads from a newer version keep their version.
func Migrate(raw []byte, fromVersion int) plan.State {
	if raw == nil {
		return fresh()
	}
	s, err := decode(raw, fromVersion)
	if err != nil {
		return fresh()
	}
	return s
}

func decode(raw []byte, fromVersion int) (plan.State, error) {
	if fromVersion < plan.CurrentVersion {
		stamped, err := sjson.SetBytes(raw, "version", plan.CurrentVersion)
		if err != nil {
			return plan.State{}, fmt.Errorf("stamping version: %w", err)
		}
		raw = stamped
	}

	var s plan.State
	if err := json.Unmarshal(raw, &s); err != nil {
		return plan.State{}, fmt.Errorf("decoding plan: %w", err)
	}
	if s.Blocks == nil {
		s.Blocks = []plan.TimeBlock{}
	}
	if err := s.Validate(); err != nil {
		return plan.State{}, err
	}
	return s, nil
}

func fresh() plan.State {
	return plan.State{Version: plan.CurrentVersion, Blocks: []plan.TimeBlock{}}
}

func (a *Adapter) debug(msg string, keyvals ...any) {
	if a.logger != nil {
		a.logger.Debug(msg, keyvals...)
	}
}
