package ui

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javiermolinar/weekendly/internal/catalog"
	"github.com/javiermolinar/weekendly/internal/config"
	"github.com/javiermolinar/weekendly/internal/logger"
	"github.com/javiermolinar/weekendly/internal/plan"
)

// newTestConfig returns a config whose database and logs live in a temp dir.
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	DisableColor()

	dir := t.TempDir()
	cfg := config.Default()
	cfg.Storage.DBPath = filepath.Join(dir, "weekendly.db")
	cfg.Log.Dir = dir
	return cfg
}

// run executes one command on a fresh App, like a separate process would.
func run(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()

	app := NewApp(cfg)
	app.configPath = filepath.Join(filepath.Dir(cfg.Storage.DBPath), "config.toml")
	defer func() { _ = app.Close() }()

	var out bytes.Buffer
	app.root.SetOut(&out)
	app.root.SetErr(&out)
	app.root.SetArgs(args)
	err := app.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, cfg *config.Config, args ...string) string {
	t.Helper()
	out, err := run(t, cfg, args...)
	if err != nil {
		t.Fatalf("%v failed: %v\n%s", args, err, out)
	}
	return out
}

// storedBlocks reads the persisted plan back.
func storedBlocks(t *testing.T, cfg *config.Config) []plan.TimeBlock {
	t.Helper()
	app := NewApp(cfg)
	defer func() { _ = app.Close() }()
	if err := app.ensureStore(); err != nil {
		t.Fatalf("opening store: %v", err)
	}
	if _, ok := app.adapter.Load(context.Background()); !ok && len(app.store.Blocks()) > 0 {
		t.Fatal("store has blocks but nothing was persisted")
	}
	return app.store.Blocks()
}

func TestAddAndShow(t *testing.T) {
	cfg := newTestConfig(t)

	out := mustRun(t, cfg, "add", "a1", "--day", "sat")
	if !strings.Contains(out, "Added Brunch to Saturday") {
		t.Errorf("unexpected add output: %q", out)
	}
	mustRun(t, cfg, "add", "Beach Walk", "--day", "sunday")

	blocks := storedBlocks(t, cfg)
	if len(blocks) != 2 || blocks[0].ActivityID != "a1" || blocks[1].Day != plan.Sunday {
		t.Fatalf("unexpected stored blocks: %+v", blocks)
	}

	out = mustRun(t, cfg, "show")
	for _, want := range []string{"Saturday (1)", "Sunday (1)", "Brunch", "Beach Walk", "unscheduled"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}

	if !strings.Contains(out, "Last saved ") {
		t.Errorf("show output missing save time:\n%s", out)
	}

	out = mustRun(t, cfg, "show", "--day", "sun", "--no-color")
	if strings.Contains(out, "Brunch") {
		t.Errorf("sunday view should not list Brunch:\n%s", out)
	}
}

func TestAdd_Errors(t *testing.T) {
	cfg := newTestConfig(t)

	if _, err := run(t, cfg, "add", "a99", "--day", "sat"); !errors.Is(err, catalog.ErrUnknownActivity) {
		t.Errorf("expected ErrUnknownActivity, got %v", err)
	}
	if _, err := run(t, cfg, "add", "a1", "--day", "mon"); !errors.Is(err, plan.ErrInvalidDay) {
		t.Errorf("expected ErrInvalidDay, got %v", err)
	}
	if _, err := run(t, cfg, "add", "a1"); err == nil {
		t.Error("expected error without --day")
	}
}

func TestEdit(t *testing.T) {
	cfg := newTestConfig(t)
	mustRun(t, cfg, "add", "a1", "--day", "sat")
	id := storedBlocks(t, cfg)[0].ID

	out := mustRun(t, cfg, "edit", id[:6], "--start", "09:00", "--duration", "95", "--notes", "window seat")
	if !strings.Contains(out, "Duration adjusted to 1h30m") {
		t.Errorf("expected clamp notice, got %q", out)
	}
	if !strings.Contains(out, "09:00–10:30") {
		t.Errorf("expected new range, got %q", out)
	}

	b := storedBlocks(t, cfg)[0]
	if b.StartMinutes == nil || *b.StartMinutes != 540 || b.DurationMinutes != 90 || b.Notes != "window seat" {
		t.Fatalf("unexpected block after edit: %+v", b)
	}

	mustRun(t, cfg, "edit", id, "--unschedule")
	b = storedBlocks(t, cfg)[0]
	if b.IsScheduled() {
		t.Error("expected block to be unscheduled")
	}
	if b.Notes != "window seat" {
		t.Error("unschedule should keep notes")
	}
}

func TestEdit_Errors(t *testing.T) {
	cfg := newTestConfig(t)
	mustRun(t, cfg, "add", "a1", "--day", "sat")
	id := storedBlocks(t, cfg)[0].ID

	if _, err := run(t, cfg, "edit", id, "--start", "9am"); !errors.Is(err, plan.ErrInvalidClock) {
		t.Errorf("expected ErrInvalidClock, got %v", err)
	}
	if _, err := run(t, cfg, "edit", id); err == nil {
		t.Error("expected error when nothing changes")
	}
	if _, err := run(t, cfg, "edit", "nope", "--notes", "x"); !errors.Is(err, ErrBlockNotFound) {
		t.Errorf("expected ErrBlockNotFound, got %v", err)
	}
}

func TestShow_Conflicts(t *testing.T) {
	cfg := newTestConfig(t)
	mustRun(t, cfg, "add", "a2", "--day", "sat") // Hiking 3h
	mustRun(t, cfg, "add", "a10", "--day", "sat")
	blocks := storedBlocks(t, cfg)
	mustRun(t, cfg, "edit", blocks[0].ID, "--start", "08:00")
	mustRun(t, cfg, "edit", blocks[1].ID, "--start", "09:00", "--duration", "60")

	out := mustRun(t, cfg, "show")
	if !strings.Contains(out, "overlaps with Photography Walk 09:00–10:00") {
		t.Errorf("missing conflict for hiking:\n%s", out)
	}
	if !strings.Contains(out, "overlaps with Hiking 08:00–11:00") {
		t.Errorf("missing conflict for photography walk:\n%s", out)
	}
}

func TestMoveAndRemove(t *testing.T) {
	cfg := newTestConfig(t)
	mustRun(t, cfg, "add", "a1", "--day", "sat")
	mustRun(t, cfg, "add", "a3", "--day", "sun")
	blocks := storedBlocks(t, cfg)

	out := mustRun(t, cfg, "move", blocks[0].ID, "--day", "sun")
	if !strings.Contains(out, "Moved Brunch to Sunday") {
		t.Errorf("unexpected move output: %q", out)
	}

	got := storedBlocks(t, cfg)
	if got[0].ID != blocks[0].ID || got[0].Day != plan.Sunday || got[1].ID != blocks[1].ID {
		t.Fatalf("expected brunch first on sunday, got %+v", got)
	}

	if _, err := run(t, cfg, "move", blocks[0].ID, "--day", "sat", "--index", "-1"); err == nil {
		t.Error("expected error for negative index")
	}

	mustRun(t, cfg, "rm", blocks[1].ID)
	got = storedBlocks(t, cfg)
	if len(got) != 1 || got[0].ID != blocks[0].ID {
		t.Fatalf("unexpected blocks after rm: %+v", got)
	}
}

func TestPresetAndClear(t *testing.T) {
	cfg := newTestConfig(t)

	out := mustRun(t, cfg, "preset")
	for _, want := range []string{"Lazy", "Adventurous", "Family", "sat: Brunch, Movie Night, Reading"} {
		if !strings.Contains(out, want) {
			t.Errorf("preset list missing %q:\n%s", want, out)
		}
	}

	out = mustRun(t, cfg, "preset", "family")
	if !strings.Contains(out, "Applied Family preset (5 blocks)") {
		t.Errorf("unexpected output: %q", out)
	}
	if got := storedBlocks(t, cfg); len(got) != 5 || got[0].ActivityID != "a8" {
		t.Fatalf("unexpected blocks: %+v", got)
	}

	if _, err := run(t, cfg, "preset", "busy"); !errors.Is(err, catalog.ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
	if got := storedBlocks(t, cfg); len(got) != 5 {
		t.Error("failed preset should leave the plan alone")
	}

	out = mustRun(t, cfg, "clear")
	if !strings.Contains(out, "Cleared 5 blocks") {
		t.Errorf("unexpected output: %q", out)
	}
	if got := storedBlocks(t, cfg); len(got) != 0 {
		t.Errorf("expected empty plan, got %d blocks", len(got))
	}
}

func TestCatalog(t *testing.T) {
	cfg := newTestConfig(t)
	mustRun(t, cfg, "add", "a7", "--day", "sun")

	out := mustRun(t, cfg, "catalog", "--search", "walk")
	if !strings.Contains(out, "Beach Walk") || !strings.Contains(out, "Photography Walk") {
		t.Errorf("unexpected catalog output:\n%s", out)
	}
	if strings.Contains(out, "Brunch") {
		t.Errorf("search should filter brunch:\n%s", out)
	}
	if !strings.Contains(out, "✓sun") {
		t.Errorf("expected added marker:\n%s", out)
	}

	out = mustRun(t, cfg, "catalog", "--category", "Fitness")
	if !strings.Contains(out, "Gym") || strings.Contains(out, "Hiking") {
		t.Errorf("unexpected category filter output:\n%s", out)
	}

	out = mustRun(t, cfg, "catalog", "--vibe", "none")
	if !strings.Contains(out, "No activities match.") {
		t.Errorf("expected empty result, got:\n%s", out)
	}
}

func TestExport(t *testing.T) {
	cfg := newTestConfig(t)
	mustRun(t, cfg, "preset", "lazy")

	out := mustRun(t, cfg, "export")
	if !strings.Contains(out, "Saturday · 3 items") || !strings.Contains(out, "Planned with Weekendly") {
		t.Errorf("unexpected export:\n%s", out)
	}
}

func TestEphemeral(t *testing.T) {
	cfg := newTestConfig(t)

	mustRun(t, cfg, "--ephemeral", "add", "a1", "--day", "sat")
	if _, err := os.Stat(cfg.Storage.DBPath); !os.IsNotExist(err) {
		t.Error("ephemeral run should not create the database")
	}
}

func TestVersion(t *testing.T) {
	out := mustRun(t, newTestConfig(t), "version")
	if !strings.HasPrefix(out, "weekendly dev") {
		t.Errorf("unexpected version output: %q", out)
	}
}

func TestConfigInit(t *testing.T) {
	cfg := newTestConfig(t)
	path := filepath.Join(filepath.Dir(cfg.Storage.DBPath), "config.toml")

	out := mustRun(t, cfg, "config", "init")
	if !strings.Contains(out, "Created") {
		t.Errorf("unexpected output: %q", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if _, err := run(t, cfg, "config", "init"); err == nil {
		t.Error("expected error when the file exists")
	}
	mustRun(t, cfg, "config", "init", "--force")

	out = mustRun(t, cfg, "config")
	if !strings.Contains(out, "theme   = dark") {
		t.Errorf("unexpected config output:\n%s", out)
	}
	if !strings.Contains(out, "file    = "+logger.Path(cfg.Log.Dir)) {
		t.Errorf("config output missing log file:\n%s", out)
	}
}
