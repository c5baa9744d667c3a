package config

import (
	"errors"
	"testing"

	"github.com/atomicstack/roster/internal/app"
	"github.com/atomicstack/roster/internal/storage"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	want := app.Config{
		Backend:    storage.BackendFile,
		Store:      "roster-data",
		Slot:       "students",
		IDs:        app.IDsUUID,
		ShowFooter: true,
	}
	if cfg.App != want {
		t.Fatalf("expected %#v, got %#v", want, cfg.App)
	}
	if cfg.Logging.FilePath != "roster.log" || cfg.Logging.Trace {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate: %v", err)
	}
}

func TestLoadArgsEnvironmentFallback(t *testing.T) {
	env := []string{
		"ROSTER_BACKEND=sqlite",
		"ROSTER_STORE=/tmp/roster.db",
		"ROSTER_IDS=timestamp",
		"ROSTER_DARK=true",
		"ROSTER_WIDTH=100",
		"ROSTER_FOOTER=false",
		"ROSTER_TRACE=1",
		"ROSTER_HEIGHT=not-a-number",
		"malformed",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Backend != storage.BackendSQLite || cfg.App.Store != "/tmp/roster.db" {
		t.Fatalf("unexpected storage config %#v", cfg.App)
	}
	if cfg.App.IDs != app.IDsTimestamp || !cfg.App.Dark || cfg.App.Width != 100 || cfg.App.ShowFooter {
		t.Fatalf("unexpected app config %#v", cfg.App)
	}
	if cfg.App.Height != 0 {
		t.Fatalf("expected invalid height env to fall back to 0, got %d", cfg.App.Height)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace from environment")
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"--backend", "memory", "--slot", "class-b", "--verbose"}, []string{"ROSTER_BACKEND=sqlite"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Backend != storage.BackendMemory || cfg.App.Slot != "class-b" {
		t.Fatalf("expected flags to win, got %#v", cfg.App)
	}
	if !cfg.App.Verbose || !cfg.Features.Verbose {
		t.Fatalf("expected verbose enabled")
	}
	if cfg.Flags["slot"] != "class-b" {
		t.Fatalf("expected slot recorded in flags, got %q", cfg.Flags["slot"])
	}
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	if _, err := LoadArgs([]string{"--width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"--unknown"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestValidateRejectsUnknownValues(t *testing.T) {
	cfg, err := LoadArgs([]string{"--backend", "redis"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if err := Validate(cfg); !errors.Is(err, storage.ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}

	cfg, err = LoadArgs([]string{"--ids", "serial"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for unknown id scheme")
	}

	cfg, err = LoadArgs([]string{"--slot", " "}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for blank slot")
	}
}
