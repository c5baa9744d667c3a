package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/roster/internal/app"
	"github.com/atomicstack/roster/internal/storage"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envBackend    = "ROSTER_BACKEND"
	envStore      = "ROSTER_STORE"
	envSlot       = "ROSTER_SLOT"
	envIDs        = "ROSTER_IDS"
	envDark       = "ROSTER_DARK"
	envWidth      = "ROSTER_WIDTH"
	envHeight     = "ROSTER_HEIGHT"
	envShowFooter = "ROSTER_FOOTER"
	envVerbose    = "ROSTER_VERBOSE"
	envTrace      = "ROSTER_TRACE"
	envLogFile    = "ROSTER_LOG_FILE"
)

const (
	defaultStore   = "roster-data"
	defaultSlot    = "students"
	defaultLogFile = "roster.log"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("roster", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	backend := fs.String("backend", envOrDefault(env, envBackend, string(storage.BackendFile)), "slot storage backend: file, sqlite or memory")
	store := fs.String("store", envOrDefault(env, envStore, defaultStore), "data directory (file) or database path (sqlite)")
	slot := fs.String("slot", envOrDefault(env, envSlot, defaultSlot), "name of the slot holding the roster")
	ids := fs.String("ids", envOrDefault(env, envIDs, string(app.IDsUUID)), "record id scheme: uuid or timestamp")
	dark := fs.Bool("dark", envOrBool(env, envDark, false), "start in dark mode")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key hint footer")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, defaultLogFile), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Backend:    storage.Backend(strings.ToLower(strings.TrimSpace(*backend))),
			Store:      *store,
			Slot:       *slot,
			IDs:        app.IDScheme(strings.ToLower(strings.TrimSpace(*ids))),
			Dark:       *dark,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"backend": *backend,
			"store":   *store,
			"slot":    *slot,
			"ids":     *ids,
			"dark":    strconv.FormatBool(*dark),
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"verbose": strconv.FormatBool(*verbose),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects backends and id schemes the application does not know.
func Validate(cfg Config) error {
	if _, err := storage.ParseBackend(string(cfg.App.Backend)); err != nil {
		return err
	}
	if _, err := app.ParseIDScheme(string(cfg.App.IDs)); err != nil {
		return err
	}
	if strings.TrimSpace(cfg.App.Slot) == "" {
		return fmt.Errorf("slot name must not be empty")
	}
	if cfg.App.Backend != storage.BackendMemory && strings.TrimSpace(cfg.App.Store) == "" {
		return fmt.Errorf("store location must not be empty for the %s backend", cfg.App.Backend)
	}
	return nil
}
