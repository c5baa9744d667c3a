package app

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/roster/internal/logging"
	"github.com/atomicstack/roster/internal/roster"
	"github.com/atomicstack/roster/internal/storage"
	"github.com/atomicstack/roster/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Backend    storage.Backend
	Store      string
	Slot       string
	IDs        IDScheme
	Dark       bool
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// SlotLocation is the path or DSN the backend opens for this config.
func (c Config) SlotLocation() string {
	return slotLocation(c.Backend, c.Store)
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	slot, err := storage.Open(cfg.Backend, cfg.SlotLocation(), cfg.Slot)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if cerr := slot.Close(); cerr != nil {
			logging.Error(fmt.Errorf("close storage: %w", cerr))
		}
	}()

	ctrl := NewController(cfg, slot)
	model := ui.NewModel(ctrl, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	program := tea.NewProgram(model)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// NewController loads the slot and returns a controller that writes every
// accepted change back to it.
func NewController(cfg Config, slot storage.Slot) *roster.Controller {
	ids := cfg.IDs.Generator()
	records := LoadRecords(string(cfg.Backend), slot, ids)
	return roster.NewController(records,
		roster.WithIDs(ids),
		roster.WithDark(cfg.Dark),
		roster.WithChangeHook(PersistHook(slot)),
	)
}
