package app

import (
	"fmt"
	"path/filepath"

	"github.com/atomicstack/roster/internal/logging"
	"github.com/atomicstack/roster/internal/logging/events"
	"github.com/atomicstack/roster/internal/roster"
	"github.com/atomicstack/roster/internal/storage"
)

const sqliteFileName = "roster.db"

// LoadRecords reads the slot once at startup. A missing slot is an empty
// roster; an unreadable or malformed one is too, after logging the failure.
// Records with an empty or repeated id are given a fresh one; when no fresh
// id can be found the roster starts empty.
func LoadRecords(backend string, slot storage.Slot, ids roster.IDGenerator) []roster.Record {
	data, found, err := slot.Load()
	if err != nil {
		logging.Error(fmt.Errorf("load slot %q: %w", slot.Key(), err))
		events.Store.LoadFallback(slot.Key(), err)
		return nil
	}
	if !found {
		events.Store.Load(backend, slot.Key(), false, 0)
		return nil
	}
	records, err := roster.Unmarshal(data)
	if err != nil {
		logging.Error(fmt.Errorf("load slot %q: %w", slot.Key(), err))
		events.Store.LoadFallback(slot.Key(), err)
		return nil
	}
	records, repaired, err := roster.RepairIDs(records, ids)
	if err != nil {
		logging.Error(fmt.Errorf("load slot %q: %w", slot.Key(), err))
		events.Store.LoadFallback(slot.Key(), err)
		return nil
	}
	for _, idx := range repaired {
		events.Store.RepairID(idx, records[idx].ID)
	}
	events.Store.Load(backend, slot.Key(), true, len(records))
	return records
}

// PersistHook returns a change hook that overwrites the slot with the full
// snapshot.
func PersistHook(slot storage.Slot) roster.ChangeHook {
	return func(records []roster.Record) error {
		data, err := roster.Marshal(records)
		if err == nil {
			err = slot.Save(data)
		}
		if err != nil {
			logging.Error(fmt.Errorf("persist slot %q: %w", slot.Key(), err))
			events.Store.PersistError(slot.Key(), err)
			return err
		}
		events.Store.Persist(slot.Key(), len(records), len(data))
		return nil
	}
}

// slotLocation maps the --store value onto what the backend expects. A
// sqlite store without a file extension is treated as a directory.
func slotLocation(backend storage.Backend, store string) string {
	if backend == storage.BackendSQLite && store != ":memory:" && filepath.Ext(store) == "" {
		return filepath.Join(store, sqliteFileName)
	}
	return store
}
