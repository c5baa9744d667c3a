package events

import "github.com/atomicstack/roster/internal/logging"

type StoreTracer struct{}

var Store = StoreTracer{}

func (StoreTracer) Load(backend, key string, found bool, count int) {
	logging.Trace("store.load", map[string]interface{}{
		"backend": backend,
		"key":     key,
		"found":   found,
		"count":   count,
	})
}

func (StoreTracer) LoadFallback(key string, err error) {
	logging.Trace("store.load-fallback", map[string]interface{}{"key": key, "error": errString(err)})
}

func (StoreTracer) RepairID(position int, id string) {
	logging.Trace("store.repair-id", map[string]interface{}{"position": position, "id": id})
}

func (StoreTracer) Persist(key string, count, bytes int) {
	logging.Trace("store.persist", map[string]interface{}{"key": key, "count": count, "bytes": bytes})
}

func (StoreTracer) PersistError(key string, err error) {
	logging.Trace("store.persist-error", map[string]interface{}{"key": key, "error": errString(err)})
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
