package events

import "github.com/atomicstack/roster/internal/logging"

type FormTracer struct{}

type RecordTracer struct{}

var (
	Form   = FormTracer{}
	Record = RecordTracer{}
)

func (FormTracer) Submit(mode string) {
	logging.Trace("form.submit", map[string]interface{}{"mode": mode})
}

func (FormTracer) Invalid(missing []string) {
	logging.Trace("form.invalid", map[string]interface{}{"missing": missing})
}

func (FormTracer) EditStart(id string) {
	logging.Trace("form.edit-start", map[string]interface{}{"id": id})
}

func (FormTracer) EditCancel(id string) {
	logging.Trace("form.edit-cancel", map[string]interface{}{"id": id})
}

func (RecordTracer) Add(id, rollNo string) {
	logging.Trace("record.add", map[string]interface{}{"id": id, "rollNo": rollNo})
}

func (RecordTracer) Update(id, rollNo string) {
	logging.Trace("record.update", map[string]interface{}{"id": id, "rollNo": rollNo})
}

func (RecordTracer) DeleteRequest(id string) {
	logging.Trace("record.delete-request", map[string]interface{}{"id": id})
}

func (RecordTracer) Delete(id string) {
	logging.Trace("record.delete", map[string]interface{}{"id": id})
}

func (RecordTracer) DeleteDeclined(id string) {
	logging.Trace("record.delete-declined", map[string]interface{}{"id": id})
}
