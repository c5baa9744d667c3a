package events

import "github.com/atomicstack/roster/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (UITracer) Focus(target string) {
	logging.Trace("ui.focus", map[string]interface{}{"target": target})
}

func (UITracer) Theme(dark bool) {
	logging.Trace("ui.theme", map[string]interface{}{"dark": dark})
}

func (UITracer) ListCursor(cursor int, id string) {
	logging.Trace("ui.list-cursor", map[string]interface{}{"cursor": cursor, "id": id})
}

func (UITracer) Notice(message string) {
	logging.Trace("ui.notice", map[string]interface{}{"message": message})
}

func (FilterTracer) Set(term string, matches int) {
	logging.Trace("filter.set", map[string]interface{}{"term": term, "matches": matches})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (CommandTracer) Queue(action string) {
	logging.Trace("command.queue", map[string]interface{}{"action": action})
}

func (CommandTracer) Result(action, change string, err error) {
	payload := map[string]interface{}{"action": action, "change": change}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}
