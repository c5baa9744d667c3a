package command

import (
	"errors"

	"github.com/atomicstack/roster/internal/logging/events"
	"github.com/atomicstack/roster/internal/roster"
)

// Dispatcher is the part of roster.Controller the bus drives.
type Dispatcher interface {
	State() roster.State
	Dispatch(roster.Action) (roster.Outcome, error)
}

// Bus runs roster actions against a dispatcher while emitting trace logs.
type Bus struct {
	target Dispatcher
}

// New initialises a command bus for target.
func New(target Dispatcher) *Bus {
	return &Bus{target: target}
}

// Execute applies the action synchronously and reports what happened.
func (b *Bus) Execute(action roster.Action) (roster.Outcome, error) {
	name := Name(action)
	events.Command.Queue(name)
	if b.target == nil {
		events.Command.Result(name, roster.ChangeNone.String(), nil)
		return roster.Outcome{}, nil
	}
	before := b.target.State()
	outcome, err := b.target.Dispatch(action)
	traceAction(before, action, outcome, err)
	events.Command.Result(name, outcome.Change.String(), err)
	return outcome, err
}

// Name returns a short label for an action, used in trace output.
func Name(action roster.Action) string {
	switch action.(type) {
	case roster.SetField:
		return "set-field"
	case roster.StartEdit:
		return "start-edit"
	case roster.CancelEdit:
		return "cancel-edit"
	case roster.Submit:
		return "submit"
	case roster.RequestDelete:
		return "request-delete"
	case roster.ConfirmDelete:
		return "confirm-delete"
	case roster.DeclineDelete:
		return "decline-delete"
	case roster.SetSearch:
		return "set-search"
	case roster.ClearSearch:
		return "clear-search"
	case roster.ToggleTheme:
		return "toggle-theme"
	case roster.DismissNotice:
		return "dismiss-notice"
	default:
		return "unknown"
	}
}

func traceAction(before roster.State, action roster.Action, outcome roster.Outcome, err error) {
	switch a := action.(type) {
	case roster.Submit:
		events.Form.Submit(before.Form.Mode().String())
		var invalid *roster.ValidationError
		if errors.As(err, &invalid) {
			missing := make([]string, len(invalid.Missing))
			for i, field := range invalid.Missing {
				missing[i] = field.String()
			}
			events.Form.Invalid(missing)
		}
	case roster.StartEdit:
		events.Form.EditStart(a.ID)
	case roster.CancelEdit:
		events.Form.EditCancel(before.Form.EditingID)
	case roster.RequestDelete:
		events.Record.DeleteRequest(a.ID)
	case roster.DeclineDelete:
		events.Record.DeleteDeclined(before.PendingDelete)
	case roster.ToggleTheme:
		events.UI.Theme(!before.Dark)
	case roster.SetSearch:
		events.Filter.Set(a.Term, len(roster.Filter(before.Roster.Records(), a.Term)))
	case roster.ClearSearch:
		if before.Search != "" {
			events.Filter.Cleared()
		}
	}

	switch outcome.Change {
	case roster.ChangeAdd:
		events.Record.Add(outcome.Record.ID, outcome.Record.RollNo)
	case roster.ChangeUpdate:
		events.Record.Update(outcome.Record.ID, outcome.Record.RollNo)
	case roster.ChangeDelete:
		events.Record.Delete(outcome.Record.ID)
	}
}
