package roster

// State is the whole application state. It is a value: Reduce returns a new
// State and never mutates the one it was given.
type State struct {
	Roster        Roster
	Form          FormBuffer
	Search        string
	Dark          bool
	PendingDelete string
	Notice        string
}

// Filtered returns the records visible under the current search term.
func (s State) Filtered() []Record {
	return Filter(s.Roster.Records(), s.Search)
}

// Stats summarises the unfiltered roster.
func (s State) Stats() Stats {
	return ComputeStats(s.Roster.Records())
}

// Confirming reports whether a delete is awaiting confirmation.
func (s State) Confirming() bool {
	return s.PendingDelete != ""
}

// Action is a user intent handled by Reduce.
type Action interface {
	isAction()
}

type (
	// SetField writes one form buffer field.
	SetField struct {
		Field Field
		Value string
	}
	// StartEdit loads a record into the form.
	StartEdit struct{ ID string }
	// CancelEdit abandons the current edit.
	CancelEdit struct{}
	// Submit validates the buffer and adds or updates a record.
	Submit struct{}
	// RequestDelete asks for confirmation before removing a record.
	RequestDelete struct{ ID string }
	// ConfirmDelete removes the record awaiting confirmation.
	ConfirmDelete struct{}
	// DeclineDelete dismisses the confirmation prompt.
	DeclineDelete struct{}
	// SetSearch replaces the filter term.
	SetSearch struct{ Term string }
	// ClearSearch empties the filter term.
	ClearSearch struct{}
	// ToggleTheme flips the display mode.
	ToggleTheme struct{}
	// DismissNotice clears the blocking notice.
	DismissNotice struct{}
)

func (SetField) isAction()      {}
func (StartEdit) isAction()     {}
func (CancelEdit) isAction()    {}
func (Submit) isAction()        {}
func (RequestDelete) isAction() {}
func (ConfirmDelete) isAction() {}
func (DeclineDelete) isAction() {}
func (SetSearch) isAction()     {}
func (ClearSearch) isAction()   {}
func (ToggleTheme) isAction()   {}
func (DismissNotice) isAction() {}

// Change names the roster mutation an action produced.
type Change int

const (
	ChangeNone Change = iota
	ChangeAdd
	ChangeUpdate
	ChangeDelete
)

func (c Change) String() string {
	switch c {
	case ChangeAdd:
		return "add"
	case ChangeUpdate:
		return "update"
	case ChangeDelete:
		return "delete"
	default:
		return "none"
	}
}

// Outcome describes what Reduce did.
type Outcome struct {
	Change Change
	Record Record
	Err    error
}

// Mutated reports whether the roster changed.
func (o Outcome) Mutated() bool {
	return o.Change != ChangeNone
}

const maxIDAttempts = 8

// Reduce applies a to s. ids is consulted only when a record is created.
func Reduce(s State, a Action, ids IDGenerator) (State, Outcome) {
	switch act := a.(type) {
	case SetField:
		s.Form.Fields = s.Form.Fields.Set(act.Field, act.Value)
	case StartEdit:
		rec, ok := s.Roster.Find(act.ID)
		if !ok {
			return s, Outcome{}
		}
		s.Form = EditBuffer(rec)
	case CancelEdit:
		s.Form = FormBuffer{}
	case Submit:
		return submit(s, ids)
	case RequestDelete:
		if !s.Roster.Contains(act.ID) {
			return s, Outcome{}
		}
		s.PendingDelete = act.ID
	case ConfirmDelete:
		id := s.PendingDelete
		s.PendingDelete = ""
		rec, ok := s.Roster.Find(id)
		if !ok {
			return s, Outcome{}
		}
		s.Roster, _ = s.Roster.Remove(id)
		if s.Form.IsEditing(id) {
			s.Form = FormBuffer{}
		}
		return s, Outcome{Change: ChangeDelete, Record: rec}
	case DeclineDelete:
		s.PendingDelete = ""
	case SetSearch:
		s.Search = act.Term
	case ClearSearch:
		s.Search = ""
	case ToggleTheme:
		s.Dark = !s.Dark
	case DismissNotice:
		s.Notice = ""
	}
	return s, Outcome{}
}

func submit(s State, ids IDGenerator) (State, Outcome) {
	if missing := s.Form.Missing(); len(missing) > 0 {
		s.Notice = ValidationNotice
		return s, Outcome{Err: &ValidationError{Missing: missing}}
	}
	if s.Form.Editing {
		id, fields := s.Form.EditingID, s.Form.Fields
		next, ok := s.Roster.Update(id, fields)
		s.Form = FormBuffer{}
		if !ok {
			return s, Outcome{}
		}
		s.Roster = next
		return s, Outcome{Change: ChangeUpdate, Record: fields.WithID(id)}
	}
	id, err := uniqueID(s.Roster, ids)
	if err != nil {
		return s, Outcome{Err: err}
	}
	rec := s.Form.Fields.WithID(id)
	s.Roster = s.Roster.Add(rec)
	s.Form = FormBuffer{}
	return s, Outcome{Change: ChangeAdd, Record: rec}
}

func uniqueID(r Roster, ids IDGenerator) (string, error) {
	if ids == nil {
		ids = UUIDs()
	}
	for i := 0; i < maxIDAttempts; i++ {
		id := ids.NewID()
		if id != "" && !r.Contains(id) {
			return id, nil
		}
	}
	return "", ErrIDExhausted
}
