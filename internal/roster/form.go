package roster

// Mode is the form controller state.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// FormBuffer is the unsaved form content plus the record it is editing, if any.
type FormBuffer struct {
	Fields
	EditingID string
	Editing   bool
}

// Mode reports whether the buffer is creating or editing.
func (b FormBuffer) Mode() Mode {
	if b.Editing {
		return ModeEdit
	}
	return ModeCreate
}

// IsEditing reports whether the buffer holds the record with id.
func (b FormBuffer) IsEditing(id string) bool {
	return b.Editing && b.EditingID == id
}

// EditBuffer returns a buffer loaded from rec.
func EditBuffer(rec Record) FormBuffer {
	return FormBuffer{Fields: rec.Fields(), EditingID: rec.ID, Editing: true}
}

// SubmitLabel is the contextual label of the submit action.
func (b FormBuffer) SubmitLabel() string {
	if b.Editing {
		return "Update Student"
	}
	return "Add Student"
}
