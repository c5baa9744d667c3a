package ui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/roster/internal/roster"
)

func (m *Model) handleFieldKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "ctrl+s":
		return m.submitForm()
	case "esc":
		if m.ctrl.State().Form.Editing {
			m.dispatch(roster.CancelEdit{})
			return m.setFocus(focusList)
		}
		return nil
	case "up":
		if m.focus > focusName {
			return m.setFocus(m.focus - 1)
		}
		return nil
	case "down":
		return m.setFocus(m.focus + 1)
	}
	idx := int(m.focus)
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	m.syncField(m.focus.field(), idx)
	return cmd
}

// syncField pushes the input at idx into the form buffer when it changed.
func (m *Model) syncField(field roster.Field, idx int) {
	value := m.inputs[idx].Value()
	if value == m.ctrl.State().Form.Get(field) {
		return
	}
	m.dispatch(roster.SetField{Field: field, Value: value})
}

// submitForm submits the buffer. A rejected submit leaves the focus where it
// is; a persist failure does not, because the state has already moved on.
// After a create the focus returns to the first field, after an edit to the
// list.
func (m *Model) submitForm() tea.Cmd {
	editing := m.ctrl.State().Form.Editing
	outcome, _ := m.dispatch(roster.Submit{})
	if outcome.Err != nil {
		return nil
	}
	if editing {
		if idx := m.list.IndexOf(outcome.Record.ID); idx >= 0 {
			m.list.Cursor = idx
		}
		return m.setFocus(focusList)
	}
	return m.setFocus(focusName)
}

// startEdit loads the record under the cursor into the form.
func (m *Model) startEdit() tea.Cmd {
	rec, ok := m.list.Current()
	if !ok {
		return nil
	}
	m.dispatch(roster.StartEdit{ID: rec.ID})
	if !m.ctrl.State().Form.IsEditing(rec.ID) {
		return nil
	}
	return m.setFocus(focusName)
}
