package ui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/roster/internal/logging/events"
	"github.com/atomicstack/roster/internal/roster"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	key := keyMsg.String()
	if key == "ctrl+c" {
		return tea.Quit
	}

	st := m.ctrl.State()
	if st.Notice != "" {
		return m.handleNoticeKey(key)
	}
	if st.Confirming() {
		return m.handleConfirmKey(key)
	}

	switch key {
	case "tab":
		return m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab":
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case "ctrl+t":
		m.dispatch(roster.ToggleTheme{})
		return nil
	case "ctrl+l":
		m.clearSearch()
		return nil
	}

	switch {
	case m.focus.isField():
		return m.handleFieldKey(keyMsg)
	case m.focus == focusSearch:
		return m.handleSearchKey(keyMsg)
	default:
		return m.handleListKey(key)
	}
}

func (m *Model) handleSearchKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		if m.ctrl.State().Search != "" {
			m.clearSearch()
			return nil
		}
		return m.setFocus(focusList)
	case "enter", "down":
		return m.setFocus(focusList)
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.syncSearch()
	return cmd
}

func (m *Model) handleListKey(key string) tea.Cmd {
	maxRows := m.maxVisibleRows()
	moved := false
	switch key {
	case "up", "k":
		moved = m.list.MoveBy(-1)
	case "down", "j":
		moved = m.list.MoveBy(1)
	case "home", "g":
		moved = m.list.MoveTo(0)
	case "end", "G":
		moved = m.list.MoveTo(len(m.list.Items) - 1)
	case "pgup":
		moved = m.list.PageBy(-1, maxRows)
	case "pgdown":
		moved = m.list.PageBy(1, maxRows)
	case "enter", "e":
		return m.startEdit()
	case "d", "delete":
		if rec, ok := m.list.Current(); ok {
			m.dispatch(roster.RequestDelete{ID: rec.ID})
		}
		return nil
	case "/":
		return m.setFocus(focusSearch)
	case "a", "n":
		return m.setFocus(focusName)
	case "esc":
		if m.ctrl.State().Form.Editing {
			m.dispatch(roster.CancelEdit{})
		}
		return nil
	case "q":
		return tea.Quit
	}
	if moved {
		m.list.Reveal(maxRows)
		rec, _ := m.list.Current()
		events.UI.ListCursor(m.list.Cursor, rec.ID)
	}
	return nil
}

// handlePasteMsg feeds pasted text to the focused input.
func (m *Model) handlePasteMsg(msg tea.Msg) tea.Cmd {
	if m.ctrl.State().Notice != "" || m.ctrl.State().Confirming() {
		return nil
	}
	return m.updateFocusedInput(msg)
}

// updateFocusedInput forwards non-key messages, such as cursor blinks and
// pastes, to the input that owns the focus.
func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.focus.isField():
		idx := int(m.focus)
		m.inputs[idx], cmd = m.inputs[idx].Update(msg)
		m.syncField(m.focus.field(), idx)
	case m.focus == focusSearch:
		m.search, cmd = m.search.Update(msg)
		m.syncSearch()
	}
	return cmd
}

func (m *Model) syncSearch() {
	if value := m.search.Value(); value != m.ctrl.State().Search {
		m.dispatch(roster.SetSearch{Term: value})
	}
}

func (m *Model) clearSearch() {
	if m.ctrl.State().Search == "" {
		return
	}
	m.dispatch(roster.ClearSearch{})
}

// setFocus moves the key focus to target and returns the input's blink
// command when target is a text input.
func (m *Model) setFocus(target focusTarget) tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.search.Blur()
	m.focus = target
	events.UI.Focus(target.String())
	return m.focusInputCmd()
}

func (m *Model) focusInputCmd() tea.Cmd {
	switch {
	case m.focus.isField():
		return m.inputs[int(m.focus)].Focus()
	case m.focus == focusSearch:
		return m.search.Focus()
	}
	return nil
}
