package ui

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/roster/internal/logging/events"
	"github.com/atomicstack/roster/internal/roster"
)

const deleteQuestion = "Are you sure you want to delete this student?"

// handleNoticeKey acknowledges the blocking notice. Any key does.
func (m *Model) handleNoticeKey(string) tea.Cmd {
	m.dispatch(roster.DismissNotice{})
	return nil
}

func (m *Model) handleConfirmKey(key string) tea.Cmd {
	switch key {
	case "y", "Y", "enter":
		m.dispatch(roster.ConfirmDelete{})
	case "n", "N", "esc":
		m.dispatch(roster.DeclineDelete{})
	}
	return nil
}

// applyResult turns an action result into status line text.
func (m *Model) applyResult(outcome roster.Outcome, err error) {
	var invalid *roster.ValidationError
	switch {
	case errors.As(err, &invalid):
		m.errMsg = ""
		m.forceClearInfo()
		events.UI.Notice(roster.ValidationNotice)
		return
	case err != nil && outcome.Err != nil:
		m.errMsg = err.Error()
		m.forceClearInfo()
		return
	case err != nil:
		m.errMsg = fmt.Sprintf("changes not saved: %v", err)
		m.forceClearInfo()
		return
	}
	if !outcome.Mutated() {
		return
	}
	m.errMsg = ""
	if !m.verbose {
		m.forceClearInfo()
		return
	}
	switch outcome.Change {
	case roster.ChangeAdd:
		m.setInfo(fmt.Sprintf("Added %s", outcome.Record.Name))
	case roster.ChangeUpdate:
		m.setInfo(fmt.Sprintf("Updated %s", outcome.Record.Name))
	case roster.ChangeDelete:
		m.setInfo(fmt.Sprintf("Deleted %s", outcome.Record.Name))
	}
}

// promptView renders the blocking panel, if any, that replaces the form and
// list while it waits for an answer.
func (m *Model) promptView() (string, bool) {
	st := m.ctrl.State()
	styles := m.styles()
	switch {
	case st.Notice != "":
		body := st.Notice + "\n\n" + styles.Footer.Render("press any key to continue")
		return styles.Notice.Render(body), true
	case st.Confirming():
		rec, _ := st.Roster.Find(st.PendingDelete)
		buttons := styles.DangerButton.Render("Delete (y)") + "  " + styles.SecondaryButton.Render("Cancel (n)")
		body := styles.CardTitle.Render(deleteQuestion) + "\n" +
			styles.Label.Render(fmt.Sprintf("%s (%s)", rec.Name, rec.RollNo)) + "\n\n" + buttons
		return styles.FocusedCard.Render(body), true
	}
	return "", false
}
