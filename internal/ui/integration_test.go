package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/roster/internal/roster"
)

func TestListScrollKeepsCursorVisible(t *testing.T) {
	records := make([]roster.Record, 30)
	for i := range records {
		idx := i + 1
		records[i] = roster.Record{
			ID:      fmt.Sprintf("id-%02d", idx),
			Name:    fmt.Sprintf("Pupil %02d", idx),
			RollNo:  fmt.Sprintf("R%02d", idx),
			PhoneNo: "555",
			Address: "Main St",
		}
	}
	h, _ := newTestHarness(t, 0, 30, records...)
	h.Send(tea.WindowSizeMsg{Width: 100, Height: 30})
	moveFocusToList(h)

	view := h.View()
	if !strings.Contains(view, "Pupil 01") {
		t.Fatalf("expected first record visible:\n%s", view)
	}
	if strings.Contains(view, "Pupil 30") {
		t.Fatalf("expected last record outside the initial viewport:\n%s", view)
	}

	h.Send(keyEnd)
	view = h.View()
	if !strings.Contains(view, "Pupil 30") {
		t.Fatalf("expected last record visible after end:\n%s", view)
	}
	if strings.Contains(view, "Pupil 01") {
		t.Fatalf("expected first record scrolled out:\n%s", view)
	}
	if got := len(strings.Split(view, "\n")); got > 30 {
		t.Fatalf("expected view within 30 lines, got %d", got)
	}
}

func TestAddThenFilterThenEdit(t *testing.T) {
	h, rec := newTestHarness(t, 0, 0, sampleRecords()...)
	fillForm(h, "Cara", "R3", "557", "3 Main St")
	h.Send(keyEnter)
	if got := h.Model().State().Roster.Len(); got != 3 {
		t.Fatalf("expected 3 records, got %d", got)
	}

	moveFocusToList(h)
	h.Send(runeKey('/'))
	h.Type("r3")
	m := h.Model()
	current, ok := m.list.Current()
	if !ok || current.Name != "Cara" {
		t.Fatalf("expected cursor on Cara, got %+v", current)
	}

	h.Send(keyEnter)
	h.Send(runeKey('e'))
	if !h.Model().State().Form.IsEditing("id-1") {
		t.Fatalf("expected editing the new record, got %+v", h.Model().State().Form)
	}
	h.Send(keyTab)
	h.Send(keyTab)
	h.Type("9")
	h.Send(keyEnter)

	got, _ := h.Model().State().Roster.Find("id-1")
	if got.PhoneNo != "5579" {
		t.Fatalf("expected phone updated, got %+v", got)
	}
	if len(rec.snapshots) != 2 {
		t.Fatalf("expected add and update persisted, got %d", len(rec.snapshots))
	}
	if h.Model().State().Search != "r3" {
		t.Fatalf("expected search term kept through the edit")
	}
}
