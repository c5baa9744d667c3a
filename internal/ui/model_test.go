package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/roster/internal/roster"
)

var (
	keyTab      = tea.KeyPressMsg{Code: tea.KeyTab}
	keyShiftTab = tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	keyEnter    = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyEsc      = tea.KeyPressMsg{Code: tea.KeyEscape}
	keyDown     = tea.KeyPressMsg{Code: tea.KeyDown}
	keyUp       = tea.KeyPressMsg{Code: tea.KeyUp}
	keyEnd      = tea.KeyPressMsg{Code: tea.KeyEnd}
	keyHome     = tea.KeyPressMsg{Code: tea.KeyHome}
)

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func runeKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

type saveRecorder struct {
	snapshots [][]roster.Record
	err       error
}

func (r *saveRecorder) hook(records []roster.Record) error {
	r.snapshots = append(r.snapshots, records)
	return r.err
}

func (r *saveRecorder) last() []roster.Record {
	if len(r.snapshots) == 0 {
		return nil
	}
	return r.snapshots[len(r.snapshots)-1]
}

func sequenceIDs() roster.IDGenerator {
	n := 0
	return roster.IDFunc(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
}

func sampleRecords() []roster.Record {
	return []roster.Record{
		{ID: "1", Name: "Ann", RollNo: "R1", PhoneNo: "555", Address: "1 Main St"},
		{ID: "2", Name: "Bob", RollNo: "R2", PhoneNo: "556", Address: "2 Main St"},
	}
}

func newTestHarness(t *testing.T, width, height int, records ...roster.Record) (*Harness, *saveRecorder) {
	t.Helper()
	rec := &saveRecorder{}
	ctrl := roster.NewController(records, roster.WithIDs(sequenceIDs()), roster.WithChangeHook(rec.hook))
	return NewHarness(NewModel(ctrl, width, height, true, true)), rec
}

// moveFocusToList moves the focus from the first field to the list.
func moveFocusToList(h *Harness) {
	h.Send(keyShiftTab)
}

func TestNewModelStartsInCreateMode(t *testing.T) {
	h, _ := newTestHarness(t, 0, 0)
	m := h.Model()
	if m.focus != focusName {
		t.Fatalf("expected focus on name, got %s", m.focus)
	}
	if m.State().Form.Editing {
		t.Fatalf("expected create mode on startup")
	}
	if !m.inputs[0].Focused() {
		t.Fatalf("expected name input to be focused")
	}
}

func TestTabCyclesFocus(t *testing.T) {
	h, _ := newTestHarness(t, 0, 0)
	want := []focusTarget{focusRollNo, focusPhoneNo, focusAddress, focusSearch, focusList, focusName}
	for i, target := range want {
		h.Send(keyTab)
		if got := h.Model().focus; got != target {
			t.Fatalf("tab %d: expected %s, got %s", i+1, target, got)
		}
	}
	h.Send(keyShiftTab)
	if got := h.Model().focus; got != focusList {
		t.Fatalf("expected shift+tab to wrap to list, got %s", got)
	}
}

func TestTypingWritesFormBuffer(t *testing.T) {
	h, rec := newTestHarness(t, 0, 0)
	h.Type("Ann")
	h.Send(keyDown)
	h.Type("R1")

	form := h.Model().State().Form
	if form.Name != "Ann" || form.RollNo != "R1" {
		t.Fatalf("unexpected buffer %+v", form.Fields)
	}
	if len(rec.snapshots) != 0 {
		t.Fatalf("expected no persist while typing, got %d", len(rec.snapshots))
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	h, _ := newTestHarness(t, 50, 0)
	h.Send(tea.WindowSizeMsg{Width: 120, Height: 40})
	m := h.Model()
	if m.width != 50 {
		t.Fatalf("expected fixed width 50, got %d", m.width)
	}
	if m.height != 40 {
		t.Fatalf("expected height from resize, got %d", m.height)
	}
}

func TestHydratedModelShowsRecords(t *testing.T) {
	h, _ := newTestHarness(t, 0, 0, sampleRecords()...)
	view := h.View()
	for _, want := range []string{"Ann", "Bob", "📚 Students List (2)"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestQuitKeys(t *testing.T) {
	h, _ := newTestHarness(t, 0, 0)
	cmd := h.Send(ctrlKey('c'))
	if cmd == nil {
		t.Fatalf("expected ctrl+c to return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message from ctrl+c")
	}

	h.Type("q")
	if got := h.Model().State().Form.Name; got != "q" {
		t.Fatalf("expected q to be typed into the name field, got %q", got)
	}

	moveFocusToList(h)
	cmd = h.Send(runeKey('q'))
	if cmd == nil {
		t.Fatalf("expected q in the list to quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message from q")
	}
}
