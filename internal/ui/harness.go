package ui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and returns the resulting command
// without running it. Commands are cursor blinks or tea.Quit; blinks would
// keep a synchronous loop alive forever.
func (h *Harness) Send(msg tea.Msg) tea.Cmd {
	if h.model == nil {
		return nil
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	return cmd
}

// Press sends a single key press.
func (h *Harness) Press(key tea.KeyPressMsg) tea.Cmd {
	return h.Send(key)
}

// Type sends one printable key press per rune of text.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.Send(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

// View returns the current screen with styling removed.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return ansi.Strip(h.model.render())
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
