// Package ui contains the Bubble Tea program for the student roster screen.
// The Model type only routes messages; the roster.Controller owns all state
// that matters and the widgets here mirror it.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Key presses,
//     pastes and resizes go through a typed handler registry; anything else
//     (cursor blinks) is forwarded to the focused text input.
//   - Key handling (input.go, forms.go, prompt.go) turns keys into
//     roster actions and runs them through the command bus, which applies
//     them synchronously and emits trace events.
//   - After every action the form inputs, search box and list cursor are
//     refreshed from controller state, so a reset buffer or cleared search
//     shows up on the next frame.
//
// State ownership:
//   - internal/roster holds the records, form buffer, search term, display
//     mode and pending prompts.
//   - internal/ui/state.List tracks the cursor and viewport over the filtered
//     records, including where the cursor was before a search began.
//
// Blocking prompts (the validation notice and delete confirmation) take every
// key until answered; ctrl+c still quits.
package ui
