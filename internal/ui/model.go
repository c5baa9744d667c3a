package ui

import (
	"reflect"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/atomicstack/roster/internal/roster"
	"github.com/atomicstack/roster/internal/theme"
	"github.com/atomicstack/roster/internal/ui/command"
	uistate "github.com/atomicstack/roster/internal/ui/state"
)

// focusTarget names the widget that receives key presses.
type focusTarget int

const (
	focusName focusTarget = iota
	focusRollNo
	focusPhoneNo
	focusAddress
	focusSearch
	focusList
	focusCount
)

func (f focusTarget) String() string {
	switch f {
	case focusName:
		return "name"
	case focusRollNo:
		return "roll-number"
	case focusPhoneNo:
		return "phone-number"
	case focusAddress:
		return "address"
	case focusSearch:
		return "search"
	case focusList:
		return "list"
	default:
		return "unknown"
	}
}

// isField reports whether f is one of the form inputs.
func (f focusTarget) isField() bool {
	return f >= focusName && f <= focusAddress
}

func (f focusTarget) field() roster.Field {
	return roster.AllFields[int(f)]
}

const (
	inputWidth = 32
	infoTTL    = 5 * time.Second
)

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the roster screen.
type Model struct {
	ctrl        *roster.Controller
	bus         *command.Bus
	inputs      []textinput.Model
	search      textinput.Model
	list        *uistate.List
	focus       focusTarget
	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the UI to ctrl. Non-zero width or height pin the layout
// size and make resize events ignore that dimension.
func NewModel(ctrl *roster.Controller, width, height int, showFooter bool, verbose bool) *Model {
	if ctrl == nil {
		ctrl = roster.NewController(nil)
	}
	m := &Model{
		ctrl:       ctrl,
		bus:        command.New(ctrl),
		list:       uistate.NewList(),
		showFooter: showFooter,
		verbose:    verbose,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.inputs = make([]textinput.Model, len(roster.AllFields))
	for i, field := range roster.AllFields {
		m.inputs[i] = newInput(fieldPlaceholder(field))
	}
	m.search = newInput("Search by name or roll number...")
	m.registerHandlers()
	m.refresh()
	m.setFocus(focusName)
	return m
}

// newInput returns an unprompted input without a length limit. SetValue
// truncates to CharLimit, so a limit would cut stored values on edit.
func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 0
	ti.SetWidth(inputWidth)
	return ti
}

func fieldPlaceholder(field roster.Field) string {
	switch field {
	case roster.FieldName:
		return "Enter student name"
	case roster.FieldRollNo:
		return "Enter roll number"
	case roster.FieldPhoneNo:
		return "Enter phone number"
	case roster.FieldAddress:
		return "Enter address"
	default:
		return ""
	}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.focusInputCmd()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, m.updateFocusedInput(msg)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyPressMsg{}):   m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.PasteMsg{}):      m.handlePasteMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// State exposes the controller state for callers that render or inspect it.
func (m *Model) State() roster.State {
	return m.ctrl.State()
}

// dispatch runs an action through the bus and folds the result into the
// status line.
func (m *Model) dispatch(action roster.Action) (roster.Outcome, error) {
	outcome, err := m.bus.Execute(action)
	m.applyResult(outcome, err)
	m.refresh()
	return outcome, err
}

// refresh copies controller state into the widgets that mirror it.
func (m *Model) refresh() {
	st := m.ctrl.State()
	for i, field := range roster.AllFields {
		if value := st.Form.Get(field); m.inputs[i].Value() != value {
			m.inputs[i].SetValue(value)
			m.inputs[i].CursorEnd()
		}
	}
	if m.search.Value() != st.Search {
		m.search.SetValue(st.Search)
		m.search.CursorEnd()
	}
	m.list.SetItems(st.Filtered(), st.Search)
	m.list.Reveal(m.maxVisibleRows())
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.list.Reveal(m.maxVisibleRows())
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoTTL)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func (m *Model) styles() *theme.Styles {
	return theme.For(m.ctrl.State().Dark)
}
