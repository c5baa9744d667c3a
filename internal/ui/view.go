package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atomicstack/roster/internal/format/table"
	"github.com/atomicstack/roster/internal/roster"
	"github.com/charmbracelet/x/ansi"
)

const (
	appTitle    = "🎓 Student Management System"
	appSubtitle = "Professional Student Management Todo List"
)

var fieldLabels = map[roster.Field]string{
	roster.FieldName:    "Student Name *",
	roster.FieldRollNo:  "Roll Number *",
	roster.FieldPhoneNo: "Phone Number *",
	roster.FieldAddress: "Address *",
}

var listColumns = []table.Column{
	{Align: table.AlignLeft, MaxWidth: 24},
	{Align: table.AlignLeft, MaxWidth: 12},
	{Align: table.AlignLeft, MaxWidth: 16},
	{Align: table.AlignLeft, MaxWidth: 32},
}

// View implements tea.Model.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the whole screen clipped to the configured size.
func (m *Model) render() string {
	rows := m.maxVisibleRows()
	m.list.Reveal(rows)
	return fitToScreen(m.renderPage(rows), m.width, m.height)
}

// maxVisibleRows is the number of list rows that fit once every other part
// of the page has been laid out. A negative result means no limit.
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return -1
	}
	remain := m.height - lipgloss.Height(m.renderPage(0))
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) renderPage(rows int) string {
	sections := []string{m.headerView(), m.statsView()}
	if prompt, ok := m.promptView(); ok {
		sections = append(sections, prompt)
	} else {
		sections = append(sections, m.formView(), m.listView(rows))
	}
	if status := m.statusView(); status != "" {
		sections = append(sections, status)
	}
	if m.showFooter {
		sections = append(sections, m.styles().Footer.Render(m.footerText()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) headerView() string {
	styles := m.styles()
	mode := "🌙 Dark Mode"
	if m.ctrl.State().Dark {
		mode = "☀️ Light Mode"
	}
	title := styles.Title.Render(appTitle) + "  " + styles.ModeToggle.Render(mode+" (ctrl+t)")
	return title + "\n" + styles.Subtitle.Render(appSubtitle)
}

func (m *Model) statsView() string {
	styles := m.styles()
	stats := m.ctrl.State().Stats()
	card := func(value int, label string) string {
		return styles.StatCard.Render(styles.StatNumber.Render(fmt.Sprintf("%d", value)) + "\n" + styles.StatLabel.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card(stats.Total, "Total Students"),
		card(stats.WithPhone, "With Phone"),
		card(stats.WithAddress, "With Address"),
	)
}

func (m *Model) formView() string {
	styles := m.styles()
	form := m.ctrl.State().Form
	title := "➕ Add New Student"
	if form.Editing {
		title = "✏️ Edit Student"
	}
	lines := []string{styles.CardTitle.Render(title)}
	for i, field := range roster.AllFields {
		label := styles.Label
		if m.focus == focusTarget(i) {
			label = styles.FocusedLabel
		}
		lines = append(lines, label.Render(fmt.Sprintf("%-16s", fieldLabels[field]))+m.inputs[i].View())
	}
	buttons := styles.PrimaryButton.Render(form.SubmitLabel() + " (enter)")
	if form.Editing {
		buttons = styles.SecondaryButton.Render("Cancel (esc)") + "  " + buttons
	}
	lines = append(lines, "", buttons)
	card := styles.Card
	if m.focus.isField() {
		card = styles.FocusedCard
	}
	return card.Render(strings.Join(lines, "\n"))
}

func (m *Model) listView(rows int) string {
	styles := m.styles()
	st := m.ctrl.State()
	lines := []string{
		styles.CardTitle.Render(fmt.Sprintf("📚 Students List (%d)", len(m.list.Items))),
		styles.FilterPrompt.Render("🔍 ") + m.search.View(),
		"",
	}
	switch {
	case st.Roster.Len() == 0:
		lines = append(lines,
			styles.EmptyTitle.Render("No students added yet"),
			styles.EmptyBody.Render("Add your first student using the form above!"),
		)
	case len(m.list.Items) == 0:
		lines = append(lines,
			styles.EmptyTitle.Render("🔍 No matching students found"),
			styles.EmptyBody.Render("Try adjusting your search terms or clear the search to see all students."),
			"",
			styles.SecondaryButton.Render("Clear Search (ctrl+l)"),
		)
	default:
		lines = append(lines, m.tableLines(rows)...)
	}
	card := styles.Card
	if m.focus == focusSearch || m.focus == focusList {
		card = styles.FocusedCard
	}
	return card.Render(strings.Join(lines, "\n"))
}

// tableLines renders the header, up to rows records starting at the viewport
// offset, and the action hint for the selected record.
func (m *Model) tableLines(rows int) []string {
	styles := m.styles()
	items := m.list.Items
	cells := make([][]string, 0, len(items)+1)
	cells = append(cells, []string{"Name", "Roll", "Phone", "Address"})
	for _, rec := range items {
		cells = append(cells, []string{rec.Name, rec.RollNo, rec.PhoneNo, rec.Address})
	}
	formatted := table.FormatColumns(cells, listColumns)

	start, end := 0, len(items)
	if rows >= 0 {
		start = m.list.ViewportOffset
		if start > len(items) {
			start = len(items)
		}
		if end > start+rows {
			end = start + rows
		}
	}
	out := make([]string, 0, end-start+2)
	out = append(out, "  "+styles.TableHeader.Render(formatted[0]))
	for idx := start; idx < end; idx++ {
		text := formatted[idx+1]
		if idx == m.list.Cursor && m.focus == focusList {
			out = append(out, styles.SelectedItemIndicator.Render("▌")+" "+styles.SelectedItem.Render(text))
			continue
		}
		if idx == m.list.Cursor {
			out = append(out, styles.ItemIndicator.Render("▌")+" "+styles.Item.Render(text))
			continue
		}
		out = append(out, "  "+styles.Item.Render(text))
	}
	hint := fmt.Sprintf("%d/%d  [e] ✏️ Edit  [d] 🗑️ Delete", m.list.Cursor+1, len(items))
	out = append(out, styles.Footer.Render(hint))
	return out
}

func (m *Model) statusView() string {
	styles := m.styles()
	if m.errMsg != "" {
		return styles.Error.Render("Error: " + m.errMsg)
	}
	if info := m.currentInfo(); info != "" {
		return styles.Info.Render(info)
	}
	return ""
}

func (m *Model) footerText() string {
	st := m.ctrl.State()
	switch {
	case st.Notice != "":
		return "any key continue  ctrl+c quit"
	case st.Confirming():
		return "y delete  n cancel  ctrl+c quit"
	case m.focus.isField():
		if st.Form.Editing {
			return "tab next  enter update  esc cancel  ctrl+t theme  ctrl+c quit"
		}
		return "tab next  enter add  ctrl+t theme  ctrl+c quit"
	case m.focus == focusSearch:
		return "type to filter  enter list  esc clear  ctrl+l clear  ctrl+c quit"
	default:
		return "↑/↓ move  e edit  d delete  / search  a add  q quit"
	}
}

// fitToScreen truncates each line to width and the page to height.
func fitToScreen(page string, width, height int) string {
	lines := strings.Split(page, "\n")
	lines = limitHeight(lines, height)
	if width > 0 {
		for i, line := range lines {
			if ansi.StringWidth(line) > width {
				lines[i] = ansi.Truncate(line, width, "…")
			}
		}
	}
	return strings.Join(lines, "\n")
}

func limitHeight(lines []string, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []string{"…"}
	}
	trimmed := make([]string, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	return append(trimmed, "…")
}
