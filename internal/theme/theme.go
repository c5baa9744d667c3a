package theme

import "charm.land/lipgloss/v2"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title                 *lipgloss.Style
	Subtitle              *lipgloss.Style
	ModeToggle            *lipgloss.Style
	StatCard              *lipgloss.Style
	StatNumber            *lipgloss.Style
	StatLabel             *lipgloss.Style
	Card                  *lipgloss.Style
	FocusedCard           *lipgloss.Style
	CardTitle             *lipgloss.Style
	Label                 *lipgloss.Style
	FocusedLabel          *lipgloss.Style
	PrimaryButton         *lipgloss.Style
	SecondaryButton       *lipgloss.Style
	DangerButton          *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	TableHeader           *lipgloss.Style
	EmptyTitle            *lipgloss.Style
	EmptyBody             *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Notice                *lipgloss.Style
	Footer                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
}

var lightStyles = Styles{
	Title:      ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true)),
	Subtitle:   ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("243"))),
	ModeToggle: ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("252")).Padding(0, 1)),
	StatCard: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 2),
	),
	StatNumber: ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true)),
	StatLabel:  ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("243"))),
	Card: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 1),
	),
	FocusedCard: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")).Padding(0, 1),
	),
	CardTitle:             ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Bold(true)),
	Label:                 ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))),
	FocusedLabel:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)),
	PrimaryButton:         ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Padding(0, 1)),
	SecondaryButton:       ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("252")).Padding(0, 1)),
	DangerButton:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("160")).Padding(0, 1)),
	Item:                  ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("238"))),
	ItemIndicator:         ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("252"))),
	SelectedItemIndicator: ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("254"))),
	SelectedItem:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("254")).Bold(true)),
	TableHeader:           ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Bold(true)),
	EmptyTitle:            ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Bold(true)),
	EmptyBody:             ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true)),
	Error:                 ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true)),
	Info:                  ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("28"))),
	Notice: ptr(
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("166")).Foreground(lipgloss.Color("166")).Bold(true).Padding(0, 2),
	),
	Footer:       ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("245"))),
	FilterPrompt: ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true)),
}

var darkStyles = Styles{
	Title:      ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)),
	Subtitle:   ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("245"))),
	ModeToggle: ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 1)),
	StatCard: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 2),
	),
	StatNumber: ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)),
	StatLabel:  ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("245"))),
	Card: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	),
	FocusedCard: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("75")).Padding(0, 1),
	),
	CardTitle:             ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)),
	Label:                 ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("249"))),
	FocusedLabel:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)),
	PrimaryButton:         ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("75")).Padding(0, 1)),
	SecondaryButton:       ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 1)),
	DangerButton:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("124")).Padding(0, 1)),
	Item:                  ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("249"))),
	ItemIndicator:         ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("238"))),
	SelectedItemIndicator: ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238"))),
	SelectedItem:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true)),
	TableHeader:           ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)),
	EmptyTitle:            ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true)),
	EmptyBody:             ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)),
	Error:                 ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)),
	Info:                  ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("114"))),
	Notice: ptr(
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("214")).Foreground(lipgloss.Color("214")).Bold(true).Padding(0, 2),
	),
	Footer:       ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("243"))),
	FilterPrompt: ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true)),
}

// Light is the default style set.
func Light() *Styles {
	return &lightStyles
}

// Dark is the style set used in dark display mode.
func Dark() *Styles {
	return &darkStyles
}

// For picks the style set for the display mode.
func For(dark bool) *Styles {
	if dark {
		return Dark()
	}
	return Light()
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
