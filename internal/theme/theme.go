package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Text         *lipgloss.Style
	Gutter       *lipgloss.Style
	Selection    *lipgloss.Style
	Cursor       *lipgloss.Style
	Empty        *lipgloss.Style
	MenuItem     *lipgloss.Style
	MenuSelected *lipgloss.Style
	Status       *lipgloss.Style
	Info         *lipgloss.Style
	Error        *lipgloss.Style
}

var defaultStyles = Styles{
	Text: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	Gutter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Selection: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("24")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
	Empty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	MenuItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("236")),
	),
	MenuSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("235")),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
