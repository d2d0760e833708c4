package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the menus.
type Styles struct {
	Item             *lipgloss.Style
	SelectedItem     *lipgloss.Style
	DisabledItem     *lipgloss.Style
	Mnemonic         *lipgloss.Style
	Shortcut         *lipgloss.Style
	SelectedShortcut *lipgloss.Style
	Check            *lipgloss.Style
	Arrow            *lipgloss.Style
	Border           *lipgloss.Style
	Bar              *lipgloss.Style
	Pressed          *lipgloss.Style
	Caption          *lipgloss.Style
	Error            *lipgloss.Style
}

var defaultStyles = Styles{
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	DisabledItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Mnemonic: ptr(
		lipgloss.NewStyle().Underline(true),
	),
	Shortcut: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	SelectedShortcut: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("238")),
	),
	Check: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Arrow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Border: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Bar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("236")),
	),
	Pressed: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Bold(true),
	),
	Caption: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
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
