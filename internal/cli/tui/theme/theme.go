// Package theme centralizes the lipgloss styles shared by the interactive
// wizard so every screen renders with the same palette.
package theme

import "github.com/charmbracelet/lipgloss"

var (
	// ColorPrimary highlights selected items and accents.
	ColorPrimary = lipgloss.Color("205")
	// ColorError renders validation failures.
	ColorError = lipgloss.Color("196")
	// ColorMuted renders secondary text such as hints and labels.
	ColorMuted = lipgloss.Color("243")
)

// HeadingStyle renders wizard step titles.
func HeadingStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
}

// StatusStyle renders labels and inline hints.
func StatusStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

// ErrorStyle renders inline validation errors.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorError)
}

// HelpStyle renders the key-binding footer.
func HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Faint(true)
}
