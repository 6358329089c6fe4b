package screen

import "github.com/charmbracelet/lipgloss"

// Styles contains the style definitions of the tip screen.
var Styles = struct {
	Box       lipgloss.Style
	Title     lipgloss.Style
	Label     lipgloss.Style
	Focused   lipgloss.Style
	TipAmount lipgloss.Style
	Help      lipgloss.Style
}{
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("205")).
		Padding(1, 4).
		Margin(1),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")),
	Label: lipgloss.NewStyle(),
	Focused: lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")),
	TipAmount: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")),
}
