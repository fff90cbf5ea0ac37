package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingTop(1)

	betterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	worseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// DiffStyle picks the style for a percentage change. Changes within
// threshold percent render unstyled.
func DiffStyle(diff, threshold float64) lipgloss.Style {
	switch {
	case diff > threshold:
		return worseStyle
	case diff < -threshold:
		return betterStyle
	}
	return lipgloss.NewStyle()
}

// Title renders a heading in the brand style.
func Title(s string) string {
	return titleStyle.Render(s)
}
