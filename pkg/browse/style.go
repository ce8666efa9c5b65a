package browse

import "github.com/charmbracelet/lipgloss"

const (
	cardWidth   = 28
	maxRows     = 20
	facetsWidth = 32
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	gray      = lipgloss.Color("8")

	divider = lipgloss.NewStyle().
		SetString("•").
		Padding(0, 1).
		Foreground(subtle).
		String()

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().Foreground(special)
	cursorStyle   = lipgloss.NewStyle().Foreground(highlight).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(gray)

	facetsStyle = lipgloss.NewStyle().
			Width(facetsWidth).
			PaddingRight(2).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(subtle)

	cardStyle = lipgloss.NewStyle().
			Width(cardWidth).
			Padding(0, 1).
			MarginRight(1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle)

	statusStyle = lipgloss.NewStyle().
			Foreground(gray).
			MarginTop(1)
)
