package tui

import "github.com/charmbracelet/lipgloss"

// Palette taken from the portfolio site.
var (
	Background = lipgloss.Color("#1e1e1e")
	Terminal   = lipgloss.Color("#a9dc76") // snake and terminal text
	Apple      = lipgloss.Color("#ff6188")
	Cream      = lipgloss.Color("#C6C1AB")
	Muted      = lipgloss.Color("#666666")
	Bright     = lipgloss.Color("#ffffff")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Terminal)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(Apple)

	mutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(Cream)

	activeTabStyle = tabStyle.
			Bold(true).
			Foreground(Background).
			Background(Terminal)

	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Cream).
			Padding(0, 1)

	popupTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Cream)

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(Cream)

	snakeStyle = lipgloss.NewStyle().Foreground(Terminal)
	headStyle  = lipgloss.NewStyle().Foreground(Bright)
	appleStyle = lipgloss.NewStyle().Foreground(Apple)

	inputLineStyle  = lipgloss.NewStyle().Foreground(Cream)
	outputLineStyle = lipgloss.NewStyle().Foreground(Terminal)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1).
			Width(36)

	skillStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(Terminal).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().Foreground(Apple).Bold(true)
)
