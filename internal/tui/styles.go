package tui

import "github.com/charmbracelet/lipgloss"

var (
	appTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 0, 1, 0)

	fieldLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252"))

	activeLabelStyle = fieldLabelStyle.
				Foreground(lipgloss.Color("39"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	selectedFileStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42"))

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("196")).
				Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("24")).
			Padding(0, 3)

	focusedButtonStyle = buttonStyle.
				Background(lipgloss.Color("33"))

	disabledButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("250")).
				Background(lipgloss.Color("240"))

	reportBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))
)
