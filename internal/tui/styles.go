package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorBorder  lipgloss.Color = "#585b70"
	colorMantle  lipgloss.Color = "#181825"
	colorAccent  lipgloss.Color = "#89b4fa"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorError   lipgloss.Color = "#f38ba8"
	colorWarn    lipgloss.Color = "#f9e2af"
	colorTabOff  lipgloss.Color = "#7f849c"
	colorSurface lipgloss.Color = "#313244"
)

var (
	headerStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)

	activeTabStyle = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Background(colorMantle).
				Foreground(colorTabOff).
				Padding(0, 1)

	statLabelStyle = lipgloss.NewStyle().Foreground(colorMuted)
	statValueStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	sectionStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	barStyle       = lipgloss.NewStyle().Foreground(colorAccent)

	noticeInfoStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorSurface).
			Padding(0, 1)
	noticeSuccessStyle = lipgloss.NewStyle().
				Foreground(colorSuccess).
				Background(colorSurface).
				Padding(0, 1)
	noticeErrorStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface).
				Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	userMsgStyle      = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	assistantMsgStyle = lipgloss.NewStyle().Foreground(colorText)
	spinnerStyle      = lipgloss.NewStyle().Foreground(colorWarn)

	keyStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)
	footerStyle   = lipgloss.NewStyle().Background(colorMantle)
)
