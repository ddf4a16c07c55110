package ui

import "github.com/charmbracelet/lipgloss"

// Wore palette.
var (
	colorAccent     = lipgloss.Color("#7C5CFF")
	colorAccentSoft = lipgloss.Color("#A48BFF")
	colorLighter    = lipgloss.Color("#2C2F3A")
	colorText       = lipgloss.Color("#D4D7E0")
	colorTextBright = lipgloss.Color("#FFFFFF")
	colorTextMuted  = lipgloss.Color("#7D8293")
	colorOnline     = lipgloss.Color("#3DDC84")
	colorRecording  = lipgloss.Color("#EF4444")
)

var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorTextBright)

	helpStyle = lipgloss.NewStyle().
		Foreground(colorTextMuted).
		Italic(true)

	normalStyle = lipgloss.NewStyle().
		Foreground(colorText)

	mutedStyle = lipgloss.NewStyle().
		Foreground(colorTextMuted)

	accentStyle = lipgloss.NewStyle().
		Foreground(colorAccentSoft)

	onlineStyle = lipgloss.NewStyle().
		Foreground(colorOnline)

	avatarStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorTextBright).
		Background(colorAccent).
		Padding(0, 1)

	tabActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccentSoft).
		Underline(true)

	tabStyle = lipgloss.NewStyle().
		Foreground(colorTextMuted)

	sidebarStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(colorLighter)

	headerStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(colorLighter)

	messageFromMeStyle = lipgloss.NewStyle().
		Foreground(colorTextBright).
		Background(colorAccent).
		Padding(0, 1)

	messageFromOtherStyle = lipgloss.NewStyle().
		Foreground(colorText).
		Background(colorLighter).
		Padding(0, 1)

	messageHeaderStyle = lipgloss.NewStyle().
		Foreground(colorTextMuted).
		Italic(true)

	composerStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(colorLighter)

	recordingStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorTextBright).
		Background(colorRecording).
		Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1)

	effectStyle = lipgloss.NewStyle().
		Foreground(colorText).
		Background(colorLighter).
		Width(effectCellWidth).
		Align(lipgloss.Center)

	effectActiveStyle = effectStyle.
		Foreground(colorTextBright).
		Background(colorAccent).
		Bold(true)

	cursorStyle = lipgloss.NewStyle().
		Foreground(colorAccentSoft).
		Bold(true)
)
