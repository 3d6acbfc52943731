package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset this view needs.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorSky      lipgloss.Color = "#89dceb"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorBrand   = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 2)

	listBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	formBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFocus).
			Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWarning).
			Padding(0, 1)

	columnHeaderStyle = lipgloss.NewStyle().Foreground(colorOverlay1).Bold(true)
	rowStyle          = lipgloss.NewStyle().Foreground(colorText)
	selectedRowStyle  = lipgloss.NewStyle().Foreground(colorMantle).Background(colorFocus).Bold(true)
	mutedStyle        = lipgloss.NewStyle().Foreground(colorOverlay1)
	labelStyle        = lipgloss.NewStyle().Foreground(colorSubtext0)
	errorStyle        = lipgloss.NewStyle().Foreground(colorError)
	successStyle      = lipgloss.NewStyle().Foreground(colorSuccess)

	dialRimStyle  = lipgloss.NewStyle().Foreground(colorSurface2)
	dialTickStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
	dialHubStyle  = lipgloss.NewStyle().Foreground(colorText)
)
