package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/spectra/internal/periodic"
)

// Semantic color palette.
var (
	colorPrimary     = lipgloss.Color("#00BFFF") // Cyan, primary accent
	colorAccent      = lipgloss.Color("#FFD700") // Gold, focus and attention
	colorDanger      = lipgloss.Color("#FF5252") // Red, errors
	colorMuted       = lipgloss.Color("#636363") // Gray, de-emphasized
	colorMutedLight  = lipgloss.Color("#8C8C8C") // Lighter gray, normal text
	colorWhite       = lipgloss.Color("#EEEEEE") // Off-white, primary text
	colorBrightWhite = lipgloss.Color("#FFFFFF") // Pure white, emphatic text
	colorSurface     = lipgloss.Color("#1E1E2E") // Dark surface, status bar bg
	colorSurfaceDim  = lipgloss.Color("#181825") // Darkest surface, footer bg
)

// Selection indicator prepended to the active row.
const selectionIndicator = "▎"

// Status bar styles: visually dominant with solid background.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStatusLabel = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleStatusValue = lipgloss.NewStyle().
				Foreground(colorWhite)

	styleStatusAlert = lipgloss.NewStyle().
				Foreground(colorDanger).
				Bold(true)
)

// Control row styles for the century picker.
var (
	styleCenturyOn = lipgloss.NewStyle().
			Foreground(colorSurface).
			Background(colorPrimary).
			Bold(true)

	styleCenturyOff = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleCenturyFocus = lipgloss.NewStyle().
				Foreground(colorAccent).
				Underline(true).
				Bold(true)
)

// Page content styles.
var (
	stylePageTitle = lipgloss.NewStyle().
			Foreground(colorBrightWhite).
			Bold(true)

	stylePanelTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleDim = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleText = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleNotice = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleError = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	// styleSelectionIndicator styles the left-edge indicator for the selected row.
	styleSelectionIndicator = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)
)

// Element card and swatch styles.
var styleCard = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// Detail panel styles: rounded border, styled title.
var (
	styleDetailBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorMuted).
				Padding(0, 1)

	styleDetailTitle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleScrollIndicator = lipgloss.NewStyle().
				Foreground(colorMuted).
				Italic(true)
)

// Footer styles: top border, clear key/desc contrast.
var (
	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurfaceDim).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorMuted)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleFooterSep = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)

// rgbColor converts a registry color to a lipgloss color.
func rgbColor(c periodic.RGB) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// paint is the chart.Painter used by the dashboard.
func paint(c periodic.RGB, s string) string {
	return lipgloss.NewStyle().Foreground(rgbColor(c)).Render(s)
}
