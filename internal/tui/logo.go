package tui

import "github.com/charmbracelet/lipgloss"

// Logo style definitions for the TUI status bar logo.
var (
	styleLogoPrism = lipgloss.NewStyle().Foreground(colorMutedLight)
	styleLogoCore  = lipgloss.NewStyle().Foreground(colorMutedLight)
)

// logoBands are the prism colors on either side of the name, violet to red.
var logoBands = []lipgloss.Color{"#8B00FF", "#0000FF", "#00FF00", "#FFFF00", "#FF7F00", "#FF0000"}

// Logo returns a styled single-line spectra logo for the TUI status bar: a
// white beam entering a prism and leaving as a band of colors.
// Background is inherited from the parent status bar container.
func Logo() string {
	out := styleLogoPrism.Render("━▶") + styleLogoCore.Render(" SPECTRA ")
	for _, c := range logoBands {
		out += lipgloss.NewStyle().Foreground(c).Render("━")
	}
	return out
}

// LogoPlain returns the unstyled logo text for plain contexts.
func LogoPlain() string {
	return "━▶ SPECTRA ━━━━━━"
}
