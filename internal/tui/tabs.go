package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/spectra/internal/view"
)

// TabBar renders the horizontal section selector.
type TabBar struct {
	Active view.Section
	Width  int
}

// View renders the tab bar as a single styled line.
// The active section is highlighted with the primary accent color and bold.
// Inactive sections use the muted color.
func (tb TabBar) View() string {
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorPrimary)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(colorMuted)

	compact := tb.Width < CompactWidth

	var parts []string
	for i, s := range view.AllSections() {
		label := fmt.Sprintf("[%d] %s", i+1, s.Label())
		if compact {
			label = fmt.Sprintf("%d:%s", i+1, s.Label())
		}
		if s == tb.Active {
			parts = append(parts, activeStyle.Render(label))
		} else {
			parts = append(parts, inactiveStyle.Render(label))
		}
	}

	sep := "  "
	if compact {
		sep = " "
	}
	return lipgloss.NewStyle().
		Width(tb.Width).
		PaddingLeft(2).
		Render(strings.Join(parts, sep))
}
