package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Footer renders context-sensitive keybinding hints.
type Footer struct {
	Width    int
	Bindings []key.Binding
}

// View renders the footer as a single line of keybinding hints.
// In compact mode (narrow terminals), shows only key hints without descriptions.
func (f Footer) View() string {
	compact := f.Width < CompactWidth

	var parts []string
	for _, b := range f.Bindings {
		if !b.Enabled() {
			continue
		}
		help := b.Help()
		var part string
		if compact {
			part = styleFooterKey.Render(help.Key)
		} else {
			part = styleFooterKey.Render(help.Key) + styleFooterSep.Render(":") + styleFooterDesc.Render(help.Desc)
		}
		parts = append(parts, part)
	}
	sep := styleFooterSep.Render("  ")
	if compact {
		sep = styleFooterSep.Render(" ")
	}
	line := strings.Join(parts, sep)
	return styleFooter.Width(f.Width).Render(line)
}

// SectionFooterBindings returns footer bindings for the scrolling sections.
func SectionFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.JumpSection, km.NextSection, km.Up, km.Down, km.ToggleSpectra, km.ToggleGrouping, km.CenturyFocus, km.CenturyToggle, km.CenturyClear, km.Quit}
}

// ExplorerFooterBindings returns footer bindings for the explorer, where the
// century filter has no effect.
func ExplorerFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.JumpSection, km.NextSection, km.Up, km.Down, km.PageUp, km.PageDown, km.ToggleSpectra, km.Quit}
}
