package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// DetailPanel wraps a viewport for the scrollable page body.
type DetailPanel struct {
	viewport   viewport.Model
	title      string
	totalLines int // total lines of content (before viewport clipping)
}

// NewDetailPanel creates a detail panel with the given dimensions.
func NewDetailPanel(width, height int) DetailPanel {
	vp := viewport.New(width, height)
	vp.SetContent("")
	return DetailPanel{viewport: vp}
}

// SetSize updates the viewport dimensions.
func (d *DetailPanel) SetSize(width, height int) {
	d.viewport.Width = width
	d.viewport.Height = height
}

// SetContent replaces the displayed text and title. The scroll offset is
// kept when keepOffset is set and still in range.
func (d *DetailPanel) SetContent(title, content string, keepOffset bool) {
	d.title = title
	d.totalLines = strings.Count(content, "\n") + 1
	offset := d.viewport.YOffset
	d.viewport.SetContent(content)
	if keepOffset {
		d.viewport.SetYOffset(offset)
		return
	}
	d.viewport.GotoTop()
}

// Title returns the current panel title.
func (d DetailPanel) Title() string { return d.title }

// Update handles viewport scroll messages.
// Home/End are handled explicitly because the viewport's built-in
// KeyMap does not bind those keys.
func (d *DetailPanel) Update(msg tea.Msg) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "home":
			d.viewport.GotoTop()
			return
		case "end":
			d.viewport.GotoBottom()
			return
		}
	}
	d.viewport, _ = d.viewport.Update(msg)
}

// View renders the detail panel with a rounded border and scroll indicators.
func (d DetailPanel) View() string {
	var b strings.Builder

	if d.title != "" {
		b.WriteString(styleDetailTitle.Render(d.title))
		b.WriteString("\n")
	}

	if upMore := d.linesAbove(); upMore > 0 {
		b.WriteString(styleScrollIndicator.Render(fmt.Sprintf("↑ %d more", upMore)))
		b.WriteString("\n")
	}

	b.WriteString(d.viewport.View())

	if downMore := d.linesBelow(); downMore > 0 {
		b.WriteString("\n")
		b.WriteString(styleScrollIndicator.Render(fmt.Sprintf("↓ %d more", downMore)))
	}

	return styleDetailBorder.Render(b.String())
}

// linesAbove returns the number of content lines above the viewport.
func (d DetailPanel) linesAbove() int {
	return d.viewport.YOffset
}

// linesBelow returns the number of content lines below the viewport.
func (d DetailPanel) linesBelow() int {
	below := d.totalLines - d.viewport.YOffset - d.viewport.Height
	if below < 0 {
		return 0
	}
	return below
}
