package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/papapumpkin/spectra/internal/filter"
	"github.com/papapumpkin/spectra/internal/view"
)

// StatusBar renders the persistent top bar: logo, section title and the
// current display options.
type StatusBar struct {
	Section      view.Section
	Symbol       string // explorer element; shown only on the explorer
	ShowSpectra  bool
	GroupByEpoch bool
	Centuries    []filter.Century
	Reloads      int // config reloads applied this session
	Width        int
}

// View renders the status bar as a single line.
// Adapts to narrow terminals by truncating the title and dropping low-priority
// segments (reloads, centuries, grouping, spectra) to guarantee single-line rendering.
func (s StatusBar) View() string {
	compact := s.Width < CompactWidth

	// The outer styleStatusBar applies Padding(0,1), consuming 2 columns.
	const barPadding = 2
	innerWidth := s.Width - barPadding
	if innerWidth < 0 {
		innerWidth = 0
	}

	barBg := lipgloss.NewStyle().Background(colorSurface)
	logo := barBg.Render(" ") + Logo() + barBg.Render("  ")
	if compact {
		logo = barBg.Render(" ")
	}

	rightSegments := s.buildRightSegments(compact)
	right := joinSegments(rightSegments)
	rightWidth := lipgloss.Width(right)

	const minGap = 1
	available := innerWidth - lipgloss.Width(logo) - rightWidth - minGap
	if available < 8 {
		available = 8
	}
	title := styleStatusLabel.Render(TruncateWithEllipsis(s.Section.Title(), available))

	left := logo + title
	leftWidth := lipgloss.Width(left)
	if leftWidth+rightWidth+minGap > innerWidth {
		rightSegments = dropSegments(rightSegments, innerWidth-leftWidth-minGap)
		right = joinSegments(rightSegments)
		rightWidth = lipgloss.Width(right)
	}

	gap := innerWidth - leftWidth - rightWidth
	if gap < 1 {
		gap = 1
	}
	line := left + barBg.Render(strings.Repeat(" ", gap)) + right

	if lipgloss.Width(line) > innerWidth {
		line = ansi.Truncate(line, innerWidth, "")
	}

	return styleStatusBar.Width(s.Width).Render(line)
}

// statusSegment represents a styled segment of the status bar with a drop priority.
// Lower priority values are dropped first when the terminal is too narrow.
type statusSegment struct {
	text     string
	priority int // higher = keep longer
}

// buildRightSegments assembles the right-side segments in display order.
func (s StatusBar) buildRightSegments(compact bool) []statusSegment {
	barBg := lipgloss.NewStyle().Background(colorSurface)
	sep := barBg.Render("  ")
	var segments []statusSegment

	if s.Section == view.SectionExplorer && s.Symbol != "" {
		segments = append(segments, statusSegment{
			text:     sep + s.field("element", s.Symbol, compact),
			priority: 3,
		})
	}

	if s.Section != view.SectionExplorer {
		centuries := "all"
		if len(s.Centuries) > 0 {
			centuries = strings.Join(filter.Labels(s.Centuries), ",")
		}
		segments = append(segments, statusSegment{
			text:     sep + s.field("centuries", centuries, compact),
			priority: 1,
		})
	}

	if s.Section == view.SectionTimeline {
		grouping := "epoch"
		if !s.GroupByEpoch {
			grouping = "none"
		}
		segments = append(segments, statusSegment{
			text:     sep + s.field("group", grouping, compact),
			priority: 0,
		})
	}

	spectra := "on"
	if !s.ShowSpectra {
		spectra = "off"
	}
	segments = append(segments, statusSegment{
		text:     sep + s.field("spectra", spectra, compact),
		priority: 2,
	})

	if s.Reloads > 0 {
		segments = append(segments, statusSegment{
			text:     sep + styleStatusAlert.Background(colorSurface).Render("↻"),
			priority: -1,
		})
	}

	return segments
}

// field renders "label value", or just the value in compact mode.
func (s StatusBar) field(label, value string, compact bool) string {
	v := styleStatusValue.Background(colorSurface).Render(value)
	if compact {
		return v
	}
	barBg := lipgloss.NewStyle().Background(colorSurface)
	return styleStatusLabel.Background(colorSurface).Render(label) + barBg.Render(" ") + v
}

// joinSegments concatenates segment text with a trailing styled space.
// The trailing space carries the bar background to prevent gaps.
func joinSegments(segments []statusSegment) string {
	barBg := lipgloss.NewStyle().Background(colorSurface)
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.text)
	}
	b.WriteString(barBg.Render(" "))
	return b.String()
}

// dropSegments removes lowest-priority segments until the combined width fits within maxWidth.
func dropSegments(segments []statusSegment, maxWidth int) []statusSegment {
	result := make([]statusSegment, len(segments))
	copy(result, segments)

	for totalWidth(result) > maxWidth && len(result) > 0 {
		minIdx := 0
		minPri := result[0].priority
		for i, seg := range result {
			if seg.priority < minPri {
				minPri = seg.priority
				minIdx = i
			}
		}
		result = append(result[:minIdx], result[minIdx+1:]...)
	}
	return result
}

// totalWidth computes the rendered width of all segments plus trailing space.
func totalWidth(segments []statusSegment) int {
	w := 1 // trailing space from joinSegments
	for _, seg := range segments {
		w += lipgloss.Width(seg.text)
	}
	return w
}
