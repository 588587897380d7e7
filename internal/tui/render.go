package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/papapumpkin/spectra/internal/chart"
	"github.com/papapumpkin/spectra/internal/view"
)

// gradientWidth is the width of the gradient strip inside a card.
const gradientWidth = CardWidth - 4

// spectrumHeight is the plot height of the explorer curve.
const spectrumHeight = 10

// renderPage renders every panel of page for the content area.
func renderPage(page view.Page, width int) string {
	var blocks []string
	blocks = append(blocks,
		stylePageTitle.Render(page.Title),
		styleDim.Render(TruncateWithEllipsis(page.Subtitle, width)),
	)
	for _, p := range page.Panels {
		blocks = append(blocks, "", stylePanelTitle.Render(p.Title))
		switch {
		case p.Timeline != nil:
			blocks = append(blocks, renderTimeline(*p.Timeline, width))
		case p.Overview != nil:
			blocks = append(blocks, renderOverview(p.Overview, width))
		case p.Analysis != nil:
			blocks = append(blocks, renderAnalysis(*p.Analysis, width))
		case p.Explorer != nil:
			blocks = append(blocks, renderExplorer(*p.Explorer, width))
		}
	}
	blocks = append(blocks, "")
	for _, line := range page.Footer {
		blocks = append(blocks, styleDim.Render(TruncateWithEllipsis(line, width)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func renderTimeline(tl view.Timeline, width int) string {
	rows := []string{styleDim.Render(tl.Title)}
	rows = append(rows, chart.Timeline(tl, width, paint)...)
	if len(tl.Excluded) > 0 {
		rows = append(rows, styleDim.Render("not plotted: "+strings.Join(tl.Excluded, ", ")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderOverview(sections []view.EpochSection, width int) string {
	perLine := cardsPerLine(width, view.CardsPerRow)
	var blocks []string
	for _, sec := range sections {
		heading := chart.Bar(sec.Color, 2, paint) + " " +
			lipgloss.NewStyle().Foreground(rgbColor(sec.Color)).Bold(true).Render(sec.Name) + " " +
			styleDim.Render("("+sec.Period+")")
		blocks = append(blocks, "", heading, styleText.Render(TruncateWithEllipsis(sec.Description, width)))

		cards := sec.Cards()
		if len(cards) == 0 {
			blocks = append(blocks, styleDim.Render("  (no elements in the selected centuries)"))
			continue
		}
		for start := 0; start < len(cards); start += perLine {
			end := min(start+perLine, len(cards))
			rendered := make([]string, 0, end-start)
			for _, c := range cards[start:end] {
				rendered = append(rendered, renderCard(c))
			}
			blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// renderCard renders one element card with a border in the element color.
func renderCard(c view.Card) string {
	inner := CardWidth - 4
	symbol := lipgloss.NewStyle().Foreground(rgbColor(c.Color)).Bold(true).Render(c.Symbol)
	lines := []string{
		symbol + " " + styleText.Render(TruncateWithEllipsis(c.Name, inner-len(c.Symbol)-1)),
		styleDim.Render(c.Discovered),
		styleDim.Render(TruncateWithEllipsis(c.Discoverer, inner)),
	}
	if c.Gradient != nil {
		lines = append(lines, chart.Gradient(*c.Gradient, gradientWidth, paint))
	} else {
		lines = append(lines, chart.Bar(c.Color, gradientWidth, paint))
	}
	return styleCard.
		BorderForeground(rgbColor(c.Color)).
		Width(CardWidth - 2).
		Render(strings.Join(lines, "\n"))
}

func renderAnalysis(sa view.SpectralAnalysis, width int) string {
	rows := []string{styleDim.Render(sa.ChartTitle)}
	if len(sa.Swatches) == 0 {
		rows = append(rows, styleDim.Render("no epoch has spectral data"))
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}
	rows = append(rows, "  "+chart.Swatches(sa.Swatches, 4, paint))
	if len(sa.Points) > 0 {
		rows = append(rows, renderScatter(sa.Points, width))
	}
	rows = append(rows, "", stylePanelTitle.Render(sa.Title))
	for _, sw := range sa.Swatches {
		line := fmt.Sprintf("%s %-20s %-17s %-16s %s (%s)",
			chart.Bar(sw.Mean, 4, paint),
			sw.Name,
			sw.Period,
			sw.Mean.String(),
			sw.Coverage(),
			humanize.FormatFloat("#,###.", sw.Ratio()*100)+"%")
		rows = append(rows, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderScatter places one marker per point along a single row.
func renderScatter(points []view.ScatterPoint, width int) string {
	cols := max(width-4, len(points))
	cells := make([]string, cols)
	for i := range cells {
		cells[i] = " "
	}
	hi := points[len(points)-1].X
	for _, p := range points {
		cells[chart.Column(p.X, 0, hi, cols)] = paint(p.Color, chart.Marker)
	}
	return "  " + strings.Join(cells, "")
}

func renderExplorer(ex view.Explorer, width int) string {
	rows := []string{
		chart.Bar(ex.Color, 2, paint) + " " + stylePageTitle.Render(ex.Symbol+" - "+ex.Name),
		field("discovered", ex.Discovered),
		field("discoverer", ex.Discoverer),
		field("epoch", ex.Epoch),
		field("color", fmt.Sprintf("%s %s (%s)", ex.Color.String(), ex.Color.Hex(), ex.ColorSource)),
	}
	if ex.HasSignature() {
		rows = append(rows,
			field("dominant", ex.Spectrum.Dominant),
			field("lines", ex.Spectrum.JoinedLines()),
		)
	} else {
		rows = append(rows, styleNotice.Render(ex.Notice))
	}
	if len(ex.Curve) > 0 {
		rows = append(rows, "", paint(ex.Color, chart.Spectrum(ex.Curve, width, spectrumHeight, ex.CurveTitle)))
		if len(ex.Peaks) > 0 {
			peaks := make([]string, len(ex.Peaks))
			for i, pk := range ex.Peaks {
				peaks[i] = fmt.Sprintf("%.1f nm", pk.Nm)
			}
			rows = append(rows, field("peaks", strings.Join(peaks, ", ")))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func field(label, value string) string {
	return styleDim.Render(fmt.Sprintf("%-11s", label+":")) + " " + styleText.Render(value)
}
