// Package chart rasterizes view models into plain terminal text. Color is
// applied through a Painter so the same layout serves the ANSI printer and
// the lipgloss dashboard.
package chart

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"

	"github.com/papapumpkin/spectra/internal/periodic"
	"github.com/papapumpkin/spectra/internal/spectral"
	"github.com/papapumpkin/spectra/internal/view"
)

// Glyphs used by the rasterizers.
const (
	Block  = "█"
	Marker = "●"
	Blank  = " "
)

// Layout constants.
const (
	// LabelWidth is the series label column of the timeline strip.
	LabelWidth = 20

	// axisMargin approximates the y-axis label column asciigraph prepends.
	axisMargin = 8

	minPlotWidth = 10
)

// Painter colors a run of text. It must not change the visible width of s.
type Painter func(c periodic.RGB, s string) string

// Plain is a Painter that leaves text uncolored.
func Plain(_ periodic.RGB, s string) string { return s }

// Spectrum draws the sampled curve as a line plot width columns wide
// (including the y-axis labels) and height rows tall, followed by a
// wavelength axis. Intensities are plotted on a fixed [0, 1] scale.
func Spectrum(samples []spectral.Sample, width, height int, caption string) string {
	if len(samples) == 0 {
		return ""
	}
	plotWidth := max(width-axisMargin, minPlotWidth)
	opts := []asciigraph.Option{
		asciigraph.Width(plotWidth),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Precision(2),
	}
	if height > 0 {
		opts = append(opts, asciigraph.Height(height))
	}
	if caption != "" {
		opts = append(opts, asciigraph.Caption(caption))
	}
	plot := asciigraph.Plot(spectral.Intensities(samples), opts...)

	lo := formatNm(samples[0].Nm)
	hi := formatNm(samples[len(samples)-1].Nm)
	gap := max(plotWidth-utf8.RuneCountInString(lo)-utf8.RuneCountInString(hi), 1)
	axis := strings.Repeat(Blank, axisMargin) + lo + strings.Repeat(Blank, gap) + hi
	return plot + "\n" + axis
}

func formatNm(nm float64) string {
	return strconv.FormatFloat(nm, 'f', 0, 64) + " nm"
}

// Column maps x in [lo, hi] onto [0, width). A degenerate range maps to 0.
func Column(x, lo, hi, width int) int {
	if width <= 1 || hi <= lo {
		return 0
	}
	col := (x - lo) * (width - 1) / (hi - lo)
	return min(max(col, 0), width-1)
}

// Timeline renders one row per series with a marker at each discovery,
// scaled over the timeline's [MinX, MaxX], followed by an axis row showing
// the range. Later points overwrite earlier ones in the same column.
func Timeline(tl view.Timeline, width int, paint Painter) []string {
	if paint == nil {
		paint = Plain
	}
	plotWidth := max(width-LabelWidth-1, minPlotWidth)

	rows := make([]string, 0, len(tl.Series)+1)
	for _, s := range tl.Series {
		cells := make([]string, plotWidth)
		for i := range cells {
			cells[i] = Blank
		}
		for _, p := range s.Points {
			cells[Column(p.X, tl.MinX, tl.MaxX, plotWidth)] = paint(p.Color, Marker)
		}
		rows = append(rows, paint(s.Color, padLabel(s.Name))+" "+strings.Join(cells, ""))
	}

	lo, hi := strconv.Itoa(tl.MinX), strconv.Itoa(tl.MaxX)
	gap := max(plotWidth-len(lo)-len(hi), 1)
	rows = append(rows, strings.Repeat(Blank, LabelWidth+1)+lo+strings.Repeat(Blank, gap)+hi)
	return rows
}

func padLabel(s string) string {
	n := utf8.RuneCountInString(s)
	if n > LabelWidth {
		return string([]rune(s)[:LabelWidth])
	}
	return s + strings.Repeat(Blank, LabelWidth-n)
}

// Swatches renders each swatch's mean color as a block cell wide, separated
// by single spaces.
func Swatches(sw []view.Swatch, cell int, paint Painter) string {
	if paint == nil {
		paint = Plain
	}
	parts := make([]string, len(sw))
	for i, s := range sw {
		parts[i] = paint(s.Mean, strings.Repeat(Block, max(cell, 1)))
	}
	return strings.Join(parts, Blank)
}

// Gradient renders g as a bar of width blocks, blending from From to To.
func Gradient(g view.Gradient, width int, paint Painter) string {
	if paint == nil {
		paint = Plain
	}
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	for i := range width {
		t := 1.0
		if width > 1 {
			t = float64(i) / float64(width-1)
		}
		b.WriteString(paint(g.From.Blend(g.To, t), Block))
	}
	return b.String()
}

// Bar renders a solid block bar of the given color.
func Bar(c periodic.RGB, width int, paint Painter) string {
	if paint == nil {
		paint = Plain
	}
	if width <= 0 {
		return ""
	}
	return paint(c, strings.Repeat(Block, width))
}
