// Package ui prints pages, spectra and status lines for non-interactive use.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/papapumpkin/spectra/internal/ansi"
	"github.com/papapumpkin/spectra/internal/chart"
	"github.com/papapumpkin/spectra/internal/periodic"
	"github.com/papapumpkin/spectra/internal/spectral"
	"github.com/papapumpkin/spectra/internal/view"
)

// DefaultWidth is used when the caller does not know the terminal width.
const DefaultWidth = 80

// Card bar width in the epoch overview.
const cardBarWidth = 6

// Printer writes rendered pages to out and status lines to err. Colors are
// emitted only when enabled.
type Printer struct {
	out     io.Writer
	err     io.Writer
	color   bool
	verbose bool
}

// New returns a printer on stdout/stderr, with color when stdout is a
// terminal.
func New() *Printer {
	return &Printer{
		out:   os.Stdout,
		err:   os.Stderr,
		color: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}
}

// NewWithWriters returns a printer on the given writers.
func NewWithWriters(out, err io.Writer, color bool) *Printer {
	return &Printer{out: out, err: err, color: color}
}

// SetVerbose turns verbose output on or off.
func (p *Printer) SetVerbose(v bool) { p.verbose = v }

func (p *Printer) style(code, s string) string {
	if !p.color {
		return s
	}
	return code + s + ansi.Reset
}

// paint is the chart.Painter for this printer.
func (p *Printer) paint(c periodic.RGB, s string) string {
	if !p.color {
		return s
	}
	return ansi.Paint(c.R, c.G, c.B, s)
}

// Error prints an error line to stderr.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.err, "%s%s\n", p.style(ansi.Red+ansi.Bold, "error: "), msg)
}

// Info prints a dim status line to stderr.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.err, p.style(ansi.Dim, msg))
}

// Success prints a checkmarked line to stderr.
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.err, p.style(ansi.Green+ansi.Bold, "✓ ")+msg)
}

// Warn prints a warning line to stderr.
func (p *Printer) Warn(msg string) {
	fmt.Fprintln(p.err, p.style(ansi.Yellow+ansi.Bold, "⚠ ")+msg)
}

// Verbose prints only when verbose output is on.
func (p *Printer) Verbose(format string, args ...any) {
	if !p.verbose {
		return
	}
	fmt.Fprintln(p.err, p.style(ansi.Dim, fmt.Sprintf(format, args...)))
}

// Page renders a full page: header, each panel, and the footer.
func (p *Printer) Page(page view.Page, width int) {
	if width <= 0 {
		width = DefaultWidth
	}
	w := p.out
	fmt.Fprintln(w, p.style(ansi.Bold+ansi.Cyan, page.Title))
	fmt.Fprintln(w, p.style(ansi.Dim, page.Subtitle))
	fmt.Fprintln(w, rule(width))

	for _, panel := range page.Panels {
		fmt.Fprintln(w)
		fmt.Fprintln(w, p.style(ansi.Bold, panel.Title))
		switch {
		case panel.Timeline != nil:
			p.timeline(*panel.Timeline, width)
		case panel.Overview != nil:
			p.overview(panel.Overview)
		case panel.Analysis != nil:
			p.analysis(*panel.Analysis)
		case panel.Explorer != nil:
			p.explorer(*panel.Explorer, width)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule(width))
	for _, line := range page.Footer {
		fmt.Fprintln(w, p.style(ansi.Dim, line))
	}
}

func rule(width int) string {
	return strings.Repeat("─", width)
}

func (p *Printer) timeline(tl view.Timeline, width int) {
	w := p.out
	fmt.Fprintln(w, p.style(ansi.Dim, tl.Title))
	for _, row := range chart.Timeline(tl, width, p.paint) {
		fmt.Fprintln(w, row)
	}
	for _, s := range tl.Series {
		marks := make([]string, len(s.Points))
		for i, pt := range s.Points {
			marks[i] = p.paint(pt.Color, pt.Symbol) + " " + pt.YearLabel
		}
		fmt.Fprintf(w, "  %s: %s\n", p.paint(s.Color, s.Name), strings.Join(marks, ", "))
	}
	if len(tl.Excluded) > 0 {
		fmt.Fprintln(w, p.style(ansi.Dim, "  not plotted: "+strings.Join(tl.Excluded, ", ")))
	}
}

func (p *Printer) overview(sections []view.EpochSection) {
	w := p.out
	for _, sec := range sections {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s %s %s\n",
			chart.Bar(sec.Color, 2, p.paint),
			p.style(ansi.Bold, sec.Name),
			p.style(ansi.Dim, "("+sec.Period+")"))
		fmt.Fprintln(w, "   "+p.style(ansi.Dim, sec.Description))
		for i, row := range sec.Rows {
			if i > 0 {
				fmt.Fprintln(w)
			}
			for _, c := range row.Cards {
				fmt.Fprintf(w, "   %s %-2s %-14s %-9s %s\n",
					p.cardBar(c), c.Symbol, c.Name, c.Discovered, c.Discoverer)
			}
		}
	}
}

func (p *Printer) cardBar(c view.Card) string {
	if c.Gradient == nil {
		return chart.Bar(c.Color, cardBarWidth, p.paint)
	}
	return chart.Gradient(*c.Gradient, cardBarWidth, p.paint)
}

func (p *Printer) analysis(sa view.SpectralAnalysis) {
	w := p.out
	fmt.Fprintln(w, p.style(ansi.Dim, sa.ChartTitle))
	if len(sa.Swatches) == 0 {
		fmt.Fprintln(w, p.style(ansi.Dim, "  no epoch has spectral data"))
		return
	}
	fmt.Fprintln(w, "  "+chart.Swatches(sa.Swatches, 4, p.paint))
	fmt.Fprintln(w)
	fmt.Fprintln(w, p.style(ansi.Bold, sa.Title))
	for _, sw := range sa.Swatches {
		fmt.Fprintf(w, "  %s %-20s %-17s %-16s %s of %s with a spectrum\n",
			chart.Bar(sw.Mean, 4, p.paint),
			sw.Name,
			sw.Period,
			sw.Mean.String(),
			sw.Coverage(),
			humanize.FormatFloat("#,###.", sw.Ratio()*100)+"%")
	}
}

func (p *Printer) explorer(ex view.Explorer, width int) {
	w := p.out
	fmt.Fprintf(w, "%s %s\n", chart.Bar(ex.Color, 2, p.paint), p.style(ansi.Bold, ex.Symbol+" - "+ex.Name))
	fmt.Fprintf(w, "  discovered:  %s\n", ex.Discovered)
	fmt.Fprintf(w, "  discoverer:  %s\n", ex.Discoverer)
	fmt.Fprintf(w, "  epoch:       %s\n", ex.Epoch)
	fmt.Fprintf(w, "  color:       %s %s (%s)\n", ex.Color.String(), ex.Color.Hex(), ex.ColorSource)
	if ex.HasSignature() {
		fmt.Fprintf(w, "  dominant:    %s\n", ex.Spectrum.Dominant)
		fmt.Fprintf(w, "  lines:       %s\n", ex.Spectrum.JoinedLines())
	} else {
		fmt.Fprintln(w, "  "+p.style(ansi.Yellow, ex.Notice))
	}
	if len(ex.Curve) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, p.paint(ex.Color, chart.Spectrum(ex.Curve, width, 10, ex.CurveTitle)))
	if len(ex.Peaks) > 0 {
		peaks := make([]string, len(ex.Peaks))
		for i, pk := range ex.Peaks {
			peaks[i] = fmt.Sprintf("%.1f nm (%.2f)", pk.Nm, pk.Intensity)
		}
		fmt.Fprintln(w, "  peaks: "+strings.Join(peaks, ", "))
	}
}

// Spectrum renders a standalone curve, as printed by the spectrum command.
func (p *Printer) Spectrum(title string, c periodic.RGB, samples []spectral.Sample, width int) {
	if width <= 0 {
		width = DefaultWidth
	}
	fmt.Fprintln(p.out, p.paint(c, chart.Spectrum(samples, width, 12, title)))
}

// Audit prints registry findings, grouped by kind, to stdout.
func (p *Printer) Audit(findings []periodic.Finding) {
	if len(findings) == 0 {
		p.Success("registries are consistent")
		return
	}
	counts := make(map[periodic.FindingKind]int)
	for _, f := range findings {
		counts[f.Kind]++
		fmt.Fprintf(p.out, "  %s %-16s %s\n", p.style(ansi.Yellow, "•"), f.Kind, f.Error())
	}
	fmt.Fprintln(p.out)
	fmt.Fprintf(p.out, "%s finding(s):", humanize.Comma(int64(len(findings))))
	for k := periodic.FindingUnknownSymbol; k <= periodic.FindingOrphanSignature; k++ {
		if counts[k] > 0 {
			fmt.Fprintf(p.out, " %s=%d", k, counts[k])
		}
	}
	fmt.Fprintln(p.out)
}
