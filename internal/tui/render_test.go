package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/spectra/internal/periodic"
	"github.com/papapumpkin/spectra/internal/view"
)

func buildPage(t *testing.T, sel view.Selection) view.Page {
	t.Helper()
	page, err := view.BuildPage(periodic.Default(), sel)
	if err != nil {
		t.Fatalf("BuildPage: %v", err)
	}
	return page
}

func TestRenderPage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		section view.Section
		symbol  string
		want    []string
	}{
		{
			name:    "timeline with overview",
			section: view.SectionTimeline,
			want:    []string{view.PageTitle, "Discovery Timeline", "not plotted: C", "Classification by Historical Epoch", "Antiquité", view.PageFooter[0]},
		},
		{
			name:    "spectral analysis",
			section: view.SectionSpectralAnalysis,
			want:    []string{"Evolution of Spectral Palettes", "Epoch Palette", "(50, 150, 127)", "2/9 (22%)"},
		},
		{
			name:    "explorer with signature",
			section: view.SectionExplorer,
			symbol:  "Na",
			want:    []string{"Na - Sodium", "589.0 nm, 589.6 nm", "380 nm", "780 nm", "peaks:"},
		},
		{
			name:    "explorer without signature",
			section: view.SectionExplorer,
			symbol:  "Fe",
			want:    []string{"Fe - Fer", view.NoSignatureNotice},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sel := view.DefaultSelection()
			sel.Section = tt.section
			sel.Symbol = tt.symbol
			got := renderPage(buildPage(t, sel), 100)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("rendered page missing %q", w)
				}
			}
		})
	}
}

func TestRenderOverviewWrapsCards(t *testing.T) {
	t.Parallel()
	sections := view.BuildEpochOverview(periodic.Default(), view.DefaultOptions())

	for _, width := range []int{CardWidth * 2, CardWidth * 6} {
		got := renderOverview(sections[:1], width)
		for _, line := range strings.Split(got, "\n") {
			if strings.ContainsAny(line, "╭│╰") && lipgloss.Width(line) > width {
				t.Errorf("width %d: card line is %d columns: %q", width, lipgloss.Width(line), line)
			}
		}
		for _, sym := range []string{"C", "Cu", "Pb"} {
			if !strings.Contains(got, sym) {
				t.Errorf("width %d: missing card %s", width, sym)
			}
		}
	}
}

func TestRenderOverviewEmptyEpoch(t *testing.T) {
	t.Parallel()
	sections := view.BuildEpochOverview(periodic.Default(), view.DefaultOptions())
	sections[0].Rows = nil

	got := renderOverview(sections[:1], 100)
	if !strings.Contains(got, "no elements in the selected centuries") {
		t.Errorf("expected empty-epoch hint, got %q", got)
	}
}
