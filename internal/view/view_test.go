package view

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/spectra/internal/filter"
	"github.com/papapumpkin/spectra/internal/periodic"
)

func TestParseSection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Section
		wantErr bool
	}{
		{"timeline", SectionTimeline, false},
		{"EPOCHS", SectionEpochOverview, false},
		{" spectral ", SectionSpectralAnalysis, false},
		{"explorer", SectionExplorer, false},
		{"charts", SectionTimeline, true},
		{"", SectionTimeline, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseSection(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownSection) {
					t.Fatalf("ParseSection(%q) error = %v, want ErrUnknownSection", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSection(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSection(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSectionCycle(t *testing.T) {
	t.Parallel()

	if got := SectionExplorer.Next(); got != SectionTimeline {
		t.Errorf("Explorer.Next() = %v, want timeline", got)
	}
	if got := SectionTimeline.Prev(); got != SectionExplorer {
		t.Errorf("Timeline.Prev() = %v, want explorer", got)
	}
	if s, ok := SectionFromNumber(3); !ok || s != SectionSpectralAnalysis {
		t.Errorf("SectionFromNumber(3) = %v, %v", s, ok)
	}
	if _, ok := SectionFromNumber(5); ok {
		t.Error("SectionFromNumber(5) should fail")
	}
}

func TestBuildTimeline(t *testing.T) {
	t.Parallel()
	cat := periodic.Default()

	tl := BuildTimeline(cat, DefaultOptions())
	if diff := cmp.Diff([]string{"C"}, tl.Excluded); diff != "" {
		t.Errorf("excluded mismatch (-want +got):\n%s", diff)
	}
	pts := tl.Points()
	if len(pts) != len(cat.Elements())-1 {
		t.Fatalf("plotted %d points, want %d", len(pts), len(cat.Elements())-1)
	}
	if tl.MinX != 0 || tl.MaxX != 1939 {
		t.Errorf("axis = [%d, %d], want [0, 1939]", tl.MinX, tl.MaxX)
	}

	var cu TimelinePoint
	for _, p := range pts {
		if p.X < 0 {
			t.Errorf("%s plotted at negative x %d", p.Symbol, p.X)
		}
		if p.Symbol == "Cu" {
			cu = p
		}
	}
	if cu.X != 0 || cu.Year != -9000 || cu.YearLabel != "9000 BCE" {
		t.Errorf("Cu point = %+v, want x=0 year=-9000", cu)
	}
	if cu.Color != TimelinePalette[0] {
		t.Errorf("Cu color = %s, want the Antiquité palette entry", cu.Color)
	}

	if len(tl.Series) != 6 {
		t.Fatalf("grouped timeline has %d series, want 6", len(tl.Series))
	}
	if tl.Series[0].Name != "Antiquité" || len(tl.Series[0].Points) != 8 {
		t.Errorf("first series = %s with %d points", tl.Series[0].Name, len(tl.Series[0].Points))
	}
	if tl.Series[0].Color != TimelinePalette[0] {
		t.Errorf("first series color = %s", tl.Series[0].Color)
	}
	for _, s := range tl.Series {
		for _, p := range s.Points {
			if p.Color != s.Color {
				t.Errorf("%s in %s colored %s, want series color %s", p.Symbol, s.Name, p.Color, s.Color)
			}
		}
	}
}

func TestBuildTimelineUngrouped(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.GroupByEpoch = false
	tl := BuildTimeline(periodic.Default(), opts)
	if len(tl.Series) != 1 || tl.Series[0].Name != "all" {
		t.Fatalf("series = %+v, want a single 'all' series", tl.Series)
	}
	if first := tl.Series[0].Points[0].Symbol; first != "S" {
		t.Errorf("first point = %s, want S (registry order after C)", first)
	}
	for _, p := range tl.Series[0].Points {
		if p.Symbol == "Na" && p.Color != (periodic.RGB{R: 255, G: 255, B: 0}) {
			t.Errorf("ungrouped Na color = %s, want signature yellow", p.Color)
		}
		if p.Symbol == "Cu" && p.Color != (periodic.RGB{R: 0, G: 200, B: 0}) {
			t.Errorf("ungrouped Cu color = %s, want signature green", p.Color)
		}
	}
}

func TestBuildTimelineCenturyFilter(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Centuries = []filter.Century{filter.Century20}
	var got []string
	for _, p := range BuildTimeline(periodic.Default(), opts).Points() {
		got = append(got, p.Symbol)
	}
	if diff := cmp.Diff([]string{"Fr", "Tc"}, got); diff != "" {
		t.Errorf("20th century points mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildEpochOverview(t *testing.T) {
	t.Parallel()
	cat := periodic.Default()

	secs := BuildEpochOverview(cat, DefaultOptions())
	if len(secs) != 6 {
		t.Fatalf("got %d sections, want 6", len(secs))
	}

	ant := secs[0]
	if ant.Name != "Antiquité" || ant.Period != "Avant 500" {
		t.Errorf("first section = %s (%s)", ant.Name, ant.Period)
	}
	if len(ant.Rows) != 2 || len(ant.Rows[0].Cards) != 6 || len(ant.Rows[1].Cards) != 3 {
		t.Fatalf("Antiquité rows = %d, want 6+3 cards", len(ant.Rows))
	}
	cards := ant.Cards()
	var syms []string
	for _, c := range cards {
		syms = append(syms, c.Symbol)
	}
	if diff := cmp.Diff([]string{"C", "S", "Fe", "Cu", "Ag", "Sn", "Au", "Hg", "Pb"}, syms); diff != "" {
		t.Errorf("Antiquité cards mismatch (-want +got):\n%s", diff)
	}
	if cards[0].Discovered != "Antiquity" {
		t.Errorf("C discovered = %q, want Antiquity", cards[0].Discovered)
	}
	if cards[3].Gradient == nil || cards[3].Gradient.To != cards[3].Color {
		t.Errorf("Cu gradient = %+v, want ending at card color", cards[3].Gradient)
	}

	total := 0
	for _, s := range secs {
		total += len(s.Cards())
	}
	if total != len(cat.Elements()) {
		t.Errorf("overview shows %d cards, want every element (%d)", total, len(cat.Elements()))
	}
}

func TestBuildEpochOverviewOptions(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.ShowSpectra = false
	opts.Centuries = []filter.Century{filter.Century20}
	secs := BuildEpochOverview(periodic.Default(), opts)
	if len(secs) != 6 {
		t.Fatalf("filtered overview dropped headings: %d sections", len(secs))
	}
	for _, s := range secs {
		for _, c := range s.Cards() {
			if c.Gradient != nil {
				t.Errorf("%s has a gradient with spectra hidden", c.Symbol)
			}
		}
	}
	if n := len(secs[0].Cards()); n != 0 {
		t.Errorf("Antiquité shows %d cards under a 20th century filter", n)
	}
	if n := len(secs[5].Cards()); n != 2 {
		t.Errorf("modern epoch shows %d cards, want 2", n)
	}
}

func TestTruncateDiscoverer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"H. Davy", "H. Davy"},
		{"P. Janssen, J. N. Lockyer", "P. Janssen, J. N. Lo..."},
		{"Lord Rayleigh, W. Ramsay", "Lord Rayleigh, W. Ra..."},
		{"Chinois/Égyptiens", "Chinois/Égyptiens"},
		{"12345678901234567890", "12345678901234567890"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := TruncateDiscoverer(tt.in); got != tt.want {
				t.Errorf("TruncateDiscoverer(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuildSpectralAnalysis(t *testing.T) {
	t.Parallel()

	sa := BuildSpectralAnalysis(periodic.Default())
	want := []Swatch{
		{Epoch: periodic.EpochAntiquity, Name: "Antiquité", Period: "Avant 500", Mean: periodic.RGB{R: 50, G: 150, B: 127}, WithSpectrum: 2, Total: 9},
		{Epoch: periodic.EpochMiddleAges, Name: "Moyen-Âge", Period: "500-1500", Mean: periodic.RGB{R: 50, G: 50, B: 200}, WithSpectrum: 1, Total: 4},
		{Epoch: periodic.EpochChemicalRevolution, Name: "Révolution Chimique", Period: "1700-1800", Mean: periodic.RGB{R: 255, G: 100, B: 255}, WithSpectrum: 1, Total: 7},
		{Epoch: periodic.EpochSpectroscopic, Name: "Ère Spectroscopique", Period: "1800-1900", Mean: periodic.RGB{R: 197, G: 123, B: 95}, WithSpectrum: 9, Total: 11},
	}
	if diff := cmp.Diff(want, sa.Swatches); diff != "" {
		t.Errorf("swatches mismatch (-want +got):\n%s", diff)
	}
	if len(sa.Points) != len(sa.Swatches) {
		t.Fatalf("got %d points for %d swatches", len(sa.Points), len(sa.Swatches))
	}
	if !strings.Contains(sa.Points[0].Label, "RGB: (50, 150, 127)") {
		t.Errorf("point label = %q", sa.Points[0].Label)
	}
	if got := sa.Swatches[3].Coverage(); got != "9/11" {
		t.Errorf("Coverage() = %q, want 9/11", got)
	}
}

func TestBuildPage(t *testing.T) {
	t.Parallel()
	cat := periodic.Default()

	tests := []struct {
		section Section
		want    []Section
	}{
		{SectionTimeline, []Section{SectionTimeline, SectionEpochOverview}},
		{SectionEpochOverview, []Section{SectionEpochOverview}},
		{SectionSpectralAnalysis, []Section{SectionSpectralAnalysis, SectionEpochOverview}},
		{SectionExplorer, []Section{SectionExplorer}},
	}
	for _, tt := range tests {
		t.Run(tt.section.Label(), func(t *testing.T) {
			t.Parallel()
			sel := DefaultSelection()
			sel.Section = tt.section
			page, err := BuildPage(cat, sel)
			if err != nil {
				t.Fatalf("BuildPage: %v", err)
			}
			var kinds []Section
			for _, p := range page.Panels {
				kinds = append(kinds, p.Kind)
			}
			if diff := cmp.Diff(tt.want, kinds); diff != "" {
				t.Errorf("panels mismatch (-want +got):\n%s", diff)
			}
			if page.Title != PageTitle || len(page.Footer) != len(PageFooter) {
				t.Errorf("page chrome missing: %+v", page)
			}
		})
	}
}

func TestBuildPageExplorerDefaultsToFirstElement(t *testing.T) {
	t.Parallel()

	page, err := BuildPage(periodic.Default(), Selection{Section: SectionExplorer, Options: DefaultOptions()})
	if err != nil {
		t.Fatalf("BuildPage: %v", err)
	}
	if got := page.Panels[0].Explorer.Symbol; got != "C" {
		t.Errorf("default explorer symbol = %s, want C", got)
	}
}

func TestBuildPageErrors(t *testing.T) {
	t.Parallel()
	cat := periodic.Default()

	if _, err := BuildPage(cat, Selection{Section: Section(9)}); !errors.Is(err, ErrUnknownSection) {
		t.Errorf("bad section error = %v", err)
	}
	if _, err := BuildPage(cat, Selection{Section: SectionExplorer, Symbol: "Xx"}); !errors.Is(err, ErrUnknownElement) {
		t.Errorf("bad symbol error = %v", err)
	}
}

func TestBuildersDoNotMutateCatalog(t *testing.T) {
	t.Parallel()
	cat := periodic.Default()

	before := cat.Elements()
	for _, s := range AllSections() {
		sel := DefaultSelection()
		sel.Section = s
		if _, err := BuildPage(cat, sel); err != nil {
			t.Fatalf("BuildPage(%s): %v", s, err)
		}
	}
	if diff := cmp.Diff(before, cat.Elements()); diff != "" {
		t.Errorf("catalog changed (-before +after):\n%s", diff)
	}
}
