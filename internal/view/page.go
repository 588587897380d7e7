package view

import "github.com/papapumpkin/spectra/internal/periodic"

// Page header and footer copy.
const (
	PageTitle    = "Periodic Table by Discovery Date"
	PageSubtitle = "Historical classification of the elements with their characteristic RGB spectra"
)

// PageFooter is printed below every page.
var PageFooter = []string{
	"Historical Periodic Table with RGB Spectra",
	"Elements classified by discovery date, with their characteristic spectral signatures",
	"Historical and spectral data compiled to study the evolution of chemistry",
}

// Panel is one rendered block of a page. Exactly one of the view fields is
// set, matching Kind.
type Panel struct {
	Kind     Section           `json:"-" toml:"-" yaml:"-"`
	Title    string            `json:"title" toml:"title" yaml:"title"`
	Timeline *Timeline         `json:"timeline,omitempty" toml:"timeline,omitempty" yaml:"timeline,omitempty"`
	Overview []EpochSection    `json:"overview,omitempty" toml:"overview,omitempty" yaml:"overview,omitempty"`
	Analysis *SpectralAnalysis `json:"analysis,omitempty" toml:"analysis,omitempty" yaml:"analysis,omitempty"`
	Explorer *Explorer         `json:"explorer,omitempty" toml:"explorer,omitempty" yaml:"explorer,omitempty"`
}

// Page is everything a presentation adapter needs for one render cycle.
type Page struct {
	Title    string   `json:"title" toml:"title" yaml:"title"`
	Subtitle string   `json:"subtitle" toml:"subtitle" yaml:"subtitle"`
	Section  string   `json:"section" toml:"section" yaml:"section"`
	Panels   []Panel  `json:"panels" toml:"panels" yaml:"panels"`
	Footer   []string `json:"footer" toml:"footer" yaml:"footer"`
}

// Selection is the state of the navigation controls for one render.
type Selection struct {
	Section Section
	// Symbol is the explorer's element. Empty selects the first element.
	Symbol  string
	Options Options
}

// DefaultSelection opens the timeline with default options.
func DefaultSelection() Selection {
	return Selection{Section: SectionTimeline, Options: DefaultOptions()}
}

// BuildPage composes the panels for sel.Section. The timeline and spectral
// analysis sections are followed by the epoch overview; the explorer stands
// alone. The only failure is an explorer symbol missing from the registry.
func BuildPage(cat *periodic.Catalog, sel Selection) (Page, error) {
	page := Page{
		Title:    PageTitle,
		Subtitle: PageSubtitle,
		Section:  sel.Section.Label(),
		Footer:   PageFooter,
	}

	switch sel.Section {
	case SectionTimeline:
		page.Panels = append(page.Panels, TimelinePanel(cat, sel.Options), OverviewPanel(cat, sel.Options))
	case SectionEpochOverview:
		page.Panels = append(page.Panels, OverviewPanel(cat, sel.Options))
	case SectionSpectralAnalysis:
		page.Panels = append(page.Panels, AnalysisPanel(cat), OverviewPanel(cat, sel.Options))
	case SectionExplorer:
		p, err := ExplorerPanel(cat, sel.Symbol, sel.Options)
		if err != nil {
			return Page{}, err
		}
		page.Panels = append(page.Panels, p)
	default:
		return Page{}, ErrUnknownSection
	}
	return page, nil
}

// TimelinePanel wraps BuildTimeline.
func TimelinePanel(cat *periodic.Catalog, opts Options) Panel {
	tl := BuildTimeline(cat, opts)
	return Panel{Kind: SectionTimeline, Title: SectionTimeline.Title(), Timeline: &tl}
}

// OverviewPanel wraps BuildEpochOverview.
func OverviewPanel(cat *periodic.Catalog, opts Options) Panel {
	return Panel{Kind: SectionEpochOverview, Title: SectionEpochOverview.Title(), Overview: BuildEpochOverview(cat, opts)}
}

// AnalysisPanel wraps BuildSpectralAnalysis.
func AnalysisPanel(cat *periodic.Catalog) Panel {
	sa := BuildSpectralAnalysis(cat)
	return Panel{Kind: SectionSpectralAnalysis, Title: SectionSpectralAnalysis.Title(), Analysis: &sa}
}

// ExplorerPanel wraps BuildExplorer, defaulting to the first element.
func ExplorerPanel(cat *periodic.Catalog, symbol string, opts Options) (Panel, error) {
	if symbol == "" {
		if choices := ElementChoices(cat); len(choices) > 0 {
			symbol = choices[0].Symbol
		}
	}
	ex, err := BuildExplorer(cat, SymbolFromChoice(symbol), opts)
	if err != nil {
		return Panel{}, err
	}
	return Panel{Kind: SectionExplorer, Title: SectionExplorer.Title(), Explorer: &ex}, nil
}
