// Package view turns the registries into rendering-agnostic view models.
// Every builder is a pure function of the catalog and the selected options:
// nothing is cached between calls and nothing in the catalog is mutated.
package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/papapumpkin/spectra/internal/filter"
	"github.com/papapumpkin/spectra/internal/spectral"
)

// Sentinel errors for invalid selections.
var (
	ErrUnknownSection = errors.New("unknown section")
	ErrUnknownElement = errors.New("unknown element")
)

// Section identifies one of the dashboard views.
type Section int

const (
	// SectionTimeline shows discoveries on a time axis.
	SectionTimeline Section = iota
	// SectionEpochOverview shows element cards grouped by epoch.
	SectionEpochOverview
	// SectionSpectralAnalysis shows the mean spectral color of each epoch.
	SectionSpectralAnalysis
	// SectionExplorer shows a single element and its simulated spectrum.
	SectionExplorer
)

// sectionCount is the total number of sections.
const sectionCount = 4

var sectionLabels = [sectionCount]string{
	SectionTimeline:         "timeline",
	SectionEpochOverview:    "epochs",
	SectionSpectralAnalysis: "spectral",
	SectionExplorer:         "explorer",
}

var sectionTitles = [sectionCount]string{
	SectionTimeline:         "Discovery Timeline",
	SectionEpochOverview:    "Classification by Historical Epoch",
	SectionSpectralAnalysis: "RGB Spectra by Period",
	SectionExplorer:         "RGB Spectrum Explorer",
}

// Label returns the short selector label.
func (s Section) Label() string {
	if s.Valid() {
		return sectionLabels[s]
	}
	return "unknown"
}

// Title returns the heading shown above the section.
func (s Section) Title() string {
	if s.Valid() {
		return sectionTitles[s]
	}
	return "Unknown"
}

// String implements fmt.Stringer.
func (s Section) String() string { return s.Label() }

// Valid reports whether s is a known section.
func (s Section) Valid() bool { return s >= 0 && int(s) < sectionCount }

// Next cycles forward to the next section, wrapping around.
func (s Section) Next() Section {
	return Section((int(s) + 1) % sectionCount)
}

// Prev cycles backward to the previous section, wrapping around.
func (s Section) Prev() Section {
	return Section((int(s) + sectionCount - 1) % sectionCount)
}

// AllSections returns every section in selector order.
func AllSections() []Section {
	return []Section{SectionTimeline, SectionEpochOverview, SectionSpectralAnalysis, SectionExplorer}
}

// SectionFromNumber converts a 1-based number key to a section.
// Returns SectionTimeline and false when n is out of range.
func SectionFromNumber(n int) (Section, bool) {
	idx := n - 1
	if idx >= 0 && idx < sectionCount {
		return Section(idx), true
	}
	return SectionTimeline, false
}

// ParseSection accepts a selector label, case-insensitively.
func ParseSection(s string) (Section, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for i, l := range sectionLabels {
		if l == norm {
			return Section(i), nil
		}
	}
	return SectionTimeline, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownSection, s, strings.Join(sectionLabels[:], ", "))
}

// Options are the display controls shared by every view.
type Options struct {
	// Centuries restricts timeline and epoch cards to elements discovered
	// in these centuries. Empty means no restriction.
	Centuries []filter.Century
	// ShowSpectra enables card gradients and the explorer curve.
	ShowSpectra bool
	// GroupByEpoch splits the timeline into one series per epoch.
	GroupByEpoch bool
	// Spectrum is the sampling grid for synthesized curves.
	Spectrum spectral.Options
}

// DefaultOptions shows everything, grouped by epoch, on the visible range.
func DefaultOptions() Options {
	return Options{
		ShowSpectra:  true,
		GroupByEpoch: true,
		Spectrum:     spectral.DefaultOptions(),
	}
}

func (o Options) chain() *filter.Chain {
	return filter.ForCenturies(o.Centuries)
}

func (o Options) spectrumOpts() []spectral.Option {
	sp := o.Spectrum
	if sp.Samples == 0 && sp.MinNm == 0 && sp.MaxNm == 0 {
		sp = spectral.DefaultOptions()
	}
	return []spectral.Option{spectral.WithDomain(sp.MinNm, sp.MaxNm), spectral.WithSamples(sp.Samples)}
}
