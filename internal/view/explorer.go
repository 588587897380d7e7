package view

import (
	"fmt"
	"strings"

	"github.com/papapumpkin/spectra/internal/periodic"
	"github.com/papapumpkin/spectra/internal/spectral"
)

// NoSignatureNotice is shown in place of spectral data for elements without
// a signature.
const NoSignatureNotice = "Specific RGB spectrum not defined"

// Choice is one entry of the explorer's element selector.
type Choice struct {
	Symbol string `json:"symbol" toml:"symbol" yaml:"symbol"`
	Label  string `json:"label" toml:"label" yaml:"label"`
}

// ElementChoices lists every element as "Sym - Name" in registry order.
func ElementChoices(cat *periodic.Catalog) []Choice {
	els := cat.Elements()
	out := make([]Choice, len(els))
	for i, el := range els {
		out[i] = Choice{Symbol: el.Symbol, Label: el.Symbol + " - " + el.Name}
	}
	return out
}

// SymbolFromChoice extracts the symbol from a "Sym - Name" label. A bare
// symbol is returned unchanged.
func SymbolFromChoice(label string) string {
	sym, _, _ := strings.Cut(label, " - ")
	return strings.TrimSpace(sym)
}

// SpectrumInfo is the signature block of the explorer.
type SpectrumInfo struct {
	RGB        periodic.RGB `json:"rgb" toml:"rgb" yaml:"rgb"`
	DominantNm float64      `json:"dominant_nm" toml:"dominant_nm" yaml:"dominant_nm"`
	Dominant   string       `json:"dominant" toml:"dominant" yaml:"dominant"`
	Lines      []string     `json:"lines" toml:"lines" yaml:"lines"`
}

// JoinedLines renders the emission lines comma separated.
func (s SpectrumInfo) JoinedLines() string {
	return strings.Join(s.Lines, ", ")
}

// Explorer is the single-element detail view.
type Explorer struct {
	Symbol      string            `json:"symbol" toml:"symbol" yaml:"symbol"`
	Name        string            `json:"name" toml:"name" yaml:"name"`
	Year        int               `json:"year" toml:"year" yaml:"year"`
	Discovered  string            `json:"discovered" toml:"discovered" yaml:"discovered"`
	Discoverer  string            `json:"discoverer" toml:"discoverer" yaml:"discoverer"`
	Epoch       string            `json:"epoch" toml:"epoch" yaml:"epoch"`
	Color       periodic.RGB      `json:"color" toml:"color" yaml:"color"`
	ColorSource string            `json:"color_source" toml:"color_source" yaml:"color_source"`
	Spectrum    *SpectrumInfo     `json:"spectrum,omitempty" toml:"spectrum,omitempty" yaml:"spectrum,omitempty"`
	Notice      string            `json:"notice,omitempty" toml:"notice,omitempty" yaml:"notice,omitempty"`
	CurveTitle  string            `json:"curve_title" toml:"curve_title" yaml:"curve_title"`
	Curve       []spectral.Sample `json:"curve,omitempty" toml:"curve,omitempty" yaml:"curve,omitempty"`
	Peaks       []spectral.Sample `json:"peaks,omitempty" toml:"peaks,omitempty" yaml:"peaks,omitempty"`
}

// HasSignature reports whether the element has spectral data.
func (e Explorer) HasSignature() bool { return e.Spectrum != nil }

// BuildExplorer describes one element. Elements without a signature get the
// epoch color and NoSignatureNotice; their curve is flat. The curve is
// omitted entirely when ShowSpectra is off. An unknown symbol is an
// ErrUnknownElement.
func BuildExplorer(cat *periodic.Catalog, symbol string, opts Options) (Explorer, error) {
	el, ok := cat.Element(symbol)
	if !ok {
		return Explorer{}, fmt.Errorf("%w: %q", ErrUnknownElement, symbol)
	}

	res := spectral.Resolve(cat, el.Symbol)
	ex := Explorer{
		Symbol:      el.Symbol,
		Name:        el.Name,
		Year:        el.Year,
		Discovered:  DiscoveredLabel(el.Year),
		Discoverer:  el.Discoverer,
		Epoch:       el.Epoch.Name(),
		Color:       res.Color,
		ColorSource: res.Source.String(),
		CurveTitle:  "Simulated spectrum of " + el.Symbol,
	}

	if sig, ok := cat.Signature(el.Symbol); ok {
		ex.Spectrum = &SpectrumInfo{
			RGB:        sig.RGB,
			DominantNm: sig.DominantNm,
			Dominant:   fmt.Sprintf("%.1f nm", sig.DominantNm),
			Lines:      sig.Lines,
		}
	} else {
		ex.Notice = NoSignatureNotice
	}

	if opts.ShowSpectra {
		ex.Curve = spectral.Synthesize(cat, el.Symbol, opts.spectrumOpts()...)
		for _, i := range spectral.Peaks(ex.Curve) {
			ex.Peaks = append(ex.Peaks, ex.Curve[i])
		}
	}
	return ex, nil
}
