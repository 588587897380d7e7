package view

import (
	"fmt"

	"github.com/papapumpkin/spectra/internal/periodic"
	"github.com/papapumpkin/spectra/internal/spectral"
)

// Swatch is an epoch's mean spectral color.
type Swatch struct {
	Epoch        periodic.Epoch `json:"-" toml:"-" yaml:"-"`
	Name         string         `json:"name" toml:"name" yaml:"name"`
	Period       string         `json:"period" toml:"period" yaml:"period"`
	Mean         periodic.RGB   `json:"mean" toml:"mean" yaml:"mean"`
	WithSpectrum int            `json:"with_spectrum" toml:"with_spectrum" yaml:"with_spectrum"`
	Total        int            `json:"total" toml:"total" yaml:"total"`
}

// Ratio is the fraction of members that have a signature.
func (s Swatch) Ratio() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.WithSpectrum) / float64(s.Total)
}

// Coverage renders the member ratio as "n/total".
func (s Swatch) Coverage() string {
	return fmt.Sprintf("%d/%d", s.WithSpectrum, s.Total)
}

// ScatterPoint is one marker in the epoch color comparison chart.
type ScatterPoint struct {
	X     int          `json:"x" toml:"x" yaml:"x"`
	Color periodic.RGB `json:"color" toml:"color" yaml:"color"`
	Label string       `json:"label" toml:"label" yaml:"label"`
}

// SpectralAnalysis compares epochs by the mean color of their members'
// signatures.
type SpectralAnalysis struct {
	Title      string         `json:"title" toml:"title" yaml:"title"`
	ChartTitle string         `json:"chart_title" toml:"chart_title" yaml:"chart_title"`
	Swatches   []Swatch       `json:"swatches" toml:"swatches" yaml:"swatches"`
	Points     []ScatterPoint `json:"points" toml:"points" yaml:"points"`
}

// BuildSpectralAnalysis emits one swatch per epoch that has at least one
// member with a signature, in registry order. The mean is taken over those
// members only and truncated per channel. Display filters do not apply.
func BuildSpectralAnalysis(cat *periodic.Catalog) SpectralAnalysis {
	sa := SpectralAnalysis{
		Title:      "Epoch Palette",
		ChartTitle: "Evolution of Spectral Palettes",
	}
	for _, ei := range cat.Epochs() {
		members := cat.Members(ei.Epoch)
		var colors []periodic.RGB
		for _, el := range members {
			if _, ok := cat.Signature(el.Symbol); ok {
				colors = append(colors, spectral.ResolveColor(cat, el.Symbol))
			}
		}
		if len(colors) == 0 {
			continue
		}
		sw := Swatch{
			Epoch:        ei.Epoch,
			Name:         ei.Name(),
			Period:       ei.Period,
			Mean:         spectral.MeanColor(colors),
			WithSpectrum: len(colors),
			Total:        len(members),
		}
		sa.Swatches = append(sa.Swatches, sw)
		sa.Points = append(sa.Points, ScatterPoint{
			X:     len(sa.Points),
			Color: sw.Mean,
			Label: fmt.Sprintf("%s\nRGB: %s", sw.Name, sw.Mean),
		})
	}
	return sa
}
