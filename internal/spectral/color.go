// Package spectral resolves display colors for elements and synthesizes the
// illustrative emission spectra shown in the explorer.
package spectral

import "github.com/papapumpkin/spectra/internal/periodic"

// Source records which rule produced a resolved color.
type Source int

const (
	// SourceSignature means the spectral registry supplied the color.
	SourceSignature Source = iota
	// SourceEpoch means the element's epoch default was used.
	SourceEpoch
	// SourceFallback means the symbol is unknown and gray was used.
	SourceFallback
)

// String returns a short label for the source.
func (s Source) String() string {
	switch s {
	case SourceSignature:
		return "signature"
	case SourceEpoch:
		return "epoch"
	case SourceFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// epochDefaults are the colors used for elements without a signature.
var epochDefaults = map[periodic.Epoch]periodic.RGB{
	periodic.EpochAntiquity:          {R: 245, G: 222, B: 179},
	periodic.EpochMiddleAges:         {R: 222, G: 184, B: 135},
	periodic.EpochRenaissance:        {R: 244, G: 164, B: 96},
	periodic.EpochChemicalRevolution: {R: 205, G: 133, B: 63},
	periodic.EpochSpectroscopic:      {R: 210, G: 105, B: 30},
	periodic.EpochModern:             {R: 160, G: 82, B: 45},
}

// EpochDefault returns the fallback color for elements of epoch e.
func EpochDefault(e periodic.Epoch) (periodic.RGB, bool) {
	c, ok := epochDefaults[e]
	return c, ok
}

// Resolution is a resolved color together with the rule that produced it.
type Resolution struct {
	Color  periodic.RGB
	Source Source
}

// Resolve picks the display color for symbol: the spectral signature if
// there is one, else the element's epoch default, else gray.
func Resolve(cat *periodic.Catalog, symbol string) Resolution {
	if sig, ok := cat.Signature(symbol); ok {
		return Resolution{Color: sig.RGB, Source: SourceSignature}
	}
	if el, ok := cat.Element(symbol); ok {
		if c, ok := EpochDefault(el.Epoch); ok {
			return Resolution{Color: c, Source: SourceEpoch}
		}
	}
	return Resolution{Color: periodic.Gray, Source: SourceFallback}
}

// ResolveColor is Resolve without the source.
func ResolveColor(cat *periodic.Catalog, symbol string) periodic.RGB {
	return Resolve(cat, symbol).Color
}

// MeanColor averages each channel across colors, truncating toward zero.
// An empty slice yields black.
func MeanColor(colors []periodic.RGB) periodic.RGB {
	if len(colors) == 0 {
		return periodic.RGB{}
	}
	var r, g, b int
	for _, c := range colors {
		r += int(c.R)
		g += int(c.G)
		b += int(c.B)
	}
	n := len(colors)
	return periodic.RGB{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)}
}
