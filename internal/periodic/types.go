// Package periodic holds the embedded element, epoch, and spectral registries
// and a read-only Catalog over them. All data is built once at package
// initialization and never mutated afterwards.
package periodic

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Epoch identifies a historical discovery period. Values are ordered as in
// the epoch registry.
type Epoch int

const (
	// EpochAntiquity covers elements known before 500.
	EpochAntiquity Epoch = iota
	// EpochMiddleAges covers 500-1500.
	EpochMiddleAges
	// EpochRenaissance covers 1500-1700.
	EpochRenaissance
	// EpochChemicalRevolution covers 1700-1800.
	EpochChemicalRevolution
	// EpochSpectroscopic covers 1800-1900, the era of flame spectroscopy.
	EpochSpectroscopic
	// EpochModern covers 1900 to today.
	EpochModern
)

// epochCount is the number of epochs in the registry.
const epochCount = 6

// epochNames are the dataset labels for each epoch.
var epochNames = [epochCount]string{
	EpochAntiquity:          "Antiquité",
	EpochMiddleAges:         "Moyen-Âge",
	EpochRenaissance:        "Renaissance",
	EpochChemicalRevolution: "Révolution Chimique",
	EpochSpectroscopic:      "Ère Spectroscopique",
	EpochModern:             "Période Moderne",
}

// Name returns the dataset label for the epoch.
func (e Epoch) Name() string {
	if e.Valid() {
		return epochNames[e]
	}
	return "unknown"
}

// String implements fmt.Stringer.
func (e Epoch) String() string { return e.Name() }

// Valid reports whether e is one of the registry epochs.
func (e Epoch) Valid() bool {
	return e >= 0 && int(e) < epochCount
}

// ParseEpoch returns the epoch whose dataset label is name.
func ParseEpoch(name string) (Epoch, bool) {
	for i, n := range epochNames {
		if n == name {
			return Epoch(i), true
		}
	}
	return 0, false
}

// AllEpochs returns every epoch in registry order.
func AllEpochs() []Epoch {
	out := make([]Epoch, epochCount)
	for i := range out {
		out[i] = Epoch(i)
	}
	return out
}

// RGB is an 8-bit per channel color. It encodes as "#rrggbb" text.
type RGB struct {
	R, G, B uint8
}

// Gray is the neutral color used for symbols unknown to every registry.
var Gray = RGB{200, 200, 200}

// Hex returns the color as #rrggbb.
func (c RGB) Hex() string {
	return c.Colorful().Hex()
}

// String renders the triple as (r, g, b).
func (c RGB) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// MarshalText implements encoding.TextMarshaler.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *RGB) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Colorful converts c for color math.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Blend mixes c toward other by t in [0,1] in RGB space.
func (c RGB) Blend(other RGB, t float64) RGB {
	return FromColorful(c.Colorful().BlendRgb(other.Colorful(), t))
}

// FromColorful converts a colorful.Color back to 8-bit channels, clamping
// out-of-gamut values.
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// ParseHex parses a #rrggbb string.
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return FromColorful(c), nil
}

// mustHex is used for the embedded palette literals.
func mustHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Element is a single element record. Year is negative for BCE dates.
type Element struct {
	Symbol     string `json:"symbol" toml:"symbol" yaml:"symbol"`
	Name       string `json:"name" toml:"name" yaml:"name"`
	Year       int    `json:"year" toml:"year" yaml:"year"`
	Discoverer string `json:"discoverer" toml:"discoverer" yaml:"discoverer"`
	Epoch      Epoch  `json:"-" toml:"-" yaml:"-"`
}

// EpochInfo describes an epoch. Declared is the authored member list; the
// catalog derives membership from element tags and only audits Declared.
type EpochInfo struct {
	Epoch       Epoch
	Period      string
	Description string
	Color       RGB
	Declared    []string
}

// Name returns the epoch's dataset label.
func (ei EpochInfo) Name() string { return ei.Epoch.Name() }

// Signature is the characteristic emission data for an element.
type Signature struct {
	Symbol     string
	RGB        RGB
	DominantNm float64
	Lines      []string
}
