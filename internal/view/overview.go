package view

import (
	"strconv"
	"unicode/utf8"

	"github.com/papapumpkin/spectra/internal/periodic"
	"github.com/papapumpkin/spectra/internal/spectral"
)

// Card layout constants.
const (
	CardsPerRow     = 6
	DiscovererLimit = 20
)

// gradientStart is how far the gradient's pale end is mixed toward white.
// It matches a 50% alpha swatch over a white page.
const gradientStart = 0.5

var white = periodic.RGB{R: 255, G: 255, B: 255}

// Gradient is the color bar drawn on a card, from pale to full color.
type Gradient struct {
	From periodic.RGB `json:"from" toml:"from" yaml:"from"`
	To   periodic.RGB `json:"to" toml:"to" yaml:"to"`
}

// Card is one element tile in the epoch overview.
type Card struct {
	Symbol     string       `json:"symbol" toml:"symbol" yaml:"symbol"`
	Name       string       `json:"name" toml:"name" yaml:"name"`
	Color      periodic.RGB `json:"color" toml:"color" yaml:"color"`
	Gradient   *Gradient    `json:"gradient,omitempty" toml:"gradient,omitempty" yaml:"gradient,omitempty"`
	Discovered string       `json:"discovered" toml:"discovered" yaml:"discovered"`
	Discoverer string       `json:"discoverer" toml:"discoverer" yaml:"discoverer"`
}

// CardRow is a row of at most CardsPerRow cards.
type CardRow struct {
	Cards []Card `json:"cards" toml:"cards" yaml:"cards"`
}

// EpochSection is one epoch heading with its member cards.
type EpochSection struct {
	Epoch       periodic.Epoch `json:"-" toml:"-" yaml:"-"`
	Name        string         `json:"name" toml:"name" yaml:"name"`
	Period      string         `json:"period" toml:"period" yaml:"period"`
	Description string         `json:"description" toml:"description" yaml:"description"`
	Color       periodic.RGB   `json:"color" toml:"color" yaml:"color"`
	Rows        []CardRow      `json:"rows" toml:"rows" yaml:"rows"`
}

// Cards flattens the rows.
func (s EpochSection) Cards() []Card {
	var out []Card
	for _, r := range s.Rows {
		out = append(out, r.Cards...)
	}
	return out
}

// DiscoveredLabel renders a card's discovery date: the year, or
// "Antiquity" for dates at or before zero.
func DiscoveredLabel(year int) string {
	if year <= 0 {
		return "Antiquity"
	}
	return strconv.Itoa(year)
}

// TruncateDiscoverer keeps the first DiscovererLimit runes and appends
// "..." when anything was cut.
func TruncateDiscoverer(s string) string {
	if utf8.RuneCountInString(s) <= DiscovererLimit {
		return s
	}
	runes := []rune(s)
	return string(runes[:DiscovererLimit]) + "..."
}

// BuildEpochOverview renders every epoch in registry order, each followed by
// its member cards in rows of CardsPerRow. Membership comes from element
// tags; the century filter narrows the cards but never hides a heading.
func BuildEpochOverview(cat *periodic.Catalog, opts Options) []EpochSection {
	chain := opts.chain()
	sections := make([]EpochSection, 0, len(periodic.AllEpochs()))
	for _, ei := range cat.Epochs() {
		sec := EpochSection{
			Epoch:       ei.Epoch,
			Name:        ei.Name(),
			Period:      ei.Period,
			Description: ei.Description,
			Color:       ei.Color,
		}
		var row []Card
		for _, el := range chain.Keep(cat.Members(ei.Epoch)) {
			row = append(row, buildCard(cat, el, opts))
			if len(row) == CardsPerRow {
				sec.Rows = append(sec.Rows, CardRow{Cards: row})
				row = nil
			}
		}
		if len(row) > 0 {
			sec.Rows = append(sec.Rows, CardRow{Cards: row})
		}
		sections = append(sections, sec)
	}
	return sections
}

func buildCard(cat *periodic.Catalog, el periodic.Element, opts Options) Card {
	c := spectral.ResolveColor(cat, el.Symbol)
	card := Card{
		Symbol:     el.Symbol,
		Name:       el.Name,
		Color:      c,
		Discovered: DiscoveredLabel(el.Year),
		Discoverer: TruncateDiscoverer(el.Discoverer),
	}
	if opts.ShowSpectra {
		card.Gradient = &Gradient{From: c.Blend(white, gradientStart), To: c}
	}
	return card
}
