package view

import (
	"fmt"
	"strconv"

	"github.com/papapumpkin/spectra/internal/periodic"
	"github.com/papapumpkin/spectra/internal/spectral"
)

// TimelineFloor drops placeholder dates: only years strictly above it are
// plotted.
const TimelineFloor = -10000

// TimelinePalette is the per-epoch series color, in epoch registry order.
var TimelinePalette = [...]periodic.RGB{
	{R: 0xF5, G: 0xDE, B: 0xB3},
	{R: 0xDE, G: 0xB8, B: 0x87},
	{R: 0xF4, G: 0xA4, B: 0x60},
	{R: 0xCD, G: 0x85, B: 0x3F},
	{R: 0xD2, G: 0x69, B: 0x1E},
	{R: 0xA0, G: 0x52, B: 0x2D},
}

// TimelinePoint is one plotted discovery. X is the clamped plot position;
// Year keeps the real date.
type TimelinePoint struct {
	X          int          `json:"x" toml:"x" yaml:"x"`
	Year       int          `json:"year" toml:"year" yaml:"year"`
	YearLabel  string       `json:"year_label" toml:"year_label" yaml:"year_label"`
	Symbol     string       `json:"symbol" toml:"symbol" yaml:"symbol"`
	Name       string       `json:"name" toml:"name" yaml:"name"`
	Discoverer string       `json:"discoverer" toml:"discoverer" yaml:"discoverer"`
	Epoch      string       `json:"epoch" toml:"epoch" yaml:"epoch"`
	Color      periodic.RGB `json:"color" toml:"color" yaml:"color"`
}

// TimelineSeries is a group of points sharing a legend entry.
type TimelineSeries struct {
	Name   string          `json:"name" toml:"name" yaml:"name"`
	Color  periodic.RGB    `json:"color" toml:"color" yaml:"color"`
	Points []TimelinePoint `json:"points" toml:"points" yaml:"points"`
}

// Timeline is the scatter view of discovery dates.
type Timeline struct {
	Title    string           `json:"title" toml:"title" yaml:"title"`
	Series   []TimelineSeries `json:"series" toml:"series" yaml:"series"`
	MinX     int              `json:"min_x" toml:"min_x" yaml:"min_x"`
	MaxX     int              `json:"max_x" toml:"max_x" yaml:"max_x"`
	Excluded []string         `json:"excluded,omitempty" toml:"excluded,omitempty" yaml:"excluded,omitempty"`
}

// Points returns every point across all series.
func (t Timeline) Points() []TimelinePoint {
	var out []TimelinePoint
	for _, s := range t.Series {
		out = append(out, s.Points...)
	}
	return out
}

// YearLabel renders a signed year, with BCE for dates before year one.
func YearLabel(year int) string {
	if year < 0 {
		return fmt.Sprintf("%d BCE", -year)
	}
	return strconv.Itoa(year)
}

// BuildTimeline plots every element dated after TimelineFloor that passes
// the century filter. Years before zero are clamped to X = 0. With
// GroupByEpoch each epoch becomes a series colored from TimelinePalette,
// in registry order, and its points take the series color; otherwise a
// single series keeps element order and each point its resolved color.
func BuildTimeline(cat *periodic.Catalog, opts Options) Timeline {
	tl := Timeline{Title: "Chronology of Element Discoveries"}

	var points []TimelinePoint
	for _, el := range opts.chain().Keep(cat.Elements()) {
		if el.Year <= TimelineFloor {
			tl.Excluded = append(tl.Excluded, el.Symbol)
			continue
		}
		points = append(points, TimelinePoint{
			X:          max(0, el.Year),
			Year:       el.Year,
			YearLabel:  YearLabel(el.Year),
			Symbol:     el.Symbol,
			Name:       el.Name,
			Discoverer: el.Discoverer,
			Epoch:      el.Epoch.Name(),
			Color:      spectral.ResolveColor(cat, el.Symbol),
		})
	}

	for i, p := range points {
		if i == 0 || p.X < tl.MinX {
			tl.MinX = p.X
		}
		if i == 0 || p.X > tl.MaxX {
			tl.MaxX = p.X
		}
	}

	if !opts.GroupByEpoch {
		if len(points) > 0 {
			tl.Series = []TimelineSeries{{Name: "all", Color: periodic.Gray, Points: points}}
		}
		return tl
	}

	for _, e := range periodic.AllEpochs() {
		color := TimelinePalette[int(e)%len(TimelinePalette)]
		var members []TimelinePoint
		for _, p := range points {
			if p.Epoch == e.Name() {
				p.Color = color
				members = append(members, p)
			}
		}
		if len(members) == 0 {
			continue
		}
		tl.Series = append(tl.Series, TimelineSeries{
			Name:   e.Name(),
			Color:  color,
			Points: members,
		})
	}
	return tl
}
