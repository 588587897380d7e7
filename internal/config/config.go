// Package config loads the dashboard settings from flags, SPECTRA_* env vars
// and .spectra.yaml through viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/papapumpkin/spectra/internal/export"
	"github.com/papapumpkin/spectra/internal/filter"
	"github.com/papapumpkin/spectra/internal/periodic"
	"github.com/papapumpkin/spectra/internal/spectral"
	"github.com/papapumpkin/spectra/internal/view"
)

// EnvPrefix is the prefix of environment overrides, e.g. SPECTRA_SECTION.
const EnvPrefix = "SPECTRA"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// SpectrumConfig holds the sampling grid for synthesized curves.
type SpectrumConfig struct {
	MinNm   float64 `mapstructure:"min_nm"`
	MaxNm   float64 `mapstructure:"max_nm"`
	Samples int     `mapstructure:"samples"`
}

// Options converts the grid to synthesizer options.
func (s SpectrumConfig) Options() spectral.Options {
	return spectral.Options{MinNm: s.MinNm, MaxNm: s.MaxNm, Samples: s.Samples}
}

// Config holds all runtime configuration for a spectra session.
// Values are populated from .spectra.yaml, SPECTRA_* env vars, and CLI flags.
type Config struct {
	Section      string         `mapstructure:"section"`
	Element      string         `mapstructure:"element"`
	Centuries    []string       `mapstructure:"centuries"`
	ShowSpectra  bool           `mapstructure:"show_spectra"`
	GroupByEpoch bool           `mapstructure:"group_by_epoch"`
	Spectrum     SpectrumConfig `mapstructure:"spectrum"`
	Format       string         `mapstructure:"format"`
	Telemetry    string         `mapstructure:"telemetry"`
	Verbose      bool           `mapstructure:"verbose"`
}

// SetDefaults registers the built-in defaults with viper.
func SetDefaults() {
	viper.SetDefault("section", view.SectionTimeline.Label())
	viper.SetDefault("element", "")
	viper.SetDefault("centuries", []string{})
	viper.SetDefault("show_spectra", true)
	viper.SetDefault("group_by_epoch", true)
	viper.SetDefault("spectrum.min_nm", spectral.DefaultMinNm)
	viper.SetDefault("spectrum.max_nm", spectral.DefaultMaxNm)
	viper.SetDefault("spectrum.samples", spectral.DefaultSamples)
	viper.SetDefault("format", string(export.FormatText))
	viper.SetDefault("telemetry", "")
	viper.SetDefault("verbose", false)
}

// BindEnv maps SPECTRA_* variables onto config keys. Nested keys use
// underscores: spectrum.samples is SPECTRA_SPECTRUM_SAMPLES.
func BindEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags, and validates the
// result.
func Load() (Config, error) {
	SetDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field that names something: the section, the
// element, century labels, the output format and the spectrum grid.
func (c Config) Validate() error {
	if _, err := view.ParseSection(c.Section); err != nil {
		return fmt.Errorf("%w: section: %w", ErrInvalid, err)
	}
	if c.Element != "" {
		if _, ok := periodic.Default().Element(view.SymbolFromChoice(c.Element)); !ok {
			return fmt.Errorf("%w: element: %w: %q", ErrInvalid, view.ErrUnknownElement, c.Element)
		}
	}
	if _, err := filter.ParseCenturies(c.Centuries); err != nil {
		return fmt.Errorf("%w: centuries: %w", ErrInvalid, err)
	}
	if _, err := export.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: format: %w", ErrInvalid, err)
	}
	return c.Spectrum.Validate()
}

// MaxSamples caps the spectrum grid size.
const MaxSamples = 10000

// Validate checks that the grid spans a positive, non-empty range with
// between 2 and MaxSamples samples.
func (s SpectrumConfig) Validate() error {
	switch {
	case s.MinNm <= 0 || s.MaxNm <= 0:
		return fmt.Errorf("%w: spectrum range must be positive, got [%g, %g]", ErrInvalid, s.MinNm, s.MaxNm)
	case s.MinNm == s.MaxNm:
		return fmt.Errorf("%w: spectrum range is empty at %g nm", ErrInvalid, s.MinNm)
	case s.Samples < 2:
		return fmt.Errorf("%w: spectrum needs at least 2 samples, got %d", ErrInvalid, s.Samples)
	case s.Samples > MaxSamples:
		return fmt.Errorf("%w: spectrum allows at most %d samples, got %d", ErrInvalid, MaxSamples, s.Samples)
	}
	return nil
}

// Selection converts the config into the view selection it describes.
func (c Config) Selection() (view.Selection, error) {
	section, err := view.ParseSection(c.Section)
	if err != nil {
		return view.Selection{}, err
	}
	centuries, err := filter.ParseCenturies(c.Centuries)
	if err != nil {
		return view.Selection{}, err
	}
	return view.Selection{
		Section: section,
		Symbol:  view.SymbolFromChoice(c.Element),
		Options: view.Options{
			Centuries:    centuries,
			ShowSpectra:  c.ShowSpectra,
			GroupByEpoch: c.GroupByEpoch,
			Spectrum:     c.Spectrum.Options(),
		},
	}, nil
}
