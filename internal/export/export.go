// Package export serializes rendered view models for scripting: JSON, TOML
// and YAML documents, plus CSV for sampled spectra.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	yaml "go.yaml.in/yaml/v3"

	"github.com/papapumpkin/spectra/internal/spectral"
)

// ErrUnknownFormat is returned for unsupported output formats.
var ErrUnknownFormat = errors.New("unknown format")

// Format names an output encoding.
type Format string

// Supported formats. FormatText is rendered by the terminal printer; the rest
// are handled here.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Formats lists every accepted format.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatTOML, FormatYAML}
}

// ParseFormat accepts a format name case-insensitively. "yml" is an alias
// for yaml and the empty string selects text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q (want text, json, toml or yaml)", ErrUnknownFormat, s)
}

// Structured reports whether f is encoded by Write rather than the printer.
func (f Format) Structured() bool {
	return f == FormatJSON || f == FormatTOML || f == FormatYAML
}

// Marshal encodes v in format f. TOML requires v to be a struct or map.
func Marshal(f Format, v any) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
	case FormatTOML:
		data, err = toml.Marshal(v)
	case FormatYAML:
		data, err = yaml.Marshal(v)
	default:
		return nil, fmt.Errorf("%w: %q is not a structured format", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", f, err)
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return data, nil
}

// Write encodes v in format f to w.
func Write(w io.Writer, f Format, v any) error {
	data, err := Marshal(f, v)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", f, err)
	}
	return nil
}

// WriteSpectrumCSV writes samples as "nm,intensity" rows under a header.
func WriteSpectrumCSV(w io.Writer, samples []spectral.Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"nm", "intensity"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatFloat(s.Nm, 'f', 3, 64),
			strconv.FormatFloat(s.Intensity, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}
