package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/spectra/internal/export"
	"github.com/papapumpkin/spectra/internal/periodic"
	"github.com/papapumpkin/spectra/internal/spectral"
	"github.com/papapumpkin/spectra/internal/telemetry"
	"github.com/papapumpkin/spectra/internal/ui"
	"github.com/papapumpkin/spectra/internal/view"
)

var spectrumCmd = &cobra.Command{
	Use:   "spectrum <symbol>",
	Short: "Plot an element's simulated emission spectrum",
	Long: `Synthesize the emission spectrum of one element and plot it, or write
the samples as CSV with --csv. Elements without a spectral signature produce
a flat curve.`,
	Args: cobra.ExactArgs(1),
	RunE: runSpectrum,
}

func init() {
	spectrumCmd.Flags().Float64("min", spectral.DefaultMinNm, "lower wavelength bound in nm")
	spectrumCmd.Flags().Float64("max", spectral.DefaultMaxNm, "upper wavelength bound in nm")
	spectrumCmd.Flags().Int("samples", spectral.DefaultSamples, "number of samples across the range")
	spectrumCmd.Flags().Bool("csv", false, "write samples as CSV instead of a plot")
	spectrumCmd.Flags().Int("width", ui.DefaultWidth, "plot width in columns")
	rootCmd.AddCommand(spectrumCmd)
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadSelection()
	if err != nil {
		return err
	}

	cat := periodic.Default()
	sym := view.SymbolFromChoice(args[0])
	el, ok := cat.Element(sym)
	if !ok {
		return fmt.Errorf("spectrum: %w: %q", view.ErrUnknownElement, args[0])
	}

	grid := cfg.Spectrum
	if cmd.Flags().Changed("min") {
		grid.MinNm, _ = cmd.Flags().GetFloat64("min")
	}
	if cmd.Flags().Changed("max") {
		grid.MaxNm, _ = cmd.Flags().GetFloat64("max")
	}
	if cmd.Flags().Changed("samples") {
		grid.Samples, _ = cmd.Flags().GetInt("samples")
	}
	if err := grid.Validate(); err != nil {
		return fmt.Errorf("spectrum: %w", err)
	}

	samples := spectral.Synthesize(cat, sym,
		spectral.WithDomain(grid.MinNm, grid.MaxNm),
		spectral.WithSamples(grid.Samples),
	)

	printer := newPrinter(cmd, cfg.Verbose)
	em, err := openTelemetry(cfg, printer)
	if err != nil {
		return err
	}
	defer em.Close()

	if _, ok := cat.Signature(sym); !ok {
		printer.Warn(fmt.Sprintf("%s: %s", sym, view.NoSignatureNotice))
	}
	printer.Verbose("%d samples over [%g, %g] nm", len(samples), grid.MinNm, grid.MaxNm)

	if csv, _ := cmd.Flags().GetBool("csv"); csv {
		em.Record(telemetry.KindExport, view.SectionExplorer.Label(), sym, map[string]any{"format": "csv"})
		return export.WriteSpectrumCSV(cmd.OutOrStdout(), samples)
	}

	width, _ := cmd.Flags().GetInt("width")
	title := fmt.Sprintf("%s - %s simulated spectrum", el.Symbol, el.Name)
	printer.Spectrum(title, spectral.ResolveColor(cat, sym), samples, width)
	return nil
}
