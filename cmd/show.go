package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/spectra/internal/export"
	"github.com/papapumpkin/spectra/internal/periodic"
	"github.com/papapumpkin/spectra/internal/telemetry"
	"github.com/papapumpkin/spectra/internal/ui"
	"github.com/papapumpkin/spectra/internal/view"
)

var showCmd = &cobra.Command{
	Use:   "show [section]",
	Short: "Render one section once",
	Long: `Render a section of the dashboard to stdout. Sections are timeline,
epochs, spectral and explorer; the default comes from --section or the
config. Structured formats (json, toml, yaml) emit the page model itself.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"timeline", "epochs", "spectral", "explorer"},
	RunE:      runShow,
}

func formatNames() string {
	var names []string
	for _, f := range export.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

func init() {
	showCmd.Flags().String("format", "", fmt.Sprintf("output format: %s (default from config)", formatNames()))
	showCmd.Flags().Int("width", ui.DefaultWidth, "text width in columns")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, sel, err := loadSelection()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		if sel.Section, err = view.ParseSection(args[0]); err != nil {
			return err
		}
	}

	format := cfg.Format
	if f, _ := cmd.Flags().GetString("format"); f != "" {
		format = f
	}
	fmtKind, err := export.ParseFormat(format)
	if err != nil {
		return err
	}

	page, err := view.BuildPage(periodic.Default(), sel)
	if err != nil {
		return fmt.Errorf("show %s: %w", sel.Section, err)
	}

	printer := newPrinter(cmd, cfg.Verbose)
	em, err := openTelemetry(cfg, printer)
	if err != nil {
		return err
	}
	defer em.Close()
	em.Record(telemetry.KindExport, page.Section, sel.Symbol, map[string]any{"format": string(fmtKind)})

	if fmtKind.Structured() {
		return export.Write(cmd.OutOrStdout(), fmtKind, page)
	}
	width, _ := cmd.Flags().GetInt("width")
	printer.Page(page, width)
	return nil
}
