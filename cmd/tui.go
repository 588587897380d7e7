package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/spectra/internal/telemetry"
	"github.com/papapumpkin/spectra/internal/tui"
)

// tuiCmd launches the interactive dashboard.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	Long: `Launch the spectra dashboard. Switch sections with 1-4 or tab, filter
by century, toggle spectra and grouping, and browse each element's simulated
spectrum in the explorer. Edits to the config file are applied live.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// errNoTTY is returned when the dashboard is started without a terminal.
var errNoTTY = errors.New("spectra tui requires a TTY (terminal)")

func runTUI(cmd *cobra.Command, _ []string) error {
	if !isStdoutTTY() {
		return errNoTTY
	}

	cfg, sel, err := loadSelection()
	if err != nil {
		return err
	}
	printer := newPrinter(cmd, cfg.Verbose)

	em, err := openTelemetry(cfg, printer)
	if err != nil {
		return err
	}
	defer em.Close()

	em.Record(telemetry.KindSessionStart, sel.Section.Label(), sel.Symbol, nil)
	runErr := tui.Run(sel, em, tui.WithOutput(cmd.OutOrStdout()))
	em.Record(telemetry.KindSessionEnd, "", "", nil)
	if runErr != nil {
		return fmt.Errorf("dashboard: %w", runErr)
	}
	return nil
}
