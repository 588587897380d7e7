package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/spectra/internal/config"
	"github.com/papapumpkin/spectra/internal/telemetry"
	"github.com/papapumpkin/spectra/internal/ui"
	"github.com/papapumpkin/spectra/internal/view"
)

var rootCmd = &cobra.Command{
	Use:   "spectra",
	Short: "Periodic table by discovery date with RGB spectra",
	Long: `Spectra shows the chemical elements grouped by the historical epoch of
their discovery, with a simulated emission spectrum for each element.

On a terminal it opens the interactive dashboard; otherwise it prints the
configured section as text.`,
	RunE: runRootDefault,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// flagKeys maps persistent flag names to their config keys.
var flagKeys = map[string]string{
	"verbose":        "verbose",
	"telemetry":      "telemetry",
	"section":        "section",
	"element":        "element",
	"century":        "centuries",
	"show-spectra":   "show_spectra",
	"group-by-epoch": "group_by_epoch",
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default .spectra.yaml)")
	pf.BoolP("verbose", "v", false, "verbose output")
	pf.String("telemetry", "", "append JSONL session events to this file")
	pf.String("section", view.SectionTimeline.Label(), "section to show: timeline, epochs, spectral, explorer")
	pf.String("element", "", "explorer element symbol (default: first element)")
	pf.StringSlice("century", nil, "only show elements discovered in these centuries, e.g. BCE, 1-1000, 18th (repeatable)")
	pf.Bool("show-spectra", true, "show spectral gradients and curves")
	pf.Bool("group-by-epoch", true, "split the timeline into one series per epoch")

	bindFlags()
}

// bindFlags binds the persistent flags to their config keys.
func bindFlags() {
	pf := rootCmd.PersistentFlags()
	for flag, key := range flagKeys {
		_ = viper.BindPFlag(key, pf.Lookup(flag))
	}
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".spectra")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	config.BindEnv()

	// It's fine if no config file is found; we use defaults.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			ui.New().Warn(fmt.Sprintf("ignoring config: %v", err))
		}
	}
}

// runRootDefault opens the dashboard on a terminal and prints the configured
// section otherwise.
func runRootDefault(cmd *cobra.Command, _ []string) error {
	if isStdoutTTY() {
		return runTUI(cmd, nil)
	}
	return runShow(cmd, nil)
}

// loadSelection loads, validates and converts the configuration.
func loadSelection() (config.Config, view.Selection, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, view.Selection{}, fmt.Errorf("failed to load config: %w", err)
	}
	sel, err := cfg.Selection()
	if err != nil {
		return config.Config{}, view.Selection{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, sel, nil
}

// newPrinter returns a printer on the command's writers, with color only
// when writing to a terminal.
func newPrinter(cmd *cobra.Command, verbose bool) *ui.Printer {
	out := cmd.OutOrStdout()
	p := ui.NewWithWriters(out, cmd.ErrOrStderr(), isTerminalWriter(out))
	p.SetVerbose(verbose)
	return p
}

// openTelemetry opens the configured event log. An empty path yields a nil
// emitter, which records nothing.
func openTelemetry(cfg config.Config, printer *ui.Printer) (*telemetry.Emitter, error) {
	if cfg.Telemetry == "" {
		return nil, nil
	}
	em, err := telemetry.NewEmitter(cfg.Telemetry, telemetry.WithErrorHandler(func(err error) {
		printer.Warn(fmt.Sprintf("telemetry disabled: %v", err))
	}))
	if err != nil {
		return nil, err
	}
	printer.Verbose("recording telemetry to %s", cfg.Telemetry)
	return em, nil
}

func isStdoutTTY() bool {
	return isTerminalWriter(os.Stdout)
}

// isTerminalWriter reports whether w is a file attached to a terminal.
func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
