// Package tui provides the BubbleTea-based dashboard.
package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/spectra/internal/periodic"
	"github.com/papapumpkin/spectra/internal/telemetry"
	"github.com/papapumpkin/spectra/internal/view"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a BubbleTea program over the built-in catalog.
// The program uses the alternate screen buffer for a clean TUI experience.
func NewProgram(sel view.Selection, em *telemetry.Emitter, opts ...tea.ProgramOption) *Program {
	model := NewAppModel(periodic.Default(), sel, em)

	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
	allOpts = append(allOpts, opts...)

	return tea.NewProgram(model, allOpts...)
}

// Run creates and runs the dashboard, blocking until it exits. The config
// file, if any, is watched for changes while the program runs.
func Run(sel view.Selection, em *telemetry.Emitter, opts ...tea.ProgramOption) error {
	p := NewProgram(sel, em, opts...)
	WatchConfig(p)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// WithOutput returns a program option that directs TUI output to the given writer.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}
