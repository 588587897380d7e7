package tui

import "github.com/papapumpkin/spectra/internal/view"

// MsgConfigReloaded is sent when the watched config file changed and the new
// settings validated.
type MsgConfigReloaded struct {
	Selection view.Selection
	Path      string
}

// MsgError is sent for error messages.
type MsgError struct {
	Msg string
}
