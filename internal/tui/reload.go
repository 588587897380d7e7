package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/papapumpkin/spectra/internal/config"
)

// WatchConfig live-reloads the config file viper loaded at startup, sending
// the result to p. It reports false when no file was loaded.
func WatchConfig(p *Program) bool {
	path := viper.ConfigFileUsed()
	if path == "" {
		return false
	}
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		p.Send(reloadMsg(e.Name))
	})
	viper.WatchConfig()
	return true
}

// reloadMsg validates the freshly read config. An invalid file leaves the
// current selection in place.
func reloadMsg(path string) tea.Msg {
	cfg, err := config.Load()
	if err != nil {
		return MsgError{Msg: fmt.Sprintf("config reload: %v", err)}
	}
	sel, err := cfg.Selection()
	if err != nil {
		return MsgError{Msg: fmt.Sprintf("config reload: %v", err)}
	}
	return MsgConfigReloaded{Selection: sel, Path: path}
}
