package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmylchreest/rvpanel/internal/config"
)

// RunOptions configures the TUI.
type RunOptions struct {
	Options

	ConfigPath  string // Config file to watch for theme changes
	WatchConfig bool
}

// Run starts the panel and blocks until it exits.
func Run(opts RunOptions) error {
	m := New(opts.Options)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if opts.WatchConfig {
		w, err := config.NewWatcher(opts.ConfigPath, func(cfg *config.Config) {
			p.Send(configReloadedMsg{cfg: cfg})
		})
		if err != nil {
			m.logger.Warn("failed to create config watcher", "error", err)
		} else if err := w.Start(); err != nil {
			m.logger.Warn("failed to start config watcher", "error", err)
		} else {
			defer func() { _ = w.Stop() }()
		}
	}

	_, err := p.Run()
	return err
}
