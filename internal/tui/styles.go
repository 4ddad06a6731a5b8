package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/rvpanel/internal/config"
)

type styles struct {
	header      lipgloss.Style
	muted       lipgloss.Style
	toggle      lipgloss.Style
	title       lipgloss.Style
	comment     lipgloss.Style
	description lipgloss.Style
	spinner     lipgloss.Style
}

func newStyles(theme config.ThemeConfig) styles {
	accent := lipgloss.Color(theme.Accent)
	muted := lipgloss.Color(theme.Muted)

	return styles{
		header:      lipgloss.NewStyle().Bold(true).Foreground(accent),
		muted:       lipgloss.NewStyle().Foreground(muted),
		toggle:      lipgloss.NewStyle().Bold(true).Foreground(accent),
		title:       lipgloss.NewStyle().Bold(true),
		comment:     lipgloss.NewStyle().Foreground(muted),
		description: lipgloss.NewStyle().Italic(true),
		spinner:     lipgloss.NewStyle().Foreground(accent),
	}
}
