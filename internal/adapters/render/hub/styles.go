package hub

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title        lipgloss.Style
	header       lipgloss.Style
	offlineBadge lipgloss.Style
	tile         lipgloss.Style
	tileSelected lipgloss.Style
	tileLocked   lipgloss.Style
	lockedReason lipgloss.Style
	statusLine   lipgloss.Style
	help         lipgloss.Style
	empty        lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:        lipgloss.NewStyle().Bold(true),
		header:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		offlineBadge: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		tile:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		tileSelected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		tileLocked:   lipgloss.NewStyle().Faint(true),
		lockedReason: lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("245")),
		statusLine:   lipgloss.NewStyle().Foreground(lipgloss.Color("179")),
		help:         lipgloss.NewStyle().Faint(true).MarginTop(1),
		empty:        lipgloss.NewStyle().Faint(true),
	}
}
