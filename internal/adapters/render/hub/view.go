package hub

import (
	"fmt"

	"github.com/adupuis1/CouchSuite/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func renderView(m model) string {
	s := m.styles

	title := "CouchSuite"
	if m.offline {
		title += " " + s.offlineBadge.Render("[offline]")
	}

	lines := []string{
		s.title.Render(title),
		s.header.Render(headerLine(m)),
	}

	if len(m.entries) == 0 {
		lines = append(lines, s.empty.Render("No games yet. Press r to refresh."))
	}

	for i, entry := range m.entries {
		lines = append(lines, renderTile(entry, i == m.cursor, s))
	}

	if m.busy {
		lines = append(lines, s.statusLine.Render(fmt.Sprintf("%s %s", m.spinner.View(), m.busyFor)))
	} else if m.status != "" {
		lines = append(lines, s.statusLine.Render(m.status))
	}

	lines = append(lines, s.help.Render("enter: play · r: refresh · q: quit"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func headerLine(m model) string {
	who := "not signed in"
	if m.username != "" {
		who = "signed in as " + m.username
	}
	return fmt.Sprintf("%s · host %s · %d games", who, m.host, len(m.entries))
}

func renderTile(entry domain.Entry, selected bool, s styles) string {
	marker := "  "
	if selected {
		marker = "> "
	}

	name := entry.DisplayName
	if entry.Playable() {
		style := s.tile
		if selected {
			style = s.tileSelected
		}
		return marker + style.Render(name)
	}

	line := marker + s.tileLocked.Render(name)
	return line + " " + s.lockedReason.Render("("+playabilityReason(entry)+")")
}

func playabilityReason(entry domain.Entry) string {
	switch {
	case !entry.Enabled:
		return "unavailable"
	case !entry.Owned:
		return "not in library"
	case !entry.Installed:
		return "not installed"
	default:
		return "ready"
	}
}
