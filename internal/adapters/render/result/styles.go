package result

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	member    lipgloss.Style
	changed   lipgloss.Style
	unchanged lipgloss.Style
	detail    lipgloss.Style
	checkMode lipgloss.Style
	empty     lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		member:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		changed:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		unchanged: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(2),
		checkMode: lipgloss.NewStyle().Faint(true),
		empty:     lipgloss.NewStyle().Faint(true),
	}
}
