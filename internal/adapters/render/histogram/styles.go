package histogram

import "github.com/charmbracelet/lipgloss"

type styles struct {
	header    lipgloss.Style
	banner    lipgloss.Style
	label     lipgloss.Style
	separator lipgloss.Style
	bar       lipgloss.Style
	count     lipgloss.Style
}

func newStyles() styles {
	return styles{
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		banner:    lipgloss.NewStyle().Bold(true),
		label:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		separator: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		bar:       lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		count:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	}
}
