package ui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title  lipgloss.Style
	done   lipgloss.Style
	button lipgloss.Style
	counts lipgloss.Style
	status lipgloss.Style
	alert  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		done:   lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8")),
		button: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		counts: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		status: lipgloss.NewStyle().Italic(true),
		alert: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(0, 2),
	}
}
