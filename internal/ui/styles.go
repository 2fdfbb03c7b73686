// Package ui renders styled terminal output: status lines and data tables.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	accent  = lipgloss.Color("39")  // deep sky blue
	warning = lipgloss.Color("208") // orange
	danger  = lipgloss.Color("196") // red
	success = lipgloss.Color("40")  // green
	muted   = lipgloss.Color("245") // gray

	TitleStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	HeaderCellStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	HazardCellStyle = lipgloss.NewStyle().
			Foreground(warning).
			Padding(0, 1)

	BorderStyle = lipgloss.NewStyle().
			Foreground(muted)

	SuccessTextStyle = lipgloss.NewStyle().
				Foreground(success)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(danger)

	MutedTextStyle = lipgloss.NewStyle().
			Foreground(muted)
)
