package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title       lipgloss.Style
	muted       lipgloss.Style
	cursor      lipgloss.Style
	badge       lipgloss.Style
	selected    lipgloss.Style
	correct     lipgloss.Style
	wrong       lipgloss.Style
	notice      lipgloss.Style
	status      lipgloss.Style
	progress    lipgloss.Style
	explanation lipgloss.Style
}

func newStyles(noColor bool) styles {
	plain := lipgloss.NewStyle()
	box := plain.Border(lipgloss.RoundedBorder()).Padding(0, 1)
	if noColor {
		return styles{
			title:       plain,
			muted:       plain,
			cursor:      plain,
			badge:       plain,
			selected:    plain,
			correct:     plain,
			wrong:       plain,
			notice:      plain,
			status:      plain,
			progress:    plain,
			explanation: box,
		}
	}

	return styles{
		title:       plain.Bold(true).Foreground(lipgloss.Color("33")),
		muted:       plain.Foreground(lipgloss.Color("242")),
		cursor:      plain.Bold(true).Foreground(lipgloss.Color("212")),
		badge:       plain.Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1),
		selected:    plain.Foreground(lipgloss.Color("39")),
		correct:     plain.Foreground(lipgloss.Color("42")),
		wrong:       plain.Foreground(lipgloss.Color("196")),
		notice:      plain.Foreground(lipgloss.Color("214")),
		status:      plain.Bold(true).Foreground(lipgloss.Color("42")),
		progress:    plain.Foreground(lipgloss.Color("62")),
		explanation: box.BorderForeground(lipgloss.Color("62")),
	}
}
