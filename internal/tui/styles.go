package tui

import "github.com/charmbracelet/lipgloss"

type palette struct {
	bg            lipgloss.Color
	bgSecondary   lipgloss.Color
	text          lipgloss.Color
	textSecondary lipgloss.Color
	border        lipgloss.Color
	accent        lipgloss.Color
	danger        lipgloss.Color
}

var (
	lightPalette = palette{
		bg:            "#FFFFFF",
		bgSecondary:   "#F5F5F7",
		text:          "#000000",
		textSecondary: "#86868B",
		border:        "#E5E5E7",
		accent:        "#007AFF",
		danger:        "#FF3B30",
	}
	darkPalette = palette{
		bg:            "#1C1C1E",
		bgSecondary:   "#2C2C2E",
		text:          "#FFFFFF",
		textSecondary: "#A1A1A6",
		border:        "#3A3A3C",
		accent:        "#0A84FF",
		danger:        "#FF453A",
	}
)

type styles struct {
	app        lipgloss.Style
	title      lipgloss.Style
	total      lipgloss.Style
	label      lipgloss.Style
	muted      lipgloss.Style
	panel      lipgloss.Style
	row        lipgloss.Style
	rowActive  lipgloss.Style
	amount     lipgloss.Style
	errorText  lipgloss.Style
	day        lipgloss.Style
	daySelect  lipgloss.Style
	dayHeader  lipgloss.Style
	monthTitle lipgloss.Style
	help       lipgloss.Style
}

func newStyles(dark bool) styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	return styles{
		app:        lipgloss.NewStyle().Foreground(p.text).Background(p.bg).Padding(1, 2),
		title:      lipgloss.NewStyle().Foreground(p.text).Bold(true),
		total:      lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		label:      lipgloss.NewStyle().Foreground(p.textSecondary).Width(13),
		muted:      lipgloss.NewStyle().Foreground(p.textSecondary),
		panel:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Background(p.bgSecondary).Padding(0, 1),
		row:        lipgloss.NewStyle().Foreground(p.text),
		rowActive:  lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		amount:     lipgloss.NewStyle().Foreground(p.text).Bold(true),
		errorText:  lipgloss.NewStyle().Foreground(p.danger),
		day:        lipgloss.NewStyle().Foreground(p.text).Width(4).Align(lipgloss.Center),
		daySelect:  lipgloss.NewStyle().Foreground(p.bg).Background(p.accent).Bold(true).Width(4).Align(lipgloss.Center),
		dayHeader:  lipgloss.NewStyle().Foreground(p.textSecondary).Width(4).Align(lipgloss.Center),
		monthTitle: lipgloss.NewStyle().Foreground(p.text).Bold(true).Width(28).Align(lipgloss.Center),
		help:       lipgloss.NewStyle().Foreground(p.textSecondary).MarginTop(1),
	}
}
