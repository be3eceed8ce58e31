package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pyrafetch/pyrafetch/internal/tui/colors"
)

// Styles are the trailer text styles, built against one renderer so they
// share its color profile
type Styles struct {
	CPU       lipgloss.Style
	Unit      lipgloss.Style
	Total     lipgloss.Style
	Used      lipgloss.Style
	Free      lipgloss.Style
	Hostname  lipgloss.Style
	Separator lipgloss.Style
	Release   lipgloss.Style
}

func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		CPU:       r.NewStyle().Foreground(colors.Green),
		Unit:      r.NewStyle().Foreground(colors.Unit),
		Total:     r.NewStyle().Foreground(colors.Magenta),
		Used:      r.NewStyle().Foreground(colors.Red),
		Free:      r.NewStyle().Foreground(colors.Blue),
		Hostname:  r.NewStyle().Foreground(colors.Red),
		Separator: r.NewStyle().Foreground(colors.Gray),
		Release:   r.NewStyle().Foreground(colors.Cyan),
	}
}
