package preview

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	PrimaryColor = lipgloss.Color("#7D56F4")
	Gray         = lipgloss.Color("#8B8B8B")
	LightText    = lipgloss.Color("#FAFAFA")
	DarkText     = lipgloss.Color("#1C1C1C")
)

// Style constructors take the Previewer's renderer so its color profile
// applies.
func titleStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().
		Foreground(PrimaryColor).
		Bold(true).
		Padding(0, 1)
}

func borderStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Gray)
}

func swatchStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().
		Padding(0, 1)
}
