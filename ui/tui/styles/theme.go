package styles

import "github.com/charmbracelet/lipgloss"

var (
	Subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	Highlight = lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#60A5FA"}
	Danger    = lipgloss.Color("#EF4444")

	// Accent colors: green for normal, gold for shiny.
	NormalAccent     = lipgloss.Color("#22C55E")
	NormalAccentDeep = lipgloss.Color("#15803D")
	ShinyAccent      = lipgloss.Color("#EAB308")
	ShinyAccentDeep  = lipgloss.Color("#CA8A04")
	RandomColor      = lipgloss.Color("#A855F7")
	TrackColor       = lipgloss.Color("#3F3F46")

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(1, 2).
			Margin(1, 1)

	ChipStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#18181B")).
			Background(lipgloss.Color("#E4E4E7"))

	ButtonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	DisabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525B"))

	FooterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717A"))
)

// Accent returns the accent color for a display mode.
func Accent(shiny bool) lipgloss.Color {
	if shiny {
		return ShinyAccent
	}
	return NormalAccent
}

// AccentDeep returns the darker end of the accent gradient.
func AccentDeep(shiny bool) lipgloss.Color {
	if shiny {
		return ShinyAccentDeep
	}
	return NormalAccentDeep
}
