package components

import (
	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pokeview/internal/pokeapi"
	"pokeview/internal/viewer"
	"pokeview/ui/tui/styles"
)

// StatChart is a vertical bar chart of base stats on the 0..255 scale.
type StatChart struct {
	Stats  []pokeapi.StatEntry
	Shiny  bool
	Width  int
	Height int
}

func NewStatChart(width, height int) *StatChart {
	return &StatChart{Width: width, Height: height}
}

func (c *StatChart) Init() tea.Cmd {
	return nil
}

func (c *StatChart) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return c, nil
}

func (c *StatChart) SetStats(stats []pokeapi.StatEntry, shiny bool) {
	c.Stats = stats
	c.Shiny = shiny
}

func (c *StatChart) Resize(w, h int) {
	c.Width = w
	c.Height = h
}

func (c *StatChart) View() string {
	if len(c.Stats) == 0 || c.Width <= 0 || c.Height <= 0 {
		return ""
	}

	barStyle := lipgloss.NewStyle().Foreground(styles.Accent(c.Shiny))
	data := make([]barchart.BarData, 0, len(c.Stats))
	for _, s := range c.Stats {
		data = append(data, barchart.BarData{
			Label: ShortStatName(s.Stat.Name),
			Values: []barchart.BarValue{
				{Name: s.Stat.Name, Value: float64(s.BaseStat), Style: barStyle},
			},
		})
	}

	bc := barchart.New(c.Width, c.Height, barchart.WithMaxValue(viewer.MaxBaseStat))
	bc.PushAll(data)
	bc.Draw()

	return styles.CardStyle.
		BorderForeground(styles.Accent(c.Shiny)).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render("Stat Chart"),
			bc.View(),
		))
}

// ShortStatName abbreviates PokéAPI stat names for chart labels.
func ShortStatName(name string) string {
	switch name {
	case "hp":
		return "HP"
	case "attack":
		return "Atk"
	case "defense":
		return "Def"
	case "special-attack":
		return "SpA"
	case "special-defense":
		return "SpD"
	case "speed":
		return "Spe"
	}
	if len(name) > 3 {
		return name[:3]
	}
	return name
}
