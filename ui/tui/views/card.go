package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"pokeview/internal/pokeapi"
	"pokeview/internal/viewer"
	"pokeview/ui/tui/state"
	"pokeview/ui/tui/styles"
)

const (
	defaultBarWidth = 30
	noDataText      = "No Pokemon data available"
	loadingText     = "Loading..."
)

// CardView renders the record area for the current fetch outcome.
type CardView struct{}

func (v CardView) Render(s state.AppState, props ViewProps) string {
	barWidth := props.BarWidth
	if barWidth <= 0 {
		barWidth = defaultBarWidth
	}

	var body string
	switch s.Outcome.Status {
	case viewer.StatusLoading:
		body = centered(barWidth, strings.TrimSpace(props.SpinnerView+" "+loadingText))
	case viewer.StatusFailure:
		msg := runewidth.Truncate("Error: "+s.Outcome.Message, barWidth, "...")
		body = centered(barWidth, lipgloss.NewStyle().Foreground(styles.Danger).Render(msg))
	case viewer.StatusSuccess:
		body = renderRecord(s.Outcome.Record, s.Shiny, props.SpriteView, barWidth)
	default:
		body = centered(barWidth, noDataText)
	}

	return styles.CardStyle.
		BorderForeground(styles.Accent(s.Shiny)).
		Render(body)
}

func centered(width int, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Padding(1, 0).
		Render(text)
}

func renderRecord(c *pokeapi.Creature, shiny bool, spriteView string, barWidth int) string {
	if c == nil {
		return centered(barWidth, noDataText)
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Width(barWidth).
		Align(lipgloss.Center).
		Render(runewidth.Truncate(fmt.Sprintf("#%d: %s", c.ID, Capitalize(c.Name)), barWidth, "..."))

	sprite := lipgloss.NewStyle().Width(barWidth).Align(lipgloss.Center).Render(spriteView)

	types := lipgloss.NewStyle().
		Width(barWidth).
		Align(lipgloss.Center).
		Render(RenderTypeChips(c.TypeNames()))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		sprite,
		types,
		"",
		lipgloss.NewStyle().Bold(true).Render("Base Stats:"),
		RenderStatRows(c.Stats, shiny, barWidth),
	)
}

// RenderTypeChips renders type labels in response order.
func RenderTypeChips(names []string) string {
	chips := make([]string, 0, len(names))
	for i, name := range names {
		chip := styles.ChipStyle.Render(Capitalize(name))
		if i > 0 {
			chip = " " + chip
		}
		chips = append(chips, chip)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

// Capitalize upper-cases the first letter of each word.
func Capitalize(s string) string {
	return cases.Title(language.English).String(s)
}
