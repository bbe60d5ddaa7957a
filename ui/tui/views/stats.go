package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pokeview/internal/pokeapi"
	"pokeview/internal/viewer"
	"pokeview/ui/tui/styles"
)

// StatRow is the view-model of one base stat line.
type StatRow struct {
	Label  string
	Value  int
	Filled int // cells of the bar that are filled
	Width  int
}

// BuildStatRows converts stats into rows with bars scaled against MaxBaseStat.
func BuildStatRows(stats []pokeapi.StatEntry, barWidth int) []StatRow {
	rows := make([]StatRow, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, StatRow{
			Label:  Capitalize(s.Stat.Name),
			Value:  s.BaseStat,
			Filled: viewer.BarCells(s.BaseStat, barWidth),
			Width:  barWidth,
		})
	}
	return rows
}

// RenderStatRows renders a label/value line and a bar for each stat, in order.
func RenderStatRows(stats []pokeapi.StatEntry, shiny bool, barWidth int) string {
	filledStyle := lipgloss.NewStyle().Foreground(styles.Accent(shiny))
	trackStyle := lipgloss.NewStyle().Foreground(styles.TrackColor)

	var lines []string
	for _, row := range BuildStatRows(stats, barWidth) {
		value := fmt.Sprintf("%d", row.Value)
		gap := max(1, row.Width-lipgloss.Width(row.Label)-len(value))
		lines = append(lines,
			row.Label+strings.Repeat(" ", gap)+value,
			filledStyle.Render(strings.Repeat("█", row.Filled))+
				trackStyle.Render(strings.Repeat("░", row.Width-row.Filled)),
		)
	}
	return strings.Join(lines, "\n")
}
