package views

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"pokeview/ui/tui/state"
	"pokeview/ui/tui/styles"
)

// ControlsView renders the navigation row. Each control is a mouse zone.
type ControlsView struct{}

func (v ControlsView) Render(s state.AppState, props ViewProps) string {
	items := make([]string, 0, len(state.Controls))
	for i, c := range state.Controls {
		// Animation Logic
		dist := math.Abs(float64(i) - props.AnimCursor)
		selectionStrength := 0.0
		if dist < 1.0 {
			selectionStrength = 1.0 - dist
		}

		enabled := s.Enabled(c)
		box := styles.ButtonStyle.BorderForeground(controlColor(c, s.Shiny))
		if selectionStrength > 0.5 || c == props.FocusCursor {
			box = box.BorderForeground(styles.Highlight).Bold(true)
		}
		if !enabled {
			box = box.BorderForeground(styles.Subtle).Inherit(styles.DisabledStyle)
		}

		items = append(items, zone.Mark(c.ZoneID(), box.Render(controlLabel(c, s, props))))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func controlLabel(c state.Control, s state.AppState, props ViewProps) string {
	switch c {
	case state.ControlPrevious:
		return "◀ Previous"
	case state.ControlEntry:
		if props.EntryFocused && props.EntryView != "" {
			return props.EntryView
		}
		return fmt.Sprintf("#%-4d", s.Selection)
	case state.ControlNext:
		return "Next ▶"
	case state.ControlRandom:
		return "Random"
	case state.ControlShiny:
		if s.Shiny {
			return lipgloss.NewStyle().Foreground(styles.ShinyAccent).Render("✦ Shiny")
		}
		return "✧ Shiny"
	}
	return ""
}

func controlColor(c state.Control, shiny bool) lipgloss.TerminalColor {
	switch c {
	case state.ControlRandom:
		return styles.RandomColor
	case state.ControlShiny:
		if shiny {
			return styles.ShinyAccent
		}
		return lipgloss.Color("#A1A1AA")
	default:
		return styles.Accent(shiny)
	}
}
