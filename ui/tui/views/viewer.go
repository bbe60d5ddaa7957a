package views

import (
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"pokeview/ui/tui/state"
	"pokeview/ui/tui/styles"
)

const (
	appTitle    = "Pokémon Viewer"
	attribution = "Data from PokéAPI (https://pokeapi.co)"

	// WideLayoutWidth is the terminal width from which the stat chart is shown.
	WideLayoutWidth = 100
)

// ViewerView is the whole screen: header, controls, record card, footer.
type ViewerView struct{}

func (v ViewerView) Render(s state.AppState, props ViewProps) string {
	header := lipgloss.NewStyle().Padding(1, 2, 0, 2).Render(
		styles.ApplyBoldGradient(appTitle, styles.Accent(s.Shiny), styles.AccentDeep(s.Shiny)),
	)

	controls := lipgloss.NewStyle().PaddingLeft(1).Render(ControlsView{}.Render(s, props))

	content := CardView{}.Render(s, props)
	if props.Width >= WideLayoutWidth && props.ChartView != "" {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, props.ChartView)
	}

	footerLines := []string{styles.FooterStyle.Render(attribution)}
	if props.HelpView != "" {
		footerLines = append(footerLines, props.HelpView)
	}
	footer := lipgloss.NewStyle().PaddingLeft(2).Render(
		lipgloss.JoinVertical(lipgloss.Left, footerLines...),
	)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left,
		header,
		controls,
		content,
		footer,
	))
}
