package views

import (
	"pokeview/ui/tui/state"
)

func RenderViewer(s state.AppState, props ViewProps) string {
	v := ViewerView{}
	return v.Render(s, props)
}

func RenderCard(s state.AppState, spinnerView, spriteView string, barWidth int) string {
	v := CardView{}
	return v.Render(s, ViewProps{
		SpinnerView: spinnerView,
		SpriteView:  spriteView,
		BarWidth:    barWidth,
	})
}
