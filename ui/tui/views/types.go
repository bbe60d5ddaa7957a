package views

import (
	"pokeview/ui/tui/state"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height int

	// Component States
	FocusCursor  state.Control
	AnimCursor   float64
	SpinnerView  string
	EntryView    string
	EntryFocused bool
	SpriteView   string
	ChartView    string
	HelpView     string
	BarWidth     int
}

// View defines the contract for any renderable part of the screen.
type View interface {
	Render(s state.AppState, props ViewProps) string
}
