package state

import (
	"image"

	"pokeview/internal/viewer"
)

// Control identifies one entry of the controls row, in display order.
type Control int

const (
	ControlPrevious Control = iota
	ControlEntry            // direct numeric entry field
	ControlNext
	ControlRandom
	ControlShiny
)

// Controls lists every control in display order.
var Controls = []Control{ControlPrevious, ControlEntry, ControlNext, ControlRandom, ControlShiny}

func (c Control) String() string {
	switch c {
	case ControlPrevious:
		return "previous"
	case ControlEntry:
		return "entry"
	case ControlNext:
		return "next"
	case ControlRandom:
		return "random"
	case ControlShiny:
		return "shiny"
	default:
		return "unknown"
	}
}

// ZoneID is the bubblezone id of a control.
func (c Control) ZoneID() string {
	return "control_" + c.String()
}

// AppState holds the current snapshot shown on screen.
type AppState struct {
	viewer.Snapshot
	Sprite    image.Image // nil when not loaded or unavailable
	SpriteURL string
}

// Enabled reports whether a control can be activated. Previous and next
// are disabled while loading; random and shiny stay enabled.
func (s AppState) Enabled(c Control) bool {
	loading := s.Outcome.Status == viewer.StatusLoading
	switch c {
	case ControlPrevious:
		return !loading && s.Selection > 1
	case ControlNext:
		return !loading
	default:
		return true
	}
}
