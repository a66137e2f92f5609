package views

import (
	"simconsole/ui/tui/state"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height int

	// Component States
	Cursor      int
	AnimCursor  float64
	SpinnerView string
	ChartView   string
	ScrollY     int
}

// View defines the contract for any renderable page in the TUI.
type View interface {
	Render(s state.AppState, props ViewProps) string
}

// Zone ids shared with the controller's mouse handling.
const (
	ZoneModalBody   = "modal_body"
	ZoneModalClose  = "modal_close"
	ZoneThemeToggle = "theme_toggle"
	ZoneClearLog    = "clear_log"
)

// ActionZone is the mouse zone for an action button.
func ActionZone(id string) string {
	return "action_" + id
}
